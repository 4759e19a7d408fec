package raster

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// Image formats accepted by WriteImage.
const (
	FormatBMP = "bmp"
	FormatPNG = "png"
)

// FormatForPath picks an image format from a file extension (default BMP).
func FormatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG
	default:
		return FormatBMP
	}
}

func WriteImage(w io.Writer, b *Buffer, format string) error {
	img := b.ToRGBA(nil)
	switch format {
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatPNG:
		return png.Encode(w, img)
	default:
		return fmt.Errorf("raster: unknown image format %q", format)
	}
}

// WriteFile encodes b into path, choosing the format by extension.
func WriteFile(path string, b *Buffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	if err := WriteImage(f, b, FormatForPath(path)); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %q: %w", path, err)
	}
	return nil
}
