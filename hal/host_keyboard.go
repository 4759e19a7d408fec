//go:build !tinygo && cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

func (k *hostKeyboard) poll() {
	emit := func(code KeyCode, press bool) {
		k.push(KeyEvent{Code: code, Press: press})
	}

	if ebiten.IsWindowBeingClosed() {
		emit(KeyQuit, true)
	}

	// Printable keys (digits, space) arrive as text so keypad and layout
	// differences are handled by ebiten.
	for _, r := range ebiten.AppendInputChars(nil) {
		k.push(KeyEvent{Press: true, Rune: r})
	}

	// Keys without text (arrows, function keys, modifiers) still count as a
	// press for quit-on-any-key.
	for _, key := range inpututil.AppendJustPressedKeys(nil) {
		if key == ebiten.KeyEscape || key == ebiten.KeyEnter {
			continue
		}
		k.push(KeyEvent{Press: true})
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		emit(KeyEscape, true)
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyEscape) {
		emit(KeyEscape, false)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		emit(KeyEnter, true)
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyEnter) {
		emit(KeyEnter, false)
	}
}
