// Package buildinfo carries the version stamped in at link time:
//
//	go build -ldflags "-X clockorange/internal/buildinfo.Version=v1.2.0"
package buildinfo

var (
	Version = "dev"
	Commit  = "unknown"
)

// Short returns a compact build identifier: the version if stamped, else the
// commit, else "dev".
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// Title decorates a window title with the build identifier.
func Title(name string) string {
	if name == "" {
		return Short()
	}
	return name + " (" + Short() + ")"
}
