// Package build holds build-time information.
package build

// Version, Commit and Date are set by linker flags:
//
//	-ldflags "-X go.trai.ch/dumpfiles/internal/build.Version=v1.2.3"
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
