// Package build holds build-time information.
package build

// Version is the starter release, set with -ldflags "-X go.trai.ch/starter/internal/build.Version=...".
// Development builds report "dev".
var Version = "dev"
