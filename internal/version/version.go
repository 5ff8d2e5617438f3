// Package version carries build metadata stamped in through -ldflags.
package version

//nolint:revive // Overwritten by the linker at build time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
