// Package buildinfo carries the version stamped in by the release build:
//
//	go build -ldflags "-X rotary/internal/buildinfo.Version=v1.2.0 -X rotary/internal/buildinfo.Commit=$(git rev-parse --short HEAD)"
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact build identifier for window titles and logs.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// String is the full line printed by "rotary version".
func String() string {
	return fmt.Sprintf("rotary %s (commit %s, built %s)", Short(), Commit, Date)
}
