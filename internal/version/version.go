// Package version reports the homecontrol build, set with
//
//	-ldflags "-X github.com/jmylchreest/homecontrol/internal/version.Version=1.2.0"
package version

import (
	"fmt"
	"runtime"
)

// Build information, overridden at link time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// String returns the line printed by the version command.
func String() string {
	platform := runtime.GOOS + "/" + runtime.GOARCH
	if Commit == "unknown" || Date == "unknown" {
		return fmt.Sprintf("homecontrol version %s (%s, %s)", Version, runtime.Version(), platform)
	}
	commit := Commit
	if len(commit) > 8 {
		commit = commit[:8]
	}
	return fmt.Sprintf("homecontrol version %s (commit: %s, built: %s, %s, %s)",
		Version, commit, Date, runtime.Version(), platform)
}

// Short returns only the release version.
func Short() string {
	return Version
}
