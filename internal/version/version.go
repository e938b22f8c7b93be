package version

import (
	"fmt"
	"runtime"
)

// Build metadata, overridden at link time:
//
//	go build -ldflags "-X github.com/rodnney/biotech-x/internal/version.BuildVersion=v1.2.3 \
//	  -X github.com/rodnney/biotech-x/internal/version.BuildCommit=$(git rev-parse --short HEAD)"
var (
	BuildVersion = "v1.0.0"
	BuildTime    = "unknown"
	BuildCommit  = "unknown"
)

// GetVersion returns the full version string, including the "v" prefix.
func GetVersion() string {
	return BuildVersion
}

// GetBuildInfo returns version, build time, commit and Go runtime in one line.
func GetBuildInfo() string {
	return fmt.Sprintf("%s (built: %s, commit: %s, go: %s)",
		BuildVersion, BuildTime, BuildCommit, runtime.Version())
}

// GetShortVersion returns the version without its "v" prefix ("1.0.0").
func GetShortVersion() string {
	if len(BuildVersion) > 0 && BuildVersion[0] == 'v' {
		return BuildVersion[1:]
	}
	return BuildVersion
}
