// Package version provides build-time version information for missionscan.
package version

import (
	"fmt"
	"runtime"
	"time"
)

var (
	// Version is the current version of the application
	Version = "dev"
	// GitCommit is the git commit hash
	GitCommit = "unknown"
	// BuildDate is when the binary was built
	BuildDate = "unknown"
	// GoVersion is the Go version used to build the binary
	GoVersion = runtime.Version()
	// Platform is the target platform
	Platform = fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
)

// Info contains version information
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetVersion returns the version information
func GetVersion() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: GoVersion,
		Platform:  Platform,
	}
}

// GetVersionString returns a detailed version string
func GetVersionString() string {
	info := GetVersion()
	return fmt.Sprintf("missionscan has version %s built with %s from %s (%s) on %s",
		info.Version,
		info.GoVersion,
		info.GitCommit,
		info.Platform,
		info.BuildDate,
	)
}

// GetShortVersionString returns a short version string
func GetShortVersionString() string {
	info := GetVersion()

	buildTime, err := time.Parse(time.RFC3339, info.BuildDate)
	var dateStr string
	if err != nil {
		dateStr = info.BuildDate
	} else {
		dateStr = buildTime.Format("2006-01-02")
	}

	return fmt.Sprintf("missionscan version %s (%s)", info.Version, dateStr)
}
