// Package version exposes build-time version metadata, populated through
// -ldflags at release time.
package version

import (
	"fmt"
	"runtime"
)

// Set via -ldflags "-X github.com/stanza-dev/stanza/internal/version.Version=..."
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// Info is the full version report.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get returns the current build's version info.
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns the short human-readable form.
func (i Info) String() string {
	return fmt.Sprintf("stanza %s (%s)", i.Version, i.GitCommit)
}
