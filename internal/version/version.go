// Package version centralizes build metadata for the docaudit CLI.
//
// The variables are injected at build time:
//
//	-ldflags "-X docaudit/internal/version.version=v1.0.0 -X docaudit/internal/version.commit=abc123 -X docaudit/internal/version.buildTime=2026-01-01T00:00:00Z"
package version

import (
	"fmt"
	"io"
)

//nolint:gochecknoglobals // Set via ldflags during build.
var (
	version   string
	commit    string
	buildTime string
)

// ApplicationName is the name displayed in version output.
const ApplicationName = "docaudit CLI"

// Default values used when build metadata is not available.
const (
	DefaultVersion   = "dev"
	DefaultCommit    = "unknown"
	DefaultBuildTime = "unknown"
)

// Info holds resolved version information.
type Info struct {
	Version   string
	Commit    string
	BuildTime string
}

// NewInfo resolves the build-time variables, substituting defaults for
// anything left unset.
func NewInfo() *Info {
	info := &Info{Version: version, Commit: commit, BuildTime: buildTime}
	if info.Version == "" {
		info.Version = DefaultVersion
	}
	if info.Commit == "" {
		info.Commit = DefaultCommit
	}
	if info.BuildTime == "" {
		info.BuildTime = DefaultBuildTime
	}
	return info
}

// WriteShort writes only the version number.
func (i *Info) WriteShort(w io.Writer) error {
	_, err := fmt.Fprintln(w, i.Version)
	return err
}

// WriteFull writes the complete multi-line version output.
func (i *Info) WriteFull(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s\nVersion: %s\nCommit: %s\nBuilt: %s\n",
		ApplicationName, i.Version, i.Commit, i.BuildTime)
	return err
}
