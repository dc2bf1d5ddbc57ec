// Package build carries build-time information.
package build

import "runtime"

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// New fills GoVersion from the running toolchain.
func New(version, commit, date string) Info {
	return Info{Version: version, Commit: commit, BuildDate: date, GoVersion: runtime.Version()}
}

// RepoURL returns the project repository URL.
func RepoURL() string {
	return "https://github.com/bnema/webwindow"
}
