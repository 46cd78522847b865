// Package version carries build version information for flexscan.
package version

import (
	"fmt"
	"runtime/debug"
)

// Version and Commit can be set at build time via ldflags:
//
//	go build -ldflags="-X github.com/ckode/flexscan/internal/version.Version=v1.2.3 \
//	                   -X github.com/ckode/flexscan/internal/version.Commit=abc123"
//
// When unset they are filled from Go's embedded VCS build info, with a
// "dev"/"unknown" fallback for builds outside a git checkout.
var (
	// Version is the semantic version of the application
	Version = ""
	// Commit is the git commit hash
	Commit = ""
)

func init() {
	if Version == "" || Commit == "" {
		populateFromBuildInfo()
	}

	if Version == "" {
		Version = "dev"
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// populateFromBuildInfo reads VCS details from Go's embedded build info.
func populateFromBuildInfo() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	var revision, modified string
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			modified = setting.Value
		}
	}

	if Commit == "" && revision != "" {
		if len(revision) > 7 {
			revision = revision[:7]
		}
		Commit = revision
		if modified == "true" {
			Commit += "-dirty"
		}
	}
}

// Full returns the full version string including commit
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
