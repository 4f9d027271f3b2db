package app

import (
	"fmt"
	"runtime/debug"
)

// Version, Commit, and BuildTime are set via ldflags:
//
//	go build -ldflags "-X github.com/heartmarshall/placement-backend/internal/app.Version=1.0.0"
//
// When Commit is not set, the VCS revision stamped by the go tool is used.
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// ServiceName tags every log record and the health payload.
const ServiceName = "placement-backend"

// BuildVersion returns the version reported by /health and startup logs.
func BuildVersion() string {
	return formatVersion(Version, Commit, BuildTime, debug.ReadBuildInfo)
}

func formatVersion(version, commit, built string, info func() (*debug.BuildInfo, bool)) string {
	dirty := false
	if bi, ok := info(); ok && (commit == "" || built == "") {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if commit == "" {
					commit = s.Value
				}
			case "vcs.time":
				if built == "" {
					built = s.Value
				}
			case "vcs.modified":
				dirty = s.Value == "true"
			}
		}
	}

	if len(commit) > 12 {
		commit = commit[:12]
	}
	if commit == "" {
		commit = "unknown"
	}
	if dirty {
		commit += "-dirty"
	}
	if built == "" {
		built = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, built)
}
