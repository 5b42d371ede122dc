package app

import (
	"fmt"
	"runtime/debug"
)

// Set with -ldflags "-X github.com/nenadmarinkovic/sprachenwald/internal/app.Version=1.2.0".
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// BuildVersion reports the release, commit and build time for startup logs
// and /health. Without ldflags the commit and time come from the VCS stamp
// the go tool embeds.
func BuildVersion() string {
	commit, built := Commit, BuildTime
	if commit == "" || built == "" {
		vcsCommit, vcsTime, modified := vcsStamp()
		if commit == "" {
			commit = vcsCommit
			if modified {
				commit += "-dirty"
			}
		}
		if built == "" {
			built = vcsTime
		}
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, orUnknown(commit), orUnknown(built))
}

func vcsStamp() (revision, at string, modified bool) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", "", false
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if len(s.Value) > 12 {
				revision = s.Value[:12]
			} else {
				revision = s.Value
			}
		case "vcs.time":
			at = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}
	return revision, at, modified
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
