// Package version reports build information for the custody binaries.
//
// Values are set at build time, e.g.
//
//	go build -ldflags "-X github.com/information-sharing-networks/custody-demo/internal/version.version=v1.2.0 \
//	  -X github.com/information-sharing-networks/custody-demo/internal/version.buildDate=2026-01-01T00:00:00Z \
//	  -X github.com/information-sharing-networks/custody-demo/internal/version.gitCommit=abc1234"
//
// When the ldflags are not set the module version and vcs revision recorded by the go tool are used instead.
package version

import "runtime/debug"

var (
	version   = "dev"
	buildDate = "unknown"
	gitCommit = "unknown"
)

// Info holds the build information for the running binary
type Info struct {
	Version   string `json:"version"`
	BuildDate string `json:"build_date"`
	GitCommit string `json:"git_commit"`
}

// Get returns the build information
func Get() Info {
	info := Info{
		Version:   version,
		BuildDate: buildDate,
		GitCommit: gitCommit,
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}

	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}

	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.GitCommit == "unknown" && len(s.Value) >= 7 {
				info.GitCommit = s.Value[:7]
			}
		case "vcs.time":
			if info.BuildDate == "unknown" {
				info.BuildDate = s.Value
			}
		}
	}

	return info
}
