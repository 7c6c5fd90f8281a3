package config

import "fmt"

// Set at build time with -ldflags "-X github.com/finnews/finner/config.Version=...".
var (
	Version       = "dev"
	CommitHash    = "n/a"
	BuildTime     = "n/a"
	VersionString = fmt.Sprintf("%s-%s (%s)", Version, CommitHash, BuildTime)
)

// UserAgent identifies finner to the NLP server.
func UserAgent() string {
	return "finner/" + Version
}
