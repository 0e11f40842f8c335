package config

import "time"

// Build metadata, stamped by the release pipeline through -ldflags.
// A plain `go build` from a working tree leaves them empty.
var (
	Version   string
	GitCommit string
	BuildTime string
)

func init() {
	if Version == "" {
		Version = "dev"
	}
	if GitCommit == "" {
		GitCommit = "local"
	}
	if BuildTime == "" {
		BuildTime = time.Now().Format("2006-01-02 15:04:05")
	}
}
