package app

import "fmt"

// ServiceName identifies this process in logs and database sessions.
const ServiceName = "platrr-business"

// Version, Commit, and BuildTime are set via ldflags at build time.
// Example: go build -ldflags "-X github.com/AFTLlimited25/Platrr-Business/internal/app.Version=1.0.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns the version reported by /health and the startup log.
func BuildVersion() string {
	if Commit == "unknown" {
		return Version
	}
	return fmt.Sprintf("%s+%s (built %s)", Version, shortCommit(Commit), BuildTime)
}

func shortCommit(c string) string {
	if len(c) > 7 {
		return c[:7]
	}
	return c
}
