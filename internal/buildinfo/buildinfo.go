// Package buildinfo holds version metadata injected at link time:
//
//	go build -ldflags "-X github.com/pokedex/backend/internal/buildinfo.Version=1.0.0"
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String formats the metadata on one line
func String() string {
	return fmt.Sprintf("pokedex %s (commit %s, built %s)", Version, Commit, Date)
}
