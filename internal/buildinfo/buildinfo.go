// Package buildinfo carries version stamps injected with -ldflags "-X".
package buildinfo

import "fmt"

const Name = "tinyrender"

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Date is set at build time via -ldflags.
var Date = "unknown"

// Short returns a compact build identifier for titles and log lines.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		if len(Commit) > 12 {
			return Commit[:12]
		}
		return Commit
	}
	return "dev"
}

// String returns the full identifier printed by -version.
func String() string {
	return fmt.Sprintf("%s %s (commit %s, built %s)", Name, Short(), Commit, Date)
}
