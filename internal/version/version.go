// Package version reports the build identity baked in at link time.
package version

import "fmt"

// Injected via -ldflags by release builds; source builds report "unknown".
var (
	Commit    = "unknown"
	BuildTime = "unknown"
)

// String renders the line shown by --version. Builds are identified by
// commit hash; shiftledger carries no semver tags.
func String() string {
	return fmt.Sprintf("shiftledger dev (commit: %s, built: %s)", shortCommit(), BuildTime)
}

func shortCommit() string {
	if len(Commit) > 7 {
		return Commit[:7]
	}
	return Commit
}
