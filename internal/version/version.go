// Package version holds build metadata, overridden at link time with
// -ldflags "-X github.com/MrSnakeDoc/songjournal/internal/version.Version=v1.2.0".
package version

import (
	"fmt"
	"runtime"
	"time"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = time.Now().Format(time.RFC3339)
	GoVersion = runtime.Version()
)

// String renders the metadata on one line for the startup log.
func String() string {
	return fmt.Sprintf("%s (commit=%s, built=%s, go=%s)", Version, Commit, BuildDate, GoVersion)
}
