// Package version holds build metadata, overridden at link time with
// -ldflags "-X github.com/harlequix/bitguard/version.GitCommit=...".
package version

import (
	"fmt"
	"runtime"
)

var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
	GoVersion = runtime.Version()
	OsArch    = fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
)
