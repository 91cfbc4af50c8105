package app

import (
	"fmt"
	"runtime"
)

// Version is set at build time with -ldflags "-X .../internal/app.Version=v1.2.3".
var Version = "dev"

// VersionString returns the version line printed by --version.
func VersionString() string {
	return fmt.Sprintf("bignum-calibrate %s (%s %s/%s)", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
