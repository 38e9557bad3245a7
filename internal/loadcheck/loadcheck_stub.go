//go:build !(darwin || freebsd || linux || netbsd)

package loadcheck

import (
	"fmt"
	"runtime"
)

// Verify reports that the dynamic loader is unreachable on this OS.
func Verify(path, symbol string) error {
	return fmt.Errorf("load check not supported on %s", runtime.GOOS)
}
