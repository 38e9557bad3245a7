//go:build darwin || freebsd || linux || netbsd

// Package loadcheck verifies that a staged shared library loads in this
// process and exposes the symbols the bindings call. It is a smoke test for
// provisioned artifacts, not a binding layer.
package loadcheck

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// Verify dlopens the library at path and resolves symbol inside it. The
// handle is closed before returning; nothing stays loaded in the process.
func Verify(path, symbol string) error {
	h, err := purego.Dlopen(path, purego.RTLD_GLOBAL|purego.RTLD_LAZY)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	defer purego.Dlclose(h)
	if _, err := purego.Dlsym(h, symbol); err != nil {
		return fmt.Errorf("resolve %s in %s: %w", symbol, path, err)
	}
	return nil
}
