// Package staging defines the on-disk tree provisioned librgb artifacts are
// installed into: one subdirectory per platform under the library root
// holding that platform's shared library, and a single shared include root
// holding the C header. Downstream build tooling depends on these exact
// relative paths.
package staging

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"rgbsdk/internal/common/fsutil"
	"rgbsdk/internal/platform"
)

// HeaderName is the platform-independent C header staged into the include
// root. It is refreshed on every provisioning run.
const HeaderName = "rgb_node.h"

// Layout locates the staged artifact tree. Roots are injected explicitly so
// callers (and tests) decide where staging happens; nothing is discovered
// from the working directory.
type Layout struct {
	LibRoot     string
	IncludeRoot string
}

// DefaultLayout returns the layout rooted at a repository checkout: lib/ for
// per-platform binaries, include/ for the header.
func DefaultLayout(root string) Layout {
	return Layout{
		LibRoot:     filepath.Join(root, "lib"),
		IncludeRoot: filepath.Join(root, "include"),
	}
}

// LibDir returns the per-platform shared library directory.
func (l Layout) LibDir(k platform.Key) string {
	return filepath.Join(l.LibRoot, k.String())
}

// LibraryPath returns the staged shared library path for k.
func (l Layout) LibraryPath(k platform.Key) string {
	return filepath.Join(l.LibDir(k), k.SharedLibrary())
}

// HeaderPath returns the staged header path.
func (l Layout) HeaderPath() string {
	return filepath.Join(l.IncludeRoot, HeaderName)
}

// Ensure creates the staging directories for k, including any missing
// parents. It is idempotent and never truncates existing content.
func (l Layout) Ensure(k platform.Key) error {
	for _, dir := range []string{l.LibDir(k), l.IncludeRoot} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &IOError{Op: "mkdir", Path: dir, Err: err}
		}
	}
	return nil
}

// Provisioned reports whether a complete bundle is staged for k: the
// platform's shared library and the shared header both present. This is the
// only provisioned/not-provisioned state the system keeps.
func (l Layout) Provisioned(k platform.Key) bool {
	return fsutil.PathExists(l.LibraryPath(k)) && fsutil.PathExists(l.HeaderPath())
}

// ProvisionedPlatforms scans the library root and returns the supported keys
// holding a complete staged bundle, in stable order. Unknown subdirectories
// are ignored.
func (l Layout) ProvisionedPlatforms() []platform.Key {
	var keys []platform.Key
	for _, k := range platform.All() {
		if l.Provisioned(k) {
			keys = append(keys, k)
		}
	}
	return keys
}

// IOError reports a failed directory or file operation under the staging
// layout. It is fatal; the operation that produced it is aborted.
type IOError struct {
	Op   string // "mkdir", "copy", "rename", ...
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("staging %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// IsIOError reports whether err indicates a staging I/O failure.
func IsIOError(err error) bool {
	var ie *IOError
	return errors.As(err, &ie)
}
