// Package rgbc is the cgo boundary to the staged librgb shared library,
// one Go function per exported C symbol. Inputs and outputs stay as the JSON
// strings the C interface trades in; the rgbsdk package layers typed
// requests on top. Binaries compiled without the librgb build tag get a stub
// that fails fast, keeping default builds and CI cgo-free.
package rgbc

import (
	"errors"
	"unsafe"
)

// ErrNotBuilt is returned by every call when the binary was compiled
// without the librgb build tag.
var ErrNotBuilt = errors.New("librgb support not built (missing 'librgb' build tag)")

// Handle is an opaque reference to a native RGB node runtime. The zero
// Handle is invalid.
type Handle struct {
	ptr unsafe.Pointer
	ty  uint64
}

// Built reports whether this binary carries the native bindings.
func Built() bool { return built }
