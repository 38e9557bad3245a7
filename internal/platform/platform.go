// Package platform enumerates the operating systems librgb is provisioned
// and linked for. The set is closed: every supported OS has an explicit
// entry, and anything else fails with an UnsupportedError rather than
// falling back to a default.
package platform

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// Key identifies one supported target operating system. Staged artifacts and
// link configurations are keyed by exactly one Key.
type Key string

const (
	Mac   Key = "mac"
	Linux Key = "linux"
)

// Info carries the per-OS facts the provisioner and resolver need.
type Info struct {
	GOOS          string // runtime.GOOS value this key corresponds to
	SharedLibrary string // file name of the built shared library
	CgoConstraint string // constraint used in generated #cgo directives
	LoaderPathVar string // dynamic loader search path environment variable
}

// infos is the closed registry of supported platforms. Adding an OS is one
// entry here plus a linkcfg table row and a provisioner build target.
var infos = map[Key]Info{
	Mac: {
		GOOS:          "darwin",
		SharedLibrary: "librgb.dylib",
		CgoConstraint: "darwin",
		LoaderPathVar: "DYLD_LIBRARY_PATH",
	},
	Linux: {
		GOOS:          "linux",
		SharedLibrary: "librgb.so",
		CgoConstraint: "linux",
		LoaderPathVar: "LD_LIBRARY_PATH",
	},
}

// All returns the supported keys in stable order.
func All() []Key { return []Key{Linux, Mac} }

// Parse validates a user-supplied platform name.
func Parse(s string) (Key, error) {
	k := Key(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := infos[k]; !ok {
		return "", &UnsupportedError{Name: s}
	}
	return k, nil
}

// Detect maps the running host OS to its Key.
func Detect() (Key, error) { return FromGOOS(runtime.GOOS) }

// FromGOOS maps a runtime.GOOS value to its Key.
func FromGOOS(goos string) (Key, error) {
	for _, k := range All() {
		if infos[k].GOOS == goos {
			return k, nil
		}
	}
	return "", &UnsupportedError{Name: goos}
}

// Lookup returns the Info for k, reporting whether k is supported.
func Lookup(k Key) (Info, bool) {
	in, ok := infos[k]
	return in, ok
}

func (k Key) String() string { return string(k) }

// Known reports whether k names a supported platform.
func (k Key) Known() bool {
	_, ok := infos[k]
	return ok
}

// SharedLibrary returns the shared library file name for k ("" if unknown).
func (k Key) SharedLibrary() string { return infos[k].SharedLibrary }

// LoaderPathVar returns the dynamic loader search path variable for k.
func (k Key) LoaderPathVar() string { return infos[k].LoaderPathVar }

// UnsupportedError indicates a platform with no registered configuration.
type UnsupportedError struct {
	Name string
}

func (e *UnsupportedError) Error() string {
	names := make([]string, 0, len(infos))
	for _, k := range All() {
		names = append(names, string(k))
	}
	return fmt.Sprintf("unsupported platform %q (supported: %s)", e.Name, strings.Join(names, ", "))
}

// IsUnsupported reports whether err indicates an unsupported platform.
func IsUnsupported(err error) bool {
	var ue *UnsupportedError
	return errors.As(err, &ue)
}
