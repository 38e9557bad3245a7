// Package linkcfg derives compiler and linker configuration for the staged
// librgb artifacts. Every supported platform has one explicit row in the
// link table; resolution is a lookup with no fallback row, so an unknown
// platform fails instead of silently borrowing another OS's flags.
package linkcfg

import (
	"encoding/json"
	"fmt"
	"strings"

	"rgbsdk/internal/platform"
	"rgbsdk/internal/staging"
	"rgbsdk/pkg/types"
)

// entry is one row of the link table: the facts that differ between
// operating systems when linking against the staged library.
type entry struct {
	linkName    string // name the linker resolves via -l
	rpathPrefix string // flag prefix embedding a runtime search path
}

var table = map[platform.Key]entry{
	platform.Mac:   {linkName: "rgb", rpathPrefix: "-Wl,-rpath,"},
	platform.Linux: {linkName: "rgb", rpathPrefix: "-Wl,-rpath="},
}

// Resolution is a resolved link configuration together with the rendering
// facts for its platform.
type Resolution struct {
	types.LinkConfig
	info  platform.Info
	entry entry
}

// Resolve derives the link configuration for key against layout. Resolution
// is pure path derivation and succeeds whether or not artifacts are staged;
// a missing bundle is only worth a warning, since resolving before
// provisioning is how build scripts bootstrap.
func Resolve(key platform.Key, layout staging.Layout) (Resolution, error) {
	info, ok := platform.Lookup(key)
	if !ok {
		return Resolution{}, &platform.UnsupportedError{Name: string(key)}
	}
	e, ok := table[key]
	if !ok {
		return Resolution{}, &platform.UnsupportedError{Name: string(key)}
	}
	if zlog != nil && !layout.Provisioned(key) {
		zlog.Warn().
			Str("platform", key.String()).
			Str("lib", layout.LibraryPath(key)).
			Msg("resolving link configuration for an unprovisioned platform")
	}

	libDirs := []string{layout.LibDir(key)}
	return Resolution{
		LinkConfig: types.LinkConfig{
			Platform:     key.String(),
			IncludeDirs:  []string{layout.IncludeRoot},
			LibraryDirs:  libDirs,
			LibraryNames: []string{e.linkName},
			// runtime search paths mirror the link-time ones
			RuntimePaths: append([]string(nil), libDirs...),
		},
		info:  info,
		entry: e,
	}, nil
}

// CgoDirectives renders the resolution as #cgo directives, constrained to
// the platform's GOOS so configurations for several platforms can coexist
// in one source file.
func (r Resolution) CgoDirectives() string {
	var b strings.Builder
	b.WriteString("#cgo CFLAGS:")
	for _, d := range r.IncludeDirs {
		fmt.Fprintf(&b, " -I%s", d)
	}
	b.WriteByte('\n')
	fmt.Fprintf(&b, "#cgo %s LDFLAGS: %s\n", r.info.CgoConstraint, r.ldflags())
	return b.String()
}

// ExportLines renders the resolution as POSIX shell exports for driving a
// go build from the environment instead of in-source directives.
func (r Resolution) ExportLines() string {
	var b strings.Builder
	cflags := make([]string, 0, len(r.IncludeDirs))
	for _, d := range r.IncludeDirs {
		cflags = append(cflags, "-I"+d)
	}
	fmt.Fprintf(&b, "export CGO_CFLAGS=%q\n", strings.Join(cflags, " "))
	fmt.Fprintf(&b, "export CGO_LDFLAGS=%q\n", r.ldflags())
	fmt.Fprintf(&b, "export %s=%q\n", r.info.LoaderPathVar,
		strings.Join(r.RuntimePaths, ":")+":$"+r.info.LoaderPathVar)
	b.WriteString("export CGO_ENABLED=1\n")
	return b.String()
}

// JSON renders the plain configuration for consumption by other tooling.
func (r Resolution) JSON() ([]byte, error) {
	return json.MarshalIndent(r.LinkConfig, "", "  ")
}

func (r Resolution) ldflags() string {
	flags := make([]string, 0, len(r.LibraryDirs)+len(r.LibraryNames)+len(r.RuntimePaths))
	for _, d := range r.LibraryDirs {
		flags = append(flags, "-L"+d)
	}
	for _, n := range r.LibraryNames {
		flags = append(flags, "-l"+n)
	}
	for _, d := range r.RuntimePaths {
		flags = append(flags, r.entry.rpathPrefix+d)
	}
	return strings.Join(flags, " ")
}
