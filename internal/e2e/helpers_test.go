package e2e

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"rgbsdk/internal/provision"
	"rgbsdk/internal/staging"
)

// newFakeProject creates a librgb checkout skeleton: the cargo manifest plus
// the cbindgen header the provisioner stages. The shared libraries are left
// to the fake cargo build.
func newFakeProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "Cargo.toml"), []byte("[package]\nname = \"rgb\"\n"), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "rgb_node.h"), []byte("/* librgb */\n"), 0o644); err != nil {
		t.Fatalf("write header: %v", err)
	}
	return dir
}

// writeFakeCargo writes an executable stand-in for cargo. body runs through
// /bin/sh with the project directory as working directory, mirroring how the
// provisioner invokes the real build.
func writeFakeCargo(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake cargo is a shell script")
	}
	path := filepath.Join(t.TempDir(), "cargo")
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write fake cargo: %v", err)
	}
	return path
}

// buildBoth emits both platforms' shared libraries, creating each only when
// absent so repeat builds keep their mtimes, like a warm cargo cache.
const buildBoth = `mkdir -p target/release
[ -f target/release/librgb.so ] || printf 'fake so' > target/release/librgb.so
[ -f target/release/librgb.dylib ] || printf 'fake dylib' > target/release/librgb.dylib`

func newProvisioner(t *testing.T, proj, cargo string, layout staging.Layout) *provision.Provisioner {
	t.Helper()
	p := provision.New(proj, layout, zerolog.Nop())
	p.Cargo = cargo
	return p
}

func mtime(t *testing.T, path string) time.Time {
	t.Helper()
	fi, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat %s: %v", path, err)
	}
	return fi.ModTime()
}
