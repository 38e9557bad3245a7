// Package e2e runs the provisioning pipeline end to end: a real subprocess
// stands in for cargo, artifacts land in a real staging tree, and the
// resolver derives link configuration from the result.
package e2e

import (
	"bytes"
	"context"
	"errors"
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"rgbsdk/internal/linkcfg"
	"rgbsdk/internal/platform"
	"rgbsdk/internal/provision"
	"rgbsdk/internal/staging"
)

func TestE2E_ProvisionResolveFlow(t *testing.T) {
	proj := newFakeProject(t)
	cargo := writeFakeCargo(t, buildBoth)
	layout := staging.DefaultLayout(t.TempDir())
	p := newProvisioner(t, proj, cargo, layout)
	ctx := context.Background()

	// 1) provision linux stages the .so and the header
	if err := p.Provision(ctx, platform.Linux); err != nil {
		t.Fatalf("provision linux: %v", err)
	}
	for _, path := range []string{layout.LibraryPath(platform.Linux), layout.HeaderPath()} {
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("staged artifact missing: %v", err)
		}
	}

	// 2) mac stays unprovisioned until its own run
	if layout.Provisioned(platform.Mac) {
		t.Fatal("mac reported provisioned before provisioning")
	}
	if err := p.Provision(ctx, platform.Mac); err != nil {
		t.Fatalf("provision mac: %v", err)
	}
	if !layout.Provisioned(platform.Mac) {
		t.Fatal("mac not provisioned after provisioning")
	}

	// 3) a second linux run re-stages nothing
	before := mtime(t, layout.LibraryPath(platform.Linux))
	if err := p.Provision(ctx, platform.Linux); err != nil {
		t.Fatalf("reprovision linux: %v", err)
	}
	if got := mtime(t, layout.LibraryPath(platform.Linux)); !got.Equal(before) {
		t.Fatalf("reprovision rewrote the library: %v -> %v", before, got)
	}

	// 4) the resolver reflects the staged tree
	res, err := linkcfg.Resolve(platform.Linux, layout)
	if err != nil {
		t.Fatalf("resolve linux: %v", err)
	}
	if len(res.IncludeDirs) != 1 || res.IncludeDirs[0] != layout.IncludeRoot {
		t.Fatalf("IncludeDirs = %v, want [%s]", res.IncludeDirs, layout.IncludeRoot)
	}
	if len(res.LibraryDirs) != 1 || res.LibraryDirs[0] != layout.LibDir(platform.Linux) {
		t.Fatalf("LibraryDirs = %v, want [%s]", res.LibraryDirs, layout.LibDir(platform.Linux))
	}
	if !reflect.DeepEqual(res.RuntimePaths, res.LibraryDirs) {
		t.Fatalf("RuntimePaths = %v, want %v", res.RuntimePaths, res.LibraryDirs)
	}

	// 5) both platforms now enumerate as provisioned
	keys := layout.ProvisionedPlatforms()
	if !reflect.DeepEqual(keys, []platform.Key{platform.Linux, platform.Mac}) {
		t.Fatalf("ProvisionedPlatforms = %v, want [linux mac]", keys)
	}
}

func TestE2E_BuildFailureCarriesExitStatus(t *testing.T) {
	proj := newFakeProject(t)
	cargo := writeFakeCargo(t, "echo 'error: linking failed' >&2\nexit 42")
	layout := staging.DefaultLayout(t.TempDir())
	p := newProvisioner(t, proj, cargo, layout)

	err := p.Provision(context.Background(), platform.Linux)
	var bf *provision.ExternalBuildFailureError
	if !errors.As(err, &bf) {
		t.Fatalf("err = %v, want ExternalBuildFailureError", err)
	}
	if bf.ExitCode != 42 {
		t.Fatalf("ExitCode = %d, want 42", bf.ExitCode)
	}
	if _, err := os.Stat(layout.LibraryPath(platform.Linux)); !os.IsNotExist(err) {
		t.Fatalf("library staged despite failed build: %v", err)
	}
}

func TestE2E_BuildOutputIsStreamed(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	proj := newFakeProject(t)
	cargo := writeFakeCargo(t, "echo 'Compiling rgb-core v0.4.2'\necho 'warning: unused import' >&2\n"+buildBoth)
	p := provision.New(proj, staging.DefaultLayout(t.TempDir()), log)
	p.Cargo = cargo

	if err := p.Provision(context.Background(), platform.Linux); err != nil {
		t.Fatalf("provision: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Compiling rgb-core v0.4.2") {
		t.Fatalf("stdout line not logged:\n%s", out)
	}
	if !strings.Contains(out, "warning: unused import") {
		t.Fatalf("stderr line not logged:\n%s", out)
	}
}
