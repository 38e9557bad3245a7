// Package provision builds the native librgb library through its external
// cargo project and installs the resulting artifacts into the staging
// layout consumed by the cgo bindings.
package provision

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"rgbsdk/internal/common/fsutil"
	"rgbsdk/internal/metrics"
	"rgbsdk/internal/platform"
	"rgbsdk/internal/staging"
)

const (
	manifestName = "Cargo.toml"

	// DefaultProject is where provisioning expects the librgb checkout when
	// no explicit project path is configured.
	DefaultProject = "~/src/librgb"

	// DefaultCargo is the build command resolved via PATH unless overridden.
	DefaultCargo = "cargo"
)

// ArtifactBundle is the build output staged for one platform: the shared
// library binary and the C header.
type ArtifactBundle struct {
	LibraryPath string
	HeaderPath  string
}

// Provisioner stages librgb build artifacts. All paths are injected;
// nothing is discovered from the working directory.
type Provisioner struct {
	Project string         // librgb cargo project root
	Layout  staging.Layout // destination layout
	Cargo   string         // cargo binary; empty means DefaultCargo
	Log     zerolog.Logger
	Metrics *metrics.Recorder // optional; nil records nothing

	run Runner // replaced in tests
}

// New returns a Provisioner that runs the real cargo build.
func New(project string, layout staging.Layout, log zerolog.Logger) *Provisioner {
	return &Provisioner{
		Project: project,
		Layout:  layout,
		Cargo:   DefaultCargo,
		Log:     log,
		run:     runCmd,
	}
}

func (p *Provisioner) runner() Runner {
	if p.run == nil {
		return runCmd
	}
	return p.run
}

func (p *Provisioner) cargoBin() string {
	if p.Cargo == "" {
		return DefaultCargo
	}
	return p.Cargo
}

// Provision builds librgb in release mode and installs the platform's
// shared library under lib/<platform>/ plus the C header under include/.
// The run is idempotent: an unchanged build re-stages nothing, and a
// failure at any step leaves previously staged artifacts intact.
func (p *Provisioner) Provision(ctx context.Context, key platform.Key) error {
	if !key.Known() {
		return &platform.UnsupportedError{Name: string(key)}
	}
	log := p.Log.With().Str("platform", key.String()).Logger()

	// Both checks run before any side effect. Letting cargo discover a
	// missing project yields a far worse diagnostic, and a failed
	// precondition must not leave freshly created staging directories
	// behind.
	if !fsutil.PathExists(p.Project) {
		return &MissingDependencyError{Path: p.Project, What: "librgb project"}
	}
	manifest := filepath.Join(p.Project, manifestName)
	if !fsutil.RegularFile(manifest) {
		return &MissingDependencyError{Path: manifest, What: "cargo manifest"}
	}

	if err := p.Layout.Ensure(key); err != nil {
		return err
	}

	log.Info().Str("project", p.Project).Msg("building librgb (release)")
	buildStart := time.Now()
	err := p.runner()(ctx, log, Cmd{
		Path: p.cargoBin(),
		Args: []string{"build", "--release"},
		Dir:  p.Project,
	})
	p.Metrics.ObserveStage("build", time.Since(buildStart))
	if err != nil {
		return &ExternalBuildFailureError{Platform: key, ExitCode: exitStatus(err), Err: err}
	}

	bundle, err := p.locateBundle(key)
	if err != nil {
		return err
	}

	stageStart := time.Now()
	for _, art := range []struct {
		name, src, dst string
	}{
		{"library", bundle.LibraryPath, p.Layout.LibraryPath(key)},
		{"header", bundle.HeaderPath, p.Layout.HeaderPath()},
	} {
		copied, err := syncFile(art.src, art.dst)
		if err != nil {
			return err
		}
		if fi, statErr := os.Stat(art.dst); statErr == nil {
			p.Metrics.ObserveArtifact(art.name, fi.Size())
		}
		if copied {
			log.Info().Str("src", art.src).Str("dst", art.dst).Msgf("staged %s", art.name)
		} else {
			log.Debug().Str("dst", art.dst).Msgf("%s up to date", art.name)
		}
	}
	p.Metrics.ObserveStage("stage", time.Since(stageStart))
	p.Metrics.MarkSuccess(time.Now())

	log.Info().
		Str("lib", p.Layout.LibraryPath(key)).
		Str("header", p.Layout.HeaderPath()).
		Msg("provisioned")
	return nil
}

// locateBundle returns the artifact paths the external build is contracted
// to produce for key. A build that exits zero without producing them broke
// that contract, which reports as a build failure rather than staging IO.
func (p *Provisioner) locateBundle(key platform.Key) (ArtifactBundle, error) {
	bundle := ArtifactBundle{
		LibraryPath: filepath.Join(p.Project, "target", "release", key.SharedLibrary()),
		HeaderPath:  filepath.Join(p.Project, staging.HeaderName),
	}
	for _, path := range []string{bundle.LibraryPath, bundle.HeaderPath} {
		if !fsutil.RegularFile(path) {
			return ArtifactBundle{}, &ExternalBuildFailureError{
				Platform: key,
				ExitCode: 0,
				Err:      fmt.Errorf("build produced no %s", path),
			}
		}
	}
	return bundle, nil
}
