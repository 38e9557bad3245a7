// Package rgbbuild implements the rgbbuild command line tool: it provisions
// librgb build artifacts into the staging layout and derives the link
// configuration consumers need to compile against them.
package rgbbuild

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"rgbsdk/internal/common/fsutil"
	"rgbsdk/internal/config"
	"rgbsdk/internal/linkcfg"
	"rgbsdk/internal/loadcheck"
	"rgbsdk/internal/metrics"
	"rgbsdk/internal/platform"
	"rgbsdk/internal/provision"
)

// probeSymbol is resolved by the load check; it is the entry point every
// librgb build exports.
const probeSymbol = "rgb_node_run"

// app carries the resolved configuration and logger for one invocation.
type app struct {
	cfg     config.Config
	log     zerolog.Logger
	invoked bool
}

// resolveConfig merges config file, environment and flag values, in that
// order, flags winning.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	flagString := func(name string) (string, bool) {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			f = cmd.InheritedFlags().Lookup(name)
		}
		if f == nil {
			return "", false
		}
		return f.Value.String(), f.Changed
	}

	var cfg config.Config
	path, _ := flagString("config")
	if path == "" {
		path = config.FindDefault(".")
	}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, fmt.Errorf("load config %s: %w", path, err)
		}
		cfg = loaded
	}
	cfg = config.ApplyEnv(cfg)
	for _, ov := range []struct {
		flag string
		dst  *string
	}{
		{"project", &cfg.Project},
		{"lib-dir", &cfg.LibDir},
		{"include-dir", &cfg.IncludeDir},
		{"cargo", &cfg.Cargo},
		{"log-level", &cfg.LogLevel},
		{"pushgateway", &cfg.Pushgateway},
	} {
		if v, changed := flagString(ov.flag); changed {
			*ov.dst = v
		}
	}
	return config.Finalize(cfg)
}

// platformArg picks the explicit platform argument or falls back to the
// host OS.
func platformArg(args []string) (platform.Key, error) {
	if len(args) > 0 {
		return platform.Parse(args[0])
	}
	return platform.Detect()
}

func runProvision(ctx context.Context, a *app, key platform.Key) error {
	p := provision.New(a.cfg.Project, a.cfg.Layout(), a.log)
	p.Cargo = a.cfg.Cargo
	var rec *metrics.Recorder
	if a.cfg.Pushgateway != "" {
		rec = metrics.NewRecorder()
		p.Metrics = rec
	}
	if err := p.Provision(ctx, key); err != nil {
		return err
	}
	// telemetry never fails the build
	if err := rec.Push(ctx, a.cfg.Pushgateway, key.String()); err != nil {
		a.log.Warn().Err(err).Msg("metrics push failed")
	}
	return nil
}

func runResolve(a *app, key platform.Key, format string, out io.Writer) error {
	res, err := linkcfg.Resolve(key, a.cfg.Layout())
	if err != nil {
		return err
	}
	switch format {
	case "env":
		fmt.Fprint(out, res.ExportLines())
	case "cgo":
		fmt.Fprint(out, res.CgoDirectives())
	case "json":
		b, err := res.JSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(b))
	default:
		return usageError{fmt.Errorf("unknown format %q (want env, cgo or json)", format)}
	}
	return nil
}

func runCheck(a *app, key platform.Key) error {
	layout := a.cfg.Layout()
	for _, path := range []string{layout.LibraryPath(key), layout.HeaderPath()} {
		if !fsutil.RegularFile(path) {
			return &provision.MissingDependencyError{Path: path, What: "staged artifact"}
		}
	}
	host, err := platform.Detect()
	if err != nil || host != key {
		a.log.Info().Str("platform", key.String()).Msg("artifacts staged; load probe skipped off host platform")
		return nil
	}
	if err := loadcheck.Verify(layout.LibraryPath(key), probeSymbol); err != nil {
		return err
	}
	a.log.Info().Str("lib", layout.LibraryPath(key)).Str("symbol", probeSymbol).Msg("library loads and resolves")
	return nil
}

func runPlatforms(a *app, out io.Writer) error {
	layout := a.cfg.Layout()
	for _, k := range platform.All() {
		status := "-"
		if layout.Provisioned(k) {
			status = "provisioned"
		}
		fmt.Fprintf(out, "%s\t%s\n", k, status)
	}
	return nil
}
