package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"rgbsdk/internal/common/fsutil"
	"rgbsdk/internal/provision"
	"rgbsdk/internal/staging"
)

// Config holds runtime parameters for rgbbuild.
// Zero values mean "unspecified" and are replaced by Finalize.
type Config struct {
	Project     string `json:"project" yaml:"project" toml:"project"`
	LibDir      string `json:"lib_dir" yaml:"lib_dir" toml:"lib_dir"`
	IncludeDir  string `json:"include_dir" yaml:"include_dir" toml:"include_dir"`
	Cargo       string `json:"cargo" yaml:"cargo" toml:"cargo"`
	LogLevel    string `json:"log_level" yaml:"log_level" toml:"log_level"`
	Pushgateway string `json:"pushgateway" yaml:"pushgateway" toml:"pushgateway"`
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}

// FindDefault probes dir for an rgbbuild config file in preference order and
// returns the first hit, or "" when none exists.
func FindDefault(dir string) string {
	for _, name := range []string{"rgbbuild.yaml", "rgbbuild.yml", "rgbbuild.json", "rgbbuild.toml"} {
		p := filepath.Join(dir, name)
		if fsutil.RegularFile(p) {
			return p
		}
	}
	return ""
}

// ApplyEnv overlays RGBBUILD_* environment variables onto cfg. Set variables
// win over file values; unset ones leave cfg untouched.
func ApplyEnv(cfg Config) Config {
	for _, ov := range []struct {
		env string
		dst *string
	}{
		{"RGBBUILD_PROJECT", &cfg.Project},
		{"RGBBUILD_LIB_DIR", &cfg.LibDir},
		{"RGBBUILD_INCLUDE_DIR", &cfg.IncludeDir},
		{"RGBBUILD_CARGO", &cfg.Cargo},
		{"RGBBUILD_LOG_LEVEL", &cfg.LogLevel},
		{"RGBBUILD_PUSHGATEWAY", &cfg.Pushgateway},
	} {
		if v := os.Getenv(ov.env); v != "" {
			*ov.dst = v
		}
	}
	return cfg
}

// Finalize fills the remaining zero values with defaults and expands a
// leading ~ in the project path. Staging roots default to the current
// working directory's lib/ and include/.
func Finalize(cfg Config) (Config, error) {
	if cfg.Project == "" {
		cfg.Project = provision.DefaultProject
	}
	proj, err := fsutil.ExpandHome(cfg.Project)
	if err != nil {
		return cfg, err
	}
	cfg.Project = proj
	if cfg.LibDir == "" {
		cfg.LibDir = "lib"
	}
	if cfg.IncludeDir == "" {
		cfg.IncludeDir = "include"
	}
	if cfg.Cargo == "" {
		cfg.Cargo = provision.DefaultCargo
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return cfg, nil
}

// Layout returns the staging layout the config points at.
func (c Config) Layout() staging.Layout {
	return staging.Layout{LibRoot: c.LibDir, IncludeRoot: c.IncludeDir}
}
