package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"sdkrun/internal/paths"
)

// ErrNotFound indicates that no configuration file exists at the expected
// location. There is no defaulting: a missing configuration is fatal.
var ErrNotFound = errors.New("SDK configuration file not found")

// ErrInvalid indicates that a configuration file exists but cannot be
// parsed into the expected shape.
var ErrInvalid = errors.New("SDK configuration file is invalid")

// SDK describes one installed SDK tree. All fields are opaque strings; the
// path is not required to exist at load time and names are not required to
// be unique (first match in file order wins during selection).
type SDK struct {
	Name                   string `toml:"name" yaml:"name"`
	Path                   string `toml:"path" yaml:"path"`
	Version                string `toml:"version" yaml:"version"`
	TargetTriple           string `toml:"target_triple" yaml:"target_triple"`
	MacOSDeploymentTarget  string `toml:"macosx_deployment_target" yaml:"macosx_deployment_target"`
	IOSDeploymentTarget    string `toml:"ios_deployment_target" yaml:"ios_deployment_target"`
}

// Config holds the ordered SDK records loaded from disk. The slice keeps
// source order, which drives default-selection tie-breaking, and is never
// mutated after load.
type Config struct {
	SDKs []SDK `toml:"sdk" yaml:"sdk"`
}

// Load reads the configuration from the standard sdkrun config directory.
func Load() (Config, error) {
	return LoadDir(paths.ConfigDir())
}

// LoadDir reads the configuration from dir, probing config.toml first and
// config.yaml second. It returns ErrNotFound (naming the expected TOML
// path) when neither file exists, and ErrInvalid when a file exists but
// does not parse.
func LoadDir(dir string) (Config, error) {
	for _, name := range []string{paths.ConfigFileName, paths.AltConfigFileName} {
		path := filepath.Join(dir, name)
		if !paths.FileExists(path) {
			continue
		}
		return LoadFile(path)
	}
	return Config{}, fmt.Errorf("%w at %s", ErrNotFound, filepath.Join(dir, paths.ConfigFileName))
}

// LoadFile reads and parses a single configuration file, choosing the
// decoder by file extension (.yaml/.yml parse as YAML, everything else as
// TOML).
func LoadFile(path string) (Config, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("%w at %s", ErrNotFound, path)
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(contents, &cfg)
	default:
		err = toml.Unmarshal(contents, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("%w: parse %s: %v", ErrInvalid, path, err)
	}
	return cfg, nil
}
