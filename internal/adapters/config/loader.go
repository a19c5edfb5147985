// Package config provides the configuration loader for crucible.
package config

import (
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"go.trai.ch/crucible/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file looked up in the working directory.
const DefaultFilename = "crucible.yaml"

// crucibleFile is the structure of the crucible.yaml configuration file.
type crucibleFile struct {
	Cauldron    string   `yaml:"cauldron"`
	Server      string   `yaml:"server"`
	Deployments []string `yaml:"deployments"`
	Packager    string   `yaml:"packager"`
}

// envOverrides are applied on top of the file. The access key never lives in
// the file; it only arrives through the environment.
type envOverrides struct {
	Server    string `env:"CRUCIBLE_SERVER"`
	AccessKey string `env:"CRUCIBLE_ACCESS_KEY"`
}

// Loader reads crucible.yaml from a working directory.
type Loader struct {
	Filename string
}

// NewLoader creates a Loader for the default filename.
func NewLoader() *Loader {
	return &Loader{Filename: DefaultFilename}
}

// Load reads the configuration from the given working directory, applies
// environment overrides, and fills in defaults.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	path := filepath.Join(cwd, l.Filename)

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	var file crucibleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	var overrides envOverrides
	if err := env.Parse(&overrides); err != nil {
		return nil, zerr.Wrap(err, "failed to parse environment overrides")
	}

	cfg := &domain.Config{
		CauldronPath: file.Cauldron,
		ServerURL:    file.Server,
		AccessKey:    overrides.AccessKey,
		Deployments:  file.Deployments,
		Packager:     file.Packager,
	}
	if overrides.Server != "" {
		cfg.ServerURL = overrides.Server
	}
	applyDefaults(cfg)

	if cfg.ServerURL == "" {
		return nil, zerr.With(zerr.New("server URL not configured"), "config", path)
	}

	return cfg, nil
}

func applyDefaults(cfg *domain.Config) {
	if cfg.CauldronPath == "" {
		cfg.CauldronPath = domain.DefaultCauldronPath
	}
	if len(cfg.Deployments) == 0 {
		cfg.Deployments = []string{"Staging", "Production"}
	}
	if cfg.Packager == "" {
		cfg.Packager = "yarn"
	}
}
