// Package config provides the configuration loader for barrelint.
package config

import (
	"os"

	"github.com/devindavies/barrelint/internal/core/domain"
	"github.com/devindavies/barrelint/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct{}

// NewFileConfigLoader creates a new FileConfigLoader.
func NewFileConfigLoader() *FileConfigLoader {
	return &FileConfigLoader{}
}

// Load reads the configuration file at path. A missing file yields the
// defaults; a malformed or invalid file is an error.
func (l *FileConfigLoader) Load(path string) (domain.Config, error) {
	return Load(path)
}

// Load reads a configuration file from the given path and returns a
// domain.Config with defaults applied for absent fields.
func Load(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return domain.Config{}, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Config{}, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	cfg.AllowList = file.AllowList
	cfg.Ignore = file.Ignore
	if file.MaxModuleGraphSize != nil {
		cfg.MaxModuleGraphSize = *file.MaxModuleGraphSize
	}
	if file.BarrelThreshold != nil {
		cfg.BarrelThreshold = *file.BarrelThreshold
	}
	if file.Debug != nil {
		cfg.Debug = *file.Debug
	}
	if len(file.ExportConditions) > 0 {
		cfg.Resolve.ExportConditions = file.ExportConditions
	}
	if len(file.MainFields) > 0 {
		cfg.Resolve.MainFields = file.MainFields
	}
	if len(file.Extensions) > 0 {
		cfg.Resolve.Extensions = file.Extensions
	}
	if file.TSConfig != nil {
		cfg.Resolve.TSConfig = &domain.TSConfigRef{
			ConfigFile: file.TSConfig.ConfigFile,
			References: file.TSConfig.References,
		}
	}
	if len(file.Alias) > 0 {
		cfg.Resolve.Alias = file.Alias
	}

	if err := validate(cfg); err != nil {
		return domain.Config{}, err
	}
	return cfg, nil
}

func validate(cfg domain.Config) error {
	if cfg.MaxModuleGraphSize < 0 {
		return zerr.With(zerr.New("maxModuleGraphSizeAllowed must not be negative"), "value", cfg.MaxModuleGraphSize)
	}
	if cfg.BarrelThreshold < 1 {
		return zerr.With(zerr.New("amountOfExportsToConsiderModuleAsBarrel must be at least 1"), "value", cfg.BarrelThreshold)
	}
	if cfg.Resolve.TSConfig != nil && cfg.Resolve.TSConfig.ConfigFile == "" {
		return zerr.New("tsconfig.configFile must be set when tsconfig is configured")
	}
	return nil
}
