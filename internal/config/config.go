// Package config provides configuration loading for the provenance
// converter.
package config

import (
	configloader "github.com/GabrielNunesIT/go-libs/config-loader"

	"github.com/GabrielNunesIT/prov-converter/internal/component"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "PROV_"

// Config holds the application configuration: one mapping per configurable
// component, passed verbatim to that component's Configure.
type Config struct {
	// Converter configures the document converter (executable, arguments,
	// input-formats, output-formats).
	Converter component.Config `koanf:"converter"`

	// Comparator configures the document comparator (executable, arguments,
	// formats).
	Comparator component.Config `koanf:"comparator"`
}

// Load reads the configuration file at path using go-libs config-loader,
// with PROV_-prefixed environment variables taking precedence.
func Load(path string) (*Config, error) {
	defaults := Config{}

	loader := configloader.NewConfigLoader(
		configloader.WithDefaults(defaults),
		configloader.WithFile[Config](path),
		configloader.WithEnv[Config](EnvPrefix),
	)

	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}
