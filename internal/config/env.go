package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix prefixes every environment variable the overlay reads.
const EnvPrefix = "COMMENTSCREEN_"

// ApplyEnv overrides fields from the `env` tags of Config. A nil environ
// reads the process environment; unset variables leave fields untouched.
func (c *Config) ApplyEnv(environ map[string]string) error {
	err := env.ParseWithOptions(c, env.Options{
		Prefix:      EnvPrefix,
		Environment: environ,
	})
	if err != nil {
		return fmt.Errorf("environment: %w", err)
	}
	return nil
}
