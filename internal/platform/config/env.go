// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every explorer environment variable.
const EnvPrefix = "CO2_EXPLORER_"

// ParseEnv loads configuration from environment variables.
//
// Struct tags name the variable without the shared prefix, so a field tagged
// `env:"PORT"` reads CO2_EXPLORER_PORT.
func ParseEnv(target any) error {
	return ParseEnvWithPrefix(target, EnvPrefix)
}

// ParseEnvWithPrefix loads configuration using a caller-chosen prefix.
func ParseEnvWithPrefix(target any, prefix string) error {
	if target == nil {
		return fmt.Errorf("parse env: target is required")
	}
	opts := env.Options{Prefix: strings.TrimSpace(prefix)}
	if err := env.ParseWithOptions(target, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
