package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv loads configuration from environment variables into target,
// which must be a pointer to a struct with env tags.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	return nil
}

// ParseEnvWith behaves like ParseEnv but reads from vars instead of the
// process environment. Tests use it to avoid touching global state.
func ParseEnvWith(target any, vars map[string]string) error {
	if err := env.ParseWithOptions(target, env.Options{Environment: vars}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	return nil
}
