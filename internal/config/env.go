// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment through the `env` and
// `envPrefix` tags of [StructuredConfig].
func parseEnv(cfg any) error {
	return parseEnvFrom(cfg, nil)
}

// parseEnvFrom is parseEnv over an explicit variable set. A nil environ
// reads the process environment.
func parseEnvFrom(cfg any, environ map[string]string) error {
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}
	return nil
}
