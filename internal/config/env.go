// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// appEnv names the environment to resolve.
type appEnv struct {
	// Name is the environment name. An empty value counts as unset.
	// Env: APP_ENV
	Name string `env:"APP_ENV" envDefault:"LOCAL"`
}

// jenkinsFlagEnv is read by the Testing kind only.
type jenkinsFlagEnv struct {
	// IsJenkinsTest is an integer-valued boolean: any non-zero value
	// switches the Testing kind to CI database settings.
	// Env: IS_JENKINS_TEST
	IsJenkinsTest int `env:"IS_JENKINS_TEST" envDefault:"0"`
}

// jenkinsEnv holds the database address injected by the CI runner's linked
// postgres container. As with every envDefault here, an empty variable
// counts as unset and falls back to the default.
type jenkinsEnv struct {
	Hostname string `env:"DB_PORT_5432_TCP_ADDR" envDefault:"0.0.0.0"`
	Port     string `env:"DB_PORT_5432_TCP_PORT" envDefault:"5432"`
}

// productionEnv holds every production field; absent variables stay "".
type productionEnv struct {
	BaseURL  string `env:"BASE_URL"`
	User     string `env:"PSQL_USER"`
	Password string `env:"PSQL_PASSWORD"`
	Hostname string `env:"PSQL_HOSTNAME"`
	Port     string `env:"PSQL_PORT"`
	Database string `env:"PSQL_DATABASE"`
}

// parseEnv populates cfg from the variables exposed by provider using the
// caarlos0/env library. Struct fields are mapped via their `env` and
// `envDefault` tags.
//
// Conversion failures are reported as ErrInvalidValue.
func parseEnv(provider EnvProvider, cfg any) error {
	vars := provider.Environ()
	if vars == nil {
		// env.Options falls back to os.Environ for a nil map.
		vars = map[string]string{}
	}

	err := env.ParseWithOptions(cfg, env.Options{Environment: vars})
	if err != nil {
		return fmt.Errorf("%w: error getting env configs: %w", ErrInvalidValue, err)
	}

	return nil
}
