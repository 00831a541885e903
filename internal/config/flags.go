package config

import (
	"flag"
)

// Selection decides which configuration is produced: an environment name
// and, optionally, a JSON file to load it from.
//
// Struct tags:
//   - env        — environment variable name (caarlos0/env).
//   - envDefault — value used when the variable is unset or empty.
type Selection struct {
	// Environment is the environment name.
	// Env: APP_ENV, flags: -e / -env
	Environment string `env:"APP_ENV" envDefault:"LOCAL"`

	// ConfigFile is the optional path to a JSON configuration file. When
	// non-empty the configuration is loaded from the file instead of being
	// resolved from the built-in value sets.
	// Env: CONFIG, flags: -c / -config
	ConfigFile string `env:"CONFIG"`
}

// RegisterFlags defines the selection flags on fs and returns the Selection
// they populate once fs.Parse has run.
//
// Flags:
//
//	-e/-env    environment name (LOCAL, TESTING, PRODUCTION)
//	-c/-config json file path with configs
func RegisterFlags(fs *flag.FlagSet) *Selection {
	sel := &Selection{}

	fs.StringVar(&sel.Environment, "e", "", "Environment name (LOCAL, TESTING, PRODUCTION)")
	fs.StringVar(&sel.Environment, "env", "", "Environment name (alias)")
	fs.StringVar(&sel.ConfigFile, "c", "", "JSON config file path")
	fs.StringVar(&sel.ConfigFile, "config", "", "JSON config file path (alias)")

	return sel
}
