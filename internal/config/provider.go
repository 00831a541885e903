package config

//go:generate mockgen -source=provider.go -destination=../mock/env_provider_mock.go -package=mock

import (
	"maps"
	"os"

	"github.com/caarlos0/env/v11"
)

// EnvProvider gives the resolver read-only access to environment variables.
//
// Environ returns a snapshot of all variables as a key/value map. The
// resolver never writes to the returned map, and implementations must not
// return nil: an empty map means "no variables set".
type EnvProvider interface {
	Environ() map[string]string
}

// OSEnv reads the process environment.
type OSEnv struct{}

// Environ implements [EnvProvider].
func (OSEnv) Environ() map[string]string {
	return env.ToMap(os.Environ())
}

// MapEnv is a fixed set of variables, typically used in tests so that
// resolution does not depend on the real process state.
type MapEnv map[string]string

// Environ implements [EnvProvider]. It returns a copy, never nil.
func (m MapEnv) Environ() map[string]string {
	out := make(map[string]string, len(m))
	maps.Copy(out, m)
	return out
}
