package config

import (
	"github.com/MKhiriev/pathways/internal/logger"
)

const defaultBaseURL = "http://0.0.0.0:8000"

var (
	localDB = DB{
		User:     "brighthive_admin",
		Password: "passw0rd",
		Hostname: "postgres_service",
		Port:     "5432",
		Database: "pathways",
	}

	testingDB = DB{
		User:     "dt_admin_test",
		Password: "passw0rd",
		Hostname: "localhost",
		Port:     "10031",
		Database: "pathways_test",
	}

	testingContainer = Container{
		Name:         "test_postgres_service",
		Image:        "postgres",
		ImageVersion: "12",
	}
)

// Resolver builds a [Configuration] for a named environment.
//
// A Resolver holds no mutable state: every call takes a fresh snapshot of
// its [EnvProvider], so repeated calls with unchanged variables return equal
// results.
type Resolver struct {
	env    EnvProvider
	logger *logger.Logger
}

// Option customizes a [Resolver].
type Option func(*Resolver)

// WithEnvProvider replaces the process environment with provider.
func WithEnvProvider(provider EnvProvider) Option {
	return func(r *Resolver) {
		if provider != nil {
			r.env = provider
		}
	}
}

// WithLogger sets the logger used to trace resolution.
func WithLogger(log *logger.Logger) Option {
	return func(r *Resolver) {
		if log != nil {
			r.logger = log
		}
	}
}

// NewResolver returns a Resolver reading the process environment and
// discarding logs unless overridden by opts.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		env:    OSEnv{},
		logger: logger.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolve returns the configuration for the case-insensitive environment
// name, one of LOCAL, TESTING or PRODUCTION.
func (r *Resolver) Resolve(name string) (*Configuration, error) {
	kind, err := ParseEnvironmentKind(name)
	if err != nil {
		r.logger.Err(err).Str("environment", name).Msg("cannot resolve configuration")
		return nil, err
	}

	cfg, err := buildConfig(kind, r.env)
	if err != nil {
		r.logger.Err(err).Stringer("kind", kind).Msg("cannot build configuration")
		return nil, err
	}

	r.logger.Debug().Stringer("kind", kind).Msg("configuration resolved")
	return cfg, nil
}

// ResolveFromEnvironment reads APP_ENV (default LOCAL) and delegates to
// [Resolver.Resolve].
func (r *Resolver) ResolveFromEnvironment() (*Configuration, error) {
	var app appEnv
	if err := parseEnv(r.env, &app); err != nil {
		return nil, err
	}

	return r.Resolve(app.Name)
}

// buildConfig maps kind to its value set. It reads nothing but provider.
func buildConfig(kind EnvironmentKind, provider EnvProvider) (*Configuration, error) {
	switch kind {
	case Local:
		return newConfiguration(kind.String(), defaultBaseURL, localDB, true, true, nil), nil

	case Testing:
		var flag jenkinsFlagEnv
		if err := parseEnv(provider, &flag); err != nil {
			return nil, err
		}

		db := testingDB
		if flag.IsJenkinsTest != 0 {
			var jenkins jenkinsEnv
			if err := parseEnv(provider, &jenkins); err != nil {
				return nil, err
			}
			db.Hostname = jenkins.Hostname
			db.Port = jenkins.Port
		}

		container := testingContainer
		return newConfiguration(kind.String(), defaultBaseURL, db, true, true, &container), nil

	case Production:
		var prod productionEnv
		if err := parseEnv(provider, &prod); err != nil {
			return nil, err
		}

		db := DB{
			User:     prod.User,
			Password: prod.Password,
			Hostname: prod.Hostname,
			Port:     prod.Port,
			Database: prod.Database,
		}
		return newConfiguration(kind.String(), prod.BaseURL, db, false, false, nil), nil
	}

	return nil, ErrUnknownEnvironment
}
