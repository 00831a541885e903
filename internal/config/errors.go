package config

import (
	"errors"
	"fmt"
)

// ErrConfiguration is the root of every error returned by this package.
// Each specific kind below wraps it, so callers may test either for the
// concrete kind or for the family as a whole.
var ErrConfiguration = errors.New("configuration error")

var (
	// ErrConfigNotFound indicates that the JSON configuration file does not
	// exist or is not a regular file.
	ErrConfigNotFound = fmt.Errorf("%w: config file not found", ErrConfiguration)
	// ErrConfigParse indicates that the JSON configuration file could not be
	// read or decoded.
	ErrConfigParse = fmt.Errorf("%w: config file cannot be parsed", ErrConfiguration)
	// ErrConfigKeyMissing indicates that the requested environment, or one of
	// its required fields, is absent from the JSON configuration.
	ErrConfigKeyMissing = fmt.Errorf("%w: config key missing", ErrConfiguration)
	// ErrUnknownEnvironment indicates an environment name outside of
	// LOCAL, TESTING and PRODUCTION.
	ErrUnknownEnvironment = fmt.Errorf("%w: unknown environment", ErrConfiguration)
	// ErrInvalidValue indicates an environment variable whose value cannot be
	// converted to the expected type (e.g. a non-integer IS_JENKINS_TEST).
	ErrInvalidValue = fmt.Errorf("%w: invalid value", ErrConfiguration)
)
