package config

import (
	"fmt"
	"strings"
)

// EnvironmentKind enumerates the deployment contexts the resolver knows about.
type EnvironmentKind int

const (
	Local EnvironmentKind = iota
	Testing
	Production
)

// DefaultEnvironment is used when APP_ENV is not set.
const DefaultEnvironment = "LOCAL"

var environmentNames = map[EnvironmentKind]string{
	Local:      "LOCAL",
	Testing:    "TESTING",
	Production: "PRODUCTION",
}

// ParseEnvironmentKind maps a case-insensitive environment name to its kind.
// Surrounding whitespace is ignored. Any other name yields ErrUnknownEnvironment.
func ParseEnvironmentKind(name string) (EnvironmentKind, error) {
	normalized := strings.ToUpper(strings.TrimSpace(name))
	for kind, kindName := range environmentNames {
		if kindName == normalized {
			return kind, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownEnvironment, name)
}

// String returns the upper-case name of the kind.
func (k EnvironmentKind) String() string {
	if name, ok := environmentNames[k]; ok {
		return name
	}

	return fmt.Sprintf("EnvironmentKind(%d)", int(k))
}
