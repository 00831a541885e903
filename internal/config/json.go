package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ConfigFileName is the file looked up by [FindConfigFile].
const ConfigFileName = "config.json"

// jsonEnvironment is one top-level entry of the configuration file. Pointer
// fields distinguish an absent (or null) key from an empty string.
type jsonEnvironment struct {
	BaseURL      *jsonValue `json:"base_url"`
	PSQLUser     *jsonValue `json:"psql_user"`
	PSQLPassword *jsonValue `json:"psql_password"`
	PSQLHostname *jsonValue `json:"psql_hostname"`
	PSQLPort     *jsonValue `json:"psql_port"`
	PSQLDatabase *jsonValue `json:"psql_database"`
}

// jsonValue is a string that also accepts a JSON number, kept as written
// (e.g. "psql_port": 5432 becomes "5432").
type jsonValue string

func (v *jsonValue) UnmarshalJSON(b []byte) error {
	var raw any
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	switch value := raw.(type) {
	case string:
		*v = jsonValue(value)
		return nil
	case json.Number:
		*v = jsonValue(value.String())
		return nil
	default:
		return fmt.Errorf("expected string or number, got %s", b)
	}
}

// DefaultConfigDir returns the directory holding the running executable,
// where deployments place config.json next to the binary.
func DefaultConfigDir() (string, error) {
	execPath, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("%w: error locating executable: %w", ErrConfigNotFound, err)
	}

	return filepath.Dir(execPath), nil
}

// FindConfigFile returns the path of config.json inside dir, or
// ErrConfigNotFound when there is no such regular file.
func FindConfigFile(dir string) (string, error) {
	configFile := filepath.Join(dir, ConfigFileName)
	if !isRegularFile(configFile) {
		return "", fmt.Errorf("%w: cannot find configuration file in path %s", ErrConfigNotFound, dir)
	}

	return configFile, nil
}

// LoadFromFile reads the JSON configuration at path and builds the
// configuration stored under the top-level key environment (exact match).
//
// Debug and Testing are true unless environment names the PRODUCTION kind.
func LoadFromFile(path, environment string) (*Configuration, error) {
	if !isRegularFile(path) {
		return nil, fmt.Errorf("%w: error loading configuration file %s", ErrConfigNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: error reading a json file %s: %w", ErrConfigParse, path, err)
	}

	var environments map[string]json.RawMessage
	if err := json.Unmarshal(data, &environments); err != nil {
		return nil, fmt.Errorf("%w: error decoding json configs %s: %w", ErrConfigParse, path, err)
	}

	rawEnv, ok := environments[environment]
	if !ok {
		return nil, fmt.Errorf("%w: cannot find environment %q in %s", ErrConfigKeyMissing, environment, path)
	}

	var fields jsonEnvironment
	if err := json.Unmarshal(rawEnv, &fields); err != nil {
		return nil, fmt.Errorf("%w: error decoding environment %q: %w", ErrConfigParse, environment, err)
	}

	if err := fields.checkRequired(); err != nil {
		return nil, fmt.Errorf("environment %q in %s: %w", environment, path, err)
	}

	db := DB{
		User:     string(*fields.PSQLUser),
		Password: string(*fields.PSQLPassword),
		Hostname: string(*fields.PSQLHostname),
		Port:     string(*fields.PSQLPort),
		Database: string(*fields.PSQLDatabase),
	}

	debug := true
	if kind, err := ParseEnvironmentKind(environment); err == nil && kind == Production {
		debug = false
	}

	return newConfiguration(environment, string(*fields.BaseURL), db, debug, debug, nil), nil
}

func (e *jsonEnvironment) checkRequired() error {
	required := []struct {
		key   string
		value *jsonValue
	}{
		{"base_url", e.BaseURL},
		{"psql_user", e.PSQLUser},
		{"psql_password", e.PSQLPassword},
		{"psql_hostname", e.PSQLHostname},
		{"psql_port", e.PSQLPort},
		{"psql_database", e.PSQLDatabase},
	}

	var err error
	for _, r := range required {
		if r.value == nil {
			err = errors.Join(err, fmt.Errorf("%w: %s", ErrConfigKeyMissing, r.key))
		}
	}

	return err
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	return info.Mode().IsRegular()
}
