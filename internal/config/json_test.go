package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSON(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoadFromFile_Success(t *testing.T) {
	// Arrange
	p := writeJSON(t, `{"local": {"base_url":"http://x","psql_user":"u","psql_password":"p","psql_hostname":"h","psql_port":"1","psql_database":"d"}}`)

	// Act
	cfg, err := LoadFromFile(p, "local")

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "local", cfg.Environment)
	assert.Equal(t, "http://x", cfg.BaseURL)
	assert.Equal(t, DB{User: "u", Password: "p", Hostname: "h", Port: "1", Database: "d"}, cfg.DB)
	assert.Equal(t, "postgresql://u:p@h:1/d", cfg.DatabaseURI)
	assert.True(t, cfg.Debug)
	assert.True(t, cfg.Testing)
	assert.False(t, cfg.TrackModifications)
	assert.Nil(t, cfg.Container)
}

func TestLoadFromFile_PicksRequestedEnvironment(t *testing.T) {
	// Arrange
	p := writeJSON(t, `{
		"local":   {"base_url":"http://local","psql_user":"lu","psql_password":"lp","psql_hostname":"lh","psql_port":"1","psql_database":"ld"},
		"testing": {"base_url":"http://test","psql_user":"tu","psql_password":"tp","psql_hostname":"th","psql_port":"2","psql_database":"td"}
	}`)

	// Act
	cfg, err := LoadFromFile(p, "testing")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "http://test", cfg.BaseURL)
	assert.Equal(t, "postgresql://tu:tp@th:2/td", cfg.DatabaseURI)
}

func TestLoadFromFile_NumericValues(t *testing.T) {
	// Arrange
	p := writeJSON(t, `{"local": {"base_url":"http://x","psql_user":"u","psql_password":"p","psql_hostname":"h","psql_port":5432,"psql_database":"d"}}`)

	// Act
	cfg, err := LoadFromFile(p, "local")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "5432", cfg.DB.Port)
	assert.Equal(t, "postgresql://u:p@h:5432/d", cfg.DatabaseURI)
}

func TestLoadFromFile_ProductionFlags(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		wantFlags   bool
	}{
		{"lower-case production", "production", false},
		{"upper-case production", "PRODUCTION", false},
		{"testing", "testing", true},
		{"custom name", "staging", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			p := writeJSON(t, `{"`+tt.environment+`": {"base_url":"b","psql_user":"u","psql_password":"p","psql_hostname":"h","psql_port":"1","psql_database":"d"}}`)

			// Act
			cfg, err := LoadFromFile(p, tt.environment)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.wantFlags, cfg.Debug)
			assert.Equal(t, tt.wantFlags, cfg.Testing)
		})
	}
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	// Act
	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), "definitely-does-not-exist.json"), "local")

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrConfigNotFound)
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestLoadFromFile_DirectoryIsNotFound(t *testing.T) {
	// Act
	cfg, err := LoadFromFile(t.TempDir(), "local")

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestLoadFromFile_ParseErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{ this is not json }`},
		{"truncated json", `{"local": {"base_url": "http://x"`},
		{"top level array", `[{"local": {}}]`},
		{"environment is a string", `{"local": "postgresql://u:p@h:1/d"}`},
		{"boolean value", `{"local": {"base_url":true,"psql_user":"u","psql_password":"p","psql_hostname":"h","psql_port":"1","psql_database":"d"}}`},
		{"object value", `{"local": {"base_url":"b","psql_user":{"name":"u"},"psql_password":"p","psql_hostname":"h","psql_port":"1","psql_database":"d"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			p := writeJSON(t, tt.body)

			// Act
			cfg, err := LoadFromFile(p, "local")

			// Assert
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, ErrConfigParse)
		})
	}
}

func TestLoadFromFile_MissingEnvironment(t *testing.T) {
	// Arrange
	p := writeJSON(t, `{"testing": {"base_url":"b","psql_user":"u","psql_password":"p","psql_hostname":"h","psql_port":"1","psql_database":"d"}}`)

	// Act
	cfg, err := LoadFromFile(p, "local")

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrConfigKeyMissing)
	assert.Contains(t, err.Error(), `"local"`)
}

func TestLoadFromFile_EnvironmentKeyIsCaseSensitive(t *testing.T) {
	// Arrange
	p := writeJSON(t, `{"local": {"base_url":"b","psql_user":"u","psql_password":"p","psql_hostname":"h","psql_port":"1","psql_database":"d"}}`)

	// Act
	_, err := LoadFromFile(p, "LOCAL")

	// Assert
	assert.ErrorIs(t, err, ErrConfigKeyMissing)
}

func TestLoadFromFile_MissingField(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		missingKey string
	}{
		{
			name:       "absent psql_password",
			body:       `{"local": {"base_url":"b","psql_user":"u","psql_hostname":"h","psql_port":"1","psql_database":"d"}}`,
			missingKey: "psql_password",
		},
		{
			name:       "null base_url",
			body:       `{"local": {"base_url":null,"psql_user":"u","psql_password":"p","psql_hostname":"h","psql_port":"1","psql_database":"d"}}`,
			missingKey: "base_url",
		},
		{
			name:       "null environment",
			body:       `{"local": null}`,
			missingKey: "psql_database",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			p := writeJSON(t, tt.body)

			// Act
			cfg, err := LoadFromFile(p, "local")

			// Assert
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, ErrConfigKeyMissing)
			assert.Contains(t, err.Error(), tt.missingKey)
		})
	}
}

func TestLoadFromFile_EmptyStringsAreAccepted(t *testing.T) {
	// Arrange
	p := writeJSON(t, `{"local": {"base_url":"","psql_user":"","psql_password":"","psql_hostname":"","psql_port":"","psql_database":""}}`)

	// Act
	cfg, err := LoadFromFile(p, "local")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "postgresql://:@:/", cfg.DatabaseURI)
}

func TestFindConfigFile(t *testing.T) {
	// Arrange
	dir := t.TempDir()

	// Act
	_, err := FindConfigFile(dir)

	// Assert
	assert.ErrorIs(t, err, ErrConfigNotFound)

	// Arrange
	expected := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(expected, []byte(`{}`), 0o600))

	// Act
	p, err := FindConfigFile(dir)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, expected, p)
}

func TestDefaultConfigDir(t *testing.T) {
	dir, err := DefaultConfigDir()
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(dir))
}
