package config

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestRegisterFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected Selection
	}{
		{
			name:     "no flags",
			args:     nil,
			expected: Selection{},
		},
		{
			name:     "short flags",
			args:     []string{"-e", "testing", "-c", "/etc/pathways/config.json"},
			expected: Selection{Environment: "testing", ConfigFile: "/etc/pathways/config.json"},
		},
		{
			name:     "long flags",
			args:     []string{"-env=production", "-config=config.json"},
			expected: Selection{Environment: "production", ConfigFile: "config.json"},
		},
		{
			name:     "last alias wins",
			args:     []string{"-e", "local", "-env", "testing"},
			expected: Selection{Environment: "testing"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			fs := newTestFlagSet()
			sel := RegisterFlags(fs)

			// Act
			err := fs.Parse(tt.args)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, *sel)
		})
	}
}

func TestRegisterFlags_UnknownFlag(t *testing.T) {
	fs := newTestFlagSet()
	RegisterFlags(fs)

	err := fs.Parse([]string{"-unknown"})
	assert.Error(t, err)
}
