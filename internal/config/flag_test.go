package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"-alg", "Sha3", "-kdf", "argon2id", "-f", "sites.json", "-l", "debug", "-log-format", "json"},
			expected: &Config{
				Algorithm: "Sha3", KDF: "argon2id", SitesFile: "sites.json", LogLevel: "debug", LogFormat: "json",
			},
		},
		{
			name: "unknown flags ignored, defaults kept",
			args: []string{"-c", "cfg.json", "-x", "1", "-alg=Blake2b"},
			expected: &Config{
				Algorithm: "Blake2b", KDF: "scrypt", LogLevel: "warn", LogFormat: "text",
			},
		},
		{name: "flag without value", args: []string{"-alg"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{}
			config.LoadDefaults()
			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config, tt.args) })
				assert.Empty(t, cmp.Diff(tt.expected, config))
			} else {
				require.Panics(t, func() { parseFlags(config, tt.args) })
			}
		})
	}
}
