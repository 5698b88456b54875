package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected *Config
		wantErr  bool
	}{
		{
			name: "all flags",
			args: []string{
				"-a", "127.0.0.1:9090", "-g", "127.0.0.1:9091", "-D", "postgres", "-d", "db",
				"-r", "redis:6379", "-m", "phone", "-t", "5", "-H", "argon2id", "-T", "sms", "-l", "debug",
			},
			expected: &Config{
				EndpointAddrHTTP:     "127.0.0.1:9090",
				EndpointAddrGRPC:     "127.0.0.1:9091",
				DatabaseDriver:       "postgres",
				DatabaseDSN:          "db",
				RedisAddr:            "redis:6379",
				IdentifierMode:       "phone",
				CodeValidityDuration: 5 * time.Minute,
				Hasher:               "argon2id",
				Transport:            "sms",
				LogLevel:             "debug",
			},
		},
		{
			name:     "unrelated flags ignored",
			args:     []string{"-c", "cfg.json", "-x", "1"},
			expected: &Config{CodeValidityDuration: 90 * time.Second},
		},
		{
			name:    "bad int",
			args:    []string{"-t", "soon"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{CodeValidityDuration: 90 * time.Second}

			err := parseFlags(config, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}
