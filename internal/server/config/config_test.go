package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":8000", c.EndpointAddrHTTP)
	assert.Equal(t, ":50051", c.EndpointAddrGRPC)
	assert.Equal(t, "sqlite", c.DatabaseDriver)
	assert.Equal(t, "email", c.IdentifierMode)
	assert.Equal(t, time.Hour, c.CodeValidityDuration)
	assert.Equal(t, "sha256", c.Hasher)
	assert.Equal(t, "log", c.Transport)
	assert.False(t, c.StrictLengths)
	require.NoError(t, c.Validate())
}

func TestLoadConfig_DefaultsWithoutSources(t *testing.T) {
	t.Setenv("GOPHAUTH_CONFIG", "")

	c, err := LoadConfig(nil)
	require.NoError(t, err)

	var want Config
	want.LoadDefaults()
	assert.Equal(t, &want, c)
}

func TestLoadConfig_Precedence(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"identifier_mode":        "phone",
		"database_dsn":           "from-json",
		"code_validity_duration": "30m",
		"transport":              "sms",
	})
	t.Setenv("GOPHAUTH_DATABASE_DSN", "from-env")
	t.Setenv("GOPHAUTH_TRANSPORT", "smtp")

	c, err := LoadConfig([]string{"-c", path, "-T", "log"})
	require.NoError(t, err)

	assert.Equal(t, "phone", c.IdentifierMode, "json overrides default")
	assert.Equal(t, "from-env", c.DatabaseDSN, "env overrides json")
	assert.Equal(t, "log", c.Transport, "flag overrides env")
	assert.Equal(t, 30*time.Minute, c.CodeValidityDuration)
}

func TestLoadConfig_InvalidRejected(t *testing.T) {
	t.Setenv("GOPHAUTH_CONFIG", "")

	_, err := LoadConfig([]string{"-m", "carrier-pigeon"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "identifier mode")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		ok     bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"postgres", func(c *Config) { c.DatabaseDriver = "postgres" }, true},
		{"mysql", func(c *Config) { c.DatabaseDriver = "mysql" }, false},
		{"argon2 without pepper", func(c *Config) { c.Hasher = "argon2id" }, false},
		{"argon2 with pepper", func(c *Config) { c.Hasher = "argon2id"; c.HashPepper = "p" }, true},
		{"md5", func(c *Config) { c.Hasher = "md5" }, false},
		{"unknown transport", func(c *Config) { c.Transport = "fax" }, false},
		{"zero validity", func(c *Config) { c.CodeValidityDuration = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Config
			c.LoadDefaults()
			tt.mutate(&c)
			if tt.ok {
				assert.NoError(t, c.Validate())
			} else {
				assert.Error(t, c.Validate())
			}
		})
	}
}
