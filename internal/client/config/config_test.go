package config

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/flagx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8000", c.ServerHTTPAddr)
	assert.Equal(t, "127.0.0.1:50051", c.ServerGRPCAddr)
	assert.Equal(t, ProtocolHTTP, c.Protocol)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
}

func TestLoadConfig_UsesDefaultsWithoutArgs(t *testing.T) {
	t.Setenv(flagx.ClientConfigFileEnv, "")

	cfg, err := LoadConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8000", cfg.ServerHTTPAddr)
}

func TestLoadConfig_RejectsUnknownProtocol(t *testing.T) {
	t.Setenv(flagx.ClientConfigFileEnv, "")

	_, err := LoadConfig([]string{"-p", "carrier-pigeon"})
	assert.ErrorContains(t, err, "unsupported protocol")
}

func TestLoadConfig_RejectsZeroTimeout(t *testing.T) {
	t.Setenv(flagx.ClientConfigFileEnv, "")

	_, err := LoadConfig([]string{"-t", "0"})
	assert.Error(t, err)
}
