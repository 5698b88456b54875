package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	t.Setenv("GOPHAUTH_IDENTIFIER_MODE", "phone")
	t.Setenv("GOPHAUTH_CODE_VALIDITY", "45m")
	t.Setenv("GOPHAUTH_STRICT_LENGTHS", "true")
	t.Setenv("GOPHAUTH_SMTP_PORT", "2525")

	cfg := &Config{DatabaseDSN: "untouched"}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "phone", cfg.IdentifierMode)
	assert.Equal(t, 45*time.Minute, cfg.CodeValidityDuration)
	assert.True(t, cfg.StrictLengths)
	assert.Equal(t, 2525, cfg.SMTPPort)
	assert.Equal(t, "untouched", cfg.DatabaseDSN)
}

func TestParseEnv_Error(t *testing.T) {
	t.Setenv("GOPHAUTH_SMTP_PORT", "not-an-int")

	err := parseEnv(&Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}
