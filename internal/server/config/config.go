// Package config handles configuration for the server component: defaults,
// a JSON overlay, environment variables and command-line flags, applied in
// that order.
package config

import (
	"fmt"
	"time"
)

// Config holds runtime settings for the gophauth server.
//
// Fields:
//   - EndpointAddrHTTP / EndpointAddrGRPC: bind addresses of the public APIs.
//     An empty gRPC address disables the gRPC listener.
//   - DatabaseDriver: "postgres" (pgx) or "sqlite" (modernc).
//   - DatabaseDSN: connection string for DatabaseDriver.
//   - RedisAddr: when set, verification codes are kept in Redis instead of SQL.
//   - IdentifierMode: "email" or "phone"; one scheme per deployment.
//   - StrictLengths: enforce name/password length bounds (see validation).
//   - CodeValidityDuration: how long an issued code can be redeemed.
//   - Hasher / HashPepper: password digest algorithm and its deployment key.
//   - Transport: how codes are delivered, "log", "smtp" or "sms".
type Config struct {
	EndpointAddrHTTP     string        `env:"HTTP_ADDR"`
	EndpointAddrGRPC     string        `env:"GRPC_ADDR"`
	DatabaseDriver       string        `env:"DATABASE_DRIVER"`
	DatabaseDSN          string        `env:"DATABASE_DSN"`
	RedisAddr            string        `env:"REDIS_ADDR"`
	RedisPassword        string        `env:"REDIS_PASSWORD"`
	RedisDB              int           `env:"REDIS_DB"`
	IdentifierMode       string        `env:"IDENTIFIER_MODE"`
	StrictLengths        bool          `env:"STRICT_LENGTHS"`
	CodeValidityDuration time.Duration `env:"CODE_VALIDITY"`
	Hasher               string        `env:"HASHER"`
	HashPepper           string        `env:"HASH_PEPPER"`
	Transport            string        `env:"TRANSPORT"`
	SMTPHost             string        `env:"SMTP_HOST"`
	SMTPPort             int           `env:"SMTP_PORT"`
	SMTPUser             string        `env:"SMTP_USER"`
	SMTPPassword         string        `env:"SMTP_PASSWORD"`
	SMTPFrom             string        `env:"SMTP_FROM"`
	SMSEndpoint          string        `env:"SMS_ENDPOINT"`
	SMSToken             string        `env:"SMS_TOKEN"`
	LogLevel             string        `env:"LOG_LEVEL"`
	OTLPEndpoint         string        `env:"OTLP_ENDPOINT"`
}

// LoadDefaults populates Config with development defaults: a local SQLite
// file, email identifiers and codes written to the log.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8000"
	c.EndpointAddrGRPC = ":50051"
	c.DatabaseDriver = "sqlite"
	c.DatabaseDSN = "file:gophauth.db?_pragma=busy_timeout(5000)"
	c.IdentifierMode = "email"
	c.CodeValidityDuration = time.Hour
	c.Hasher = "sha256"
	c.Transport = "log"
	c.SMTPPort = 587
	c.LogLevel = "info"
}

// Validate rejects enum values the server cannot wire.
func (c *Config) Validate() error {
	switch c.DatabaseDriver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver %q", c.DatabaseDriver)
	}
	switch c.IdentifierMode {
	case "email", "phone":
	default:
		return fmt.Errorf("unsupported identifier mode %q", c.IdentifierMode)
	}
	switch c.Hasher {
	case "sha256":
	case "argon2id":
		if c.HashPepper == "" {
			return fmt.Errorf("argon2id hasher requires a hash pepper")
		}
	default:
		return fmt.Errorf("unsupported hasher %q", c.Hasher)
	}
	switch c.Transport {
	case "log", "smtp", "sms":
	default:
		return fmt.Errorf("unsupported transport %q", c.Transport)
	}
	if c.CodeValidityDuration <= 0 {
		return fmt.Errorf("code validity must be positive, got %s", c.CodeValidityDuration)
	}
	return nil
}

// LoadConfig builds a Config from defaults, then the optional JSON file,
// then GOPHAUTH_* environment variables, then command-line flags.
// args are the process arguments without the program name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
