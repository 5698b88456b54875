package config

import (
	"fmt"
	"time"
)

// Protocols the CLI can speak.
const (
	ProtocolHTTP = "http"
	ProtocolGRPC = "grpc"
)

// Config holds runtime settings for the gophauth CLI.
//
// Fields:
//   - ServerHTTPAddr: base URL of the HTTP API, used when Protocol is "http".
//   - ServerGRPCAddr: host:port of the gRPC endpoint, used when Protocol is "grpc".
//   - RequestTimeout: upper bound for one request.
type Config struct {
	ServerHTTPAddr string
	ServerGRPCAddr string
	Protocol       string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerHTTPAddr = "http://127.0.0.1:8000"
	c.ServerGRPCAddr = "127.0.0.1:50051"
	c.Protocol = ProtocolHTTP
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones. args exclude the program name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}

	switch cfg.Protocol {
	case ProtocolHTTP, ProtocolGRPC:
	default:
		return nil, fmt.Errorf("unsupported protocol %q", cfg.Protocol)
	}
	if cfg.RequestTimeout <= 0 {
		return nil, fmt.Errorf("request timeout must be positive, got %s", cfg.RequestTimeout)
	}
	return cfg, nil
}
