package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/gophauth/internal/flagx"
	"github.com/dmitrijs2005/gophauth/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	ServerHTTPAddr string         `json:"server_http_addr"`
	ServerGRPCAddr string         `json:"server_grpc_addr"`
	Protocol       string         `json:"protocol"`
	RequestTimeout timex.Duration `json:"request_timeout"`
}

// parseJson overlays Config with values loaded from a JSON file. Fields
// absent from the file keep their previous value.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigFile(args, flagx.ClientConfigFileEnv)
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("decode config file: %w", err)
	}

	if c.ServerHTTPAddr != "" {
		cfg.ServerHTTPAddr = c.ServerHTTPAddr
	}
	if c.ServerGRPCAddr != "" {
		cfg.ServerGRPCAddr = c.ServerGRPCAddr
	}
	if c.Protocol != "" {
		cfg.Protocol = c.Protocol
	}
	if c.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = c.RequestTimeout.Duration
	}
	return nil
}
