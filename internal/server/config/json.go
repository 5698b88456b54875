package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/gophauth/internal/flagx"
	"github.com/dmitrijs2005/gophauth/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Durations use
// timex.Duration so both "1h" and integer nanoseconds are accepted.
type JsonConfig struct {
	EndpointAddrHTTP     string         `json:"endpoint_addr_http"`
	EndpointAddrGRPC     string         `json:"endpoint_addr_grpc"`
	DatabaseDriver       string         `json:"database_driver"`
	DatabaseDSN          string         `json:"database_dsn"`
	RedisAddr            string         `json:"redis_addr"`
	RedisPassword        string         `json:"redis_password"`
	RedisDB              int            `json:"redis_db"`
	IdentifierMode       string         `json:"identifier_mode"`
	StrictLengths        *bool          `json:"strict_lengths"`
	CodeValidityDuration timex.Duration `json:"code_validity_duration"`
	Hasher               string         `json:"hasher"`
	HashPepper           string         `json:"hash_pepper"`
	Transport            string         `json:"transport"`
	SMTPHost             string         `json:"smtp_host"`
	SMTPPort             int            `json:"smtp_port"`
	SMTPUser             string         `json:"smtp_user"`
	SMTPPassword         string         `json:"smtp_password"`
	SMTPFrom             string         `json:"smtp_from"`
	SMSEndpoint          string         `json:"sms_endpoint"`
	SMSToken             string         `json:"sms_token"`
	LogLevel             string         `json:"log_level"`
	OTLPEndpoint         string         `json:"otlp_endpoint"`
}

// parseJson loads the file named by -c/-config (or GOPHAUTH_CONFIG) and
// copies every field present in it onto config. Absent or zero fields keep
// their previous value. No file configured is not an error.
func parseJson(config *Config, args []string) error {
	path := flagx.ConfigFile(args, flagx.ConfigFileEnv)
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

	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.DatabaseDriver, c.DatabaseDriver)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.RedisAddr, c.RedisAddr)
	setString(&config.RedisPassword, c.RedisPassword)
	if c.RedisDB != 0 {
		config.RedisDB = c.RedisDB
	}
	setString(&config.IdentifierMode, c.IdentifierMode)
	if c.StrictLengths != nil {
		config.StrictLengths = *c.StrictLengths
	}
	if c.CodeValidityDuration.Duration != 0 {
		config.CodeValidityDuration = c.CodeValidityDuration.Duration
	}
	setString(&config.Hasher, c.Hasher)
	setString(&config.HashPepper, c.HashPepper)
	setString(&config.Transport, c.Transport)
	setString(&config.SMTPHost, c.SMTPHost)
	if c.SMTPPort != 0 {
		config.SMTPPort = c.SMTPPort
	}
	setString(&config.SMTPUser, c.SMTPUser)
	setString(&config.SMTPPassword, c.SMTPPassword)
	setString(&config.SMTPFrom, c.SMTPFrom)
	setString(&config.SMSEndpoint, c.SMSEndpoint)
	setString(&config.SMSToken, c.SMSToken)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.OTLPEndpoint, c.OTLPEndpoint)

	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
