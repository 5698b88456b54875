package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8000")
//	-g string   gRPC bind address, empty disables gRPC
//	-D string   database driver, "postgres" or "sqlite"
//	-d string   database DSN
//	-r string   Redis address for the verification code store
//	-m string   identifier mode, "email" or "phone"
//	-t int      code validity, minutes
//	-H string   password hasher, "sha256" or "argon2id"
//	-T string   code transport, "log", "smtp" or "sms"
//	-l string   log level
//
// Duration flags are accepted as integers in minutes.
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-g", "-D", "-d", "-r", "-m", "-t", "-H", "-T", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "HTTP address and port to run server")
	fs.StringVar(&config.EndpointAddrGRPC, "g", config.EndpointAddrGRPC, "gRPC address and port to run server")
	fs.StringVar(&config.DatabaseDriver, "D", config.DatabaseDriver, "database driver")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.RedisAddr, "r", config.RedisAddr, "redis address for verification codes")
	fs.StringVar(&config.IdentifierMode, "m", config.IdentifierMode, "identifier mode (email|phone)")
	codeValidity := fs.Int("t", int(config.CodeValidityDuration.Minutes()), "code validity (in minutes)")
	fs.StringVar(&config.Hasher, "H", config.Hasher, "password hasher (sha256|argon2id)")
	fs.StringVar(&config.Transport, "T", config.Transport, "code transport (log|smtp|sms)")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	// only an explicit -t overrides, so sub-minute values from JSON/env survive
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			config.CodeValidityDuration = time.Duration(*codeValidity) * time.Minute
		}
	})
	return nil
}
