// Package config loads runtime configuration for the gophauth CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config,
//     or the GOPHAUTH_CLIENT_CONFIG environment variable.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the HTTP API
//	-g string   address:port of the gRPC endpoint
//	-p string   protocol used to reach the server, "http" or "grpc"
//	-t int      request timeout (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "10s" or integer nanoseconds:
//
//	{
//	  "server_http_addr": "http://127.0.0.1:8000",
//	  "server_grpc_addr": "127.0.0.1:50051",
//	  "protocol": "http",
//	  "request_timeout": "10s"
//	}
package config
