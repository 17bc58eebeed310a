// Package config loads runtime configuration for the Kontax CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend API
//	-i int      online status check interval (seconds)
//	-d string   data directory for the local database and voice notes
//	-b string   base URL for QR payload links
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "3s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "http://127.0.0.1:8080",
//	  "online_check_interval": "3s",
//	  "data_dir": "/var/lib/kontax",
//	  "qr_base_url": "http://harshpatel958.github.io/kontax-landing/"
//	}
//
// Primary API
//
//   - type Config                     — holds endpoint, interval, data dir and QR base URL
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
