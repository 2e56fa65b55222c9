// Package config loads runtime configuration for the account vault CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   base directory for the account vault
//	-s string   SQLite DSN for the session snapshot store
//	-l string   minimum log level (debug|info|warn|error)
//
// # JSON schema
//
//	{
//	  "vault_dir": "vault",
//	  "snapshot_dsn": "session.db",
//	  "log_level": "info"
//	}
//
// Note: this package does not read environment variables; use the JSON file
// or flags to configure values.
package config
