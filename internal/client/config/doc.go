// Package config loads runtime configuration for the U-fresher CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend HTTP API
//	-t int      request timeout (seconds)
//	-d string   path to the local state database
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "5s" or integer nanoseconds:
//
//	{
//	  "base_url": "http://127.0.0.1:8080",
//	  "request_timeout": "5s",
//	  "local_db_path": "ufresher.db",
//	  "admin_signup_code": "..."
//	}
//
// The admin sign-up code is deliberately not a flag: it would end up in
// shell history and process listings. Configure it via the JSON file or
// the UFRESHER_ADMIN_CODE environment variable.
package config
