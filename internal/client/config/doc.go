// Package config loads runtime configuration for the oandash shell.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URI of the brokerage REST API
//	-d string   directory holding users.json
//	-t int      request timeout (seconds)
//	-l string   log level: debug, info, warn or error
//
// # JSON schema
//
// Timeouts use timex.Duration, so they may be strings like "10s" or integer
// nanoseconds. Keys that are absent keep their earlier value:
//
//	{
//	  "base_uri": "https://api-fxtrade.oanda.com",
//	  "config_dir": "/home/alice/.config/oandash",
//	  "request_timeout": "10s",
//	  "log_level": "warn"
//	}
package config
