// Package config loads runtime configuration for the fort CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config (see parseJson).
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-alg string         hash algorithm: Sha512, Sha3 or Blake2b
//	-kdf string         master key stretching: scrypt or argon2id
//	-f string           path to the site profiles JSON file
//	-l string           log level: debug, info, warn, error
//	-log-format string  text or json
//
// # JSON schema
//
//	{
//	  "algorithm": "Sha512",
//	  "kdf": "scrypt",
//	  "sites_file": "sites.json",
//	  "log_level": "warn",
//	  "log_format": "text",
//	  "templates": [{"name": "Bank", "pattern": "nnnnnn"}]
//	}
//
// Custom templates can only be declared in JSON; they are appended to the
// built-in catalog in file order.
package config
