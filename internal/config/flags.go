package config

import (
	"flag"

	"github.com/dmitrijs2005/fort/internal/flagx"
)

// parseFlags populates Config fields from command-line flags. Only the flags
// listed in doc.go are considered; everything else in args is ignored.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-alg", "-kdf", "-f", "-l", "-log-format"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.StringVar(&cfg.Algorithm, "alg", cfg.Algorithm, "hash algorithm (Sha512, Sha3, Blake2b)")
	fs.StringVar(&cfg.KDF, "kdf", cfg.KDF, "master key stretching function (scrypt, argon2id)")
	fs.StringVar(&cfg.SitesFile, "f", cfg.SitesFile, "path to site profiles JSON")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format (text, json)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
