package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/dherbrich/oandash/internal/flagx"
)

var shellFlags = []string{"-a", "-d", "-t", "-l"}

// parseFlags overlays cfg with the shell flags found in args. Flags owned by
// other components (such as -c) are filtered out first.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("oandash", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.BaseURI, "a", cfg.BaseURI, "base URI of the REST API")
	fs.StringVar(&cfg.ConfigDir, "d", cfg.ConfigDir, "directory holding "+StoreFileName)
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	var seconds int
	fs.IntVar(&seconds, "t", 0, "request timeout (in seconds)")

	if err := fs.Parse(flagx.FilterArgs(args, shellFlags)); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	// -t replaces the timeout only when given; sub-second JSON values survive.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(seconds) * time.Second
		}
	})
	if cfg.RequestTimeout <= 0 {
		return fmt.Errorf("parse flags: timeout must be positive, got %s", cfg.RequestTimeout)
	}
	return nil
}
