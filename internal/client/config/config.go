package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	DefaultBaseURI        = "https://api-fxtrade.oanda.com"
	DefaultRequestTimeout = 10 * time.Second
	DefaultLogLevel       = "warn"

	// StoreFileName is the credential store inside ConfigDir.
	StoreFileName = "users.json"
	appDirName    = "oandash"
)

// Config holds runtime settings for the shell.
type Config struct {
	BaseURI        string
	ConfigDir      string
	RequestTimeout time.Duration
	LogLevel       string
}

// userConfigDir is swapped in tests.
var userConfigDir = os.UserConfigDir

// LoadDefaults populates c with the built-in defaults. ConfigDir falls back
// to the working directory when the platform has no user config location.
func (c *Config) LoadDefaults() {
	c.BaseURI = DefaultBaseURI
	c.RequestTimeout = DefaultRequestTimeout
	c.LogLevel = DefaultLogLevel

	base, err := userConfigDir()
	if err != nil || base == "" {
		base = "."
	}
	c.ConfigDir = filepath.Join(base, appDirName)
}

// StorePath is the location of the encrypted credential store.
func (c *Config) StorePath() string {
	return filepath.Join(c.ConfigDir, StoreFileName)
}

// LoadConfig applies defaults, then the JSON file named in args (if any),
// then the flags in args. Later sources take precedence.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
