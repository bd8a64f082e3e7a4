package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dherbrich/oandash/internal/flagx"
	"github.com/dherbrich/oandash/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Pointer fields tell
// an absent key apart from an empty one.
type JsonConfig struct {
	BaseURI        *string         `json:"base_uri"`
	ConfigDir      *string         `json:"config_dir"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	LogLevel       *string         `json:"log_level"`
}

// parseJson overlays cfg with the file named by -c/-config in args. Without
// such a flag cfg is left untouched.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.BaseURI != nil {
		cfg.BaseURI = *jc.BaseURI
	}
	if jc.ConfigDir != nil {
		cfg.ConfigDir = *jc.ConfigDir
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	return nil
}
