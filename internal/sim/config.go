package sim

import (
	"os"

	yaml "github.com/goccy/go-yaml"
)

// Config mirrors the optional runner config file.
type Config struct {
	TraceCSV string `yaml:"trace_csv"` // decision trace output, empty = off
	LogLevel string `yaml:"log_level"` // "info" (by default)
}

func defaultConfig() Config {
	return Config{
		LogLevel: "info",
	}
}

// LoadConfig reads YAML and overrides defaults; a missing or unreadable
// file yields the defaults only.
func LoadConfig(path string) Config {
	cfg := defaultConfig()

	if path == "" {
		return cfg
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	_ = yaml.Unmarshal(data, &cfg)

	// sanity clamps
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return cfg
}
