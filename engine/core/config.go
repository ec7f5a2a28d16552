package core

import (
	"bytes"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
)

// Config holds the tunables of the library. Only logging is configurable,
// the math routines themselves have no runtime settings.
type Config struct {
	Log LogConfig `toml:"log"`
}

type LogConfig struct {
	// Level is one of debug, info, warn, error or fatal.
	Level           string `toml:"level"`
	Prefix          string `toml:"prefix"`
	ReportCaller    bool   `toml:"report_caller"`
	ReportTimestamp bool   `toml:"report_timestamp"`
}

func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:           "info",
			Prefix:          "Math 📐 ",
			ReportCaller:    true,
			ReportTimestamp: true,
		},
	}
}

/**
 * @brief Parses a TOML document into a Config. Keys missing from the
 * document keep their default values, unknown keys are rejected.
 *
 * @param data The raw TOML document.
 * @return The parsed configuration or an error wrapping ErrInvalidConfig.
 */
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}
	if _, err := log.ParseLevel(cfg.Log.Level); err != nil {
		return Config{}, fmt.Errorf("%w: log level %q", ErrInvalidConfig, cfg.Log.Level)
	}
	return cfg, nil
}

// LoadConfig reads and parses the TOML file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return ParseConfig(data)
}

// Configure applies cfg to the shared logger.
func Configure(cfg Config) error {
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, cfg.Log.Level)
	}
	applyLogConfig(cfg.Log, level)
	return nil
}

// LogLevel reports the level currently set on the shared logger.
func LogLevel() string {
	return getLogger().GetLevel().String()
}
