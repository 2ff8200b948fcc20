// Package config provides configuration management for the key-value store.
// It loads settings from an optional YAML file and environment variables
// (expanded via os.ExpandEnv, with an optional .env file loaded first).
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// DefaultCompactionThreshold is the pendingCompact byte count at which a
// Set/Remove triggers a merge: 64 KiB.
const DefaultCompactionThreshold int64 = 1 << 16

// Config holds the operator-tunable settings for the engine and CLI. The
// wire format itself (header width, big-endian lengths) is fixed at the
// record layer and is not configurable here.
type Config struct {
	DataDir             string `yaml:"DATA_DIR"`
	CompactionThreshold int64  `yaml:"COMPACTION_THRESHOLD"`
	LogLevel            string `yaml:"LOG_LEVEL"`
}

// Default returns the configuration used when no config file, env var, or
// CLI flag overrides a setting: the current working directory as the data
// directory, a 64 KiB compaction threshold, and info-level logging.
func Default() *Config {
	return &Config{
		DataDir:             ".",
		CompactionThreshold: DefaultCompactionThreshold,
		LogLevel:            "info",
	}
}

// Load builds a Config starting from Default(), optionally overlaying a
// YAML file at path (if path is non-empty and the file exists — a missing
// file is not an error, unlike the presence of a malformed one), then
// applying MINIDB_DATA_DIR / MINIDB_COMPACTION_THRESHOLD / MINIDB_LOG_LEVEL
// environment variables, loaded via an optional .env file first.
func Load(path string) (*Config, error) {
	cfg := Default()

	if err := godotenv.Load(); err != nil {
		slog.Debug("config: no .env file found or error loading it", "error", err)
	} else {
		slog.Debug("config: .env file loaded successfully")
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), cfg); err != nil {
				return nil, err
			}
		} else if !os.IsNotExist(err) {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

// SlogLevel parses LogLevel into a slog.Level, defaulting to Info for an
// empty or unrecognized value rather than failing Load over a typo.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("MINIDB_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("MINIDB_COMPACTION_THRESHOLD"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.CompactionThreshold = n
		} else {
			slog.Warn("config: ignoring malformed MINIDB_COMPACTION_THRESHOLD", "value", v, "error", err)
		}
	}
	if v := os.Getenv("MINIDB_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
