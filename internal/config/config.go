// Package config resolves engine settings from a YAML file with environment
// overrides. Precedence is env > file > default.
package config

// #region imports
import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/danielpatrickdp/scene-state/go-engine/internal/extract"
)

// #endregion

// #region config

// Config holds every runtime setting of the engine.
type Config struct {
	DBPath           string `yaml:"db_path"`
	Strategy         string `yaml:"strategy"` // "heuristic" | "remote"
	RemoteEndpoint   string `yaml:"remote_endpoint"`
	RemoteTimeoutMs  int    `yaml:"remote_timeout_ms"`
	Granularity      string `yaml:"granularity"` // "date" | "datetime"
	BlockLabel       string `yaml:"block_label"`
	MaxNoteChars     int    `yaml:"max_note_chars"`
	OnlyShowOnChange bool   `yaml:"only_show_on_change"`
}

// Default returns the standard configuration.
func Default() Config {
	return Config{
		DBPath:           "scene_state.db",
		Strategy:         "heuristic",
		RemoteEndpoint:   "",
		RemoteTimeoutMs:  1500,
		Granularity:      "date",
		BlockLabel:       "SCENE_STATE",
		MaxNoteChars:     280,
		OnlyShowOnChange: true,
	}
}

// #endregion config

// #region load

// Load reads path (if non-empty and present) over the defaults, then applies
// environment overrides. A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.DBPath = envOr("SCENE_DB", c.DBPath)
	c.Strategy = envOr("SCENE_STRATEGY", c.Strategy)
	c.RemoteEndpoint = envOr("SCENE_REMOTE_ENDPOINT", c.RemoteEndpoint)
	c.Granularity = envOr("SCENE_GRANULARITY", c.Granularity)
	c.BlockLabel = envOr("SCENE_BLOCK_LABEL", c.BlockLabel)
	if v := os.Getenv("SCENE_REMOTE_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.RemoteTimeoutMs = n
		}
	}
	if v := os.Getenv("SCENE_MAX_NOTE_CHARS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.MaxNoteChars = n
		}
	}
	if v := os.Getenv("SCENE_ONLY_SHOW_ON_CHANGE"); v != "" {
		c.OnlyShowOnChange = v != "false" && v != "0"
	}
}

func (c Config) validate() error {
	switch c.Strategy {
	case "heuristic", "remote":
	default:
		return fmt.Errorf("unknown strategy %q", c.Strategy)
	}
	switch c.Granularity {
	case "date", "datetime":
	default:
		return fmt.Errorf("unknown granularity %q", c.Granularity)
	}
	if c.Strategy == "remote" && c.RemoteEndpoint == "" {
		return fmt.Errorf("strategy remote requires remote_endpoint")
	}
	return nil
}

// #endregion load

// #region accessors

// GranularityValue maps the configured string onto the extract type.
func (c Config) GranularityValue() extract.Granularity {
	if c.Granularity == "datetime" {
		return extract.GranularityDateTime
	}
	return extract.GranularityDate
}

// RemoteTimeout returns the remote call timeout as a duration.
func (c Config) RemoteTimeout() time.Duration {
	return time.Duration(c.RemoteTimeoutMs) * time.Millisecond
}

// #endregion accessors

// #region helpers

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
