package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/treykane/cli-blocks/internal/logging"
)

const (
	configDirName  = ".cli-blocks"
	configFileName = "config.json"
)

// Animation defaults for the floating toolbar.
const (
	DefaultShowDurationMS = 300
	DefaultHideDurationMS = 50
	DefaultEasing         = "inOutQuad"
	DefaultFrameRate      = 60
)

// DefaultWatchIntervalMS is how often the open document is polled for
// external changes.
const DefaultWatchIntervalMS = 2000

var ErrNotConfigured = errors.New("cli-blocks is not configured")

var log = logging.New("config")

// Config stores user-defined cli-blocks settings.
type Config struct {
	Document       string `json:"document,omitempty"`
	RTL            bool   `json:"rtl,omitempty"`
	ShowDurationMS int    `json:"show_duration_ms,omitempty"`
	HideDurationMS int    `json:"hide_duration_ms,omitempty"`
	Easing         string `json:"easing,omitempty"`
	FrameRate      int    `json:"frame_rate,omitempty"`

	// WatchIntervalMS controls document polling. Zero uses the default and
	// a negative value disables watching.
	WatchIntervalMS int `json:"watch_interval_ms,omitempty"`

	// Keybindings maps action names (e.g. "toolbar.navigate_up") to a key.
	Keybindings map[string]string `json:"keybindings,omitempty"`
}

// Default returns a configuration with every animation setting filled in.
func Default() Config {
	return Config{
		ShowDurationMS: DefaultShowDurationMS,
		HideDurationMS: DefaultHideDurationMS,
		Easing:         DefaultEasing,
		FrameRate:      DefaultFrameRate,
	}
}

// ShowDuration is the fade-in duration.
func (c Config) ShowDuration() time.Duration {
	return time.Duration(c.ShowDurationMS) * time.Millisecond
}

// HideDuration is the fade-out duration.
func (c Config) HideDuration() time.Duration {
	return time.Duration(c.HideDurationMS) * time.Millisecond
}

// FrameInterval is the delay between animation frames.
func (c Config) FrameInterval() time.Duration {
	rate := c.FrameRate
	if rate <= 0 {
		rate = DefaultFrameRate
	}
	return time.Second / time.Duration(rate)
}

// WatchInterval is the document poll interval, or 0 when watching is off.
func (c Config) WatchInterval() time.Duration {
	switch {
	case c.WatchIntervalMS < 0:
		return 0
	case c.WatchIntervalMS == 0:
		return DefaultWatchIntervalMS * time.Millisecond
	}
	return time.Duration(c.WatchIntervalMS) * time.Millisecond
}

// ConfigPath returns the configuration file path.
func ConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

// Exists reports whether the config file exists.
func Exists() (bool, error) {
	path, err := ConfigPath()
	if err != nil {
		return false, err
	}
	_, err = os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Load reads and validates the saved configuration. Missing animation
// settings are filled with their defaults.
func Load() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, ErrNotConfigured
		}
		return Config{}, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg, err = normalize(cfg)
	if err != nil {
		return Config{}, err
	}
	log.Debug("loaded config", "path", path, "document", cfg.Document)
	return cfg, nil
}

// Save writes configuration to disk.
func Save(cfg Config) error {
	cfg, err := normalize(cfg)
	if err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	log.Info("saved config", "path", path)
	return nil
}

func normalize(cfg Config) (Config, error) {
	if cfg.ShowDurationMS < 0 {
		return Config{}, fmt.Errorf("invalid show_duration_ms %d: must not be negative", cfg.ShowDurationMS)
	}
	if cfg.HideDurationMS < 0 {
		return Config{}, fmt.Errorf("invalid hide_duration_ms %d: must not be negative", cfg.HideDurationMS)
	}
	if cfg.FrameRate < 0 {
		return Config{}, fmt.Errorf("invalid frame_rate %d: must not be negative", cfg.FrameRate)
	}

	if cfg.ShowDurationMS == 0 {
		cfg.ShowDurationMS = DefaultShowDurationMS
	}
	if cfg.HideDurationMS == 0 {
		cfg.HideDurationMS = DefaultHideDurationMS
	}
	if cfg.FrameRate == 0 {
		cfg.FrameRate = DefaultFrameRate
	}

	easing := strings.TrimSpace(cfg.Easing)
	if easing == "" {
		easing = DefaultEasing
	}
	if !IsKnownEasing(easing) {
		log.Warn("unknown easing, using default", "easing", easing, "default", DefaultEasing)
		easing = DefaultEasing
	}
	cfg.Easing = easing

	if strings.TrimSpace(cfg.Document) != "" {
		doc, err := NormalizeDocumentPath(cfg.Document)
		if err != nil {
			return Config{}, fmt.Errorf("invalid document: %w", err)
		}
		cfg.Document = doc
	} else {
		cfg.Document = ""
	}

	return cfg, nil
}

// Easings lists the easing names accepted in the config file.
var Easings = []string{"inOutQuad", "inOutSine", "inOutCubic", "linear"}

// IsKnownEasing reports whether name is one of Easings.
func IsKnownEasing(name string) bool {
	for _, known := range Easings {
		if known == name {
			return true
		}
	}
	return false
}

// NormalizeDocumentPath expands and normalizes a document path.
func NormalizeDocumentPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", errors.New("path is required")
	}

	expanded, err := expandHome(trimmed)
	if err != nil {
		return "", err
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", err
	}

	return filepath.Clean(abs), nil
}

func expandHome(path string) (string, error) {
	if path == "~" {
		return os.UserHomeDir()
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~/")), nil
	}
	return path, nil
}
