package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadReturnsErrNotConfiguredWhenMissing(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	_, err := Load()
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := Config{Document: "~/docs/page.toml", RTL: true}
	if err := Save(cfg); err != nil {
		t.Fatalf("save config: %v", err)
	}

	exists, err := Exists()
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	expected := filepath.Join(home, "docs", "page.toml")
	if loaded.Document != expected {
		t.Fatalf("expected document %q, got %q", expected, loaded.Document)
	}
	if !loaded.RTL {
		t.Fatal("expected rtl to round trip")
	}
	if loaded.ShowDurationMS != DefaultShowDurationMS || loaded.HideDurationMS != DefaultHideDurationMS {
		t.Fatalf("expected default durations, got show=%d hide=%d", loaded.ShowDurationMS, loaded.HideDurationMS)
	}
	if loaded.Easing != DefaultEasing {
		t.Fatalf("expected default easing %q, got %q", DefaultEasing, loaded.Easing)
	}
}

func TestLoadKeepsCustomAnimationSettings(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	writeConfig(t, home, `{"show_duration_ms": 450, "hide_duration_ms": 20, "easing": "inOutSine", "frame_rate": 30, "keybindings": {"toolbar.navigate_up": "backspace"}}`)

	loaded, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if loaded.ShowDuration() != 450*time.Millisecond {
		t.Fatalf("expected show duration 450ms, got %v", loaded.ShowDuration())
	}
	if loaded.HideDuration() != 20*time.Millisecond {
		t.Fatalf("expected hide duration 20ms, got %v", loaded.HideDuration())
	}
	if loaded.Easing != "inOutSine" {
		t.Fatalf("expected easing inOutSine, got %q", loaded.Easing)
	}
	if got := loaded.FrameInterval(); got != time.Second/30 {
		t.Fatalf("expected frame interval %v, got %v", time.Second/30, got)
	}
	if loaded.Document != "" {
		t.Fatalf("expected empty document, got %q", loaded.Document)
	}
	if got := loaded.Keybindings["toolbar.navigate_up"]; got != "backspace" {
		t.Fatalf("expected keybinding override to load, got %q", got)
	}
}

func TestLoadFallsBackOnUnknownEasing(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	writeConfig(t, home, `{"easing": "bounce"}`)

	loaded, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if loaded.Easing != DefaultEasing {
		t.Fatalf("expected fallback easing %q, got %q", DefaultEasing, loaded.Easing)
	}
}

func TestLoadRejectsNegativeDurations(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	writeConfig(t, home, `{"hide_duration_ms": -5}`)

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "hide_duration_ms") {
		t.Fatalf("expected hide_duration_ms validation error, got %v", err)
	}
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	writeConfig(t, home, `{"document":`)

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestDefaultFillsAnimationSettings(t *testing.T) {
	cfg := Default()
	if cfg.ShowDuration() != 300*time.Millisecond {
		t.Fatalf("expected 300ms show duration, got %v", cfg.ShowDuration())
	}
	if cfg.HideDuration() != 50*time.Millisecond {
		t.Fatalf("expected 50ms hide duration, got %v", cfg.HideDuration())
	}
	if cfg.FrameInterval() != time.Second/60 {
		t.Fatalf("expected 60fps frame interval, got %v", cfg.FrameInterval())
	}
}

func TestWatchInterval(t *testing.T) {
	cases := []struct {
		ms   int
		want time.Duration
	}{
		{0, 2 * time.Second},
		{500, 500 * time.Millisecond},
		{-1, 0},
	}
	for _, tc := range cases {
		cfg := Config{WatchIntervalMS: tc.ms}
		if got := cfg.WatchInterval(); got != tc.want {
			t.Fatalf("watch_interval_ms=%d: expected %v, got %v", tc.ms, tc.want, got)
		}
	}
}

func TestNormalizeDocumentPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := NormalizeDocumentPath("  ~/a/../b.toml ")
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if want := filepath.Join(home, "b.toml"); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	if _, err := NormalizeDocumentPath("   "); err == nil {
		t.Fatal("expected error for blank path")
	}
}

func writeConfig(t *testing.T, home, body string) {
	t.Helper()
	dir := filepath.Join(home, configDirName)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, configFileName), []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
}
