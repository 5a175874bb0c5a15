package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mosaic.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `{"log_level": "debug", "render": {"scale": 2, "monster": "#00ff00"}}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.LogLevel)
	}
	if cfg.Render.Scale != 2 || cfg.Render.Monster != "#00ff00" {
		t.Errorf("unexpected render config %+v", cfg.Render)
	}
	if cfg.Render.Filled != Default().Render.Filled || cfg.LogDir != "debug" {
		t.Errorf("expected untouched fields to keep defaults, got %+v", cfg)
	}
	lvl, err := cfg.Level()
	if err != nil || lvl != zerolog.DebugLevel {
		t.Errorf("expected debug level, got %v (%v)", lvl, err)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"bad json":  `{"log_level": `,
		"bad level": `{"log_level": "loud"}`,
		"bad color": `{"render": {"filled": "blue"}}`,
		"bad scale": `{"render": {"scale": 0}}`,
	}
	for name, body := range cases {
		if _, err := Load(writeConfig(t, body)); err == nil {
			t.Errorf("%s: expected error, got nil", name)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Errorf("expected error for explicit missing file")
	}

	t.Setenv(envConfigPath, filepath.Join(t.TempDir(), "nope.json"))
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("expected defaults when resolved file is missing, got %v", err)
	}
	if cfg.Render.Scale != Default().Render.Scale {
		t.Errorf("expected default config, got %+v", cfg)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv(envConfigPath, writeConfig(t, `{"log_dir": "logs"}`))
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.LogDir != "logs" {
		t.Errorf("expected log dir from env config, got %s", cfg.LogDir)
	}
}

func TestCurrentAndSet(t *testing.T) {
	Set(nil)
	if Current().LogLevel != "info" {
		t.Errorf("expected defaults before Set")
	}
	cfg := Default()
	cfg.LogLevel = "warn"
	Set(cfg)
	if Current().LogLevel != "warn" {
		t.Errorf("expected installed config")
	}
	Set(nil)
}
