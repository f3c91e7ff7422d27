package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/ziadkadry99/ddo-deck/internal/deck"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.OutputDir != "site" {
		t.Errorf("expected default output_dir %q, got %q", "site", cfg.OutputDir)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.LogLevel != LevelInfo {
		t.Errorf("expected default log_level %q, got %q", LevelInfo, cfg.LogLevel)
	}
	if cfg.NarrowWidth != 768 || cfg.RevealRatio != 0.85 {
		t.Errorf("viewport defaults = %d/%v", cfg.NarrowWidth, cfg.RevealRatio)
	}
	if cfg.Timers.PomInfo != 3600 || cfg.Timers.PomBehavior != 4800 || cfg.Timers.Reveal != 120 {
		t.Errorf("timer defaults = %+v", cfg.Timers)
	}
	if len(cfg.Export.Include) != 1 || cfg.Export.Include[0] != "**" {
		t.Errorf("export include = %v", cfg.Export.Include)
	}
}

func TestDeckOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Timers.PomInfo = 1000
	opts := cfg.DeckOptions()
	if opts.InfoHide != time.Second {
		t.Errorf("InfoHide = %v, want 1s", opts.InfoHide)
	}
	if opts.BehaviorHide != deck.DefaultBehaviorHide {
		t.Errorf("BehaviorHide = %v", opts.BehaviorHide)
	}
	if opts.NarrowWidth != deck.DefaultNarrowWidth {
		t.Errorf("NarrowWidth = %d", opts.NarrowWidth)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.ddodeck.yml")

	original := DefaultConfig()
	original.Title = "Operating Model"
	original.Port = 9090
	original.DataFile = "catalog.yaml"
	original.Watch = true
	original.RevealRatio = 0.5
	original.Timers.PomBehavior = 2000
	original.Export.Exclude = []string{"journey", "p*"}

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Verify round-trip.
	if loaded.Title != original.Title {
		t.Errorf("title: got %q, want %q", loaded.Title, original.Title)
	}
	if loaded.Port != original.Port {
		t.Errorf("port: got %d, want %d", loaded.Port, original.Port)
	}
	if loaded.DataFile != original.DataFile || !loaded.Watch {
		t.Errorf("data_file/watch: got %q/%v", loaded.DataFile, loaded.Watch)
	}
	if loaded.RevealRatio != original.RevealRatio {
		t.Errorf("reveal_ratio: got %v, want %v", loaded.RevealRatio, original.RevealRatio)
	}
	if loaded.Timers.PomBehavior != 2000 {
		t.Errorf("timers.pom_behavior: got %d", loaded.Timers.PomBehavior)
	}
	if len(loaded.Export.Exclude) != len(original.Export.Exclude) {
		t.Errorf("exclude length: got %d, want %d", len(loaded.Export.Exclude), len(original.Export.Exclude))
	}
	for i, v := range loaded.Export.Exclude {
		if v != original.Export.Exclude[i] {
			t.Errorf("exclude[%d]: got %q, want %q", i, v, original.Export.Exclude[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port, got %d", cfg.Port)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("DDODECK_PORT", "9999")
	t.Setenv("DDODECK_TIMERS__POM_INFO", "1200")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Port != 9999 {
		t.Errorf("env override failed: got %d, want 9999", loaded.Port)
	}
	if loaded.Timers.PomInfo != 1200 {
		t.Errorf("nested env override failed: got %d, want 1200", loaded.Timers.PomInfo)
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty output_dir", func(c *Config) { c.OutputDir = "" }},
		{"zero port", func(c *Config) { c.Port = 0 }},
		{"port out of range", func(c *Config) { c.Port = 70000 }},
		{"unknown log level", func(c *Config) { c.LogLevel = "loud" }},
		{"watch without data file", func(c *Config) { c.Watch = true }},
		{"negative narrow width", func(c *Config) { c.NarrowWidth = -1 }},
		{"reveal ratio above one", func(c *Config) { c.RevealRatio = 1.5 }},
		{"negative timer", func(c *Config) { c.Timers.Reveal = -10 }},
		{"unknown export format", func(c *Config) { c.Export.Formats = []string{"png"} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b , c ", []string{"a", "b", "c"}},
		{"p*", []string{"p*"}},
		{"", nil},
		{"  ,  , ", nil},
	}
	for _, tt := range tests {
		got := splitAndTrim(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("splitAndTrim(%q) len = %d, want %d", tt.input, len(got), len(tt.want))
			continue
		}
		for i, v := range got {
			if v != tt.want[i] {
				t.Errorf("splitAndTrim(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
			}
		}
	}
}
