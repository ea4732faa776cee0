package internal

import (
	"log/slog"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestSiteConfig_RequiresRootAndPage(t *testing.T) {
	cfg := SiteConfig{Root: "", Page: "index.html"}
	if err := cfg.Validate(); err == nil {
		t.Error("empty root should fail validation")
	}
	cfg = SiteConfig{Root: "./site", Page: ""}
	if err := cfg.Validate(); err == nil {
		t.Error("empty page should fail validation")
	}
}

func TestChecksConfig_AtLeastOneEnabled(t *testing.T) {
	cfg := ChecksConfig{Notes: false, Accessibility: false}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("all checks disabled should fail validation")
	}
	if !strings.Contains(err.Error(), "at least one") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestWatchConfig_DebounceRequiredWhenEnabled(t *testing.T) {
	cfg := WatchConfig{Enabled: true, Debounce: 0}
	if err := cfg.Validate(); err == nil {
		t.Error("enabled watch with zero debounce should fail")
	}
	cfg = WatchConfig{Enabled: false, Debounce: 0}
	if err := cfg.Validate(); err != nil {
		t.Errorf("disabled watch should not require debounce: %v", err)
	}
	cfg = WatchConfig{Enabled: true, Debounce: Duration(100 * time.Millisecond)}
	if err := cfg.Validate(); err != nil {
		t.Errorf("positive debounce should pass: %v", err)
	}
}

func TestDuration_UnmarshalYAML(t *testing.T) {
	var cfg WatchConfig
	if err := yaml.Unmarshal([]byte("debounce: 250ms\n"), &cfg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if cfg.Debounce.Std() != 250*time.Millisecond {
		t.Errorf("debounce = %v, want 250ms", cfg.Debounce.Std())
	}

	if err := yaml.Unmarshal([]byte("debounce: fast\n"), &cfg); err == nil {
		t.Error("invalid duration should fail")
	}
}

func TestLogLevel_UnmarshalYAML(t *testing.T) {
	var cfg ApplicationConfig
	if err := yaml.Unmarshal([]byte("log_level: debug\n"), &cfg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if cfg.LogLevel.Level() != slog.LevelDebug {
		t.Errorf("level = %v, want debug", cfg.LogLevel.Level())
	}

	if err := yaml.Unmarshal([]byte("log_level: loud\n"), &cfg); err == nil {
		t.Error("invalid level name should fail")
	}
}
