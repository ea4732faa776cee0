package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type testConfig struct {
	Name string `yaml:"name"`
	Port int    `yaml:"port"`
}

type validatedConfig struct {
	Name string `yaml:"name"`
}

func (c *validatedConfig) Validate() error {
	if c.Name == "" {
		return errors.New("name is required")
	}
	return nil
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Basic(t *testing.T) {
	path := writeConfig(t, "name: algiz\nport: 8080\n")
	var cfg testConfig
	if err := Load(path, &cfg); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Name != "algiz" || cfg.Port != 8080 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoad_ExpandsEnv(t *testing.T) {
	t.Setenv("TEST_CFG_NAME", "expanded")
	path := writeConfig(t, "name: ${TEST_CFG_NAME}\n")
	var cfg testConfig
	if err := Load(path, &cfg); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Name != "expanded" {
		t.Errorf("name = %q", cfg.Name)
	}
}

func TestLoad_RejectsUnknownFields(t *testing.T) {
	path := writeConfig(t, "name: x\nnotaf: 1\n")
	var cfg testConfig
	if err := Load(path, &cfg); err == nil {
		t.Error("unknown field should fail")
	}
}

func TestLoad_RunsValidator(t *testing.T) {
	path := writeConfig(t, "name: \"\"\n")
	var cfg validatedConfig
	err := Load(path, &cfg)
	if err == nil {
		t.Fatal("validator error should propagate")
	}
	if !strings.Contains(err.Error(), "name is required") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadWithDefaults_FallsBack(t *testing.T) {
	def := writeConfig(t, "name: fallback\n")
	var cfg testConfig
	if err := LoadWithDefaults(filepath.Join(t.TempDir(), "absent.yaml"), def, &cfg); err != nil {
		t.Fatalf("LoadWithDefaults: %v", err)
	}
	if cfg.Name != "fallback" {
		t.Errorf("name = %q", cfg.Name)
	}
}
