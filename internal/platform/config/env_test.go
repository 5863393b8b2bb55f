package config

import (
	"strings"
	"testing"
	"time"
)

type envTestConfig struct {
	Locale  string        `env:"TEST_LOCALE" envDefault:"en-US"`
	Seed    int64         `env:"TEST_SEED"`
	Timeout time.Duration `env:"TEST_TIMEOUT" envDefault:"2s"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Locale != "en-US" {
		t.Fatalf("expected default locale en-US, got %q", cfg.Locale)
	}
	if cfg.Timeout != 2*time.Second {
		t.Fatalf("expected default timeout 2s, got %v", cfg.Timeout)
	}
}

func TestParseEnvUsesPrefix(t *testing.T) {
	t.Setenv("DICETRACE_TEST_SEED", "42")
	t.Setenv("TEST_LOCALE", "fr-FR")

	var cfg envTestConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Seed != 42 {
		t.Fatalf("expected prefixed seed 42, got %d", cfg.Seed)
	}
	if cfg.Locale != "en-US" {
		t.Fatalf("expected unprefixed variable to be ignored, got %q", cfg.Locale)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("DICETRACE_TEST_SEED", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
