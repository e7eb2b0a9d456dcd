package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Port  int    `env:"TEST_PORT" envDefault:"123"`
	Host  string `env:"TEST_HOST" envDefault:"localhost"`
	Debug bool   `env:"TEST_DEBUG"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
	if cfg.Host != "localhost" {
		t.Fatalf("expected default host localhost, got %q", cfg.Host)
	}
}

func TestParseEnvReadsPrefixedKeys(t *testing.T) {
	t.Setenv("CO2_EXPLORER_TEST_PORT", "9050")
	t.Setenv("CO2_EXPLORER_TEST_DEBUG", "true")
	t.Setenv("TEST_HOST", "unprefixed")

	var cfg envTestConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 9050 {
		t.Fatalf("Port = %d, want 9050", cfg.Port)
	}
	if !cfg.Debug {
		t.Fatal("expected debug from prefixed env")
	}
	if cfg.Host != "localhost" {
		t.Fatalf("Host = %q, want default when only the unprefixed key is set", cfg.Host)
	}
}

func TestParseEnvWithPrefixUsesCustomPrefix(t *testing.T) {
	t.Setenv("OTHER_TEST_PORT", "7000")

	var cfg envTestConfig
	if err := ParseEnvWithPrefix(&cfg, "OTHER_"); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 7000 {
		t.Fatalf("Port = %d, want 7000", cfg.Port)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("CO2_EXPLORER_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestParseEnvRejectsNilTarget(t *testing.T) {
	if err := ParseEnv(nil); err == nil {
		t.Fatal("expected nil target error")
	}
}
