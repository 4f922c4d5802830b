package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"releasedeck/internal/search"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config fixture: %v", err)
	}
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")
	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Error("exists = true for missing file")
	}
	if resolved == "" {
		t.Error("resolved path should not be empty")
	}
	if cfg.Search != search.DefaultWeights() {
		t.Errorf("expected default weights, got %+v", cfg.Search)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" {
		t.Errorf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadOverridesWeights(t *testing.T) {
	path := writeConfig(t, `
[search]
phrase_prefix = 50
description = 15
`)

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("exists = false for present file")
	}
	if cfg.Search.PhrasePrefix != 50 {
		t.Errorf("phrase_prefix = %d, want 50", cfg.Search.PhrasePrefix)
	}
	if cfg.Search.Description != 15 {
		t.Errorf("description = %d, want 15", cfg.Search.Description)
	}
	// Untouched weights keep their defaults.
	if cfg.Search.PhraseExact != search.DefaultWeights().PhraseExact {
		t.Errorf("phrase_exact = %d, want default", cfg.Search.PhraseExact)
	}
}

func TestLoadRejectsNegativeWeight(t *testing.T) {
	path := writeConfig(t, `
[search]
token_fuzzy = -4
`)

	_, _, _, err := Load(path)
	if err == nil {
		t.Fatal("expected error for negative weight")
	}
	if !strings.Contains(err.Error(), "token_fuzzy") {
		t.Errorf("error should name the offending key: %v", err)
	}
}

func TestLoadRejectsUnknownLogFormat(t *testing.T) {
	path := writeConfig(t, `
[logging]
format = "xml"
`)

	if _, _, _, err := Load(path); err == nil {
		t.Fatal("expected error for unknown log format")
	}
}

func TestLoadNormalizesLogging(t *testing.T) {
	path := writeConfig(t, `
[logging]
format = " JSON "
level = "DEBUG"
`)

	cfg, _, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Errorf("logging not normalized: %+v", cfg.Logging)
	}
}

func TestLoadExpandsCatalogPath(t *testing.T) {
	path := writeConfig(t, `
[catalog]
path = "~/releases.json"
`)

	cfg, _, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	if cfg.Catalog.Path != filepath.Join(home, "releases.json") {
		t.Errorf("catalog path not expanded: %q", cfg.Catalog.Path)
	}
}

func TestWriteSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := WriteSample(path); err != nil {
		t.Fatalf("WriteSample returned error: %v", err)
	}

	// The sample must itself be loadable.
	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("sample config does not load: %v", err)
	}
	if !exists {
		t.Error("exists = false after writing sample")
	}
	if cfg.Search != search.DefaultWeights() {
		t.Errorf("sample weights differ from defaults: %+v", cfg.Search)
	}

	// A second write must refuse to overwrite.
	if err := WriteSample(path); err == nil {
		t.Fatal("expected error when config already exists")
	}
}
