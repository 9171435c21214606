package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("A missing file should not be an error. Got %s", err)
	}
	if cfg != Default() {
		t.Errorf("Expected the defaults. Got %+v", cfg)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "prompt = \"> \"\nverbose = true\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %s", err)
	}
	if cfg.Prompt != "> " || !cfg.Verbose {
		t.Errorf("Expected the file settings to apply. Got %+v", cfg)
	}
	if cfg.HistoryFile != Default().HistoryFile {
		t.Errorf("Unset keys should keep their defaults. Got %q", cfg.HistoryFile)
	}
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("prompt = \n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Errorf("Expected a parse error")
	}
}

func TestHistoryPath(t *testing.T) {
	if p := (Config{}).HistoryPath(); p != "" {
		t.Errorf("Empty HistoryFile should disable history. Got %q", p)
	}

	abs := filepath.Join(t.TempDir(), "h")
	if p := (Config{HistoryFile: abs}).HistoryPath(); p != abs {
		t.Errorf("Absolute paths should be kept. Got %q", p)
	}

	t.Setenv("HOME", "/home/tester")
	if p := (Config{HistoryFile: ".h"}).HistoryPath(); p != "/home/tester/.h" {
		t.Errorf("Relative paths should resolve against home. Got %q", p)
	}
}
