package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsEmpty(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Org != "" || cfg.Output != "" {
		t.Error("expected empty config for missing file")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := &Config{
		Org:            "acme",
		Domain:         "stage",
		ClientID:       "client-1",
		DefaultProject: "default",
		Output:         "html",
		Color:          "never",
	}
	if err := cfg.SaveToPath(path); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip mismatch: %+v != %+v", loaded, cfg)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("org: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromPath(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestGetSet(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Set("org", "acme"); err != nil {
		t.Fatal(err)
	}
	if got, err := cfg.Get("org"); err != nil || got != "acme" {
		t.Errorf("expected acme, got %q (%v)", got, err)
	}
	if err := cfg.Set("bogus", "x"); err == nil {
		t.Error("expected error for unknown key")
	}
	if _, err := cfg.Get("bogus"); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestSetConfigPathFunc(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	restore := SetConfigPathFunc(func() (string, error) { return path, nil })
	defer SetConfigPathFunc(restore)

	cfg := &Config{Org: "acme"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Org != "acme" {
		t.Errorf("expected acme, got %q", loaded.Org)
	}
}
