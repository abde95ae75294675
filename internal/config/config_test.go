package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.toml")

	cfg := Default()
	cfg.SpoolDir = "/tmp/spool"
	cfg.PickerCommand = "fzf --multi"
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.SpoolDir != "/tmp/spool" {
		t.Errorf("SpoolDir = %q, want %q", loaded.SpoolDir, "/tmp/spool")
	}
	if loaded.PickerCommand != "fzf --multi" {
		t.Errorf("PickerCommand = %q, want %q", loaded.PickerCommand, "fzf --multi")
	}
}

func TestLoadMissingReturnsDefault(t *testing.T) {
	cfg, err := Load("/nonexistent/config.toml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Placeholder != Default().Placeholder {
		t.Errorf("Placeholder = %q, want default %q", cfg.Placeholder, Default().Placeholder)
	}
}

func TestLoadMalformed(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.toml")
	if err := os.WriteFile(path, []byte("spool_dir = [broken"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() expected error for malformed file")
	}
}

func TestSavePermissions(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.toml")

	if err := Save(path, Default()); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("file permission = %o, want 0600", perm)
	}
}
