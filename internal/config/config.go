package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents ~/.papo/config.toml.
type Config struct {
	// SpoolDir is where pasted clipboard data is written before attaching.
	// Empty means the default under the state dir.
	SpoolDir string `toml:"spool_dir"`

	// PickerCommand is an external file picker invoked by the composer.
	// It must print one selected path per line on stdout.
	PickerCommand string `toml:"picker_command"`

	// Placeholder is shown in the empty composer input.
	Placeholder string `toml:"placeholder"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		PickerCommand: "zenity --file-selection --multiple --separator=\\n",
		Placeholder:   "Digite uma mensagem",
	}
}

// Load reads config from the given path. A missing file is not an error:
// it yields the default config.
func Load(path string) (*Config, error) {
	cfg := Default()
	_, err := toml.DecodeFile(path, cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes config to the given path, creating parent dirs as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	encErr := toml.NewEncoder(f).Encode(cfg)
	if closeErr := f.Close(); closeErr != nil && encErr == nil {
		return closeErr
	}
	return encErr
}
