package paths

import (
	"os"
	"path/filepath"
)

// BaseDir returns ~/.papo.
func BaseDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".papo")
}

// SpoolDir returns the directory where pasted clipboard data is persisted
// before it is attached.
func SpoolDir() string {
	return filepath.Join(BaseDir(), "spool")
}

// LogDir returns the log directory.
func LogDir() string {
	return filepath.Join(BaseDir(), "logs")
}

// LogPath returns the application log file path.
func LogPath() string {
	return filepath.Join(LogDir(), "papo.log")
}

// ConfigPath returns the config file path.
func ConfigPath() string {
	return filepath.Join(BaseDir(), "config.toml")
}

// EnsureTree creates the state directory tree with proper permissions.
func EnsureTree() error {
	dirs := []string{
		BaseDir(),
		SpoolDir(),
		LogDir(),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0700); err != nil {
			return err
		}
	}
	return nil
}
