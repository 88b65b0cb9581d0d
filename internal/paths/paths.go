// Package paths resolves the configuration directory and the records file
// location from flags, environment, and config.yaml.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultConfigDirName is the CWD-relative config directory used by init.
const DefaultConfigDirName = ".backpack"

// Environment variable names for path overrides.
const (
	EnvConfigDir   = "BACKPACK_CONFIG_DIR"
	EnvRecordsFile = "BACKPACK_RECORDS"
)

const appDirName = "backpack"

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/backpack (fallback ~/.config/backpack)
// macOS:   ~/Library/Application Support/backpack
// Windows: %APPDATA%/backpack
func DefaultConfigDir() (string, error) {
	if runtime.GOOS == "linux" {
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appDirName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", appDirName), nil
	}
	dir, err := platformDir.userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDirName), nil
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > BACKPACK_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveRecordsFile returns the records file following the precedence
// chain: flag > configYAMLValue > BACKPACK_RECORDS env. An empty result
// means no records file was configured.
func ResolveRecordsFile(flag, configYAMLValue string) (string, error) {
	for _, candidate := range []string{flag, configYAMLValue, os.Getenv(EnvRecordsFile)} {
		if candidate != "" {
			return filepath.Abs(candidate)
		}
	}
	return "", nil
}
