// Package paths resolves where metamock reads its settings and fixtures.
//
// Settings live in a per-user configuration directory. Fixtures live in a
// fixture directory that defaults to .metamock under the working directory,
// so each plugin repository can carry its own set.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// Directory and file names.
const (
	AppName               = "metamock"
	DefaultFixtureDirName = ".metamock"
	DefaultFixtureFile    = "fixtures.yaml"
)

// Environment variable names for directory overrides.
const (
	EnvConfigDir  = "METAMOCK_CONFIG_DIR"
	EnvFixtureDir = "METAMOCK_FIXTURE_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific settings directory.
//
// Linux:   $XDG_CONFIG_HOME/metamock (fallback ~/.config/metamock)
// macOS:   ~/Library/Application Support/metamock
// Windows: %APPDATA%/metamock
func DefaultConfigDir() (string, error) {
	if runtime.GOOS == "linux" {
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, AppName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", AppName), nil
	}
	dir, err := platformDir.userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppName), nil
}

// ResolveConfigDir returns the settings directory following the precedence
// chain: flag > METAMOCK_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveFixtureDir returns the fixture directory following the precedence
// chain: flag > configValue (fixture_dir in config.yaml) >
// METAMOCK_FIXTURE_DIR env > $(CWD)/.metamock.
func ResolveFixtureDir(flag, configValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	if env := os.Getenv(EnvFixtureDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultFixtureDirName), nil
}

// ResolveFixtureFile returns the fixture file path. An absolute file is
// used as given; a relative one is joined to dir. An empty file selects
// DefaultFixtureFile.
func ResolveFixtureFile(dir, file string) string {
	if file == "" {
		file = DefaultFixtureFile
	}
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(dir, file)
}
