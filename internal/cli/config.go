package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyFixtureDir  = "fixture_dir"
	cfgKeyFixtureFile = "fixture_file"
	cfgKeyLogLevel    = "log_level"
	cfgKeyLogFormat   = "log_format"

	envPrefix = "METAMOCK"
)

// settingsFile is the structure written to config.yaml by init.
type settingsFile struct {
	FixtureDir  string `yaml:"fixture_dir,omitempty"`
	FixtureFile string `yaml:"fixture_file,omitempty"`
	LogLevel    string `yaml:"log_level"`
	LogFormat   string `yaml:"log_format"`
}

// newSettings returns a Viper instance with defaults and environment
// bindings. Flags are bound by NewRootCmd; the file is read by loadSettings.
// Precedence for log settings is flag > METAMOCK_LOG_* env > config.yaml >
// default.
func newSettings() *viper.Viper {
	v := viper.New()
	v.SetDefault(cfgKeyLogLevel, "warn")
	v.SetDefault(cfgKeyLogFormat, "text")
	v.SetEnvPrefix(envPrefix)
	_ = v.BindEnv(cfgKeyLogLevel)
	_ = v.BindEnv(cfgKeyLogFormat)
	return v
}

// loadSettings reads config.yaml from configDir. A missing file is not an
// error.
func loadSettings(v *viper.Viper, configDir string) error {
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// writeSettingsIfMissing creates config.yaml with default values if the
// file does not exist. It reports whether the file was written.
func writeSettingsIfMissing(configDir, fixtureDir string) (bool, error) {
	path := filepath.Join(configDir, configFileExt)
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return false, fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(&settingsFile{
		FixtureDir: fixtureDir,
		LogLevel:   "warn",
		LogFormat:  "text",
	})
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, fmt.Errorf("write config: %w", err)
	}
	return true, nil
}
