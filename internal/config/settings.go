package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Settings keys in the persisted file
const (
	KeyDarkMode = "dark_mode"
	KeyAPIKey   = "api_key"
)

// File layout
const (
	SettingsFileType        = "toml"
	SettingsFilePermissions = 0o600
	SettingsDirPermissions  = 0o755
)

// Settings is the persisted user configuration
type Settings struct {
	DarkMode bool   `mapstructure:"dark_mode"`
	APIKey   string `mapstructure:"api_key"`
}

// DefaultSettings returns the settings used on first run
func DefaultSettings() Settings {
	return Settings{DarkMode: false, APIKey: ""}
}

// FileStore persists one Settings record per application name under a
// base directory: <base>/<app>/<app>.toml.
type FileStore struct {
	baseDir string
	log     zerolog.Logger
}

// NewFileStore creates a store rooted at baseDir. An empty baseDir resolves
// to the user configuration directory.
func NewFileStore(baseDir string, log zerolog.Logger) *FileStore {
	if baseDir == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			baseDir = dir
		} else {
			home, _ := os.UserHomeDir()
			baseDir = filepath.Join(home, ".config")
		}
	}
	return &FileStore{baseDir: baseDir, log: log.With().Str("component", "settings").Logger()}
}

// Path returns the settings file used for appName
func (s *FileStore) Path(appName string) string {
	return filepath.Join(s.baseDir, appName, appName+"."+SettingsFileType)
}

// Load returns the stored settings for appName. It never fails: a missing
// file yields the defaults, and an unreadable one yields the defaults plus a
// warning in the log.
func (s *FileStore) Load(appName string) Settings {
	path := s.Path(appName)
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn().Err(err).Str("path", path).Msg("settings file not accessible, using defaults")
		}
		return DefaultSettings()
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(SettingsFileType)
	v.SetDefault(KeyDarkMode, false)
	v.SetDefault(KeyAPIKey, "")

	if err := v.ReadInConfig(); err != nil {
		s.log.Warn().Err(err).Str("path", path).Msg("reading settings failed, using defaults")
		return DefaultSettings()
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		s.log.Warn().Err(err).Str("path", path).Msg("decoding settings failed, using defaults")
		return DefaultSettings()
	}

	return settings
}

// Store writes settings for appName, creating the directory when needed
func (s *FileStore) Store(appName string, settings Settings) error {
	path := s.Path(appName)
	if err := os.MkdirAll(filepath.Dir(path), SettingsDirPermissions); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}

	v := viper.New()
	v.SetConfigPermissions(SettingsFilePermissions)
	v.Set(KeyDarkMode, settings.DarkMode)
	v.Set(KeyAPIKey, settings.APIKey)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}
