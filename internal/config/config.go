// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/modal/internal/input"
	"github.com/bethropolis/modal/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"`
	Editor EditorConfig  `toml:"editor"`
	Theme  ThemeConfig   `toml:"theme"`
	// Keys rebinds Normal-mode runes: action name -> single character.
	Keys map[string]string `toml:"keys"`

	// Undecoded lists keys present in the file that matched no field.
	Undecoded []string `toml:"-"`
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	ClampCursor     bool `toml:"clamp_cursor"`     // keep the text cursor inside the text area
	SystemClipboard bool `toml:"system_clipboard"` // Ctrl+V in command mode reads the system clipboard
}

// ThemeConfig selects the active theme.
type ThemeConfig struct {
	Name string `toml:"name"`
	Dir  string `toml:"dir"` // Empty means <UserConfigDir>/modal/themes
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.Config{
			LogLevel:    "info",
			LogFilePath: "",
		},
		Editor: EditorConfig{
			ClampCursor:     DefaultClampCursor,
			SystemClipboard: DefaultSystemClipboard,
		},
		Theme: ThemeConfig{
			Name: DefaultThemeName,
		},
	}
}

// DefaultConfigPath returns <UserConfigDir>/modal/config.toml, or "" if the
// user config directory cannot be determined.
func DefaultConfigPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, AppName, DefaultConfigFileName)
}

// DefaultThemesDir returns <UserConfigDir>/modal/themes, or "".
func DefaultThemesDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, AppName, ThemesDirName)
}

// loadFromFile decodes a TOML file over cfg. Values absent from the file keep
// whatever cfg already holds. A missing file is not an error.
func loadFromFile(filePath string, cfg *Config) error {
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	for _, key := range metadata.Undecoded() {
		cfg.Undecoded = append(cfg.Undecoded, key.String())
	}
	return nil
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if _, ok := logger.ParseLevel(c.Logger.LogLevel); !ok || c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}

	if strings.TrimSpace(c.Theme.Name) == "" {
		c.Theme.Name = defaults.Theme.Name
	}

	for name, key := range c.Keys {
		if _, ok := input.ActionFromName(name); !ok || utf8.RuneCountInString(key) != 1 {
			delete(c.Keys, name)
		}
	}
}

// KeyBindings converts the validated [keys] table into input bindings.
// A character claimed by more than one action is ambiguous and skipped.
func (c *Config) KeyBindings() map[input.Action]rune {
	if len(c.Keys) == 0 {
		return nil
	}
	uses := make(map[rune]int, len(c.Keys))
	for _, key := range c.Keys {
		r, _ := utf8.DecodeRuneInString(key)
		uses[r]++
	}

	bindings := make(map[input.Action]rune, len(c.Keys))
	for name, key := range c.Keys {
		action, ok := input.ActionFromName(name)
		if !ok {
			continue
		}
		r, _ := utf8.DecodeRuneInString(key)
		if uses[r] > 1 {
			logger.WarnTagf("config", "Key '%c' is bound to several actions, ignoring binding for %s", r, name)
			continue
		}
		bindings[action] = r
	}
	return bindings
}

// LoadConfig orchestrates loading defaults, file, applying flags, and validation.
// The returned config is always usable; a non-nil error reports a file problem
// that the caller may log and otherwise ignore.
func LoadConfig(configFilePath string, flags *Flags) (*Config, error) {
	cfg := NewDefaultConfig()

	effectivePath := configFilePath
	if effectivePath == "" {
		effectivePath = DefaultConfigPath()
	}

	var loadErr error
	if effectivePath != "" {
		fileCfg := NewDefaultConfig()
		if err := loadFromFile(effectivePath, fileCfg); err != nil {
			loadErr = err
		} else {
			cfg = fileCfg
		}
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}

	cfg.validate()
	return cfg, loadErr
}
