package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/bethropolis/modal/internal/input"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"), nil)
	require.NoError(t, err)
	require.Equal(t, NewDefaultConfig().Editor, cfg.Editor)
	require.Equal(t, DefaultThemeName, cfg.Theme.Name)
	require.Equal(t, "info", cfg.Logger.LogLevel)
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[logger]
log_level = "debug"
disabled_tags = ["layout"]

[editor]
clamp_cursor = false

[theme]
name = "mono"

[keys]
quit = "x"
move_left = "a"
bogus = "b"
command = "too long"
`)
	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)

	require.Equal(t, "debug", cfg.Logger.LogLevel)
	require.Equal(t, []string{"layout"}, cfg.Logger.DisabledTags)
	require.False(t, cfg.Editor.ClampCursor)
	require.True(t, cfg.Editor.SystemClipboard, "keys absent from the file keep their defaults")
	require.Equal(t, "mono", cfg.Theme.Name)

	bindings := cfg.KeyBindings()
	require.Equal(t, map[input.Action]rune{
		input.ActionQuit:     'x',
		input.ActionMoveLeft: 'a',
	}, bindings)
}

func TestLoadConfig_ReportsUndecodedKeys(t *testing.T) {
	path := writeConfig(t, `
[editor]
tab_width = 8
`)
	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)
	require.Contains(t, cfg.Undecoded, "editor.tab_width")
}

func TestLoadConfig_ParseErrorFallsBackToDefaults(t *testing.T) {
	path := writeConfig(t, "[editor\nclamp_cursor = ")
	cfg, err := LoadConfig(path, nil)
	require.Error(t, err)
	require.NotNil(t, cfg)
	require.Equal(t, NewDefaultConfig().Editor, cfg.Editor)
}

func TestLoadConfig_InvalidValuesReset(t *testing.T) {
	path := writeConfig(t, `
[logger]
log_level = "chatty"

[theme]
name = "  "
`)
	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)
	require.Equal(t, "info", cfg.Logger.LogLevel)
	require.Equal(t, DefaultThemeName, cfg.Theme.Name)
}

func TestKeyBindings_SkipsAmbiguousRunes(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Keys = map[string]string{"quit": "z", "insert": "z", "command": ";"}
	cfg.validate()

	require.Equal(t, map[input.Action]rune{input.ActionCommand: ';'}, cfg.KeyBindings())
}

func TestFlags_ApplyOverrides(t *testing.T) {
	path := writeConfig(t, `
[logger]
log_level = "warn"
log_file_path = "from-file.log"
`)

	var flags Flags
	fs := flag.NewFlagSet("modal", flag.ContinueOnError)
	rest, err := flags.ParseFlags(fs, []string{
		"-loglevel", "error",
		"-log-tags", "mode, layout ,",
		"-theme", "mono",
		"-clamp-cursor=false",
		"notes.txt",
	})
	require.NoError(t, err)
	require.Equal(t, []string{"notes.txt"}, rest)

	cfg, err := LoadConfig(path, &flags)
	require.NoError(t, err)
	require.Equal(t, "error", cfg.Logger.LogLevel)
	require.Equal(t, "from-file.log", cfg.Logger.LogFilePath, "unset flags must not override the file")
	require.Equal(t, []string{"mode", "layout"}, cfg.Logger.EnabledTags)
	require.Equal(t, "mono", cfg.Theme.Name)
	require.False(t, cfg.Editor.ClampCursor)
	require.True(t, cfg.Editor.SystemClipboard)
}

func TestSplitCommaList(t *testing.T) {
	require.Nil(t, splitCommaList(""))
	require.Nil(t, splitCommaList(" , ,"))
	require.Equal(t, []string{"a", "b"}, splitCommaList("a, b"))
}
