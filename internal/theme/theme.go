// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/bethropolis/modal/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Style names looked up by the status line.
const (
	StyleDefault     = "Default"
	StyleStatusBar   = "StatusBar"
	StyleModeNormal  = "Mode.Normal"
	StyleModeInsert  = "Mode.Insert"
	StyleModeCommand = "Mode.Command"
	StyleCommandLine = "CommandLine"
)

// Theme maps style names to tcell styles.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
	// Separator is drawn right after the mode tag, in the tag's colour
	// reversed. Empty means no separator.
	Separator string
}

// GetStyle resolves name, falling back to its base name (the part before the
// first dot) and then to Default.
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}

	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		baseName := name[:dotIndex]
		if style, ok := t.Styles[baseName]; ok {
			logger.Debugf("Theme '%s': Style '%s' not found, using base '%s'", t.Name, name, baseName)
			return style
		}
	}

	if defStyle, ok := t.Styles[StyleDefault]; ok {
		if name != StyleDefault {
			logger.Debugf("Theme '%s': Style '%s' not found, falling back to 'Default'", t.Name, name)
		}
		return defStyle
	}

	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// Default is the built-in theme: bright blue NORMAL, dark yellow INSERT,
// magenta COMMAND, all with black bold text.
var Default = Theme{
	Name:   "default",
	IsDark: true,
	Styles: map[string]tcell.Style{
		StyleDefault:     tcell.StyleDefault,
		StyleStatusBar:   tcell.StyleDefault,
		StyleCommandLine: tcell.StyleDefault,
		StyleModeNormal:  modeTag(tcell.ColorBlue),
		StyleModeInsert:  modeTag(tcell.ColorOlive),
		StyleModeCommand: modeTag(tcell.ColorFuchsia),
	},
}

// Mono relies on reverse video only, for terminals without colour.
var Mono = Theme{
	Name: "mono",
	Styles: map[string]tcell.Style{
		StyleDefault:     tcell.StyleDefault,
		"Mode":           tcell.StyleDefault.Reverse(true),
		StyleModeCommand: tcell.StyleDefault.Reverse(true).Bold(true),
	},
}

func modeTag(bg tcell.Color) tcell.Style {
	return tcell.StyleDefault.Background(bg).Foreground(tcell.ColorBlack).Bold(true)
}
