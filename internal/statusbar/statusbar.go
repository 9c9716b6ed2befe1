// internal/statusbar/statusbar.go
package statusbar

import (
	"github.com/bethropolis/modal/internal/modehandler"
	"github.com/bethropolis/modal/internal/theme"
	"github.com/bethropolis/modal/internal/tui"
	"github.com/gdamore/tcell/v2"
)

// CommandPrompt precedes the command text in Command mode.
const CommandPrompt = ":"

// StatusBar draws the mode tag and, in Command mode, the command line.
type StatusBar struct {
	theme   *theme.Theme
	mode    modehandler.Mode
	command string
}

// New creates a new StatusBar using th for its styles.
func New(th *theme.Theme) *StatusBar {
	if th == nil {
		th = &theme.Default
	}
	return &StatusBar{theme: th}
}

// SetTheme switches the styles used by the next Draw.
func (sb *StatusBar) SetTheme(th *theme.Theme) {
	if th != nil {
		sb.theme = th
	}
}

// SetEditorMode updates the displayed editor mode.
func (sb *StatusBar) SetEditorMode(mode modehandler.Mode) {
	sb.mode = mode
}

// SetCommand updates the command text shown in Command mode.
func (sb *StatusBar) SetCommand(cmd []rune) {
	sb.command = string(cmd)
}

// Tag returns the padded indicator text for mode, e.g. " NORMAL ".
func Tag(mode modehandler.Mode) string {
	return " " + mode.String() + " "
}

// CommandColumn is the first column after the Command-mode tag, separator
// and prompt; the command-line cursor starts here.
func (sb *StatusBar) CommandColumn() int {
	return tui.TextWidth(Tag(modehandler.ModeCommand)) + tui.TextWidth(sb.theme.Separator) + tui.TextWidth(CommandPrompt)
}

func (sb *StatusBar) modeStyle() tcell.Style {
	switch sb.mode {
	case modehandler.ModeInsert:
		return sb.theme.GetStyle(theme.StyleModeInsert)
	case modehandler.ModeCommand:
		return sb.theme.GetStyle(theme.StyleModeCommand)
	default:
		return sb.theme.GetStyle(theme.StyleModeNormal)
	}
}

// Draw clears row y and renders the status line on it.
func (sb *StatusBar) Draw(ui *tui.TUI, y int) error {
	if err := ui.ClearLine(y); err != nil {
		return err
	}

	tagStyle := sb.modeStyle()
	x, err := ui.DrawText(0, y, Tag(sb.mode), tagStyle)
	if err != nil {
		return err
	}

	if sb.theme.Separator != "" {
		_, tagBg, _ := tagStyle.Decompose()
		sepStyle := sb.theme.GetStyle(theme.StyleStatusBar).Foreground(tagBg)
		if x, err = ui.DrawText(x, y, sb.theme.Separator, sepStyle); err != nil {
			return err
		}
	}

	if sb.mode == modehandler.ModeCommand {
		lineStyle := sb.theme.GetStyle(theme.StyleCommandLine)
		if _, err = ui.DrawText(x, y, CommandPrompt+sb.command, lineStyle); err != nil {
			return err
		}
	}
	return nil
}
