// internal/tui/drawing.go
package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// ClearLine blanks row y across the full screen width.
func (t *TUI) ClearLine(y int) error {
	if t.closed {
		return ErrClosed
	}
	width, height := t.screen.Size()
	if y < 0 || y >= height {
		return nil
	}
	for x := 0; x < width; x++ {
		t.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
	}
	return nil
}

// PutRune draws a single character at (x, y). Wide characters also blank the
// cell to their right.
func (t *TUI) PutRune(x, y int, r rune, style tcell.Style) error {
	if t.closed {
		return ErrClosed
	}
	t.screen.SetContent(x, y, r, nil, style)
	width, _ := t.screen.Size()
	for cw := 1; cw < uniseg.StringWidth(string(r)); cw++ {
		if x+cw < width {
			t.screen.SetContent(x+cw, y, ' ', nil, style)
		}
	}
	return nil
}

// DrawText draws text starting at (x, y) one grapheme cluster at a time and
// returns the column after the last drawn cluster. Clusters that would cross
// the right edge are not drawn.
func (t *TUI) DrawText(x, y int, text string, style tcell.Style) (int, error) {
	if t.closed {
		return x, ErrClosed
	}
	width, _ := t.screen.Size()
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		runes := gr.Runes()
		clusterWidth := gr.Width()
		if clusterWidth == 0 {
			continue
		}
		if x+clusterWidth > width {
			break
		}
		t.screen.SetContent(x, y, runes[0], runes[1:], style)
		for cw := 1; cw < clusterWidth; cw++ {
			t.screen.SetContent(x+cw, y, ' ', nil, style)
		}
		x += clusterWidth
	}
	return x, nil
}

// TextWidth returns the number of terminal columns text occupies.
func TextWidth(text string) int {
	return uniseg.StringWidth(text)
}
