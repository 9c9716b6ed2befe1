// Package clipboard reads text from the system clipboard for command-line paste.
package clipboard

import (
	"errors"
	"strings"
	"unicode"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no clipboard utility is available.
var ErrUnsupported = errors.New("clipboard: no clipboard utility available")

// Reader supplies clipboard text.
type Reader interface {
	Read() (string, error)
}

// System reads the operating system clipboard.
type System struct{}

// NewSystem returns a Reader backed by the system clipboard.
func NewSystem() *System {
	return &System{}
}

func (s *System) Read() (string, error) {
	if clipboard.Unsupported {
		return "", ErrUnsupported
	}
	return clipboard.ReadAll()
}

// FirstLine returns the first line of text with control characters removed.
// A leading carriage return or newline yields an empty result.
func FirstLine(text string) string {
	if i := strings.IndexAny(text, "\r\n"); i >= 0 {
		text = text[:i]
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, text)
}
