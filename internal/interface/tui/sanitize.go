package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// sanitize strips terminal control sequences from server supplied text so it
// renders as the literal characters it contains. Newlines and tabs survive.
func sanitize(s string) string {
	s = ansi.Strip(s)
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\t':
			return r
		case r < 0x20 || r == 0x7f || (r >= 0x80 && r < 0xa0):
			return -1
		}
		return r
	}, s)
}
