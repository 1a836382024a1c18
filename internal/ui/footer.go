package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// KeyHint pairs a key with its action for the footer strip.
type KeyHint struct {
	Key    string
	Action string
}

// RenderFooter draws the key-hint strip, dropping hints from the right
// when the terminal is narrow. A non-empty status replaces the hints.
func RenderFooter(hints []KeyHint, status string, width int) string {
	if status != "" {
		return FooterStyle.Width(width).Render(ansi.Truncate(status, width-2, "…"))
	}
	var parts []string
	for _, h := range hints {
		parts = append(parts, FooterKeyStyle.Render(h.Key)+" "+h.Action)
	}
	line := strings.Join(parts, "  ")
	for len(parts) > 1 && ansi.StringWidth(line) > width-2 {
		parts = parts[:len(parts)-1]
		line = strings.Join(parts, "  ")
	}
	return FooterStyle.Width(width).Render(ansi.Truncate(line, width-2, ""))
}
