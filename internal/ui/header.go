package ui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// RenderHeader draws the one-line title bar: app name, active page
// title, and a view-mode badge when editing is disabled.
func RenderHeader(pageTitle string, viewMode bool, width int) string {
	left := "folio"
	if pageTitle != "" {
		left = fmt.Sprintf("folio · %s", pageTitle)
	}
	right := ""
	if viewMode {
		right = "[view only]"
	}

	left = truncateTitle(left, width-runewidth.StringWidth(right)-3)
	gap := width - runewidth.StringWidth(left) - runewidth.StringWidth(right) - 2
	if gap < 1 {
		gap = 1
	}
	return HeaderStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
