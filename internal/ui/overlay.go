package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// OverlayAt paints layer on top of base with its top-left corner at (x, y).
// The base is padded out to width x height so styled backgrounds survive
// the splice. Rows of the layer that fall outside the canvas are dropped.
func OverlayAt(base, layer string, x, y, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	baseLines := splitToLines(base, height)
	layerLines := splitToLines(layer, 0)
	layerWidth := maxLineWidth(layerLines)
	if layerWidth <= 0 || len(layerLines) == 0 {
		return strings.Join(baseLines, "\n")
	}
	for i, line := range layerLines {
		row := y + i
		if row < 0 || row >= len(baseLines) || row >= height {
			continue
		}
		target := padRightANSI(baseLines[row], width)
		left := ansi.Truncate(target, x, "")
		leftWidth := ansi.StringWidth(left)
		if leftWidth < x {
			left += strings.Repeat(" ", x-leftWidth)
		}

		layerLine := padRightANSI(line, layerWidth)
		pos := x + ansi.StringWidth(layerLine)
		right := dropColumns(target, pos)
		rightWidth := ansi.StringWidth(right)
		if gap := width - pos - rightWidth; gap > 0 {
			right = strings.Repeat(" ", gap) + right
		}
		baseLines[row] = left + layerLine + right
	}
	return strings.Join(baseLines, "\n")
}

// OverlayCentered paints layer centered over base.
func OverlayCentered(base, layer string, width, height int) string {
	layerLines := splitToLines(layer, 0)
	layerWidth := maxLineWidth(layerLines)
	layerHeight := len(layerLines)
	x := (width - layerWidth) / 2
	if x < 0 {
		x = 0
	}
	y := (height - layerHeight) / 2
	if y < 0 {
		y = 0
	}
	return OverlayAt(base, layer, x, y, width, height)
}

// ClampPosition keeps a layer of the given size at least partially on a
// width x height canvas.
func ClampPosition(x, y, layerWidth, layerHeight, width, height int) (int, int) {
	if x+layerWidth > width {
		x = width - layerWidth
	}
	if x < 0 {
		x = 0
	}
	if y+layerHeight > height {
		y = height - layerHeight
	}
	if y < 0 {
		y = 0
	}
	return x, y
}

func splitToLines(s string, height int) []string {
	lines := strings.Split(s, "\n")
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	for height > 0 && len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

func maxLineWidth(lines []string) int {
	maxWidth := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth
}

func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	truncated := ansi.Truncate(s, cols, "")
	return strings.TrimPrefix(s, truncated)
}

func padRightANSI(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
