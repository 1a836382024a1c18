package ui

import (
	"bytes"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// highlightCode applies syntax highlighting to code using chroma
func highlightCode(code, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}

	return buf.String()
}

// truncateTitle shortens a plain-text title to fit the given cell width.
func truncateTitle(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 1 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "…")
}

// hardWrap breaks a plain-text line into rows no wider than width,
// splitting on grapheme cluster boundaries so multi-rune characters
// never straddle a row.
func hardWrap(line string, width int) []string {
	if width <= 0 {
		return []string{""}
	}
	if runewidth.StringWidth(line) <= width {
		return []string{line}
	}
	var rows []string
	var row strings.Builder
	rowWidth := 0
	gr := uniseg.NewGraphemes(line)
	for gr.Next() {
		cluster := gr.Str()
		w := runewidth.StringWidth(cluster)
		if rowWidth+w > width && rowWidth > 0 {
			rows = append(rows, row.String())
			row.Reset()
			rowWidth = 0
		}
		row.WriteString(cluster)
		rowWidth += w
	}
	if row.Len() > 0 || len(rows) == 0 {
		rows = append(rows, row.String())
	}
	return rows
}
