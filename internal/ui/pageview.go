package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/folioapp/folio/internal/page"
)

// PageView renders a single page body with its links. Links are focusable
// in document order; the focused link is what "follow link" acts on.
type PageView struct {
	width  int
	height int

	pg        *page.Page
	missingID string
	links     []page.LinkRef
	focused   int
	scroll    int
}

func NewPageView() *PageView {
	return &PageView{focused: -1}
}

func (v *PageView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// SetPage replaces the displayed page. Link focus and scroll reset on a
// page change but survive a reload of the same page.
func (v *PageView) SetPage(p *page.Page) {
	samePage := p != nil && v.pg != nil && v.pg.ID == p.ID
	v.pg = p
	v.missingID = ""
	if p == nil {
		v.links = nil
		v.focused = -1
		v.scroll = 0
		return
	}
	v.links = page.ParseLinks(p.Body)
	if !samePage {
		v.scroll = 0
		v.focused = -1
	}
	if v.focused >= len(v.links) {
		v.focused = len(v.links) - 1
	}
	if v.focused < 0 && len(v.links) > 0 {
		v.focused = 0
	}
}

// SetMissing shows a placeholder for a page that no longer exists.
func (v *PageView) SetMissing(pageID string) {
	v.pg = nil
	v.missingID = pageID
	v.links = nil
	v.focused = -1
	v.scroll = 0
}

func (v *PageView) Page() *page.Page {
	return v.pg
}

func (v *PageView) PageID() string {
	if v.pg != nil {
		return v.pg.ID
	}
	return v.missingID
}

func (v *PageView) Links() []page.LinkRef {
	return v.links
}

// FocusedLink returns the currently focused link, if any.
func (v *PageView) FocusedLink() (page.LinkRef, bool) {
	if v.focused < 0 || v.focused >= len(v.links) {
		return page.LinkRef{}, false
	}
	return v.links[v.focused], true
}

// CycleLink moves link focus forward (+1) or backward (-1), wrapping
// around the ends.
func (v *PageView) CycleLink(delta int) {
	if len(v.links) == 0 {
		return
	}
	v.focused = (v.focused + delta + len(v.links)) % len(v.links)
}

func (v *PageView) ScrollBy(delta int) {
	v.scroll += delta
	if v.scroll < 0 {
		v.scroll = 0
	}
}

// View renders the page inside a bordered panel. The focused flag picks
// the border color.
func (v *PageView) View(focused bool) string {
	if v.width <= 2 || v.height <= 2 {
		return ""
	}
	innerWidth := v.width - 2
	innerHeight := v.height - 2

	style := PanelStyle
	if focused {
		style = PanelFocusedStyle
	}

	title := "(no page)"
	if v.pg != nil {
		title = v.pg.Title
	} else if v.missingID != "" {
		title = "missing page"
	}

	body := v.renderBody(innerWidth)
	rows := strings.Split(body, "\n")

	contentRows := innerHeight - 1
	maxScroll := len(rows) - contentRows
	if maxScroll < 0 {
		maxScroll = 0
	}
	if v.scroll > maxScroll {
		v.scroll = maxScroll
	}
	end := v.scroll + contentRows
	if end > len(rows) {
		end = len(rows)
	}
	visible := rows[v.scroll:end]

	var b strings.Builder
	b.WriteString(PanelTitleStyle.Render(truncateTitle(title, innerWidth-2)))
	for _, row := range visible {
		b.WriteString("\n")
		b.WriteString(ansi.Truncate(row, innerWidth, ""))
	}
	return style.Width(innerWidth).Height(innerHeight).Render(b.String())
}

// renderBody styles links, highlights fenced code blocks, and wraps
// plain text to the given width.
func (v *PageView) renderBody(width int) string {
	if v.pg == nil {
		if v.missingID != "" {
			return PlaceholderStyle.Render(fmt.Sprintf("Page %s was deleted or could not be loaded.", v.missingID))
		}
		return PlaceholderStyle.Render("Nothing to show.")
	}

	var out []string
	var codeLines []string
	codeLang := ""
	inCode := false
	linkIndex := 0

	for _, line := range strings.Split(v.pg.Body, "\n") {
		if strings.HasPrefix(line, "```") {
			if inCode {
				highlighted := highlightCode(strings.Join(codeLines, "\n"), codeLang)
				out = append(out, strings.Split(strings.TrimRight(highlighted, "\n"), "\n")...)
				codeLines = nil
				inCode = false
			} else {
				inCode = true
				codeLang = strings.TrimSpace(strings.TrimPrefix(line, "```"))
			}
			continue
		}
		if inCode {
			codeLines = append(codeLines, line)
			continue
		}

		refs := page.ParseLinks(line)
		if len(refs) == 0 {
			out = append(out, hardWrap(line, width)...)
			continue
		}
		out = append(out, v.renderLinkLine(line, refs, linkIndex))
		linkIndex += len(refs)
	}
	if inCode && len(codeLines) > 0 {
		// Unterminated fence: show the code as-is.
		out = append(out, codeLines...)
	}
	return strings.Join(out, "\n")
}

// renderLinkLine splices styled link labels over their markup. baseIndex
// is the document-order index of the line's first link.
func (v *PageView) renderLinkLine(line string, refs []page.LinkRef, baseIndex int) string {
	var b strings.Builder
	last := 0
	for i, ref := range refs {
		b.WriteString(line[last:ref.Start])
		label := fmt.Sprintf("[%s]", ref.Label)
		if baseIndex+i == v.focused {
			b.WriteString(LinkFocusedStyle.Render(label))
		} else {
			b.WriteString(LinkStyle.Render(label))
		}
		last = ref.End
	}
	b.WriteString(line[last:])
	return b.String()
}
