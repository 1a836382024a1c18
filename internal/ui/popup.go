package ui

import (
	"fmt"
	"strings"

	"github.com/folioapp/folio/internal/nav"
	"github.com/folioapp/folio/internal/page"
)

const (
	// PopupWidth and PopupHeight are the fixed outer dimensions of a
	// popup card, borders included.
	PopupWidth  = 44
	PopupHeight = 14
)

// PopupSurface renders the popup stack on top of a base view. Stack
// order is paint order, so the last entry ends up front-most.
type PopupSurface struct {
	registry page.Registry
}

func NewPopupSurface(registry page.Registry) *PopupSurface {
	return &PopupSurface{registry: registry}
}

// Compose paints every popup in the stack over base. Only the front
// popup gets the focused border, and only when the popup layer has
// input focus.
func (s *PopupSurface) Compose(base string, popups []nav.PopupEntry, width, height int, popupFocused bool) string {
	out := base
	for i, entry := range popups {
		front := i == len(popups)-1
		card := s.renderCard(entry.PageID, front && popupFocused)
		x, y := ClampPosition(entry.Pos.X, entry.Pos.Y, PopupWidth, PopupHeight, width, height)
		out = OverlayAt(out, card, x, y, width, height)
	}
	return out
}

func (s *PopupSurface) renderCard(pageID string, focused bool) string {
	style := PopupStyle
	if focused {
		style = PopupFocusedStyle
	}
	innerWidth := PopupWidth - 2
	innerHeight := PopupHeight - 2

	title := "missing page"
	body := PlaceholderStyle.Render(fmt.Sprintf("Page %s is gone.", pageID))
	if p, err := s.registry.GetPage(pageID); err == nil {
		title = p.Title
		body = popupBody(p.Body, innerWidth, innerHeight-1)
	}

	var b strings.Builder
	b.WriteString(PopupTitleStyle.Render(truncateTitle(title, innerWidth)))
	b.WriteString("\n")
	b.WriteString(body)
	return style.Width(innerWidth).Height(innerHeight).Render(b.String())
}

// popupBody strips link markup down to bracketed labels and clips the
// text to the card interior. Labels stay unstyled so the wrap sees
// plain text.
func popupBody(body string, width, height int) string {
	refs := page.ParseLinks(body)
	if len(refs) > 0 {
		var b strings.Builder
		last := 0
		for _, ref := range refs {
			b.WriteString(body[last:ref.Start])
			b.WriteString("[" + ref.Label + "]")
			last = ref.End
		}
		b.WriteString(body[last:])
		body = b.String()
	}

	var rows []string
	for _, line := range strings.Split(body, "\n") {
		rows = append(rows, hardWrap(line, width)...)
		if len(rows) >= height {
			break
		}
	}
	if len(rows) > height {
		rows = rows[:height]
	}
	return strings.Join(rows, "\n")
}
