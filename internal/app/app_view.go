package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/folioapp/folio/internal/ui"
)

// View renders the app: header, sidebar beside the page (and split)
// panels, the popup stack composited on top, then any modal, then the
// footer.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		v.SetContent("Loading...")
		return v
	}

	snap := m.navigator.Snapshot()

	title := ""
	if p := m.activePage(); p != nil {
		title = p.Title
	}
	header := ui.RenderHeader(title, snap.ViewMode, m.width)

	var content string
	if m.editing {
		content = lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.sidebar.View(false),
			ui.PanelFocusedStyle.Render(m.editor.View()),
		)
	} else {
		var panels []string
		panels = append(panels, m.sidebar.View(m.focus == FocusSidebar))
		panels = append(panels, m.pageView.View(m.focus == FocusPage))
		if snap.SplitPageID != "" {
			panels = append(panels, m.splitView.View(false))
		}
		content = lipgloss.JoinHorizontal(lipgloss.Top, panels...)
	}

	contentHeight := m.height - 2
	if !m.editing && len(snap.Popups) > 0 {
		content = m.popups.Compose(content, snap.Popups, m.width, contentHeight, m.focus == FocusPopup)
	}
	if m.modal != nil {
		content = ui.RenderModal(content, m.modal, m.width, contentHeight)
	}

	footer := ui.RenderFooter(m.footerHints(snap.ViewMode), m.status, m.width)

	v.SetContent(lipgloss.JoinVertical(lipgloss.Left, header, content, footer))
	return v
}

func (m *Model) footerHints(viewMode bool) []ui.KeyHint {
	if m.editing {
		return []ui.KeyHint{
			{Key: "ctrl+s", Action: "save"},
			{Key: "ctrl+l", Action: "link"},
			{Key: "esc", Action: "discard"},
		}
	}
	if m.modal != nil {
		return []ui.KeyHint{
			{Key: "enter", Action: "confirm"},
			{Key: "esc", Action: "cancel"},
		}
	}
	hints := []ui.KeyHint{
		{Key: "enter", Action: "follow"},
		{Key: "b", Action: "back"},
		{Key: "w", Action: "close popup"},
		{Key: "x", Action: "close split"},
		{Key: "P", Action: "promote"},
	}
	if !viewMode {
		hints = append(hints,
			ui.KeyHint{Key: "e", Action: "edit"},
			ui.KeyHint{Key: "n", Action: "new"},
		)
	}
	hints = append(hints, ui.KeyHint{Key: "?", Action: "help"}, ui.KeyHint{Key: "q", Action: "quit"})
	return hints
}
