package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/folioapp/folio/internal/keys"
	"github.com/folioapp/folio/internal/logger"
	"github.com/folioapp/folio/internal/nav"
	"github.com/folioapp/folio/internal/notification"
)

// Update handles messages. This is the core Bubble Tea update function
// that routes all messages to the modal, the search field, the editor,
// or the key handler.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKeyPress(msg)

	case ImportResultMsg:
		return m.handleImportResult(msg)
	}

	// Non-key messages (blink ticks and the like) still feed the active
	// input widget.
	var cmd tea.Cmd
	switch {
	case m.modal != nil:
		m.modal, cmd = m.modal.Update(msg)
	case m.editing:
		m.editor, cmd = m.editor.Update(msg)
	case m.sidebar.Searching():
		cmd = m.sidebar.Update(msg)
	}
	return m, cmd
}

func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == keys.CtrlC {
		m.persistActivePage()
		return m, tea.Quit
	}

	if m.modal != nil {
		return m.handleModalKey(msg)
	}
	if m.editing {
		return m.handleEditorKey(msg)
	}
	if m.sidebar.Searching() {
		return m.handleSearchKey(msg)
	}
	return m.handleGlobalKey(msg)
}

func (m *Model) handleImportResult(msg ImportResultMsg) (tea.Model, tea.Cmd) {
	m.modal = nil

	if msg.Err != nil {
		logger.Error("App: import of %s failed: %v", msg.Path, msg.Err)
		m.status = "import failed: " + msg.Err.Error()
		if m.config.GetNotificationsEnabled() {
			if err := notification.ImportFailed(msg.Path); err != nil {
				logger.Warn("App: notification failed: %v", err)
			}
		}
		return m, nil
	}

	p, err := m.store.Create(msg.Doc.Title)
	if err == nil {
		err = m.store.UpdateBody(p.ID, msg.Doc.Body)
	}
	if err != nil {
		logger.Error("App: storing imported page failed: %v", err)
		m.status = "import failed: " + err.Error()
		return m, nil
	}

	m.refreshPages()
	m.status = "imported " + msg.Doc.Title
	if m.config.GetNotificationsEnabled() {
		if err := notification.ImportCompleted(msg.Doc.Title); err != nil {
			logger.Warn("App: notification failed: %v", err)
		}
	}
	return m, nil
}

// updateSizes recalculates and applies dimensions to the surfaces.
func (m *Model) updateSizes() {
	sidebarWidth := m.width / 4
	if sidebarWidth < 20 {
		sidebarWidth = 20
	}
	if sidebarWidth > 36 {
		sidebarWidth = 36
	}
	contentHeight := m.height - 2 // header + footer
	contentWidth := m.width - sidebarWidth

	m.sidebar.SetSize(sidebarWidth, contentHeight)

	if m.navigator != nil && m.navigator.Snapshot().SplitPageID != "" {
		half := contentWidth / 2
		m.pageView.SetSize(contentWidth-half, contentHeight)
		m.splitView.SetSize(half, contentHeight)
	} else {
		m.pageView.SetSize(contentWidth, contentHeight)
	}

	m.editor.SetWidth(contentWidth - 4)
	m.editor.SetHeight(contentHeight - 4)
}

// followLink routes a link activation through the navigation core and
// re-derives the surfaces. fromPopup marks activations that came from
// the popup layer.
func (m *Model) followLink(link nav.Link, fromPopup bool) {
	m.navigator.HandleLink(link, nil, fromPopup)
	if link.Mode == nav.ModePopup {
		m.focus = FocusPopup
		m.popupLinkIndex = 0
	}
	m.updateSizes()
	m.syncSurfaces()
}
