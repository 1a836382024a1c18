package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/folioapp/folio/internal/keys"
	"github.com/folioapp/folio/internal/logger"
	"github.com/folioapp/folio/internal/page"
	"github.com/folioapp/folio/internal/ui/modals"
)

// handleModalKey intercepts Enter and Escape for the open modal and
// delegates everything else to the modal's own Update.
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.Escape:
		m.modal = nil
		return m, nil

	case keys.Enter:
		return m.confirmModal()
	}

	var cmd tea.Cmd
	m.modal, cmd = m.modal.Update(msg)
	return m, cmd
}

// confirmModal applies the open modal's result. The type switch is the
// counterpart of the ModalState union: every modal type appears here.
func (m *Model) confirmModal() (tea.Model, tea.Cmd) {
	switch s := m.modal.(type) {
	case *modals.HelpState:
		m.modal = nil

	case *modals.NewPageState:
		title := s.GetTitle()
		if title == "" {
			return m, nil
		}
		p, err := m.store.Create(title)
		if err != nil {
			logger.Error("App: create page failed: %v", err)
			m.status = "create failed: " + err.Error()
			m.modal = nil
			return m, nil
		}
		m.modal = nil
		m.refreshPages()
		m.navigator.SetActivePage(p.ID)
		m.popupLinkIndex = 0
		m.updateSizes()
		m.syncSurfaces()
		m.focus = FocusPage

	case *modals.RenamePageState:
		title := s.GetTitle()
		if title == "" {
			return m, nil
		}
		if err := m.store.Rename(s.PageID, title); err != nil {
			logger.Error("App: rename failed: %v", err)
			m.status = "rename failed: " + err.Error()
		}
		m.modal = nil
		m.refreshPages()
		m.syncSurfaces()

	case *modals.DeletePageState:
		if !s.Confirmed {
			m.modal = nil
			return m, nil
		}
		return m.deletePage(s.PageID)

	case *modals.ImportState:
		path := s.GetPath()
		if path == "" {
			return m, nil
		}
		s.Busy = true
		return m, m.startImport(path)

	case *modals.InsertLinkState:
		link, label := s.GetLink()
		if link.PageID != "" {
			markup := page.FormatLink(label, link.PageID, link.Mode)
			m.editor.SetValue(m.editor.Value() + markup)
		}
		m.modal = nil

	default:
		m.modal = nil
	}
	return m, nil
}

// deletePage removes the page and scrubs it from every surface: popups
// close, the split view closes, and an active page falls back to the
// first remaining page.
func (m *Model) deletePage(id string) (tea.Model, tea.Cmd) {
	m.modal = nil
	if err := m.store.Delete(id); err != nil {
		logger.Error("App: delete failed: %v", err)
		m.status = "delete failed: " + err.Error()
		return m, nil
	}

	snap := m.navigator.Snapshot()
	if m.navigator.HasPopup(id) {
		m.navigator.ClosePopup(id)
	}
	if snap.SplitPageID == id {
		m.navigator.CloseSplit()
	}
	m.refreshPages()
	if snap.ActivePageID == id {
		next := ""
		if len(m.pages) > 0 {
			next = m.pages[0].ID
		}
		m.navigator.SetActivePage(next)
	}
	m.popupLinkIndex = 0
	m.updateSizes()
	m.syncSurfaces()
	m.status = "page deleted"
	return m, nil
}
