package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/folioapp/folio/internal/keys"
	"github.com/folioapp/folio/internal/logger"
	"github.com/folioapp/folio/internal/ui/modals"
)

// startEditing opens the body editor for the active page.
func (m *Model) startEditing() (tea.Model, tea.Cmd) {
	snap := m.navigator.Snapshot()
	if m.denyInViewMode(snap) {
		return m, nil
	}
	p := m.activePage()
	if p == nil {
		m.status = "no page to edit"
		return m, nil
	}
	m.editing = true
	m.editor.SetValue(p.Body)
	m.updateSizes()
	return m, m.editor.Focus()
}

func (m *Model) handleEditorKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.Escape:
		m.editing = false
		m.editor.Blur()
		m.status = "edit discarded"
		return m, nil

	case keys.CtrlS:
		return m.saveEdit()

	case keys.CtrlL:
		m.modal = modals.NewInsertLinkState(m.pages, m.config.GetDefaultLinkMode())
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m *Model) saveEdit() (tea.Model, tea.Cmd) {
	p := m.activePage()
	if p == nil {
		m.editing = false
		return m, nil
	}
	if err := m.store.UpdateBody(p.ID, m.editor.Value()); err != nil {
		logger.Error("App: save of %s failed: %v", p.ID, err)
		m.status = "save failed: " + err.Error()
		return m, nil
	}
	m.editing = false
	m.editor.Blur()
	m.status = "saved"
	m.refreshPages()
	m.syncSurfaces()
	return m, nil
}
