package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/folioapp/folio/internal/clipboard"
	"github.com/folioapp/folio/internal/keys"
	"github.com/folioapp/folio/internal/logger"
	"github.com/folioapp/folio/internal/nav"
	"github.com/folioapp/folio/internal/page"
	"github.com/folioapp/folio/internal/ui/modals"
)

// handleGlobalKey covers the normal browsing state: no modal, no
// editor, no search.
func (m *Model) handleGlobalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	m.status = ""
	snap := m.navigator.Snapshot()

	switch key {
	case "q":
		m.persistActivePage()
		return m, tea.Quit

	case "?":
		m.modal = modals.NewHelpState()
		return m, nil

	case "/":
		m.focus = FocusSidebar
		m.sidebar.StartSearch()
		return m, nil

	case "b":
		if m.navigator.GoBack() {
			m.popupLinkIndex = 0
			m.updateSizes()
			m.syncSurfaces()
		}
		return m, nil

	case "w":
		if front := m.navigator.FrontPopup(); front != nil {
			m.navigator.ClosePopup(front.PageID)
			m.popupLinkIndex = 0
			m.syncSurfaces()
		}
		return m, nil

	case "W":
		m.navigator.CloseAllPopups()
		m.syncSurfaces()
		return m, nil

	case "x":
		m.navigator.CloseSplit()
		m.updateSizes()
		m.syncSurfaces()
		return m, nil

	case "P":
		if front := m.navigator.FrontPopup(); front != nil {
			m.navigator.PromotePopup(front.PageID)
			m.popupLinkIndex = 0
			m.updateSizes()
			m.syncSurfaces()
			m.focus = FocusPage
		}
		return m, nil

	case keys.ShiftUp:
		return m.nudgeFrontPopup(0, -popupNudge)
	case keys.ShiftDown:
		return m.nudgeFrontPopup(0, popupNudge)
	case keys.ShiftLeft:
		return m.nudgeFrontPopup(-popupNudge, 0)
	case keys.ShiftRight:
		return m.nudgeFrontPopup(popupNudge, 0)

	case "y":
		if p := m.activePage(); p != nil {
			if err := clipboard.WriteText(p.Body); err != nil {
				logger.Warn("App: clipboard write failed: %v", err)
				m.status = "copy failed"
			} else {
				m.status = "copied page body"
			}
		}
		return m, nil

	case "e":
		return m.startEditing()

	case "n":
		if m.denyInViewMode(snap) {
			return m, nil
		}
		m.modal = modals.NewNewPageState()
		return m, nil

	case "r":
		if m.denyInViewMode(snap) {
			return m, nil
		}
		if p := m.activePage(); p != nil {
			m.modal = modals.NewRenamePageState(p.ID, p.Title)
		}
		return m, nil

	case "d":
		if m.denyInViewMode(snap) {
			return m, nil
		}
		if p := m.activePage(); p != nil {
			m.modal = modals.NewDeletePageState(p.ID, p.Title)
		}
		return m, nil

	case "i":
		if m.denyInViewMode(snap) {
			return m, nil
		}
		if !m.importer.Available() {
			m.status = "claude CLI not found in PATH"
			return m, nil
		}
		m.modal = modals.NewImportState()
		return m, nil
	}

	switch m.focus {
	case FocusSidebar:
		return m.handleSidebarKey(key)
	case FocusPopup:
		return m.handlePopupKey(key)
	default:
		return m.handlePageKey(key)
	}
}

func (m *Model) handleSidebarKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Up, "k":
		m.sidebar.MoveCursor(-1)
	case keys.Down, "j":
		m.sidebar.MoveCursor(1)
	case keys.Enter:
		if p, ok := m.sidebar.Selected(); ok {
			m.navigator.SetActivePage(p.ID)
			m.popupLinkIndex = 0
			m.updateSizes()
			m.syncSurfaces()
			m.focus = FocusPage
		}
	case keys.Tab, "l", keys.Right:
		m.focus = FocusPage
	}
	return m, nil
}

func (m *Model) handlePageKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Tab:
		m.pageView.CycleLink(1)
	case keys.ShiftTab:
		m.pageView.CycleLink(-1)
	case keys.Enter:
		if ref, ok := m.pageView.FocusedLink(); ok {
			m.followLink(ref.Link(), false)
		}
	case keys.Up, "k":
		m.pageView.ScrollBy(-1)
	case keys.Down, "j":
		m.pageView.ScrollBy(1)
	case keys.PgUp:
		m.pageView.ScrollBy(-10)
	case keys.PgDown:
		m.pageView.ScrollBy(10)
	case "h", keys.Left:
		m.focus = FocusSidebar
	case "p":
		if m.navigator.FrontPopup() != nil {
			m.focus = FocusPopup
		}
	}
	return m, nil
}

// handlePopupKey drives the front popup: link cycling and following with
// popup provenance, so full-page navigations preserve the popup stack in
// history.
func (m *Model) handlePopupKey(key string) (tea.Model, tea.Cmd) {
	links := m.frontPopupLinks()

	switch key {
	case keys.Escape:
		m.focus = FocusPage
	case keys.Tab:
		if len(links) > 0 {
			m.popupLinkIndex = (m.popupLinkIndex + 1) % len(links)
		}
	case keys.ShiftTab:
		if len(links) > 0 {
			m.popupLinkIndex = (m.popupLinkIndex - 1 + len(links)) % len(links)
		}
	case keys.Enter:
		if m.popupLinkIndex < len(links) {
			m.followLink(links[m.popupLinkIndex].Link(), true)
		}
	}
	return m, nil
}

// frontPopupLinks returns the hyperlinks of the front popup's page.
func (m *Model) frontPopupLinks() []page.LinkRef {
	front := m.navigator.FrontPopup()
	if front == nil {
		return nil
	}
	p, err := m.store.GetPage(front.PageID)
	if err != nil {
		return nil
	}
	return page.ParseLinks(p.Body)
}

// nudgeFrontPopup repositions the front popup. Repositioning goes
// through OpenPopup, which re-fronts the entry with the new position.
func (m *Model) nudgeFrontPopup(dx, dy int) (tea.Model, tea.Cmd) {
	front := m.navigator.FrontPopup()
	if front == nil {
		return m, nil
	}
	pos := nav.Position{X: front.Pos.X + dx, Y: front.Pos.Y + dy}
	if pos.X < 0 {
		pos.X = 0
	}
	if pos.Y < 0 {
		pos.Y = 0
	}
	m.navigator.OpenPopup(front.PageID, &pos)
	m.syncSurfaces()
	return m, nil
}

func (m *Model) handleSearchKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.Escape:
		m.sidebar.EndSearch()
		return m, nil
	case keys.Enter:
		if p, ok := m.sidebar.Selected(); ok {
			m.navigator.SetActivePage(p.ID)
			m.popupLinkIndex = 0
			m.updateSizes()
			m.syncSurfaces()
			m.focus = FocusPage
		}
		m.sidebar.EndSearch()
		return m, nil
	case keys.Up:
		m.sidebar.MoveCursor(-1)
		return m, nil
	case keys.Down:
		m.sidebar.MoveCursor(1)
		return m, nil
	}
	return m, m.sidebar.Update(msg)
}

// denyInViewMode blocks editing operations in a read-only session.
func (m *Model) denyInViewMode(snap nav.State) bool {
	if snap.ViewMode {
		m.status = "view-only session"
		return true
	}
	return false
}
