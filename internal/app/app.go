// Package app wires the navigation core, the page store, and the UI
// surfaces into the Bubble Tea model for a folio session.
package app

import (
	"context"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"

	"github.com/folioapp/folio/internal/config"
	"github.com/folioapp/folio/internal/importer"
	"github.com/folioapp/folio/internal/logger"
	"github.com/folioapp/folio/internal/nav"
	"github.com/folioapp/folio/internal/page"
	"github.com/folioapp/folio/internal/ui"
	"github.com/folioapp/folio/internal/ui/modals"
)

// Focus represents which surface receives key input.
type Focus int

const (
	FocusSidebar Focus = iota
	FocusPage
	FocusPopup
)

// popupNudge is how many cells a shift+arrow moves the front popup.
const popupNudge = 2

// ImportResultMsg is sent when a background document import finishes.
type ImportResultMsg struct {
	Doc  *importer.ParsedDoc
	Path string
	Err  error
}

// Model is the main Bubble Tea model.
type Model struct {
	config  *config.Config
	store   *page.Store
	version string

	navigator *nav.Navigator
	sidebar   *ui.Sidebar
	pageView  *ui.PageView
	splitView *ui.PageView
	popups    *ui.PopupSurface
	importer  *importer.Importer

	modal modals.ModalState

	editor  textarea.Model
	editing bool

	pages []page.Page

	width  int
	height int
	focus  Focus
	status string

	// popupLinkIndex is the focused link inside the front popup, for
	// enter-to-follow from the popup layer.
	popupLinkIndex int
}

// New creates the app model. The navigator starts on the configured
// last-active page when it still exists, otherwise on the first page in
// the registry.
func New(cfg *config.Config, store *page.Store, version string, viewMode bool) *Model {
	ed := textarea.New()
	ed.ShowLineNumbers = false

	m := &Model{
		config:    cfg,
		store:     store,
		version:   version,
		sidebar:   ui.NewSidebar(),
		pageView:  ui.NewPageView(),
		splitView: ui.NewPageView(),
		popups:    ui.NewPopupSurface(store),
		importer:  importer.New(),
		editor:    ed,
		focus:     FocusPage,
	}

	m.refreshPages()
	initial := cfg.GetLastActivePageID()
	if !m.pageExists(initial) {
		initial = ""
		if len(m.pages) > 0 {
			initial = m.pages[0].ID
		}
	}
	m.navigator = nav.New(initial, viewMode)
	m.syncSurfaces()
	return m
}

// Init is the Bubble Tea init hook.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Navigator exposes the navigation core, mostly for tests.
func (m *Model) Navigator() *nav.Navigator {
	return m.navigator
}

func (m *Model) pageExists(id string) bool {
	if id == "" {
		return false
	}
	for _, p := range m.pages {
		if p.ID == id {
			return true
		}
	}
	return false
}

// refreshPages reloads the registry listing into the sidebar.
func (m *Model) refreshPages() {
	pages, err := m.store.ListPages()
	if err != nil {
		logger.Error("App: list pages failed: %v", err)
		m.status = "could not load pages"
		return
	}
	m.pages = pages
	m.sidebar.SetPages(pages)
}

// syncSurfaces re-derives every surface from the navigator snapshot.
// All rendering state flows through here so surfaces can never disagree
// with the navigation core.
func (m *Model) syncSurfaces() {
	snap := m.navigator.Snapshot()

	m.loadInto(m.pageView, snap.ActivePageID)
	if snap.SplitPageID != "" {
		m.loadInto(m.splitView, snap.SplitPageID)
	}
	m.sidebar.SelectID(snap.ActivePageID)

	// Focus falls back from a closed popup layer to the page.
	if m.focus == FocusPopup && len(snap.Popups) == 0 {
		m.focus = FocusPage
	}
}

func (m *Model) loadInto(v *ui.PageView, pageID string) {
	if pageID == "" {
		v.SetPage(nil)
		return
	}
	p, err := m.store.GetPage(pageID)
	if err != nil {
		logger.Warn("App: page %s not loadable: %v", pageID, err)
		v.SetMissing(pageID)
		return
	}
	v.SetPage(p)
}

// activePage returns the loaded active page, or nil.
func (m *Model) activePage() *page.Page {
	return m.pageView.Page()
}

// persistActivePage records the active page for the next startup. Save
// failures only log; losing the restore hint is not worth interrupting
// the user.
func (m *Model) persistActivePage() {
	snap := m.navigator.Snapshot()
	if snap.ActivePageID == "" {
		return
	}
	m.config.SetLastActivePageID(snap.ActivePageID)
	if err := m.config.Save(); err != nil {
		logger.Warn("App: config save failed: %v", err)
	}
}

// startImport kicks off a background document import.
func (m *Model) startImport(path string) tea.Cmd {
	imp := m.importer
	return func() tea.Msg {
		doc, err := imp.ImportFile(context.Background(), path)
		return ImportResultMsg{Doc: doc, Path: path, Err: err}
	}
}
