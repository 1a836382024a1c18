package modals

import (
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/folioapp/folio/internal/nav"
	"github.com/folioapp/folio/internal/page"
)

// InsertLinkState is the state for the insert-link modal. The chosen
// page, presentation mode, and label become a link in the page body at
// the editor cursor.
type InsertLinkState struct {
	// Bound form values
	pageID string
	mode   string
	label  string

	pages []page.Page
	form  *huh.Form
}

func (*InsertLinkState) modalState() {}

func (s *InsertLinkState) Title() string { return "Insert Link" }

func (s *InsertLinkState) Help() string {
	return "Tab: next  Enter: insert  Esc: cancel"
}

func (s *InsertLinkState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *InsertLinkState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// GetLink returns the configured link. The label falls back to the
// target page's title when left empty.
func (s *InsertLinkState) GetLink() (nav.Link, string) {
	label := s.label
	pageName := ""
	for _, p := range s.pages {
		if p.ID == s.pageID {
			pageName = p.Title
			break
		}
	}
	if label == "" {
		label = pageName
	}
	return nav.Link{PageID: s.pageID, PageName: pageName, Mode: nav.ParseMode(s.mode)}, label
}

// NewInsertLinkState creates the insert-link modal for the given page
// list. defaultMode seeds the mode selector.
func NewInsertLinkState(pages []page.Page, defaultMode string) *InsertLinkState {
	s := &InsertLinkState{
		mode:  defaultMode,
		pages: pages,
	}
	if s.mode == "" {
		s.mode = nav.ModePopup.String()
	}

	pageOptions := make([]huh.Option[string], len(pages))
	for i, p := range pages {
		pageOptions[i] = huh.NewOption(p.Title, p.ID)
	}
	if len(pages) > 0 {
		s.pageID = pages[0].ID
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Page").
				Options(pageOptions...).
				Value(&s.pageID),
			huh.NewSelect[string]().
				Title("Open as").
				Options(
					huh.NewOption("Popup", nav.ModePopup.String()),
					huh.NewOption("Split view", nav.ModeSplit.String()),
					huh.NewOption("Full page", nav.ModeNewPage.String()),
				).
				Value(&s.mode),
			huh.NewInput().
				Title("Label").
				Placeholder("page title").
				CharLimit(ModalInputCharLimit).
				Value(&s.label),
		),
	).WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalInputWidth).
		WithLayout(huh.LayoutStack)

	initHuhForm(s.form)
	return s
}
