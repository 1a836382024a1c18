package modals

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
)

// NewPageState is the state for the create-page modal.
type NewPageState struct {
	title string

	form *huh.Form
}

func (*NewPageState) modalState() {}

func (s *NewPageState) Title() string { return "New Page" }

func (s *NewPageState) Help() string {
	return "Enter: create  Esc: cancel"
}

func (s *NewPageState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *NewPageState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// GetTitle returns the entered page title, trimmed.
func (s *NewPageState) GetTitle() string {
	return strings.TrimSpace(s.title)
}

func NewNewPageState() *NewPageState {
	s := &NewPageState{}
	s.form = titleForm("Title", "page title", &s.title)
	initHuhForm(s.form)
	return s
}

// RenamePageState is the state for the rename-page modal.
type RenamePageState struct {
	PageID string

	title string
	form  *huh.Form
}

func (*RenamePageState) modalState() {}

func (s *RenamePageState) Title() string { return "Rename Page" }

func (s *RenamePageState) Help() string {
	return "Enter: rename  Esc: cancel"
}

func (s *RenamePageState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *RenamePageState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

func (s *RenamePageState) GetTitle() string {
	return strings.TrimSpace(s.title)
}

func NewRenamePageState(pageID, currentTitle string) *RenamePageState {
	s := &RenamePageState{PageID: pageID, title: currentTitle}
	s.form = titleForm("New title", currentTitle, &s.title)
	initHuhForm(s.form)
	return s
}

func titleForm(fieldTitle, placeholder string, value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fieldTitle).
				Placeholder(placeholder).
				CharLimit(ModalInputCharLimit).
				Value(value),
		),
	).WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalInputWidth).
		WithLayout(huh.LayoutStack)
}
