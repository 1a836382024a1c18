package modals

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
)

// ImportState is the state for the import-document modal. The given
// file is converted into a page via the claude CLI.
type ImportState struct {
	path string

	// Busy is set once the import has been kicked off.
	Busy bool
	// Err holds the last import failure for display.
	Err error

	form *huh.Form
}

func (*ImportState) modalState() {}

func (s *ImportState) Title() string { return "Import Document" }

func (s *ImportState) Help() string {
	if s.Busy {
		return "importing…  Esc: close"
	}
	return "Enter: import  Esc: cancel"
}

func (s *ImportState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	parts := []string{title, s.form.View()}
	if s.Busy {
		parts = append(parts, ModalHelpStyle.Render("Converting with claude, this can take a minute…"))
	}
	if s.Err != nil {
		parts = append(parts, ModalWarnStyle.Render(s.Err.Error()))
	}
	parts = append(parts, ModalHelpStyle.Render(s.Help()))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (s *ImportState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if s.Busy {
		return s, nil
	}
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// GetPath returns the entered file path, trimmed.
func (s *ImportState) GetPath() string {
	return strings.TrimSpace(s.path)
}

func NewImportState() *ImportState {
	s := &ImportState{}
	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("File").
				Placeholder("/path/to/document.md").
				CharLimit(ModalInputCharLimit).
				Value(&s.path),
		),
	).WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalInputWidth).
		WithLayout(huh.LayoutStack)
	initHuhForm(s.form)
	return s
}
