package modals

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// HelpShortcut is a single keyboard shortcut for display.
type HelpShortcut struct {
	Key  string
	Desc string
}

// HelpSection groups related shortcuts.
type HelpSection struct {
	Title     string
	Shortcuts []HelpShortcut
}

// HelpState is the state for the keyboard reference modal.
type HelpState struct {
	Sections []HelpSection
}

func (*HelpState) modalState() {}

func (s *HelpState) Title() string { return "Keyboard Reference" }

func (s *HelpState) Help() string { return "Esc: close" }

func (s *HelpState) Render() string {
	keyStyle := lipgloss.NewStyle().Foreground(ColorSecondary).Bold(true).Width(10)
	descStyle := lipgloss.NewStyle().Foreground(ColorText)
	sectionStyle := lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)

	var b strings.Builder
	b.WriteString(ModalTitleStyle.Render(s.Title()))
	for _, section := range s.Sections {
		b.WriteString("\n\n")
		b.WriteString(sectionStyle.Render(section.Title))
		for _, sc := range section.Shortcuts {
			b.WriteString("\n  ")
			b.WriteString(keyStyle.Render(sc.Key))
			b.WriteString(descStyle.Render(sc.Desc))
		}
	}
	b.WriteString("\n\n")
	b.WriteString(ModalHelpStyle.Render(s.Help()))
	return b.String()
}

func (s *HelpState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	return s, nil
}

func NewHelpState() *HelpState {
	return &HelpState{
		Sections: []HelpSection{
			{
				Title: "Navigation",
				Shortcuts: []HelpShortcut{
					{Key: "enter", Desc: "follow focused link"},
					{Key: "tab", Desc: "next link"},
					{Key: "shift+tab", Desc: "previous link"},
					{Key: "b", Desc: "back"},
					{Key: "j/k", Desc: "move in page list"},
					{Key: "/", Desc: "search pages"},
				},
			},
			{
				Title: "Popups & Split",
				Shortcuts: []HelpShortcut{
					{Key: "w", Desc: "close front popup"},
					{Key: "W", Desc: "close all popups"},
					{Key: "x", Desc: "close split view"},
					{Key: "P", Desc: "promote front popup to full page"},
					{Key: "shift+↑↓←→", Desc: "move front popup"},
				},
			},
			{
				Title: "Editing",
				Shortcuts: []HelpShortcut{
					{Key: "e", Desc: "edit page body"},
					{Key: "ctrl+s", Desc: "save edits"},
					{Key: "ctrl+l", Desc: "insert link (while editing)"},
					{Key: "n", Desc: "new page"},
					{Key: "r", Desc: "rename page"},
					{Key: "d", Desc: "delete page"},
					{Key: "i", Desc: "import document"},
					{Key: "y", Desc: "copy page body"},
				},
			},
			{
				Title: "General",
				Shortcuts: []HelpShortcut{
					{Key: "?", Desc: "this help"},
					{Key: "q", Desc: "quit"},
				},
			},
		},
	}
}
