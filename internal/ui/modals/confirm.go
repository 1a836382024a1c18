package modals

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/folioapp/folio/internal/keys"
)

// DeletePageState is the state for the delete-page confirmation modal.
type DeletePageState struct {
	PageID    string
	PageTitle string
	Confirmed bool
}

func (*DeletePageState) modalState() {}

func (s *DeletePageState) Title() string { return "Delete Page" }

func (s *DeletePageState) Help() string {
	return "←/→: choose  Enter: confirm  Esc: cancel"
}

func (s *DeletePageState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	warning := ModalWarnStyle.Render(fmt.Sprintf("Delete %q? Links to it will break.", s.PageTitle))

	yes := "  Delete  "
	no := "  Keep  "
	yesStyle := lipgloss.NewStyle().Padding(0, 1).Foreground(ColorTextMuted)
	noStyle := yesStyle
	if s.Confirmed {
		yesStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(ColorTextInverse).Background(ColorDanger)
	} else {
		noStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(ColorTextInverse).Background(ColorPrimary)
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top, yesStyle.Render(yes), " ", noStyle.Render(no))

	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, "", warning, "", buttons, "", help)
}

func (s *DeletePageState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.Left, keys.Right, "tab":
			s.Confirmed = !s.Confirmed
		case "y":
			s.Confirmed = true
		case "n":
			s.Confirmed = false
		}
	}
	return s, nil
}

func NewDeletePageState(pageID, pageTitle string) *DeletePageState {
	return &DeletePageState{PageID: pageID, PageTitle: pageTitle}
}
