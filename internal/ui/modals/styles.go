package modals

import (
	"charm.land/lipgloss/v2"
)

var (
	ColorPrimary     = lipgloss.Color("#0D9488")
	ColorSecondary   = lipgloss.Color("#F59E0B")
	ColorText        = lipgloss.Color("#F9FAFB")
	ColorTextMuted   = lipgloss.Color("#9CA3AF")
	ColorTextInverse = lipgloss.Color("#111827")
	ColorWarning     = lipgloss.Color("#F59E0B")
	ColorDanger      = lipgloss.Color("#EF4444")
)

var (
	ModalTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	ModalHelpStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	ModalWarnStyle = lipgloss.NewStyle().
			Foreground(ColorDanger).
			Bold(true)
)

const (
	ModalInputWidth     = 48
	ModalInputCharLimit = 120
)
