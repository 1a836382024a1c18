package ui

import "charm.land/lipgloss/v2"

// Color palette - Teal + Amber theme
var (
	ColorPrimary     = lipgloss.Color("#0D9488") // Teal
	ColorSecondary   = lipgloss.Color("#F59E0B") // Amber
	ColorMuted       = lipgloss.Color("#6B7280") // Gray
	ColorBorder      = lipgloss.Color("#374151") // Dark gray
	ColorBorderFocus = lipgloss.Color("#0D9488") // Teal when focused
	ColorText        = lipgloss.Color("#F9FAFB") // Light text
	ColorTextMuted   = lipgloss.Color("#9CA3AF") // Muted text
	ColorLink        = lipgloss.Color("#38BDF8") // Sky blue for hyperlinks
	ColorWarning     = lipgloss.Color("#F59E0B") // Amber for confirmations
	ColorError       = lipgloss.Color("#EF4444") // Red for errors
	ColorSuccess     = lipgloss.Color("#10B981") // Green for success
)

// Header and footer styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Background(ColorPrimary).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)
)

// Panel styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	PanelFocusedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderFocus)

	PanelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, 1)
)

// Sidebar styles
var (
	SidebarItemStyle = lipgloss.NewStyle().
				Padding(0, 1)

	SidebarSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorText).
				Background(lipgloss.Color("#134E4A")).
				Bold(true).
				Padding(0, 1)
)

// Page body styles
var (
	LinkStyle = lipgloss.NewStyle().
			Foreground(ColorLink).
			Underline(true)

	LinkFocusedStyle = lipgloss.NewStyle().
				Foreground(ColorText).
				Background(ColorLink).
				Bold(true)

	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted).
				Italic(true)
)

// Popup styles
var (
	PopupStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	PopupFocusedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorSecondary)

	PopupTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)
)

// Modal styles
var (
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 2)

	ModalTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	ModalHelpStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ColorError)
)
