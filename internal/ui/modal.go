package ui

import (
	"github.com/folioapp/folio/internal/ui/modals"
)

// RenderModal paints a modal centered over the base view.
func RenderModal(base string, modal modals.ModalState, width, height int) string {
	card := ModalStyle.Render(modal.Render())
	return OverlayCentered(base, card, width, height)
}
