// Package modals provides modal dialog state types for the UI.
// Each modal implements the ModalState interface with its own state
// struct, so the app layer can switch on the concrete type.
package modals

import (
	tea "charm.land/bubbletea/v2"
)

// ModalState is a discriminated union interface for modal-specific state.
type ModalState interface {
	modalState() // marker method to restrict implementations
	Title() string
	Help() string
	Render() string
	Update(msg tea.Msg) (ModalState, tea.Cmd)
}
