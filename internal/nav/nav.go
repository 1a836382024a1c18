// Package nav holds the navigation state machine for a folio editing
// session: which page is active, which page (if any) is open in split
// view, the ordered stack of floating popups, and the history that a
// single "back" operation restores.
//
// A Navigator is constructed once per session and passed by handle to
// every surface that needs it. Surfaces never write state directly; they
// read Snapshot() and invoke the named operations.
package nav

// Mode is the presentation a hyperlink asks for. It is a closed
// enumeration; HandleLink dispatches with an exhaustive switch so adding
// a mode is a compile-time-checked change.
type Mode int

const (
	ModePopup Mode = iota
	ModeSplit
	ModeNewPage
)

// String returns the wire/markup name for the mode.
func (m Mode) String() string {
	switch m {
	case ModePopup:
		return "popup"
	case ModeSplit:
		return "split"
	case ModeNewPage:
		return "newpage"
	default:
		return "unknown"
	}
}

// ParseMode maps a markup mode name to a Mode. Unknown names fall back
// to ModePopup, the least disruptive presentation.
func ParseMode(s string) Mode {
	switch s {
	case "split":
		return ModeSplit
	case "newpage":
		return ModeNewPage
	default:
		return ModePopup
	}
}

// Position is a screen position hint for a popup, in cells.
type Position struct {
	X int
	Y int
}

// PopupEntry is one open popup. Entries are owned by the popup stack;
// they are created on open and destroyed on close or promotion.
type PopupEntry struct {
	PageID string
	Pos    Position
}

// Link is a confirmed hyperlink activation, produced by the UI and
// consumed once by HandleLink.
type Link struct {
	PageID   string
	PageName string
	Mode     Mode
}

// State is the complete visible state at an instant: one active page, at
// most one split page, and the popup stack in visual order (last entry is
// front-most). ViewMode is a passthrough initialization flag and does not
// affect navigation.
type State struct {
	ActivePageID string
	SplitPageID  string
	Popups       []PopupEntry
	ViewMode     bool
}

// historyEntry is a saved composite state, pushed immediately before a
// full-page navigation away from the page it describes.
type historyEntry struct {
	activePageID string
	splitPageID  string
	popups       []PopupEntry
}

// Default popup placement: a cascade offset by stack depth so newly
// opened popups don't hide each other completely.
const (
	defaultPopupX    = 8
	defaultPopupY    = 2
	popupCascadeStep = 2
)

// Navigator is the single source of truth for navigation state. All
// mutations happen through its methods, synchronously, on the UI's event
// turn; it needs no locking.
type Navigator struct {
	active   string
	split    string
	popups   []PopupEntry
	history  []historyEntry
	viewMode bool
}

// New creates a Navigator showing the given page. viewMode marks a
// read-only viewing session; it is carried through to snapshots
// unchanged.
func New(initialPageID string, viewMode bool) *Navigator {
	return &Navigator{
		active:   initialPageID,
		viewMode: viewMode,
	}
}

// defaultPosition returns the cascade position for a popup opened without
// an explicit position hint.
func (n *Navigator) defaultPosition() Position {
	depth := len(n.popups)
	return Position{
		X: defaultPopupX + depth*popupCascadeStep,
		Y: defaultPopupY + depth*popupCascadeStep,
	}
}

// OpenPopup opens pageID as a popup at pos, or at a default cascade
// position when pos is nil. If the page is already open as a popup, its
// entry moves to the front of the stack and takes the new position. The
// stack never holds two entries for the same page. Never touches
// history, the active page, or the split view.
func (n *Navigator) OpenPopup(pageID string, pos *Position) {
	n.removePopup(pageID)
	p := n.defaultPosition()
	if pos != nil {
		p = *pos
	}
	n.popups = append(n.popups, PopupEntry{PageID: pageID, Pos: p})
}

// OpenSplit shows pageID in the split view, replacing any page already
// there. Popups and history are untouched; a page may be open in split
// view and as a popup at the same time.
func (n *Navigator) OpenSplit(pageID string) {
	n.split = pageID
}

// OpenPage performs a full navigation to pageID, like a browser
// navigation. The outgoing composite state is pushed to history so GoBack
// can restore it. Popups are saved in the history entry only when the
// navigation came from inside a popup, so that going back returns the
// user to the popup they were reading; a navigation from the main page
// treats its popups as transient and saves none. Leaving the main page
// also closes its popups; the split view always closes.
func (n *Navigator) OpenPage(pageID string, fromPopup bool) {
	if n.active != "" {
		var saved []PopupEntry
		if fromPopup {
			saved = clonePopups(n.popups)
		}
		n.history = append(n.history, historyEntry{
			activePageID: n.active,
			splitPageID:  n.split,
			popups:       saved,
		})
	}
	n.active = pageID
	if !fromPopup {
		n.popups = nil
	}
	n.split = ""
}

// ClosePopup removes the popup for pageID. No-op when the page has no
// popup.
func (n *Navigator) ClosePopup(pageID string) {
	n.removePopup(pageID)
}

// CloseAllPopups empties the popup stack.
func (n *Navigator) CloseAllPopups() {
	n.popups = nil
}

// CloseSplit closes the split view.
func (n *Navigator) CloseSplit() {
	n.split = ""
}

// GoBack restores the most recent history entry (active page, split
// view, and popup stack together, as one transition) and removes it
// permanently. There is no redo. Returns false, leaving state unchanged,
// when history is empty.
func (n *Navigator) GoBack() bool {
	if len(n.history) == 0 {
		return false
	}
	e := n.history[len(n.history)-1]
	n.history = n.history[:len(n.history)-1]
	n.active = e.activePageID
	n.split = e.splitPageID
	n.popups = e.popups
	return true
}

// PromotePopup turns the popup for pageID into the active page. The
// outgoing composite state, including the popup stack as it stands, is
// pushed to history, then the promoted page's popup entry is removed and
// it becomes the active page. GoBack restores the previous active page
// with every popup reopened.
func (n *Navigator) PromotePopup(pageID string) {
	if n.active != "" {
		n.history = append(n.history, historyEntry{
			activePageID: n.active,
			splitPageID:  n.split,
			popups:       clonePopups(n.popups),
		})
	}
	n.active = pageID
	n.removePopup(pageID)
}

// SetActivePage jumps directly to pageID, closing all popups and the
// split view. No history entry is pushed; this is for explicit top-level
// page switches (the page list), not hyperlink navigation.
func (n *Navigator) SetActivePage(pageID string) {
	n.active = pageID
	n.popups = nil
	n.split = ""
}

// HandleLink is the single dispatch entry point for hyperlink
// activations. pos is an optional screen position hint for popups;
// fromPopup says the activation originated inside an open popup.
func (n *Navigator) HandleLink(link Link, pos *Position, fromPopup bool) {
	switch link.Mode {
	case ModePopup:
		n.OpenPopup(link.PageID, pos)
	case ModeSplit:
		n.OpenSplit(link.PageID)
	case ModeNewPage:
		n.OpenPage(link.PageID, fromPopup)
	}
}

// Snapshot returns a copy of the current composite state. The popup
// slice is cloned so surfaces can never observe a partial transition or
// mutate the stack.
func (n *Navigator) Snapshot() State {
	return State{
		ActivePageID: n.active,
		SplitPageID:  n.split,
		Popups:       clonePopups(n.popups),
		ViewMode:     n.viewMode,
	}
}

// CanGoBack reports whether history has an entry to restore.
func (n *Navigator) CanGoBack() bool {
	return len(n.history) > 0
}

// HistoryDepth returns the number of saved history entries.
func (n *Navigator) HistoryDepth() int {
	return len(n.history)
}

// FrontPopup returns the front-most (most recently opened or focused)
// popup, or nil when no popups are open.
func (n *Navigator) FrontPopup() *PopupEntry {
	if len(n.popups) == 0 {
		return nil
	}
	e := n.popups[len(n.popups)-1]
	return &e
}

// HasPopup reports whether pageID currently has an open popup.
func (n *Navigator) HasPopup(pageID string) bool {
	for _, p := range n.popups {
		if p.PageID == pageID {
			return true
		}
	}
	return false
}

// removePopup deletes the entry for pageID, preserving the order of the
// rest. No-op when absent.
func (n *Navigator) removePopup(pageID string) {
	for i, p := range n.popups {
		if p.PageID == pageID {
			n.popups = append(n.popups[:i], n.popups[i+1:]...)
			return
		}
	}
}

func clonePopups(popups []PopupEntry) []PopupEntry {
	if len(popups) == 0 {
		return nil
	}
	out := make([]PopupEntry, len(popups))
	copy(out, popups)
	return out
}
