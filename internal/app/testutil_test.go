package app

import (
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/folioapp/folio/internal/config"
	"github.com/folioapp/folio/internal/keys"
	"github.com/folioapp/folio/internal/nav"
	"github.com/folioapp/folio/internal/page"
)

// newTestStore creates an in-memory store seeded with three linked
// pages: Home links to FAQ (popup), Terms (split), and About (newpage).
func newTestStore(t *testing.T) (*page.Store, map[string]string) {
	t.Helper()
	store, err := page.Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	ids := make(map[string]string)
	for _, title := range []string{"Home", "FAQ", "Terms", "About"} {
		p, err := store.Create(title)
		if err != nil {
			t.Fatalf("create %s: %v", title, err)
		}
		ids[title] = p.ID
	}

	body := "Welcome.\n" +
		page.FormatLink("the FAQ", ids["FAQ"], nav.ModePopup) + "\n" +
		page.FormatLink("the terms", ids["Terms"], nav.ModeSplit) + "\n" +
		page.FormatLink("about us", ids["About"], nav.ModeNewPage) + "\n"
	if err := store.UpdateBody(ids["Home"], body); err != nil {
		t.Fatalf("seed home body: %v", err)
	}
	return store, ids
}

func newTestModel(t *testing.T) (*Model, map[string]string) {
	t.Helper()
	store, ids := newTestStore(t)
	cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	m := New(cfg, store, "test", false)
	return setSize(m, 120, 40), ids
}

// keyPress creates a tea.KeyPressMsg for the given key string.
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.Tab:
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case keys.Escape:
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case keys.Up:
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case keys.Down:
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case keys.CtrlC:
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case keys.CtrlS:
		return tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}
	case keys.ShiftTab:
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	case keys.ShiftUp:
		return tea.KeyPressMsg{Code: tea.KeyUp, Mod: tea.ModShift}
	case keys.ShiftRight:
		return tea.KeyPressMsg{Code: tea.KeyRight, Mod: tea.ModShift}
	default:
		if len(key) == 1 {
			return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
		}
		return tea.KeyPressMsg{Text: key}
	}
}

// sendKey sends a key press to the model and returns the updated model.
func sendKey(m *Model, key string) *Model {
	result, _ := m.Update(keyPress(key))
	return result.(*Model)
}

// setSize sends a window size message to the model.
func setSize(m *Model, width, height int) *Model {
	result, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return result.(*Model)
}
