package keys

import "testing"

// The constants exist so handlers can't misspell key strings; pin the
// values the rest of the app switches on.
func TestKeyStrings(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{Up, "up"},
		{Down, "down"},
		{Left, "left"},
		{Right, "right"},
		{Enter, "enter"},
		{Tab, "tab"},
		{ShiftTab, "shift+tab"},
		{Escape, "esc"},
		{Backspace, "backspace"},
		{CtrlC, "ctrl+c"},
		{CtrlS, "ctrl+s"},
		{CtrlL, "ctrl+l"},
		{ShiftUp, "shift+up"},
		{ShiftDown, "shift+down"},
		{ShiftLeft, "shift+left"},
		{ShiftRight, "shift+right"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("key constant = %q, want %q", tt.got, tt.want)
		}
	}
}
