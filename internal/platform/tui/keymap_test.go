package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyMapBindings(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		msg     tea.KeyMsg
		binding key.Binding
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, km.Left},
		{"a", runeKey('a'), km.Left},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, km.Right},
		{"d", runeKey('d'), km.Right},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, km.Fire},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, km.Fire},
		{"p", runeKey('p'), km.Pause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, km.Pause},
		{"r", runeKey('r'), km.Restart},
		{"ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}, km.Screenshot},
		{"q", runeKey('q'), km.Quit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, km.Quit},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !key.Matches(tc.msg, tc.binding) {
				t.Errorf("%q does not match %v", tc.msg.String(), tc.binding.Keys())
			}
		})
	}
}

func TestKeyMapNoOverlap(t *testing.T) {
	km := DefaultKeyMap()
	seen := map[string]string{}
	bindings := map[string]key.Binding{
		"left": km.Left, "right": km.Right, "fire": km.Fire, "pause": km.Pause,
		"restart": km.Restart, "screenshot": km.Screenshot, "quit": km.Quit,
	}
	for name, b := range bindings {
		for _, k := range b.Keys() {
			if other, ok := seen[k]; ok {
				t.Errorf("key %q bound to both %s and %s", k, other, name)
			}
			seen[k] = name
		}
	}
}

func TestHelpListsBindings(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) == 0 {
		t.Fatal("short help is empty")
	}
	total := 0
	for _, col := range km.FullHelp() {
		total += len(col)
	}
	if total != 7 {
		t.Errorf("full help lists %d bindings, expected 7", total)
	}
}
