package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/fortress/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestGameKeyMapAction(t *testing.T) {
	keys := DefaultGameKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionCursorLeft},
		{"h", runeKey('h'), core.ActionCursorLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionCursorRight},
		{"k", runeKey('k'), core.ActionCursorUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionCursorDown},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionPlace},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionPlace},
		{"x", runeKey('x'), core.ActionRemove},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, core.ActionRemove},
		{"r", runeKey('r'), core.ActionRestart},
		{"quit is platform", runeKey('q'), core.ActionNone},
		{"help is platform", runeKey('?'), core.ActionNone},
		{"unbound", runeKey('z'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.msg); got != tt.expected {
				t.Errorf("Action(%q) = %v, expected %v", tt.msg.String(), got, tt.expected)
			}
		})
	}
}

func TestMapMouse(t *testing.T) {
	tests := []struct {
		name     string
		msg      tea.MouseMsg
		recorded bool
		button   core.PointerButton
	}{
		{"left press", tea.MouseMsg{X: 3, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, true, core.PointerPrimary},
		{"right press", tea.MouseMsg{X: 3, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, true, core.PointerSecondary},
		{"release", tea.MouseMsg{X: 3, Y: 7, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, false, 0},
		{"motion", tea.MouseMsg{X: 3, Y: 7, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}, false, 0},
		{"wheel", tea.MouseMsg{X: 3, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := core.NewInputFrame()
			if got := MapMouse(tt.msg, &frame); got != tt.recorded {
				t.Fatalf("MapMouse() = %v, expected %v", got, tt.recorded)
			}
			if !tt.recorded {
				if len(frame.Pointer) != 0 {
					t.Errorf("Pointer = %v, expected none", frame.Pointer)
				}
				return
			}
			if len(frame.Pointer) != 1 {
				t.Fatalf("Pointer = %v, expected one click", frame.Pointer)
			}
			ev := frame.Pointer[0]
			if ev.X != 3 || ev.Y != 7 || ev.Button != tt.button {
				t.Errorf("Pointer[0] = %+v, expected (3,7) button %v", ev, tt.button)
			}
		})
	}
}

func TestGameKeyMapShortHelpFits80Columns(t *testing.T) {
	h := help.New()
	h.Width = 80

	legend := h.View(DefaultGameKeyMap())
	if w := lipgloss.Width(legend); w > 80 {
		t.Errorf("short help is %d columns wide, expected at most 80: %q", w, legend)
	}
	if !strings.Contains(legend, "quit") {
		t.Errorf("short help was truncated: %q", legend)
	}
}
