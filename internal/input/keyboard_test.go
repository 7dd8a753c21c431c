package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestKeyboardResolve(t *testing.T) {
	t.Parallel()

	kb := NewKeyboard()
	tests := []struct {
		name           string
		msg            tea.KeyMsg
		action         Action
		preventDefault bool
	}{
		{name: "left", msg: tea.KeyMsg{Type: tea.KeyLeft}, action: ActionPrev},
		{name: "up", msg: tea.KeyMsg{Type: tea.KeyUp}, action: ActionPrev},
		{name: "right", msg: tea.KeyMsg{Type: tea.KeyRight}, action: ActionNext, preventDefault: true},
		{name: "down", msg: tea.KeyMsg{Type: tea.KeyDown}, action: ActionNext, preventDefault: true},
		{name: "space", msg: tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, action: ActionNext, preventDefault: true},
		{name: "home", msg: tea.KeyMsg{Type: tea.KeyHome}, action: ActionFirst},
		{name: "end", msg: tea.KeyMsg{Type: tea.KeyEnd}, action: ActionLast},
		{name: "theme", msg: runes("t"), action: ActionToggleTheme, preventDefault: true},
		{name: "search", msg: runes("/"), action: ActionSearch, preventDefault: true},
		{name: "search next", msg: runes("n"), action: ActionSearchNext, preventDefault: true},
		{name: "search prev", msg: runes("N"), action: ActionSearchPrev, preventDefault: true},
		{name: "help", msg: runes("?"), action: ActionHelp, preventDefault: true},
		{name: "quit", msg: runes("q"), action: ActionQuit, preventDefault: true},
		{name: "ctrl+c", msg: tea.KeyMsg{Type: tea.KeyCtrlC}, action: ActionQuit, preventDefault: true},
		{name: "unbound", msg: runes("j"), action: ActionNone},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := kb.Resolve(tt.msg)
			require.Equal(t, tt.action, res.Action)
			require.Equal(t, tt.preventDefault, res.PreventDefault)
		})
	}
}

func TestKeyMapHelpGroups(t *testing.T) {
	t.Parallel()

	km := DefaultKeyMap()
	require.Len(t, km.ShortHelp(), 5)
	require.Len(t, km.FullHelp(), 3)
}

func TestActionNavigates(t *testing.T) {
	t.Parallel()

	require.True(t, ActionNext.Navigates())
	require.True(t, ActionLast.Navigates())
	require.False(t, ActionToggleTheme.Navigates())
	require.False(t, ActionNone.Navigates())
	require.Equal(t, "toggle-theme", ActionToggleTheme.String())
	require.Equal(t, "unknown", Action(99).String())
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
