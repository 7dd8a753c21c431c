package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Resolution is the outcome of a key press.
type Resolution struct {
	Action Action
	// PreventDefault means the key must not reach the scrolling viewport.
	PreventDefault bool
}

// Keyboard translates key presses into actions.
type Keyboard struct {
	Keys KeyMap
}

// NewKeyboard returns a keyboard adapter using the default bindings.
func NewKeyboard() Keyboard {
	return Keyboard{Keys: DefaultKeyMap()}
}

// Resolve maps msg to an action. Unbound keys resolve to ActionNone.
func (k Keyboard) Resolve(msg tea.KeyMsg) Resolution {
	switch {
	case key.Matches(msg, k.Keys.Next):
		return Resolution{Action: ActionNext, PreventDefault: true}
	case key.Matches(msg, k.Keys.Prev):
		return Resolution{Action: ActionPrev}
	case key.Matches(msg, k.Keys.First):
		return Resolution{Action: ActionFirst}
	case key.Matches(msg, k.Keys.Last):
		return Resolution{Action: ActionLast}
	case key.Matches(msg, k.Keys.Theme):
		return Resolution{Action: ActionToggleTheme, PreventDefault: true}
	case key.Matches(msg, k.Keys.Search):
		return Resolution{Action: ActionSearch, PreventDefault: true}
	case key.Matches(msg, k.Keys.SearchNext):
		return Resolution{Action: ActionSearchNext, PreventDefault: true}
	case key.Matches(msg, k.Keys.SearchPrev):
		return Resolution{Action: ActionSearchPrev, PreventDefault: true}
	case key.Matches(msg, k.Keys.Help):
		return Resolution{Action: ActionHelp, PreventDefault: true}
	case key.Matches(msg, k.Keys.Quit):
		return Resolution{Action: ActionQuit, PreventDefault: true}
	}
	return Resolution{Action: ActionNone}
}
