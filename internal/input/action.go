package input

// Action is a request produced by an input adapter.
type Action int

const (
	ActionNone Action = iota
	ActionPrev
	ActionNext
	ActionFirst
	ActionLast
	ActionToggleTheme
	ActionSearch
	ActionSearchNext
	ActionSearchPrev
	ActionHelp
	ActionQuit
)

var actionNames = map[Action]string{
	ActionNone:        "none",
	ActionPrev:        "prev",
	ActionNext:        "next",
	ActionFirst:       "first",
	ActionLast:        "last",
	ActionToggleTheme: "toggle-theme",
	ActionSearch:      "search",
	ActionSearchNext:  "search-next",
	ActionSearchPrev:  "search-prev",
	ActionHelp:        "help",
	ActionQuit:        "quit",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// Navigates reports whether the action targets the slide position.
func (a Action) Navigates() bool {
	switch a {
	case ActionPrev, ActionNext, ActionFirst, ActionLast:
		return true
	default:
		return false
	}
}
