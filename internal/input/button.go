package input

// Control identifies a clickable control element.
type Control string

const (
	ControlPrev  Control = "prevBtn"
	ControlNext  Control = "nextBtn"
	ControlTheme Control = "themeToggle"
)

// Click maps a click on control to an action.
func Click(control Control) Action {
	switch control {
	case ControlPrev:
		return ActionPrev
	case ControlNext:
		return ActionNext
	case ControlTheme:
		return ActionToggleTheme
	default:
		return ActionNone
	}
}
