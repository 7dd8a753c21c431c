package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Signal is an external dark-mode preference. The presenter only reads it.
type Signal interface {
	// Dark reports whether a dark theme is preferred right now.
	Dark() bool
	// Subscribe calls fn with the new preference on every change until the
	// returned function is called.
	Subscribe(fn func(dark bool)) (func(), error)
}

// Mode selects the theme source.
type Mode string

const (
	ModeAuto  Mode = "auto"
	ModeDark  Mode = "dark"
	ModeLight Mode = "light"
)

// Fixed is a preference that never changes.
type Fixed bool

// Dark implements Signal.
func (f Fixed) Dark() bool { return bool(f) }

// Subscribe implements Signal. Fixed preferences never notify.
func (f Fixed) Subscribe(func(bool)) (func(), error) { return func() {}, nil }

// Terminal reads the terminal background color once per call. Terminals
// offer no change notification, so Subscribe never fires.
type Terminal struct{}

// Dark implements Signal.
func (Terminal) Dark() bool { return lipgloss.HasDarkBackground() }

// Subscribe implements Signal.
func (Terminal) Subscribe(func(bool)) (func(), error) { return func() {}, nil }

// ParsePreference parses the textual form of a preference.
func ParsePreference(s string) (dark bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dark", "true", "1", "on", "yes":
		return true, true
	case "light", "false", "0", "off", "no":
		return false, true
	default:
		return false, false
	}
}

// FromMode builds the signal for mode. A non-empty file layers a watched
// preference file over the mode's base signal.
func FromMode(mode Mode, file string, opts ...FileOption) (Signal, error) {
	var base Signal
	switch mode {
	case ModeDark:
		base = Fixed(true)
	case ModeLight:
		base = Fixed(false)
	case ModeAuto, "":
		base = Terminal{}
	default:
		return nil, fmt.Errorf("unknown theme mode %q", mode)
	}
	if file == "" {
		return base, nil
	}
	return NewFileSignal(file, base, opts...), nil
}
