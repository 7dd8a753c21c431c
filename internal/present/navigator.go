package present

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/kyaoi/mdslides/internal/input"
	"github.com/kyaoi/mdslides/internal/nav"
)

// Options configures a Navigator.
type Options struct {
	Dark           bool
	SwipeThreshold int
	Logger         *log.Logger
	// Debug traces every transition at debug level.
	Debug bool
	// OnSync runs after each synchronization pass.
	OnSync func(nav.Projection)
}

// Navigator owns the navigation and theme state of one deck and keeps the
// host elements in sync with it.
type Navigator struct {
	machine  *nav.Machine
	theme    nav.Theme
	host     *Host
	sync     *Synchronizer
	keyboard input.Keyboard
	swipe    *input.Swipe
	logger   *log.Logger
	debug    bool
	onSync   func(nav.Projection)
}

// New validates host and shows its first slide.
func New(host *Host, opts Options) (*Navigator, error) {
	if host == nil {
		return nil, fmt.Errorf("%w: nil host", nav.ErrInvalidConfiguration)
	}
	if err := host.Validate(); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	n := &Navigator{
		theme:    nav.Theme{Dark: opts.Dark},
		host:     host,
		sync:     NewSynchronizer(host),
		keyboard: input.NewKeyboard(),
		swipe:    input.NewSwipe(opts.SwipeThreshold),
		logger:   logger,
		debug:    opts.Debug,
		onSync:   opts.OnSync,
	}

	machine, err := nav.New(len(host.Slides), n.synchronize)
	if err != nil {
		return nil, err
	}
	n.machine = machine
	n.machine.First()
	return n, nil
}

func (n *Navigator) synchronize(s nav.State) {
	p := nav.Project(s, n.theme)
	n.sync.Apply(p)
	if n.debug {
		n.logger.Debug("transition", "index", s.Index, "total", s.Total, "progress", p.Progress)
	}
	if n.onSync != nil {
		n.onSync(p)
	}
}

func (n *Navigator) synchronizeTheme() {
	p := n.Projection()
	n.sync.ApplyTheme(p)
	n.logger.Debug("theme changed", "dark", p.Dark)
	if n.onSync != nil {
		n.onSync(p)
	}
}

// SetOnSync replaces the synchronization hook.
func (n *Navigator) SetOnSync(fn func(nav.Projection)) {
	n.onSync = fn
}

// Next advances one slide.
func (n *Navigator) Next() bool { return n.machine.Next() }

// Prev goes back one slide.
func (n *Navigator) Prev() bool { return n.machine.Prev() }

// GoTo jumps to index when it is in range.
func (n *Navigator) GoTo(index int) bool { return n.machine.GoTo(index) }

// First jumps to the first slide.
func (n *Navigator) First() bool { return n.machine.First() }

// Last jumps to the final slide.
func (n *Navigator) Last() bool { return n.machine.Last() }

// ToggleTheme flips between light and dark.
func (n *Navigator) ToggleTheme() {
	n.theme.Toggle()
	n.synchronizeTheme()
}

// SetDark applies an external theme preference. The latest call wins over
// any earlier manual toggle.
func (n *Navigator) SetDark(dark bool) {
	n.theme.Set(dark)
	n.synchronizeTheme()
}

// Dispatch performs a navigation or theme action. It reports whether the
// action belongs to the navigator.
func (n *Navigator) Dispatch(a input.Action) bool {
	switch a {
	case input.ActionPrev:
		n.Prev()
	case input.ActionNext:
		n.Next()
	case input.ActionFirst:
		n.First()
	case input.ActionLast:
		n.Last()
	case input.ActionToggleTheme:
		n.ToggleTheme()
	default:
		return false
	}
	return true
}

// HandleKey resolves msg through the keyboard adapter and dispatches it.
// Actions the navigator does not own are returned for the caller.
func (n *Navigator) HandleKey(msg tea.KeyMsg) input.Resolution {
	res := n.keyboard.Resolve(msg)
	n.Dispatch(res.Action)
	return res
}

// Click handles a click on control.
func (n *Navigator) Click(control input.Control) bool {
	return n.Dispatch(input.Click(control))
}

// TouchStart records the start of a swipe.
func (n *Navigator) TouchStart(x int) {
	n.swipe.Start(x)
}

// TouchEnd completes a swipe and performs the resulting transition, if any.
func (n *Navigator) TouchEnd(x int) input.Action {
	a := n.swipe.End(x)
	n.Dispatch(a)
	return a
}

// Swiping reports whether a touch gesture is in progress.
func (n *Navigator) Swiping() bool {
	return n.swipe.Active()
}

// State returns the current navigation state.
func (n *Navigator) State() nav.State { return n.machine.State() }

// Theme returns the current theme state.
func (n *Navigator) Theme() nav.Theme { return n.theme }

// Projection returns the display properties of the current state.
func (n *Navigator) Projection() nav.Projection {
	return nav.Project(n.machine.State(), n.theme)
}

// Host returns the element tree kept in sync by the navigator.
func (n *Navigator) Host() *Host { return n.host }

// Keys returns the keybindings used by the keyboard adapter.
func (n *Navigator) Keys() input.KeyMap { return n.keyboard.Keys }

// LogStartup writes the startup diagnostics to logger.
func (n *Navigator) LogStartup(logger *log.Logger, title string) {
	if logger == nil {
		return
	}
	if title != "" {
		logger.Info("deck loaded", "title", title)
	}
	logger.Info("slides", "count", n.machine.State().Total)
	logger.Info("shortcuts", "navigate", "← → / space", "jump", "home/end", "theme", "t", "help", "?")
}
