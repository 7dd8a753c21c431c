package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	styles "github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"

	"github.com/kyaoi/mdslides/internal/deck"
	"github.com/kyaoi/mdslides/internal/input"
	"github.com/kyaoi/mdslides/internal/nav"
	"github.com/kyaoi/mdslides/internal/present"
)

const (
	// header, progress bar and footer rows
	chromeHeight    = 3
	minContentWidth = 20
)

// Model implements the Bubble Tea program for the slide presenter. It only
// reads the host element tree; all state changes go through the navigator.
type Model struct {
	navigator *present.Navigator
	deck      *deck.Deck
	keys      input.KeyMap
	logger    *log.Logger

	contentVP viewport.Model
	progress  progress.Model
	help      help.Model
	chrome    chromeStyles

	darkStyle  string
	lightStyle string
	renderers  map[bool]*glamour.TermRenderer
	rendered   map[renderKey]string

	shownSlide int
	shownDark  bool
	showHelp   bool
	mouse      bool
	debug      bool
	ready      bool
	width      int
	height     int
	err        error

	searchInput   textinput.Model
	searchActive  bool
	searchQuery   string
	searchMatches []int
	searchIndex   int

	themeUpdates <-chan bool
}

type renderKey struct {
	slide int
	dark  bool
}

type themeSignalMsg struct {
	dark bool
}

// NewModel constructs the presenter model for an initialised navigator.
func NewModel(n *present.Navigator, d *deck.Deck, opts Options) *Model {
	contentVP := viewport.New(0, 0)
	contentVP.Style = lipgloss.NewStyle().Padding(0, 1)

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	darkStyle := opts.DarkStyle
	if darkStyle == "" {
		darkStyle = styles.TokyoNightStyle
	}
	lightStyle := opts.LightStyle
	if lightStyle == "" {
		lightStyle = styles.LightStyle
	}

	dark := n.Host().Dark
	m := &Model{
		navigator:    n,
		deck:         d,
		keys:         n.Keys(),
		logger:       logger,
		contentVP:    contentVP,
		progress:     newProgressBar(dark),
		help:         help.New(),
		chrome:       newChromeStyles(dark),
		darkStyle:    darkStyle,
		lightStyle:   lightStyle,
		renderers:    make(map[bool]*glamour.TermRenderer),
		rendered:     make(map[renderKey]string),
		shownSlide:   -1,
		shownDark:    dark,
		mouse:        opts.Mouse,
		debug:        opts.Debug,
		searchIndex:  -1,
		themeUpdates: opts.ThemeUpdates,
	}

	searchInput := textinput.New()
	searchInput.Prompt = "/"
	searchInput.CharLimit = 256
	searchInput.Placeholder = "search slides"
	searchInput.Blur()
	m.searchInput = searchInput

	n.SetOnSync(m.handleSync)
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.waitForTheme()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case themeSignalMsg:
		m.navigator.SetDark(msg.dark)
		return m, m.waitForTheme()

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.KeyMsg:
		if m.searchActive {
			switch msg.Type {
			case tea.KeyEnter:
				query := strings.TrimSpace(m.searchInput.Value())
				m.exitSearchMode()
				if query == "" {
					m.clearSearch()
					return m, nil
				}
				m.performSearch(query)
				return m, nil
			case tea.KeyEsc, tea.KeyCtrlC:
				m.exitSearchMode()
				return m, nil
			}
			var cmd tea.Cmd
			m.searchInput, cmd = m.searchInput.Update(msg)
			return m, cmd
		}

		if m.showHelp {
			if msg.Type == tea.KeyCtrlC {
				return m, tea.Quit
			}
			switch msg.String() {
			case "q", "?", "esc":
				m.showHelp = false
			}
			return m, nil
		}

		res := m.navigator.HandleKey(msg)
		switch res.Action {
		case input.ActionQuit:
			return m, tea.Quit
		case input.ActionHelp:
			m.showHelp = true
			return m, nil
		case input.ActionSearch:
			return m, m.enterSearchMode()
		case input.ActionSearchNext:
			m.nextSearchMatch()
		case input.ActionSearchPrev:
			m.previousSearchMatch()
		}
		if res.PreventDefault {
			return m, nil
		}

		var cmd tea.Cmd
		m.contentVP, cmd = m.contentVP.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.contentVP, cmd = m.contentVP.Update(msg)
	return m, cmd
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if !m.mouse {
		return nil
	}
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.navigator.TouchStart(msg.X)
		return nil
	case msg.Action == tea.MouseActionRelease && m.navigator.Swiping():
		if m.navigator.TouchEnd(msg.X) != input.ActionNone {
			return nil
		}
		if msg.Y == m.height-1 {
			if control, ok := m.controlAt(msg.X); ok {
				m.navigator.Click(control)
			}
		}
		return nil
	}
	var cmd tea.Cmd
	m.contentVP, cmd = m.contentVP.Update(msg)
	return cmd
}

// handleSync runs after every navigator synchronization pass.
func (m *Model) handleSync(p nav.Projection) {
	if p.Dark != m.shownDark {
		m.shownDark = p.Dark
		m.chrome = newChromeStyles(p.Dark)
		width := m.progress.Width
		m.progress = newProgressBar(p.Dark)
		m.progress.Width = width
	}
	m.refreshContent()
}

func (m *Model) refreshContent() {
	if !m.ready {
		return
	}
	host := m.navigator.Host()
	idx := host.ActiveSlide()
	if idx < 0 {
		return
	}
	rendered, err := m.renderSlide(idx, host.Dark)
	if err != nil {
		m.err = err
		m.logger.Warn("render failed", "slide", idx, "err", err)
		return
	}
	m.err = nil
	m.contentVP.SetContent(rendered)
	if idx != m.shownSlide {
		m.contentVP.GotoTop()
		m.shownSlide = idx
	}
}

func (m *Model) renderSlide(idx int, dark bool) (string, error) {
	key := renderKey{slide: idx, dark: dark}
	if out, ok := m.rendered[key]; ok {
		return out, nil
	}
	renderer, err := m.renderer(dark)
	if err != nil {
		return "", err
	}
	out, err := renderer.Render(m.deck.Slides[idx].Body)
	if err != nil {
		return "", err
	}
	m.rendered[key] = out
	return out, nil
}

func (m *Model) renderer(dark bool) (*glamour.TermRenderer, error) {
	if r, ok := m.renderers[dark]; ok {
		return r, nil
	}
	style := m.lightStyle
	if dark {
		style = m.darkStyle
	}
	wrapWidth := max(m.contentVP.Width-m.contentVP.Style.GetHorizontalFrameSize(), 0)
	r, err := newRenderer(style, wrapWidth)
	if err != nil {
		return nil, err
	}
	m.renderers[dark] = r
	return r, nil
}

func (m *Model) resize(width, height int) {
	if width <= 0 || height <= chromeHeight {
		return
	}
	m.width = width
	m.height = height
	m.ready = true

	m.contentVP.Width = max(width, minContentWidth)
	m.contentVP.Height = max(height-chromeHeight, 1)
	m.progress.Width = width
	m.help.Width = width

	m.renderers = make(map[bool]*glamour.TermRenderer)
	m.rendered = make(map[renderKey]string)
	offset := m.contentVP.YOffset
	m.refreshContent()
	m.contentVP.SetYOffset(offset)
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.showHelp {
		m.help.ShowAll = true
		overlay := m.chrome.helpBox.Render("Help (? / esc to close)\n\n" + m.help.View(m.keys))
		m.help.ShowAll = false
		if m.width > 0 && m.height > 0 {
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, overlay)
		}
		return overlay
	}

	host := m.navigator.Host()
	progressLine := m.progress.ViewAs(host.Control(present.IDProgress).Width / 100)

	var footer string
	switch {
	case m.searchActive:
		footer = m.chrome.bar.Render(m.searchInput.View())
	default:
		footer = m.footerView()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		m.contentVP.View(),
		progressLine,
		footer,
	)
}

func (m *Model) headerView() string {
	if m.err != nil {
		line := m.chrome.errLine.Render(m.err.Error())
		if m.width > 0 {
			line = ansi.Truncate(line, m.width, "…")
		}
		return line
	}
	host := m.navigator.Host()
	parts := []string{m.chrome.title.Render(m.deck.Title)}
	if idx := host.ActiveSlide(); idx >= 0 {
		if title := m.deck.Slides[idx].Title; title != "" && title != m.deck.Title {
			parts = append(parts, m.chrome.subtitle.Render(title))
		}
	}
	if status := m.searchStatusLine(); status != "" {
		parts = append(parts, m.chrome.subtitle.Render(status))
	}
	if m.debug {
		s := m.navigator.State()
		parts = append(parts, m.chrome.debug.Render(fmt.Sprintf(
			"[index=%d total=%d dark=%t visible=%v]", s.Index, s.Total, host.Dark, host.VisibleSlides())))
	}
	line := strings.Join(parts, " ")
	if m.width > 0 {
		line = ansi.Truncate(line, m.width, "…")
	}
	return line
}

func (m *Model) footerView() string {
	segments, _ := m.footerSegments()
	line := strings.Join(segments, " ")
	if m.width > 0 {
		hints := m.help.ShortHelpView(m.keys.ShortHelp())
		if gap := m.width - lipgloss.Width(line) - lipgloss.Width(hints); gap >= 2 {
			line += strings.Repeat(" ", gap) + hints
		}
		line = ansi.Truncate(line, m.width, "…")
	}
	return line
}

type controlZone struct {
	control input.Control
	start   int
	end     int
}

// footerSegments renders the controls and reports the columns each
// clickable control occupies.
func (m *Model) footerSegments() ([]string, []controlZone) {
	host := m.navigator.Host()
	button := func(label string, enabled bool) string {
		if enabled {
			return m.chrome.enabled.Render(label)
		}
		return m.chrome.disabled.Render(label)
	}

	type segment struct {
		text    string
		control input.Control
	}
	parts := []segment{
		{text: button(" ‹ prev ", host.Control(present.IDPrev).Enabled), control: input.ControlPrev},
		{text: m.chrome.counter.Render(fmt.Sprintf("%s / %s",
			host.Control(present.IDCurrent).Text, host.Control(present.IDTotal).Text))},
		{text: button(" next › ", host.Control(present.IDNext).Enabled), control: input.ControlNext},
		{text: m.chrome.icon.Render("[" + host.Control(present.IDThemeIcon).Text + "]"), control: input.ControlTheme},
	}

	var (
		texts []string
		zones []controlZone
		x     int
	)
	for i, part := range parts {
		if i > 0 {
			x++
		}
		w := lipgloss.Width(part.text)
		if part.control != "" {
			zones = append(zones, controlZone{control: part.control, start: x, end: x + w})
		}
		texts = append(texts, part.text)
		x += w
	}
	return texts, zones
}

func (m *Model) controlAt(x int) (input.Control, bool) {
	_, zones := m.footerSegments()
	for _, z := range zones {
		if x >= z.start && x < z.end {
			return z.control, true
		}
	}
	return "", false
}

func (m *Model) waitForTheme() tea.Cmd {
	if m.themeUpdates == nil {
		return nil
	}
	updates := m.themeUpdates
	return func() tea.Msg {
		dark, ok := <-updates
		if !ok {
			return nil
		}
		return themeSignalMsg{dark: dark}
	}
}

func newRenderer(style string, width int) (*glamour.TermRenderer, error) {
	opts := []glamour.TermRendererOption{glamour.WithStandardStyle(style)}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	} else {
		opts = append(opts, glamour.WithWordWrap(0))
	}
	return glamour.NewTermRenderer(opts...)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
