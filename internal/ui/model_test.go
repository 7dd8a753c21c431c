package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/kyaoi/mdslides/internal/deck"
	"github.com/kyaoi/mdslides/internal/input"
	"github.com/kyaoi/mdslides/internal/present"
)

func newTestModel(t *testing.T, opts Options) (*Model, *present.Navigator) {
	t.Helper()
	d := &deck.Deck{
		Title: "Demo",
		Slides: []deck.Slide{
			{ID: "demo#1", Title: "Alpha", Body: "# Alpha\n\nfirst slide"},
			{ID: "demo#2", Title: "Beta", Body: "# Beta\n\nsecond slide"},
			{ID: "demo#3", Title: "Gamma", Body: "# Gamma\n\nthird slide mentions pancakes"},
		},
	}
	n, err := present.New(present.NewHost(d.IDs()), present.Options{})
	require.NoError(t, err)

	m := NewModel(n, d, opts)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m, n
}

func plain(m *Model) string { return ansi.Strip(m.View()) }

func key(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func runeKey(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestModelRendersFirstSlide(t *testing.T) {
	m, n := newTestModel(t, Options{})

	view := plain(m)
	require.Contains(t, view, "Demo")
	require.Contains(t, view, "first slide")
	require.Contains(t, view, "1 / 3")
	require.Equal(t, 0, n.State().Index)
}

func TestModelKeyboardNavigation(t *testing.T) {
	m, n := newTestModel(t, Options{})

	m.Update(key(tea.KeyRight))
	require.Equal(t, 1, n.State().Index)
	view := plain(m)
	require.Contains(t, view, "second slide")
	require.Contains(t, view, "2 / 3")

	m.Update(key(tea.KeyEnd))
	require.Equal(t, 2, n.State().Index)
	require.False(t, n.Host().Control(present.IDNext).Enabled)

	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	require.Equal(t, 2, n.State().Index)

	m.Update(key(tea.KeyHome))
	require.Equal(t, 0, n.State().Index)
	require.Contains(t, plain(m), "first slide")
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	_, cmd := m.Update(runeKey("q"))
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModelHelpOverlay(t *testing.T) {
	m, n := newTestModel(t, Options{})

	m.Update(runeKey("?"))
	require.True(t, m.showHelp)
	require.Contains(t, plain(m), "Help")

	m.Update(key(tea.KeyRight))
	require.Equal(t, 0, n.State().Index, "keys are swallowed while help is open")

	m.Update(key(tea.KeyEsc))
	require.False(t, m.showHelp)
}

func TestModelCtrlCQuitsFromHelp(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m.Update(runeKey("?"))
	require.True(t, m.showHelp)

	_, cmd := m.Update(key(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModelThemeToggleKey(t *testing.T) {
	m, n := newTestModel(t, Options{})
	start := n.Theme().Dark

	m.Update(runeKey("t"))
	require.Equal(t, !start, n.Theme().Dark)
	require.Equal(t, !start, m.shownDark)
	require.Contains(t, plain(m), "first slide")
}

func TestModelThemeSignal(t *testing.T) {
	updates := make(chan bool, 1)
	m, n := newTestModel(t, Options{ThemeUpdates: updates})
	require.NotNil(t, m.Init())

	_, cmd := m.Update(themeSignalMsg{dark: true})
	require.True(t, n.Theme().Dark)
	require.True(t, n.Host().Dark)
	require.NotNil(t, cmd)

	updates <- false
	msg := cmd()
	require.Equal(t, themeSignalMsg{dark: false}, msg)
}

func TestModelInitWithoutThemeUpdates(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	require.Nil(t, m.Init())
}

func TestModelMouseSwipe(t *testing.T) {
	m, n := newTestModel(t, Options{Mouse: true})

	m.Update(tea.MouseMsg{X: 70, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionRelease})
	require.Equal(t, 1, n.State().Index)

	m.Update(tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: 60, Y: 5, Action: tea.MouseActionRelease})
	require.Equal(t, 1, n.State().Index, "displacement at the threshold is ignored")
}

func TestModelMouseClickControls(t *testing.T) {
	m, n := newTestModel(t, Options{Mouse: true})

	click := func(control input.Control) {
		_, zones := m.footerSegments()
		for _, z := range zones {
			if z.control == control {
				m.Update(tea.MouseMsg{X: z.start, Y: 23, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
				m.Update(tea.MouseMsg{X: z.start, Y: 23, Action: tea.MouseActionRelease})
				return
			}
		}
		t.Fatalf("control %s not rendered", control)
	}

	click(input.ControlNext)
	require.Equal(t, 1, n.State().Index)
	click(input.ControlPrev)
	require.Equal(t, 0, n.State().Index)

	dark := n.Theme().Dark
	click(input.ControlTheme)
	require.Equal(t, !dark, n.Theme().Dark)
}

func TestModelClickOutsideFooterIgnored(t *testing.T) {
	m, n := newTestModel(t, Options{Mouse: true})

	_, zones := m.footerSegments()
	x := zones[len(zones)-1].start
	m.Update(tea.MouseMsg{X: x, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: x, Y: 3, Action: tea.MouseActionRelease})
	require.Equal(t, 0, n.State().Index)
	require.False(t, n.Theme().Dark)
}

func TestModelMouseDisabled(t *testing.T) {
	m, n := newTestModel(t, Options{Mouse: false})

	m.Update(tea.MouseMsg{X: 70, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: 0, Y: 5, Action: tea.MouseActionRelease})
	require.Equal(t, 0, n.State().Index)
}

func TestModelSearch(t *testing.T) {
	m, n := newTestModel(t, Options{})

	m.Update(runeKey("/"))
	require.True(t, m.searchActive)
	m.Update(runeKey("pancakes"))
	m.Update(key(tea.KeyEnter))

	require.False(t, m.searchActive)
	require.Equal(t, 2, n.State().Index)
	require.Equal(t, []int{2}, m.searchMatches)
	require.Contains(t, plain(m), "/pancakes (1/1)")
}

func TestModelSearchCyclesMatches(t *testing.T) {
	m, n := newTestModel(t, Options{})

	m.performSearch("slide")
	require.Equal(t, []int{0, 1, 2}, m.searchMatches)
	require.Equal(t, 0, n.State().Index)

	m.Update(runeKey("n"))
	require.Equal(t, 1, n.State().Index)
	m.Update(runeKey("N"))
	require.Equal(t, 0, n.State().Index)
	m.Update(runeKey("N"))
	require.Equal(t, 2, n.State().Index)
}

func TestModelSearchNoMatch(t *testing.T) {
	m, n := newTestModel(t, Options{})

	m.performSearch("waffles")
	require.Error(t, m.err)
	require.Equal(t, 0, n.State().Index)
	require.Contains(t, plain(m), "waffles")

	m.Update(runeKey("/"))
	require.Equal(t, "waffles", m.searchInput.Value())
	m.searchInput.SetValue("")
	m.Update(key(tea.KeyEnter))
	require.Empty(t, m.searchQuery)
	require.NoError(t, m.err)
}

func TestModelErrorHeaderFitsWidth(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m.Update(tea.WindowSizeMsg{Width: 30, Height: 12})

	m.performSearch(strings.Repeat("waffles ", 10))
	require.Error(t, m.err)
	require.LessOrEqual(t, lipgloss.Width(m.headerView()), 30)

	lines := strings.Split(plain(m), "\n")
	require.Contains(t, lines[len(lines)-1], "1 / 3")
}

func TestModelDebugHeader(t *testing.T) {
	m, _ := newTestModel(t, Options{Debug: true})
	require.Contains(t, plain(m), "index=0")
}

func TestModelIgnoresTinyWindow(t *testing.T) {
	d := &deck.Deck{Title: "x", Slides: []deck.Slide{{ID: "a", Body: "a"}}}
	n, err := present.New(present.NewHost(d.IDs()), present.Options{})
	require.NoError(t, err)

	m := NewModel(n, d, Options{})
	m.Update(tea.WindowSizeMsg{Width: 10, Height: 2})
	require.False(t, m.ready)
}
