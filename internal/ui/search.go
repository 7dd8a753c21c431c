package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func (m *Model) enterSearchMode() tea.Cmd {
	m.searchActive = true
	if m.searchQuery != "" {
		m.searchInput.SetValue(m.searchQuery)
		m.searchInput.CursorEnd()
	} else {
		m.searchInput.SetValue("")
	}
	return m.searchInput.Focus()
}

func (m *Model) exitSearchMode() {
	m.searchActive = false
	m.searchInput.Blur()
}

func (m *Model) clearSearch() {
	m.searchQuery = ""
	m.searchMatches = nil
	m.searchIndex = -1
	m.err = nil
}

func (m *Model) searchStatusLine() string {
	if m.searchQuery == "" || m.searchActive {
		return ""
	}
	total := len(m.searchMatches)
	if total == 0 || m.searchIndex < 0 {
		return fmt.Sprintf("/%s (0/0)", m.searchQuery)
	}
	return fmt.Sprintf("/%s (%d/%d)", m.searchQuery, m.searchIndex+1, total)
}

// performSearch selects the first matching slide at or after the current
// one, wrapping to the start of the deck.
func (m *Model) performSearch(query string) {
	m.searchQuery = strings.TrimSpace(query)
	m.searchMatches = m.findSlideMatches(m.searchQuery)
	if len(m.searchMatches) == 0 {
		m.searchIndex = -1
		m.err = fmt.Errorf("no slide matches %q", m.searchQuery)
		return
	}
	current := m.navigator.State().Index
	m.searchIndex = 0
	for i, idx := range m.searchMatches {
		if idx >= current {
			m.searchIndex = i
			break
		}
	}
	m.err = nil
	m.gotoSearchMatch()
}

func (m *Model) nextSearchMatch() {
	if len(m.searchMatches) == 0 {
		return
	}
	if m.searchIndex < 0 {
		m.searchIndex = 0
	} else {
		m.searchIndex = (m.searchIndex + 1) % len(m.searchMatches)
	}
	m.err = nil
	m.gotoSearchMatch()
}

func (m *Model) previousSearchMatch() {
	if len(m.searchMatches) == 0 {
		return
	}
	if m.searchIndex <= 0 {
		m.searchIndex = len(m.searchMatches) - 1
	} else {
		m.searchIndex--
	}
	m.err = nil
	m.gotoSearchMatch()
}

func (m *Model) gotoSearchMatch() {
	if len(m.searchMatches) == 0 || m.searchIndex < 0 {
		return
	}
	m.navigator.GoTo(m.searchMatches[m.searchIndex])
}

// findSlideMatches returns the indexes of slides whose text contains query.
// Rendered output is searched when available so that markup is ignored.
func (m *Model) findSlideMatches(query string) []int {
	if query == "" {
		return nil
	}
	lowerQuery := strings.ToLower(query)
	dark := m.navigator.Host().Dark

	var matches []int
	for i, slide := range m.deck.Slides {
		text := slide.Body
		if m.ready {
			if rendered, err := m.renderSlide(i, dark); err == nil {
				text = ansi.Strip(rendered)
			}
		}
		if strings.Contains(strings.ToLower(text), lowerQuery) {
			matches = append(matches, i)
		}
	}
	return matches
}
