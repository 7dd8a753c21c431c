package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/kyaoi/mdslides/internal/config"
	"github.com/kyaoi/mdslides/internal/deck"
	"github.com/kyaoi/mdslides/internal/present"
	"github.com/kyaoi/mdslides/internal/theme"
)

// Session is everything needed to present one deck.
type Session struct {
	Deck      *deck.Deck
	Navigator *present.Navigator
	Watcher   *theme.Watcher
}

// Close stops the theme watcher.
func (s *Session) Close() {
	if s != nil && s.Watcher != nil {
		s.Watcher.Close()
	}
}

// Prepare loads the deck at target and builds its navigator. The theme
// watcher is started; callers must Close the session.
func Prepare(target string, cfg *config.Config, logger *log.Logger) (*Session, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	d, err := deck.Load(target, cfg.Tag)
	if err != nil {
		return nil, err
	}

	mode := ResolveThemeMode(cfg.Theme, d.Theme)
	signal, err := theme.FromMode(mode, cfg.ThemeFile, theme.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	watcher := theme.NewWatcher(signal, logger)
	dark := watcher.Start()

	navigator, err := present.New(present.NewHost(d.IDs()), present.Options{
		Dark:           dark,
		SwipeThreshold: cfg.SwipeThreshold,
		Logger:         logger,
		Debug:          cfg.Debug,
	})
	if err != nil {
		watcher.Close()
		return nil, fmt.Errorf("build navigator: %w", err)
	}

	logger.Debug("session prepared", "target", target, "slides", d.Len(), "mode", mode, "dark", dark)
	return &Session{Deck: d, Navigator: navigator, Watcher: watcher}, nil
}

// ResolveThemeMode lets a deck's frontmatter theme apply when the
// configuration leaves the choice to the environment.
func ResolveThemeMode(configured, deckTheme string) theme.Mode {
	mode := theme.Mode(strings.ToLower(configured))
	if mode != "" && mode != theme.ModeAuto {
		return mode
	}
	switch m := theme.Mode(strings.ToLower(strings.TrimSpace(deckTheme))); m {
	case theme.ModeDark, theme.ModeLight:
		return m
	}
	return theme.ModeAuto
}
