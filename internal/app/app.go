package app

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kyaoi/mdslides/internal/config"
	"github.com/kyaoi/mdslides/internal/logging"
	"github.com/kyaoi/mdslides/internal/ui"
)

// Run executes the Bubble Tea program for the slide presenter. Startup
// diagnostics are written to stderr before the program takes the screen.
func Run(ctx context.Context, target string, cfg *config.Config, stderr io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closeLog, err := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		File:   cfg.LogFile,
		Prefix: "mdslides",
	})
	if err != nil {
		return err
	}
	defer closeLog()

	session, err := Prepare(target, cfg, logger)
	if err != nil {
		return err
	}
	defer session.Close()

	session.Navigator.LogStartup(logging.Console(stderr), session.Deck.Title)

	model := ui.NewModel(session.Navigator, session.Deck, ui.Options{
		DarkStyle:    cfg.DarkStyle,
		LightStyle:   cfg.LightStyle,
		ThemeUpdates: session.Watcher.Updates(),
		Mouse:        cfg.Mouse,
		Debug:        cfg.Debug,
		Logger:       logger,
	})
	return runProgram(ctx, model, cfg)
}

func runProgram(ctx context.Context, model tea.Model, cfg *config.Config) error {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	program := tea.NewProgram(model, opts...)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run presenter: %w", err)
	}
	return nil
}
