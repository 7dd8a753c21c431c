package ui

import "github.com/charmbracelet/log"

// Options contains the data required to bootstrap the Bubble Tea model.
type Options struct {
	DarkStyle  string
	LightStyle string
	// ThemeUpdates delivers external theme preference changes.
	ThemeUpdates <-chan bool
	Mouse        bool
	Debug        bool
	Logger       *log.Logger
}
