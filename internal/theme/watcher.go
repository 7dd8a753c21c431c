package theme

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"
)

// Watcher reads a Signal once at startup and then forwards every change on
// a channel, so the UI event loop applies updates one at a time.
type Watcher struct {
	signal  Signal
	logger  *log.Logger
	updates chan bool
	done    chan struct{}

	mu          sync.Mutex
	unsubscribe func()
}

// NewWatcher creates a watcher for signal.
func NewWatcher(signal Signal, logger *log.Logger) *Watcher {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Watcher{
		signal:  signal,
		logger:  logger,
		updates: make(chan bool, 10),
		done:    make(chan struct{}),
	}
}

// Start returns the current preference and subscribes to later changes.
// A failed subscription is logged and leaves the initial value in place.
func (w *Watcher) Start() bool {
	initial := w.signal.Dark()
	unsubscribe, err := w.signal.Subscribe(w.forward)
	if err != nil {
		w.logger.Warn("theme preference can not be watched", "err", err)
		return initial
	}
	w.mu.Lock()
	w.unsubscribe = unsubscribe
	w.mu.Unlock()
	w.logger.Debug("theme watcher started", "dark", initial)
	return initial
}

func (w *Watcher) forward(dark bool) {
	select {
	case w.updates <- dark:
	case <-w.done:
	}
}

// Updates delivers preference changes.
func (w *Watcher) Updates() <-chan bool {
	return w.updates
}

// Close stops the subscription. Pending reads on Updates are not closed.
func (w *Watcher) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	select {
	case <-w.done:
		return
	default:
	}
	close(w.done)
	if w.unsubscribe != nil {
		w.unsubscribe()
	}
}
