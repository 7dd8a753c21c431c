package theme

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// FileSignal reads the preference from a file containing "dark" or
// "light" and watches it for changes. A missing or unreadable file defers
// to the fallback signal.
type FileSignal struct {
	path     string
	fallback Signal
	logger   *log.Logger
}

// FileOption configures a FileSignal.
type FileOption func(*FileSignal)

// WithLogger sets the logger used for watcher errors.
func WithLogger(logger *log.Logger) FileOption {
	return func(f *FileSignal) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// NewFileSignal creates a signal backed by path.
func NewFileSignal(path string, fallback Signal, opts ...FileOption) *FileSignal {
	if fallback == nil {
		fallback = Fixed(false)
	}
	f := &FileSignal{
		path:     filepath.Clean(path),
		fallback: fallback,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Path returns the watched file.
func (f *FileSignal) Path() string { return f.path }

// Dark implements Signal.
func (f *FileSignal) Dark() bool {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return f.fallback.Dark()
	}
	dark, ok := ParsePreference(string(data))
	if !ok {
		f.logger.Warn("unrecognised theme preference", "path", f.path, "value", string(data))
		return f.fallback.Dark()
	}
	return dark
}

// Subscribe implements Signal. The parent directory is watched so the file
// may be created, replaced or removed while subscribed.
func (f *FileSignal) Subscribe(fn func(bool)) (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(f.path)); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	last := f.Dark()
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		f.watchLoop(watcher, done, last, fn)
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
			_ = watcher.Close()
			wg.Wait()
		})
	}, nil
}

func (f *FileSignal) watchLoop(watcher *fsnotify.Watcher, done <-chan struct{}, last bool, fn func(bool)) {
	for {
		select {
		case <-done:
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != f.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			dark := f.Dark()
			if dark == last {
				continue
			}
			last = dark
			fn(dark)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			f.logger.Warn("theme file watch failed", "path", f.path, "err", err)
		}
	}
}
