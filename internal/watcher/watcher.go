// Package watcher polls locale directories for file changes.
package watcher

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"lokey/internal/parser"
	"lokey/internal/paths"
)

// EventType represents the type of file system event
type EventType int

const (
	EventCreate EventType = iota
	EventModify
	EventDelete
)

// String returns a string representation of the event type
func (e EventType) String() string {
	switch e {
	case EventCreate:
		return "create"
	case EventModify:
		return "modify"
	case EventDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Event represents one locale file change
type Event struct {
	Type      EventType
	Path      string
	Timestamp time.Time
}

// ChangeHandler is called with the debounced batch of changes
type ChangeHandler func(events []Event)

// Config contains watcher configuration
type Config struct {
	Root         string
	LocalePaths  []string
	Registry     *parser.Registry
	Debounce     time.Duration
	PollInterval time.Duration
}

// Watcher polls locale files by modification time. Polling keeps the
// dependency surface flat and behaves identically across platforms; locale
// trees are small enough that a stat sweep per interval is cheap.
type Watcher struct {
	config    Config
	logger    *slog.Logger
	handler   ChangeHandler
	debouncer *Debouncer

	mu      sync.Mutex
	known   map[string]time.Time
	pending []Event

	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a watcher over the configured locale paths.
func New(config Config, logger *slog.Logger, handler ChangeHandler) *Watcher {
	if config.PollInterval <= 0 {
		config.PollInterval = 2 * time.Second
	}
	if config.Debounce <= 0 {
		config.Debounce = 1500 * time.Millisecond
	}
	return &Watcher{
		config:    config,
		logger:    logger,
		handler:   handler,
		debouncer: NewDebouncer(config.Debounce),
		known:     map[string]time.Time{},
		done:      make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) {
	ctx, w.cancel = context.WithCancel(ctx)

	// Prime the baseline so startup doesn't report every file as created.
	w.sweep(false)
	w.logger.Info("watching locale paths",
		"paths", len(w.config.LocalePaths),
		"interval", w.config.PollInterval,
	)

	go func() {
		defer close(w.done)
		ticker := time.NewTicker(w.config.PollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				w.debouncer.Cancel()
				return
			case <-ticker.C:
				w.sweep(true)
			}
		}
	}()
}

// Stop cancels polling and waits for the poll loop to exit.
func (w *Watcher) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	<-w.done
}

// sweep stats every locale file and queues events for differences.
func (w *Watcher) sweep(emit bool) {
	current := map[string]time.Time{}
	for _, dir := range w.config.LocalePaths {
		absDir := paths.Join(w.config.Root, dir)
		_ = filepath.WalkDir(absDir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if os.IsNotExist(err) {
					return filepath.SkipAll
				}
				return nil
			}
			if d.IsDir() || w.config.Registry.ForPath(path) == nil {
				return nil
			}
			info, err := d.Info()
			if err != nil {
				return nil
			}
			current[path] = info.ModTime()
			return nil
		})
	}

	w.mu.Lock()
	var events []Event
	now := time.Now()
	for path, mtime := range current {
		prev, ok := w.known[path]
		switch {
		case !ok:
			events = append(events, Event{Type: EventCreate, Path: path, Timestamp: now})
		case !mtime.Equal(prev):
			events = append(events, Event{Type: EventModify, Path: path, Timestamp: now})
		}
	}
	for path := range w.known {
		if _, ok := current[path]; !ok {
			events = append(events, Event{Type: EventDelete, Path: path, Timestamp: now})
		}
	}
	w.known = current

	if emit && len(events) > 0 {
		w.pending = append(w.pending, events...)
		w.logger.Debug("changes detected", "events", len(events))
	}
	w.mu.Unlock()

	if emit && len(events) > 0 {
		w.debouncer.Trigger(w.flush)
	}
}

// flush hands the pending batch to the handler.
func (w *Watcher) flush() {
	w.mu.Lock()
	batch := w.pending
	w.pending = nil
	w.mu.Unlock()

	if len(batch) > 0 && w.handler != nil {
		w.handler(batch)
	}
}
