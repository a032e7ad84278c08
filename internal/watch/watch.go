// Package watch reloads a content file when it changes on disk. Bursts of
// writes collapse into a single callback after a quiet period.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/goliatone/go-landing/internal/logging"
)

const (
	DefaultDebounce = 250 * time.Millisecond
	tickInterval    = 50 * time.Millisecond
)

type Option func(*Watcher)

func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(w *Watcher) {
		w.logger = logging.OrNop(logger)
	}
}

// Watcher watches the directory holding one file, since editors often
// replace files instead of writing in place.
type Watcher struct {
	mu        sync.Mutex
	watcher   *fsnotify.Watcher
	path      string
	onChange  func(path string)
	debounce  time.Duration
	logger    *zap.Logger
	stopCh    chan struct{}
	doneCh    chan struct{}
	closeOnce sync.Once
	running   bool
	stopped   bool

	pending   bool
	lastEvent time.Time
}

func New(path string, onChange func(path string), options ...Option) (*Watcher, error) {
	if path == "" {
		return nil, fmt.Errorf("watch: path is required")
	}
	if onChange == nil {
		return nil, fmt.Errorf("watch: callback is required")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch: resolve %q: %w", path, err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: create watcher: %w", err)
	}

	w := &Watcher{
		watcher:  fw,
		path:     abs,
		onChange: onChange,
		debounce: DefaultDebounce,
		logger:   zap.NewNop(),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	for _, opt := range options {
		if opt != nil {
			opt(w)
		}
	}
	return w, nil
}

// Start begins watching. It returns once the directory is registered; events
// are handled on a background goroutine until ctx is cancelled or Stop runs.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running || w.stopped {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		w.close()
		close(w.doneCh)
		return fmt.Errorf("watch: add %q: %w", dir, err)
	}
	w.logger.Info("watching content", zap.String("path", w.path))

	go w.run(ctx)
	return nil
}

// Stop ends the watch loop and waits for it to exit. Safe to call more than
// once and without Start.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	w.stopped = true
	running := w.running
	w.mu.Unlock()

	if !running {
		w.close()
		return
	}
	close(w.stopCh)
	<-w.doneCh
}

// Done is closed when the watch loop exits.
func (w *Watcher) Done() <-chan struct{} {
	return w.doneCh
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)
	defer w.close()

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", zap.Error(err))
		case now := <-ticker.C:
			if w.pending && now.Sub(w.lastEvent) >= w.debounce {
				w.pending = false
				w.logger.Debug("content changed", zap.String("path", w.path))
				w.onChange(w.path)
			}
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}
	w.pending = true
	w.lastEvent = time.Now()
}

func (w *Watcher) close() {
	w.closeOnce.Do(func() {
		if err := w.watcher.Close(); err != nil {
			w.logger.Warn("close watcher", zap.Error(err))
		}
	})
}
