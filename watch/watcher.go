// Package watch reruns generation when headers or the config file change.
package watch

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/teranos/ffigen/errors"
	"github.com/teranos/ffigen/logger"
)

// DefaultDebounce coalesces bursts of editor writes into one regeneration
const DefaultDebounce = 300 * time.Millisecond

// ChangeFunc is called after a debounced change. Errors are logged; the
// watcher keeps running.
type ChangeFunc func(ctx context.Context, changed []string) error

// Watcher watches a fixed set of files. It watches their parent directories
// so that editors that save by rename are still noticed.
type Watcher struct {
	files          map[string]bool
	watcher        *fsnotify.Watcher
	onChange       ChangeFunc
	log            *zap.SugaredLogger
	debouncePeriod time.Duration

	mu            sync.Mutex
	debounceTimer *time.Timer
	pending       map[string]bool

	// runMu serializes onChange calls
	runMu sync.Mutex
}

// New creates a watcher for paths
func New(paths []string, onChange ChangeFunc, log *zap.SugaredLogger) (*Watcher, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if len(paths) == 0 {
		return nil, errors.New("nothing to watch")
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	w := &Watcher{
		files:          make(map[string]bool),
		watcher:        fw,
		onChange:       onChange,
		log:            log,
		debouncePeriod: DefaultDebounce,
		pending:        make(map[string]bool),
	}

	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fw.Close()
			return nil, errors.Wrapf(err, "failed to resolve %s", p)
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, errors.Wrapf(err, "failed to watch %s", dir)
		}
	}

	return w, nil
}

// SetDebounce changes the debounce period
func (w *Watcher) SetDebounce(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.debouncePeriod = d
}

// Run processes events until ctx is cancelled or the watcher is closed
func (w *Watcher) Run(ctx context.Context) error {
	defer w.stopTimer()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || !w.files[name] {
				continue
			}

			w.log.Debugw("Watched file changed",
				logger.FieldFile, name,
				logger.FieldOp, event.Op.String())
			w.schedule(ctx, name)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warnw("Watcher error", logger.FieldError, err.Error())
		}
	}
}

// schedule debounces rapid changes and triggers onChange once
func (w *Watcher) schedule(ctx context.Context, name string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.pending[name] = true
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.debouncePeriod, func() {
		w.fire(ctx)
	})
}

func (w *Watcher) fire(ctx context.Context) {
	w.mu.Lock()
	changed := make([]string, 0, len(w.pending))
	for name := range w.pending {
		changed = append(changed, name)
	}
	w.pending = make(map[string]bool)
	w.mu.Unlock()

	if len(changed) == 0 || ctx.Err() != nil {
		return
	}

	w.runMu.Lock()
	defer w.runMu.Unlock()
	if err := w.onChange(ctx, changed); err != nil {
		w.log.Errorw("Regeneration failed", logger.FieldError, err.Error())
	}
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
}

// Close stops watching
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
