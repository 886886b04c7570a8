package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"github.com/dshills/clipevent/internal/logging"
)

// DefaultDebounce coalesces the bursts of events editors produce on save.
const DefaultDebounce = 100 * time.Millisecond

// ReloadFunc receives reloaded settings, or the error that prevented
// loading them.
type ReloadFunc func(cfg *Config, err error)

// Watcher reloads a config file when it changes.
type Watcher struct {
	path     string
	onReload ReloadFunc
	loadOpts []LoadOption
	debounce time.Duration
	log      logrus.FieldLogger

	fsw *fsnotify.Watcher

	mu     sync.Mutex
	timer  *time.Timer
	closed bool

	closeCh  chan struct{}
	closedWg sync.WaitGroup
}

// WatchOption configures a Watcher.
type WatchOption func(*Watcher)

// WithDebounce sets how long the watcher waits for events to settle.
func WithDebounce(d time.Duration) WatchOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithWatchLogger sets the logger.
func WithWatchLogger(l logrus.FieldLogger) WatchOption {
	return func(w *Watcher) {
		w.log = logging.Component(l, "config")
	}
}

// WithLoadOptions sets the options used for every reload.
func WithLoadOptions(opts ...LoadOption) WatchOption {
	return func(w *Watcher) {
		w.loadOpts = opts
	}
}

// NewWatcher starts watching path. The directory is watched rather than
// the file so that editors replacing the file are noticed.
func NewWatcher(path string, onReload ReloadFunc, opts ...WatchOption) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	w := &Watcher{
		path:     abs,
		onReload: onReload,
		debounce: DefaultDebounce,
		log:      logging.Discard(),
		closeCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	w.fsw = fsw

	w.closedWg.Add(1)
	go w.eventLoop()
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

func (w *Watcher) eventLoop() {
	defer w.closedWg.Done()

	for {
		select {
		case <-w.closeCh:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				w.log.WithField("op", ev.Op.String()).Debug("config changed")
				w.schedule()
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.WithError(err).Warn("watch error")
		}
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

func (w *Watcher) reload() {
	w.mu.Lock()
	closed := w.closed
	w.mu.Unlock()
	if closed {
		return
	}

	cfg, err := Load(w.path, w.loadOpts...)
	if err != nil {
		w.log.WithError(err).Warn("reload failed")
	} else {
		w.log.Info("config reloaded")
	}
	w.onReload(cfg, err)
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	close(w.closeCh)
	err := w.fsw.Close()
	w.closedWg.Wait()
	return err
}
