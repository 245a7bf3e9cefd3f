package scenario

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"
)

// Watcher monitors a catalog file for changes and swaps reloaded catalogs
// into a [Registry]. It uses polling (not fsnotify) to keep dependencies
// minimal. A file that fails to parse or validate is logged and skipped; the
// registry keeps serving the previous catalog.
type Watcher struct {
	path     string
	interval time.Duration
	registry *Registry

	done     chan struct{}
	stopOnce sync.Once

	// last known file state for change detection
	mu        sync.Mutex
	lastMtime time.Time
	lastHash  [sha256.Size]byte
}

// WatcherOption configures a [Watcher].
type WatcherOption func(*Watcher)

// WithInterval sets the polling interval. The default is 5 seconds.
func WithInterval(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d > 0 {
			w.interval = d
		}
	}
}

// NewWatcher creates a catalog file watcher publishing into registry. It
// loads the initial catalog immediately and starts polling in a background
// goroutine.
func NewWatcher(path string, registry *Registry, opts ...WatcherOption) (*Watcher, error) {
	w := &Watcher{
		path:     path,
		interval: 5 * time.Second,
		registry: registry,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	cat, hash, mtime, err := w.loadAndHash()
	if err != nil {
		return nil, fmt.Errorf("scenario: watcher initial load: %w", err)
	}
	w.lastHash = hash
	w.lastMtime = mtime
	registry.Swap(cat)

	go w.poll()
	return w, nil
}

// Stop stops the file watcher. The registry keeps its last catalog.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
	})
}

func (w *Watcher) poll() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.done:
			return
		case <-ticker.C:
			w.check()
		}
	}
}

// check reads the catalog file and, if it has changed and is valid, swaps it
// into the registry.
func (w *Watcher) check() {
	// Quick mtime check first to avoid hashing unchanged files.
	info, err := os.Stat(w.path)
	if err != nil {
		slog.Warn("scenario watcher: cannot stat file", "path", w.path, "err", err)
		return
	}

	w.mu.Lock()
	mtime := w.lastMtime
	w.mu.Unlock()

	if info.ModTime().Equal(mtime) {
		return
	}

	cat, hash, newMtime, err := w.loadAndHash()
	if err != nil {
		slog.Warn("scenario watcher: failed to load catalog", "path", w.path, "err", err)
		return
	}

	w.mu.Lock()
	if hash == w.lastHash {
		// File was touched but content is identical.
		w.lastMtime = newMtime
		w.mu.Unlock()
		return
	}
	w.lastHash = hash
	w.lastMtime = newMtime
	w.mu.Unlock()

	w.registry.Swap(cat)
	slog.Info("scenario watcher: catalog reloaded", "path", w.path, "scenarios", len(cat.Scenarios))
}

// loadAndHash reads the catalog file, parses and validates it, and returns
// the catalog alongside the file's SHA-256 hash and modification time.
func (w *Watcher) loadAndHash() (*Catalog, [sha256.Size]byte, time.Time, error) {
	var zeroHash [sha256.Size]byte

	data, err := os.ReadFile(w.path)
	if err != nil {
		return nil, zeroHash, time.Time{}, err
	}
	info, err := os.Stat(w.path)
	if err != nil {
		return nil, zeroHash, time.Time{}, err
	}

	hash := sha256.Sum256(data)

	cat, err := LoadFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, zeroHash, time.Time{}, err
	}

	return cat, hash, info.ModTime(), nil
}
