// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// =============================================================================
// CONFIG WATCHER
// =============================================================================

// DefaultWatchDebounce is the quiet period before a changed file is reloaded.
const DefaultWatchDebounce = 250 * time.Millisecond

// ReloadFunc receives the reloaded configuration, or the error that prevented
// the reload. It is called from the watcher goroutine.
type ReloadFunc func(cfg *Config, err error)

// Watcher reloads configuration files when they change on disk.
//
// The parent directory is watched instead of the file itself so that atomic
// rename-based saves (see util.AtomicWriteFile) are picked up.
type Watcher struct {
	paths    map[string]bool
	load     func() (*Config, error)
	onReload ReloadFunc
	watcher  *fsnotify.Watcher
	debounce time.Duration
	logger   *slog.Logger

	mu      sync.Mutex
	pending time.Time
	dirty   bool

	ctx    context.Context
	cancel context.CancelFunc
	done   sync.WaitGroup
}

// WatchOption configures a Watcher.
type WatchOption func(*Watcher)

// WithDebounce overrides DefaultWatchDebounce.
func WithDebounce(d time.Duration) WatchOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithWatchLogger sets the logger used for watcher errors.
func WithWatchLogger(l *slog.Logger) WatchOption {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// Watch starts watching the given configuration file. Changes are debounced
// and passed through LoadFromPath before onReload is invoked.
func Watch(ctx context.Context, path string, onReload ReloadFunc, opts ...WatchOption) (*Watcher, error) {
	return watch(ctx, []string{path}, func() (*Config, error) { return LoadFromPath(path) }, onReload, opts...)
}

// WatchDefault watches the default TOML and JSON locations and reloads
// through Load.
func WatchDefault(ctx context.Context, onReload ReloadFunc, opts ...WatchOption) (*Watcher, error) {
	if err := EnsureConfigDir(); err != nil {
		return nil, err
	}
	tomlPath, err := ConfigPathTOML()
	if err != nil {
		return nil, err
	}
	jsonPath, err := ConfigPathJSON()
	if err != nil {
		return nil, err
	}
	return watch(ctx, []string{tomlPath, jsonPath}, Load, onReload, opts...)
}

func watch(ctx context.Context, paths []string, load func() (*Config, error), onReload ReloadFunc, opts ...WatchOption) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	w := &Watcher{
		paths:    make(map[string]bool),
		load:     load,
		onReload: onReload,
		watcher:  fsw,
		debounce: DefaultWatchDebounce,
		logger:   slog.Default(),
		ctx:      ctx,
		cancel:   cancel,
	}
	for _, opt := range opts {
		opt(w)
	}

	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			abs = p
		}
		w.paths[filepath.Clean(abs)] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			cancel()
			fsw.Close()
			return nil, err
		}
	}

	w.done.Add(2)
	go w.processEvents()
	go w.processPending()

	return w, nil
}

// processEvents marks the watcher dirty for events on watched files.
func (w *Watcher) processEvents() {
	defer w.done.Done()

	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.paths[filepath.Clean(event.Name)] {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.mu.Lock()
			w.pending = time.Now()
			w.dirty = true
			w.mu.Unlock()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watcher error", "error", err)
		}
	}
}

// processPending reloads once the debounce period has elapsed.
func (w *Watcher) processPending() {
	defer w.done.Done()

	tick := w.debounce / 4
	if tick < 10*time.Millisecond {
		tick = 10 * time.Millisecond
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return

		case <-ticker.C:
			w.mu.Lock()
			ready := w.dirty && time.Since(w.pending) >= w.debounce
			if ready {
				w.dirty = false
			}
			w.mu.Unlock()

			if !ready {
				continue
			}
			cfg, err := w.load()
			if err != nil {
				w.logger.Warn("config reload failed", "error", err)
			} else {
				w.logger.Debug("config reloaded")
			}
			if w.onReload != nil {
				w.onReload(cfg, err)
			}
		}
	}
}

// Close stops watching and waits for the watcher goroutines to exit.
func (w *Watcher) Close() error {
	w.cancel()
	err := w.watcher.Close()
	w.done.Wait()
	return err
}
