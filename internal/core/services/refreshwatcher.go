package services

import (
	"context"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/mpfoley73/landmarks/internal/core/ports/driving"
	"github.com/mpfoley73/landmarks/internal/logger"
)

// defaultDebounce collapses the burst of fsnotify events a data refresh
// produces into a single reload.
const defaultDebounce = 500 * time.Millisecond

// RefreshWatcher watches the data directory and triggers an index
// reload when its contents change. Used by long-running surfaces
// (the MCP server); one-shot CLI commands reload explicitly instead.
type RefreshWatcher struct {
	dir      string
	index    driving.IndexService
	debounce time.Duration

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	wg      sync.WaitGroup
}

// NewRefreshWatcher creates a watcher over dir driving the given index
// service. A non-positive debounce falls back to the default.
func NewRefreshWatcher(dir string, index driving.IndexService, debounce time.Duration) *RefreshWatcher {
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	return &RefreshWatcher{
		dir:      dir,
		index:    index,
		debounce: debounce,
	}
}

// Start begins watching. This method blocks until Stop is called or the
// context is cancelled.
func (w *RefreshWatcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil // Already running
	}
	w.running = true
	w.stopCh = make(chan struct{})
	w.mu.Unlock()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(w.dir); err != nil {
		return err
	}

	logger.Info("Refresh watcher: watching %s", w.dir)
	return w.run(ctx, watcher)
}

// Stop shuts down the watcher and waits for a pending reload to finish.
func (w *RefreshWatcher) Stop() error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = false
	close(w.stopCh)
	w.mu.Unlock()

	w.wg.Wait()
	return nil
}

// run is the main watch loop. Write and create events arm a debounce
// timer; when it fires, one reload runs.
func (w *RefreshWatcher) run(ctx context.Context, watcher *fsnotify.Watcher) error {
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-w.stopCh:
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			logger.Debug("Refresh watcher: %s %s", event.Op, event.Name)
			timer.Reset(w.debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Refresh watcher: %v", err)

		case <-timer.C:
			w.wg.Add(1)
			func() {
				defer w.wg.Done()
				if err := w.index.Reload(ctx); err != nil {
					logger.Warn("Refresh watcher: reload failed: %v", err)
				}
			}()
		}
	}
}
