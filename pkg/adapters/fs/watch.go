package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period applied to filesystem events before
// an input file is reprocessed. Editors tend to fire several events per
// save; collapsing them avoids redundant runs.
const DefaultDebounce = 200 * time.Millisecond

// Watch observes the working directory and invokes fn with the path of an
// input file after it changes, debounced per file. When only is non-empty
// events for every other file are ignored. Watch blocks until ctx is
// cancelled, which is the normal way to stop it.
func (r *Repository) Watch(ctx context.Context, only string, debounce time.Duration, fn func(path string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(r.workDir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", r.workDir, err)
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	var mu sync.Mutex
	timers := make(map[string]*time.Timer)
	fire := make(chan string, 16)

	r.logger.Info("watching for changes", "dir", r.workDir, "pattern", r.pattern)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) {
				continue
			}

			name := filepath.Clean(event.Name)
			match, err := doublestar.Match(r.pattern, filepath.Base(name))
			if err != nil || !match {
				continue
			}
			if only != "" && name != filepath.Clean(only) {
				continue
			}
			r.logger.Debug("event received", "name", event.Name, "op", event.Op.String())

			mu.Lock()
			if t, exists := timers[name]; exists {
				t.Stop()
			}
			timers[name] = time.AfterFunc(debounce, func() {
				select {
				case fire <- name:
				case <-ctx.Done():
				}
			})
			mu.Unlock()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			r.logger.Error("watch error", "error", err)

		case name := <-fire:
			fn(name)
		}
	}
}
