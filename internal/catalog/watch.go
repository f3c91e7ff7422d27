package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-logr/logr"
)

// DefaultDebounce coalesces bursts of editor writes into one reload.
const DefaultDebounce = 250 * time.Millisecond

// Watch reloads the catalog at path whenever it changes and passes every
// catalog that validates to onChange. Invalid edits are logged and skipped,
// so the last good catalog stays in effect. Watch blocks until ctx is done.
func Watch(ctx context.Context, log logr.Logger, path string, debounce time.Duration, onChange func(*Catalog)) error {
	if path == "" {
		return fmt.Errorf("watch: no catalog file configured")
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fsw.Close()

	// Watch the directory, editors replace files with renames.
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(path), err)
	}
	target := filepath.Base(path)

	var (
		mu    sync.Mutex
		timer *time.Timer
	)
	reload := func() {
		cat, err := Load(path)
		if err != nil {
			log.Error(err, "catalog reload rejected", "path", path)
			return
		}
		log.Info("catalog reloaded", "path", path, "diagrams", len(cat.Diagrams))
		onChange(cat)
	}
	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, reload)
			mu.Unlock()
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			log.Error(err, "catalog watcher error")
		}
	}
}
