package driver

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce batches the event bursts editors produce on save into one
// rebuild.
const watchDebounce = 150 * time.Millisecond

// Watch minifies everything under root once, then rebuilds files as they
// change until ctx is cancelled. New subdirectories are picked up as they
// appear. Rebuild outcomes are delivered through onResult; per-file errors
// do not stop the watch.
func Watch(ctx context.Context, cfg Config, root string, onResult func(FileResult)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer watcher.Close() //nolint:errcheck // shutdown path

	if err := addDirs(watcher, root); err != nil {
		return err
	}

	initial, err := MinifyDir(ctx, cfg, root)
	if err != nil {
		return err
	}
	for _, res := range initial {
		onResult(res)
	}

	debounce := time.NewTimer(watchDebounce)
	if !debounce.Stop() {
		<-debounce.C
	}
	pending := make(map[string]struct{})

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case evt, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if evt.Has(fsnotify.Create) {
				if info, statErr := os.Stat(evt.Name); statErr == nil && info.IsDir() {
					if err := addDirs(watcher, evt.Name); err != nil {
						return err
					}
					continue
				}
			}
			if !evt.Has(fsnotify.Write) && !evt.Has(fsnotify.Create) {
				continue
			}
			if !IsSourceFile(evt.Name) {
				continue
			}
			pending[evt.Name] = struct{}{}
			debounce.Reset(watchDebounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch %s: %w", root, err)

		case <-debounce.C:
			for path := range pending {
				onResult(MinifyFile(cfg, path))
			}
			clear(pending)
		}
	}
}

func addDirs(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}
