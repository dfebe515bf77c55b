package watcher

import (
	"context"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/hsmod/hsmod-installer/cmd/internal/logs"
)

// WatchDirs watches dirs and calls callback once things have been quiet for
// debounce after a matching path was removed or renamed. Directories that do
// not exist yet are picked up again after every callback, since the callback
// usually recreates them.
func WatchDirs(ctx context.Context, dirs []string, match func(name string) bool, debounce time.Duration, callback func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	addAll := func() {
		for _, dir := range dirs {
			if info, err := os.Stat(dir); err != nil || !info.IsDir() {
				continue
			}
			if err := w.Add(dir); err != nil {
				logs.Debug.Println("Cannot watch", dir, err)
			}
		}
	}
	addAll()

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if !match(ev.Name) {
				continue
			}
			logs.Debug.Println("Changed:", ev)
			timer.Reset(debounce)
		case <-timer.C:
			callback()
			addAll()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}
