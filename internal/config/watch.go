package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
)

// reloadDelay coalesces the burst of events editors produce on save
const reloadDelay = 100 * time.Millisecond

// Watch reloads the config whenever the last of paths changes and passes the
// result to onChange. It watches the file's directory so editors that save by
// renaming a temp file are seen. Watch returns once the watcher is running;
// it stops when ctx is done.
func Watch(ctx context.Context, paths []string, onChange func(*Config, error)) error {
	if len(paths) == 0 {
		return fmt.Errorf("no config paths to watch")
	}
	target := filepath.Clean(paths[len(paths)-1])

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(target)); err != nil {
		w.Close()
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}
	log.WithField("path", target).Info("config: watching")

	go func() {
		defer w.Close()

		timer := time.NewTimer(reloadDelay)
		if !timer.Stop() {
			<-timer.C
		}

		for {
			select {
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Rename) {
					timer.Reset(reloadDelay)
				}

			case <-timer.C:
				cfg, err := LoadFiles(paths...)
				if err != nil {
					log.WithError(err).Warn("config: reload failed")
				}
				onChange(cfg, err)

			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.WithError(err).Error("config: watcher error")

			case <-ctx.Done():
				return
			}
		}
	}()
	return nil
}
