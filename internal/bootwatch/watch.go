// Package bootwatch reports when the container runtime marks the boot as
// finished by creating a ready marker file.
package bootwatch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/gamenative/gamenative-tui/internal/logger"
)

// Watch returns a channel that is closed once path exists. The parent
// directory is watched so the marker may be created after Watch is called.
// The channel is never closed if ctx ends first.
func Watch(ctx context.Context, path string, log *logger.Logger) (<-chan struct{}, error) {
	if log == nil {
		log = logger.Discard()
	}
	log = log.WithComponent("bootwatch")

	cleanPath, err := validateMarkerPath(path)
	if err != nil {
		return nil, err
	}

	watcher, err := createWatcher(filepath.Dir(cleanPath))
	if err != nil {
		return nil, err
	}

	ready := make(chan struct{})

	// the marker may already be there, or appear between Stat and Add
	if exists(cleanPath) {
		cleanupWatcher(watcher, log)
		close(ready)
		return ready, nil
	}

	go func() {
		defer cleanupWatcher(watcher, log)
		if watchLoop(ctx, watcher, cleanPath, log) {
			close(ready)
		}
	}()

	return ready, nil
}

// watchLoop blocks until the marker shows up or ctx is done
func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, path string, log *logger.Logger) bool {
	if exists(path) {
		return true
	}

	for {
		select {
		case <-ctx.Done():
			return false

		case event, ok := <-watcher.Events:
			if !ok {
				return false
			}
			if isMarkerEvent(event, path) && exists(path) {
				log.DebugWithFields("ready marker found", []logger.Field{logger.F("path", path), logger.F("op", event.Op.String())})
				return true
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return false
			}
			log.WarnWithFields("watcher error", []logger.Field{logger.Error(err)})
		}
	}
}

func isMarkerEvent(event fsnotify.Event, path string) bool {
	if filepath.Clean(event.Name) != path {
		return false
	}
	return event.Has(fsnotify.Create) || event.Has(fsnotify.Write) || event.Has(fsnotify.Rename)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func createWatcher(dir string) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}

	return watcher, nil
}

func cleanupWatcher(watcher *fsnotify.Watcher, log *logger.Logger) {
	if err := watcher.Close(); err != nil {
		log.Debug("failed to close watcher: %v", err)
	}
}

// validateMarkerPath cleans path and rejects directories
func validateMarkerPath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", errors.New("empty ready file path")
	}

	cleanPath, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("invalid ready file path: %w", err)
	}

	if info, err := os.Stat(cleanPath); err == nil && info.IsDir() {
		return "", fmt.Errorf("ready file %s is a directory", cleanPath)
	}

	return cleanPath, nil
}
