// Package watch re-runs the site checks when documents change on disk.
package watch

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/starford/algiz/internal/checksum"
)

// Watch starts an fsnotify watcher on the site root and invokes onChange
// (debounced) until ctx is cancelled. Events for non-.html files are
// ignored, as are writes that leave a file's content checksum unchanged
// (editors often touch files without changing them).
//
// New directories created at runtime are automatically added to the watch
// list.
func Watch(ctx context.Context, root string, debounce time.Duration, logger *slog.Logger, onChange func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := addDirsRecursive(w, root); err != nil {
		return err
	}

	logger.Info("watcher: started", slog.String("root", root))

	sums := snapshotChecksums(root)

	// rerunTimer debounces bursts of change events into one re-check.
	var rerunTimer *time.Timer
	var rerunCh <-chan time.Time

	scheduleRerun := func() {
		if rerunTimer == nil {
			rerunTimer = time.NewTimer(debounce)
			rerunCh = rerunTimer.C
		} else {
			rerunTimer.Reset(debounce)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if rerunTimer != nil {
				rerunTimer.Stop()
			}
			logger.Info("watcher: stopped")
			return nil

		case <-rerunCh:
			onChange()

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}

			absPath := ev.Name

			// New directories are added to the watcher; any documents
			// inside them count as a change.
			if ev.Op&fsnotify.Create != 0 {
				if info, statErr := os.Stat(absPath); statErr == nil && info.IsDir() {
					if addErr := addDirsRecursive(w, absPath); addErr != nil {
						logger.Warn("watcher: add new dir failed",
							slog.String("path", absPath),
							slog.String("error", addErr.Error()))
					}
					scheduleRerun()
					continue
				}
			}

			if !strings.HasSuffix(absPath, ".html") {
				continue
			}

			switch {
			case ev.Op&(fsnotify.Create|fsnotify.Write) != 0:
				data, readErr := os.ReadFile(absPath)
				if readErr == nil {
					sum := checksum.Sum(data)
					if sums[absPath] == sum {
						logger.Debug("watcher: content unchanged", slog.String("path", absPath))
						continue
					}
					sums[absPath] = sum
				}
				logger.Debug("watcher: changed", slog.String("path", absPath), slog.String("op", ev.Op.String()))
				scheduleRerun()

			case ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
				delete(sums, absPath)
				logger.Debug("watcher: removed", slog.String("path", absPath))
				scheduleRerun()
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}

// snapshotChecksums records the current checksum of every .html file under
// root so no-op writes can be recognized later.
func snapshotChecksums(root string) map[string]string {
	sums := make(map[string]string)
	_ = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(d.Name(), ".html") {
			return nil
		}
		if data, readErr := os.ReadFile(p); readErr == nil {
			sums[p] = checksum.Sum(data)
		}
		return nil
	})
	return sums
}

// addDirsRecursive adds root and all its subdirectories to the watcher.
func addDirsRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
}
