// Package watch reruns a callback whenever files under a target change.
// It backs the scan command's --watch mode.
package watch

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/yeisme/missionscan/pkg/utils/ignore"
	"github.com/yeisme/missionscan/pkg/utils/log"
)

// Options configures a watch session.
type Options struct {
	// Debounce is the quiet period after the last event before onChange
	// fires. Defaults to 300ms when zero.
	Debounce time.Duration
	// Exclude filters watched subdirectories; may be nil.
	Exclude *ignore.Matcher
}

// Run watches target (a file or a directory tree) and invokes onChange
// after each debounced burst of file system events. It blocks until the
// watcher shuts down.
func Run(target string, opts Options, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() {
		if cerr := watcher.Close(); cerr != nil {
			log.GetLogger().Error().Err(cerr).Msg("failed to close watcher")
		}
	}()

	info, err := os.Stat(target)
	if err != nil {
		return err
	}
	if info.IsDir() {
		if err := addTree(watcher, target, opts.Exclude); err != nil {
			return err
		}
	} else {
		// Watch the parent directory so editors that replace the file on
		// save are still seen.
		if err := watcher.Add(filepath.Dir(target)); err != nil {
			return err
		}
	}

	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = 300 * time.Millisecond
	}

	logger := log.GetLogger()
	logger.Info().Str("target", target).Dur("debounce", debounce).
		Msg("watch started, press Ctrl+C to exit")

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			logger.Debug().Str("op", event.Op.String()).Str("name", event.Name).Msg("fs event")

			// Newly created directories need their own watch.
			if event.Op.Has(fsnotify.Create) {
				if fi, serr := os.Stat(event.Name); serr == nil && fi.IsDir() {
					_ = addTree(watcher, event.Name, opts.Exclude)
				}
			}

			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(debounce)
		case <-timer.C:
			onChange()
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error().Err(werr).Msg("watch error")
		}
	}
}

// addTree registers root and all non-excluded subdirectories.
func addTree(watcher *fsnotify.Watcher, root string, exclude *ignore.Matcher) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && exclude != nil {
			if rel, relErr := filepath.Rel(root, path); relErr == nil && exclude.Match(rel) {
				return filepath.SkipDir
			}
		}
		return watcher.Add(path)
	})
}
