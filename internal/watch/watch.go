// Package watch re-reads a quiz source file whenever it changes on disk.
package watch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"quizjson/internal/debounce"
	"quizjson/internal/source"
)

// DefaultDelay is the settling time after the last change event.
const DefaultDelay = 300 * time.Millisecond

// Options configures Run.
type Options struct {
	Delay  time.Duration
	Logger zerolog.Logger
}

// Run calls onChange with the current contents of path, then again after
// every burst of writes has settled. Only the latest contents of a burst are
// delivered. Run returns nil when ctx is cancelled.
func Run(ctx context.Context, path string, opts Options, onChange func(ctx context.Context, text string)) error {
	if onChange == nil {
		return errors.New("watch: onChange is required")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}
	if _, err := source.Detect(abs); err != nil {
		return err
	}
	if _, err := os.Stat(abs); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace files by rename, so watch the directory.
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	delay := opts.Delay
	if delay <= 0 {
		delay = DefaultDelay
	}
	logger := opts.Logger.With().Str("path", abs).Logger()

	d := debounce.New(ctx, delay, func(taskCtx context.Context, _ struct{}) {
		text, err := source.ReadFile(abs)
		if err != nil {
			logger.Warn().Err(err).Msg("read failed")
			return
		}
		if taskCtx.Err() != nil {
			return
		}
		onChange(taskCtx, text)
	})
	defer d.Stop()

	d.Schedule(struct{}{})
	d.Flush()
	logger.Info().Dur("delay", delay).Msg("watching")

	baseName := filepath.Base(abs)
	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("watch stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != baseName {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug().Str("op", event.Op.String()).Msg("change")
			d.Schedule(struct{}{})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Err(err).Msg("watcher error")
		}
	}
}
