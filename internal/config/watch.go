package config

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
)

// DebounceInterval coalesces bursts of filesystem events into one reload.
const DebounceInterval = 100 * time.Millisecond

// Update is one reload result. Exactly one of Config and Err is set.
type Update struct {
	Config *Config
	Err    error
}

// Watch reloads path whenever it is written or recreated and sends the
// result on the returned channel. Reloads whose content is unchanged are
// skipped. The channel is closed when ctx is done.
//
// The directory is watched rather than the file so that editors which
// replace the file on save are still seen.
func (l *Loader) Watch(ctx context.Context, path string) (<-chan Update, error) {
	initial, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", path, err)
	}

	updates := make(chan Update, 1)
	go l.watchLoop(ctx, w, path, initial, updates)
	return updates, nil
}

func (l *Loader) watchLoop(ctx context.Context, w *fsnotify.Watcher, path string, last []byte, updates chan<- Update) {
	defer close(updates)
	defer w.Close()

	name := filepath.Clean(path)

	var debounce *time.Timer
	var debounceC <-chan time.Time
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != name || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.NewTimer(DebounceInterval)
			debounceC = debounce.C

		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			if !send(ctx, updates, Update{Err: fmt.Errorf("watch %s: %w", path, err)}) {
				return
			}

		case <-debounceC:
			debounceC = nil

			data, err := afero.ReadFile(l.fs, path)
			if err != nil {
				if !send(ctx, updates, Update{Err: fmt.Errorf("failed to read config: %w", err)}) {
					return
				}
				continue
			}
			if bytes.Equal(data, last) {
				continue
			}
			last = data

			cfg, err := l.parse(path, data)
			if !send(ctx, updates, Update{Config: cfg, Err: err}) {
				return
			}
		}
	}
}

func send(ctx context.Context, ch chan<- Update, u Update) bool {
	select {
	case ch <- u:
		return true
	case <-ctx.Done():
		return false
	}
}
