package store

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"
)

// EventType represents the kind of change seen on the notes file.
type EventType string

const (
	EventWrite  EventType = "WRITE"
	EventRemove EventType = "REMOVE"
)

// Event represents a change to the notes file made by any process.
type Event struct {
	Type EventType
	Path string
	Time time.Time
}

// Watch reports changes to the notes file until ctx is done, then closes the
// returned channel. The parent directory is watched because atomic saves
// replace the file rather than writing into it.
func (s *Store) Watch(ctx context.Context) (<-chan Event, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	events := make(chan Event, 16)
	s.setWatching(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(events)
		defer s.setWatching(false)
		defer watcher.Close()
		return s.runWatch(ctx, watcher, events)
	}, lifecycle.WithErrorHandler(func(err error) {
		s.opts.logger.Error("watcher stopped", "error", err)
	}))

	return events, nil
}

func (s *Store) runWatch(ctx context.Context, watcher *fsnotify.Watcher, out chan<- Event) error {
	target := filepath.Clean(s.path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.opts.logger.Error("fsnotify error", "error", err)
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}

			var typ EventType
			switch {
			case ev.Has(fsnotify.Create), ev.Has(fsnotify.Write):
				typ = EventWrite
			case ev.Has(fsnotify.Remove), ev.Has(fsnotify.Rename):
				typ = EventRemove
			default:
				continue
			}

			s.opts.logger.Debug("notes file changed", "op", ev.Op.String(), "path", ev.Name)
			select {
			case out <- Event{Type: typ, Path: s.path, Time: time.Now()}:
			case <-ctx.Done():
				return nil
			}
		}
	}
}

func (s *Store) setWatching(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watching = active
}
