package store

import (
	"time"

	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Path     string     `json:"path"`
	Notes    int        `json:"notes"`
	Tags     int        `json:"distinct_tags"`
	Watching bool       `json:"watching"`
	LastSave *time.Time `json:"last_save,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tags := make(map[string]struct{})
	for _, n := range s.notes {
		for _, tag := range n.Tags {
			tags[tag] = struct{}{}
		}
	}

	return StoreState{
		Path:     s.path,
		Notes:    len(s.notes),
		Tags:     len(tags),
		Watching: s.watching,
		LastSave: s.lastSave,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
