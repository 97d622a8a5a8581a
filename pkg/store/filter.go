package store

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/notes/pkg/core"
)

// FilterByTag returns the notes having at least one tag that matches the
// glob pattern. Tags may be hierarchical ("work/reports"), so "work/**"
// selects a whole branch.
func (s *Store) FilterByTag(pattern string) ([]core.Note, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid tag pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	found := make([]core.Note, 0)
	for _, n := range s.notes {
		for _, tag := range n.Tags {
			ok, err := doublestar.Match(pattern, tag)
			if err != nil {
				return nil, fmt.Errorf("failed to match tag %q: %w", tag, err)
			}
			if ok {
				found = append(found, cloneNote(n))
				break
			}
		}
	}
	return found, nil
}
