package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/aretw0/notes/pkg/core"
)

// Store is the in-memory, insertion-ordered collection of notes backed by a
// single JSON file. Every mutating operation rewrites the whole file before
// it returns, so memory and disk never drift apart.
type Store struct {
	mu       sync.RWMutex
	path     string
	notes    []core.Note
	opts     *options
	watching bool
	lastSave *time.Time
}

// New creates an empty store bound to path. Nothing is read until Load.
func New(path string, opts ...Option) *Store {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Store{
		path:  path,
		notes: []core.Note{},
		opts:  o,
	}
}

// Open creates a store bound to path and loads it.
func Open(path string, opts ...Option) (*Store, error) {
	s := New(path, opts...)
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the notes file location.
func (s *Store) Path() string {
	return s.path
}

// Len returns the number of notes.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.notes)
}

// Load replaces the collection with the contents of the notes file.
// A missing file yields an empty collection. On failure the collection is
// left as it was.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.mu.Lock()
		s.notes = []core.Note{}
		s.mu.Unlock()
		s.opts.logger.Debug("notes file not found, starting empty", "path", s.path)
		return nil
	}
	if err != nil {
		return &core.PersistenceError{Op: "load", Path: s.path, Err: err}
	}

	notes, err := decodeNotes(data)
	if err != nil {
		var mre *core.MalformedRecordError
		if errors.As(err, &mre) {
			return err
		}
		return &core.PersistenceError{Op: "load", Path: s.path, Err: err}
	}

	s.mu.Lock()
	s.notes = notes
	s.mu.Unlock()

	s.opts.logger.Debug("notes loaded", "path", s.path, "count", len(notes))
	return nil
}

// Save writes the whole collection to the notes file.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persist()
}

// persist must be called with s.mu held for writing.
func (s *Store) persist() error {
	data, err := encodeNotes(s.notes)
	if err != nil {
		return &core.PersistenceError{Op: "save", Path: s.path, Err: err}
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return &core.PersistenceError{Op: "save", Path: s.path, Err: fmt.Errorf("failed to create directories: %w", err)}
	}

	if err := writeFileAtomic(s.path, data, s.opts.perm); err != nil {
		return &core.PersistenceError{Op: "save", Path: s.path, Err: err}
	}

	now := time.Now()
	s.lastSave = &now
	s.opts.logger.Debug("notes saved", "path", s.path, "count", len(s.notes))
	return nil
}

// Add appends a note and persists. A note without an ID gets one.
// If the write fails the note is not kept.
func (s *Store) Add(n core.Note) error {
	if n.ID == "" {
		n.ID = s.opts.newID()
	}
	n.Tags = core.NormalizeTags(n.Tags)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.notes = append(s.notes, n)
	if err := s.persist(); err != nil {
		s.notes = s.notes[:len(s.notes)-1]
		return err
	}

	s.opts.logger.Debug("note added", "id", n.ID)
	return nil
}

// Create builds a note with a new ID and adds it.
func (s *Store) Create(title, content string, tags []string) (core.Note, error) {
	n := core.NewNote(title, content, tags, core.WithID(s.opts.newID()))
	if err := s.Add(n); err != nil {
		return core.Note{}, err
	}
	return cloneNote(n), nil
}

// FindByID returns the first note with the given ID.
// A missing ID is reported through ok, never as an error.
func (s *Store) FindByID(id string) (n core.Note, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return cloneNote(s.notes[i]), true
	}
	return core.Note{}, false
}

func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.notes, func(n core.Note) bool {
		return n.ID == id
	})
}

// EditOption describes one field change requested by Edit.
type EditOption func(*edit)

type edit struct {
	title   *string
	content *string
	tags    []string
}

// SetTitle replaces the title. A blank title keeps the current one.
func SetTitle(title string) EditOption {
	return func(e *edit) {
		if title != "" {
			e.title = &title
		}
	}
}

// SetContent replaces the content. Empty content keeps the current one.
func SetContent(content string) EditOption {
	return func(e *edit) {
		if content != "" {
			e.content = &content
		}
	}
}

// SetTags replaces the tags. A list with no non-blank tag keeps the
// current ones.
func SetTags(tags []string) EditOption {
	return func(e *edit) {
		if normalized := core.NormalizeTags(tags); len(normalized) > 0 {
			e.tags = normalized
		}
	}
}

// Edit applies the given changes to the note with the given ID and persists.
// Fields without an option, or with a blank value, are left unchanged.
// The ID is never modified. ok is false when no note matches, in which case
// nothing is written.
func (s *Store) Edit(id string, opts ...EditOption) (n core.Note, ok bool, err error) {
	var e edit
	for _, opt := range opts {
		opt(&e)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return core.Note{}, false, nil
	}

	prev := s.notes[i]
	updated := prev
	if e.title != nil {
		updated.Title = *e.title
	}
	if e.content != nil {
		updated.Content = *e.content
	}
	if e.tags != nil {
		updated.Tags = e.tags
	}

	s.notes[i] = updated
	if err := s.persist(); err != nil {
		s.notes[i] = prev
		return core.Note{}, true, err
	}

	s.opts.logger.Debug("note edited", "id", id)
	return cloneNote(updated), true, nil
}

// Delete removes the first note with the given ID and persists.
// ok is false when no note matches, in which case nothing is written.
func (s *Store) Delete(id string) (ok bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false, nil
	}

	prev := s.notes
	s.notes = slices.Delete(slices.Clone(prev), i, i+1)
	if err := s.persist(); err != nil {
		s.notes = prev
		return true, err
	}

	s.opts.logger.Debug("note deleted", "id", id)
	return true, nil
}

// Search returns, in collection order, the notes whose title, content or
// tags contain keyword, ignoring case. The result is empty, not nil, when
// nothing matches.
func (s *Store) Search(keyword string) []core.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	found := make([]core.Note, 0)
	for _, n := range s.notes {
		if n.Matches(keyword) {
			found = append(found, cloneNote(n))
		}
	}
	return found
}

// Notes returns a copy of the collection in display order.
func (s *Store) Notes() []core.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]core.Note, len(s.notes))
	for i, n := range s.notes {
		out[i] = cloneNote(n)
	}
	return out
}

// cloneNote detaches the tag slice so callers cannot mutate stored notes.
func cloneNote(n core.Note) core.Note {
	n.Tags = slices.Clone(n.Tags)
	return n
}
