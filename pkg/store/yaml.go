package store

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/notes/pkg/core"
)

// ExportYAML writes the collection to w as a YAML sequence of records.
func (s *Store) ExportYAML(w io.Writer) error {
	s.mu.RLock()
	records := make([]core.Record, len(s.notes))
	for i, n := range s.notes {
		records[i] = n.Record()
	}
	s.mu.RUnlock()

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(records); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return encoder.Close()
}

// ImportYAML reads a YAML sequence of records from r and appends every note
// whose ID is not already in the store, keeping the stored IDs. Records
// without an ID get a new one. The store is persisted once; on any failure
// nothing is imported.
func (s *Store) ImportYAML(r io.Reader) (int, error) {
	var raw []map[string]any
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("failed to decode yaml: %w", err)
	}

	incoming := make([]core.Note, 0, len(raw))
	for i, m := range raw {
		n, err := core.FromMap(m)
		if err != nil {
			var mre *core.MalformedRecordError
			if errors.As(err, &mre) {
				mre.Index = i
			}
			return 0, err
		}
		incoming = append(incoming, n)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]bool, len(s.notes)+len(incoming))
	for _, n := range s.notes {
		seen[n.ID] = true
	}

	prev := s.notes
	next := append([]core.Note(nil), prev...)
	imported := 0
	for _, n := range incoming {
		if seen[n.ID] {
			s.opts.logger.Debug("skipping duplicate note on import", "id", n.ID)
			continue
		}
		seen[n.ID] = true
		next = append(next, n)
		imported++
	}

	if imported == 0 {
		return 0, nil
	}

	s.notes = next
	if err := s.persist(); err != nil {
		s.notes = prev
		return 0, err
	}

	s.opts.logger.Debug("notes imported", "count", imported)
	return imported, nil
}
