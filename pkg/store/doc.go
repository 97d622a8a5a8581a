// Package store keeps a user's notes in memory and mirrors them to a single
// JSON file.
//
// The file is a pretty-printed JSON array of note records and is rewritten
// in full, atomically, after every create, edit, delete or import. There is
// no hidden global instance: callers construct a Store and own it.
//
// Usage:
//
//	s, err := store.Open("notes.json", store.WithLogger(logger))
//	if err != nil {
//		return err
//	}
//	n, err := s.Create("Shopping", "Buy milk", []string{"home"})
//	_, found, err := s.Edit(n.ID, store.SetTitle("Groceries"))
//	hits := s.Search("milk")
package store
