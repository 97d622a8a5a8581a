package store_test

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/aretw0/notes/pkg/store"
)

// Example_basic demonstrates how to open a store, add a note, edit it and search.
func Example_basic() {
	// Create a temporary directory for the example
	tmpDir, err := os.MkdirTemp("", "notes-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	// A fixed ID source keeps the output stable.
	s, err := store.Open(filepath.Join(tmpDir, "notes.json"),
		store.WithIDGenerator(func() string { return "a1b2c3d4" }),
	)
	if err != nil {
		log.Fatal(err)
	}

	// 1. Create a note (written to disk immediately)
	n, err := s.Create("Shopping list", "Buy milk and eggs", []string{"groceries"})
	if err != nil {
		log.Fatal(err)
	}

	// 2. Edit only the title; blank content keeps the current text
	if _, _, err := s.Edit(n.ID, store.SetTitle("Groceries"), store.SetContent("")); err != nil {
		log.Fatal(err)
	}

	// 3. Search it back
	for _, hit := range s.Search("MILK") {
		fmt.Printf("[%s] %s: %s\n", hit.ID, hit.DisplayTitle(), hit.Content)
	}
	// Output:
	// [a1b2c3d4] GROCERIES: Buy milk and eggs
}

// ExampleStore_Delete shows that deleting an unknown ID is not an error.
func ExampleStore_Delete() {
	tmpDir, err := os.MkdirTemp("", "notes-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	s := store.New(filepath.Join(tmpDir, "notes.json"))

	ok, err := s.Delete("missing")
	fmt.Println(ok, err)
	// Output:
	// false <nil>
}
