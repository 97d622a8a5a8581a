package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/aretw0/notes/pkg/core"
)

// FileSchema describes a valid notes file.
const FileSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "title", "content", "tags"],
    "properties": {
      "id":      {"type": ["string", "null"]},
      "title":   {"type": "string"},
      "content": {"type": "string"},
      "tags": {
        "type": ["array", "null"],
        "items": {"type": "string"}
      }
    }
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(FileSchema)

// CheckFile validates the notes file on disk without loading it.
// A missing file is valid.
func (s *Store) CheckFile() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return &core.PersistenceError{Op: "check", Path: s.path, Err: err}
	}
	return s.Check(data)
}

// Check validates raw notes file contents against FileSchema.
// Unparseable input is a *core.PersistenceError; schema violations are
// reported as a *core.MalformedRecordError for the first offending record.
func (s *Store) Check(data []byte) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return &core.PersistenceError{Op: "check", Path: s.path, Err: err}
	}
	if result.Valid() {
		return nil
	}

	violations := result.Errors()
	msgs := make([]string, 0, len(violations))
	for _, v := range violations {
		msgs = append(msgs, v.String())
	}

	first := violations[0]
	mre := &core.MalformedRecordError{
		Index: recordIndex(first.Field()),
		Err:   errors.New(strings.Join(msgs, "; ")),
	}
	if prop, ok := first.Details()["property"].(string); ok {
		mre.Field = prop
	} else if _, field, ok := strings.Cut(first.Field(), "."); ok {
		mre.Field = field
	}
	return fmt.Errorf("%s does not match the notes schema: %w", s.path, mre)
}

// recordIndex extracts the array position from a schema field path such as
// "2" or "2.tags". It returns -1 for root-level violations.
func recordIndex(field string) int {
	head, _, _ := strings.Cut(field, ".")
	i, err := strconv.Atoi(head)
	if err != nil {
		return -1
	}
	return i
}
