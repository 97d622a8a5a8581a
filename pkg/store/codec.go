package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aretw0/notes/pkg/core"
)

// indent is the fixed indentation of the notes file.
const indent = "    "

// encodeNotes renders the collection as a pretty-printed JSON array.
// HTML characters and non-ASCII text, line separators included, are written
// literally and there is no trailing newline.
func encodeNotes(notes []core.Note) ([]byte, error) {
	records := make([]core.Record, len(notes))
	for i, n := range notes {
		records[i] = n.Record()
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(records); err != nil {
		return nil, err
	}
	return unescapeLineSeparators(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

// unescapeLineSeparators turns the \u2028 and \u2029 escapes that
// encoding/json always emits back into the raw runes. Every other escape
// sequence, including an escaped backslash, is copied unchanged.
func unescapeLineSeparators(data []byte) []byte {
	if !bytes.Contains(data, []byte(`\u202`)) {
		return data
	}

	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		if data[i] != '\\' || i+1 >= len(data) {
			out = append(out, data[i])
			continue
		}
		switch string(data[i:min(i+6, len(data))]) {
		case `\u2028`:
			out = append(out, "\u2028"...)
			i += 5
		case `\u2029`:
			out = append(out, "\u2029"...)
			i += 5
		default:
			out = append(out, data[i], data[i+1])
			i++
		}
	}
	return out
}

// decodeNotes parses a notes file. Syntax errors and a top-level value that
// is not an array are returned as plain errors; a bad record is returned as
// a *core.MalformedRecordError carrying its index.
func decodeNotes(data []byte) ([]core.Note, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}

	notes := make([]core.Note, 0, len(raw))
	for i, item := range raw {
		var n core.Note
		if err := json.Unmarshal(item, &n); err != nil {
			var mre *core.MalformedRecordError
			if errors.As(err, &mre) {
				mre.Index = i
				return nil, mre
			}
			return nil, &core.MalformedRecordError{Index: i, Err: err}
		}
		notes = append(notes, n)
	}
	return notes, nil
}
