package core

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// IDLength is the number of characters in a generated note ID.
const IDLength = 8

// Required keys of a serialized note, in the order they are checked.
const (
	KeyID      = "id"
	KeyTitle   = "title"
	KeyContent = "content"
	KeyTags    = "tags"
)

var requiredKeys = []string{KeyID, KeyTitle, KeyContent, KeyTags}

// Note is the central entity of the domain.
// It is a short user-authored text identified by an ID that never changes
// once assigned.
type Note struct {
	ID      string
	Title   string
	Content string
	Tags    []string
}

// Record is the plain serializable form of a Note.
// Field order matches the on-disk key order.
type Record struct {
	ID      string   `json:"id" yaml:"id"`
	Title   string   `json:"title" yaml:"title"`
	Content string   `json:"content" yaml:"content"`
	Tags    []string `json:"tags" yaml:"tags"`
}

// NoteOption configures NewNote.
type NoteOption func(*Note)

// WithID reuses an existing ID instead of generating one.
// An empty id is ignored.
func WithID(id string) NoteOption {
	return func(n *Note) {
		if id != "" {
			n.ID = id
		}
	}
}

// NewID returns a random 8-character identifier.
// It is not checked against any existing store.
func NewID() string {
	return uuid.NewString()[:IDLength]
}

// NewNote creates a note with normalized tags and, unless WithID is given,
// a freshly generated ID.
func NewNote(title, content string, tags []string, opts ...NoteOption) Note {
	n := Note{
		Title:   title,
		Content: content,
		Tags:    NormalizeTags(tags),
	}
	for _, opt := range opts {
		opt(&n)
	}
	if n.ID == "" {
		n.ID = NewID()
	}
	return n
}

// Record converts the note to its serializable form.
func (n Note) Record() Record {
	tags := make([]string, len(n.Tags))
	copy(tags, n.Tags)
	return Record{
		ID:      n.ID,
		Title:   n.Title,
		Content: n.Content,
		Tags:    tags,
	}
}

// FromRecord rebuilds a note from its serializable form, keeping the stored ID.
// A record with an empty ID gets a fresh one so that blank IDs never collide.
func FromRecord(r Record) Note {
	return NewNote(r.Title, r.Content, r.Tags, WithID(r.ID))
}

// FromMap rebuilds a note from an untyped mapping (as produced by YAML or
// generic JSON decoding). Every required key must be present.
func FromMap(data map[string]any) (Note, error) {
	for _, key := range requiredKeys {
		if _, ok := data[key]; !ok {
			return Note{}, &MalformedRecordError{Index: -1, Field: key}
		}
	}

	var r Record
	var ok bool
	if data[KeyID] != nil {
		if r.ID, ok = data[KeyID].(string); !ok {
			return Note{}, malformedType(KeyID, data[KeyID])
		}
	}
	if r.Title, ok = data[KeyTitle].(string); !ok {
		return Note{}, malformedType(KeyTitle, data[KeyTitle])
	}
	if r.Content, ok = data[KeyContent].(string); !ok {
		return Note{}, malformedType(KeyContent, data[KeyContent])
	}

	switch tags := data[KeyTags].(type) {
	case nil:
	case []string:
		r.Tags = tags
	case []any:
		for _, item := range tags {
			s, ok := item.(string)
			if !ok {
				return Note{}, malformedType(KeyTags, item)
			}
			r.Tags = append(r.Tags, s)
		}
	default:
		return Note{}, malformedType(KeyTags, tags)
	}

	return FromRecord(r), nil
}

func malformedType(field string, v any) error {
	return &MalformedRecordError{
		Index: -1,
		Field: field,
		Err:   fmt.Errorf("unexpected type %T", v),
	}
}

// MarshalJSON writes the note in its Record form.
func (n Note) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.Record())
}

// UnmarshalJSON decodes a serialized note, failing with a
// *MalformedRecordError when a required key is absent or has the wrong type.
func (n *Note) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return &MalformedRecordError{Index: -1, Err: err}
	}
	for _, key := range requiredKeys {
		if _, ok := fields[key]; !ok {
			return &MalformedRecordError{Index: -1, Field: key}
		}
	}

	var r Record
	for _, key := range requiredKeys {
		var dst any
		switch key {
		case KeyID:
			dst = &r.ID
		case KeyTitle:
			dst = &r.Title
		case KeyContent:
			dst = &r.Content
		case KeyTags:
			dst = &r.Tags
		}
		if err := json.Unmarshal(fields[key], dst); err != nil {
			return &MalformedRecordError{Index: -1, Field: key, Err: err}
		}
	}

	*n = FromRecord(r)
	return nil
}

// Matches reports whether keyword occurs, ignoring case, in the title,
// the content or any tag.
func (n Note) Matches(keyword string) bool {
	k := strings.ToLower(keyword)
	if strings.Contains(strings.ToLower(n.Title), k) ||
		strings.Contains(strings.ToLower(n.Content), k) {
		return true
	}
	for _, tag := range n.Tags {
		if strings.Contains(strings.ToLower(tag), k) {
			return true
		}
	}
	return false
}

// DisplayTitle is the title as shown to the user (uppercased).
// The stored title is left untouched.
func (n Note) DisplayTitle() string {
	return strings.ToUpper(n.Title)
}

// TagLine joins the tags for display.
func (n Note) TagLine() string {
	return strings.Join(n.Tags, ", ")
}

// NormalizeTags trims every tag and drops blank ones.
// The result is never nil.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if t := strings.TrimSpace(tag); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// SplitTags parses a comma-separated tag list as typed by the user.
func SplitTags(s string) []string {
	return NormalizeTags(strings.Split(s, ","))
}
