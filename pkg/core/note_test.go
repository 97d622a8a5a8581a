package core

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNote(t *testing.T) {
	t.Run("Generates ID", func(t *testing.T) {
		n := NewNote("Title", "Some content", []string{"tag1", "tag2"})
		assert.Equal(t, "Title", n.Title)
		assert.Equal(t, "Some content", n.Content)
		assert.Equal(t, []string{"tag1", "tag2"}, n.Tags)
		assert.Len(t, n.ID, IDLength)
	})

	t.Run("Keeps Explicit ID", func(t *testing.T) {
		n := NewNote("T", "C", nil, WithID("abcd1234"))
		assert.Equal(t, "abcd1234", n.ID)
	})

	t.Run("Nil Tags Become Empty", func(t *testing.T) {
		n := NewNote("T", "C", nil)
		require.NotNil(t, n.Tags)
		assert.Empty(t, n.Tags)
	})

	t.Run("Drops Blank Tags", func(t *testing.T) {
		n := NewNote("T", "C", []string{" a ", "", "   ", "b"})
		assert.Equal(t, []string{"a", "b"}, n.Tags)
	})

	t.Run("IDs Differ", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			id := NewID()
			assert.False(t, seen[id], "duplicate id %s", id)
			seen[id] = true
		}
	})
}

func TestRecordRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		content string
		tags    []string
	}{
		{"Simple", "Test", "Body", []string{"tag"}},
		{"No Tags", "Empty", "", nil},
		{"Multiline Unicode", "Заметка", "строка 1\nстрока 2", []string{"личное", "work"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNote(tt.title, tt.content, tt.tags)
			restored := FromRecord(n.Record())
			assert.Equal(t, n, restored)

			data, err := json.Marshal(n)
			require.NoError(t, err)
			var decoded Note
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, n, decoded)
		})
	}
}

func TestRecordCopiesTags(t *testing.T) {
	n := NewNote("T", "C", []string{"a"})
	r := n.Record()
	r.Tags[0] = "changed"
	assert.Equal(t, "a", n.Tags[0])
}

func TestUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantField string
		wantErr   bool
	}{
		{"Complete", `{"id":"12345678","title":"T","content":"C","tags":["x"]}`, "", false},
		{"Null Tags", `{"id":"12345678","title":"T","content":"C","tags":null}`, "", false},
		{"Missing ID", `{"title":"T","content":"C","tags":[]}`, KeyID, true},
		{"Missing Title", `{"id":"1","content":"C","tags":[]}`, KeyTitle, true},
		{"Missing Content", `{"id":"1","title":"T","tags":[]}`, KeyContent, true},
		{"Missing Tags", `{"id":"1","title":"T","content":"C"}`, KeyTags, true},
		{"Wrong Tag Type", `{"id":"1","title":"T","content":"C","tags":"x"}`, KeyTags, true},
		{"Not An Object", `[1,2]`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n Note
			err := json.Unmarshal([]byte(tt.input), &n)
			if !tt.wantErr {
				require.NoError(t, err)
				assert.NotNil(t, n.Tags)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedRecord))
			var mre *MalformedRecordError
			require.True(t, errors.As(err, &mre))
			assert.Equal(t, tt.wantField, mre.Field)
		})
	}

	t.Run("Stored Tags Normalized", func(t *testing.T) {
		var n Note
		require.NoError(t, json.Unmarshal([]byte(`{"id":"1","title":" T ","content":"C","tags":[" padded ","  ","x"]}`), &n))
		assert.Equal(t, []string{"padded", "x"}, n.Tags)
		assert.Equal(t, " T ", n.Title)
	})

	t.Run("Blank IDs Replaced", func(t *testing.T) {
		for _, input := range []string{
			`{"id":null,"title":"T","content":"C","tags":[]}`,
			`{"id":"","title":"T","content":"C","tags":[]}`,
		} {
			var n Note
			require.NoError(t, json.Unmarshal([]byte(input), &n))
			assert.Len(t, n.ID, IDLength)
			assert.Equal(t, "T", n.Title)
		}
	})
}

func TestFromMap(t *testing.T) {
	t.Run("Accepts Generic Slices", func(t *testing.T) {
		n, err := FromMap(map[string]any{
			"id": "abc", "title": "T", "content": "C", "tags": []any{"a", "b"},
		})
		require.NoError(t, err)
		assert.Equal(t, Note{ID: "abc", Title: "T", Content: "C", Tags: []string{"a", "b"}}, n)
	})

	t.Run("Fails On Missing Key", func(t *testing.T) {
		_, err := FromMap(map[string]any{"id": "abc", "title": "T", "tags": []any{}})
		var mre *MalformedRecordError
		require.True(t, errors.As(err, &mre))
		assert.Equal(t, KeyContent, mre.Field)
	})

	t.Run("Null ID Gets Fresh ID", func(t *testing.T) {
		n, err := FromMap(map[string]any{"id": nil, "title": "T", "content": "C", "tags": nil})
		require.NoError(t, err)
		assert.Len(t, n.ID, IDLength)
	})

	t.Run("Fails On Wrong Type", func(t *testing.T) {
		_, err := FromMap(map[string]any{"id": 7, "title": "T", "content": "C", "tags": nil})
		assert.ErrorIs(t, err, ErrMalformedRecord)
	})
}

func TestMatches(t *testing.T) {
	n := NewNote("Shopping list", "Buy milk and eggs", []string{"Groceries"})

	assert.True(t, n.Matches("milk"))
	assert.True(t, n.Matches("SHOPPING"))
	assert.True(t, n.Matches("grocer"))
	assert.False(t, n.Matches("xyz"))
}

func TestDisplay(t *testing.T) {
	n := NewNote("Hello", "body", []string{"a", "b"})
	assert.Equal(t, "HELLO", n.DisplayTitle())
	assert.Equal(t, "Hello", n.Title)
	assert.Equal(t, "a, b", n.TagLine())
}

func TestSplitTags(t *testing.T) {
	assert.Equal(t, []string{"a", "b c", "d"}, SplitTags(" a, b c ,, d ,"))
	assert.Equal(t, []string{}, SplitTags(""))
	assert.Equal(t, []string{}, SplitTags(" , "))
}
