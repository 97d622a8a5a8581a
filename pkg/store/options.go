package store

import (
	"log/slog"
	"os"

	"github.com/aretw0/notes/pkg/core"
)

// DefaultPerm is the file mode used when writing the notes file.
const DefaultPerm os.FileMode = 0644

// options holds the internal configuration for a Store.
type options struct {
	logger *slog.Logger
	perm   os.FileMode
	newID  func() string
}

// Option defines a functional option for configuring a Store.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		logger: slog.New(slog.DiscardHandler),
		perm:   DefaultPerm,
		newID:  core.NewID,
	}
}

// WithLogger sets the logger for the store.
// A nil logger keeps the default, which discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithPerm sets the permissions of the notes file.
func WithPerm(perm os.FileMode) Option {
	return func(o *options) {
		o.perm = perm
	}
}

// WithIDGenerator replaces the random ID source used by Create.
// Useful for deterministic tests.
func WithIDGenerator(fn func() string) Option {
	return func(o *options) {
		if fn != nil {
			o.newID = fn
		}
	}
}
