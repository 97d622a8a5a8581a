package core

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrPersistence     = errors.New("persistence failure")
	ErrMalformedRecord = errors.New("malformed note record")
)

// PersistenceError reports a notes file that could not be read, parsed or
// written.
type PersistenceError struct {
	Op   string // "load" or "save"
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrPersistence) match any PersistenceError.
func (e *PersistenceError) Is(target error) bool { return target == ErrPersistence }

// MalformedRecordError reports a stored note that lacks a required field or
// carries a value of the wrong type.
type MalformedRecordError struct {
	Index int    // position in the file, -1 when unknown
	Field string // offending key, empty when the record itself is unreadable
	Err   error
}

func (e *MalformedRecordError) Error() string {
	msg := "malformed note record"
	if e.Index >= 0 {
		msg = fmt.Sprintf("%s #%d", msg, e.Index)
	}
	switch {
	case e.Field != "" && e.Err != nil:
		return fmt.Sprintf("%s: field %q: %v", msg, e.Field, e.Err)
	case e.Field != "":
		return fmt.Sprintf("%s: missing field %q", msg, e.Field)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *MalformedRecordError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrMalformedRecord) match any MalformedRecordError.
func (e *MalformedRecordError) Is(target error) bool { return target == ErrMalformedRecord }
