// Package deberr defines the typed error kinds surfaced by deby operations.
package deberr

import (
	"errors"
	"fmt"
)

// Kind identifies the failure class of an error returned by deby.
type Kind string

const (
	// KindConfigRead indicates the .debyrc file is missing or unreadable.
	KindConfigRead Kind = "config-read"
	// KindDeserialize indicates the .debyrc content does not parse into
	// the expected shape, including enum values outside their allowed set.
	KindDeserialize Kind = "deserialize"
	// KindDebianDir indicates the debian/ directory could not be created.
	KindDebianDir Kind = "debian-dir"
	// KindChangelogOpen indicates debian/changelog could not be opened for writing.
	KindChangelogOpen Kind = "changelog-open"
	// KindChangelogRead indicates an existing debian/changelog could not be read.
	KindChangelogRead Kind = "changelog-read"
	// KindChangelogWrite indicates debian/changelog could not be written.
	KindChangelogWrite Kind = "changelog-write"
	// KindControlOpen indicates debian/control could not be opened for writing.
	KindControlOpen Kind = "control-open"
	// KindControlWrite indicates debian/control could not be written.
	KindControlWrite Kind = "control-write"
	// KindConfigNew wraps any failure while constructing the configuration.
	KindConfigNew Kind = "config-new"
	// KindUpdate wraps any failure inside the top-level update entry points.
	KindUpdate Kind = "update"
)

// Error pairs a Kind with the underlying cause.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New wraps err with the given kind.
func New(kind Kind, err error) error {
	if err == nil {
		err = errors.New(string(kind))
	}
	return &Error{Kind: kind, Err: err}
}

// Newf wraps a formatted message with the given kind.
func Newf(kind Kind, format string, args ...interface{}) error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// IsKind reports whether any error in the chain carries the given kind.
func IsKind(err error, kind Kind) bool {
	for err != nil {
		var e *Error
		if errors.As(err, &e) {
			if e.Kind == kind {
				return true
			}
			err = e.Err
			continue
		}
		return false
	}
	return false
}
