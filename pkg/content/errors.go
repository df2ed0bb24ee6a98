// Package content models the documentation hierarchy and its immutable snapshot store
package content

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates no entity matches the requested path or id
	ErrNotFound = errors.New("content: not found")

	// ErrIntegrity indicates a snapshot failed invariant validation
	ErrIntegrity = errors.New("content: integrity violation")
)

// IntegrityError describes a single invariant violation found while
// constructing a snapshot. It is fatal to snapshot publication.
type IntegrityError struct {
	Kind   string // entity kind: section, category, group, article
	ID     string // offending entity id, may be empty for scope-level checks
	Detail string
}

func (e *IntegrityError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("content: integrity violation: %s: %s", e.Kind, e.Detail)
	}
	return fmt.Sprintf("content: integrity violation: %s %q: %s", e.Kind, e.ID, e.Detail)
}

func (e *IntegrityError) Unwrap() error { return ErrIntegrity }

func integrityErr(kind, id, format string, args ...interface{}) *IntegrityError {
	return &IntegrityError{Kind: kind, ID: id, Detail: fmt.Sprintf(format, args...)}
}
