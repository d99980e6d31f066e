// Package catalog stores named URI templates and resolves URIs back
// to the template that produced them.
package catalog

import (
	"errors"
	"time"
)

// Entry is one named template in a catalog.
type Entry struct {
	// ID uniquely identifies this version of the entry. Re-adding a
	// name assigns a fresh ID.
	ID string
	// Name is the unique lookup key, e.g. "user-repos".
	Name string
	// Template is the raw RFC 6570 template text.
	Template string
	// CreatedAt records when the entry was saved, in UTC.
	CreatedAt time.Time
}

// Store persists catalog entries.
// Implementations must be safe for concurrent use.
type Store interface {
	// Save stores an entry, overwriting any previous entry with the
	// same name.
	Save(entry Entry) error

	// Get retrieves an entry by name.
	// Returns ErrNotFound if no entry has the name.
	Get(name string) (Entry, error)

	// List returns all entries ordered by name.
	// Returns an empty slice (not an error) for an empty catalog.
	List() ([]Entry, error)

	// Delete removes an entry by name.
	// Returns nil if the entry doesn't exist.
	Delete(name string) error

	// Close releases any resources (connections, files).
	Close() error
}

// Sentinel errors for catalog operations.
var (
	// ErrNotFound indicates no entry exists under the requested name.
	ErrNotFound = errors.New("template not found")

	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("catalog store closed")

	// ErrEmptyName indicates an entry was given an empty name.
	ErrEmptyName = errors.New("template name is empty")
)
