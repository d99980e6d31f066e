package catalog

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/randalmurphal/uritemplate/pkg/uritemplate"
)

// Catalog resolves names to templates for expansion and URIs back to
// the entry that produced them. All state lives in the Store, so a
// Catalog is safe for concurrent use whenever its store is.
type Catalog struct {
	store Store
}

// New creates a catalog backed by store. The caller retains ownership
// of the store and is responsible for closing it.
func New(store Store) *Catalog {
	return &Catalog{store: store}
}

// Add validates the template, assigns it a fresh ID, and saves it
// under name. An existing entry with the same name is replaced.
func (c *Catalog) Add(name, template string) (Entry, error) {
	if name == "" {
		return Entry{}, ErrEmptyName
	}
	if err := uritemplate.New(template).Validate(); err != nil {
		return Entry{}, fmt.Errorf("template %q: %w", name, err)
	}

	entry := Entry{
		ID:        uuid.New().String(),
		Name:      name,
		Template:  template,
		CreatedAt: time.Now().UTC(),
	}
	if err := c.store.Save(entry); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

// Get retrieves an entry by name.
// Returns ErrNotFound if no entry has the name.
func (c *Catalog) Get(name string) (Entry, error) {
	return c.store.Get(name)
}

// List returns all entries ordered by name.
func (c *Catalog) List() ([]Entry, error) {
	return c.store.List()
}

// Remove deletes an entry by name. Removing an unknown name is not
// an error.
func (c *Catalog) Remove(name string) error {
	return c.store.Delete(name)
}

// Expand renders the named template against vars.
func (c *Catalog) Expand(name string, vars uritemplate.Values) (string, error) {
	entry, err := c.store.Get(name)
	if err != nil {
		return "", err
	}
	return uritemplate.New(entry.Template).Expand(vars)
}

// Match pairs a catalog entry with the variables extracted from a URI.
type Match struct {
	Entry     Entry
	Variables map[string]string
}

// Match finds the first entry, in name order, whose template matches
// uri and returns it together with the extracted variables.
// Returns uritemplate.ErrNoMatch when no entry matches.
func (c *Catalog) Match(uri string) (Match, error) {
	entries, err := c.store.List()
	if err != nil {
		return Match{}, err
	}

	for _, entry := range entries {
		vars, err := uritemplate.New(entry.Template).Extract(uri)
		if errors.Is(err, uritemplate.ErrNoMatch) {
			continue
		}
		if err != nil {
			return Match{}, fmt.Errorf("match against %q: %w", entry.Name, err)
		}
		return Match{Entry: entry, Variables: vars}, nil
	}
	return Match{}, uritemplate.ErrNoMatch
}
