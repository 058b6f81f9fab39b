// Package jsonfile implements the record store as one JSON file per entity
// collection. Every mutation rewrites the whole collection file through a
// temp-file rename, so a write either lands completely or not at all. The
// store performs no validation; callers validate before upserting.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/EssonoDev/dgi_reception_app/internal/apperrors"
	"github.com/EssonoDev/dgi_reception_app/internal/core/domain"
)

// Record is the contract every stored entity satisfies.
type Record interface {
	RecordID() string
}

// auditable is satisfied by entities embedding domain.Timestamps.
type auditable interface {
	Audit() *domain.Timestamps
}

// Collection is a flat, insertion-ordered sequence of records persisted as a
// single JSON file. All queries are O(n) scans, which is the intended trade
// at office-scale volumes. A mutex serialises access; there is no conflict
// detection between processes (single-desk deployment, last write wins).
type Collection[T Record] struct {
	mu           sync.Mutex
	path         string
	records      []T
	searchFields func(T) []string
}

// NewCollection loads (or initialises) the collection file dir/name.json.
// searchFields selects the textual fields scanned by Search; nil disables
// substring search for the collection.
func NewCollection[T Record](dir, name string, searchFields func(T) []string) (*Collection[T], error) {
	c := &Collection[T]{
		path:         filepath.Join(dir, name+".json"),
		searchFields: searchFields,
	}
	data, err := os.ReadFile(c.path)
	if errors.Is(err, os.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read collection %s: %w", name, err)
	}
	if err := json.Unmarshal(data, &c.records); err != nil {
		return nil, fmt.Errorf("failed to decode collection %s: %w", name, err)
	}
	return c, nil
}

// Upsert inserts or replaces a record by id and stamps its audit timestamps.
// Idempotent on the id space: a second upsert with the same id replaces the
// first and leaves the collection size unchanged.
func (c *Collection[T]) Upsert(rec T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	idx := c.indexOf(rec.RecordID())

	if a, ok := any(&rec).(auditable); ok {
		if idx >= 0 {
			if prev, ok := any(&c.records[idx]).(auditable); ok {
				a.Audit().CreatedAt = prev.Audit().CreatedAt
			}
		}
		a.Audit().Touch(now)
	}

	next := make([]T, len(c.records), len(c.records)+1)
	copy(next, c.records)
	if idx >= 0 {
		next[idx] = rec
	} else {
		next = append(next, rec)
	}

	if err := c.persist(next); err != nil {
		var zero T
		return zero, err
	}
	c.records = next
	return rec, nil
}

// Get returns a copy of the record, or apperrors.ErrNotFound. Absence is a
// normal condition; callers must check the error rather than assume presence.
func (c *Collection[T]) Get(id string) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := c.indexOf(id)
	if idx < 0 {
		return nil, apperrors.ErrNotFound
	}
	rec := c.records[idx]
	return &rec, nil
}

// List returns all records in insertion order.
func (c *Collection[T]) List() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.records))
	copy(out, c.records)
	return out
}

// Filter returns the records matching the predicate, in insertion order.
func (c *Collection[T]) Filter(keep func(T) bool) []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []T
	for _, rec := range c.records {
		if keep(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// Delete removes a record by id. Deleting an absent id is a no-op, not an
// error.
func (c *Collection[T]) Delete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := c.indexOf(id)
	if idx < 0 {
		return nil
	}
	next := make([]T, 0, len(c.records)-1)
	next = append(next, c.records[:idx]...)
	next = append(next, c.records[idx+1:]...)
	if err := c.persist(next); err != nil {
		return err
	}
	c.records = next
	return nil
}

// Search returns records whose configured textual fields contain the query as
// a case-insensitive substring.
func (c *Collection[T]) Search(query string) []T {
	if c.searchFields == nil || query == "" {
		return nil
	}
	needle := strings.ToLower(query)
	return c.Filter(func(rec T) bool {
		for _, field := range c.searchFields(rec) {
			if strings.Contains(strings.ToLower(field), needle) {
				return true
			}
		}
		return false
	})
}

// Len returns the number of records in the collection.
func (c *Collection[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.records)
}

// indexOf must be called with the mutex held.
func (c *Collection[T]) indexOf(id string) int {
	for i, rec := range c.records {
		if rec.RecordID() == id {
			return i
		}
	}
	return -1
}

// persist writes the whole collection to a temp file and renames it over the
// current one. On failure the in-memory state is left untouched so the caller
// can retry without losing the previous contents.
func (c *Collection[T]) persist(records []T) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode collection: %w", err)
	}
	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write collection file: %w", err)
	}
	if err := os.Rename(tmp, c.path); err != nil {
		return fmt.Errorf("failed to replace collection file: %w", err)
	}
	return nil
}
