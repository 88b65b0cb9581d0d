// Package arraystore implements the bounded contiguous record store.
// Records occupy slots [0, Len()) of a buffer allocated once at construction;
// removal compacts the buffer so live records stay contiguous and ordered.
package arraystore

import (
	"fmt"
	"iter"
	"slices"

	"github.com/mesh-intelligence/backpack/pkg/types"
)

// Compile-time interface check: Store must implement types.Store.
var _ types.Store = (*Store)(nil)

// Store is a fixed-capacity, order-preserving record container.
// The zero value is not usable; call New.
type Store struct {
	items []types.Record // len(items) == capacity
	count int
}

// New creates an empty store holding at most capacity records.
// Returns ErrInvalidCapacity if capacity is not positive.
func New(capacity int) (*Store, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("array store capacity %d: %w", capacity, types.ErrInvalidCapacity)
	}
	return &Store{items: make([]types.Record, capacity)}, nil
}

// Cap returns the maximum number of records the store can hold.
func (s *Store) Cap() int {
	return len(s.items)
}

// Len returns the number of live records.
func (s *Store) Len() int {
	return s.count
}

// Full reports whether another Insert would fail.
func (s *Store) Full() bool {
	return s.count == len(s.items)
}

// Insert copies r into the first free slot.
// Returns ErrCapacityExceeded when the store is full; existing records are
// left untouched.
func (s *Store) Insert(r types.Record) error {
	if s.Full() {
		return types.ErrCapacityExceeded
	}
	s.items[s.count] = r
	s.count++
	return nil
}

// RemoveByName removes the first record named name, scanning from the front,
// and shifts every later record left by one slot.
// Returns ErrNotFound if no record matches.
func (s *Store) RemoveByName(name string) error {
	i := s.indexOf(name)
	if i < 0 {
		return types.ErrNotFound
	}
	copy(s.items[i:], s.items[i+1:s.count])
	s.count--
	s.items[s.count] = types.Record{}
	return nil
}

// List returns a copy of the live records in order.
func (s *Store) List() []types.Record {
	return slices.Clone(s.items[:s.count])
}

// All yields the live records in order.
func (s *Store) All() iter.Seq[types.Record] {
	return func(yield func(types.Record) bool) {
		for _, r := range s.items[:s.count] {
			if !yield(r) {
				return
			}
		}
	}
}

// Replace overwrites the store content with records, in order. It is used to
// copy a sorted snapshot back into the store.
// Returns ErrCapacityExceeded, leaving the store unchanged, if records does
// not fit.
func (s *Store) Replace(records []types.Record) error {
	if len(records) > len(s.items) {
		return types.ErrCapacityExceeded
	}
	n := copy(s.items, records)
	if n < s.count {
		clear(s.items[n:s.count])
	}
	s.count = n
	return nil
}

// indexOf returns the position of the first record named name, or -1.
// This lookup is not instrumented.
func (s *Store) indexOf(name string) int {
	for i := 0; i < s.count; i++ {
		if s.items[i].Name == name {
			return i
		}
	}
	return -1
}
