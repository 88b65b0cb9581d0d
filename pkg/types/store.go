package types

import (
	"errors"
	"iter"
)

// Store is the logical interface shared by the array and linked backends.
// Both preserve insertion order.
type Store interface {
	// Insert appends a copy of r. The array backend returns
	// ErrCapacityExceeded when full and leaves its content unchanged.
	Insert(r Record) error

	// RemoveByName removes the first record whose name equals name.
	// Returns ErrNotFound if no record matches.
	RemoveByName(name string) error

	// List returns a copy of the records in order. Mutating the result
	// never affects the store.
	List() []Record

	// All yields the records in order without copying the backing storage.
	All() iter.Seq[Record]

	// Len returns the number of live records.
	Len() int
}

// Store result errors.
var (
	ErrCapacityExceeded = errors.New("store capacity exceeded")
	ErrNotFound         = errors.New("record not found")
	ErrInvalidCapacity  = errors.New("capacity must be positive")
)

// Record validation errors.
var (
	ErrInvalidName     = errors.New("name must not be empty")
	ErrNameTooLong     = errors.New("name exceeds maximum length")
	ErrInvalidCategory = errors.New("category must not be empty")
	ErrCategoryTooLong = errors.New("category exceeds maximum length")
	ErrInvalidQuantity = errors.New("quantity must not be negative")
	ErrInvalidPriority = errors.New("priority must be between 1 and 10")
)
