// Package linkedstore implements the unbounded singly linked record store.
//
// Nodes live in an arena owned by the Store and refer to their successor by
// slot. Each node is reachable from exactly one link (the head or its
// predecessor's next), so removal and teardown release every node exactly
// once. Released slots are recycled by later inserts.
package linkedstore

import (
	"fmt"
	"iter"

	"github.com/mesh-intelligence/backpack/pkg/types"
)

// Compile-time interface check: Store must implement types.Store.
var _ types.Store = (*Store)(nil)

// link refers to an arena slot, offset by one so the zero value ends a chain.
type link int

const end link = 0

func linkTo(slot int) link { return link(slot + 1) }

func (l link) slot() int { return int(l) - 1 }

type node struct {
	rec  types.Record
	next link
	live bool
}

// Store is an order-preserving singly linked record container.
// The zero value is an empty store ready for use.
type Store struct {
	arena    []node
	free     []int // released slots available for reuse
	head     link
	tail     link
	count    int
	released int
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// Len returns the number of live nodes.
func (s *Store) Len() int {
	return s.count
}

// Released returns the number of node releases performed over the store's
// lifetime, by RemoveByName and Teardown.
func (s *Store) Released() int {
	return s.released
}

// Insert appends a copy of r at the tail. It never returns an error; the
// error result satisfies types.Store. The node is linked only after it is
// fully written.
func (s *Store) Insert(r types.Record) error {
	n := s.alloc()
	s.arena[n.slot()] = node{rec: r, live: true}
	if s.tail == end {
		s.head = n
	} else {
		s.arena[s.tail.slot()].next = n
	}
	s.tail = n
	s.count++
	return nil
}

// RemoveByName unlinks and releases the first node named name.
// Returns ErrNotFound if no node matches.
func (s *Store) RemoveByName(name string) error {
	prev := end
	for cur := s.head; cur != end; prev, cur = cur, s.arena[cur.slot()].next {
		if s.arena[cur.slot()].rec.Name != name {
			continue
		}
		next := s.arena[cur.slot()].next
		if prev == end {
			s.head = next
		} else {
			s.arena[prev.slot()].next = next
		}
		if s.tail == cur {
			s.tail = prev
		}
		s.release(cur)
		s.count--
		return nil
	}
	return types.ErrNotFound
}

// List returns a copy of the records in chain order.
func (s *Store) List() []types.Record {
	out := make([]types.Record, 0, s.count)
	for r := range s.All() {
		out = append(out, r)
	}
	return out
}

// All yields the records in chain order.
func (s *Store) All() iter.Seq[types.Record] {
	return func(yield func(types.Record) bool) {
		for cur := s.head; cur != end; cur = s.arena[cur.slot()].next {
			if !yield(s.arena[cur.slot()].rec) {
				return
			}
		}
	}
}

// Teardown walks the chain releasing every node, then drops the arena.
// Calling Teardown on an empty store does nothing.
func (s *Store) Teardown() {
	cur := s.head
	for cur != end {
		next := s.arena[cur.slot()].next
		s.release(cur)
		cur = next
	}
	s.arena = nil
	s.free = nil
	s.head = end
	s.tail = end
	s.count = 0
}

func (s *Store) alloc() link {
	if n := len(s.free); n > 0 {
		slot := s.free[n-1]
		s.free = s.free[:n-1]
		return linkTo(slot)
	}
	s.arena = append(s.arena, node{})
	return linkTo(len(s.arena) - 1)
}

// release returns a live node's slot to the free list. Releasing a slot
// twice would hand it out to two records, so it panics instead.
func (s *Store) release(l link) {
	if !s.arena[l.slot()].live {
		panic(fmt.Sprintf("linkedstore: slot %d released twice", l.slot()))
	}
	s.arena[l.slot()] = node{}
	s.free = append(s.free, l.slot())
	s.released++
}
