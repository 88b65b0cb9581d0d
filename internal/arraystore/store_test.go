package arraystore

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/mesh-intelligence/backpack/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(name string) types.Record {
	return types.Record{Name: name, Category: "misc", Quantity: 1}
}

func names(records []types.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Name
	}
	return out
}

func newStore(t *testing.T, capacity int, initial ...string) *Store {
	t.Helper()
	s, err := New(capacity)
	require.NoError(t, err)
	for _, n := range initial {
		require.NoError(t, s.Insert(rec(n)))
	}
	return s
}

func TestNew(t *testing.T) {
	t.Run("positive capacity", func(t *testing.T) {
		s, err := New(10)
		require.NoError(t, err)
		assert.Equal(t, 10, s.Cap())
		assert.Equal(t, 0, s.Len())
		assert.Empty(t, s.List())
	})

	t.Run("zero capacity rejected", func(t *testing.T) {
		_, err := New(0)
		assert.ErrorIs(t, err, types.ErrInvalidCapacity)
	})

	t.Run("negative capacity rejected", func(t *testing.T) {
		_, err := New(-1)
		assert.ErrorIs(t, err, types.ErrInvalidCapacity)
	})
}

func TestInsert(t *testing.T) {
	t.Run("appends in order", func(t *testing.T) {
		s := newStore(t, 5, "b", "a", "c")
		assert.Equal(t, []string{"b", "a", "c"}, names(s.List()))
		assert.Equal(t, 3, s.Len())
	})

	t.Run("full store rejects insert and keeps content", func(t *testing.T) {
		s := newStore(t, 2, "x", "y")
		assert.True(t, s.Full())

		err := s.Insert(rec("z"))
		assert.ErrorIs(t, err, types.ErrCapacityExceeded)
		assert.Equal(t, []string{"x", "y"}, names(s.List()))
		assert.Equal(t, 2, s.Len())
	})

	t.Run("record is copied on insert", func(t *testing.T) {
		s := newStore(t, 2)
		r := rec("knife")
		require.NoError(t, s.Insert(r))
		r.Quantity = 99
		assert.Equal(t, 1, s.List()[0].Quantity)
	})
}

func TestRemoveByName(t *testing.T) {
	tests := []struct {
		name    string
		initial []string
		remove  string
		want    []string
		wantErr error
	}{
		{name: "remove head", initial: []string{"a", "b", "c"}, remove: "a", want: []string{"b", "c"}},
		{name: "remove middle", initial: []string{"a", "b", "c"}, remove: "b", want: []string{"a", "c"}},
		{name: "remove tail", initial: []string{"a", "b", "c"}, remove: "c", want: []string{"a", "b"}},
		{name: "remove only", initial: []string{"a"}, remove: "a", want: []string{}},
		{name: "first duplicate removed", initial: []string{"a", "d", "b", "d"}, remove: "d", want: []string{"a", "b", "d"}},
		{name: "missing name", initial: []string{"a", "b"}, remove: "z", want: []string{"a", "b"}, wantErr: types.ErrNotFound},
		{name: "empty store", initial: nil, remove: "a", want: []string{}, wantErr: types.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStore(t, 10, tt.initial...)
			err := s.RemoveByName(tt.remove)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, names(s.List()))
			assert.Equal(t, len(tt.want), s.Len())
		})
	}
}

func TestInsertThenRemoveRestoresContent(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	for round := 0; round < 50; round++ {
		capacity := 2 + r.IntN(18)
		size := r.IntN(capacity)
		s, err := New(capacity)
		require.NoError(t, err)
		for i := 0; i < size; i++ {
			require.NoError(t, s.Insert(rec(fmt.Sprintf("item-%d", i))))
		}
		before := s.List()

		require.NoError(t, s.Insert(rec("probe")))
		require.NoError(t, s.RemoveByName("probe"))

		assert.Equal(t, before, s.List(), "round %d", round)
		assert.Equal(t, size, s.Len())
	}
}

func TestListIsSnapshot(t *testing.T) {
	s := newStore(t, 3, "a", "b")
	got := s.List()
	got[0].Name = "mutated"
	assert.Equal(t, []string{"a", "b"}, names(s.List()))
}

func TestAll(t *testing.T) {
	s := newStore(t, 4, "a", "b", "c")
	assert.Equal(t, []string{"a", "b", "c"}, names(slices.Collect(s.All())))

	var first []string
	for r := range s.All() {
		first = append(first, r.Name)
		break
	}
	assert.Equal(t, []string{"a"}, first)
}

func TestReplace(t *testing.T) {
	t.Run("shrinks content", func(t *testing.T) {
		s := newStore(t, 4, "c", "b", "a")
		require.NoError(t, s.Replace([]types.Record{rec("a")}))
		assert.Equal(t, []string{"a"}, names(s.List()))
	})

	t.Run("grows content", func(t *testing.T) {
		s := newStore(t, 4, "c")
		require.NoError(t, s.Replace([]types.Record{rec("a"), rec("b"), rec("c")}))
		assert.Equal(t, []string{"a", "b", "c"}, names(s.List()))
	})

	t.Run("oversized input rejected", func(t *testing.T) {
		s := newStore(t, 2, "a")
		err := s.Replace([]types.Record{rec("a"), rec("b"), rec("c")})
		assert.ErrorIs(t, err, types.ErrCapacityExceeded)
		assert.Equal(t, []string{"a"}, names(s.List()))
	})
}
