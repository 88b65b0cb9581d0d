package linkedstore

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

// walkChain follows next links from the head and fails the test if the walk
// takes more steps than there are arena slots, which would mean a cycle.
func walkChain(t *testing.T, s *Store) int {
	t.Helper()
	steps := 0
	for cur := s.head; cur != end; cur = s.arena[cur.slot()].next {
		require.True(t, s.arena[cur.slot()].live, "chain reaches released slot %d", cur.slot())
		steps++
		require.LessOrEqual(t, steps, len(s.arena), "chain does not terminate")
	}
	return steps
}

func liveSlots(s *Store) int {
	n := 0
	for _, nd := range s.arena {
		if nd.live {
			n++
		}
	}
	return n
}

func TestZeroValueIsEmpty(t *testing.T) {
	var s Store
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.List())
	assert.ErrorIs(t, s.RemoveByName("a"), types.ErrNotFound)
}

func TestInsertPreservesOrder(t *testing.T) {
	s := New()
	for _, n := range []string{"b", "a", "c"} {
		require.NoError(t, s.Insert(rec(n)))
	}
	assert.Equal(t, []string{"b", "a", "c"}, names(s.List()))
	assert.Equal(t, 3, s.Len())
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
		{name: "first duplicate removed", initial: []string{"d", "a", "d"}, remove: "d", want: []string{"a", "d"}},
		{name: "missing name", initial: []string{"a"}, remove: "z", want: []string{"a"}, wantErr: types.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			for _, n := range tt.initial {
				require.NoError(t, s.Insert(rec(n)))
			}
			err := s.RemoveByName(tt.remove)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, 0, s.Released())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, s.Released())
			}
			assert.Equal(t, tt.want, names(s.List()))
			assert.Equal(t, len(tt.want), walkChain(t, s))
		})
	}
}

func TestAppendAfterTailRemoval(t *testing.T) {
	s := New()
	require.NoError(t, s.Insert(rec("a")))
	require.NoError(t, s.Insert(rec("b")))
	require.NoError(t, s.RemoveByName("b"))
	require.NoError(t, s.Insert(rec("c")))
	assert.Equal(t, []string{"a", "c"}, names(s.List()))
}

func TestReleasedSlotsAreReused(t *testing.T) {
	s := New()
	require.NoError(t, s.Insert(rec("a")))
	require.NoError(t, s.Insert(rec("b")))
	require.NoError(t, s.RemoveByName("a"))
	require.NoError(t, s.Insert(rec("c")))

	assert.Len(t, s.arena, 2)
	assert.Equal(t, []string{"b", "c"}, names(s.List()))
}

func TestReleaseRejectsDoubleRelease(t *testing.T) {
	s := New()
	require.NoError(t, s.Insert(rec("a")))
	require.NoError(t, s.Insert(rec("b")))
	head := s.head
	require.NoError(t, s.RemoveByName("a"))

	assert.PanicsWithValue(t, "linkedstore: slot 0 released twice", func() { s.release(head) })
	assert.Len(t, s.free, 1, "failed release must not touch the free list")
	assert.Equal(t, 1, s.released)
	assert.Equal(t, []string{"b"}, names(s.List()))
}

func TestChainInvariantUnderRandomOperations(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 5))
	s := New()
	var model []string

	for step := 0; step < 2000; step++ {
		if len(model) == 0 || r.IntN(3) != 0 {
			name := fmt.Sprintf("n%d", r.IntN(40))
			require.NoError(t, s.Insert(rec(name)))
			model = append(model, name)
		} else {
			name := model[r.IntN(len(model))]
			require.NoError(t, s.RemoveByName(name))
			i := slices.Index(model, name)
			model = slices.Delete(model, i, i+1)
		}

		require.Equal(t, len(model), s.Len())
		require.Equal(t, s.Len(), walkChain(t, s))
		require.Equal(t, s.Len(), liveSlots(s))
	}
	assert.Equal(t, model, names(s.List()))
}

func TestInsertRemoveTeardownScenario(t *testing.T) {
	s := New()
	require.NoError(t, s.Insert(rec("x")))
	require.NoError(t, s.Insert(rec("y")))
	require.NoError(t, s.RemoveByName("x"))
	assert.Equal(t, []string{"y"}, names(s.List()))

	s.Teardown()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.List())
	assert.Equal(t, 2, s.Released())

	s.Teardown()
	assert.Equal(t, 2, s.Released(), "second teardown must not release again")
}

func TestTeardownReleasesEveryNode(t *testing.T) {
	s := New()
	for i := 0; i < 25; i++ {
		require.NoError(t, s.Insert(rec(fmt.Sprintf("n%d", i))))
	}
	s.Teardown()
	assert.Equal(t, 25, s.Released())
	assert.Nil(t, s.arena)

	require.NoError(t, s.Insert(rec("again")))
	assert.Equal(t, []string{"again"}, names(s.List()))
}

func TestAllStopsEarly(t *testing.T) {
	s := New()
	for _, n := range []string{"a", "b", "c"} {
		require.NoError(t, s.Insert(rec(n)))
	}
	var seen []string
	for r := range s.All() {
		seen = append(seen, r.Name)
		if r.Name == "b" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, seen)
}
