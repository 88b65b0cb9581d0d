// Package search provides comparison-counted record lookup by name.
package search

import (
	"iter"
	"slices"
	"strings"

	"github.com/mesh-intelligence/backpack/pkg/types"
)

// NotFound is the Index reported when no record matches.
const NotFound = -1

// Result is the outcome of one search.
type Result struct {
	Index       int  // Position of the match in the searched sequence, or NotFound.
	Found       bool // Whether a record with the target name exists.
	Comparisons int  // Name comparisons performed.
}

// Linear scans records in order and stops at the first record named name.
// Every record examined counts as one comparison, including the match.
// records may come from either store.
func Linear(records iter.Seq[types.Record], name string) Result {
	res := Result{Index: NotFound}
	i := 0
	for r := range records {
		res.Comparisons++
		if r.Name == name {
			res.Index = i
			res.Found = true
			return res
		}
		i++
	}
	return res
}

// LinearSlice runs Linear over a slice.
func LinearSlice(records []types.Record, name string) Result {
	return Linear(slices.Values(records), name)
}

// Binary performs a halving search for name over records, which must be
// sorted ascending by name. Sortedness is not checked; unsorted input gives
// unspecified results. Each iteration of the halving loop counts as one
// comparison.
func Binary(sorted []types.Record, name string) Result {
	res := Result{Index: NotFound}
	lo, hi := 0, len(sorted)-1
	for lo <= hi {
		res.Comparisons++
		mid := lo + (hi-lo)/2
		switch c := strings.Compare(sorted[mid].Name, name); {
		case c == 0:
			res.Index = mid
			res.Found = true
			return res
		case c < 0:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return res
}
