// Package sorting provides the three comparison-counted in-place sorts.
//
// Each sort is bound to one record field and returns the number of key
// comparisons it performed. Callers pass a mutable copy of the store
// content; the sorts never touch a store directly.
package sorting

import "github.com/mesh-intelligence/backpack/pkg/types"

// Func is the shape shared by every sort in this package.
type Func func(records []types.Record) int

// ExchangeByName sorts records ascending by name using adjacent exchanges.
// Names compare byte-wise; equal names are never swapped. A pass that swaps
// nothing ends the sort.
func ExchangeByName(records []types.Record) int {
	comparisons := 0
	for last := len(records) - 1; last > 0; last-- {
		swapped := false
		for i := 0; i < last; i++ {
			comparisons++
			if records[i].Name > records[i+1].Name {
				records[i], records[i+1] = records[i+1], records[i]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
	return comparisons
}

// InsertionByCategory sorts records ascending by category. Each element is
// shifted left past every sorted element whose category is strictly
// greater; every probe counts, including the one that stops the shift.
// The sort is stable.
func InsertionByCategory(records []types.Record) int {
	comparisons := 0
	for i := 1; i < len(records); i++ {
		cur := records[i]
		j := i - 1
		for j >= 0 {
			comparisons++
			if records[j].Category <= cur.Category {
				break
			}
			records[j+1] = records[j]
			j--
		}
		records[j+1] = cur
	}
	return comparisons
}

// SelectionByPriority sorts records ascending by priority key, most urgent
// first. Records without a priority go last. Each candidate examined while
// scanning for the minimum counts as one comparison.
func SelectionByPriority(records []types.Record) int {
	comparisons := 0
	for i := 0; i < len(records)-1; i++ {
		minIdx := i
		for j := i + 1; j < len(records); j++ {
			comparisons++
			if records[j].PriorityKey() < records[minIdx].PriorityKey() {
				minIdx = j
			}
		}
		if minIdx != i {
			records[i], records[minIdx] = records[minIdx], records[i]
		}
	}
	return comparisons
}
