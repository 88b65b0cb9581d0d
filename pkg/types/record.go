package types

// Record field bounds.
const (
	MaxNameLen     = 30
	MaxCategoryLen = 20
	MinPriority    = 1
	MaxPriority    = 10
)

// NoPriority marks a record without a priority. Records without a priority
// sort after every prioritized record.
const NoPriority = 0

// Record is one inventory entry. Records are values: stores copy them on
// insertion and sorts copy them on swap.
type Record struct {
	Name     string `json:"name" yaml:"name"`                             // Identity for removal and search.
	Category string `json:"category" yaml:"category"`                     // Free-form kind, e.g. "weapon", "ammo", "heal".
	Quantity int    `json:"quantity" yaml:"quantity"`                     // Non-negative count.
	Priority int    `json:"priority,omitempty" yaml:"priority,omitempty"` // 1 (most urgent) to 10, or NoPriority.
}

// HasPriority reports whether the record carries a priority.
func (r Record) HasPriority() bool {
	return r.Priority != NoPriority
}

// PriorityKey returns the numeric key used for priority ordering.
// Unprioritized records map to MaxPriority+1.
func (r Record) PriorityKey() int {
	if !r.HasPriority() {
		return MaxPriority + 1
	}
	return r.Priority
}

// Validate checks the record against the field bounds. The engine itself
// never calls Validate; it is applied by callers before records reach a store.
func (r Record) Validate() error {
	if r.Name == "" {
		return ErrInvalidName
	}
	if len(r.Name) > MaxNameLen {
		return ErrNameTooLong
	}
	if r.Category == "" {
		return ErrInvalidCategory
	}
	if len(r.Category) > MaxCategoryLen {
		return ErrCategoryTooLong
	}
	if r.Quantity < 0 {
		return ErrInvalidQuantity
	}
	if r.HasPriority() && (r.Priority < MinPriority || r.Priority > MaxPriority) {
		return ErrInvalidPriority
	}
	return nil
}
