package bench

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/backpack/pkg/types"
)

// Target names a store kind the harness can measure.
type Target string

// Supported targets.
const (
	TargetArray  Target = "array"
	TargetLinked Target = "linked"
)

// AllTargets lists every target in report order.
var AllTargets = []Target{TargetArray, TargetLinked}

// Algorithm names the operation measured by a run.
type Algorithm string

// Supported algorithms.
const (
	LinearSearch  Algorithm = "linear"
	BinarySearch  Algorithm = "binary"
	ExchangeSort  Algorithm = "exchange"
	InsertionSort Algorithm = "insertion"
	SelectionSort Algorithm = "selection"
)

// Algorithms lists every supported algorithm.
var Algorithms = []Algorithm{LinearSearch, BinarySearch, ExchangeSort, InsertionSort, SelectionSort}

// IsSearch reports whether a is a search and therefore needs a target name.
func (a Algorithm) IsSearch() bool {
	return a == LinearSearch || a == BinarySearch
}

func (a Algorithm) valid() bool {
	for _, known := range Algorithms {
		if a == known {
			return true
		}
	}
	return false
}

// Request errors. These report caller misuse; an empty store is a skipped
// outcome, not an error.
var (
	ErrNoTargets        = errors.New("at least one target is required")
	ErrUnknownTarget    = errors.New("unknown target")
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
	ErrMissingName      = errors.New("search requires a target name")
)

// Request describes one benchmark run.
type Request struct {
	Targets   []Target
	Algorithm Algorithm
	Trials    int
	Name      string // Search target; ignored by sorts.
}

// Validate checks the request before any measurement starts.
func (r Request) Validate() error {
	if r.Trials <= 0 {
		return fmt.Errorf("%d trials: %w", r.Trials, types.ErrInvalidTrials)
	}
	if len(r.Targets) == 0 {
		return ErrNoTargets
	}
	for _, t := range r.Targets {
		if t != TargetArray && t != TargetLinked {
			return fmt.Errorf("%q: %w", t, ErrUnknownTarget)
		}
	}
	if !r.Algorithm.valid() {
		return fmt.Errorf("%q: %w", r.Algorithm, ErrUnknownAlgorithm)
	}
	if r.Algorithm.IsSearch() && r.Name == "" {
		return ErrMissingName
	}
	return nil
}

// ParseTargets converts a target selector into targets. "both" selects
// every target; "list" is accepted as an alias for "linked".
func ParseTargets(s string) ([]Target, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "array":
		return []Target{TargetArray}, nil
	case "linked", "list":
		return []Target{TargetLinked}, nil
	case "both", "all":
		return append([]Target(nil), AllTargets...), nil
	default:
		return nil, fmt.Errorf("%q: %w", s, ErrUnknownTarget)
	}
}

// ParseAlgorithm converts an algorithm name into an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	a := Algorithm(strings.ToLower(strings.TrimSpace(s)))
	if !a.valid() {
		return "", fmt.Errorf("%q: %w", s, ErrUnknownAlgorithm)
	}
	return a, nil
}
