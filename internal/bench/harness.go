// Package bench runs repeated trials of a search or sort against the
// registered stores and aggregates comparison counts and elapsed time.
//
// Each target is measured synchronously: inputs are prepared before the
// clock starts and the clock stops after the last trial. Sorts run in
// batches of at most sortBatch trials with the input copies refreshed
// between batches, off the clock. Nothing inside the timed region logs or
// allocates per-trial input.
package bench

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/backpack/internal/search"
	"github.com/mesh-intelligence/backpack/internal/sorting"
	"github.com/mesh-intelligence/backpack/pkg/types"
)

// Outcome distinguishes measured targets from skipped ones.
type Outcome string

// Target outcomes.
const (
	OutcomeMeasured Outcome = "measured"
	OutcomeSkipped  Outcome = "skipped"
)

// Skip reasons reported in Result.SkipReason.
const (
	SkipNoStore       = "no store registered for target"
	SkipEmptyStore    = "store is empty"
	SkipNotContiguous = "binary search requires contiguous storage"
)

// Result aggregates one target's batch.
type Result struct {
	Target     Target    `json:"target"`
	Algorithm  Algorithm `json:"algorithm"`
	Outcome    Outcome   `json:"outcome"`
	SkipReason string    `json:"skip_reason,omitempty"`
	Records    int       `json:"records"`
	Trials     int       `json:"trials"`

	TotalComparisons   int64         `json:"total_comparisons"`
	AverageComparisons float64       `json:"average_comparisons"`
	TotalElapsed       time.Duration `json:"total_elapsed_ns"`
	AverageElapsed     time.Duration `json:"average_elapsed_ns"`

	// Found is the verdict of the searches; unset for sorts.
	Found bool `json:"found,omitempty"`

	// Setup is the sort cost paid once, outside the timed region, to
	// prepare input for binary search. Nil for every other algorithm.
	Setup *SetupCost `json:"setup,omitempty"`
}

// SetupCost reports preparation work excluded from the trial timings.
type SetupCost struct {
	Comparisons int           `json:"comparisons"`
	Elapsed     time.Duration `json:"elapsed_ns"`
}

// Report is the outcome of one Run.
type Report struct {
	RunID     string    `json:"run_id"`
	Algorithm Algorithm `json:"algorithm"`
	Trials    int       `json:"trials"`
	Name      string    `json:"name,omitempty"`
	Results   []Result  `json:"results"`
}

// Harness measures algorithms against the stores registered with it.
// A Harness is not safe for concurrent use.
type Harness struct {
	stores map[Target]types.Store
	logger zerolog.Logger
	now    func() time.Time
}

// New creates a Harness with no stores registered.
func New(logger zerolog.Logger) *Harness {
	return &Harness{
		stores: make(map[Target]types.Store),
		logger: logger.With().Str("component", "bench").Logger(),
		now:    time.Now,
	}
}

// Register makes s the store measured for target t, replacing any previous
// registration.
func (h *Harness) Register(t Target, s types.Store) {
	h.stores[t] = s
}

// Run validates req and measures each requested target in order. Stores
// are read, never modified.
func (h *Harness) Run(req Request) (Report, error) {
	if err := req.Validate(); err != nil {
		return Report{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return Report{}, fmt.Errorf("generating run ID: %w", err)
	}

	report := Report{
		RunID:     id.String(),
		Algorithm: req.Algorithm,
		Trials:    req.Trials,
		Name:      req.Name,
		Results:   make([]Result, 0, len(req.Targets)),
	}
	log := h.logger.With().Str("run_id", report.RunID).Str("algorithm", string(req.Algorithm)).Logger()

	for _, t := range req.Targets {
		res := h.measure(t, req)
		if res.Outcome == OutcomeSkipped {
			log.Info().Str("target", string(t)).Str("reason", res.SkipReason).Msg("target skipped")
		} else {
			log.Debug().
				Str("target", string(t)).
				Int("records", res.Records).
				Int64("total_comparisons", res.TotalComparisons).
				Dur("total_elapsed", res.TotalElapsed).
				Msg("target measured")
		}
		report.Results = append(report.Results, res)
	}

	log.Info().Int("trials", req.Trials).Int("targets", len(report.Results)).Msg("benchmark complete")
	return report, nil
}

func (h *Harness) measure(t Target, req Request) Result {
	res := Result{Target: t, Algorithm: req.Algorithm, Trials: req.Trials}

	store := h.stores[t]
	if store == nil {
		return skipped(res, SkipNoStore)
	}
	res.Records = store.Len()
	if res.Records == 0 {
		return skipped(res, SkipEmptyStore)
	}

	switch req.Algorithm {
	case LinearSearch:
		h.runLinear(&res, store, req)
	case BinarySearch:
		if t != TargetArray {
			return skipped(res, SkipNotContiguous)
		}
		h.runBinary(&res, store, req)
	case ExchangeSort:
		h.runSort(&res, store, req, sorting.ExchangeByName)
	case InsertionSort:
		h.runSort(&res, store, req, sorting.InsertionByCategory)
	case SelectionSort:
		h.runSort(&res, store, req, sorting.SelectionByPriority)
	}

	res.Outcome = OutcomeMeasured
	res.AverageComparisons = float64(res.TotalComparisons) / float64(req.Trials)
	res.AverageElapsed = res.TotalElapsed / time.Duration(req.Trials)
	return res
}

// runLinear searches the live store sequence directly; linear search is
// defined over any ordered sequence.
func (h *Harness) runLinear(res *Result, store types.Store, req Request) {
	var last search.Result
	var total int64

	start := h.now()
	for range req.Trials {
		last = search.Linear(store.All(), req.Name)
		total += int64(last.Comparisons)
	}
	res.TotalElapsed = h.now().Sub(start)

	res.TotalComparisons = total
	res.Found = last.Found
}

// runBinary sorts one snapshot by name outside the timed region and runs
// every trial against that fixed sorted copy.
func (h *Harness) runBinary(res *Result, store types.Store, req Request) {
	sorted := store.List()
	setupStart := h.now()
	setupComparisons := sorting.ExchangeByName(sorted)
	res.Setup = &SetupCost{Comparisons: setupComparisons, Elapsed: h.now().Sub(setupStart)}

	var last search.Result
	var total int64

	start := h.now()
	for range req.Trials {
		last = search.Binary(sorted, req.Name)
		total += int64(last.Comparisons)
	}
	res.TotalElapsed = h.now().Sub(start)

	res.TotalComparisons = total
	res.Found = last.Found
}

// sortBatch bounds how many sort inputs are held at once.
const sortBatch = 64

// runSort gives every trial its own copy of the same snapshot. Copies are
// refreshed between batches of at most sortBatch trials, outside the clock,
// so memory stays bounded by sortBatch copies whatever the trial count.
func (h *Harness) runSort(res *Result, store types.Store, req Request, sort sorting.Func) {
	snapshot := store.List()
	inputs := make([][]types.Record, min(req.Trials, sortBatch))
	for i := range inputs {
		inputs[i] = slices.Clone(snapshot)
	}

	var total int64
	var elapsed time.Duration
	for done := 0; done < req.Trials; {
		batch := inputs[:min(req.Trials-done, len(inputs))]
		if done > 0 {
			for _, in := range batch {
				copy(in, snapshot)
			}
		}
		start := h.now()
		for _, in := range batch {
			total += int64(sort(in))
		}
		elapsed += h.now().Sub(start)
		done += len(batch)
	}
	res.TotalElapsed = elapsed

	res.TotalComparisons = total
}

func skipped(res Result, reason string) Result {
	res.Outcome = OutcomeSkipped
	res.SkipReason = reason
	return res
}
