package cli

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/backpack/internal/arraystore"
	"github.com/mesh-intelligence/backpack/internal/fixtures"
	"github.com/mesh-intelligence/backpack/internal/linkedstore"
	"github.com/mesh-intelligence/backpack/internal/paths"
	"github.com/mesh-intelligence/backpack/pkg/types"
)

// session holds both stores loaded with the same records for one command.
type session struct {
	array  *arraystore.Store
	linked *linkedstore.Store
}

// store returns the store selected by name.
func (s *session) store(name string) (types.Store, error) {
	switch name {
	case storeArray:
		return s.array, nil
	case storeLinked, "list":
		return s.linked, nil
	default:
		return nil, fmt.Errorf("unknown store %q (want %s or %s)", name, storeArray, storeLinked)
	}
}

// close releases the linked chain.
func (s *session) close() {
	s.linked.Teardown()
}

const (
	storeArray  = "array"
	storeLinked = "linked"
)

// withSession loads records, fills both stores, runs fn, and tears the
// linked store down afterwards.
func (a *app) withSession(fn func(s *session) error) error {
	records, err := a.loadRecords()
	if err != nil {
		return err
	}

	array, err := arraystore.New(a.cfg.Capacity)
	if err != nil {
		return err
	}
	s := &session{array: array, linked: linkedstore.New()}
	defer s.close()

	n, err := fixtures.Fill(s.array, records)
	if err != nil {
		if !errors.Is(err, types.ErrCapacityExceeded) {
			return err
		}
		a.logger.Warn().
			Int("capacity", a.cfg.Capacity).
			Int("dropped", len(records)-n).
			Msg("array store full; remaining records kept in linked store only")
	}
	if _, err := fixtures.Fill(s.linked, records); err != nil {
		return err
	}

	a.logger.Debug().Int("array", s.array.Len()).Int("linked", s.linked.Len()).Msg("stores loaded")
	return fn(s)
}

// loadRecords returns generated records when --generate is set, otherwise
// the records file from flag, config, or environment. No source yields an
// empty set.
func (a *app) loadRecords() ([]types.Record, error) {
	if a.flags.generate > 0 {
		return fixtures.Generate(a.flags.generate, a.flags.seed), nil
	}

	path, err := paths.ResolveRecordsFile(a.flags.records, a.cfg.RecordsFile)
	if err != nil {
		return nil, fmt.Errorf("resolve records file: %w", err)
	}
	if path == "" {
		a.logger.Info().Msg("no records file configured; stores start empty")
		return nil, nil
	}
	records, err := fixtures.Load(path)
	if err != nil {
		return nil, err
	}
	a.logger.Debug().Str("path", path).Int("records", len(records)).Msg("records loaded")
	return records, nil
}
