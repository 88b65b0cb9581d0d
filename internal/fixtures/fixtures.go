// Package fixtures supplies validated records to the shell: decoded from a
// YAML records file or generated deterministically from a seed.
package fixtures

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/backpack/pkg/types"
)

// file is the on-disk layout of a records file.
type file struct {
	Records []types.Record `yaml:"records"`
}

// Categories used by Generate.
var Categories = []string{"ammo", "armor", "heal", "tool", "weapon"}

// Decode reads a records document from r and validates every record.
func Decode(r io.Reader) ([]types.Record, error) {
	var f file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decoding records: %w", err)
	}
	for i, rec := range f.Records {
		if err := rec.Validate(); err != nil {
			return nil, fmt.Errorf("record %d (%q): %w", i, rec.Name, err)
		}
	}
	return f.Records, nil
}

// Load reads and validates the records file at path.
func Load(path string) ([]types.Record, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening records file: %w", err)
	}
	defer fh.Close()
	return Decode(fh)
}

// Generate returns n valid records with distinct names. The same seed
// always yields the same records in the same order.
func Generate(n int, seed uint64) []types.Record {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make([]types.Record, n)
	for i, k := range r.Perm(n) {
		out[i] = types.Record{
			Name:     fmt.Sprintf("item-%04d", k),
			Category: Categories[r.IntN(len(Categories))],
			Quantity: r.IntN(100),
			Priority: r.IntN(types.MaxPriority + 1),
		}
	}
	return out
}

// Fill inserts records into s in order. It stops at the first insert that
// fails and reports how many records were inserted.
func Fill(s types.Store, records []types.Record) (int, error) {
	for i, rec := range records {
		if err := s.Insert(rec); err != nil {
			return i, fmt.Errorf("inserting record %d (%q): %w", i, rec.Name, err)
		}
	}
	return len(records), nil
}
