// Package types provides type definitions for structured data used throughout the joblens system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/themohitbharti/joblens/internal/schemas"
)

// ErrMalformedResultSet is returned when an inbound benchmark result set is not
// an object of benchmark results.
var ErrMalformedResultSet = errors.New("malformed benchmark result set")

// BenchmarkID is the stable identifier of a benchmark, e.g. "quantifiedAchievements".
type BenchmarkID string

// BenchmarkResult is the external judgment for a single benchmark on one document.
type BenchmarkResult struct {
	ID     BenchmarkID `json:"id,omitempty"`
	Passed bool        `json:"passed"`
	Score  float64     `json:"score"`
}

// BenchmarkResultSet maps benchmark ids to their results. It may be partial and
// may contain ids unknown to the catalog.
type BenchmarkResultSet map[BenchmarkID]BenchmarkResult

// UnmarshalJSON validates the payload shape before decoding it. A JSON null
// leaves the set nil.
func (s *BenchmarkResultSet) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = nil
		return nil
	}
	parsed, err := ParseBenchmarkResultSet(data)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseBenchmarkResultSet decodes a result set from its JSON wire form, an object
// keyed by benchmark id. Payloads that are not such an object are rejected with
// an error wrapping ErrMalformedResultSet.
func ParseBenchmarkResultSet(data []byte) (BenchmarkResultSet, error) {
	if err := schemas.ValidateEmbedded(schemas.BenchmarkResultsSchema, data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResultSet, err)
	}

	var raw map[BenchmarkID]BenchmarkResult
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResultSet, err)
	}

	set := make(BenchmarkResultSet, len(raw))
	for id, r := range raw {
		// The key is authoritative; a conflicting inline id is overwritten.
		r.ID = id
		set[id] = r
	}
	return set, nil
}
