// Package scoring provides the section and overall scorers that turn benchmark
// judgments into a 0-10 score per section and a 0-100 score per document.
package scoring

import (
	"github.com/themohitbharti/joblens/internal/catalog"
	"github.com/themohitbharti/joblens/internal/types"
)

// Scorer scores documents against one domain's catalog. It is stateless apart
// from the read-only catalog and safe for concurrent use.
type Scorer struct {
	catalog *catalog.Catalog
}

// New creates a Scorer for c.
func New(c *catalog.Catalog) *Scorer {
	return &Scorer{catalog: c}
}

// ScoreSections scores every catalog section in declaration order.
func (s *Scorer) ScoreSections(results types.BenchmarkResultSet, weights catalog.WeightTable) []types.SectionScore {
	scores := make([]types.SectionScore, 0, len(s.catalog.Sections))
	for _, def := range s.catalog.Sections {
		scores = append(scores, types.SectionScore{
			Section: def.Name,
			Score:   s.ScoreSection(def, results, weights),
		})
	}
	return scores
}

// Breakdown runs the full pipeline for one document.
func (s *Scorer) Breakdown(results types.BenchmarkResultSet, weights catalog.WeightTable, profile types.ResolvedProfile) types.ScoreBreakdown {
	sections := s.ScoreSections(results, weights)
	overall := s.ScoreOverall(sections, results, profile)

	passed := 0
	for _, id := range s.catalog.IDs() {
		if r, ok := results[id]; ok && r.Passed {
			passed++
		}
	}

	return types.ScoreBreakdown{
		Domain:        s.catalog.Domain,
		SectionScores: sections,
		OverallScore:  overall,
		Tier:          types.TierFromScore(overall),
		PassedCount:   passed,
		TotalCount:    len(s.catalog.Benchmarks),
	}
}
