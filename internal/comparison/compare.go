// Package comparison provides the head-to-head diff of two scored documents.
// It performs no scoring of its own beyond re-running the section scorer per
// side, and never modifies its inputs.
package comparison

import (
	"github.com/themohitbharti/joblens/internal/catalog"
	"github.com/themohitbharti/joblens/internal/scoring"
	"github.com/themohitbharti/joblens/internal/types"
	"github.com/themohitbharti/joblens/internal/weights"
)

// Engine compares documents of one domain.
type Engine struct {
	catalog  *catalog.Catalog
	policy   catalog.ComparisonPolicy
	scorer   *scoring.Scorer
	resolver *weights.Resolver
}

// New creates an Engine for c.
func New(c *catalog.Catalog) *Engine {
	return &Engine{
		catalog:  c,
		policy:   c.Comparison,
		scorer:   scoring.New(c),
		resolver: weights.NewResolver(c),
	}
}

// Compare diffs two scored documents. Benchmark importance and the per-section
// re-scoring both use the weight table resolved from the shared preferences.
func (e *Engine) Compare(a, b types.ScoredDocument, prefs types.RoleProfile) types.ComparisonResult {
	_, table := e.resolver.ResolveProfile(prefs)

	perBenchmark := e.compareBenchmarks(a.Results, b.Results, table)
	perSection := e.compareSections(a.Document, b.Document, table)

	structuralA := onlyIn(a.Sections, b.Sections)
	structuralB := onlyIn(b.Sections, a.Sections)

	return types.ComparisonResult{
		Domain:          e.catalog.Domain,
		OverallA:        a.Breakdown.OverallScore,
		OverallB:        b.Breakdown.OverallScore,
		Winner:          Winner(a.Breakdown.OverallScore, b.Breakdown.OverallScore, e.policy.TieThreshold),
		PerBenchmark:    perBenchmark,
		PerSection:      perSection,
		KeyDifferences:  e.keyDifferences(perBenchmark, structuralA, structuralB),
		Recommendations: e.recommendations(perBenchmark, structuralA, structuralB),
		Insights: types.Insights{
			A: e.sideInsights(perBenchmark, types.SideA),
			B: e.sideInsights(perBenchmark, types.SideB),
		},
	}
}

// Winner picks the higher overall score. Differences below threshold are a tie.
func Winner(overallA, overallB, threshold int) types.Winner {
	diff := overallA - overallB
	if diff < 0 {
		diff = -diff
	}

	switch {
	case diff < threshold:
		return types.Winner{Side: types.SideTie, ScoreDifference: diff}
	case overallA > overallB:
		return types.Winner{Side: types.SideA, ScoreDifference: diff}
	default:
		return types.Winner{Side: types.SideB, ScoreDifference: diff}
	}
}

// status classifies diff = mine - theirs with a symmetric dead zone.
func status(diff, deadZone float64) types.Status {
	switch {
	case diff > deadZone:
		return types.StatusBetter
	case diff < -deadZone:
		return types.StatusWorse
	default:
		return types.StatusEqual
	}
}

// compareBenchmarks covers every catalog benchmark present on at least one
// side, in catalog order. A missing side reports score 0 and not passed, but a
// one-sided row carries no difference and both statuses are equal: an absent
// result is not a losing one.
func (e *Engine) compareBenchmarks(a, b types.BenchmarkResultSet, table catalog.WeightTable) []types.BenchmarkComparison {
	out := make([]types.BenchmarkComparison, 0, len(e.catalog.Benchmarks))
	for _, id := range e.catalog.IDs() {
		ra, okA := a[id]
		rb, okB := b[id]
		if !okA && !okB {
			continue
		}

		var diff float64
		if okA && okB {
			diff = ra.Score - rb.Score
		}
		w := table.Weight(id)
		out = append(out, types.BenchmarkComparison{
			ID:         id,
			ScoreA:     ra.Score,
			ScoreB:     rb.Score,
			PassedA:    ra.Passed,
			PassedB:    rb.Passed,
			PresentA:   okA,
			PresentB:   okB,
			Difference: diff,
			StatusA:    status(diff, e.policy.BenchmarkDeadZone),
			StatusB:    status(-diff, e.policy.BenchmarkDeadZone),
			Weight:     w,
			Importance: e.importance(w),
		})
	}
	return out
}

func (e *Engine) importance(weight int) types.Importance {
	switch {
	case weight >= e.policy.HighImportanceWeight:
		return types.ImportanceHigh
	case weight <= e.policy.LowImportanceWeight:
		return types.ImportanceLow
	default:
		return types.ImportanceMedium
	}
}

func (e *Engine) compareSections(a, b types.Document, table catalog.WeightTable) []types.SectionComparison {
	out := make([]types.SectionComparison, 0, len(e.catalog.Sections))
	for _, def := range e.catalog.Sections {
		sa := e.scorer.ScoreSection(def, a.Results, table)
		sb := e.scorer.ScoreSection(def, b.Results, table)
		diff := sa - sb
		out = append(out, types.SectionComparison{
			Section:    def.Name,
			ScoreA:     sa,
			ScoreB:     sb,
			PresentA:   containsSection(a.Sections, def.Name),
			PresentB:   containsSection(b.Sections, def.Name),
			Difference: diff,
			StatusA:    status(diff, e.policy.SectionDeadZone),
			StatusB:    status(-diff, e.policy.SectionDeadZone),
		})
	}
	return out
}

func containsSection(detected []string, name string) bool {
	name = catalog.Normalize(name)
	for _, s := range detected {
		if catalog.Normalize(s) == name {
			return true
		}
	}
	return false
}

// onlyIn returns the detected sections of mine that theirs lacks, compared
// case-insensitively, keeping the first spelling seen.
func onlyIn(mine, theirs []string) []string {
	out := make([]string, 0)
	seen := make(map[string]bool, len(mine))
	for _, s := range mine {
		key := catalog.Normalize(s)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		if !containsSection(theirs, key) {
			out = append(out, s)
		}
	}
	return out
}
