package scoring

import (
	"github.com/themohitbharti/joblens/internal/catalog"
	"github.com/themohitbharti/joblens/internal/types"
)

// NeutralSectionScore is returned for a section that cannot be judged: it has
// no members, or none of its members has a result.
const NeutralSectionScore = 5.0

const (
	minSectionScore = 0.0
	maxSectionScore = 10.0
)

// ScoreSection aggregates the results of a section's members into a 0-10 score.
//
// Members without a result are skipped and contribute no weight. Members missing
// from weights count with weight 1. The weighted mean is rounded and clamped,
// then the section's heuristics are applied in declaration order and the score
// is rounded and clamped again.
func (s *Scorer) ScoreSection(def catalog.SectionDefinition, results types.BenchmarkResultSet, weights catalog.WeightTable) float64 {
	if len(def.Members) == 0 {
		return NeutralSectionScore
	}

	weightedSum := 0.0
	totalWeight := 0
	for _, id := range def.Members {
		r, ok := results[id]
		if !ok {
			continue
		}
		w := weights.Weight(id)
		weightedSum += r.Score * float64(w)
		totalWeight += w
	}
	if totalWeight == 0 {
		return NeutralSectionScore
	}

	score := clamp(round(weightedSum/float64(totalWeight)), minSectionScore, maxSectionScore)

	for _, rule := range s.catalog.Rules(def.Name) {
		if fires(rule, results) {
			score *= rule.Factor
		}
	}

	return clamp(round(score), minSectionScore, maxSectionScore)
}

// fires reports whether a heuristic applies. Rules referring to a benchmark
// without a result never fire.
func fires(rule catalog.SectionRule, results types.BenchmarkResultSet) bool {
	switch rule.Kind {
	case catalog.RuleSynergy:
		if len(rule.Benchmarks) == 0 {
			return false
		}
		for _, id := range rule.Benchmarks {
			r, ok := results[id]
			if !ok || r.Score < rule.Threshold {
				return false
			}
		}
		return true
	case catalog.RuleConflict:
		weak, ok := results[rule.Weak]
		if !ok || weak.Score >= rule.Below {
			return false
		}
		strong, ok := results[rule.Strong]
		return ok && strong.Score >= rule.AtLeast
	default:
		return false
	}
}
