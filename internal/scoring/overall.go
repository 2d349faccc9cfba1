package scoring

import (
	"math"

	"github.com/themohitbharti/joblens/internal/types"
)

// Global adjustments applied to the overall score, in this order.
const (
	// neutralOverall is used when no scored section carries importance.
	neutralOverall = 50.0

	consistentStdev    = 1.5
	consistencyBonus   = 1.05
	inconsistentStdev  = 3.0
	consistencyPenalty = 0.95

	criticalFloor   = 5.0
	criticalPenalty = 0.9

	excellentSection = 9.0
	excellenceCount  = 3
	excellenceBonus  = 1.1

	minOverall = 0
	maxOverall = 100
)

// ScoreOverall combines section scores into a 0-100 document score.
//
// The importance-weighted mean of the section scores is rescaled to 0-100, then
// adjusted for consistency, critical failures, excellence and industry combos.
// Every adjustment compounds on the running value. Sections without an
// importance entry are left out of the mean.
func (s *Scorer) ScoreOverall(sections []types.SectionScore, results types.BenchmarkResultSet, profile types.ResolvedProfile) int {
	importance := s.catalog.Importance(profile.Bucket)

	weighted, total := 0.0, 0.0
	for _, sec := range sections {
		imp, ok := importance[sec.Section]
		if !ok {
			continue
		}
		weighted += sec.Score * imp
		total += imp
	}

	base := neutralOverall
	if total > 0 {
		base = weighted / total * 10
	}

	base *= consistencyFactor(sections)
	base *= math.Pow(criticalPenalty, float64(s.criticalFailures(results)))
	base *= excellenceFactor(sections)
	base *= s.industryFactor(sections, profile.Industry)

	return int(clamp(round(base), minOverall, maxOverall))
}

// consistencyFactor rewards even section scores and penalizes spiky ones. A
// single section has no spread to judge.
func consistencyFactor(sections []types.SectionScore) float64 {
	if len(sections) < 2 {
		return 1
	}
	values := make([]float64, len(sections))
	for i, sec := range sections {
		values[i] = sec.Score
	}

	sd := stdev(values)
	switch {
	case sd < consistentStdev:
		return consistencyBonus
	case sd > inconsistentStdev:
		return consistencyPenalty
	default:
		return 1
	}
}

// criticalFailures counts critical benchmarks that are missing or score below
// the floor.
func (s *Scorer) criticalFailures(results types.BenchmarkResultSet) int {
	n := 0
	for _, id := range s.catalog.CriticalBenchmarks {
		r, ok := results[id]
		if !ok || r.Score < criticalFloor {
			n++
		}
	}
	return n
}

func excellenceFactor(sections []types.SectionScore) float64 {
	n := 0
	for _, sec := range sections {
		if sec.Score >= excellentSection {
			n++
		}
	}
	if n >= excellenceCount {
		return excellenceBonus
	}
	return 1
}

// industryFactor applies the first satisfied rule of every matching industry
// group.
func (s *Scorer) industryFactor(sections []types.SectionScore, industry string) float64 {
	factor := 1.0
	for _, group := range s.catalog.IndustryBonuses {
		if !group.Matches(industry) {
			continue
		}
		for _, rule := range group.Rules {
			if meetsAll(rule.Sections, sections) {
				factor *= rule.Multiplier
				break
			}
		}
	}
	return factor
}

func meetsAll(thresholds map[string]float64, sections []types.SectionScore) bool {
	for name, threshold := range thresholds {
		met := false
		for _, sec := range sections {
			if sec.Section == name {
				met = sec.Score >= threshold
				break
			}
		}
		if !met {
			return false
		}
	}
	return true
}
