package comparison

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/themohitbharti/joblens/internal/types"
)

func (e *Engine) keyDifferences(per []types.BenchmarkComparison, structuralA, structuralB []string) types.KeyDifferences {
	kd := types.KeyDifferences{
		AdvantagesA:           make([]types.BenchmarkID, 0),
		AdvantagesB:           make([]types.BenchmarkID, 0),
		CommonWeaknesses:      make([]types.BenchmarkID, 0),
		StructuralAdvantagesA: structuralA,
		StructuralAdvantagesB: structuralB,
	}

	for _, c := range per {
		if c.Importance != types.ImportanceHigh {
			continue
		}
		switch {
		case c.Difference >= e.policy.AdvantageDifference:
			kd.AdvantagesA = append(kd.AdvantagesA, c.ID)
		case -c.Difference >= e.policy.AdvantageDifference:
			kd.AdvantagesB = append(kd.AdvantagesB, c.ID)
		}
		if c.PresentA && c.PresentB && !c.PassedA && !c.PassedB {
			kd.CommonWeaknesses = append(kd.CommonWeaknesses, c.ID)
		}
	}
	return kd
}

// recommendations lists improvements per side: every benchmark where the side
// trails by at least the advantage gap, then every section only the other side
// has. The generic list is appended unchanged.
func (e *Engine) recommendations(per []types.BenchmarkComparison, structuralA, structuralB []string) types.Recommendations {
	recs := types.Recommendations{
		ForA:    make([]string, 0),
		ForB:    make([]string, 0),
		General: append([]string(nil), e.policy.GeneralRecommendations...),
	}

	for _, c := range per {
		switch {
		case -c.Difference >= e.policy.AdvantageDifference:
			recs.ForA = append(recs.ForA, improve(c.ID, c.ScoreA, c.ScoreB))
		case c.Difference >= e.policy.AdvantageDifference:
			recs.ForB = append(recs.ForB, improve(c.ID, c.ScoreB, c.ScoreA))
		}
	}
	for _, s := range structuralB {
		recs.ForA = append(recs.ForA, addSection(s))
	}
	for _, s := range structuralA {
		recs.ForB = append(recs.ForB, addSection(s))
	}
	return recs
}

func improve(id types.BenchmarkID, mine, theirs float64) string {
	return fmt.Sprintf("Improve %s (scored %s vs %s)", id, formatScore(mine), formatScore(theirs))
}

func addSection(name string) string {
	return fmt.Sprintf("Add a %s section", strings.TrimSpace(name))
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
