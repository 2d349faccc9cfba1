package comparison

import (
	"sort"

	"github.com/themohitbharti/joblens/internal/types"
)

// view is one side's perspective on a benchmark comparison.
type view struct {
	id      types.BenchmarkID
	score   float64
	present bool
	status  types.Status
	lead    float64
}

func perspective(c types.BenchmarkComparison, side types.Side) view {
	if side == types.SideB {
		return view{id: c.ID, score: c.ScoreB, present: c.PresentB, status: c.StatusB, lead: -c.Difference}
	}
	return view{id: c.ID, score: c.ScoreA, present: c.PresentA, status: c.StatusA, lead: c.Difference}
}

// sideInsights builds the bounded highlight lists for one side. Lists are
// ordered by strength of the signal; ties keep catalog order.
func (e *Engine) sideInsights(per []types.BenchmarkComparison, side types.Side) types.SideInsights {
	var strongest, weakest, advantages []view
	for _, c := range per {
		v := perspective(c, side)
		if v.present && v.score >= e.policy.StrongThreshold {
			strongest = append(strongest, v)
		}
		if v.present && v.score < e.policy.WeakThreshold {
			weakest = append(weakest, v)
		}
		if v.status == types.StatusBetter && v.lead >= e.policy.CompetitiveDifference {
			advantages = append(advantages, v)
		}
	}

	sort.SliceStable(strongest, func(i, j int) bool { return strongest[i].score > strongest[j].score })
	sort.SliceStable(weakest, func(i, j int) bool { return weakest[i].score < weakest[j].score })
	sort.SliceStable(advantages, func(i, j int) bool { return advantages[i].lead > advantages[j].lead })

	return types.SideInsights{
		Strongest:             ids(strongest, e.policy.InsightLimit),
		Weakest:               ids(weakest, e.policy.InsightLimit),
		CompetitiveAdvantages: ids(advantages, e.policy.AdvantageLimit),
	}
}

// ids truncates to limit; a non-positive limit keeps everything.
func ids(views []view, limit int) []types.BenchmarkID {
	if limit > 0 && len(views) > limit {
		views = views[:limit]
	}
	out := make([]types.BenchmarkID, len(views))
	for i, v := range views {
		out[i] = v.id
	}
	return out
}
