package comparison

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/themohitbharti/joblens/internal/catalog"
	"github.com/themohitbharti/joblens/internal/types"
)

func resumeEngine(t *testing.T) (*Engine, *catalog.Catalog) {
	t.Helper()
	c, err := catalog.Load(catalog.DomainResume)
	require.NoError(t, err)
	return New(c), c
}

func doc(overall int, scores map[types.BenchmarkID]float64, sections ...string) types.ScoredDocument {
	set := make(types.BenchmarkResultSet, len(scores))
	for id, s := range scores {
		set[id] = types.BenchmarkResult{ID: id, Passed: s >= 7, Score: s}
	}
	return types.ScoredDocument{
		Document:  types.Document{Results: set, Sections: sections},
		Breakdown: types.ScoreBreakdown{OverallScore: overall},
	}
}

func findBenchmark(t *testing.T, per []types.BenchmarkComparison, id types.BenchmarkID) types.BenchmarkComparison {
	t.Helper()
	for _, c := range per {
		if c.ID == id {
			return c
		}
	}
	t.Fatalf("benchmark %s not compared", id)
	return types.BenchmarkComparison{}
}

func TestWinner(t *testing.T) {
	tests := []struct {
		name     string
		a, b     int
		wantSide types.Side
		wantDiff int
	}{
		{"boundary is not a tie", 81, 79, types.SideA, 2},
		{"boundary reversed", 79, 81, types.SideB, 2},
		{"one point is a tie", 80, 79, types.SideTie, 1},
		{"equal", 64, 64, types.SideTie, 0},
		{"wide gap", 0, 100, types.SideB, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := Winner(tt.a, tt.b, 2)
			assert.Equal(t, tt.wantSide, w.Side)
			assert.Equal(t, tt.wantDiff, w.ScoreDifference)
		})
	}
}

func TestCompare_WinnerSymmetric(t *testing.T) {
	e, _ := resumeEngine(t)
	a := doc(81, map[types.BenchmarkID]float64{"relevantExperience": 9})
	b := doc(79, map[types.BenchmarkID]float64{"relevantExperience": 6})

	ab := e.Compare(a, b, types.RoleProfile{})
	ba := e.Compare(b, a, types.RoleProfile{})

	assert.Equal(t, types.SideA, ab.Winner.Side)
	assert.Equal(t, types.SideB, ba.Winner.Side)
	assert.Equal(t, ab.Winner.ScoreDifference, ba.Winner.ScoreDifference)

	tieA := doc(70, nil)
	tieB := doc(71, nil)
	assert.Equal(t, e.Compare(tieA, tieB, types.RoleProfile{}).Winner, e.Compare(tieB, tieA, types.RoleProfile{}).Winner)
}

func TestCompare_PerBenchmarkStatus(t *testing.T) {
	e, _ := resumeEngine(t)
	a := doc(70, map[types.BenchmarkID]float64{
		"actionVerbs":            8,
		"quantifiedAchievements": 9,
		"softSkills":             3,
		"certifications":         6,
		"madeUp":                 10,
	})
	b := doc(70, map[types.BenchmarkID]float64{
		"actionVerbs":            7,
		"quantifiedAchievements": 7,
		"softSkills":             5,
	})

	result := e.Compare(a, b, types.RoleProfile{})

	within := findBenchmark(t, result.PerBenchmark, "actionVerbs")
	assert.Equal(t, types.StatusEqual, within.StatusA, "difference of 1 is inside the dead zone")
	assert.Equal(t, types.StatusEqual, within.StatusB)

	ahead := findBenchmark(t, result.PerBenchmark, "quantifiedAchievements")
	assert.Equal(t, types.StatusBetter, ahead.StatusA)
	assert.Equal(t, types.StatusWorse, ahead.StatusB)
	assert.InDelta(t, 2.0, ahead.Difference, 1e-9)

	behind := findBenchmark(t, result.PerBenchmark, "softSkills")
	assert.Equal(t, types.StatusWorse, behind.StatusA)
	assert.Equal(t, types.StatusBetter, behind.StatusB)

	oneSided := findBenchmark(t, result.PerBenchmark, "certifications")
	assert.True(t, oneSided.PresentA)
	assert.False(t, oneSided.PresentB)
	assert.Equal(t, 0.0, oneSided.ScoreB)
	assert.False(t, oneSided.PassedB)
	assert.Zero(t, oneSided.Difference)
	assert.Equal(t, types.StatusEqual, oneSided.StatusA)
	assert.Equal(t, types.StatusEqual, oneSided.StatusB)

	assert.Len(t, result.PerBenchmark, 4, "unknown ids and ids absent on both sides are skipped")
	assert.Equal(t, types.BenchmarkID("quantifiedAchievements"), result.PerBenchmark[0].ID, "catalog order")
}

func TestCompare_Importance(t *testing.T) {
	e, _ := resumeEngine(t)
	scores := map[types.BenchmarkID]float64{"relevantExperience": 5, "actionVerbs": 5, "softSkills": 5, "technicalSkills": 5}
	a, b := doc(60, scores), doc(60, scores)

	neutral := e.Compare(a, b, types.RoleProfile{})
	assert.Equal(t, types.ImportanceHigh, findBenchmark(t, neutral.PerBenchmark, "relevantExperience").Importance)
	assert.Equal(t, types.ImportanceMedium, findBenchmark(t, neutral.PerBenchmark, "actionVerbs").Importance)
	assert.Equal(t, types.ImportanceLow, findBenchmark(t, neutral.PerBenchmark, "softSkills").Importance)
	assert.Equal(t, types.ImportanceMedium, findBenchmark(t, neutral.PerBenchmark, "technicalSkills").Importance)

	engineer := e.Compare(a, b, types.RoleProfile{JobTitle: "Software Engineer"})
	tech := findBenchmark(t, engineer.PerBenchmark, "technicalSkills")
	assert.Equal(t, 10, tech.Weight)
	assert.Equal(t, types.ImportanceHigh, tech.Importance)
}

func TestCompare_PerSection(t *testing.T) {
	e, c := resumeEngine(t)
	a := doc(70, map[types.BenchmarkID]float64{"educationRelevance": 8, "certifications": 8}, "Education", "Experience")
	b := doc(70, map[types.BenchmarkID]float64{"educationRelevance": 7, "certifications": 7}, "experience")

	result := e.Compare(a, b, types.RoleProfile{})
	require.Len(t, result.PerSection, len(c.Sections))

	var education types.SectionComparison
	for _, s := range result.PerSection {
		if s.Section == "education" {
			education = s
		}
	}
	assert.Equal(t, 8.0, education.ScoreA)
	assert.Equal(t, 7.0, education.ScoreB)
	assert.Equal(t, types.StatusBetter, education.StatusA, "section dead zone is 0.5")
	assert.Equal(t, types.StatusWorse, education.StatusB)
	assert.True(t, education.PresentA)
	assert.False(t, education.PresentB)

	// untouched sections are neutral on both sides
	assert.Equal(t, 5.0, result.PerSection[0].ScoreA)
	assert.Equal(t, types.StatusEqual, result.PerSection[0].StatusA)
}

func TestCompare_KeyDifferences(t *testing.T) {
	e, _ := resumeEngine(t)
	a := doc(75, map[types.BenchmarkID]float64{
		"relevantExperience":     9,
		"quantifiedAchievements": 4,
		"roleClarity":            6,
		"softSkills":             9,
	}, "Experience", "Certifications")
	b := doc(65, map[types.BenchmarkID]float64{
		"relevantExperience":     5,
		"quantifiedAchievements": 3,
		"roleClarity":            9,
		"softSkills":             2,
	}, "experience", "Projects", "projects")

	kd := e.Compare(a, b, types.RoleProfile{}).KeyDifferences

	assert.Equal(t, []types.BenchmarkID{"relevantExperience"}, kd.AdvantagesA)
	assert.Equal(t, []types.BenchmarkID{"roleClarity"}, kd.AdvantagesB)
	assert.Equal(t, []types.BenchmarkID{"quantifiedAchievements"}, kd.CommonWeaknesses)
	assert.NotContains(t, kd.AdvantagesA, types.BenchmarkID("softSkills"), "low importance")
	assert.Equal(t, []string{"Certifications"}, kd.StructuralAdvantagesA)
	assert.Equal(t, []string{"Projects"}, kd.StructuralAdvantagesB)
}

func TestCompare_Recommendations(t *testing.T) {
	e, c := resumeEngine(t)
	a := doc(75, map[types.BenchmarkID]float64{"relevantExperience": 9, "actionVerbs": 6}, "Experience")
	b := doc(65, map[types.BenchmarkID]float64{"relevantExperience": 5, "actionVerbs": 8.5}, "Experience", "Projects")

	recs := e.Compare(a, b, types.RoleProfile{}).Recommendations

	assert.Equal(t, []string{"Improve actionVerbs (scored 6 vs 8.5)", "Add a Projects section"}, recs.ForA)
	assert.Equal(t, []string{"Improve relevantExperience (scored 5 vs 9)"}, recs.ForB)
	assert.Equal(t, c.Comparison.GeneralRecommendations, recs.General)
}

func TestCompare_Insights(t *testing.T) {
	e, _ := resumeEngine(t)
	a := doc(80, map[types.BenchmarkID]float64{
		"relevantExperience":     10,
		"quantifiedAchievements": 8,
		"actionVerbs":            9,
		"roleClarity":            8.5,
		"softSkills":             2,
		"certifications":         4,
	})
	b := doc(60, map[types.BenchmarkID]float64{
		"relevantExperience":     6,
		"quantifiedAchievements": 4,
		"actionVerbs":            9,
		"roleClarity":            5,
		"softSkills":             1,
	})

	insights := e.Compare(a, b, types.RoleProfile{}).Insights

	assert.Equal(t, []types.BenchmarkID{"relevantExperience", "actionVerbs", "roleClarity"}, insights.A.Strongest)
	assert.Equal(t, []types.BenchmarkID{"softSkills", "certifications"}, insights.A.Weakest)
	// ordered by lead, catalog order among equal leads; certifications is A-only
	assert.Equal(t, []types.BenchmarkID{"relevantExperience", "quantifiedAchievements", "roleClarity"}, insights.A.CompetitiveAdvantages)

	assert.Equal(t, []types.BenchmarkID{"actionVerbs"}, insights.B.Strongest)
	assert.Equal(t, []types.BenchmarkID{"softSkills", "quantifiedAchievements"}, insights.B.Weakest)
	assert.Empty(t, insights.B.CompetitiveAdvantages)
}

func TestCompare_OneSidedBenchmark(t *testing.T) {
	e, _ := resumeEngine(t)
	a := doc(60, map[types.BenchmarkID]float64{"relevantExperience": 3})
	b := doc(60, map[types.BenchmarkID]float64{})

	for _, swap := range []bool{false, true} {
		x, y := a, b
		if swap {
			x, y = b, a
		}
		result := e.Compare(x, y, types.RoleProfile{})

		row := findBenchmark(t, result.PerBenchmark, "relevantExperience")
		assert.NotEqual(t, row.PresentA, row.PresentB)
		assert.Equal(t, types.StatusEqual, row.StatusA)
		assert.Equal(t, types.StatusEqual, row.StatusB)

		assert.Empty(t, result.KeyDifferences.AdvantagesA)
		assert.Empty(t, result.KeyDifferences.AdvantagesB)
		assert.Empty(t, result.KeyDifferences.CommonWeaknesses)
		assert.Empty(t, result.Recommendations.ForA)
		assert.Empty(t, result.Recommendations.ForB)
		assert.Empty(t, result.Insights.A.CompetitiveAdvantages)
		assert.Empty(t, result.Insights.B.CompetitiveAdvantages)
	}

	// the present side's own low score is still its weakest
	result := e.Compare(a, b, types.RoleProfile{})
	assert.Equal(t, []types.BenchmarkID{"relevantExperience"}, result.Insights.A.Weakest)
	assert.Empty(t, result.Insights.B.Weakest)
}

func TestCompare_DoesNotMutateInputs(t *testing.T) {
	e, _ := resumeEngine(t)
	a := doc(75, map[types.BenchmarkID]float64{"relevantExperience": 9}, "Experience")
	b := doc(65, map[types.BenchmarkID]float64{"relevantExperience": 5}, "Projects")
	a.Breakdown.SectionScores = []types.SectionScore{{Section: "experience", Score: 9}}

	before := []types.ScoredDocument{a, b}
	aResults := len(a.Results)
	_ = e.Compare(a, b, types.RoleProfile{JobTitle: "engineer", ExperienceLevel: "senior"})

	assert.Equal(t, before[0], a)
	assert.Equal(t, before[1], b)
	assert.Len(t, a.Results, aResults)
	assert.Equal(t, []string{"Experience"}, a.Sections)
}
