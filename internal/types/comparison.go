package types

// Side identifies one of the two compared documents.
type Side string

// Comparison sides. SideTie is only used for the winner.
const (
	SideA   Side = "a"
	SideB   Side = "b"
	SideTie Side = "tie"
)

// Status is the relative standing of one side against the other.
type Status string

// Comparison statuses.
const (
	StatusBetter Status = "better"
	StatusWorse  Status = "worse"
	StatusEqual  Status = "equal"
)

// Importance is the tier of a benchmark derived from its resolved weight.
type Importance string

// Importance tiers.
const (
	ImportanceHigh   Importance = "high"
	ImportanceMedium Importance = "medium"
	ImportanceLow    Importance = "low"
)

// Document is one candidate document as handed over by the extraction stage.
type Document struct {
	Results  BenchmarkResultSet `json:"results" validate:"required"`
	Sections []string           `json:"sections,omitempty" validate:"omitempty,dive,required"`
}

// ScoredDocument is a document together with its breakdown.
type ScoredDocument struct {
	Document
	Breakdown ScoreBreakdown `json:"breakdown"`
}

// Winner reports which side scored higher overall.
type Winner struct {
	Side            Side `json:"side"`
	ScoreDifference int  `json:"score_difference"`
}

// BenchmarkComparison compares one benchmark across both documents.
// Difference is ScoreA - ScoreB; an absent benchmark counts as 0.
type BenchmarkComparison struct {
	ID         BenchmarkID `json:"id"`
	ScoreA     float64     `json:"score_a"`
	ScoreB     float64     `json:"score_b"`
	PassedA    bool        `json:"passed_a"`
	PassedB    bool        `json:"passed_b"`
	PresentA   bool        `json:"present_a"`
	PresentB   bool        `json:"present_b"`
	Difference float64     `json:"difference"`
	StatusA    Status      `json:"status_a"`
	StatusB    Status      `json:"status_b"`
	Weight     int         `json:"weight"`
	Importance Importance  `json:"importance"`
}

// SectionComparison compares one section across both documents. Present flags
// reflect the detected sections of each document.
type SectionComparison struct {
	Section    string  `json:"section"`
	ScoreA     float64 `json:"score_a"`
	ScoreB     float64 `json:"score_b"`
	PresentA   bool    `json:"present_a"`
	PresentB   bool    `json:"present_b"`
	Difference float64 `json:"difference"`
	StatusA    Status  `json:"status_a"`
	StatusB    Status  `json:"status_b"`
}

// KeyDifferences lists the high-importance gaps between the documents.
type KeyDifferences struct {
	AdvantagesA           []BenchmarkID `json:"advantages_a"`
	AdvantagesB           []BenchmarkID `json:"advantages_b"`
	CommonWeaknesses      []BenchmarkID `json:"common_weaknesses"`
	StructuralAdvantagesA []string      `json:"structural_advantages_a"`
	StructuralAdvantagesB []string      `json:"structural_advantages_b"`
}

// Recommendations holds improvement advice per side plus generic advice.
type Recommendations struct {
	ForA    []string `json:"for_a"`
	ForB    []string `json:"for_b"`
	General []string `json:"general"`
}

// SideInsights are the bounded highlight lists for one side.
type SideInsights struct {
	Strongest             []BenchmarkID `json:"strongest"`
	Weakest               []BenchmarkID `json:"weakest"`
	CompetitiveAdvantages []BenchmarkID `json:"competitive_advantages"`
}

// Insights holds the detailed insights for both sides.
type Insights struct {
	A SideInsights `json:"a"`
	B SideInsights `json:"b"`
}

// ComparisonResult is the structured diff between two scored documents.
type ComparisonResult struct {
	Domain          string                `json:"domain"`
	OverallA        int                   `json:"overall_a"`
	OverallB        int                   `json:"overall_b"`
	Winner          Winner                `json:"winner"`
	PerBenchmark    []BenchmarkComparison `json:"per_benchmark"`
	PerSection      []SectionComparison   `json:"per_section"`
	KeyDifferences  KeyDifferences        `json:"key_differences"`
	Recommendations Recommendations       `json:"recommendations"`
	Insights        Insights              `json:"insights"`
}
