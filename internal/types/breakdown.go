package types

// SectionScore is the 0-10 score of one document section.
type SectionScore struct {
	Section string  `json:"section"`
	Score   float64 `json:"score"`
}

// ScoreBreakdown is the scoring output for one document.
type ScoreBreakdown struct {
	Domain        string         `json:"domain"`
	SectionScores []SectionScore `json:"section_scores"`
	OverallScore  int            `json:"overall_score"` // 0-100
	Tier          string         `json:"tier"`          // A, B, C, D, F
	PassedCount   int            `json:"passed_count"`
	TotalCount    int            `json:"total_count"`
}

// Section returns the score recorded for the named section.
func (b ScoreBreakdown) Section(name string) (float64, bool) {
	for _, s := range b.SectionScores {
		if s.Section == name {
			return s.Score, true
		}
	}
	return 0, false
}

// ScanReport wraps a breakdown with the profile it was scored against.
type ScanReport struct {
	ID        string          `json:"id"`
	Domain    string          `json:"domain"`
	Profile   ResolvedProfile `json:"profile"`
	Breakdown ScoreBreakdown  `json:"breakdown"`
}

// TierFromScore returns the quality tier for an overall score.
func TierFromScore(score int) string {
	switch {
	case score >= 85:
		return "A"
	case score >= 70:
		return "B"
	case score >= 50:
		return "C"
	case score >= 30:
		return "D"
	default:
		return "F"
	}
}
