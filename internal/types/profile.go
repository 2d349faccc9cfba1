package types

import "strings"

// ExperienceLevel is the seniority of the targeted role.
type ExperienceLevel string

// Experience levels understood by the weight resolver. LevelUnspecified means no
// experience modifiers are applied.
const (
	LevelUnspecified ExperienceLevel = ""
	LevelEntry       ExperienceLevel = "entry"
	LevelMid         ExperienceLevel = "mid"
	LevelSenior      ExperienceLevel = "senior"
	LevelExecutive   ExperienceLevel = "executive"
)

// ParseExperienceLevel maps free text to a known level. Unknown or empty values
// return LevelUnspecified and false.
func ParseExperienceLevel(s string) (ExperienceLevel, bool) {
	switch ExperienceLevel(strings.ToLower(strings.TrimSpace(s))) {
	case LevelEntry:
		return LevelEntry, true
	case LevelMid:
		return LevelMid, true
	case LevelSenior:
		return LevelSenior, true
	case LevelExecutive:
		return LevelExecutive, true
	default:
		return LevelUnspecified, false
	}
}

// RoleProfile is the caller's targeting context. Every field is optional.
type RoleProfile struct {
	JobTitle        string `json:"job_title,omitempty" mapstructure:"job_title"`
	ExperienceLevel string `json:"experience_level,omitempty" mapstructure:"experience_level"`
	Industry        string `json:"industry,omitempty" mapstructure:"industry"`
}

// ResolvedProfile is a RoleProfile after normalization: the role bucket is
// resolved, the level is a known enum value and the industry is lowercased.
type ResolvedProfile struct {
	Bucket   string          `json:"bucket"`
	Level    ExperienceLevel `json:"experience_level,omitempty"`
	Industry string          `json:"industry,omitempty"`
}
