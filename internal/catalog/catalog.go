// Package catalog provides the curated benchmark tables for each scoring domain:
// the benchmark registry, section membership, role weight tables, experience and
// industry modifiers, section importance and the heuristic rule tables.
//
// Tables are embedded JSON documents, validated once at load time and treated as
// immutable afterwards. Callers must not mutate the maps they read from a Catalog;
// use BaseWeights to obtain a private copy of a weight table.
package catalog

import (
	"strings"

	"github.com/themohitbharti/joblens/internal/types"
)

// Domain names.
const (
	DomainResume  = "resume"
	DomainProfile = "profile"
)

// DefaultBucket is the role bucket used when a job title matches no other bucket.
const DefaultBucket = "default"

// WeightTable maps benchmark ids to positive integer weights.
type WeightTable map[types.BenchmarkID]int

// Clone returns an independent copy of t.
func (t WeightTable) Clone() WeightTable {
	out := make(WeightTable, len(t))
	for id, w := range t {
		out[id] = w
	}
	return out
}

// Weight returns the weight for id, or 1 when the table has no entry.
func (t WeightTable) Weight(id types.BenchmarkID) int {
	if w, ok := t[id]; ok {
		return w
	}
	return 1
}

// Multipliers maps benchmark ids to weight multipliers.
type Multipliers map[types.BenchmarkID]float64

// Benchmark is one registered benchmark.
type Benchmark struct {
	ID          types.BenchmarkID `json:"id"`
	Description string            `json:"description,omitempty"`
}

// SectionDefinition names a document section and the benchmarks mapped to it.
// Sections may share members.
type SectionDefinition struct {
	Name    string              `json:"name"`
	Members []types.BenchmarkID `json:"members"`
}

// ScoreRange is the inclusive range of benchmark scores in a domain.
type ScoreRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// RoleBucket is a named group of job titles recognized by keyword.
type RoleBucket struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

// Matches reports whether the normalized title contains any bucket keyword.
// Keywords match as plain substrings with no word boundaries, so short keywords
// such as "ux" or "sre" also hit inside longer words ("luxury").
func (b RoleBucket) Matches(title string) bool {
	return containsAny(title, b.Keywords)
}

// IndustryModifier scales benchmark weights when the industry matches a keyword.
type IndustryModifier struct {
	Keywords  []string    `json:"keywords"`
	Modifiers Multipliers `json:"modifiers"`
}

// Matches reports whether the normalized industry contains any keyword.
func (m IndustryModifier) Matches(industry string) bool {
	return containsAny(industry, m.Keywords)
}

// RuleKind is the type of a section heuristic.
type RuleKind string

// Section heuristic kinds.
const (
	// RuleSynergy fires when every listed benchmark scores at least Threshold.
	RuleSynergy RuleKind = "synergy"
	// RuleConflict fires when Weak scores below Below while Strong scores at least AtLeast.
	RuleConflict RuleKind = "conflict"
)

// SectionRule is one table-driven heuristic applied to a section score.
type SectionRule struct {
	Kind       RuleKind            `json:"kind"`
	Benchmarks []types.BenchmarkID `json:"benchmarks,omitempty"`
	Threshold  float64             `json:"threshold,omitempty"`
	Weak       types.BenchmarkID   `json:"weak,omitempty"`
	Below      float64             `json:"below,omitempty"`
	Strong     types.BenchmarkID   `json:"strong,omitempty"`
	AtLeast    float64             `json:"at_least,omitempty"`
	Factor     float64             `json:"factor"`
}

// BonusRule multiplies the overall score when every named section meets its threshold.
type BonusRule struct {
	Sections   map[string]float64 `json:"sections"`
	Multiplier float64            `json:"multiplier"`
}

// IndustryBonus is a group of combo rules for one industry keyword list. At most
// one rule of a group fires.
type IndustryBonus struct {
	Keywords []string    `json:"keywords"`
	Rules    []BonusRule `json:"rules"`
}

// Matches reports whether the normalized industry contains any keyword.
func (b IndustryBonus) Matches(industry string) bool {
	return containsAny(industry, b.Keywords)
}

// ComparisonPolicy holds the thresholds used when comparing two documents.
type ComparisonPolicy struct {
	TieThreshold           int      `json:"tie_threshold"`
	BenchmarkDeadZone      float64  `json:"benchmark_dead_zone"`
	SectionDeadZone        float64  `json:"section_dead_zone"`
	AdvantageDifference    float64  `json:"advantage_difference"`
	CompetitiveDifference  float64  `json:"competitive_difference"`
	HighImportanceWeight   int      `json:"high_importance_weight"`
	LowImportanceWeight    int      `json:"low_importance_weight"`
	StrongThreshold        float64  `json:"strong_threshold"`
	WeakThreshold          float64  `json:"weak_threshold"`
	InsightLimit           int      `json:"insight_limit"`
	AdvantageLimit         int      `json:"advantage_limit"`
	GeneralRecommendations []string `json:"general_recommendations"`
}

// Catalog is the complete, immutable table set for one domain.
type Catalog struct {
	Domain              string                                `json:"domain"`
	Version             string                                `json:"version"`
	ScoreRange          ScoreRange                            `json:"score_range"`
	Benchmarks          []Benchmark                           `json:"benchmarks"`
	Sections            []SectionDefinition                   `json:"sections"`
	RoleBuckets         []RoleBucket                          `json:"role_buckets"`
	RoleWeights         map[string]WeightTable                `json:"role_weights"`
	ExperienceModifiers map[types.ExperienceLevel]Multipliers `json:"experience_modifiers"`
	IndustryModifiers   []IndustryModifier                    `json:"industry_modifiers"`
	SectionImportance   map[string]map[string]float64         `json:"section_importance"`
	SectionRules        map[string][]SectionRule              `json:"section_rules"`
	CriticalBenchmarks  []types.BenchmarkID                   `json:"critical_benchmarks"`
	IndustryBonuses     []IndustryBonus                       `json:"industry_bonuses"`
	Comparison          ComparisonPolicy                      `json:"comparison"`

	index map[types.BenchmarkID]int
}

// Has reports whether id is registered in the catalog.
func (c *Catalog) Has(id types.BenchmarkID) bool {
	_, ok := c.index[id]
	return ok
}

// IDs returns every registered benchmark id in declaration order.
func (c *Catalog) IDs() []types.BenchmarkID {
	ids := make([]types.BenchmarkID, len(c.Benchmarks))
	for i, b := range c.Benchmarks {
		ids[i] = b.ID
	}
	return ids
}

// Section returns the definition of the named section.
func (c *Catalog) Section(name string) (SectionDefinition, bool) {
	for _, s := range c.Sections {
		if s.Name == name {
			return s, true
		}
	}
	return SectionDefinition{}, false
}

// SectionsOf returns the names of the sections id belongs to.
func (c *Catalog) SectionsOf(id types.BenchmarkID) []string {
	var names []string
	for _, s := range c.Sections {
		for _, m := range s.Members {
			if m == id {
				names = append(names, s.Name)
				break
			}
		}
	}
	return names
}

// BucketNames returns the role buckets in matching order followed by the default bucket.
func (c *Catalog) BucketNames() []string {
	names := make([]string, 0, len(c.RoleBuckets)+1)
	for _, b := range c.RoleBuckets {
		names = append(names, b.Name)
	}
	return append(names, DefaultBucket)
}

// BaseWeights returns a copy of the weight table for bucket, falling back to the
// default bucket.
func (c *Catalog) BaseWeights(bucket string) WeightTable {
	if t, ok := c.RoleWeights[bucket]; ok {
		return t.Clone()
	}
	return c.RoleWeights[DefaultBucket].Clone()
}

// Importance returns the section importance table for bucket, falling back to the
// default bucket. The returned map is shared and must not be modified.
func (c *Catalog) Importance(bucket string) map[string]float64 {
	if t, ok := c.SectionImportance[bucket]; ok {
		return t
	}
	return c.SectionImportance[DefaultBucket]
}

// Rules returns the heuristics declared for a section, in declaration order.
func (c *Catalog) Rules(section string) []SectionRule {
	return c.SectionRules[section]
}

func (c *Catalog) buildIndex() {
	c.index = make(map[types.BenchmarkID]int, len(c.Benchmarks))
	for i, b := range c.Benchmarks {
		c.index[b.ID] = i
	}
}

// Normalize lowercases and trims free text for keyword matching.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func containsAny(s string, keywords []string) bool {
	if s == "" {
		return false
	}
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
