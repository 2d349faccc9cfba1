package catalog

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/themohitbharti/joblens/internal/types"
)

func TestLoad_EmbeddedDomains(t *testing.T) {
	for _, domain := range Domains() {
		t.Run(domain, func(t *testing.T) {
			c, err := Load(domain)
			require.NoError(t, err)
			assert.Equal(t, domain, c.Domain)
			assert.NotEmpty(t, c.Version)
			assert.NotEmpty(t, c.Benchmarks)

			again, err := Load(domain)
			require.NoError(t, err)
			assert.Same(t, c, again, "tables should be loaded once")
		})
	}
}

func TestLoad_UnknownDomain(t *testing.T) {
	_, err := Load("cover_letter")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownDomain))
}

func TestMustLoad_PanicsOnUnknownDomain(t *testing.T) {
	assert.Panics(t, func() { MustLoad("cover_letter") })
	assert.NotPanics(t, func() { MustLoad(DomainResume) })
}

func TestRoleWeights_EveryBucketComplete(t *testing.T) {
	for _, domain := range Domains() {
		c := MustLoad(domain)
		for _, bucket := range c.BucketNames() {
			t.Run(domain+"/"+bucket, func(t *testing.T) {
				table, ok := c.RoleWeights[bucket]
				require.True(t, ok, "bucket should have a weight table")
				assert.Len(t, table, len(c.Benchmarks))
				for _, id := range c.IDs() {
					w, ok := table[id]
					require.True(t, ok, "missing %s", id)
					assert.GreaterOrEqual(t, w, 1)
					assert.LessOrEqual(t, w, 10)
				}
			})
		}
	}
}

func TestSectionImportance_SumsToOne(t *testing.T) {
	for _, domain := range Domains() {
		c := MustLoad(domain)
		for _, bucket := range c.BucketNames() {
			t.Run(domain+"/"+bucket, func(t *testing.T) {
				sum := 0.0
				for _, v := range c.Importance(bucket) {
					sum += v
				}
				assert.InDelta(t, 1.0, sum, 0.01)
			})
		}
	}
}

func TestSections_CoverCatalog(t *testing.T) {
	for _, domain := range Domains() {
		c := MustLoad(domain)
		for _, id := range c.IDs() {
			assert.NotEmpty(t, c.SectionsOf(id), "%s/%s belongs to no section", domain, id)
		}
	}
}

func TestRoleBuckets_KeywordsDisjoint(t *testing.T) {
	for _, domain := range Domains() {
		c := MustLoad(domain)
		seen := map[string]string{}
		for _, b := range c.RoleBuckets {
			for _, kw := range b.Keywords {
				owner, dup := seen[kw]
				assert.False(t, dup, "%s: keyword %q in both %s and %s", domain, kw, owner, b.Name)
				seen[kw] = b.Name
			}
		}
	}
}

func TestModifiers_WithinRange(t *testing.T) {
	for _, domain := range Domains() {
		c := MustLoad(domain)
		for level, mods := range c.ExperienceModifiers {
			for id, m := range mods {
				assert.True(t, c.Has(id), "%s/%s: unknown %s", domain, level, id)
				assert.True(t, m >= 0.5 && m <= 2.0, "%s/%s: %s=%g", domain, level, id, m)
			}
		}
		for _, g := range c.IndustryBonuses {
			for _, r := range g.Rules {
				assert.LessOrEqual(t, r.Multiplier, 1.08)
				assert.GreaterOrEqual(t, len(r.Sections), 1)
			}
		}
	}
}

func TestComparisonPolicy_Defaults(t *testing.T) {
	for _, domain := range Domains() {
		p := MustLoad(domain).Comparison
		assert.Equal(t, 2, p.TieThreshold)
		assert.InDelta(t, 1.0, p.BenchmarkDeadZone, 1e-9)
		assert.InDelta(t, 0.5, p.SectionDeadZone, 1e-9)
		assert.Equal(t, 8, p.HighImportanceWeight)
		assert.Equal(t, 4, p.LowImportanceWeight)
		assert.NotEmpty(t, p.GeneralRecommendations)
	}
}

func TestBaseWeights_ReturnsCopy(t *testing.T) {
	c := MustLoad(DomainResume)
	w := c.BaseWeights(DefaultBucket)
	w["relevantExperience"] = 1

	assert.Equal(t, 10, c.RoleWeights[DefaultBucket]["relevantExperience"])
}

func TestBaseWeights_UnknownBucketFallsBack(t *testing.T) {
	c := MustLoad(DomainResume)
	assert.Equal(t, c.RoleWeights[DefaultBucket], c.BaseWeights("astronaut"))
	assert.Equal(t, c.SectionImportance[DefaultBucket], c.Importance("astronaut"))
}

func TestWeightTable_Weight(t *testing.T) {
	table := WeightTable{"a": 7}
	assert.Equal(t, 7, table.Weight("a"))
	assert.Equal(t, 1, table.Weight("missing"))
}

func TestMatches(t *testing.T) {
	b := RoleBucket{Name: "software_engineer", Keywords: []string{"engineer", "developer"}}
	assert.True(t, b.Matches("senior backend engineer"))
	assert.False(t, b.Matches(""))
	assert.False(t, b.Matches("nurse"))

	m := IndustryModifier{Keywords: []string{"financ"}}
	assert.True(t, m.Matches(Normalize("  Financial Services ")))
}

// mutate loads the resume tables as generic JSON, applies fn and re-encodes them.
func mutate(t *testing.T, fn func(doc map[string]any)) []byte {
	t.Helper()
	raw, err := tableFiles.ReadFile("tables/resume.json")
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	fn(doc)
	out, err := json.Marshal(doc)
	require.NoError(t, err)
	return out
}

func TestParse_DetectsCorruptTables(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(doc map[string]any)
		problem string
	}{
		{
			name: "importance does not sum to one",
			mutate: func(doc map[string]any) {
				imp := doc["section_importance"].(map[string]any)["default"].(map[string]any)
				imp["experience"] = 0.9
			},
			problem: `section importance "default" sums to`,
		},
		{
			name: "bucket table incomplete",
			mutate: func(doc map[string]any) {
				table := doc["role_weights"].(map[string]any)["sales"].(map[string]any)
				delete(table, "actionVerbs")
			},
			problem: `weight table "sales" is missing "actionVerbs"`,
		},
		{
			name: "section member unknown",
			mutate: func(doc map[string]any) {
				sec := doc["sections"].([]any)[0].(map[string]any)
				sec["members"] = append(sec["members"].([]any), "madeUp")
			},
			problem: `lists unknown benchmark "madeUp"`,
		},
		{
			name: "synergy factor too large",
			mutate: func(doc map[string]any) {
				rule := doc["section_rules"].(map[string]any)["summary"].([]any)[0].(map[string]any)
				rule["factor"] = 1.5
			},
			problem: "synergy factor 1.5",
		},
		{
			name: "experience multiplier out of range",
			mutate: func(doc map[string]any) {
				mods := doc["experience_modifiers"].(map[string]any)["entry"].(map[string]any)
				mods["certifications"] = 3.0
			},
			problem: "multiplier 3",
		},
		{
			name: "critical benchmark unknown",
			mutate: func(doc map[string]any) {
				doc["critical_benchmarks"] = []any{"madeUp"}
			},
			problem: `critical benchmark "madeUp" is unknown`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(mutate(t, tt.mutate))
			require.Error(t, err)

			var loadErr *LoadError
			require.True(t, errors.As(err, &loadErr))
			assert.Equal(t, DomainResume, loadErr.Domain)
			assert.Contains(t, loadErr.Error(), tt.problem)
		})
	}
}

func TestParse_SchemaViolation(t *testing.T) {
	data := mutate(t, func(doc map[string]any) {
		delete(doc, "role_weights")
	})
	_, err := Parse(data)
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.NotNil(t, loadErr.Unwrap())
}

func TestParse_RoundTripsEmbeddedTables(t *testing.T) {
	raw, err := tableFiles.ReadFile("tables/profile.json")
	require.NoError(t, err)
	c, err := Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, types.BenchmarkID("profilePhoto"), c.Benchmarks[0].ID)
	assert.Equal(t, 0.0, c.ScoreRange.Min)
	def, ok := c.Section("network")
	require.True(t, ok)
	assert.Contains(t, def.Members, types.BenchmarkID("recommendationsReceived"))
	assert.False(t, math.IsNaN(c.Importance("sales")["network"]))
}
