package catalog

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/themohitbharti/joblens/internal/schemas"
	"github.com/themohitbharti/joblens/internal/types"
)

//go:embed tables/*.json
var tableFiles embed.FS

// Bounds enforced on curated values.
const (
	importanceTolerance = 0.01
	minModifier         = 0.5
	maxModifier         = 2.0
	maxSynergyFactor    = 1.1
	minConflictFactor   = 0.85
	maxIndustryBonus    = 1.08
	minWeight           = 1
	maxWeight           = 10
)

// ErrUnknownDomain is returned for a domain with no embedded tables.
var ErrUnknownDomain = errors.New("unknown scoring domain")

// LoadError reports every problem found in a table set.
type LoadError struct {
	Domain   string
	Problems []string
	Cause    error
}

func (e *LoadError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("catalog %q is invalid", e.Domain))
	if e.Cause != nil {
		sb.WriteString(fmt.Sprintf(": %v", e.Cause))
	}
	for i, p := range e.Problems {
		sb.WriteString(fmt.Sprintf("\n  %d. %s", i+1, p))
	}
	return sb.String()
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

type entry struct {
	once    sync.Once
	catalog *Catalog
	err     error
}

var loaded = map[string]*entry{
	DomainResume:  {},
	DomainProfile: {},
}

// Domains returns the names of all embedded domains.
func Domains() []string {
	return []string{DomainResume, DomainProfile}
}

// Load returns the validated catalog for domain. Tables are parsed once per
// process; later calls return the same value.
func Load(domain string) (*Catalog, error) {
	e, ok := loaded[domain]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDomain, domain)
	}
	e.once.Do(func() {
		data, err := tableFiles.ReadFile("tables/" + domain + ".json")
		if err != nil {
			e.err = &LoadError{Domain: domain, Cause: err}
			return
		}
		e.catalog, e.err = Parse(data)
	})
	return e.catalog, e.err
}

// MustLoad is like Load but panics on error. Use it at process start.
func MustLoad(domain string) *Catalog {
	c, err := Load(domain)
	if err != nil {
		panic(fmt.Sprintf("failed to load catalog: %v", err))
	}
	return c
}

// Parse decodes and validates a table set.
func Parse(data []byte) (*Catalog, error) {
	if err := schemas.ValidateEmbedded(schemas.CatalogSchema, data); err != nil {
		return nil, &LoadError{Domain: peekDomain(data), Cause: err}
	}

	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, &LoadError{Domain: peekDomain(data), Cause: fmt.Errorf("failed to decode tables: %w", err)}
	}
	c.buildIndex()

	if problems := c.check(); len(problems) > 0 {
		return nil, &LoadError{Domain: c.Domain, Problems: problems}
	}
	return &c, nil
}

func peekDomain(data []byte) string {
	var head struct {
		Domain string `json:"domain"`
	}
	_ = json.Unmarshal(data, &head)
	return head.Domain
}

// check verifies the cross-table invariants the schema cannot express.
func (c *Catalog) check() []string {
	var p []string
	add := func(format string, args ...any) {
		p = append(p, fmt.Sprintf(format, args...))
	}

	if c.ScoreRange.Min < 0 || c.ScoreRange.Max > 10 || c.ScoreRange.Min >= c.ScoreRange.Max {
		add("score range [%g, %g] must lie within [0, 10]", c.ScoreRange.Min, c.ScoreRange.Max)
	}

	if len(c.index) != len(c.Benchmarks) {
		add("benchmark ids are not unique")
	}

	covered := make(map[types.BenchmarkID]bool, len(c.Benchmarks))
	sectionNames := make(map[string]bool, len(c.Sections))
	for _, s := range c.Sections {
		if sectionNames[s.Name] {
			add("section %q declared twice", s.Name)
		}
		sectionNames[s.Name] = true
		for _, id := range s.Members {
			if !c.Has(id) {
				add("section %q lists unknown benchmark %q", s.Name, id)
			}
			covered[id] = true
		}
	}
	for _, b := range c.Benchmarks {
		if !covered[b.ID] {
			add("benchmark %q belongs to no section", b.ID)
		}
	}

	buckets := map[string]bool{DefaultBucket: true}
	for _, b := range c.RoleBuckets {
		if buckets[b.Name] {
			add("role bucket %q declared twice", b.Name)
		}
		buckets[b.Name] = true
		for _, kw := range b.Keywords {
			if kw != Normalize(kw) {
				add("role bucket %q keyword %q is not normalized", b.Name, kw)
			}
		}
	}

	for _, name := range c.BucketNames() {
		table, ok := c.RoleWeights[name]
		if !ok {
			add("role bucket %q has no weight table", name)
			continue
		}
		for _, b := range c.Benchmarks {
			w, ok := table[b.ID]
			if !ok {
				add("weight table %q is missing %q", name, b.ID)
				continue
			}
			if w < minWeight || w > maxWeight {
				add("weight table %q gives %q weight %d outside [%d, %d]", name, b.ID, w, minWeight, maxWeight)
			}
		}
		for id := range table {
			if !c.Has(id) {
				add("weight table %q lists unknown benchmark %q", name, id)
			}
		}
	}
	for name := range c.RoleWeights {
		if !buckets[name] {
			add("weight table %q has no role bucket", name)
		}
	}

	for level, mods := range c.ExperienceModifiers {
		if _, ok := types.ParseExperienceLevel(string(level)); !ok {
			add("unknown experience level %q", level)
		}
		c.checkMultipliers(add, "experience level "+string(level), mods)
	}
	for i, m := range c.IndustryModifiers {
		c.checkMultipliers(add, fmt.Sprintf("industry modifier %d", i), m.Modifiers)
	}

	if _, ok := c.SectionImportance[DefaultBucket]; !ok {
		add("section importance has no %q table", DefaultBucket)
	}
	for bucket, table := range c.SectionImportance {
		if !buckets[bucket] {
			add("section importance %q has no role bucket", bucket)
		}
		sum := 0.0
		for section, v := range table {
			if !sectionNames[section] {
				add("section importance %q lists unknown section %q", bucket, section)
			}
			sum += v
		}
		if math.Abs(sum-1.0) > importanceTolerance {
			add("section importance %q sums to %.4f, want 1.0", bucket, sum)
		}
	}

	for section, rules := range c.SectionRules {
		def, ok := c.Section(section)
		if !ok {
			add("rules declared for unknown section %q", section)
			continue
		}
		for i, r := range rules {
			c.checkRule(add, def, i, r)
		}
	}

	for _, id := range c.CriticalBenchmarks {
		if !c.Has(id) {
			add("critical benchmark %q is unknown", id)
		}
	}

	for i, g := range c.IndustryBonuses {
		for j, r := range g.Rules {
			if r.Multiplier <= 1 || r.Multiplier > maxIndustryBonus {
				add("industry bonus %d rule %d multiplier %g outside (1, %g]", i, j, r.Multiplier, maxIndustryBonus)
			}
			for section := range r.Sections {
				if !sectionNames[section] {
					add("industry bonus %d rule %d names unknown section %q", i, j, section)
				}
			}
		}
	}

	cmp := c.Comparison
	if cmp.LowImportanceWeight >= cmp.HighImportanceWeight {
		add("comparison low importance weight %d must be below high %d", cmp.LowImportanceWeight, cmp.HighImportanceWeight)
	}
	if cmp.WeakThreshold >= cmp.StrongThreshold {
		add("comparison weak threshold %g must be below strong %g", cmp.WeakThreshold, cmp.StrongThreshold)
	}

	sort.Strings(p)
	return p
}

func (c *Catalog) checkMultipliers(add func(string, ...any), owner string, mods Multipliers) {
	for id, m := range mods {
		if !c.Has(id) {
			add("%s lists unknown benchmark %q", owner, id)
		}
		if m < minModifier || m > maxModifier {
			add("%s multiplier %g for %q outside [%g, %g]", owner, m, id, minModifier, maxModifier)
		}
	}
}

func (c *Catalog) checkRule(add func(string, ...any), def SectionDefinition, i int, r SectionRule) {
	member := func(id types.BenchmarkID) bool {
		for _, m := range def.Members {
			if m == id {
				return true
			}
		}
		return false
	}

	switch r.Kind {
	case RuleSynergy:
		if len(r.Benchmarks) < 2 {
			add("section %q rule %d: synergy needs at least two benchmarks", def.Name, i)
		}
		for _, id := range r.Benchmarks {
			if !member(id) {
				add("section %q rule %d: %q is not a member", def.Name, i, id)
			}
		}
		if r.Factor <= 1 || r.Factor > maxSynergyFactor {
			add("section %q rule %d: synergy factor %g outside (1, %g]", def.Name, i, r.Factor, maxSynergyFactor)
		}
	case RuleConflict:
		if !member(r.Weak) || !member(r.Strong) {
			add("section %q rule %d: conflict benchmarks %q and %q must be members", def.Name, i, r.Weak, r.Strong)
		}
		if r.Factor < minConflictFactor || r.Factor >= 1 {
			add("section %q rule %d: conflict factor %g outside [%g, 1)", def.Name, i, r.Factor, minConflictFactor)
		}
	default:
		add("section %q rule %d: unknown kind %q", def.Name, i, r.Kind)
	}
}
