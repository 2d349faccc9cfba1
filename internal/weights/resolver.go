// Package weights resolves a caller's role profile into a benchmark weight table.
package weights

import (
	"math"

	"github.com/themohitbharti/joblens/internal/catalog"
	"github.com/themohitbharti/joblens/internal/types"
)

// Resolver derives weight tables from one domain's catalog. It holds no mutable
// state and is safe for concurrent use.
type Resolver struct {
	catalog *catalog.Catalog
}

// NewResolver creates a Resolver over c.
func NewResolver(c *catalog.Catalog) *Resolver {
	return &Resolver{catalog: c}
}

// Normalize turns free-text profile fields into a ResolvedProfile. Titles that
// match no bucket, unknown levels and blank values all resolve to defaults.
func (r *Resolver) Normalize(p types.RoleProfile) types.ResolvedProfile {
	level, _ := types.ParseExperienceLevel(p.ExperienceLevel)
	return types.ResolvedProfile{
		Bucket:   r.Bucket(p.JobTitle),
		Level:    level,
		Industry: catalog.Normalize(p.Industry),
	}
}

// Bucket returns the first role bucket whose keywords match title, or the
// default bucket.
func (r *Resolver) Bucket(title string) string {
	title = catalog.Normalize(title)
	for _, b := range r.catalog.RoleBuckets {
		if b.Matches(title) {
			return b.Name
		}
	}
	return catalog.DefaultBucket
}

// Resolve builds the weight table for a resolved profile: the bucket's base
// table, then experience modifiers, then every matching industry modifier in
// declaration order. Each multiplication is rounded and floored at 1. The
// result is a fresh table owned by the caller.
func (r *Resolver) Resolve(p types.ResolvedProfile) catalog.WeightTable {
	table := r.catalog.BaseWeights(p.Bucket)

	if mods, ok := r.catalog.ExperienceModifiers[p.Level]; ok && p.Level != types.LevelUnspecified {
		apply(table, mods)
	}
	for _, m := range r.catalog.IndustryModifiers {
		if m.Matches(p.Industry) {
			apply(table, m.Modifiers)
		}
	}
	return table
}

// ResolveProfile normalizes p and resolves its weight table in one step.
func (r *Resolver) ResolveProfile(p types.RoleProfile) (types.ResolvedProfile, catalog.WeightTable) {
	resolved := r.Normalize(p)
	return resolved, r.Resolve(resolved)
}

// apply scales existing entries only; modifiers never add keys.
func apply(table catalog.WeightTable, mods catalog.Multipliers) {
	for id, m := range mods {
		w, ok := table[id]
		if !ok {
			continue
		}
		scaled := int(math.Round(float64(w) * m))
		if scaled < 1 {
			scaled = 1
		}
		table[id] = scaled
	}
}
