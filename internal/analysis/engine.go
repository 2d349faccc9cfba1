// Package analysis provides the scoring engine for one domain: it resolves
// weights for a role profile, scores documents and compares them. The same
// engine serves both the resume and the profile domain; only the catalog
// differs.
package analysis

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/themohitbharti/joblens/internal/catalog"
	"github.com/themohitbharti/joblens/internal/comparison"
	"github.com/themohitbharti/joblens/internal/logger"
	"github.com/themohitbharti/joblens/internal/scoring"
	"github.com/themohitbharti/joblens/internal/types"
	"github.com/themohitbharti/joblens/internal/weights"
)

// defaultConcurrency bounds ScanBatch when no option overrides it.
const defaultConcurrency = 4

// Engine scores and compares documents of one domain. It is safe for
// concurrent use.
type Engine struct {
	catalog     *catalog.Catalog
	resolver    *weights.Resolver
	scorer      *scoring.Scorer
	comparer    *comparison.Engine
	logger      *zap.Logger
	concurrency int
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for debug traces.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// WithConcurrency bounds the number of documents ScanBatch scores at once.
func WithConcurrency(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.concurrency = n
		}
	}
}

// New creates an Engine over c.
func New(c *catalog.Catalog, opts ...Option) *Engine {
	e := &Engine{
		catalog:     c,
		resolver:    weights.NewResolver(c),
		scorer:      scoring.New(c),
		comparer:    comparison.New(c),
		concurrency: defaultConcurrency,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = logger.WithFields(e.logger, logger.DomainFields(c.Domain, "")...)
	return e
}

// NewResumeEngine creates an Engine over the embedded resume tables.
func NewResumeEngine(opts ...Option) (*Engine, error) {
	return ForDomain(catalog.DomainResume, opts...)
}

// NewProfileEngine creates an Engine over the embedded professional-profile tables.
func NewProfileEngine(opts ...Option) (*Engine, error) {
	return ForDomain(catalog.DomainProfile, opts...)
}

// ForDomain creates an Engine for a named domain.
func ForDomain(domain string, opts ...Option) (*Engine, error) {
	c, err := catalog.Load(domain)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s catalog: %w", domain, err)
	}
	return New(c, opts...), nil
}

// Domain returns the domain name of the engine's catalog.
func (e *Engine) Domain() string {
	return e.catalog.Domain
}

// Catalog returns the engine's read-only catalog.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Score resolves profile and scores one result set.
func (e *Engine) Score(results types.BenchmarkResultSet, profile types.RoleProfile) (types.ResolvedProfile, types.ScoreBreakdown) {
	resolved, table := e.resolver.ResolveProfile(profile)
	b := e.scorer.Breakdown(results, table, resolved)

	if ce := e.logger.Check(zap.DebugLevel, "scored document"); ce != nil {
		ce.Write(
			zap.String(logger.FieldBucket, resolved.Bucket),
			zap.String("experience_level", string(resolved.Level)),
			zap.Int("results", len(results)),
			zap.Any("sections", b.SectionScores),
			zap.Int("overall", b.OverallScore),
		)
	}
	return resolved, b
}

// Scan scores one document and wraps the breakdown in a report with a fresh id.
func (e *Engine) Scan(doc types.Document, profile types.RoleProfile) types.ScanReport {
	resolved, b := e.Score(doc.Results, profile)
	return types.ScanReport{
		ID:        uuid.NewString(),
		Domain:    e.catalog.Domain,
		Profile:   resolved,
		Breakdown: b,
	}
}

// ScanBatch scans documents concurrently under one profile. Reports keep the
// input order. Cancelling ctx stops documents that have not started yet.
func (e *Engine) ScanBatch(ctx context.Context, docs []types.Document, profile types.RoleProfile) ([]types.ScanReport, error) {
	reports := make([]types.ScanReport, len(docs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)
	for i := range docs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			reports[i] = e.Scan(docs[i], profile)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch scan interrupted: %w", err)
	}

	e.logger.Debug("scanned batch", zap.Int("documents", len(docs)))
	return reports, nil
}

// Compare scores both documents under the shared preferences and diffs them.
func (e *Engine) Compare(a, b types.Document, prefs types.RoleProfile) types.ComparisonResult {
	_, breakdownA := e.Score(a.Results, prefs)
	_, breakdownB := e.Score(b.Results, prefs)

	return e.CompareScored(
		types.ScoredDocument{Document: a, Breakdown: breakdownA},
		types.ScoredDocument{Document: b, Breakdown: breakdownB},
		prefs,
	)
}

// CompareScored diffs two documents that were already scored.
func (e *Engine) CompareScored(a, b types.ScoredDocument, prefs types.RoleProfile) types.ComparisonResult {
	result := e.comparer.Compare(a, b, prefs)
	e.logger.Debug("compared documents",
		zap.Int("overall_a", result.OverallA),
		zap.Int("overall_b", result.OverallB),
		zap.String("winner", string(result.Winner.Side)),
	)
	return result
}
