package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/themohitbharti/joblens/internal/analysis"
	"github.com/themohitbharti/joblens/internal/catalog"
	"github.com/themohitbharti/joblens/internal/types"
)

// CatalogResponse describes the benchmarks and sections of one domain.
type CatalogResponse struct {
	Domain             string                      `json:"domain"`
	Version            string                      `json:"version"`
	ScoreRange         catalog.ScoreRange          `json:"score_range"`
	Benchmarks         []catalog.Benchmark         `json:"benchmarks"`
	Sections           []catalog.SectionDefinition `json:"sections"`
	Buckets            []string                    `json:"buckets"`
	CriticalBenchmarks []types.BenchmarkID         `json:"critical_benchmarks"`
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleCatalog dumps the catalog of the requested domain.
func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	engine, err := s.engine(r)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	c := engine.Catalog()
	s.jsonResponse(w, http.StatusOK, CatalogResponse{
		Domain:             c.Domain,
		Version:            c.Version,
		ScoreRange:         c.ScoreRange,
		Benchmarks:         c.Benchmarks,
		Sections:           c.Sections,
		Buckets:            c.BucketNames(),
		CriticalBenchmarks: c.CriticalBenchmarks,
	})
}

// handleScan scores one document.
func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	engine, err := s.engine(r)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	var req types.ScanRequest
	if err := s.decode(w, r, &req, req.Validate); err != nil {
		s.errorResponse(w, err)
		return
	}

	report := engine.Scan(req.Document, s.profileOrDefault(req.Profile))
	s.jsonResponse(w, http.StatusOK, report)
}

// handleScanBatch scores several documents under one profile.
func (s *Server) handleScanBatch(w http.ResponseWriter, r *http.Request) {
	engine, err := s.engine(r)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	var req types.BatchScanRequest
	if err := s.decode(w, r, &req, req.Validate); err != nil {
		s.errorResponse(w, err)
		return
	}

	reports, err := engine.ScanBatch(r.Context(), req.Documents, s.profileOrDefault(req.Profile))
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, types.BatchScanResponse{Reports: reports})
}

// handleCompare scores two documents under shared preferences and diffs them.
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	engine, err := s.engine(r)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	var req types.CompareRequest
	if err := s.decode(w, r, &req, req.Validate); err != nil {
		s.errorResponse(w, err)
		return
	}

	result := engine.Compare(req.A, req.B, s.profileOrDefault(req.Preferences))
	s.jsonResponse(w, http.StatusOK, result)
}

func (s *Server) engine(r *http.Request) (*analysis.Engine, error) {
	domain := r.PathValue("domain")
	e, ok := s.engines[domain]
	if !ok {
		return nil, &ErrUnknownDomain{Domain: domain}
	}
	return e, nil
}

// profileOrDefault falls back to the configured profile when a request carries
// none.
func (s *Server) profileOrDefault(p types.RoleProfile) types.RoleProfile {
	if p == (types.RoleProfile{}) {
		return s.profile
	}
	return p
}

// decode reads a JSON body into dst and runs validate on it. Malformed result
// sets keep their sentinel; other failures become ErrValidation.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any, validate func() error) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, types.ErrMalformedResultSet) {
			return err
		}
		return &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
	}

	if err := validate(); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return &ErrValidation{Field: fe.Namespace(), Message: fmt.Sprintf("failed '%s'", fe.Tag())}
		}
		return &ErrValidation{Field: "body", Message: err.Error()}
	}
	return nil
}
