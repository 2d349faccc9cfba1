package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/themohitbharti/joblens/internal/analysis"
	"github.com/themohitbharti/joblens/internal/catalog"
	"github.com/themohitbharti/joblens/internal/config"
	"github.com/themohitbharti/joblens/internal/logger"
	"github.com/themohitbharti/joblens/internal/server/ratelimit"
	"github.com/themohitbharti/joblens/internal/types"
)

const (
	shutdownTimeout = 30 * time.Second
	maxBodyBytes    = 1 << 20
	requestIDHeader = "X-Request-ID"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	engines     map[string]*analysis.Engine
	profile     types.RoleProfile
	origin      string
	logger      *zap.Logger
	rateLimiter *ratelimit.Limiter
}

// New creates a server with one engine per catalog domain. A catalog that fails
// its load checks keeps the server from being created.
func New(cfg *config.Config, log *zap.Logger) (*Server, error) {
	if log == nil {
		log = zap.NewNop()
	}

	engines := make(map[string]*analysis.Engine)
	for _, domain := range catalog.Domains() {
		e, err := analysis.ForDomain(domain,
			analysis.WithLogger(log),
			analysis.WithConcurrency(cfg.Scoring.BatchConcurrency),
		)
		if err != nil {
			return nil, err
		}
		engines[domain] = e
	}

	s := &Server{
		engines:     engines,
		profile:     cfg.Profile,
		origin:      cfg.Server.AllowedOrigin,
		logger:      log,
		rateLimiter: ratelimit.NewLimiter(ratelimit.FromSettings(cfg.Server.RateLimit)),
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      s.Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	return s, nil
}

// Handler returns the routed handler with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /v1/{domain}/catalog", s.handleCatalog)
	mux.HandleFunc("POST /v1/{domain}/scan", s.handleScan)
	mux.HandleFunc("POST /v1/{domain}/scan/batch", s.handleScanBatch)
	mux.HandleFunc("POST /v1/{domain}/compare", s.handleCompare)

	return s.withLogging(s.withRateLimit(s.withCORS(mux)))
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Start on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	defer s.rateLimiter.Stop()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", zap.String("addr", ln.Addr().String()))
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.logger.Info("server stopped")
	return nil
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withLogging assigns a request id and logs one line per request.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		s.logger.Info("request",
			zap.String(logger.FieldRequestID, requestID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("latency", time.Since(start)),
		)
	})
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+requestIDHeader)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit rejects clients that exhausted their bucket for the route.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(clientID(r), ratelimit.MatchRoute(r.Method, r.URL.Path))

		if info.Limit > 0 {
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
		}
		if !allowed {
			retry := max(1, int(info.RetryAfter.Seconds()+0.5))
			w.Header().Set("Retry-After", strconv.Itoa(retry))
			s.jsonResponse(w, http.StatusTooManyRequests, map[string]any{
				"error":       "rate_limit_exceeded",
				"retry_after": retry,
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientID is the remote IP without port.
func clientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("failed to encode response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response with the status HTTPStatus maps
// err to.
func (s *Server) errorResponse(w http.ResponseWriter, err error) {
	s.jsonResponse(w, HTTPStatus(err), map[string]string{"error": err.Error()})
}
