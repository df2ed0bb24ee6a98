// Package server implements the docnav HTTP query service
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/nainya/docnav/internal/config"
	"github.com/nainya/docnav/internal/logger"
	"github.com/nainya/docnav/internal/metrics"
	"github.com/nainya/docnav/pkg/content"
	"github.com/nainya/docnav/pkg/nav"
)

// Server serves navigation queries over one immutable snapshot. All
// handlers are pure reads, so requests need no locking.
type Server struct {
	snap     *content.Snapshot
	resolver *nav.Resolver
	sidebar  *nav.SidebarBuilder
	linker   *nav.ArticleLinker
	enum     *nav.PathEnumerator

	m   *metrics.Metrics
	log *logger.Logger

	httpServer *http.Server
}

// New creates a server over the given snapshot with the configured
// visibility policy.
func New(snap *content.Snapshot, cfg config.Config, m *metrics.Metrics, log *logger.Logger) *Server {
	s := &Server{
		snap:     snap,
		resolver: nav.NewResolver(snap),
		sidebar:  nav.NewSidebarBuilder(snap, nav.SidebarOptions{IncludeUnlisted: cfg.SidebarUnlisted}),
		linker:   nav.NewArticleLinker(snap, nav.LinkerOptions{IncludeUnlisted: cfg.LinkerUnlisted}),
		enum: nav.NewPathEnumerator(snap, nav.EnumerateOptions{
			IncludeUnlisted: cfg.RouteUnlisted,
		}),
		m:   m,
		log: log,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/resolve", s.instrument("/resolve", s.handleResolve))
	mux.HandleFunc("/sidebar", s.instrument("/sidebar", s.handleSidebar))
	mux.HandleFunc("/adjacent", s.instrument("/adjacent", s.handleAdjacent))
	mux.HandleFunc("/routes", s.instrument("/routes", s.handleRoutes))

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start begins serving. Blocks until the listener fails or Shutdown
// is called.
func (s *Server) Start() error {
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("query server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the route mux, used by tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// instrument wraps a handler with request metrics and logging.
func (s *Server) instrument(route string, h func(w http.ResponseWriter, r *http.Request) (int, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		s.m.HTTPRequestsInFlight.Inc()
		defer s.m.HTTPRequestsInFlight.Dec()

		status, err := h(w, r)

		duration := time.Since(start)
		outcome := "success"
		if err != nil {
			outcome = "error"
		}
		s.m.RecordHTTPRequest(route, outcome, duration)
		s.log.LogHTTPRequest(route, status, duration, err)
	}
}

type resolveResponse struct {
	Kind     nav.Kind          `json:"kind"`
	Section  *content.Section  `json:"section,omitempty"`
	Category *content.Category `json:"category,omitempty"`
	Article  *content.Article  `json:"article,omitempty"`
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) (int, error) {
	path, status, err := queryPath(r)
	if err != nil {
		writeError(w, status, err)
		return status, err
	}

	res, err := s.resolver.Resolve(path)
	if err != nil {
		s.m.RecordResolution("none", "not_found")
		writeError(w, http.StatusNotFound, err)
		return http.StatusNotFound, err
	}
	s.m.RecordResolution(string(res.Kind), "ok")

	return writeJSON(w, resolveResponse{
		Kind:     res.Kind,
		Section:  res.Section,
		Category: res.Category,
		Article:  res.Article,
	})
}

func (s *Server) handleSidebar(w http.ResponseWriter, r *http.Request) (int, error) {
	s.m.SidebarBuildsTotal.Inc()

	ctx := nav.Context{
		SectionID:  r.URL.Query().Get("section"),
		CategoryID: r.URL.Query().Get("category"),
		ArticleID:  r.URL.Query().Get("article"),
	}
	return writeJSON(w, s.sidebar.Build(ctx))
}

func (s *Server) handleAdjacent(w http.ResponseWriter, r *http.Request) (int, error) {
	s.m.AdjacentLookupsTotal.Inc()

	path, status, err := queryPath(r)
	if err != nil {
		writeError(w, status, err)
		return status, err
	}

	article, ok := s.snap.ArticleByPath(path)
	if !ok {
		err := fmt.Errorf("adjacent %q: %w", path, content.ErrNotFound)
		writeError(w, http.StatusNotFound, err)
		return http.StatusNotFound, err
	}

	return writeJSON(w, s.linker.Adjacent(article))
}

func (s *Server) handleRoutes(w http.ResponseWriter, r *http.Request) (int, error) {
	s.m.RouteEnumerations.Inc()

	return writeJSON(w, struct {
		Paths  []string   `json:"paths"`
		Routes [][]string `json:"routes"`
	}{
		Paths:  s.enum.Paths(),
		Routes: s.enum.Routes(),
	})
}

// queryPath extracts and normalizes the path parameter. Trailing
// slashes are stripped; anything else malformed is the client's
// problem and comes back 400.
func queryPath(r *http.Request) (string, int, error) {
	path := r.URL.Query().Get("path")
	if path == "" {
		return "", http.StatusBadRequest, errors.New("path parameter is required")
	}
	if !strings.HasPrefix(path, "/") {
		return "", http.StatusBadRequest, fmt.Errorf("path %q must begin with /", path)
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	return path, http.StatusOK, nil
}

func writeJSON(w http.ResponseWriter, v interface{}) (int, error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return http.StatusOK, err
	}
	return http.StatusOK, nil
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
