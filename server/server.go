// Package server exposes the ontology service as a JSON REST API.
//
// Every response uses a uniform envelope: successes carry success=true, a
// message, the payload under data, and a UTC timestamp; failures carry
// success=false and an error string. Instance creation additionally returns
// a 422 with per-property details when required-property validation fails.
package server

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/owlet-db/owlet/errors"
	"github.com/owlet-db/owlet/ontology"
)

// Server serves the ontology HTTP API.
type Server struct {
	svc        *ontology.Service
	logger     *zap.SugaredLogger
	corsOrigin string

	mux  *http.ServeMux
	http *http.Server
}

// Config holds server construction options.
type Config struct {
	Addr       string
	CORSOrigin string
}

// New creates a server over the given ontology service. If logger is nil
// the server operates silently.
func New(svc *ontology.Service, cfg Config, logger *zap.SugaredLogger) *Server {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	s := &Server{
		svc:        svc,
		logger:     logger.Named("server"),
		corsOrigin: cfg.CORSOrigin,
		mux:        http.NewServeMux(),
	}
	s.setupRoutes()

	s.http = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.requestLogger(s.corsMiddleware(s.mux)),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return s
}

// Handler returns the fully wrapped HTTP handler, exposed for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Start begins serving and blocks until the listener closes.
func (s *Server) Start() error {
	s.logger.Infow("Starting ontology API server", "addr", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return errors.Wrap(err, "http server")
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Infow("Shutting down ontology API server")
	return s.http.Shutdown(ctx)
}

// setupRoutes registers all HTTP handlers.
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("GET /api/ontology/classes", s.handleListClasses)
	s.mux.HandleFunc("POST /api/ontology/classes", s.handleCreateClass)
	s.mux.HandleFunc("GET /api/ontology/classes/{id}", s.handleGetClass)
	s.mux.HandleFunc("DELETE /api/ontology/classes/{id}", s.handleDeleteClass)
	s.mux.HandleFunc("GET /api/ontology/classes/{id}/subclasses", s.handleSubclasses)
	s.mux.HandleFunc("GET /api/ontology/classes/{id}/superclasses", s.handleSuperclasses)
	s.mux.HandleFunc("GET /api/ontology/classes/{id}/full", s.handleClassFull)
	s.mux.HandleFunc("GET /api/ontology/classes/{id}/instances", s.handleClassInstances)
	s.mux.HandleFunc("GET /api/ontology/hierarchy", s.handleHierarchy)

	s.mux.HandleFunc("GET /api/ontology/properties", s.handleListProperties)
	s.mux.HandleFunc("POST /api/ontology/properties", s.handleCreateProperty)
	s.mux.HandleFunc("GET /api/ontology/properties/{id}", s.handleGetProperty)

	s.mux.HandleFunc("POST /api/ontology/instances", s.handleCreateInstance)
	s.mux.HandleFunc("GET /api/ontology/instances/{id}", s.handleGetInstance)

	s.mux.HandleFunc("GET /api/ontology/reasoning/consistency", s.handleConsistency)
	s.mux.HandleFunc("GET /api/ontology/statistics", s.handleStatistics)
	s.mux.HandleFunc("GET /api/ontology/validate", s.handleValidate)

	s.mux.HandleFunc("GET /api/ontology/health", s.handleHealth)
	s.mux.HandleFunc("GET /{$}", s.handleIndex)
}
