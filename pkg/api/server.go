// Package api provides the HTTP API for the tray configuration service.
package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ketos-lab/traylims/pkg/batch"
)

// Server is the HTTP API server.
type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	pool       *batch.Pool
}

// NewServer creates the API server around a batch pool for candidate scoring.
func NewServer(pool *batch.Pool) *Server {
	if pool == nil {
		panic("NewServer: pool must not be nil")
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestMetrics())

	s := &Server{
		router: router,
		pool:   pool,
	}
	s.setupRoutes()
	return s
}

// setupRoutes registers all API routes.
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.healthHandler)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := s.router.Group("/api/v1")
	v1.GET("/experiments", s.listExperimentsHandler)
	v1.POST("/optimize", s.optimizeHandler)
	v1.POST("/optimize/batch", s.optimizeBatchHandler)
}

// Handler exposes the router, mainly for tests via httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server on the given address (blocking).
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: s.router,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
