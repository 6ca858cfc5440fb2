// Package server exposes the bot over HTTP: Discord interactions, prometheus
// metrics and a health check.
package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Config holds the configuration for the HTTP server
type Config struct {
	// Addr is the listen address, e.g. ":3000"
	Addr string

	// Interactions receives Discord interactions. The endpoint is not routed when nil.
	Interactions http.Handler
}

// Server is the bot's HTTP listener
type Server struct {
	addr       string
	router     *mux.Router
	httpServer *http.Server
}

// New creates the HTTP server and its routes
func New(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Addr == "" {
		return nil, errors.New("addr cannot be empty")
	}

	router := mux.NewRouter()

	if cfg.Interactions != nil {
		router.Path("/interactions").Methods(http.MethodPost).Handler(cfg.Interactions)
	}
	router.Path("/metrics").Methods(http.MethodGet).Handler(promhttp.Handler())
	router.Path("/healthz").Methods(http.MethodGet).HandlerFunc(handleHealth)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("Unmatched request: %s %s", r.Method, r.URL)
		w.WriteHeader(http.StatusNotFound)
	})

	return &Server{
		addr:   cfg.Addr,
		router: router,
		httpServer: &http.Server{
			Addr:              cfg.Addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
		},
	}, nil
}

// Handler returns the router
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens until Stop is called
func (s *Server) Start() error {
	log.Printf("Starting HTTP server on %s", s.addr)

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop waits for in-flight requests and closes the listener
func (s *Server) Stop(ctx context.Context) error {
	log.Printf("Stopping HTTP server on %s", s.addr)
	return s.httpServer.Shutdown(ctx)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ok")); err != nil {
		log.Printf("Error writing health response: %v", err)
	}
}
