// Package mux serves the toolkit API over gorilla/mux. Routes, envelopes
// and status codes match the echo transport.
package mux

import (
	"context"
	"net/http"
	"time"

	"github.com/cryptolink/solkit/internal/server/endpoint"
	httpserver "github.com/cryptolink/solkit/internal/server/http"
	"github.com/cryptolink/solkit/internal/server/http/middleware"
	"github.com/gorilla/mux"
	mw "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/bytes"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

type Server struct {
	endpoints *endpoint.Endpoints
	draining  *atomic.Bool
	limiter   *mw.RateLimiterMemoryStore
	bodyLimit int64
	config    httpserver.Config
	router    *mux.Router
	handler   http.Handler
	server    *http.Server
	logger    *zerolog.Logger
}

func New(
	cfg httpserver.Config,
	endpoints *endpoint.Endpoints,
	draining *atomic.Bool,
	logger *zerolog.Logger,
) (*Server, error) {
	bodyLimit, err := bytes.Parse(cfg.BodyLimit)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid body limit %q", cfg.BodyLimit)
	}

	log := logger.With().Str("channel", "mux_server").Logger()

	s := &Server{
		endpoints: endpoints,
		draining:  draining,
		limiter:   middleware.NewRateLimiterStore(cfg.RateLimit, cfg.RateBurst),
		bodyLimit: bodyLimit,
		config:    cfg,
		logger:    &log,
	}

	s.router = s.setupRoutes()
	s.handler = s.wrap(s.router)
	s.server = &http.Server{
		Addr:              cfg.ListenAddress(),
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// Run blocks until the server is shut down.
func (s *Server) Run() error {
	s.logger.Info().Str("address", s.server.Addr).Msg("starting mux server")

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "mux server failed")
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}
