package http

import (
	"net/http"

	"github.com/cryptolink/solkit/internal/server/endpoint"
	"github.com/cryptolink/solkit/internal/server/http/middleware"
	"github.com/cryptolink/solkit/internal/server/http/toolkitapi"
	"github.com/labstack/echo-contrib/prometheus"
	"github.com/labstack/echo/v4"
	"go.uber.org/atomic"
)

// WithToolkitAPI setups keypair, message and instruction routes.
// Each POST route also answers OPTIONS with 200.
func WithToolkitAPI(handler *toolkitapi.Handler) Opt {
	return func(s *Server) {
		routes := map[string]echo.HandlerFunc{
			endpoint.PathKeypair:       handler.PostKeypair,
			endpoint.PathSignMessage:   handler.PostSignMessage,
			endpoint.PathVerifyMessage: handler.PostVerifyMessage,
			endpoint.PathCreateToken:   handler.PostCreateToken,
			endpoint.PathMintToken:     handler.PostMintToken,
			endpoint.PathSendSOL:       handler.PostSendSOL,
			endpoint.PathSendToken:     handler.PostSendToken,
		}

		for path, h := range routes {
			s.echo.POST(path, h)
			s.echo.OPTIONS(path, preflight)
		}
	}
}

// WithHealth setups liveness route. It reports 503 once draining is set.
func WithHealth(handler *toolkitapi.Handler, draining *atomic.Bool) Opt {
	return func(s *Server) {
		s.echo.GET(endpoint.PathHealth, handler.GetHealth, middleware.GuardsDraining(draining))
	}
}

// WithMetrics exposes prometheus metrics on /metrics. Collectors are
// registered globally, so it must be applied once per process.
func WithMetrics() Opt {
	return func(s *Server) {
		if !s.config.Metrics {
			return
		}

		prometheus.NewPrometheus("echo", nil).Use(s.echo)
	}
}

func preflight(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}
