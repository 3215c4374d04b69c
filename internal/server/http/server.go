package http

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/cryptolink/solkit/internal/server/http/common"
	"github.com/cryptolink/solkit/internal/server/http/middleware"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	mw "github.com/labstack/echo/v4/middleware"
	gommonlog "github.com/labstack/gommon/log"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/ziflex/lecho/v3"
)

type Config struct {
	Address   string     `yaml:"address" env:"WEB_SERVER_ADDRESS" env-default:"0.0.0.0" env-description:"Listen address"`
	Port      string     `yaml:"port" env:"PORT" env-default:"8080" env-description:"Listen port"`
	Transport string     `yaml:"transport" env:"WEB_SERVER_TRANSPORT" env-default:"echo" env-description:"HTTP transport: echo or mux"`
	CORS      CORSConfig `yaml:"cors"`
	RateLimit float64    `yaml:"rate_limit" env:"WEB_SERVER_RATE_LIMIT" env-default:"10" env-description:"Requests per second per client"`
	RateBurst int        `yaml:"rate_burst" env:"WEB_SERVER_RATE_BURST" env-default:"5"`
	BodyLimit string     `yaml:"body_limit" env:"WEB_SERVER_BODY_LIMIT" env-default:"64K"`
	Metrics   bool       `yaml:"metrics" env:"WEB_SERVER_METRICS" env-default:"true" env-description:"Expose /metrics"`
}

type CORSConfig struct {
	AllowOrigins []string `yaml:"allow_origins" env:"WEB_SERVER_CORS_ALLOW_ORIGINS" env-default:"*" env-separator:","`
}

const (
	TransportEcho = "echo"
	TransportMux  = "mux"
)

// ListenAddress returns host:port the server binds to.
func (c Config) ListenAddress() string {
	return net.JoinHostPort(c.Address, c.Port)
}

type Server struct {
	echo   *echo.Echo
	config Config
	logger *zerolog.Logger
}

type Opt func(s *Server)

func New(cfg Config, logger *zerolog.Logger, opts ...Opt) *Server {
	log := logger.With().Str("channel", "web_server").Logger()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	echoLogger := lecho.From(log, lecho.WithLevel(echoLevel(log.GetLevel())))
	e.Logger = echoLogger
	e.HTTPErrorHandler = errorHandler(&log)

	e.Use(
		mw.Recover(),
		mw.RequestIDWithConfig(mw.RequestIDConfig{Generator: uuid.NewString}),
		lecho.Middleware(lecho.Config{Logger: echoLogger}),
		middleware.SecurityHeaders(),
		middleware.CORS(cfg.CORS.AllowOrigins),
		mw.BodyLimit(cfg.BodyLimit),
		middleware.RateLimiter(cfg.RateLimit, cfg.RateBurst),
	)

	s := &Server{echo: e, config: cfg, logger: &log}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// Run blocks until the server is shut down.
func (s *Server) Run() error {
	s.logger.Info().Str("address", s.config.ListenAddress()).Msg("starting echo server")

	if err := s.echo.Start(s.config.ListenAddress()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "echo server failed")
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	return s.echo.Shutdown(ctx)
}

func errorHandler(logger *zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := common.Error(err)

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			status = httpErr.Code
			body.Error = fmt.Sprintf("%v", httpErr.Message)
		}

		if status >= http.StatusInternalServerError {
			logger.Error().Err(err).
				Str("path", c.Path()).
				Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
				Msg("internal error")
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, body)
		}

		if err != nil {
			logger.Error().Err(err).Msg("unable to write error response")
		}
	}
}

func echoLevel(level zerolog.Level) gommonlog.Lvl {
	switch level {
	case zerolog.TraceLevel, zerolog.DebugLevel:
		return gommonlog.DEBUG
	case zerolog.InfoLevel:
		return gommonlog.INFO
	case zerolog.WarnLevel:
		return gommonlog.WARN
	case zerolog.Disabled:
		return gommonlog.OFF
	default:
		return gommonlog.ERROR
	}
}
