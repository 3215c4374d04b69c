package app

import (
	"context"
	"os"

	"github.com/cryptolink/solkit/internal/config"
	"github.com/cryptolink/solkit/internal/kms/wallet"
	"github.com/cryptolink/solkit/internal/log"
	"github.com/cryptolink/solkit/internal/server/endpoint"
	httpserver "github.com/cryptolink/solkit/internal/server/http"
	"github.com/cryptolink/solkit/internal/server/http/toolkitapi"
	muxserver "github.com/cryptolink/solkit/internal/server/mux"
	"github.com/cryptolink/solkit/internal/service/instruction"
	"github.com/cryptolink/solkit/internal/service/signing"
	"github.com/cryptolink/solkit/pkg/graceful"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

type Hook func(ctx context.Context, a *App) error

type server interface {
	Run() error
	Shutdown(ctx context.Context) error
}

type App struct {
	ctx       context.Context
	config    *config.Config
	logger    *zerolog.Logger
	draining  *atomic.Bool
	beforeRun []Hook
	server    server
}

func New(ctx context.Context, cfg *config.Config) *App {
	logger := log.New(os.Stdout, cfg.Logger.Level, cfg.Logger.Pretty).
		With().
		Str("env", cfg.Env).
		Logger()

	return &App{
		ctx:      ctx,
		config:   cfg,
		logger:   &logger,
		draining: atomic.NewBool(false),
	}
}

func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

func (a *App) Config() *config.Config {
	return a.config
}

// OnBeforeRun registers hook executed by RunServer before the listener starts.
func (a *App) OnBeforeRun(hook Hook) {
	a.beforeRun = append(a.beforeRun, hook)
}

// RunServer runs hooks, starts configured transport in background and
// registers its shutdown. Any startup failure is fatal.
func (a *App) RunServer() {
	for _, hook := range a.beforeRun {
		if err := hook(a.ctx, a); err != nil {
			a.logger.Fatal().Err(err).Msg("unable to run before-run hook")
		}
	}

	srv, err := a.buildServer()
	if err != nil {
		a.logger.Fatal().Err(err).Msg("unable to build server")
	}

	a.server = srv

	graceful.AddCallback(func() error {
		return a.Shutdown(context.Background())
	})

	go func() {
		if err := srv.Run(); err != nil {
			a.logger.Fatal().Err(err).Msg("server stopped")
		}
	}()
}

// Shutdown flips health to draining and stops the server.
func (a *App) Shutdown(ctx context.Context) error {
	a.draining.Store(true)

	if a.server == nil {
		return nil
	}

	a.logger.Info().Msg("shutting down server")

	return a.server.Shutdown(ctx)
}

// Endpoints assembles core services with configured encodings.
func (a *App) Endpoints() (*endpoint.Endpoints, error) {
	sigEnc, err := a.config.Codec.Signature()
	if err != nil {
		return nil, err
	}

	dataEnc, err := a.config.Codec.InstructionData()
	if err != nil {
		return nil, err
	}

	return endpoint.New(
		signing.New(&wallet.Generator{}, sigEnc, a.logger),
		instruction.New(a.logger),
		dataEnc,
	), nil
}

func (a *App) buildServer() (server, error) {
	endpoints, err := a.Endpoints()
	if err != nil {
		return nil, err
	}

	cfg := a.config.Web

	switch cfg.Transport {
	case httpserver.TransportEcho:
		handler := toolkitapi.New(endpoints, a.logger)

		return httpserver.New(cfg, a.logger,
			httpserver.WithHealth(handler, a.draining),
			httpserver.WithToolkitAPI(handler),
			httpserver.WithMetrics(),
		), nil
	case httpserver.TransportMux:
		srv, err := muxserver.New(cfg, endpoints, a.draining, a.logger)
		if err != nil {
			return nil, err
		}

		return srv, nil
	default:
		return nil, errors.Errorf("unknown web server transport %q", cfg.Transport)
	}
}
