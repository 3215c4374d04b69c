package cmd

import (
	"context"

	"github.com/cryptolink/solkit/internal/app"
	"github.com/cryptolink/solkit/internal/config"
	"github.com/cryptolink/solkit/pkg/graceful"
	"github.com/spf13/cobra"
)

var serveWebCommand = &cobra.Command{
	Use:   "serve-web",
	Short: "Start HTTP API server",
	Run:   serveWeb,
}

func serveWeb(_ *cobra.Command, _ []string) {
	ctx := context.Background()
	cfg := resolveConfig()

	service := app.New(ctx, cfg)

	setupOnBeforeRun(service, cfg)

	service.RunServer()
	if err := graceful.WaitShutdown(); err != nil {
		service.Logger().Error().Err(err).Msg("unable to shutdown service gracefully")
		return
	}

	service.Logger().Info().Msg("shutdown complete")
}

func setupOnBeforeRun(service *app.App, cfg *config.Config) {
	service.OnBeforeRun(func(_ context.Context, _ *app.App) error {
		if _, err := cfg.Codec.Signature(); err != nil {
			return err
		}

		_, err := cfg.Codec.InstructionData()

		return err
	})

	service.OnBeforeRun(func(_ context.Context, a *app.App) error {
		a.Logger().Info().
			Str("transport", cfg.Web.Transport).
			Str("signature_encoding", cfg.Codec.SignatureEncoding).
			Str("instruction_data_encoding", cfg.Codec.InstructionDataEncoding).
			Bool("metrics", cfg.Web.Metrics).
			Msg("starting server")

		return nil
	})
}
