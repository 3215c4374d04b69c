package cmd

import (
	"fmt"
	"os"

	"github.com/cryptolink/solkit/internal/config"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "solkit",
	Short: "Stateless Solana keypair, signing and instruction building service",
}

func Execute() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to yaml config; env only when empty")

	rootCmd.AddCommand(serveWebCommand, keypairCommand, deriveATACommand, envCommand)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func resolveConfig() *config.Config {
	cfg, err := config.New(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to resolve config: %s\n", err.Error())
		os.Exit(1)
	}

	return cfg
}
