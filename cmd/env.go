package cmd

import (
	"fmt"

	"github.com/cryptolink/solkit/internal/config"
	"github.com/spf13/cobra"
)

var envCommand = &cobra.Command{
	Use:   "env",
	Short: "List supported environment variables",
	RunE: func(_ *cobra.Command, _ []string) error {
		text, err := config.Describe()
		if err != nil {
			return err
		}

		fmt.Println(text)

		return nil
	},
}
