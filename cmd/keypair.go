package cmd

import (
	"os"
	"strconv"

	"github.com/cryptolink/solkit/internal/kms/wallet"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var keypairCount int

var keypairCommand = &cobra.Command{
	Use:   "keypair",
	Short: "Generate keypairs offline and print them as a table",
	RunE:  generateKeypairs,
}

func init() {
	keypairCommand.Flags().IntVarP(&keypairCount, "count", "n", 1, "number of keypairs")
}

func generateKeypairs(_ *cobra.Command, _ []string) error {
	generator := &wallet.Generator{}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"#", "Pubkey", "Secret"})

	for i := 0; i < keypairCount; i++ {
		kp, err := generator.Generate()
		if err != nil {
			return err
		}

		table.Append([]string{strconv.Itoa(i + 1), kp.Address().String(), kp.Secret()})
	}

	table.Render()

	return nil
}
