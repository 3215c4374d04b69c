package cmd

import (
	"os"
	"strconv"

	"github.com/cryptolink/solkit/internal/kms/wallet"
	"github.com/cryptolink/solkit/internal/service/instruction"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	deriveAmount   uint64
	deriveDecimals uint8
)

var deriveATACommand = &cobra.Command{
	Use:   "derive-ata <owner> <mint>",
	Short: "Print associated token account of owner for mint",
	Args:  cobra.ExactArgs(2),
	RunE:  deriveATA,
}

func init() {
	deriveATACommand.Flags().Uint64Var(&deriveAmount, "amount", 0, "raw token amount to render with --decimals")
	deriveATACommand.Flags().Uint8Var(&deriveDecimals, "decimals", 0, "mint decimals")
}

func deriveATA(_ *cobra.Command, args []string) error {
	owner, err := wallet.DecodeAddress(args[0])
	if err != nil {
		return errors.WithMessage(err, "owner")
	}

	mint, err := wallet.DecodeAddress(args[1])
	if err != nil {
		return errors.WithMessage(err, "mint")
	}

	ata, err := instruction.DeriveTokenAccount(owner, mint)
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Field", "Value"})
	table.Append([]string{"Owner", owner.String()})
	table.Append([]string{"Mint", mint.String()})
	table.Append([]string{"Token account", ata.String()})

	if deriveAmount > 0 {
		table.Append([]string{"Raw amount", strconv.FormatUint(deriveAmount, 10)})
		table.Append([]string{"UI amount", wallet.TokenAmount(deriveAmount, deriveDecimals).String()})
	}

	table.Render()

	return nil
}
