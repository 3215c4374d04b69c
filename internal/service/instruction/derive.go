package instruction

import (
	"github.com/cryptolink/solkit/internal/kms/wallet"
	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
)

// DeriveTokenAccount returns associated token account of owner for mint:
// PDA of [owner, token program, mint] under associated token account program.
func DeriveTokenAccount(owner, mint wallet.Address) (wallet.Address, error) {
	ata, _, err := solana.FindAssociatedTokenAddress(owner.PublicKey(), mint.PublicKey())
	if err != nil {
		return wallet.Address{}, errors.Wrap(ErrInstructionConstruction, err.Error())
	}

	return wallet.AddressFromPublicKey(ata), nil
}
