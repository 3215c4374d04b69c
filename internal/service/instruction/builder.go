package instruction

import (
	"github.com/cryptolink/solkit/internal/kms/wallet"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/programs/token"
	"github.com/pkg/errors"
)

// ErrInstructionConstruction is returned when the instruction encoder
// rejects otherwise valid inputs.
var ErrInstructionConstruction = errors.New("instruction construction failed")

// Program ids shared by all requests. Values come from the SDK and are never reassigned.
var (
	TokenProgramID           = wallet.AddressFromPublicKey(solana.TokenProgramID)
	SystemProgramID          = wallet.AddressFromPublicKey(solana.SystemProgramID)
	AssociatedTokenProgramID = wallet.AddressFromPublicKey(solana.SPLAssociatedTokenAccountProgramID)
	RentSysvarID             = wallet.AddressFromPublicKey(solana.SysVarRentPubkey)
)

// AccountRef is a single entry of instruction's account list.
type AccountRef struct {
	Address    wallet.Address
	IsSigner   bool
	IsWritable bool
}

// Descriptor describes an unsigned instruction for the caller to put into a
// transaction. It is never executed nor signed here.
type Descriptor struct {
	ProgramID wallet.Address
	Accounts  []AccountRef
	Data      []byte
}

// BuildInitializeMint accounts: [mint(w), rent sysvar].
// No freeze authority is set.
func BuildInitializeMint(mint, mintAuthority wallet.Address, decimals uint8) (*Descriptor, error) {
	ix, err := token.NewInitializeMintInstructionBuilder().
		SetDecimals(decimals).
		SetMintAuthority(mintAuthority.PublicKey()).
		SetMintAccount(mint.PublicKey()).
		SetSysVarRentPubkeyAccount(solana.SysVarRentPubkey).
		ValidateAndBuild()
	if err != nil {
		return nil, errors.Wrap(ErrInstructionConstruction, err.Error())
	}

	return describe(ix)
}

// BuildMintTo accounts: [mint(w), destination token account(w), authority(s)].
func BuildMintTo(mint, destination, authority wallet.Address, amount uint64) (*Descriptor, error) {
	ix, err := token.NewMintToInstructionBuilder().
		SetAmount(amount).
		SetMintAccount(mint.PublicKey()).
		SetDestinationAccount(destination.PublicKey()).
		SetAuthorityAccount(authority.PublicKey()).
		ValidateAndBuild()
	if err != nil {
		return nil, errors.Wrap(ErrInstructionConstruction, err.Error())
	}

	return describe(ix)
}

// BuildNativeTransfer accounts: [from(s,w), to(w)].
func BuildNativeTransfer(from, to wallet.Address, lamports uint64) (*Descriptor, error) {
	ix, err := system.NewTransferInstructionBuilder().
		SetLamports(lamports).
		SetFundingAccount(from.PublicKey()).
		SetRecipientAccount(to.PublicKey()).
		ValidateAndBuild()
	if err != nil {
		return nil, errors.Wrap(ErrInstructionConstruction, err.Error())
	}

	return describe(ix)
}

// BuildTokenTransfer accounts: [source(w), destination(w), owner(s)].
// Source and destination are token accounts, not wallets.
func BuildTokenTransfer(source, destination, owner wallet.Address, amount uint64) (*Descriptor, error) {
	ix, err := token.NewTransferInstructionBuilder().
		SetAmount(amount).
		SetSourceAccount(source.PublicKey()).
		SetDestinationAccount(destination.PublicKey()).
		SetOwnerAccount(owner.PublicKey()).
		ValidateAndBuild()
	if err != nil {
		return nil, errors.Wrap(ErrInstructionConstruction, err.Error())
	}

	return describe(ix)
}

func describe(ix solana.Instruction) (*Descriptor, error) {
	data, err := ix.Data()
	if err != nil {
		return nil, errors.Wrap(ErrInstructionConstruction, err.Error())
	}

	metas := ix.Accounts()
	accounts := make([]AccountRef, len(metas))
	for i, meta := range metas {
		accounts[i] = AccountRef{
			Address:    wallet.AddressFromPublicKey(meta.PublicKey),
			IsSigner:   meta.IsSigner,
			IsWritable: meta.IsWritable,
		}
	}

	return &Descriptor{
		ProgramID: wallet.AddressFromPublicKey(ix.ProgramID()),
		Accounts:  accounts,
		Data:      data,
	}, nil
}
