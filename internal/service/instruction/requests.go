package instruction

import (
	"github.com/cryptolink/solkit/internal/kms/wallet"
	"github.com/cryptolink/solkit/internal/validate"
)

// Every validate() runs presence checks, then amount checks, then address
// decoding, each in field declaration order. First failure wins.

type CreateTokenRequest struct {
	MintAuthority string
	Mint          string
	Decimals      uint8
}

type MintTokenRequest struct {
	Mint        string
	Destination string
	Authority   string
	Amount      uint64
}

type SendSOLRequest struct {
	From     string
	To       string
	Lamports uint64
}

// SendTokenRequest transfers tokens of Mint from Owner's associated token
// account to Destination's associated token account.
type SendTokenRequest struct {
	Destination string
	Mint        string
	Owner       string
	Amount      uint64
}

type createTokenParams struct {
	mintAuthority wallet.Address
	mint          wallet.Address
	decimals      uint8
}

func (r CreateTokenRequest) validate() (createTokenParams, error) {
	fields := []validate.Field{
		{Name: "mintAuthority", Value: r.MintAuthority},
		{Name: "mint", Value: r.Mint},
	}

	if err := validate.Required(fields...); err != nil {
		return createTokenParams{}, err
	}

	addrs, err := validate.Addresses(fields...)
	if err != nil {
		return createTokenParams{}, err
	}

	return createTokenParams{mintAuthority: addrs[0], mint: addrs[1], decimals: r.Decimals}, nil
}

type mintTokenParams struct {
	mint        wallet.Address
	destination wallet.Address
	authority   wallet.Address
	amount      uint64
}

func (r MintTokenRequest) validate() (mintTokenParams, error) {
	fields := []validate.Field{
		{Name: "mint", Value: r.Mint},
		{Name: "destination", Value: r.Destination},
		{Name: "authority", Value: r.Authority},
	}

	if err := validate.Required(fields...); err != nil {
		return mintTokenParams{}, err
	}

	if err := validate.Positive("amount", r.Amount); err != nil {
		return mintTokenParams{}, err
	}

	addrs, err := validate.Addresses(fields...)
	if err != nil {
		return mintTokenParams{}, err
	}

	return mintTokenParams{mint: addrs[0], destination: addrs[1], authority: addrs[2], amount: r.Amount}, nil
}

type sendSOLParams struct {
	from     wallet.Address
	to       wallet.Address
	lamports uint64
}

func (r SendSOLRequest) validate() (sendSOLParams, error) {
	fields := []validate.Field{
		{Name: "from", Value: r.From},
		{Name: "to", Value: r.To},
	}

	if err := validate.Required(fields...); err != nil {
		return sendSOLParams{}, err
	}

	if err := validate.Positive("lamports", r.Lamports); err != nil {
		return sendSOLParams{}, err
	}

	addrs, err := validate.Addresses(fields...)
	if err != nil {
		return sendSOLParams{}, err
	}

	return sendSOLParams{from: addrs[0], to: addrs[1], lamports: r.Lamports}, nil
}

type sendTokenParams struct {
	destination wallet.Address
	mint        wallet.Address
	owner       wallet.Address
	amount      uint64
}

func (r SendTokenRequest) validate() (sendTokenParams, error) {
	fields := []validate.Field{
		{Name: "destination", Value: r.Destination},
		{Name: "mint", Value: r.Mint},
		{Name: "owner", Value: r.Owner},
	}

	if err := validate.Required(fields...); err != nil {
		return sendTokenParams{}, err
	}

	if err := validate.Positive("amount", r.Amount); err != nil {
		return sendTokenParams{}, err
	}

	addrs, err := validate.Addresses(fields...)
	if err != nil {
		return sendTokenParams{}, err
	}

	return sendTokenParams{destination: addrs[0], mint: addrs[1], owner: addrs[2], amount: r.Amount}, nil
}
