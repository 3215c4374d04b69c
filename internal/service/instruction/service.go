// Package instruction builds unsigned Solana instructions out of untrusted
// requests: SPL token mint creation, minting, SOL and SPL token transfers.
package instruction

import (
	"github.com/cryptolink/solkit/internal/kms/wallet"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type Service struct {
	logger *zerolog.Logger
}

func New(logger *zerolog.Logger) *Service {
	log := logger.With().Str("channel", "instruction_service").Logger()

	return &Service{logger: &log}
}

// CreateToken builds SPL token InitializeMint instruction.
func (s *Service) CreateToken(req CreateTokenRequest) (*Descriptor, error) {
	params, err := req.validate()
	if err != nil {
		return nil, err
	}

	ix, err := BuildInitializeMint(params.mint, params.mintAuthority, params.decimals)
	if err != nil {
		return nil, errors.Wrap(err, "unable to build initialize mint instruction")
	}

	s.logger.Debug().
		Str("mint", params.mint.String()).
		Uint8("decimals", params.decimals).
		Msg("built initialize mint instruction")

	return ix, nil
}

// MintToken builds SPL token MintTo instruction crediting destination
// owner's associated token account.
func (s *Service) MintToken(req MintTokenRequest) (*Descriptor, error) {
	params, err := req.validate()
	if err != nil {
		return nil, err
	}

	destination, err := DeriveTokenAccount(params.destination, params.mint)
	if err != nil {
		return nil, errors.Wrap(err, "unable to derive destination token account")
	}

	ix, err := BuildMintTo(params.mint, destination, params.authority, params.amount)
	if err != nil {
		return nil, errors.Wrap(err, "unable to build mint to instruction")
	}

	s.logger.Debug().
		Str("mint", params.mint.String()).
		Str("destination_ata", destination.String()).
		Uint64("amount", params.amount).
		Msg("built mint to instruction")

	return ix, nil
}

// SendSOL builds System program Transfer instruction.
func (s *Service) SendSOL(req SendSOLRequest) (*Descriptor, error) {
	params, err := req.validate()
	if err != nil {
		return nil, err
	}

	ix, err := BuildNativeTransfer(params.from, params.to, params.lamports)
	if err != nil {
		return nil, errors.Wrap(err, "unable to build sol transfer instruction")
	}

	s.logger.Debug().
		Str("from", params.from.String()).
		Str("to", params.to.String()).
		Str("sol", wallet.LamportsToSOL(params.lamports).String()).
		Msg("built sol transfer instruction")

	return ix, nil
}

// SendToken builds SPL token Transfer instruction between associated token
// accounts of owner and destination. Owner signs.
func (s *Service) SendToken(req SendTokenRequest) (*Descriptor, error) {
	params, err := req.validate()
	if err != nil {
		return nil, err
	}

	source, err := DeriveTokenAccount(params.owner, params.mint)
	if err != nil {
		return nil, errors.Wrap(err, "unable to derive source token account")
	}

	destination, err := DeriveTokenAccount(params.destination, params.mint)
	if err != nil {
		return nil, errors.Wrap(err, "unable to derive destination token account")
	}

	ix, err := BuildTokenTransfer(source, destination, params.owner, params.amount)
	if err != nil {
		return nil, errors.Wrap(err, "unable to build token transfer instruction")
	}

	s.logger.Debug().
		Str("mint", params.mint.String()).
		Str("source_ata", source.String()).
		Str("destination_ata", destination.String()).
		Uint64("amount", params.amount).
		Msg("built token transfer instruction")

	return ix, nil
}
