// Package signing exposes keypair generation, message signing and
// verification on top of wallet key material.
package signing

import (
	"github.com/cryptolink/solkit/internal/kms/wallet"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type Service struct {
	generator *wallet.Generator
	encoding  wallet.Encoding
	logger    *zerolog.Logger
}

type Signed struct {
	Signature wallet.Signature
	Address   wallet.Address
	Message   string
}

type Verification struct {
	Valid   bool
	Address wallet.Address
	Message string
}

// New signing service. encoding is the textual form of signatures accepted
// by VerifyMessage.
func New(generator *wallet.Generator, encoding wallet.Encoding, logger *zerolog.Logger) *Service {
	log := logger.With().Str("channel", "signing_service").Logger()

	return &Service{
		generator: generator,
		encoding:  encoding,
		logger:    &log,
	}
}

func (s *Service) Encoding() wallet.Encoding {
	return s.encoding
}

func (s *Service) GenerateKeyPair() (*wallet.KeyPair, error) {
	kp, err := s.generator.Generate()
	if err != nil {
		return nil, errors.Wrap(err, "unable to generate keypair")
	}

	s.logger.Debug().Str("pubkey", kp.Address().String()).Msg("generated keypair")

	return kp, nil
}

func (s *Service) SignMessage(req SignMessageRequest) (*Signed, error) {
	params, err := req.validate()
	if err != nil {
		return nil, err
	}

	return &Signed{
		Signature: params.keyPair.Sign(params.message),
		Address:   params.keyPair.Address(),
		Message:   req.Message,
	}, nil
}

// VerifyMessage returns Valid=false for a well-formed signature that does not
// match. Malformed inputs are errors.
func (s *Service) VerifyMessage(req VerifyMessageRequest) (*Verification, error) {
	params, err := req.validate(s.encoding)
	if err != nil {
		return nil, err
	}

	valid := wallet.Verify(params.address, params.message, params.signature)

	s.logger.Debug().
		Str("pubkey", params.address.String()).
		Bool("valid", valid).
		Msg("verified message")

	return &Verification{
		Valid:   valid,
		Address: params.address,
		Message: req.Message,
	}, nil
}
