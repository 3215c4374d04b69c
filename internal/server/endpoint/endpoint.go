// Package endpoint maps API models to core services and back. Transports
// only decode bodies and write envelopes around what it returns.
package endpoint

import (
	"github.com/cryptolink/solkit/internal/kms/wallet"
	"github.com/cryptolink/solkit/internal/service/instruction"
	"github.com/cryptolink/solkit/internal/service/signing"
	"github.com/cryptolink/solkit/pkg/api-toolkit/v1/model"
	"github.com/samber/lo"
)

const HealthMessage = "Server is running"

// Route paths served by every transport.
const (
	PathHealth        = "/health"
	PathKeypair       = "/keypair"
	PathSignMessage   = "/message/sign"
	PathVerifyMessage = "/message/verify"
	PathCreateToken   = "/token/create"
	PathMintToken     = "/token/mint"
	PathSendSOL       = "/send/sol"
	PathSendToken     = "/send/token"
)

type Endpoints struct {
	signer       *signing.Service
	instructions *instruction.Service
	dataEncoding wallet.Encoding
}

// New endpoints. dataEncoding is the textual form of instruction_data.
func New(signer *signing.Service, instructions *instruction.Service, dataEncoding wallet.Encoding) *Endpoints {
	return &Endpoints{
		signer:       signer,
		instructions: instructions,
		dataEncoding: dataEncoding,
	}
}

func (e *Endpoints) GenerateKeypair() (*model.Keypair, error) {
	kp, err := e.signer.GenerateKeyPair()
	if err != nil {
		return nil, err
	}

	return &model.Keypair{
		Pubkey: kp.Address().String(),
		Secret: kp.Secret(),
	}, nil
}

func (e *Endpoints) SignMessage(req *model.SignMessageRequest) (*model.SignedMessage, error) {
	signed, err := e.signer.SignMessage(signing.SignMessageRequest{
		Message: req.Message,
		Secret:  req.Secret,
	})
	if err != nil {
		return nil, err
	}

	return &model.SignedMessage{
		Signature: e.signer.Encoding().EncodeSignature(signed.Signature),
		PublicKey: signed.Address.String(),
		Message:   signed.Message,
	}, nil
}

func (e *Endpoints) VerifyMessage(req *model.VerifyMessageRequest) (*model.Verification, error) {
	res, err := e.signer.VerifyMessage(signing.VerifyMessageRequest{
		Message:   req.Message,
		Signature: req.Signature,
		PubKey:    req.Pubkey,
	})
	if err != nil {
		return nil, err
	}

	return &model.Verification{
		Valid:   res.Valid,
		Message: res.Message,
		Pubkey:  res.Address.String(),
	}, nil
}

func (e *Endpoints) CreateToken(req *model.CreateTokenRequest) (*model.Instruction, error) {
	ix, err := e.instructions.CreateToken(instruction.CreateTokenRequest{
		MintAuthority: req.MintAuthority,
		Mint:          req.Mint,
		Decimals:      req.Decimals,
	})
	if err != nil {
		return nil, err
	}

	return e.instructionToResponse(ix), nil
}

func (e *Endpoints) MintToken(req *model.MintTokenRequest) (*model.Instruction, error) {
	ix, err := e.instructions.MintToken(instruction.MintTokenRequest{
		Mint:        req.Mint,
		Destination: req.Destination,
		Authority:   req.Authority,
		Amount:      req.Amount,
	})
	if err != nil {
		return nil, err
	}

	return e.instructionToResponse(ix), nil
}

func (e *Endpoints) SendSOL(req *model.SendSOLRequest) (*model.SolTransfer, error) {
	ix, err := e.instructions.SendSOL(instruction.SendSOLRequest{
		From:     req.From,
		To:       req.To,
		Lamports: req.Lamports,
	})
	if err != nil {
		return nil, err
	}

	return &model.SolTransfer{
		ProgramID: ix.ProgramID.String(),
		Accounts: lo.Map(ix.Accounts, func(a instruction.AccountRef, _ int) string {
			return a.Address.String()
		}),
		InstructionData: e.dataEncoding.Encode(ix.Data),
	}, nil
}

func (e *Endpoints) SendToken(req *model.SendTokenRequest) (*model.TokenTransfer, error) {
	ix, err := e.instructions.SendToken(instruction.SendTokenRequest{
		Destination: req.Destination,
		Mint:        req.Mint,
		Owner:       req.Owner,
		Amount:      req.Amount,
	})
	if err != nil {
		return nil, err
	}

	return &model.TokenTransfer{
		ProgramID: ix.ProgramID.String(),
		Accounts: lo.Map(ix.Accounts, func(a instruction.AccountRef, _ int) model.TokenTransferAccount {
			return model.TokenTransferAccount{Pubkey: a.Address.String(), IsSigner: a.IsSigner}
		}),
		InstructionData: e.dataEncoding.Encode(ix.Data),
	}, nil
}

func (e *Endpoints) instructionToResponse(ix *instruction.Descriptor) *model.Instruction {
	return &model.Instruction{
		ProgramID:       ix.ProgramID.String(),
		Accounts:        lo.Map(ix.Accounts, accountToResponse),
		InstructionData: e.dataEncoding.Encode(ix.Data),
	}
}

func accountToResponse(a instruction.AccountRef, _ int) model.AccountMeta {
	return model.AccountMeta{
		Pubkey:     a.Address.String(),
		IsSigner:   a.IsSigner,
		IsWritable: a.IsWritable,
	}
}
