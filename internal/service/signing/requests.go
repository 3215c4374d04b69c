package signing

import (
	"github.com/cryptolink/solkit/internal/kms/wallet"
	"github.com/cryptolink/solkit/internal/validate"
)

type SignMessageRequest struct {
	Message string
	Secret  string
}

type signParams struct {
	message []byte
	keyPair *wallet.KeyPair
}

func (r SignMessageRequest) validate() (signParams, error) {
	if err := validate.NonEmpty(
		validate.Field{Name: "message", Value: r.Message},
		validate.Field{Name: "secret", Value: r.Secret},
	); err != nil {
		return signParams{}, err
	}

	kp, err := validate.KeyPair(validate.Field{Name: "secret", Value: r.Secret})
	if err != nil {
		return signParams{}, err
	}

	return signParams{message: []byte(r.Message), keyPair: kp}, nil
}

type VerifyMessageRequest struct {
	Message   string
	Signature string
	PubKey    string
}

type verifyParams struct {
	message   []byte
	signature wallet.Signature
	address   wallet.Address
}

func (r VerifyMessageRequest) validate(enc wallet.Encoding) (verifyParams, error) {
	signatureField := validate.Field{Name: "signature", Value: r.Signature}
	pubKeyField := validate.Field{Name: "pubkey", Value: r.PubKey}

	if err := validate.NonEmpty(
		validate.Field{Name: "message", Value: r.Message},
		signatureField,
		pubKeyField,
	); err != nil {
		return verifyParams{}, err
	}

	sig, err := validate.Signature(signatureField, enc)
	if err != nil {
		return verifyParams{}, err
	}

	address, err := validate.Address(pubKeyField)
	if err != nil {
		return verifyParams{}, err
	}

	return verifyParams{message: []byte(r.Message), signature: sig, address: address}, nil
}
