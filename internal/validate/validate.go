// Package validate holds request validation primitives. Callers apply them in
// a fixed order (presence, amounts, structure) and stop at the first failure,
// so the reported error is deterministic.
package validate

import (
	"strings"

	"github.com/cryptolink/solkit/internal/kms/wallet"
	"github.com/pkg/errors"
)

var (
	ErrMissingField      = errors.New("missing required field")
	ErrNonPositiveAmount = errors.New("must be greater than 0")
)

// Field is a named raw request value.
type Field struct {
	Name  string
	Value string
}

// Required fails on the first field that is empty or whitespace only.
func Required(fields ...Field) error {
	for _, f := range fields {
		if strings.TrimSpace(f.Value) == "" {
			return errors.WithMessage(ErrMissingField, f.Name)
		}
	}

	return nil
}

// NonEmpty fails on the first empty field. Whitespace is a value: signed
// messages and key material are taken byte for byte.
func NonEmpty(fields ...Field) error {
	for _, f := range fields {
		if f.Value == "" {
			return errors.WithMessage(ErrMissingField, f.Name)
		}
	}

	return nil
}

func Positive(name string, value uint64) error {
	if value == 0 {
		return errors.WithMessage(ErrNonPositiveAmount, name)
	}

	return nil
}

func Address(f Field) (wallet.Address, error) {
	addr, err := wallet.DecodeAddress(f.Value)
	if err != nil {
		return wallet.Address{}, errors.WithMessage(err, f.Name)
	}

	return addr, nil
}

// Addresses decodes fields in order and fails on the first invalid one.
func Addresses(fields ...Field) ([]wallet.Address, error) {
	out := make([]wallet.Address, len(fields))
	for i, f := range fields {
		addr, err := Address(f)
		if err != nil {
			return nil, err
		}

		out[i] = addr
	}

	return out, nil
}

func KeyPair(f Field) (*wallet.KeyPair, error) {
	kp, err := wallet.DecodeKeyPair(f.Value)
	if err != nil {
		return nil, errors.WithMessage(err, f.Name)
	}

	return kp, nil
}

func Signature(f Field, enc wallet.Encoding) (wallet.Signature, error) {
	sig, err := enc.DecodeSignature(f.Value)
	if err != nil {
		return wallet.Signature{}, errors.WithMessage(err, f.Name)
	}

	return sig, nil
}
