package wallet

import (
	"crypto/ed25519"
	"fmt"
)

const SignatureSize = ed25519.SignatureSize

// Signature is a raw 64-byte ed25519 signature.
type Signature [SignatureSize]byte

func (e Encoding) EncodeSignature(sig Signature) string {
	return e.Encode(sig[:])
}

// DecodeSignature rejects anything that does not resolve to exactly 64 bytes,
// whatever the alphabet is.
func (e Encoding) DecodeSignature(text string) (Signature, error) {
	decoded, err := e.Decode(text)
	if err != nil {
		return Signature{}, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}

	if len(decoded) != SignatureSize {
		return Signature{}, fmt.Errorf(
			"%w: %w: got %d bytes, expected %d",
			ErrInvalidSignature, ErrInvalidLength, len(decoded), SignatureSize,
		)
	}

	var sig Signature
	copy(sig[:], decoded)

	return sig, nil
}
