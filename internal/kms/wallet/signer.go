package wallet

import (
	"crypto/ed25519"

	"filippo.io/edwards25519"
)

// Verify performs strict ed25519 verification: on top of the RFC 8032 check it
// rejects small-order public keys and R points, and non-canonical encodings of
// either. Invalid signatures are an expected outcome, hence bool.
func Verify(address Address, message []byte, sig Signature) bool {
	if !isStrictPoint(address[:]) || !isStrictPoint(sig[:32]) {
		return false
	}

	// crypto/ed25519 rejects S >= L itself.
	return ed25519.Verify(address[:], message, sig[:])
}

func isStrictPoint(encoded []byte) bool {
	p, err := new(edwards25519.Point).SetBytes(encoded)
	if err != nil {
		return false
	}

	// SetBytes accepts y >= p; re-encoding exposes it.
	if string(p.Bytes()) != string(encoded) {
		return false
	}

	torsion := new(edwards25519.Point).MultByCofactor(p)

	return torsion.Equal(edwards25519.NewIdentityPoint()) != 1
}
