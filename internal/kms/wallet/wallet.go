// Package wallet provides Solana key material codecs, keypair generation and
// Ed25519 message signing & verification.
package wallet

import (
	"github.com/pkg/errors"
)

// Error kinds returned by the codecs. A decode error always matches its
// subject kind (address, key material, signature) and, when applicable,
// the reason kind (encoding or length) via errors.Is.
var (
	ErrInvalidEncoding    = errors.New("invalid encoding")
	ErrInvalidLength      = errors.New("invalid length")
	ErrInvalidAddress     = errors.New("invalid address")
	ErrInvalidKeyMaterial = errors.New("invalid key material")
	ErrInvalidSignature   = errors.New("invalid signature")
)
