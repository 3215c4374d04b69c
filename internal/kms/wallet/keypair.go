package wallet

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"io"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

// KeyPairSize is the byte length of a Solana secret key bundle: 32-byte seed
// followed by the 32-byte public key.
const KeyPairSize = ed25519.PrivateKeySize

// KeyPair holds ed25519 key material. It is built either by Generator or by
// DecodeKeyPair and never leaves the request that created it.
type KeyPair struct {
	private ed25519.PrivateKey
}

// DecodeKeyPair parses a base58 encoded 64-byte secret key bundle.
// Byte length is verified before the public half is checked against the seed,
// so callers can tell a truncated secret from a forged one.
func DecodeKeyPair(text string) (*KeyPair, error) {
	decoded, err := base58.Decode(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %s", ErrInvalidKeyMaterial, ErrInvalidEncoding, err.Error())
	}

	if len(decoded) != KeyPairSize {
		return nil, fmt.Errorf(
			"%w: %w: expected %d bytes, got %d",
			ErrInvalidKeyMaterial, ErrInvalidLength, KeyPairSize, len(decoded),
		)
	}

	private := ed25519.NewKeyFromSeed(decoded[:ed25519.SeedSize])
	if subtle.ConstantTimeCompare(private[ed25519.SeedSize:], decoded[ed25519.SeedSize:]) != 1 {
		return nil, errors.Wrap(ErrInvalidKeyMaterial, "public key does not match secret seed")
	}

	return &KeyPair{private: private}, nil
}

func (kp *KeyPair) Address() Address {
	var a Address
	copy(a[:], kp.private[ed25519.SeedSize:])

	return a
}

// Secret returns base58 encoded 64-byte secret key bundle.
func (kp *KeyPair) Secret() string {
	return base58.Encode(kp.private)
}

// Sign produces deterministic ed25519 signature of raw message bytes.
func (kp *KeyPair) Sign(message []byte) Signature {
	var sig Signature
	copy(sig[:], ed25519.Sign(kp.private, message))

	return sig
}

// Generator creates fresh keypairs. CryptoReader must be a CSPRNG; nil means crypto/rand.
type Generator struct {
	CryptoReader io.Reader
}

func (g *Generator) Generate() (*KeyPair, error) {
	reader := g.CryptoReader
	if reader == nil {
		reader = rand.Reader
	}

	_, private, err := ed25519.GenerateKey(reader)
	if err != nil {
		return nil, errors.Wrap(err, "unable to generate ed25519 keypair")
	}

	return &KeyPair{private: private}, nil
}
