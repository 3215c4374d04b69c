package wallet

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
)

// AddressSize is the byte length of an ed25519 public key.
const AddressSize = 32

// base58 text of 32 bytes is never shorter than 32 chars ("1" * 32 for the
// zero key) nor longer than 44.
const (
	addressMinTextLength = 32
	addressMaxTextLength = 44
)

// Address is a Solana account address (ed25519 public key).
type Address [AddressSize]byte

// DecodeAddress parses base58 text into an Address. The text length check is
// only a cheap pre-filter: the decoded value must be exactly 32 bytes.
func DecodeAddress(text string) (Address, error) {
	if l := len(text); l < addressMinTextLength || l > addressMaxTextLength {
		return Address{}, fmt.Errorf(
			"%w: %w: text length %d is out of range [%d, %d]",
			ErrInvalidAddress, ErrInvalidLength, l, addressMinTextLength, addressMaxTextLength,
		)
	}

	decoded, err := base58.Decode(text)
	if err != nil {
		return Address{}, fmt.Errorf("%w: %w: %s", ErrInvalidAddress, ErrInvalidEncoding, err.Error())
	}

	if len(decoded) != AddressSize {
		return Address{}, fmt.Errorf(
			"%w: %w: got %d bytes, expected %d",
			ErrInvalidAddress, ErrInvalidLength, len(decoded), AddressSize,
		)
	}

	var a Address
	copy(a[:], decoded)

	return a, nil
}

// AddressFromPublicKey converts sdk public key into Address.
func AddressFromPublicKey(pk solana.PublicKey) Address {
	return Address(pk)
}

func (a Address) String() string {
	return base58.Encode(a[:])
}

func (a Address) Bytes() []byte {
	b := make([]byte, AddressSize)
	copy(b, a[:])

	return b
}

// PublicKey returns sdk representation used by instruction builders.
func (a Address) PublicKey() solana.PublicKey {
	return solana.PublicKey(a)
}

func (a Address) IsZero() bool {
	return a == Address{}
}
