package instruction_test

import (
	"crypto/sha256"
	"testing"

	"filippo.io/edwards25519"
	"github.com/cryptolink/solkit/internal/kms/wallet"
	"github.com/cryptolink/solkit/internal/service/instruction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// findProgramAddress is an independent PDA derivation: highest bump whose
// sha256(seeds || bump || program || marker) is off the ed25519 curve.
func findProgramAddress(t *testing.T, seeds [][]byte, program []byte) wallet.Address {
	t.Helper()

	for bump := 255; bump >= 0; bump-- {
		h := sha256.New()
		for _, seed := range seeds {
			h.Write(seed)
		}
		h.Write([]byte{byte(bump)})
		h.Write(program)
		h.Write([]byte("ProgramDerivedAddress"))

		sum := h.Sum(nil)
		if _, err := new(edwards25519.Point).SetBytes(sum); err != nil {
			var addr wallet.Address
			copy(addr[:], sum)

			return addr
		}
	}

	t.Fatal("no viable bump")

	return wallet.Address{}
}

func TestDeriveTokenAccount_MatchesPDA(t *testing.T) {
	mint := mustAddress(t, usdcMint)

	for i := 0; i < 16; i++ {
		owner := newAddress(t)

		ata, err := instruction.DeriveTokenAccount(owner, mint)
		require.NoError(t, err)

		expected := findProgramAddress(t,
			[][]byte{owner.Bytes(), instruction.TokenProgramID.Bytes(), mint.Bytes()},
			instruction.AssociatedTokenProgramID.Bytes(),
		)
		assert.Equal(t, expected, ata)
	}
}

func TestDeriveTokenAccount_Determinism(t *testing.T) {
	owner, mint := newAddress(t), newAddress(t)

	first, err := instruction.DeriveTokenAccount(owner, mint)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := instruction.DeriveTokenAccount(owner, mint)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}

	otherOwner, err := instruction.DeriveTokenAccount(newAddress(t), mint)
	require.NoError(t, err)
	assert.NotEqual(t, first, otherOwner)

	otherMint, err := instruction.DeriveTokenAccount(owner, newAddress(t))
	require.NoError(t, err)
	assert.NotEqual(t, first, otherMint)

	swapped, err := instruction.DeriveTokenAccount(mint, owner)
	require.NoError(t, err)
	assert.NotEqual(t, first, swapped)

	assert.NotEqual(t, owner, first)
}
