package instruction_test

import (
	"testing"

	"github.com/cryptolink/solkit/internal/kms/wallet"
	"github.com/cryptolink/solkit/internal/service/instruction"
	"github.com/cryptolink/solkit/internal/validate"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() *instruction.Service {
	logger := zerolog.Nop()

	return instruction.New(&logger)
}

func TestService_CreateToken(t *testing.T) {
	s := newService()
	mint, authority := newAddress(t), newAddress(t)

	t.Run("success", func(t *testing.T) {
		ix, err := s.CreateToken(instruction.CreateTokenRequest{
			MintAuthority: authority.String(),
			Mint:          mint.String(),
			Decimals:      6,
		})
		require.NoError(t, err)

		expected, err := instruction.BuildInitializeMint(mint, authority, 6)
		require.NoError(t, err)
		assert.Equal(t, expected, ix)
	})

	for _, tt := range []struct {
		name      string
		req       instruction.CreateTokenRequest
		expectErr error
		message   string
	}{
		{
			name:      "missing authority",
			req:       instruction.CreateTokenRequest{Mint: mint.String()},
			expectErr: validate.ErrMissingField,
			message:   "mintAuthority: missing required field",
		},
		{
			name:      "whitespace mint",
			req:       instruction.CreateTokenRequest{MintAuthority: authority.String(), Mint: "  "},
			expectErr: validate.ErrMissingField,
			message:   "mint: missing required field",
		},
		{
			name:      "invalid mint",
			req:       instruction.CreateTokenRequest{MintAuthority: authority.String(), Mint: "not-base58!!"},
			expectErr: wallet.ErrInvalidAddress,
		},
		{
			name:      "invalid authority reported before invalid mint",
			req:       instruction.CreateTokenRequest{MintAuthority: "bad", Mint: "also bad"},
			expectErr: wallet.ErrInvalidAddress,
			message:   "mintAuthority: invalid address: invalid length: text length 3 is out of range [32, 44]",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			ix, err := s.CreateToken(tt.req)
			require.Error(t, err)
			assert.Nil(t, ix)
			assert.True(t, errors.Is(err, tt.expectErr))

			if tt.message != "" {
				assert.Equal(t, tt.message, err.Error())
			}
		})
	}
}

func TestService_MintToken(t *testing.T) {
	s := newService()
	mint, owner, authority := newAddress(t), newAddress(t), newAddress(t)

	ix, err := s.MintToken(instruction.MintTokenRequest{
		Mint:        mint.String(),
		Destination: owner.String(),
		Authority:   authority.String(),
		Amount:      42,
	})
	require.NoError(t, err)

	ata, err := instruction.DeriveTokenAccount(owner, mint)
	require.NoError(t, err)

	require.Len(t, ix.Accounts, 3)
	assert.Equal(t, mint, ix.Accounts[0].Address)
	assert.Equal(t, ata, ix.Accounts[1].Address)
	assert.NotEqual(t, owner, ix.Accounts[1].Address)
	assert.Equal(t, authority, ix.Accounts[2].Address)
	assert.True(t, ix.Accounts[2].IsSigner)
	assert.Equal(t, append([]byte{7}, le64(42)...), ix.Data)

	_, err = s.MintToken(instruction.MintTokenRequest{
		Mint:        mint.String(),
		Destination: owner.String(),
		Authority:   authority.String(),
	})
	assert.True(t, errors.Is(err, validate.ErrNonPositiveAmount))

	_, err = s.MintToken(instruction.MintTokenRequest{
		Mint:        mint.String(),
		Destination: "",
		Authority:   authority.String(),
		Amount:      1,
	})
	assert.True(t, errors.Is(err, validate.ErrMissingField))

	_, err = s.MintToken(instruction.MintTokenRequest{
		Mint:        mint.String(),
		Destination: owner.String(),
		Authority:   "3yZe7d",
		Amount:      1,
	})
	assert.True(t, errors.Is(err, wallet.ErrInvalidAddress))
}

func TestService_SendSOL(t *testing.T) {
	s := newService()
	from, to := newAddress(t), newAddress(t)

	t.Run("success", func(t *testing.T) {
		ix, err := s.SendSOL(instruction.SendSOLRequest{From: from.String(), To: to.String(), Lamports: 5000})
		require.NoError(t, err)

		assert.Equal(t, instruction.SystemProgramID, ix.ProgramID)
		assert.Equal(t, from, ix.Accounts[0].Address)
		assert.Equal(t, to, ix.Accounts[1].Address)
		assert.Equal(t, append([]byte{2, 0, 0, 0}, le64(5000)...), ix.Data)
	})

	t.Run("missing field wins over everything", func(t *testing.T) {
		_, err := s.SendSOL(instruction.SendSOLRequest{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, validate.ErrMissingField))
		assert.False(t, errors.Is(err, wallet.ErrInvalidAddress))
		assert.Equal(t, "from: missing required field", err.Error())
	})

	t.Run("zero lamports with invalid addresses", func(t *testing.T) {
		_, err := s.SendSOL(instruction.SendSOLRequest{From: "bad", To: "worse", Lamports: 0})
		require.Error(t, err)
		assert.True(t, errors.Is(err, validate.ErrNonPositiveAmount))
		assert.Equal(t, "lamports: must be greater than 0", err.Error())
	})

	t.Run("zero lamports with valid addresses", func(t *testing.T) {
		_, err := s.SendSOL(instruction.SendSOLRequest{From: from.String(), To: to.String()})
		require.Error(t, err)
		assert.True(t, errors.Is(err, validate.ErrNonPositiveAmount))
	})

	t.Run("invalid recipient", func(t *testing.T) {
		_, err := s.SendSOL(instruction.SendSOLRequest{From: from.String(), To: "not-base58!!", Lamports: 1})
		require.Error(t, err)
		assert.True(t, errors.Is(err, wallet.ErrInvalidAddress))
		assert.Contains(t, err.Error(), "to: ")
	})
}

func TestService_SendToken(t *testing.T) {
	s := newService()
	owner, destination := newAddress(t), newAddress(t)
	mint := mustAddress(t, usdcMint)

	ix, err := s.SendToken(instruction.SendTokenRequest{
		Destination: destination.String(),
		Mint:        mint.String(),
		Owner:       owner.String(),
		Amount:      100,
	})
	require.NoError(t, err)

	sourceATA, err := instruction.DeriveTokenAccount(owner, mint)
	require.NoError(t, err)

	destinationATA, err := instruction.DeriveTokenAccount(destination, mint)
	require.NoError(t, err)

	assert.Equal(t, instruction.TokenProgramID, ix.ProgramID)
	assert.Equal(t, []instruction.AccountRef{
		{Address: sourceATA, IsWritable: true},
		{Address: destinationATA, IsWritable: true},
		{Address: owner, IsSigner: true},
	}, ix.Accounts)
	assert.Equal(t, append([]byte{3}, le64(100)...), ix.Data)

	_, err = s.SendToken(instruction.SendTokenRequest{
		Destination: "x",
		Mint:        "y",
		Owner:       "z",
	})
	assert.True(t, errors.Is(err, validate.ErrNonPositiveAmount))

	_, err = s.SendToken(instruction.SendTokenRequest{
		Destination: destination.String(),
		Mint:        "not-base58!!",
		Owner:       owner.String(),
		Amount:      1,
	})
	assert.True(t, errors.Is(err, wallet.ErrInvalidAddress))
	assert.Contains(t, err.Error(), "mint: ")
}
