package wallet_test

import (
	"bytes"
	"testing"

	"github.com/cryptolink/solkit/internal/kms/wallet"
	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAddress(t *testing.T) {
	for _, tt := range []struct {
		name      string
		text      string
		expectErr error
	}{
		{name: "system program", text: "11111111111111111111111111111111"},
		{name: "token program", text: "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"},
		{name: "32 bytes", text: base58.Encode(bytes.Repeat([]byte{0xff}, 32))},
		{name: "31 bytes", text: base58.Encode(bytes.Repeat([]byte{0xff}, 31)), expectErr: wallet.ErrInvalidLength},
		{name: "33 bytes", text: base58.Encode(bytes.Repeat([]byte{0xff}, 33)), expectErr: wallet.ErrInvalidLength},
		{name: "not base58", text: "not-base58!!-not-base58!!-not-base58!!", expectErr: wallet.ErrInvalidEncoding},
		{name: "contains zero", text: "0okenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA", expectErr: wallet.ErrInvalidEncoding},
		{name: "too short", text: "abc", expectErr: wallet.ErrInvalidLength},
		{name: "empty", text: "", expectErr: wallet.ErrInvalidLength},
	} {
		t.Run(tt.name, func(t *testing.T) {
			addr, err := wallet.DecodeAddress(tt.text)

			if tt.expectErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, wallet.ErrInvalidAddress))
				assert.True(t, errors.Is(err, tt.expectErr))
				assert.True(t, addr.IsZero())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.text, addr.String())
		})
	}
}

func TestAddress_PublicKey(t *testing.T) {
	addr, err := wallet.DecodeAddress("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")
	require.NoError(t, err)

	pk := addr.PublicKey()
	assert.Equal(t, addr.String(), pk.String())
	assert.Equal(t, addr, wallet.AddressFromPublicKey(pk))
	assert.Equal(t, addr[:], addr.Bytes())
}
