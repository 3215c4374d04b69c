package wallet_test

import (
	"bytes"
	"crypto/ed25519"
	"testing"

	"github.com/cryptolink/solkit/internal/kms/wallet"
	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Generate(t *testing.T) {
	g := &wallet.Generator{}

	kp1, err := g.Generate()
	require.NoError(t, err)

	kp2, err := g.Generate()
	require.NoError(t, err)

	assert.NotEqual(t, kp1.Address(), kp2.Address())

	secret, err := base58.Decode(kp1.Secret())
	require.NoError(t, err)
	assert.Len(t, secret, wallet.KeyPairSize)
	assert.Equal(t, kp1.Address().Bytes(), secret[32:])
}

func TestGenerator_Deterministic(t *testing.T) {
	seed := bytes.Repeat([]byte{7}, ed25519.SeedSize)

	kp, err := (&wallet.Generator{CryptoReader: bytes.NewReader(seed)}).Generate()
	require.NoError(t, err)

	expected := ed25519.NewKeyFromSeed(seed)
	assert.Equal(t, base58.Encode(expected), kp.Secret())
}

func TestGenerator_ReaderFailure(t *testing.T) {
	_, err := (&wallet.Generator{CryptoReader: bytes.NewReader(nil)}).Generate()
	assert.Error(t, err)
}

func TestDecodeKeyPair(t *testing.T) {
	seed := bytes.Repeat([]byte{42}, ed25519.SeedSize)
	private := ed25519.NewKeyFromSeed(seed)

	forged := make([]byte, wallet.KeyPairSize)
	copy(forged, private)
	forged[63] ^= 0x01

	for _, tt := range []struct {
		name         string
		text         string
		expectErr    bool
		expectReason error
	}{
		{name: "valid", text: base58.Encode(private)},
		{name: "63 bytes", text: base58.Encode(private[:63]), expectErr: true, expectReason: wallet.ErrInvalidLength},
		{name: "65 bytes", text: base58.Encode(append(bytes.Clone(private), 1)), expectErr: true, expectReason: wallet.ErrInvalidLength},
		{name: "32 bytes seed only", text: base58.Encode(seed), expectErr: true, expectReason: wallet.ErrInvalidLength},
		{name: "malformed base58", text: "0OIl", expectErr: true, expectReason: wallet.ErrInvalidEncoding},
		{name: "public half mismatch", text: base58.Encode(forged), expectErr: true},
	} {
		t.Run(tt.name, func(t *testing.T) {
			kp, err := wallet.DecodeKeyPair(tt.text)

			if !tt.expectErr {
				require.NoError(t, err)
				assert.Equal(t, tt.text, kp.Secret())
				assert.Equal(t, []byte(private[32:]), kp.Address().Bytes())
				return
			}

			require.Error(t, err)
			assert.Nil(t, kp)
			assert.True(t, errors.Is(err, wallet.ErrInvalidKeyMaterial))

			if tt.expectReason != nil {
				assert.True(t, errors.Is(err, tt.expectReason))
			} else {
				assert.False(t, errors.Is(err, wallet.ErrInvalidLength))
				assert.False(t, errors.Is(err, wallet.ErrInvalidEncoding))
			}
		})
	}
}
