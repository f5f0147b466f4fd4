package evmkms

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kmsig/evmkms/internal/testkms"
)

func TestDecodePublicKeyRoundTrip(t *testing.T) {
	kms := testkms.New()
	require.NoError(t, kms.GenerateKey("k1"))

	der, err := kms.GetPublicKey(context.Background(), "k1")
	require.NoError(t, err)

	pub, err := DecodePublicKey(der)
	require.NoError(t, err)
	require.NotEqual(t, PublicKey64{}, pub)
}

func TestDecodePublicKeyRejectsGarbage(t *testing.T) {
	_, err := DecodePublicKey([]byte{0x00, 0x01, 0x02})
	require.ErrorIs(t, err, ErrInvalidPublicKey)
}

func TestDecodePublicKeyRejectsTrailingData(t *testing.T) {
	kms := testkms.New()
	require.NoError(t, kms.GenerateKey("k1"))
	der, err := kms.GetPublicKey(context.Background(), "k1")
	require.NoError(t, err)

	_, err = DecodePublicKey(append(der, 0x00))
	require.ErrorIs(t, err, ErrInvalidPublicKey)
}
