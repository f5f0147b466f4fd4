package evmkms

import (
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	btcecdsa "github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/stretchr/testify/require"
)

func mustPublicKey64(t *testing.T, pub *btcec.PublicKey) PublicKey64 {
	t.Helper()
	uncompressed := pub.SerializeUncompressed()
	var out PublicKey64
	copy(out[:], uncompressed[1:])
	return out
}

func TestNormalizeSignatureRoundTrip(t *testing.T) {
	priv, err := btcec.NewPrivateKey()
	require.NoError(t, err)

	digest := keccak256([]byte("evmkms test message"))
	var digest32 [32]byte
	copy(digest32[:], digest)

	der := btcecdsa.Sign(priv, digest32[:]).Serialize()

	sig, err := NormalizeSignature(der, digest32, mustPublicKey64(t, priv.PubKey()))
	require.NoError(t, err)
	require.LessOrEqual(t, sig.RecoveryID, byte(1))

	s := new(btcec.ModNScalar)
	require.False(t, s.SetByteSlice(sig.S[:]))
	require.False(t, s.IsOverHalfOrder())

	compact := make([]byte, 65)
	compact[0] = 27 + sig.RecoveryID
	copy(compact[1:33], sig.R[:])
	copy(compact[33:65], sig.S[:])
	recovered, _, err := btcecdsa.RecoverCompact(compact, digest32[:])
	require.NoError(t, err)
	require.True(t, recovered.IsEqual(priv.PubKey()))
}

func TestNormalizeSignatureRejectsMalformedDER(t *testing.T) {
	priv, err := btcec.NewPrivateKey()
	require.NoError(t, err)
	var digest32 [32]byte

	_, err = NormalizeSignature([]byte{0x01, 0x02, 0x03}, digest32, mustPublicKey64(t, priv.PubKey()))
	require.ErrorIs(t, err, ErrInvalidSignature)
}

func TestNormalizeSignatureRejectsWrongPublicKey(t *testing.T) {
	priv, err := btcec.NewPrivateKey()
	require.NoError(t, err)
	other, err := btcec.NewPrivateKey()
	require.NoError(t, err)

	digest := keccak256([]byte("another message"))
	var digest32 [32]byte
	copy(digest32[:], digest)

	der := btcecdsa.Sign(priv, digest32[:]).Serialize()

	_, err = NormalizeSignature(der, digest32, mustPublicKey64(t, other.PubKey()))
	require.ErrorIs(t, err, ErrUnrecoverableSignature)
}
