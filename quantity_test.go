package evmkms

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQuantityToBytes(t *testing.T) {
	require.Nil(t, quantityToBytes(nil))
	require.Nil(t, quantityToBytes(big.NewInt(0)))
	require.Equal(t, []byte{0x01}, quantityToBytes(big.NewInt(1)))
	require.Equal(t, []byte{0x01, 0x00}, quantityToBytes(big.NewInt(256)))
}

func TestBytesToQuantity(t *testing.T) {
	q, err := bytesToQuantity([]byte{0x01, 0x00})
	require.NoError(t, err)
	require.Equal(t, big.NewInt(256), q)

	_, err = bytesToQuantity(make([]byte, 33))
	require.ErrorIs(t, err, ErrInvalidLength)
}

func TestDecodeHex(t *testing.T) {
	b, err := decodeHex("0xdeadbeef")
	require.NoError(t, err)
	require.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, b)

	b, err = decodeHex("DEADBEEF")
	require.NoError(t, err)
	require.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, b)

	_, err = decodeHex("0xabc")
	require.ErrorIs(t, err, ErrInvalidHex)

	_, err = decodeHex("0xzz")
	require.ErrorIs(t, err, ErrInvalidHex)
}

func TestEncodeHex(t *testing.T) {
	require.Equal(t, "0xdeadbeef", encodeHex([]byte{0xde, 0xad, 0xbe, 0xef}))
	require.Equal(t, "0x", encodeHex(nil))
}
