package evmkms

import (
	"testing"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/stretchr/testify/require"
)

func TestNewStorageKeyLeftPads(t *testing.T) {
	k, err := NewStorageKey([]byte{0x01})
	require.NoError(t, err)
	require.Equal(t, byte(0x01), k[31])
	for i := 0; i < 31; i++ {
		require.Equal(t, byte(0), k[i])
	}
}

func TestNewStorageKeyRejectsOversize(t *testing.T) {
	_, err := NewStorageKey(make([]byte, 33))
	require.ErrorIs(t, err, ErrInvalidLength)
}

func TestAccessListEncodesAsNestedList(t *testing.T) {
	k, err := NewStorageKey([]byte{0x01})
	require.NoError(t, err)

	al := AccessList{{Address: Address{0xaa}, StorageKeys: []StorageKey{k}}}
	encoded, err := rlp.EncodeToBytes(al)
	require.NoError(t, err)

	var decoded AccessList
	require.NoError(t, rlp.DecodeBytes(encoded, &decoded))
	require.Equal(t, al, decoded)
}

func TestAccessListEmptyEncodesAsEmptyList(t *testing.T) {
	al := AccessList{}
	encoded, err := rlp.EncodeToBytes(al)
	require.NoError(t, err)
	require.Equal(t, []byte{0xc0}, encoded)
}
