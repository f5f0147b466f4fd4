package evmkms

import "fmt"

// StorageKey is a 32-byte EIP-2930 access-list storage key.
type StorageKey [32]byte

// NewStorageKey left-pads b with zeros to 32 bytes. It fails if b is wider
// than 32 bytes.
func NewStorageKey(b []byte) (StorageKey, error) {
	if len(b) > 32 {
		return StorageKey{}, fmt.Errorf("%w: storage key of %d bytes exceeds 32", ErrInvalidLength, len(b))
	}
	var k StorageKey
	copy(k[32-len(b):], b)
	return k, nil
}

// AccessListEntry pairs an address with the storage keys a transaction
// declares it will touch there.
type AccessListEntry struct {
	Address     Address
	StorageKeys []StorageKey
}

// AccessList is the EIP-2930 access list: an ordered list of entries. Its
// exported fields, and AccessListEntry's, are ordered to match the nested
// RLP list [[address, [storage_key, ...]], ...] that §4.7 specifies, so
// github.com/ethereum/go-ethereum/rlp encodes it correctly by reflection
// with no intermediate conversion — the same shape go-ethereum's own
// types.AccessList/AccessTuple use for this concern.
type AccessList []AccessListEntry
