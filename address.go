package evmkms

import (
	"fmt"
	"strings"
)

// Address is a 20-byte Ethereum address.
type Address [20]byte

// DeriveAddress computes the Ethereum address for an uncompressed secp256k1
// public key: the last 20 bytes of Keccak-256(X‖Y).
func DeriveAddress(pub PublicKey64) Address {
	hash := keccak256(pub[:])
	var addr Address
	copy(addr[:], hash[len(hash)-20:])
	return addr
}

// FormatEIP55 renders addr as "0x" followed by 40 mixed-case hex digits,
// where a hex letter is uppercased iff the corresponding nibble of
// Keccak-256(lowercase_hex_body) is >= 8.
func FormatEIP55(addr Address) string {
	lower := fmt.Sprintf("%040x", addr[:])
	hash := keccak256([]byte(lower))

	out := make([]byte, len(lower))
	for i := 0; i < len(lower); i++ {
		c := lower[i]
		if c >= 'a' && c <= 'f' && nibble(hash, i) >= 8 {
			out[i] = c - ('a' - 'A')
		} else {
			out[i] = c
		}
	}
	return "0x" + string(out)
}

// nibble returns the i-th hex nibble (most significant first) of b.
func nibble(b []byte, i int) byte {
	by := b[i/2]
	if i%2 == 0 {
		return by >> 4
	}
	return by & 0x0f
}

// ValidateEIP55 parses a hex address string and enforces EIP-55 casing: it
// accepts all-lowercase, all-uppercase, or an exact checksum match, and
// rejects any other mixed case with ErrInvalidChecksum.
func ValidateEIP55(s string) (Address, error) {
	body := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(body) != 40 {
		return Address{}, fmt.Errorf("%w: address must be 40 hex digits, got %d", ErrInvalidLength, len(body))
	}

	raw, err := decodeHex(body)
	if err != nil {
		return Address{}, err
	}
	var addr Address
	copy(addr[:], raw)

	lower := strings.ToLower(body)
	upper := strings.ToUpper(body)
	if body == lower || body == upper {
		return addr, nil
	}

	checksummed := FormatEIP55(addr)[2:]
	if body != checksummed {
		return Address{}, ErrInvalidChecksum
	}
	return addr, nil
}

// Hex returns the unchecksummed lowercase hex form, "0x" + 40 digits.
func (a Address) Hex() string {
	return encodeHex(a[:])
}
