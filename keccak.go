package evmkms

import "golang.org/x/crypto/sha3"

// keccak256 computes the original (pre-NIST) Keccak-256 digest, the variant
// Ethereum uses everywhere — distinct from FIPS-202 SHA3-256 only in the
// padding byte. golang.org/x/crypto/sha3 exposes it directly as the "legacy"
// constructor.
func keccak256(data ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	return h.Sum(nil)
}
