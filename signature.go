package evmkms

import (
	"bytes"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	btcecdsa "github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

// Signature is the Ethereum-form ECDSA signature: r and s are unsigned
// 32-byte big-endian scalars modulo the secp256k1 curve order, s already
// normalized to the lower half of the order, and RecoveryID is 0 or 1.
type Signature struct {
	R          [32]byte
	S          [32]byte
	RecoveryID byte
}

// NormalizeSignature turns a KMS's DER-encoded ECDSA signature into
// Ethereum's (r, s, recovery id) form:
//
//  1. parse the DER SEQUENCE{r INTEGER, s INTEGER},
//  2. normalize s to the lower half of the curve order (Ethereum rejects
//     high-s signatures),
//  3. find the recovery id in {0, 1} by trial recovery against pub.
func NormalizeSignature(der []byte, digest [32]byte, pub PublicKey64) (Signature, error) {
	// ParseDERSignature enforces strict DER (minimal-length integers, no
	// trailing bytes) — exactly the validation spec step 1 requires.
	parsed, err := btcecdsa.ParseDERSignature(der)
	if err != nil {
		return Signature{}, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	r, s, err := extractRS(parsed.Serialize())
	if err != nil {
		return Signature{}, err
	}
	if r.IsZero() || s.IsZero() {
		return Signature{}, fmt.Errorf("%w: r or s is zero", ErrInvalidSignature)
	}

	// Low-s normalization (mandatory: Ethereum rejects high-s signatures).
	if s.IsOverHalfOrder() {
		s.Negate()
	}

	var sig Signature
	r.PutBytesUnchecked(sig.R[:])
	s.PutBytesUnchecked(sig.S[:])

	recoveryID, err := findRecoveryID(sig.R, sig.S, digest, pub)
	if err != nil {
		return Signature{}, err
	}
	sig.RecoveryID = recoveryID
	return sig, nil
}

// extractRS pulls the r and s integers out of a canonical (minimal) DER
// ECDSA signature: SEQUENCE { r INTEGER, s INTEGER }. ASN.1 INTEGERs may
// carry a leading 0x00 sign byte or be shorter than 32 bytes; both are
// normalized to unsigned 32-byte scalars.
func extractRS(der []byte) (r, s *btcec.ModNScalar, err error) {
	if len(der) < 8 || der[0] != 0x30 {
		return nil, nil, fmt.Errorf("%w: not a DER SEQUENCE", ErrInvalidSignature)
	}
	offset := 2 // skip tag + single-byte length (ECDSA DER sigs never exceed 127 bytes)

	rBytes, offset, err := readDERInteger(der, offset)
	if err != nil {
		return nil, nil, err
	}
	sBytes, offset, err := readDERInteger(der, offset)
	if err != nil {
		return nil, nil, err
	}
	if offset != len(der) {
		return nil, nil, fmt.Errorf("%w: trailing bytes after signature", ErrInvalidSignature)
	}

	rBytes = trimLeadingZero(rBytes)
	sBytes = trimLeadingZero(sBytes)
	if len(rBytes) > 32 || len(sBytes) > 32 {
		return nil, nil, fmt.Errorf("%w: r/s out of range", ErrInvalidSignature)
	}

	r = new(btcec.ModNScalar)
	s = new(btcec.ModNScalar)
	if overflow := r.SetByteSlice(padTo32(rBytes)); overflow {
		return nil, nil, fmt.Errorf("%w: r out of range [1, n-1]", ErrInvalidSignature)
	}
	if overflow := s.SetByteSlice(padTo32(sBytes)); overflow {
		return nil, nil, fmt.Errorf("%w: s out of range [1, n-1]", ErrInvalidSignature)
	}
	return r, s, nil
}

// readDERInteger reads one ASN.1 INTEGER (tag 0x02) starting at offset and
// returns its content bytes and the offset just past it.
func readDERInteger(der []byte, offset int) ([]byte, int, error) {
	if offset+2 > len(der) || der[offset] != 0x02 {
		return nil, 0, fmt.Errorf("%w: expected INTEGER tag", ErrInvalidSignature)
	}
	length := int(der[offset+1])
	offset += 2
	if offset+length > len(der) {
		return nil, 0, fmt.Errorf("%w: truncated INTEGER", ErrInvalidSignature)
	}
	return der[offset : offset+length], offset + length, nil
}

func trimLeadingZero(b []byte) []byte {
	if len(b) == 33 && b[0] == 0 {
		return b[1:]
	}
	return b
}

func padTo32(b []byte) []byte {
	out := make([]byte, 32)
	copy(out[32-len(b):], b)
	return out
}

// findRecoveryID tries both candidate recovery ids and returns the one
// whose recovered public key equals pub.
func findRecoveryID(r, s [32]byte, digest [32]byte, pub PublicKey64) (byte, error) {
	compact := make([]byte, 65)
	copy(compact[1:33], r[:])
	copy(compact[33:65], s[:])

	for candidate := byte(0); candidate <= 1; candidate++ {
		compact[0] = 27 + candidate
		recovered, _, err := btcecdsa.RecoverCompact(compact, digest[:])
		if err != nil {
			continue
		}
		if bytes.Equal(recovered.SerializeUncompressed()[1:], pub[:]) {
			return candidate, nil
		}
	}
	return 0, ErrUnrecoverableSignature
}
