package evmkms

import (
	"encoding/asn1"
	"fmt"
)

// PublicKey64 is an uncompressed secp256k1 point stored as the 64-byte
// concatenation X‖Y (no leading 0x04 byte).
type PublicKey64 [64]byte

// subjectPublicKeyInfo mirrors the DER structure a KMS's GetPublicKey
// response is wrapped in:
//
//	SubjectPublicKeyInfo ::= SEQUENCE {
//	  algorithm         AlgorithmIdentifier,
//	  subjectPublicKey  BIT STRING
//	}
//
// Go's crypto/x509 can't parse this on its own because secp256k1 isn't in
// its curve OID table, so — like every KMS-signing example that hits this
// problem — we decode the SPKI envelope ourselves with encoding/asn1 and
// only care about the bit string payload.
type subjectPublicKeyInfo struct {
	Algorithm        algorithmIdentifier
	SubjectPublicKey asn1.BitString
}

type algorithmIdentifier struct {
	Algorithm  asn1.ObjectIdentifier
	Parameters asn1.RawValue `asn1:"optional"`
}

// DecodePublicKey parses the DER SubjectPublicKeyInfo returned by a KMS's
// GetPublicKey operation and returns the 64-byte uncompressed point X‖Y.
func DecodePublicKey(der []byte) (PublicKey64, error) {
	var spki subjectPublicKeyInfo
	rest, err := asn1.Unmarshal(der, &spki)
	if err != nil {
		return PublicKey64{}, fmt.Errorf("%w: asn1: %v", ErrInvalidPublicKey, err)
	}
	if len(rest) != 0 {
		return PublicKey64{}, fmt.Errorf("%w: trailing data after SubjectPublicKeyInfo", ErrInvalidPublicKey)
	}

	point := spki.SubjectPublicKey.RightAlign()
	if len(point) != 65 {
		return PublicKey64{}, fmt.Errorf("%w: expected 65-byte uncompressed point, got %d bytes", ErrInvalidPublicKey, len(point))
	}
	if point[0] != 0x04 {
		return PublicKey64{}, fmt.Errorf("%w: public key is not uncompressed (lead byte 0x%02x)", ErrInvalidPublicKey, point[0])
	}

	var pub PublicKey64
	copy(pub[:], point[1:])
	return pub, nil
}
