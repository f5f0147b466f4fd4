package evmkms

import "errors"

// Sentinel errors. Every error the library surfaces wraps one of these, so
// callers can match with errors.Is regardless of the message text.
var (
	// ErrInvalidHex is returned by hex decoding when the input contains a
	// non-hex character or has odd length.
	ErrInvalidHex = errors.New("evmkms: invalid hex")

	// ErrInvalidLength is returned when a fixed-width value does not match
	// its required size (a Quantity wider than 32 bytes, an address that
	// isn't 20 bytes, a storage key wider than 32 bytes, and so on).
	ErrInvalidLength = errors.New("evmkms: invalid length")

	// ErrInvalidPublicKey is returned when a KMS public-key response isn't a
	// well-formed DER SubjectPublicKeyInfo wrapping an uncompressed
	// secp256k1 point.
	ErrInvalidPublicKey = errors.New("evmkms: invalid public key")

	// ErrInvalidSignature is returned when a KMS signature isn't a
	// well-formed DER ECDSA signature, or its r/s fall outside [1, n-1].
	ErrInvalidSignature = errors.New("evmkms: invalid signature")

	// ErrUnrecoverableSignature is returned when neither candidate recovery
	// id reproduces the known public key — the digest handed to the KMS
	// does not match what it actually signed, or the cached public key is
	// stale.
	ErrUnrecoverableSignature = errors.New("evmkms: signature does not recover to known public key")

	// ErrInvalidChecksum is returned by EIP-55 validation when a mixed-case
	// address does not match the checksum derived from its lowercase form.
	ErrInvalidChecksum = errors.New("evmkms: address fails EIP-55 checksum")

	// ErrKmsFailed wraps whatever error the KMS port returned.
	ErrKmsFailed = errors.New("evmkms: kms operation failed")
)
