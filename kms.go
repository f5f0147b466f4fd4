package evmkms

import (
	"context"
	"fmt"
)

// KMS is the remote signing boundary this library consumes. It is the only
// place a Sign call suspends: every other component here is pure and
// synchronous. Implementations hold the private key (or a handle to one) and
// never hand it back across this interface.
type KMS interface {
	// GetPublicKey returns the DER-encoded SubjectPublicKeyInfo for keyID.
	GetPublicKey(ctx context.Context, keyID string) ([]byte, error)

	// Sign returns a DER-encoded ECDSA signature over digest, computed with
	// the key identified by keyID. digest is already the final 32-byte
	// Keccak-256 hash; implementations must not hash it again.
	Sign(ctx context.Context, keyID string, digest [32]byte) ([]byte, error)
}

// wrapKMSErr tags an error surfaced by a KMS port call so callers can match
// it with errors.Is(err, ErrKmsFailed) without caring which operation or
// backend produced it.
func wrapKMSErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrKmsFailed, op, err)
}
