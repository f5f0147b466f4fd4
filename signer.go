package evmkms

import "context"

// Sign drives one transaction through a full KMS round trip: fetch the
// signer's public key, compute the transaction's signing digest, ask the
// KMS to sign it, normalize the result into Ethereum's (r, s, v) form, and
// return the serialized, broadcast-ready transaction bytes.
//
// Sign never caches the public key across calls — every call is a fresh
// GetPublicKey round trip, since the library holds no state of its own.
func Sign(ctx context.Context, tx Transaction, keyID string, kms KMS) ([]byte, error) {
	sig, err := SignDigest(ctx, tx.SigningHash(), keyID, kms)
	if err != nil {
		return nil, err
	}
	return tx.Serialize(sig), nil
}

// SignDigest runs the KMS round trip and signature normalization for an
// already-computed digest, without assuming any particular transaction
// shape. Sign is built on top of this for the three transaction variants;
// callers with a custom message format can call it directly.
func SignDigest(ctx context.Context, digest [32]byte, keyID string, kms KMS) (Signature, error) {
	spki, err := kms.GetPublicKey(ctx, keyID)
	if err != nil {
		return Signature{}, wrapKMSErr("get_public_key", err)
	}
	pub, err := DecodePublicKey(spki)
	if err != nil {
		return Signature{}, err
	}

	der, err := kms.Sign(ctx, keyID, digest)
	if err != nil {
		return Signature{}, wrapKMSErr("sign", err)
	}

	return NormalizeSignature(der, digest, pub)
}
