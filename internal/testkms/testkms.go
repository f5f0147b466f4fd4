// Package testkms is an in-memory stand-in for a remote KMS, used only by
// this module's own tests and examples. It is not a production KMS client:
// it holds the private key directly, in the same process, with no network
// hop and no access control.
package testkms

import (
	"context"
	"encoding/asn1"
	"fmt"
	"sync"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

var (
	ecPublicKeyOID = asn1.ObjectIdentifier{1, 2, 840, 10045, 2, 1}
	secp256k1OID   = asn1.ObjectIdentifier{1, 3, 132, 0, 10}
)

type algorithmIdentifier struct {
	Algorithm  asn1.ObjectIdentifier
	Parameters asn1.ObjectIdentifier
}

type subjectPublicKeyInfo struct {
	Algorithm        algorithmIdentifier
	SubjectPublicKey asn1.BitString
}

// KMS holds a set of named secp256k1 keys, added one at a time with
// GenerateKey, and answers GetPublicKey/Sign the way a real KMS's API would, DER-encoded
// both ways, without ever exposing a raw private key.
type KMS struct {
	mu   sync.Mutex
	keys map[string]*btcec.PrivateKey
}

// New returns an empty KMS. Keys are created with GenerateKey.
func New() *KMS {
	return &KMS{keys: make(map[string]*btcec.PrivateKey)}
}

// GenerateKey creates a new secp256k1 keypair under keyID, replacing any
// existing key with that id.
func (k *KMS) GenerateKey(keyID string) error {
	priv, err := btcec.NewPrivateKey()
	if err != nil {
		return fmt.Errorf("testkms: generate key: %w", err)
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	k.keys[keyID] = priv
	return nil
}

func (k *KMS) lookup(keyID string) (*btcec.PrivateKey, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	priv, ok := k.keys[keyID]
	if !ok {
		return nil, fmt.Errorf("testkms: unknown key id %q", keyID)
	}
	return priv, nil
}

// GetPublicKey implements evmkms.KMS.
func (k *KMS) GetPublicKey(_ context.Context, keyID string) ([]byte, error) {
	priv, err := k.lookup(keyID)
	if err != nil {
		return nil, err
	}

	uncompressed := priv.PubKey().SerializeUncompressed()
	spki := subjectPublicKeyInfo{
		Algorithm: algorithmIdentifier{Algorithm: ecPublicKeyOID, Parameters: secp256k1OID},
		SubjectPublicKey: asn1.BitString{
			Bytes:     uncompressed,
			BitLength: len(uncompressed) * 8,
		},
	}
	der, err := asn1.Marshal(spki)
	if err != nil {
		return nil, fmt.Errorf("testkms: marshal public key: %w", err)
	}
	return der, nil
}

// Sign implements evmkms.KMS. It signs digest directly; callers are
// expected to have already hashed their message.
func (k *KMS) Sign(_ context.Context, keyID string, digest [32]byte) ([]byte, error) {
	priv, err := k.lookup(keyID)
	if err != nil {
		return nil, err
	}
	sig := ecdsa.Sign(priv, digest[:])
	return sig.Serialize(), nil
}
