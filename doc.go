// Package evmkms signs EVM transactions with a secp256k1 key that never
// leaves a remote KMS/HSM. The caller supplies a KMS port (see kms.go); this
// package does the rest: it builds the canonical RLP pre-image for a
// transaction, hashes it with Keccak-256, sends the digest to the port for
// signing, and turns the returned DER signature into an Ethereum-compatible
// (r, s, v) triple glued onto the fully serialized, ready-to-broadcast
// transaction bytes.
//
// The package never touches a private key. It holds only the public half
// (decoded from the KMS's DER SubjectPublicKeyInfo) and uses it to pick the
// correct recovery id by trial recovery.
package evmkms
