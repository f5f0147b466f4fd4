package evmkms

import (
	"math/big"

	"github.com/ethereum/go-ethereum/rlp"
)

// Transaction is implemented by each of the three EIP-2718 variants. Each
// variant owns its own field list and its own pre-sign/post-sign emitter —
// a tagged union rather than a shared base type, per the transaction
// model's §9 design note.
type Transaction interface {
	// SigningHash returns the 32-byte Keccak-256 digest the KMS must sign.
	SigningHash() [32]byte
	// Serialize glues a finalized Signature onto the transaction and
	// returns the fully serialized, ready-to-broadcast bytes.
	Serialize(sig Signature) []byte
}

// nz substitutes big.NewInt(0) for a nil *big.Int field. go-ethereum's rlp
// encoder rejects a nil *big.Int outright (it has no "empty" representation
// to fall back to the way a nil slice or a `rlp:"nil"` pointer does), so
// every Quantity field is normalized before it reaches rlp.EncodeToBytes.
func nz(v *big.Int) *big.Int {
	if v == nil {
		return big.NewInt(0)
	}
	return v
}

func mustEncode(val any) []byte {
	b, err := rlp.EncodeToBytes(val)
	if err != nil {
		// Every struct below is built entirely from this package's own
		// fixed-shape fields (uint64, *big.Int via nz, []byte, a
		// `rlp:"nil"`-tagged address pointer, AccessList) — none of which
		// rlp.EncodeToBytes can fail to encode.
		panic("evmkms: rlp encode: " + err.Error())
	}
	return b
}

// legacyUnsignedRLP is the pre-EIP-155 (v = recovery_id + 27) signing
// payload: no chain id folded in.
type legacyUnsignedRLP struct {
	Nonce    uint64
	GasPrice *big.Int
	GasLimit uint64
	To       *Address `rlp:"nil"`
	Value    *big.Int
	Data     []byte
}

// legacyUnsignedEIP155RLP is the EIP-155 signing payload: the chain id and
// two empty slots stand in for where r and s would otherwise go.
type legacyUnsignedEIP155RLP struct {
	Nonce    uint64
	GasPrice *big.Int
	GasLimit uint64
	To       *Address `rlp:"nil"`
	Value    *big.Int
	Data     []byte
	ChainID  *big.Int
	Zero1    uint64
	Zero2    uint64
}

// legacySignedRLP is the final, broadcast-ready type 0 payload. Its shape
// is the same whether or not the signature used EIP-155 — v alone encodes
// that.
type legacySignedRLP struct {
	Nonce    uint64
	GasPrice *big.Int
	GasLimit uint64
	To       *Address `rlp:"nil"`
	Value    *big.Int
	Data     []byte
	V        *big.Int
	R        *big.Int
	S        *big.Int
}

// LegacyTx is the EIP-2718 type 0 transaction. A nil or zero ChainID
// produces the pre-EIP-155 signing form (v = recovery_id + 27); any other
// ChainID produces EIP-155 signing (v = recovery_id + 35 + 2*chain_id), per
// spec.md §4.8.
type LegacyTx struct {
	ChainID  *big.Int
	Nonce    uint64
	GasPrice *big.Int
	GasLimit uint64
	To       *Address
	Value    *big.Int
	Data     []byte
}

func (tx *LegacyTx) chainID() *big.Int {
	if tx.ChainID == nil {
		return big.NewInt(0)
	}
	return tx.ChainID
}

func (tx *LegacyTx) eip155() bool {
	return tx.chainID().Sign() != 0
}

func (tx *LegacyTx) SigningHash() [32]byte {
	var payload []byte
	if tx.eip155() {
		payload = mustEncode(&legacyUnsignedEIP155RLP{
			Nonce: tx.Nonce, GasPrice: nz(tx.GasPrice), GasLimit: tx.GasLimit,
			To: tx.To, Value: nz(tx.Value), Data: tx.Data,
			ChainID: tx.chainID(), Zero1: 0, Zero2: 0,
		})
	} else {
		payload = mustEncode(&legacyUnsignedRLP{
			Nonce: tx.Nonce, GasPrice: nz(tx.GasPrice), GasLimit: tx.GasLimit,
			To: tx.To, Value: nz(tx.Value), Data: tx.Data,
		})
	}
	return [32]byte(keccak256(payload))
}

// v returns the legacy v value for the given recovery id, per §4.8: EIP-155
// folds the chain id in; the pre-EIP-155 form just offsets by 27.
func (tx *LegacyTx) v(recoveryID byte) *big.Int {
	if !tx.eip155() {
		return big.NewInt(27 + int64(recoveryID))
	}
	v := new(big.Int).Mul(tx.chainID(), big.NewInt(2))
	v.Add(v, big.NewInt(35+int64(recoveryID)))
	return v
}

func (tx *LegacyTx) Serialize(sig Signature) []byte {
	return mustEncode(&legacySignedRLP{
		Nonce: tx.Nonce, GasPrice: nz(tx.GasPrice), GasLimit: tx.GasLimit,
		To: tx.To, Value: nz(tx.Value), Data: tx.Data,
		V: tx.v(sig.RecoveryID), R: new(big.Int).SetBytes(sig.R[:]), S: new(big.Int).SetBytes(sig.S[:]),
	})
}

// accessListUnsignedRLP and accessListSignedRLP are the EIP-2930 (type 1)
// signing and broadcast payloads, RLP-encoded behind the 0x01 envelope byte.
type accessListUnsignedRLP struct {
	ChainID    *big.Int
	Nonce      uint64
	GasPrice   *big.Int
	GasLimit   uint64
	To         *Address `rlp:"nil"`
	Value      *big.Int
	Data       []byte
	AccessList AccessList
}

type accessListSignedRLP struct {
	ChainID    *big.Int
	Nonce      uint64
	GasPrice   *big.Int
	GasLimit   uint64
	To         *Address `rlp:"nil"`
	Value      *big.Int
	Data       []byte
	AccessList AccessList
	V          *big.Int
	R          *big.Int
	S          *big.Int
}

// AccessListTx is the EIP-2718 type 1 (EIP-2930) transaction.
type AccessListTx struct {
	ChainID    *big.Int
	Nonce      uint64
	GasPrice   *big.Int
	GasLimit   uint64
	To         *Address
	Value      *big.Int
	Data       []byte
	AccessList AccessList
}

func (tx *AccessListTx) unsignedRLP() *accessListUnsignedRLP {
	return &accessListUnsignedRLP{
		ChainID: nz(tx.ChainID), Nonce: tx.Nonce, GasPrice: nz(tx.GasPrice), GasLimit: tx.GasLimit,
		To: tx.To, Value: nz(tx.Value), Data: tx.Data, AccessList: tx.AccessList,
	}
}

func (tx *AccessListTx) SigningHash() [32]byte {
	payload := append([]byte{0x01}, mustEncode(tx.unsignedRLP())...)
	return [32]byte(keccak256(payload))
}

func (tx *AccessListTx) Serialize(sig Signature) []byte {
	u := tx.unsignedRLP()
	signed := &accessListSignedRLP{
		ChainID: u.ChainID, Nonce: u.Nonce, GasPrice: u.GasPrice, GasLimit: u.GasLimit,
		To: u.To, Value: u.Value, Data: u.Data, AccessList: u.AccessList,
		V: big.NewInt(int64(sig.RecoveryID)), R: new(big.Int).SetBytes(sig.R[:]), S: new(big.Int).SetBytes(sig.S[:]),
	}
	return append([]byte{0x01}, mustEncode(signed)...)
}

// dynamicFeeUnsignedRLP and dynamicFeeSignedRLP are the EIP-1559 (type 2)
// signing and broadcast payloads, RLP-encoded behind the 0x02 envelope byte.
type dynamicFeeUnsignedRLP struct {
	ChainID              *big.Int
	Nonce                uint64
	MaxPriorityFeePerGas *big.Int
	MaxFeePerGas         *big.Int
	GasLimit             uint64
	To                   *Address `rlp:"nil"`
	Value                *big.Int
	Data                 []byte
	AccessList           AccessList
}

type dynamicFeeSignedRLP struct {
	ChainID              *big.Int
	Nonce                uint64
	MaxPriorityFeePerGas *big.Int
	MaxFeePerGas         *big.Int
	GasLimit             uint64
	To                   *Address `rlp:"nil"`
	Value                *big.Int
	Data                 []byte
	AccessList           AccessList
	V                    *big.Int
	R                    *big.Int
	S                    *big.Int
}

// DynamicFeeTx is the EIP-2718 type 2 (EIP-1559) transaction.
type DynamicFeeTx struct {
	ChainID              *big.Int
	Nonce                uint64
	MaxPriorityFeePerGas *big.Int
	MaxFeePerGas         *big.Int
	GasLimit             uint64
	To                   *Address
	Value                *big.Int
	Data                 []byte
	AccessList           AccessList
}

func (tx *DynamicFeeTx) unsignedRLP() *dynamicFeeUnsignedRLP {
	return &dynamicFeeUnsignedRLP{
		ChainID: nz(tx.ChainID), Nonce: tx.Nonce,
		MaxPriorityFeePerGas: nz(tx.MaxPriorityFeePerGas), MaxFeePerGas: nz(tx.MaxFeePerGas),
		GasLimit: tx.GasLimit, To: tx.To, Value: nz(tx.Value), Data: tx.Data,
		AccessList: tx.AccessList,
	}
}

func (tx *DynamicFeeTx) SigningHash() [32]byte {
	payload := append([]byte{0x02}, mustEncode(tx.unsignedRLP())...)
	return [32]byte(keccak256(payload))
}

func (tx *DynamicFeeTx) Serialize(sig Signature) []byte {
	u := tx.unsignedRLP()
	signed := &dynamicFeeSignedRLP{
		ChainID: u.ChainID, Nonce: u.Nonce,
		MaxPriorityFeePerGas: u.MaxPriorityFeePerGas, MaxFeePerGas: u.MaxFeePerGas,
		GasLimit: u.GasLimit, To: u.To, Value: u.Value, Data: u.Data, AccessList: u.AccessList,
		V: big.NewInt(int64(sig.RecoveryID)), R: new(big.Int).SetBytes(sig.R[:]), S: new(big.Int).SetBytes(sig.S[:]),
	}
	return append([]byte{0x02}, mustEncode(signed)...)
}
