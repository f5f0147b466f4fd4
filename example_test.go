package evmkms_test

import (
	"context"
	"fmt"
	"math/big"

	"github.com/kmsig/evmkms"
	"github.com/kmsig/evmkms/internal/testkms"
)

// This example signs an EIP-1559 transaction against an in-memory KMS
// stand-in. A real caller would swap testkms.KMS for an adapter backed by
// an actual KMS/HSM implementing the same two-method evmkms.KMS interface.
func Example() {
	ctx := context.Background()
	kms := testkms.New()
	if err := kms.GenerateKey("treasury-key"); err != nil {
		fmt.Println("error:", err)
		return
	}

	to := evmkms.Address{0x70, 0x99, 0x79, 0x70, 0xC5, 0x18, 0x12, 0xdc, 0x3A, 0x01, 0x0C, 0x7d, 0x01, 0xb5, 0x0e, 0x0d, 0x17, 0xdc, 0x79, 0xC8}
	tx := &evmkms.DynamicFeeTx{
		ChainID:              big.NewInt(1),
		Nonce:                0,
		MaxPriorityFeePerGas: big.NewInt(2_000_000_000),
		MaxFeePerGas:         big.NewInt(50_000_000_000),
		GasLimit:             21000,
		To:                   &to,
		Value:                big.NewInt(1_000_000_000_000_000_000),
	}

	raw, err := evmkms.Sign(ctx, tx, "treasury-key", kms)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(raw[0] == 0x02)
	// Output: true
}
