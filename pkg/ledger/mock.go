package ledger

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
)

// Mock synthesizes deterministic-looking ledger references without a
// real ledger. References derive only from the submitted hash and the
// network name, so repeated submissions of the same hash anchor to the
// same transaction.
type Mock struct {
	network string
}

// NewMock ...
func NewMock(network string) *Mock {
	if network == "" {
		network = "mock-testnet"
	}
	return &Mock{network: network}
}

var _ Client = &Mock{}

// Anchor ...
func (m *Mock) Anchor(_ context.Context, hash string) (AnchorResult, error) {
	if !validHash(hash) {
		return AnchorResult{}, ErrRejected
	}
	return m.result(hash), nil
}

// Verify ...
func (m *Mock) Verify(_ context.Context, txRef string, blockRef int64, hash string) (bool, error) {
	if !validHash(hash) {
		return false, ErrRejected
	}
	expected := m.result(hash)
	return txRef == expected.TxRef && blockRef == expected.BlockRef, nil
}

func (m *Mock) result(hash string) AnchorResult {
	sum := sha256.Sum256([]byte(m.network + ":" + hash))
	return AnchorResult{
		TxRef:    "0x" + hex.EncodeToString(sum[:]),
		BlockRef: int64(binary.BigEndian.Uint32(sum[:4])),
	}
}

func validHash(hash string) bool {
	if len(hash) != 64 {
		return false
	}
	_, err := hex.DecodeString(hash)
	return err == nil
}
