package ledger

import (
	"context"
	"errors"
	"fmt"
)

//go:generate moq -out ledger_mocks.go . Client

// AnchorResult identifies the ledger transaction holding an anchored hash.
type AnchorResult struct {
	TxRef    string
	BlockRef int64
}

// Client is the narrow contract the pipeline requires from an anchoring
// provider. Implementations are stateless per call; the caller checks
// the event's anchoring status before anchoring.
type Client interface {
	Anchor(ctx context.Context, hash string) (AnchorResult, error)
	Verify(ctx context.Context, txRef string, blockRef int64, hash string) (bool, error)
}

// ErrRejected indicates the ledger refused the submission, e.g. for a
// malformed hash. Not retryable.
var ErrRejected = errors.New("ledger: submission rejected")

// UnavailableError wraps a transport level failure. Retryable.
type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("ledger: provider unavailable: %v", e.Err)
}

// Unwrap ...
func (e *UnavailableError) Unwrap() error {
	return e.Err
}

// IsRetryable reports whether the anchoring failure is a transport blip
// worth retrying, as opposed to a rejection.
func IsRetryable(err error) bool {
	var unavailable *UnavailableError
	return errors.As(err, &unavailable)
}
