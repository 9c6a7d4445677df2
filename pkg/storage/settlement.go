package storage

import (
	"context"
	"time"

	"github.com/tradecrews/escrow-payments/pkg/models"
)

// SettlementStore defines the highly-privileged interface for the two operations
// that move money out of platform custody. Each one is a two-phase write: the
// escrow row is first locked into a transient state, the payment provider is
// called, and only then is the terminal state committed (or the lock reverted).
// It should only be exposed to the components responsible for final settlement.
type SettlementStore interface {
	// BeginRelease locks an escrow for release by moving it into the transient
	// RELEASING state. Exactly one caller wins the lock; all others receive
	// ErrNotReleasable. The returned transaction is the pre-lock snapshot, so
	// the caller knows which status to revert to if the provider call fails.
	BeginRelease(ctx context.Context, escrowID string) (*models.EscrowTransaction, error)

	// CompleteRelease commits a release after the payment provider confirmed the
	// transfer, moving the escrow from RELEASING to RELEASED.
	CompleteRelease(ctx context.Context, escrowID string, releasedAt time.Time) error

	// AbortRelease reverts a failed release, moving the escrow from RELEASING
	// back to the status it held before BeginRelease.
	AbortRelease(ctx context.Context, escrowID string, revertTo models.EscrowStatus, reason string) error

	// BeginRefund locks an escrow for refund by moving it into the transient
	// REFUNDING state. Semantics mirror BeginRelease, with ErrNotRefundable
	// for the losers.
	BeginRefund(ctx context.Context, escrowID string) (*models.EscrowTransaction, error)

	// CompleteRefund commits a refund after the payment provider confirmed it,
	// moving the escrow from REFUNDING to REFUNDED with the stated reason.
	CompleteRefund(ctx context.Context, escrowID, reason string, refundedAt time.Time) error

	// AbortRefund reverts a failed refund, moving the escrow from REFUNDING
	// back to the status it held before BeginRefund.
	AbortRefund(ctx context.Context, escrowID string, revertTo models.EscrowStatus, reason string) error

	// ResolveAdminHold flips a PENDING_REVIEW admin hold to RESOLVED once the
	// case has been settled one way or the other.
	ResolveAdminHold(ctx context.Context, escrowID string) error
}
