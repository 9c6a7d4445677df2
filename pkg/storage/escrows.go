package storage

import (
	"context"
	"time"

	"github.com/tradecrews/escrow-payments/pkg/models"
)

// EscrowReader defines the interface for reading escrow transaction data.
type EscrowReader interface {
	// GetEscrowTransaction retrieves an escrow transaction by its ID.
	GetEscrowTransaction(ctx context.Context, escrowID string) (*models.EscrowTransaction, error)

	// LatestJobEscrowTransaction retrieves the most recently created escrow transaction for a job.
	LatestJobEscrowTransaction(ctx context.Context, jobID string) (*models.EscrowTransaction, error)

	// ListJobEscrowTransactions retrieves all escrow transactions for a job, newest first.
	ListJobEscrowTransactions(ctx context.Context, jobID string) ([]models.EscrowTransaction, error)

	// ListPayerEscrowTransactions retrieves all escrow transactions funded by a homeowner.
	ListPayerEscrowTransactions(ctx context.Context, payerID string) ([]models.EscrowTransaction, error)

	// ListPayeeEscrowTransactions retrieves all escrow transactions owed to a contractor.
	ListPayeeEscrowTransactions(ctx context.Context, payeeID string) ([]models.EscrowTransaction, error)

	// ListAwaitingApproval retrieves every escrow transaction currently waiting on a homeowner decision.
	ListAwaitingApproval(ctx context.Context) ([]models.EscrowTransaction, error)

	// ListHeldEscrows retrieves every escrow transaction sitting in HELD, i.e.
	// funded but with no approval workflow started.
	ListHeldEscrows(ctx context.Context) ([]models.EscrowTransaction, error)

	// GetReleasableEscrows retrieves escrow transactions whose cooling-off window has ended as of 'now'.
	GetReleasableEscrows(ctx context.Context, now time.Time) ([]models.EscrowTransaction, error)

	// GetStuckSettlements retrieves escrow transactions that have sat in a transient
	// 'RELEASING' or 'REFUNDING' state for longer than the specified duration.
	GetStuckSettlements(ctx context.Context, maxAge time.Duration) ([]models.EscrowTransaction, error)
}

// EscrowManager defines the interface for creating and advancing escrow transactions
// up to (but not including) the final movement of money.
// This is suitable for components like the main API service.
type EscrowManager interface {
	// CreateEscrowTransaction creates a new escrow transaction in the PENDING state.
	CreateEscrowTransaction(ctx context.Context, esc *models.EscrowTransaction) (*models.EscrowTransaction, error)

	// MarkHeld records a successful charge against the escrow, moving it from
	// PENDING to HELD and attaching the payment intent. Re-invocation with the
	// same payment intent is a no-op; a different intent returns ErrPaymentIntentMismatch.
	MarkHeld(ctx context.Context, escrowID, paymentIntentID string) (*models.EscrowTransaction, error)

	// MarkAwaitingApproval moves a HELD escrow into AWAITING_HOMEOWNER_APPROVAL
	// when the contractor completes the job, recording the completion photos and
	// the date after which the system may approve on the homeowner's behalf.
	// The actor is recorded in the status audit trail.
	MarkAwaitingApproval(ctx context.Context, escrowID, actor string, photoUrls []string, autoApprovalDate time.Time) (*models.EscrowTransaction, error)

	// MarkApproved records the homeowner's (or the system's) approval, moving the
	// escrow from AWAITING_HOMEOWNER_APPROVAL into COOLING_OFF.
	MarkApproved(ctx context.Context, escrowID, actor string, approvedAt, coolingOffEndsAt time.Time) (*models.EscrowTransaction, error)

	// MarkRejected records the homeowner's rejection, moving the escrow from
	// AWAITING_HOMEOWNER_APPROVAL into ADMIN_REVIEW with the stated reason.
	MarkRejected(ctx context.Context, escrowID, actor, reason string) (*models.EscrowTransaction, error)

	// MarkReminderSent sets the reminder marker for an escrow awaiting approval.
	// It returns ErrReminderAlreadySent if the marker was already set, so callers
	// never notify a homeowner twice for the same milestone.
	MarkReminderSent(ctx context.Context, escrowID string, final bool, sentAt time.Time) error
}

// EscrowStore combines the reader and manager interfaces.
type EscrowStore interface {
	EscrowReader
	EscrowManager
}
