package transfer

import (
	"context"
	"errors"
	"time"
)

// ErrTransferFailed is the sentinel behind every provider rejection. Callers
// that hit it must leave the escrow row recoverable and may retry.
var ErrTransferFailed = errors.New("transfer failed")

// ReleaseRequest asks the payment provider to pay a contractor out of
// platform custody.
type ReleaseRequest struct {
	EscrowTransactionId string `json:"escrow_transaction_id"`
	PaymentIntentId     string `json:"payment_intent_id"`
	ContractorId        string `json:"contractor_id"`
	AmountCents         int64  `json:"amount_cents"`
	Description         string `json:"description,omitempty"`
}

// RefundRequest asks the payment provider to return a captured charge to the
// homeowner.
type RefundRequest struct {
	EscrowTransactionId string `json:"escrow_transaction_id"`
	PaymentIntentId     string `json:"payment_intent_id"`
	AmountCents         int64  `json:"amount_cents"`
	Reason              string `json:"reason,omitempty"`
}

// Result is the provider's confirmation of a transfer or refund.
type Result struct {
	TransferId  string    `json:"transfer_id"`
	Status      string    `json:"status"`
	ProcessedAt time.Time `json:"processed_at"`
}

// AccountLink is a one-time onboarding URL for a contractor's payout account.
type AccountLink struct {
	Url       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AccountStatus describes how far along a contractor's payout account is.
type AccountStatus struct {
	ContractorId   string `json:"contractor_id"`
	PayoutsEnabled bool   `json:"payouts_enabled"`
	DetailsNeeded  bool   `json:"details_needed"`
}

// Provider is the boundary to the external payment processor. Every method
// blocks on a network call; callers must treat any error as "money did not
// move" and leave the escrow row recoverable.
type Provider interface {
	// Release pays the contractor. The escrow ID doubles as the idempotency
	// key, so retrying a release after a crash cannot double-pay.
	Release(ctx context.Context, req ReleaseRequest) (*Result, error)

	// Refund returns the captured charge to the homeowner.
	Refund(ctx context.Context, req RefundRequest) (*Result, error)

	// CreateAccountLink starts or resumes payout onboarding for a contractor.
	CreateAccountLink(ctx context.Context, contractorID string) (*AccountLink, error)

	// GetAccountStatus reports whether a contractor can currently be paid.
	GetAccountStatus(ctx context.Context, contractorID string) (*AccountStatus, error)
}
