package handlers

import (
	"context"

	"github.com/tradecrews/escrow-payments/pkg/enforcement"
	"github.com/tradecrews/escrow-payments/pkg/models"
	"github.com/tradecrews/escrow-payments/pkg/payout"
	"github.com/tradecrews/escrow-payments/pkg/transfer"
)

// EscrowService is the slice of the escrow service the HTTP layer uses.
type EscrowService interface {
	CreateEscrowTransaction(ctx context.Context, jobID, payerID, payeeID string, amountCents int64) (*models.EscrowTransaction, error)
	HoldPaymentInEscrow(ctx context.Context, escrowID, paymentIntentID string) (*models.EscrowTransaction, error)
	GetEscrowTransaction(ctx context.Context, escrowID string) (*models.EscrowTransaction, error)
	GetJobEscrowTransactions(ctx context.Context, jobID string) ([]models.EscrowTransaction, error)
	GetUserPaymentHistory(ctx context.Context, userID string) ([]models.EscrowTransaction, error)
	ReleaseEscrowPayment(ctx context.Context, escrowID string) (*models.EscrowTransaction, error)
	RefundEscrowPayment(ctx context.Context, escrowID, reason string) (*models.EscrowTransaction, error)
}

// ApprovalService drives the homeowner review workflow over HTTP.
type ApprovalService interface {
	RequestHomeownerApproval(ctx context.Context, escrowID string, photoURLs []string) (*models.EscrowTransaction, error)
	ApproveCompletion(ctx context.Context, escrowID, homeownerID, comments string) (*models.EscrowTransaction, error)
	RejectCompletion(ctx context.Context, escrowID, homeownerID, reason string) (*models.EscrowTransaction, error)
	GetApprovalHistory(ctx context.Context, escrowID string) ([]models.ApprovalRecord, error)
}

// EnforcementService gates job completion on platform payment.
type EnforcementService interface {
	VerifyJobPayment(ctx context.Context, jobID string) (*enforcement.VerificationResult, error)
	CanCompleteJob(ctx context.Context, jobID string) (*enforcement.CompletionGate, error)
	RecordPaymentMethod(ctx context.Context, jobID, method, notes string) bool
}

// TrustService exposes contractor trust scoring.
type TrustService interface {
	CalculateTrustScore(ctx context.Context, contractorID string) (float64, error)
	HoldPeriodDays(ctx context.Context, contractorID string) int
	IsTrustedContractor(ctx context.Context, contractorID string) bool
}

// PayoutService exposes payout-account setup and payout scheduling.
type PayoutService interface {
	PayoutSchedule(ctx context.Context, contractorID string) payout.Schedule
	SetupContractorPayout(ctx context.Context, contractorID string) (*transfer.AccountLink, error)
	GetContractorPayoutStatus(ctx context.Context, contractorID string) (*transfer.AccountStatus, error)
}
