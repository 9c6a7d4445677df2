package enforcement

import (
	"context"
	"errors"
	"log/slog"

	"github.com/tradecrews/escrow-payments/pkg/models"
	"github.com/tradecrews/escrow-payments/pkg/notify"
	"github.com/tradecrews/escrow-payments/pkg/storage"
)

// VerificationResult tells a caller whether a job is backed by a platform
// payment. Advisory only; it never blocks on infrastructure failures.
type VerificationResult struct {
	HasPlatformPayment  bool                `json:"has_platform_payment"`
	EscrowTransactionId string              `json:"escrow_transaction_id,omitempty"`
	AmountCents         int64               `json:"amount_cents,omitempty"`
	Status              models.EscrowStatus `json:"status,omitempty"`
	Message             string              `json:"message,omitempty"`
}

// CompletionGate is the yes/no business gate in front of job completion.
type CompletionGate struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

const (
	msgNoPayment          = "no platform payment found for this job; funds must be held in escrow before work begins"
	msgLookupFailed       = "payment verification is temporarily unavailable; contact support if this persists"
	msgPaymentNotCaptured = "the escrow payment for this job has not been captured yet"
	msgPaymentRefunded    = "the escrow payment for this job was refunded"
)

// Store is the slice of the data layer enforcement reads and annotates.
type Store interface {
	storage.EscrowReader
	storage.JobAnnotator
}

// Service gates job lifecycle actions on the presence of a platform payment
// and records how off-platform jobs were paid.
type Service struct {
	Store    Store
	Notifier notify.Dispatcher
	Logger   *slog.Logger
}

func NewService(store Store, notifier notify.Dispatcher, logger *slog.Logger) *Service {
	if notifier == nil {
		notifier = &notify.NopDispatcher{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{Store: store, Notifier: notifier, Logger: logger}
}

// countsAsPlatformPayment reports whether an escrow in this status vouches for
// the job. A refund in flight (or completed) no longer does.
func countsAsPlatformPayment(s models.EscrowStatus) bool {
	if s == models.EscrowRefunding || s == models.EscrowRefunded {
		return false
	}
	return s.InPlatformCustody() || s == models.EscrowReleased
}

// VerifyJobPayment reports whether the job's newest escrow transaction is in
// platform custody or already released. Lookup failures degrade to a negative
// result with a support message instead of an error.
func (s *Service) VerifyJobPayment(ctx context.Context, jobID string) (*VerificationResult, error) {
	esc, err := s.Store.LatestJobEscrowTransaction(ctx, jobID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return &VerificationResult{HasPlatformPayment: false, Message: msgNoPayment}, nil
		}
		s.Logger.Error("payment verification lookup failed", "job_id", jobID, "error", err)
		return &VerificationResult{HasPlatformPayment: false, Message: msgLookupFailed}, nil
	}

	if !countsAsPlatformPayment(esc.Status) {
		msg := msgPaymentNotCaptured
		if esc.Status == models.EscrowRefunding || esc.Status == models.EscrowRefunded {
			msg = msgPaymentRefunded
		}
		return &VerificationResult{
			HasPlatformPayment:  false,
			EscrowTransactionId: esc.Id,
			Status:              esc.Status,
			Message:             msg,
		}, nil
	}

	return &VerificationResult{
		HasPlatformPayment:  true,
		EscrowTransactionId: esc.Id,
		AmountCents:         esc.AmountCents,
		Status:              esc.Status,
	}, nil
}

// CanCompleteJob decides whether a job may move to completed. Released and
// in-custody payments both allow it; release itself happens later through the
// approval workflow. Lookup failures disallow rather than error.
func (s *Service) CanCompleteJob(ctx context.Context, jobID string) (*CompletionGate, error) {
	result, err := s.VerifyJobPayment(ctx, jobID)
	if err != nil {
		return &CompletionGate{Allowed: false, Reason: msgLookupFailed}, nil
	}

	if !result.HasPlatformPayment {
		return &CompletionGate{Allowed: false, Reason: result.Message}, nil
	}
	return &CompletionGate{Allowed: true}, nil
}

// RecordPaymentMethod annotates the job with how it was actually paid. Cash
// is recorded like any other method but logged loudly as a compliance signal.
// Returns false only when the annotation write fails.
func (s *Service) RecordPaymentMethod(ctx context.Context, jobID, method, notes string) bool {
	if err := s.Store.RecordJobPaymentMethod(ctx, jobID, method, notes); err != nil {
		s.Logger.Error("failed to record payment method", "job_id", jobID, "method", method, "error", err)
		return false
	}

	if method == models.PaymentMethodCash {
		s.Logger.Warn("cash payment recorded, job bypassed platform escrow",
			"job_id", jobID, "notes", notes)
		if err := s.Notifier.Enqueue(ctx, notify.Notification{
			UserId:  "compliance",
			Title:   "Cash payment recorded",
			Message: "A job was marked as paid in cash outside platform escrow.",
			Type:    notify.TypeCashPaymentRecorded,
			Metadata: map[string]string{
				"job_id": jobID,
			},
		}); err != nil {
			s.Logger.Warn("failed to enqueue cash payment notification", "job_id", jobID, "error", err)
		}
	}

	return true
}
