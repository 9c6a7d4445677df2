package escrow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tradecrews/escrow-payments/pkg/models"
	"github.com/tradecrews/escrow-payments/pkg/notify"
	"github.com/tradecrews/escrow-payments/pkg/storage"
	"github.com/tradecrews/escrow-payments/pkg/transfer"
)

// ReleaseEscrowPayment pays the contractor. The sequence is lock, transfer,
// commit: the row is locked into RELEASING first so no concurrent caller can
// start a second transfer, the provider is called, and only after the
// provider confirms is RELEASED recorded. A provider failure reverts the row
// to exactly where it was.
func (s *Service) ReleaseEscrowPayment(ctx context.Context, escrowID string) (*models.EscrowTransaction, error) {
	prior, err := s.Store.BeginRelease(ctx, escrowID)
	if err != nil {
		if errors.Is(err, storage.ErrNotReleasable) {
			return nil, s.classifyLockFailure(ctx, escrowID, err)
		}
		return nil, err
	}

	if prior.PaymentIntentId == nil || *prior.PaymentIntentId == "" {
		s.revertRelease(ctx, escrowID, prior.Status, "release blocked: no payment captured")
		return nil, fmt.Errorf("escrow %s: %w", escrowID, storage.ErrMissingPaymentIntent)
	}

	result, err := s.Provider.Release(ctx, transfer.ReleaseRequest{
		EscrowTransactionId: escrowID,
		PaymentIntentId:     *prior.PaymentIntentId,
		ContractorId:        prior.PayeeId,
		AmountCents:         prior.AmountCents,
		Description:         "escrow release for job " + prior.JobId,
	})
	if err != nil {
		s.revertRelease(ctx, escrowID, prior.Status, "transfer failed: "+err.Error())
		return nil, fmt.Errorf("failed to release escrow %s: %w", escrowID, err)
	}

	if err := s.Store.CompleteRelease(ctx, escrowID, time.Now()); err != nil {
		// The transfer went through. Do not revert; the stuck-settlement
		// sweep will surface this row for operator reconciliation.
		s.Logger.Error("CRITICAL: transfer succeeded but release commit failed",
			"escrow_transaction_id", escrowID, "transfer_id", result.TransferId, "error", err)
		return nil, fmt.Errorf("transfer %s succeeded but escrow %s was not marked released: %w", result.TransferId, escrowID, err)
	}

	s.Logger.Info("escrow released",
		"escrow_transaction_id", escrowID, "transfer_id", result.TransferId,
		"payee_id", prior.PayeeId, "amount_cents", prior.AmountCents)

	s.enqueueNotification(ctx, notify.Notification{
		UserId:  prior.PayeeId,
		Title:   "Payment released",
		Message: fmt.Sprintf("Your payment of %s is on its way.", dollars(prior.AmountCents)),
		Type:    notify.TypePaymentReleased,
		Metadata: map[string]string{
			"escrow_transaction_id": escrowID,
			"job_id":                prior.JobId,
		},
	})

	return s.Store.GetEscrowTransaction(ctx, escrowID)
}

// RefundEscrowPayment returns the captured charge to the homeowner. Mirrors
// the release sequence through the REFUNDING lock.
func (s *Service) RefundEscrowPayment(ctx context.Context, escrowID, reason string) (*models.EscrowTransaction, error) {
	if reason == "" {
		reason = "refund requested"
	}

	prior, err := s.Store.BeginRefund(ctx, escrowID)
	if err != nil {
		if errors.Is(err, storage.ErrNotRefundable) {
			return nil, s.classifyLockFailure(ctx, escrowID, err)
		}
		return nil, err
	}

	if prior.PaymentIntentId == nil || *prior.PaymentIntentId == "" {
		s.revertRefund(ctx, escrowID, prior.Status, "refund blocked: no payment captured")
		return nil, fmt.Errorf("escrow %s: %w", escrowID, storage.ErrMissingPaymentIntent)
	}

	result, err := s.Provider.Refund(ctx, transfer.RefundRequest{
		EscrowTransactionId: escrowID,
		PaymentIntentId:     *prior.PaymentIntentId,
		AmountCents:         prior.AmountCents,
		Reason:              reason,
	})
	if err != nil {
		s.revertRefund(ctx, escrowID, prior.Status, "refund failed: "+err.Error())
		return nil, fmt.Errorf("failed to refund escrow %s: %w", escrowID, err)
	}

	if err := s.Store.CompleteRefund(ctx, escrowID, reason, time.Now()); err != nil {
		s.Logger.Error("CRITICAL: refund succeeded but commit failed",
			"escrow_transaction_id", escrowID, "transfer_id", result.TransferId, "error", err)
		return nil, fmt.Errorf("refund %s succeeded but escrow %s was not marked refunded: %w", result.TransferId, escrowID, err)
	}

	if prior.Status == models.EscrowAdminReview {
		if err := s.Store.ResolveAdminHold(ctx, escrowID); err != nil {
			s.Logger.Warn("refund committed but admin hold not marked resolved",
				"escrow_transaction_id", escrowID, "error", err)
		}
	}

	s.Logger.Info("escrow refunded",
		"escrow_transaction_id", escrowID, "payer_id", prior.PayerId,
		"amount_cents", prior.AmountCents, "reason", reason)

	s.enqueueNotification(ctx, notify.Notification{
		UserId:  prior.PayerId,
		Title:   "Payment refunded",
		Message: fmt.Sprintf("Your payment of %s has been refunded.", dollars(prior.AmountCents)),
		Type:    notify.TypePaymentRefunded,
		Metadata: map[string]string{
			"escrow_transaction_id": escrowID,
			"job_id":                prior.JobId,
			"reason":                reason,
		},
	})

	return s.Store.GetEscrowTransaction(ctx, escrowID)
}

// AutoReleaseByTier releases a job's held escrow once the contractor's
// trust-tier deadline has passed. Every condition must hold: the newest
// escrow is HELD, the job is completed, the deadline has elapsed, and the job
// has no open disputes. Anything short of that is (false, nil) with no side
// effects.
func (s *Service) AutoReleaseByTier(ctx context.Context, jobID string) (bool, error) {
	esc, err := s.Store.LatestJobEscrowTransaction(ctx, jobID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to load escrow for job %s: %w", jobID, err)
	}
	if esc.Status != models.EscrowHeld {
		return false, nil
	}

	job, err := s.Store.GetJob(ctx, jobID)
	if err != nil {
		return false, fmt.Errorf("failed to load job %s: %w", jobID, err)
	}
	if job.Status != models.JobCompleted {
		return false, nil
	}

	deadline := esc.CreatedAt.AddDate(0, 0, s.Tiers.HoldPeriodDays(ctx, esc.PayeeId))
	if time.Now().Before(deadline) {
		return false, nil
	}

	openDisputes, err := s.Store.CountOpenJobDisputes(ctx, jobID)
	if err != nil {
		return false, fmt.Errorf("failed to count open disputes for job %s: %w", jobID, err)
	}
	if openDisputes > 0 {
		s.Logger.Info("auto-release blocked by open dispute",
			"job_id", jobID, "escrow_transaction_id", esc.Id, "open_disputes", openDisputes)
		return false, nil
	}

	if _, err := s.ReleaseEscrowPayment(ctx, esc.Id); err != nil {
		if errors.Is(err, storage.ErrNotReleasable) || errors.Is(err, storage.ErrStatusConflict) {
			// Someone else settled it between our read and the lock.
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// classifyLockFailure distinguishes "no such escrow" from "escrow exists but
// is not in an eligible status" after a failed settlement lock.
func (s *Service) classifyLockFailure(ctx context.Context, escrowID string, lockErr error) error {
	if _, err := s.Store.GetEscrowTransaction(ctx, escrowID); errors.Is(err, storage.ErrNotFound) {
		return err
	}
	return lockErr
}

func (s *Service) revertRelease(ctx context.Context, escrowID string, revertTo models.EscrowStatus, reason string) {
	if err := s.Store.AbortRelease(ctx, escrowID, revertTo, reason); err != nil {
		s.Logger.Error("CRITICAL: failed to revert release lock, escrow stuck in releasing",
			"escrow_transaction_id", escrowID, "revert_to", revertTo, "error", err)
	}
}

func (s *Service) revertRefund(ctx context.Context, escrowID string, revertTo models.EscrowStatus, reason string) {
	if err := s.Store.AbortRefund(ctx, escrowID, revertTo, reason); err != nil {
		s.Logger.Error("CRITICAL: failed to revert refund lock, escrow stuck in refunding",
			"escrow_transaction_id", escrowID, "revert_to", revertTo, "error", err)
	}
}
