package sweep

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tradecrews/escrow-payments/pkg/models"
	"github.com/tradecrews/escrow-payments/pkg/storage"
)

// DefaultStuckThreshold is how long an escrow may sit in a transient
// RELEASING or REFUNDING state before the sweep flags it for operators.
const DefaultStuckThreshold = 20 * time.Minute

// Releaser is the slice of the escrow service the release sweep drives.
type Releaser interface {
	ReleaseEscrowPayment(ctx context.Context, escrowID string) (*models.EscrowTransaction, error)
	AutoReleaseByTier(ctx context.Context, jobID string) (bool, error)
}

// Approver is the slice of the approval service the approval sweep drives.
type Approver interface {
	ProcessAutoApproval(ctx context.Context, escrowID string) (bool, error)
	SendReminderNotifications(ctx context.Context, escrowID string) error
}

// Sweeper runs the periodic settlement passes. One failing item never stops
// the batch; failures are logged and the remaining items still get processed.
type Sweeper struct {
	Store          storage.EscrowReader
	Releases       Releaser
	Approvals      Approver
	Logger         *slog.Logger
	StuckThreshold time.Duration
}

func NewSweeper(store storage.EscrowReader, releases Releaser, approvals Approver, logger *slog.Logger) *Sweeper {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sweeper{
		Store:          store,
		Releases:       releases,
		Approvals:      approvals,
		Logger:         logger,
		StuckThreshold: DefaultStuckThreshold,
	}
}

// RunReleaseSweep moves money that is due to move. It releases escrows whose
// cooling-off window has ended, releases held escrows whose trust-tier hold
// has lapsed, and flags settlements stuck mid-flight for operators.
func (s *Sweeper) RunReleaseSweep(ctx context.Context) error {
	s.Logger.Info("release sweep starting")

	due, err := s.Store.GetReleasableEscrows(ctx, time.Now())
	if err != nil {
		return fmt.Errorf("failed to list releasable escrows: %w", err)
	}

	released := 0
	for _, esc := range due {
		if _, err := s.Releases.ReleaseEscrowPayment(ctx, esc.Id); err != nil {
			s.Logger.Error("failed to release escrow past cooling off",
				"escrow_transaction_id", esc.Id, "job_id", esc.JobId, "error", err)
			continue
		}
		released++
	}

	held, err := s.Store.ListHeldEscrows(ctx)
	if err != nil {
		return fmt.Errorf("failed to list held escrows: %w", err)
	}

	autoReleased := 0
	seenJobs := make(map[string]bool, len(held))
	for _, esc := range held {
		if seenJobs[esc.JobId] {
			continue
		}
		seenJobs[esc.JobId] = true

		ok, err := s.Releases.AutoReleaseByTier(ctx, esc.JobId)
		if err != nil {
			s.Logger.Error("trust-tier auto-release failed",
				"escrow_transaction_id", esc.Id, "job_id", esc.JobId, "error", err)
			continue
		}
		if ok {
			autoReleased++
		}
	}

	stuck, err := s.Store.GetStuckSettlements(ctx, s.StuckThreshold)
	if err != nil {
		return fmt.Errorf("failed to list stuck settlements: %w", err)
	}
	for _, esc := range stuck {
		// Funds may have moved without a committed final status. A human has
		// to reconcile against the payment provider before touching it.
		s.Logger.Error("escrow stuck in transient settlement state",
			"escrow_transaction_id", esc.Id, "job_id", esc.JobId,
			"status", esc.Status, "updated_at", esc.UpdatedAt)
	}

	s.Logger.Info("release sweep finished",
		"released", released, "auto_released", autoReleased, "stuck", len(stuck))
	return nil
}

// RunApprovalSweep advances the homeowner review workflow: escrows past the
// review window get approved on the homeowner's behalf, and the rest get
// their reminder notifications when a milestone is due.
func (s *Sweeper) RunApprovalSweep(ctx context.Context) error {
	s.Logger.Info("approval sweep starting")

	awaiting, err := s.Store.ListAwaitingApproval(ctx)
	if err != nil {
		return fmt.Errorf("failed to list escrows awaiting approval: %w", err)
	}

	autoApproved := 0
	for _, esc := range awaiting {
		approved, err := s.Approvals.ProcessAutoApproval(ctx, esc.Id)
		if err != nil {
			s.Logger.Error("auto-approval failed",
				"escrow_transaction_id", esc.Id, "job_id", esc.JobId, "error", err)
			continue
		}
		if approved {
			autoApproved++
			continue
		}

		if err := s.Approvals.SendReminderNotifications(ctx, esc.Id); err != nil {
			s.Logger.Error("reminder pass failed",
				"escrow_transaction_id", esc.Id, "job_id", esc.JobId, "error", err)
		}
	}

	s.Logger.Info("approval sweep finished",
		"scanned", len(awaiting), "auto_approved", autoApproved)
	return nil
}
