package approval

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/tradecrews/escrow-payments/pkg/models"
	"github.com/tradecrews/escrow-payments/pkg/notify"
	"github.com/tradecrews/escrow-payments/pkg/storage"
)

const (
	// AutoApprovalWindowDays is how long a homeowner has to review completed
	// work before the platform approves on their behalf.
	AutoApprovalWindowDays = 7

	// CoolingOffPeriod is the mandatory delay between a homeowner approval
	// and the release of funds, leaving room for last-minute disputes.
	CoolingOffPeriod = 48 * time.Hour

	reminderDaysLeft      = 3
	finalReminderDaysLeft = 1

	autoApprovalComment = "approved automatically after the review window expired"
)

// Store is the slice of the data layer the approval workflow reads and writes.
type Store interface {
	storage.EscrowStore
	storage.ApprovalLogStore
	storage.JobReader
}

// Service drives the homeowner review workflow: requesting approval once
// completion photos are in, recording the decision, auto-approving after the
// review window, and reminding homeowners before it closes.
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

// RequestHomeownerApproval opens the review window on a held escrow once the
// contractor submits completion photos. The homeowner is notified and the
// auto-approval clock starts.
func (s *Service) RequestHomeownerApproval(ctx context.Context, escrowID string, photoURLs []string) (*models.EscrowTransaction, error) {
	esc, err := s.Store.GetEscrowTransaction(ctx, escrowID)
	if err != nil {
		return nil, err
	}

	job, err := s.Store.GetJob(ctx, esc.JobId)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve job for escrow %s: %w", escrowID, err)
	}
	if job.HomeownerId == "" {
		return nil, fmt.Errorf("job %s has no homeowner to approve it: %w", job.Id, storage.ErrValidation)
	}

	autoApprovalDate := time.Now().AddDate(0, 0, AutoApprovalWindowDays)
	updated, err := s.Store.MarkAwaitingApproval(ctx, escrowID, job.ContractorId, photoURLs, autoApprovalDate)
	if err != nil {
		return nil, err
	}

	s.enqueueNotification(ctx, notify.Notification{
		UserId:  job.HomeownerId,
		Title:   "Review completed work",
		Message: "Your contractor marked the job complete. Review the photos and approve or reject the work.",
		Type:    notify.TypeApprovalRequested,
		Metadata: map[string]string{
			"escrow_transaction_id": escrowID,
			"job_id":                job.Id,
			"auto_approval_date":    autoApprovalDate.Format(time.RFC3339),
		},
	})

	return updated, nil
}

// ApproveCompletion records the homeowner's approval and starts the 48-hour
// cooling-off clock. Only the job's homeowner may call it, and only the first
// decision counts; the cooling-off deadline is never reset by repeat calls.
func (s *Service) ApproveCompletion(ctx context.Context, escrowID, homeownerID, comments string) (*models.EscrowTransaction, error) {
	esc, job, err := s.authorizeDecision(ctx, escrowID, homeownerID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	updated, err := s.Store.MarkApproved(ctx, escrowID, homeownerID, now, now.Add(CoolingOffPeriod))
	if err != nil {
		if errors.Is(err, storage.ErrStatusConflict) {
			return nil, fmt.Errorf("escrow %s: %w", escrowID, storage.ErrAlreadyDecided)
		}
		return nil, err
	}

	if err := s.appendDecision(ctx, esc, homeownerID, models.ApprovalActionApproved, comments); err != nil {
		return nil, err
	}

	s.enqueueNotification(ctx, notify.Notification{
		UserId:  job.ContractorId,
		Title:   "Work approved",
		Message: "The homeowner approved your work. Payment releases after the cooling-off period.",
		Type:    notify.TypeWorkApproved,
		Metadata: map[string]string{
			"escrow_transaction_id": escrowID,
			"job_id":                job.Id,
		},
	})

	return updated, nil
}

// RejectCompletion records the homeowner's rejection and pulls the escrow out
// of the automatic flow into admin review.
func (s *Service) RejectCompletion(ctx context.Context, escrowID, homeownerID, reason string) (*models.EscrowTransaction, error) {
	if reason == "" {
		return nil, fmt.Errorf("a rejection reason is required: %w", storage.ErrValidation)
	}

	esc, job, err := s.authorizeDecision(ctx, escrowID, homeownerID)
	if err != nil {
		return nil, err
	}

	updated, err := s.Store.MarkRejected(ctx, escrowID, homeownerID, reason)
	if err != nil {
		if errors.Is(err, storage.ErrStatusConflict) {
			return nil, fmt.Errorf("escrow %s: %w", escrowID, storage.ErrAlreadyDecided)
		}
		return nil, err
	}

	if err := s.appendDecision(ctx, esc, homeownerID, models.ApprovalActionRejected, reason); err != nil {
		return nil, err
	}

	s.enqueueNotification(ctx, notify.Notification{
		UserId:  job.ContractorId,
		Title:   "Work rejected",
		Message: "The homeowner rejected the completed work. An admin will review the case.",
		Type:    notify.TypeWorkRejected,
		Metadata: map[string]string{
			"escrow_transaction_id": escrowID,
			"job_id":                job.Id,
			"reason":                reason,
		},
	})
	s.enqueueNotification(ctx, notify.Notification{
		UserId:  "admin",
		Title:   "Escrow needs review",
		Message: "A homeowner rejected completed work; the escrow is on hold pending review.",
		Type:    notify.TypeAdminReviewOpened,
		Metadata: map[string]string{
			"escrow_transaction_id": escrowID,
			"job_id":                job.Id,
			"reason":                reason,
		},
	})

	return updated, nil
}

// CheckAutoApprovalEligibility reports whether the platform may approve on
// the homeowner's behalf. Every condition must hold: the escrow is still
// awaiting a decision, the review window has lapsed, and the completion
// photos passed verification with enough confidence. Business-rule misses
// return (false, nil); only lookup failures return errors.
func (s *Service) CheckAutoApprovalEligibility(ctx context.Context, escrowID string) (bool, error) {
	esc, err := s.Store.GetEscrowTransaction(ctx, escrowID)
	if err != nil {
		return false, err
	}

	job, err := s.Store.GetJob(ctx, esc.JobId)
	if err != nil {
		return false, fmt.Errorf("failed to resolve job for escrow %s: %w", escrowID, err)
	}

	return eligibleForAutoApproval(esc, job, time.Now()), nil
}

func eligibleForAutoApproval(esc *models.EscrowTransaction, job *models.Job, now time.Time) bool {
	if esc.Status != models.EscrowAwaitingApproval || esc.HomeownerApproval {
		return false
	}
	if esc.AutoApprovalDate == nil || now.Before(*esc.AutoApprovalDate) {
		return false
	}
	if job.PhotoVerificationStatus == nil || *job.PhotoVerificationStatus != models.PhotoVerificationVerified {
		return false
	}
	if job.PhotoVerificationScore == nil || *job.PhotoVerificationScore < models.MinAutoApprovalPhotoScore {
		return false
	}
	return true
}

// ProcessAutoApproval approves on the homeowner's behalf when the escrow is
// eligible. Returns true only when this call performed the approval.
func (s *Service) ProcessAutoApproval(ctx context.Context, escrowID string) (bool, error) {
	esc, err := s.Store.GetEscrowTransaction(ctx, escrowID)
	if err != nil {
		return false, err
	}

	job, err := s.Store.GetJob(ctx, esc.JobId)
	if err != nil {
		return false, fmt.Errorf("failed to resolve job for escrow %s: %w", escrowID, err)
	}

	if !eligibleForAutoApproval(esc, job, time.Now()) {
		return false, nil
	}

	if _, err := s.ApproveCompletion(ctx, escrowID, job.HomeownerId, autoApprovalComment); err != nil {
		if errors.Is(err, storage.ErrAlreadyDecided) {
			// The homeowner beat the sweep to it.
			return false, nil
		}
		return false, err
	}

	s.Logger.Info("escrow auto-approved after review window",
		"escrow_transaction_id", escrowID, "job_id", job.Id)

	s.enqueueNotification(ctx, notify.Notification{
		UserId:  job.HomeownerId,
		Title:   "Work approved automatically",
		Message: "The review window closed, so the completed work was approved on your behalf.",
		Type:    notify.TypeAutoApproved,
		Metadata: map[string]string{
			"escrow_transaction_id": escrowID,
			"job_id":                job.Id,
		},
	})

	return true, nil
}

// SendReminderNotifications nudges the homeowner at three days and again at
// one day before the review window closes. The per-milestone markers make
// redundant sweeps safe: each reminder is sent at most once.
func (s *Service) SendReminderNotifications(ctx context.Context, escrowID string) error {
	esc, err := s.Store.GetEscrowTransaction(ctx, escrowID)
	if err != nil {
		return err
	}

	if esc.Status != models.EscrowAwaitingApproval || esc.HomeownerApproval || esc.AutoApprovalDate == nil {
		return nil
	}

	daysLeft := int(math.Ceil(time.Until(*esc.AutoApprovalDate).Hours() / 24))

	var final bool
	switch daysLeft {
	case reminderDaysLeft:
		final = false
	case finalReminderDaysLeft:
		final = true
	default:
		return nil
	}

	if err := s.Store.MarkReminderSent(ctx, escrowID, final, time.Now()); err != nil {
		if errors.Is(err, storage.ErrReminderAlreadySent) || errors.Is(err, storage.ErrStatusConflict) {
			return nil
		}
		return err
	}

	job, err := s.Store.GetJob(ctx, esc.JobId)
	if err != nil {
		s.Logger.Warn("reminder marked but job lookup failed, notification skipped",
			"escrow_transaction_id", escrowID, "error", err)
		return nil
	}

	note := notify.Notification{
		UserId:  job.HomeownerId,
		Title:   "Reminder: review completed work",
		Message: fmt.Sprintf("You have %d days left to review the completed work before it is approved automatically.", daysLeft),
		Type:    notify.TypeApprovalReminder,
		Metadata: map[string]string{
			"escrow_transaction_id": escrowID,
			"job_id":                job.Id,
			"auto_approval_date":    esc.AutoApprovalDate.Format(time.RFC3339),
		},
	}
	if final {
		note.Title = "Final notice: review completed work"
		note.Message = "Tomorrow the completed work will be approved automatically unless you review it."
		note.Type = notify.TypeFinalReminder
	}
	s.enqueueNotification(ctx, note)

	return nil
}

// GetApprovalHistory lists the decision trail for an escrow, oldest first.
func (s *Service) GetApprovalHistory(ctx context.Context, escrowID string) ([]models.ApprovalRecord, error) {
	return s.Store.ListApprovalRecords(ctx, escrowID)
}

// authorizeDecision loads the escrow and its job and verifies the caller is
// the job's homeowner.
func (s *Service) authorizeDecision(ctx context.Context, escrowID, homeownerID string) (*models.EscrowTransaction, *models.Job, error) {
	esc, err := s.Store.GetEscrowTransaction(ctx, escrowID)
	if err != nil {
		return nil, nil, err
	}

	job, err := s.Store.GetJob(ctx, esc.JobId)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve job for escrow %s: %w", escrowID, err)
	}

	if homeownerID == "" || job.HomeownerId != homeownerID {
		return nil, nil, fmt.Errorf("user %s is not the homeowner for job %s: %w", homeownerID, job.Id, storage.ErrUnauthorized)
	}
	return esc, job, nil
}

// appendDecision writes the append-only history row for a decision. The
// status transition has already committed; a history failure is loud but
// cannot unwind it.
func (s *Service) appendDecision(ctx context.Context, esc *models.EscrowTransaction, homeownerID string, action models.ApprovalAction, comments string) error {
	err := s.Store.AppendApprovalRecord(ctx, &models.ApprovalRecord{
		EscrowTransactionId: esc.Id,
		HomeownerId:         homeownerID,
		Action:              action,
		Comments:            comments,
		PhotosReviewed:      esc.CompletionPhotoUrls,
	})
	if err != nil {
		s.Logger.Error("CRITICAL: decision recorded but history append failed",
			"escrow_transaction_id", esc.Id, "action", action, "error", err)
		return fmt.Errorf("decision recorded but history append failed for escrow %s: %w", esc.Id, err)
	}
	return nil
}

func (s *Service) enqueueNotification(ctx context.Context, n notify.Notification) {
	if err := s.Notifier.Enqueue(ctx, n); err != nil {
		s.Logger.Warn("failed to enqueue notification",
			"type", n.Type, "user_id", n.UserId, "error", err)
	}
}
