package escrow

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/tradecrews/escrow-payments/pkg/models"
	"github.com/tradecrews/escrow-payments/pkg/notify"
	"github.com/tradecrews/escrow-payments/pkg/storage"
	"github.com/tradecrews/escrow-payments/pkg/transfer"
)

// Store is everything the escrow service needs from the data layer, including
// the privileged settlement operations.
type Store interface {
	storage.EscrowStore
	storage.SettlementStore
	storage.JobReader
	storage.DisputeReader
}

// Tiers exposes the trust-tier hold period consumed by the auto-release sweep.
type Tiers interface {
	HoldPeriodDays(ctx context.Context, contractorID string) int
}

// Service owns the escrow transaction lifecycle: creation, capture, and the
// two money-movement operations (release and refund).
type Service struct {
	Store    Store
	Provider transfer.Provider
	Tiers    Tiers
	Notifier notify.Dispatcher
	Logger   *slog.Logger
}

func NewService(store Store, provider transfer.Provider, tiers Tiers, notifier notify.Dispatcher, logger *slog.Logger) *Service {
	if notifier == nil {
		notifier = &notify.NopDispatcher{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		Store:    store,
		Provider: provider,
		Tiers:    tiers,
		Notifier: notifier,
		Logger:   logger,
	}
}

// CreateEscrowTransaction opens a new PENDING escrow for a job. No money
// moves here; the payment is captured later by HoldPaymentInEscrow.
func (s *Service) CreateEscrowTransaction(ctx context.Context, jobID, payerID, payeeID string, amountCents int64) (*models.EscrowTransaction, error) {
	if jobID == "" || payerID == "" || payeeID == "" {
		return nil, fmt.Errorf("job, payer and payee ids are required: %w", storage.ErrValidation)
	}
	if amountCents <= 0 {
		return nil, fmt.Errorf("amount_cents must be positive: %w", storage.ErrValidation)
	}

	esc, err := s.Store.CreateEscrowTransaction(ctx, &models.EscrowTransaction{
		JobId:       jobID,
		PayerId:     payerID,
		PayeeId:     payeeID,
		AmountCents: amountCents,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to persist escrow transaction: %w", err)
	}
	return esc, nil
}

// HoldPaymentInEscrow records a successful charge, moving the escrow from
// PENDING to HELD. Webhook redeliveries with the same payment intent are
// no-ops; a different intent on a held row is rejected.
func (s *Service) HoldPaymentInEscrow(ctx context.Context, escrowID, paymentIntentID string) (*models.EscrowTransaction, error) {
	if paymentIntentID == "" {
		return nil, fmt.Errorf("payment intent id is required: %w", storage.ErrValidation)
	}
	return s.Store.MarkHeld(ctx, escrowID, paymentIntentID)
}

// GetEscrowTransaction fetches a single escrow transaction.
func (s *Service) GetEscrowTransaction(ctx context.Context, escrowID string) (*models.EscrowTransaction, error) {
	return s.Store.GetEscrowTransaction(ctx, escrowID)
}

// GetJobEscrowTransactions lists a job's escrow history, newest first.
func (s *Service) GetJobEscrowTransactions(ctx context.Context, jobID string) ([]models.EscrowTransaction, error) {
	return s.Store.ListJobEscrowTransactions(ctx, jobID)
}

// GetUserPaymentHistory lists every escrow the user funded or is owed,
// newest first.
func (s *Service) GetUserPaymentHistory(ctx context.Context, userID string) ([]models.EscrowTransaction, error) {
	asPayer, err := s.Store.ListPayerEscrowTransactions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments made: %w", err)
	}
	asPayee, err := s.Store.ListPayeeEscrowTransactions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments owed: %w", err)
	}

	seen := make(map[string]bool, len(asPayer))
	history := make([]models.EscrowTransaction, 0, len(asPayer)+len(asPayee))
	for _, esc := range asPayer {
		seen[esc.Id] = true
		history = append(history, esc)
	}
	for _, esc := range asPayee {
		if !seen[esc.Id] {
			history = append(history, esc)
		}
	}

	sort.Slice(history, func(i, j int) bool {
		return history[i].CreatedAt.After(history[j].CreatedAt)
	})
	return history, nil
}

// dollars renders integer cents for notification copy.
func dollars(cents int64) string {
	return "$" + decimal.NewFromInt(cents).Div(decimal.NewFromInt(100)).StringFixed(2)
}

// enqueueNotification sends best-effort; a delivery failure never unwinds a
// completed state transition.
func (s *Service) enqueueNotification(ctx context.Context, n notify.Notification) {
	if err := s.Notifier.Enqueue(ctx, n); err != nil {
		s.Logger.Warn("failed to enqueue notification",
			"type", n.Type, "user_id", n.UserId, "error", err)
	}
}
