package payout

import (
	"context"
	"fmt"

	"github.com/tradecrews/escrow-payments/pkg/storage"
	"github.com/tradecrews/escrow-payments/pkg/transfer"
	"github.com/tradecrews/escrow-payments/pkg/trust"
)

// Schedule is a contractor's payout speed, derived from their trust tier.
type Schedule struct {
	ContractorId string `json:"contractor_id"`
	Expedited    bool   `json:"expedited"`
	HoldDays     int    `json:"hold_days"`
}

// TierSource exposes the trust-tier decision payouts depend on.
type TierSource interface {
	HoldPeriodDays(ctx context.Context, contractorID string) int
}

// Service wraps the payout-account provider and derives payout schedules from
// contractor trust tiers.
type Service struct {
	Provider transfer.Provider
	Tiers    TierSource
}

func NewService(provider transfer.Provider, tiers TierSource) *Service {
	return &Service{Provider: provider, Tiers: tiers}
}

// PayoutSchedule reports how quickly released funds reach this contractor.
// Degrades to the standard schedule on any trust lookup problem.
func (s *Service) PayoutSchedule(ctx context.Context, contractorID string) Schedule {
	days := s.Tiers.HoldPeriodDays(ctx, contractorID)
	return Schedule{
		ContractorId: contractorID,
		Expedited:    days <= trust.TrustedHoldDays,
		HoldDays:     days,
	}
}

// SetupContractorPayout starts (or resumes) payout onboarding, returning the
// provider's one-time account link.
func (s *Service) SetupContractorPayout(ctx context.Context, contractorID string) (*transfer.AccountLink, error) {
	if contractorID == "" {
		return nil, fmt.Errorf("contractor id is required: %w", storage.ErrValidation)
	}

	link, err := s.Provider.CreateAccountLink(ctx, contractorID)
	if err != nil {
		return nil, fmt.Errorf("failed to create payout account link: %w", err)
	}
	return link, nil
}

// GetContractorPayoutStatus reports whether the contractor can currently be
// paid. A provider 404 means onboarding never started.
func (s *Service) GetContractorPayoutStatus(ctx context.Context, contractorID string) (*transfer.AccountStatus, error) {
	if contractorID == "" {
		return nil, fmt.Errorf("contractor id is required: %w", storage.ErrValidation)
	}

	status, err := s.Provider.GetAccountStatus(ctx, contractorID)
	if err != nil {
		if transfer.IsNotFound(err) {
			return nil, fmt.Errorf("no payout account for contractor %s: %w", contractorID, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to look up payout account: %w", err)
	}
	return status, nil
}
