package payout

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tradecrews/escrow-payments/pkg/storage"
)

// FeeBreakdown splits a job amount into platform fee, payment-processing fee
// and the contractor's payout. All values are integer cents; the three parts
// always sum back to the amount.
type FeeBreakdown struct {
	AmountCents           int64 `json:"amount_cents"`
	PlatformFeeCents      int64 `json:"platform_fee_cents"`
	ProcessingFeeCents    int64 `json:"processing_fee_cents"`
	TotalFeesCents        int64 `json:"total_fees_cents"`
	ContractorPayoutCents int64 `json:"contractor_payout_cents"`
}

var (
	platformFeeRate     = decimal.NewFromFloat(0.05)
	processingFeeRate   = decimal.NewFromFloat(0.029)
	processingFlatCents = decimal.NewFromInt(30)
)

const (
	minPlatformFeeCents = int64(50)
	maxPlatformFeeCents = int64(5000)
)

// CalculateFees computes the fee split for a job amount. Deterministic: the
// same amount always yields the same four numbers. Fees round half-up at the
// cent; the contractor payout is derived by subtraction so no cent is ever
// created or lost.
func CalculateFees(amountCents int64) (*FeeBreakdown, error) {
	if amountCents <= 0 {
		return nil, fmt.Errorf("amount_cents must be positive: %w", storage.ErrValidation)
	}

	amount := decimal.NewFromInt(amountCents)

	platform := amount.Mul(platformFeeRate).Round(0).IntPart()
	if platform < minPlatformFeeCents {
		platform = minPlatformFeeCents
	}
	if platform > maxPlatformFeeCents {
		platform = maxPlatformFeeCents
	}

	processing := amount.Mul(processingFeeRate).Add(processingFlatCents).Round(0).IntPart()

	total := platform + processing

	return &FeeBreakdown{
		AmountCents:           amountCents,
		PlatformFeeCents:      platform,
		ProcessingFeeCents:    processing,
		TotalFeesCents:        total,
		ContractorPayoutCents: amountCents - total,
	}, nil
}
