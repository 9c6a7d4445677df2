package storage

import (
	"context"

	"github.com/tradecrews/escrow-payments/pkg/models"
)

// TrustScoreStore defines the interface for cached contractor trust scores.
type TrustScoreStore interface {
	// GetTrustScore retrieves the most recently computed score for a contractor.
	GetTrustScore(ctx context.Context, contractorID string) (*models.TrustScoreRecord, error)

	// PutTrustScore stores a freshly computed score, replacing any previous one.
	PutTrustScore(ctx context.Context, rec *models.TrustScoreRecord) error
}
