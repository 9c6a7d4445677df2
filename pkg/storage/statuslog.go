package storage

import (
	"context"

	"github.com/tradecrews/escrow-payments/pkg/models"
)

// StatusLogStore defines the interface for the append-only escrow status audit trail.
type StatusLogStore interface {
	// AppendStatusLog appends a status transition to the audit trail.
	AppendStatusLog(ctx context.Context, entry *models.StatusLogEntry) error

	// ListStatusLog retrieves the audit trail for an escrow, oldest first.
	ListStatusLog(ctx context.Context, escrowID string) ([]models.StatusLogEntry, error)
}
