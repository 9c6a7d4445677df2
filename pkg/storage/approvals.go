package storage

import (
	"context"

	"github.com/tradecrews/escrow-payments/pkg/models"
)

// ApprovalLogStore defines the interface for the append-only homeowner decision history.
type ApprovalLogStore interface {
	// AppendApprovalRecord appends a homeowner (or system) decision to the history.
	AppendApprovalRecord(ctx context.Context, rec *models.ApprovalRecord) error

	// ListApprovalRecords retrieves the decision history for an escrow, oldest first.
	ListApprovalRecords(ctx context.Context, escrowID string) ([]models.ApprovalRecord, error)
}
