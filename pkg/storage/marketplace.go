package storage

import (
	"context"

	"github.com/tradecrews/escrow-payments/pkg/models"
)

// UserReader defines the interface for reading marketplace user data.
type UserReader interface {
	// GetUser retrieves a user by their ID.
	GetUser(ctx context.Context, userID string) (*models.User, error)
}

// ReviewReader defines the interface for reading contractor reviews.
type ReviewReader interface {
	// ListContractorReviews retrieves all reviews left for a contractor.
	ListContractorReviews(ctx context.Context, contractorID string) ([]models.Review, error)
}

// DisputeReader defines the interface for reading dispute data.
type DisputeReader interface {
	// CountContractorDisputes counts all disputes ever filed against a contractor.
	CountContractorDisputes(ctx context.Context, contractorID string) (int, error)

	// CountOpenJobDisputes counts the unresolved disputes attached to a job.
	CountOpenJobDisputes(ctx context.Context, jobID string) (int, error)
}

// MarketplaceReader combines the read-only views of marketplace data that
// trust scoring and payment enforcement depend on.
type MarketplaceReader interface {
	UserReader
	ReviewReader
	DisputeReader
}
