package storage

import (
	"context"

	"github.com/tradecrews/escrow-payments/pkg/models"
)

// JobReader defines the interface for reading marketplace job data.
type JobReader interface {
	// GetJob retrieves a job by its ID.
	GetJob(ctx context.Context, jobID string) (*models.Job, error)

	// ListContractorJobs retrieves all jobs assigned to a contractor.
	ListContractorJobs(ctx context.Context, contractorID string) ([]models.Job, error)
}

// JobAnnotator defines the interface for the payment annotations this service
// writes back onto job records. Job lifecycle transitions belong to the
// marketplace service and are out of reach here.
type JobAnnotator interface {
	// RecordJobPaymentMethod stamps the payment method a job was arranged with,
	// plus any free-form notes the contractor supplied.
	RecordJobPaymentMethod(ctx context.Context, jobID, paymentMethod, notes string) error
}

// JobStore combines the reader and annotator interfaces.
type JobStore interface {
	JobReader
	JobAnnotator
}
