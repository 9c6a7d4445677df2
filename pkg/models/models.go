package models

import (
	"time"
)

// EscrowStatus defines the possible states of an escrow transaction.
type EscrowStatus string

const (
	// EscrowPending is the initial state: the transaction exists but no funds
	// have been collected from the homeowner yet.
	EscrowPending EscrowStatus = "pending"
	// EscrowHeld means funds are in platform custody awaiting job completion.
	EscrowHeld EscrowStatus = "held"
	// EscrowAwaitingApproval means completion photos were submitted and the
	// homeowner has been asked to review the work.
	EscrowAwaitingApproval EscrowStatus = "awaiting_homeowner_approval"
	// EscrowCoolingOff means the homeowner approved and the mandatory delay
	// before release is running.
	EscrowCoolingOff EscrowStatus = "cooling_off"
	// EscrowAdminReview means the homeowner rejected the work; release is
	// blocked until an admin resolves the case.
	EscrowAdminReview EscrowStatus = "admin_review"
	// EscrowReleasing is a transient lock state held while the transfer
	// provider call is in flight. It reverts to the prior status on failure.
	EscrowReleasing EscrowStatus = "releasing"
	// EscrowRefunding is the transient lock state for an in-flight refund.
	EscrowRefunding EscrowStatus = "refunding"
	// EscrowReleased is terminal: funds were paid out to the contractor.
	EscrowReleased EscrowStatus = "released"
	// EscrowRefunded is terminal: funds were returned to the homeowner.
	EscrowRefunded EscrowStatus = "refunded"
)

// InPlatformCustody reports whether funds for this status are still held by
// the platform (collected but not yet released or refunded).
func (s EscrowStatus) InPlatformCustody() bool {
	switch s {
	case EscrowHeld, EscrowAwaitingApproval, EscrowCoolingOff, EscrowAdminReview, EscrowReleasing, EscrowRefunding:
		return true
	}
	return false
}

// Terminal reports whether the status permits no further transitions.
func (s EscrowStatus) Terminal() bool {
	return s == EscrowReleased || s == EscrowRefunded
}

// AdminHoldStatus marks an escrow that has been pulled into the manual
// resolution queue.
type AdminHoldStatus string

const (
	AdminHoldPendingReview AdminHoldStatus = "pending_review"
	AdminHoldResolved      AdminHoldStatus = "resolved"
)

// EscrowTransaction is one payment held against one job. Rows are financial
// audit records and are never physically deleted.
type EscrowTransaction struct {
	Id                   string           `json:"id" dynamodbav:"id"`
	JobId                string           `json:"job_id" dynamodbav:"job_id"`
	PayerId              string           `json:"payer_id" dynamodbav:"payer_id"`
	PayeeId              string           `json:"payee_id" dynamodbav:"payee_id"`
	AmountCents          int64            `json:"amount_cents" dynamodbav:"amount_cents"`
	Status               EscrowStatus     `json:"status" dynamodbav:"status"`
	PaymentIntentId      *string          `json:"payment_intent_id,omitempty" dynamodbav:"payment_intent_id,omitempty"`
	HomeownerApproval    bool             `json:"homeowner_approval" dynamodbav:"homeowner_approval"`
	HomeownerApprovalAt  *time.Time       `json:"homeowner_approval_at,omitempty" dynamodbav:"homeowner_approval_at,omitempty"`
	AutoApprovalDate     *time.Time       `json:"auto_approval_date,omitempty" dynamodbav:"auto_approval_date,omitempty"`
	CoolingOffEndsAt     *time.Time       `json:"cooling_off_ends_at,omitempty" dynamodbav:"cooling_off_ends_at,omitempty"`
	CompletionPhotoUrls  []string         `json:"completion_photo_urls,omitempty" dynamodbav:"completion_photo_urls,omitempty"`
	ReleaseBlockedReason *string          `json:"release_blocked_reason,omitempty" dynamodbav:"release_blocked_reason,omitempty"`
	AdminHoldStatus      *AdminHoldStatus `json:"admin_hold_status,omitempty" dynamodbav:"admin_hold_status,omitempty"`
	RefundReason         *string          `json:"refund_reason,omitempty" dynamodbav:"refund_reason,omitempty"`
	ReminderSentAt       *time.Time       `json:"reminder_sent_at,omitempty" dynamodbav:"reminder_sent_at,omitempty"`
	FinalReminderSentAt  *time.Time       `json:"final_reminder_sent_at,omitempty" dynamodbav:"final_reminder_sent_at,omitempty"`
	ReleasedAt           *time.Time       `json:"released_at,omitempty" dynamodbav:"released_at,omitempty"`
	RefundedAt           *time.Time       `json:"refunded_at,omitempty" dynamodbav:"refunded_at,omitempty"`
	CreatedAt            time.Time        `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt            time.Time        `json:"updated_at" dynamodbav:"updated_at"`
}

// ApprovalAction is the decision a homeowner recorded for a completion review.
type ApprovalAction string

const (
	ApprovalActionApproved ApprovalAction = "approved"
	ApprovalActionRejected ApprovalAction = "rejected"
)

// ApprovalRecord is one row of the append-only homeowner decision trail.
// Records are never updated or deleted; multiple rejections across review
// cycles each get their own row.
type ApprovalRecord struct {
	EntryId             string         `json:"entry_id" dynamodbav:"entry_id"`
	EscrowTransactionId string         `json:"escrow_transaction_id" dynamodbav:"escrow_transaction_id"`
	HomeownerId         string         `json:"homeowner_id" dynamodbav:"homeowner_id"`
	Action              ApprovalAction `json:"action" dynamodbav:"action"`
	Comments            string         `json:"comments,omitempty" dynamodbav:"comments,omitempty"`
	PhotosReviewed      []string       `json:"photos_reviewed,omitempty" dynamodbav:"photos_reviewed,omitempty"`
	CreatedAt           time.Time      `json:"created_at" dynamodbav:"created_at"`
}

// StatusLogEntry is one row of the append-only status-transition audit log.
type StatusLogEntry struct {
	EntryId             string       `json:"entry_id" dynamodbav:"entry_id"`
	EscrowTransactionId string       `json:"escrow_transaction_id" dynamodbav:"escrow_transaction_id"`
	FromStatus          EscrowStatus `json:"from_status" dynamodbav:"from_status"`
	ToStatus            EscrowStatus `json:"to_status" dynamodbav:"to_status"`
	Actor               string       `json:"actor,omitempty" dynamodbav:"actor,omitempty"`
	Note                string       `json:"note,omitempty" dynamodbav:"note,omitempty"`
	CreatedAt           time.Time    `json:"created_at" dynamodbav:"created_at"`
}

// TrustScoreRecord is the per-contractor materialized trust metric. One row
// per contractor, upserted whenever the score is recomputed.
type TrustScoreRecord struct {
	ContractorId        string    `json:"contractor_id" dynamodbav:"contractor_id"`
	TrustScore          float64   `json:"trust_score" dynamodbav:"trust_score"`
	SuccessfulJobsCount int       `json:"successful_jobs_count" dynamodbav:"successful_jobs_count"`
	TotalJobsCount      int       `json:"total_jobs_count" dynamodbav:"total_jobs_count"`
	DisputeCount        int       `json:"dispute_count" dynamodbav:"dispute_count"`
	AverageRating       *float64  `json:"average_rating,omitempty" dynamodbav:"average_rating,omitempty"`
	OnPlatformDays      int       `json:"on_platform_days" dynamodbav:"on_platform_days"`
	LastUpdated         time.Time `json:"last_updated" dynamodbav:"last_updated"`
}

// JobStatus mirrors the states of the externally-owned job record. This core
// only ever reads it.
type JobStatus string

const (
	JobPosted     JobStatus = "posted"
	JobInProgress JobStatus = "in_progress"
	JobCompleted  JobStatus = "completed"
	JobCancelled  JobStatus = "cancelled"
)

// PhotoVerificationVerified is the verification-pipeline outcome required
// before an escrow may auto-approve.
const PhotoVerificationVerified = "verified"

// MinAutoApprovalPhotoScore is the minimum photo-verification confidence for
// auto-approval eligibility.
const MinAutoApprovalPhotoScore = 0.7

// Job is the external job entity as this core sees it. Everything except the
// payment-method annotation fields is read-only here.
type Job struct {
	Id                      string     `json:"id" dynamodbav:"id"`
	HomeownerId             string     `json:"homeowner_id" dynamodbav:"homeowner_id"`
	ContractorId            string     `json:"contractor_id" dynamodbav:"contractor_id"`
	Status                  JobStatus  `json:"status" dynamodbav:"status"`
	PhotoVerificationStatus *string    `json:"photo_verification_status,omitempty" dynamodbav:"photo_verification_status,omitempty"`
	PhotoVerificationScore  *float64   `json:"photo_verification_score,omitempty" dynamodbav:"photo_verification_score,omitempty"`
	PaymentMethod           *string    `json:"payment_method,omitempty" dynamodbav:"payment_method,omitempty"`
	PaymentMethodNotes      *string    `json:"payment_method_notes,omitempty" dynamodbav:"payment_method_notes,omitempty"`
	PaymentMethodRecordedAt *time.Time `json:"payment_method_recorded_at,omitempty" dynamodbav:"payment_method_recorded_at,omitempty"`
	CreatedAt               time.Time  `json:"created_at" dynamodbav:"created_at"`
}

// PaymentMethodCash is the out-of-platform payment method that must be logged
// at elevated severity when recorded.
const PaymentMethodCash = "cash"

// User is the minimal read-only view of a platform user needed here (tenure
// input for trust scoring).
type User struct {
	Id        string    `json:"id" dynamodbav:"id"`
	CreatedAt time.Time `json:"created_at" dynamodbav:"created_at"`
}

// Review is a read-only rating left for a contractor.
type Review struct {
	Id           string    `json:"id" dynamodbav:"id"`
	JobId        string    `json:"job_id" dynamodbav:"job_id"`
	ContractorId string    `json:"contractor_id" dynamodbav:"contractor_id"`
	Rating       float64   `json:"rating" dynamodbav:"rating"`
	CreatedAt    time.Time `json:"created_at" dynamodbav:"created_at"`
}

// DisputeStatus is the lifecycle of an externally-managed dispute.
type DisputeStatus string

const (
	DisputeOpen     DisputeStatus = "open"
	DisputeResolved DisputeStatus = "resolved"
)

// Dispute is the read-only view of a dispute raised against a job.
type Dispute struct {
	Id           string        `json:"id" dynamodbav:"id"`
	JobId        string        `json:"job_id" dynamodbav:"job_id"`
	ContractorId string        `json:"contractor_id" dynamodbav:"contractor_id"`
	Status       DisputeStatus `json:"status" dynamodbav:"status"`
	Reason       string        `json:"reason,omitempty" dynamodbav:"reason,omitempty"`
	CreatedAt    time.Time     `json:"created_at" dynamodbav:"created_at"`
}
