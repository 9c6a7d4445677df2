package notify

import "context"

// Notification types consumed by the delivery workers.
const (
	TypeApprovalRequested   = "approval_requested"
	TypeApprovalReminder    = "approval_reminder"
	TypeFinalReminder       = "final_reminder"
	TypeWorkApproved        = "work_approved"
	TypeWorkRejected        = "work_rejected"
	TypeAutoApproved        = "auto_approved"
	TypePaymentReleased     = "payment_released"
	TypePaymentRefunded     = "payment_refunded"
	TypeAdminReviewOpened   = "admin_review_opened"
	TypeCashPaymentRecorded = "cash_payment_recorded"
)

// Notification is one message to a user about an escrow transaction.
type Notification struct {
	UserId   string            `json:"user_id"`
	Title    string            `json:"title"`
	Message  string            `json:"message"`
	Type     string            `json:"type"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Dispatcher hands notifications to the delivery pipeline. Delivery is
// best-effort; callers log failures and keep going.
type Dispatcher interface {
	Enqueue(ctx context.Context, n Notification) error
}

// NopDispatcher drops every notification. Used when no queue is configured.
type NopDispatcher struct{}

var _ Dispatcher = (*NopDispatcher)(nil)

func (d *NopDispatcher) Enqueue(ctx context.Context, n Notification) error {
	return nil
}
