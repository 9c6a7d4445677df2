package storage

import "errors"

// ErrNotFound is returned when a referenced record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrStatusConflict is returned when a status-guarded update finds the row in
// a different state than the transition requires. Callers treat this as
// "lost the race", never as a write that happened.
var ErrStatusConflict = errors.New("escrow transaction not in expected status")

// ErrNotReleasable is returned when a release lock cannot be acquired because
// the escrow is not in a release-eligible status.
var ErrNotReleasable = errors.New("escrow transaction is not releasable")

// ErrNotRefundable is returned when a refund lock cannot be acquired because
// the escrow is not in a refund-eligible status.
var ErrNotRefundable = errors.New("escrow transaction is not refundable")

// ErrPaymentIntentMismatch is returned when a hold is re-attempted with a
// different payment intent than the one already attached.
var ErrPaymentIntentMismatch = errors.New("held with a different payment intent")

// ErrMissingPaymentIntent is returned when a release is attempted on an escrow
// that never captured funds.
var ErrMissingPaymentIntent = errors.New("escrow transaction has no payment intent")

// ErrReminderAlreadySent is returned when a reminder marker write finds the
// marker already set, so the caller must not send a duplicate notification.
var ErrReminderAlreadySent = errors.New("reminder already sent")

// ErrAlreadyDecided is returned when a homeowner decision is submitted for an
// escrow that has already been approved or rejected. The first decision wins
// and its cooling-off clock is never reset.
var ErrAlreadyDecided = errors.New("homeowner decision already recorded")

// ErrUnauthorized is returned when the acting user does not own the resource
// the action targets.
var ErrUnauthorized = errors.New("not authorized for this action")

// ErrValidation is returned (wrapped, with detail) when request input fails
// validation before any side effect.
var ErrValidation = errors.New("validation failed")
