package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewEscrowRequest is the body for creating an escrow transaction.
type NewEscrowRequest struct {
	JobId       string `json:"job_id"`
	PayerId     string `json:"payer_id"`
	PayeeId     string `json:"payee_id"`
	AmountCents int64  `json:"amount_cents"`
}

// HoldRequest attaches the payment provider's charge reference to an escrow.
type HoldRequest struct {
	PaymentIntentId string `json:"payment_intent_id"`
}

// RefundRequest carries the reason a payment is being returned.
type RefundRequest struct {
	Reason string `json:"reason"`
}

// CreateEscrow handles the logic for opening a new escrow transaction.
func (h *ApiHandler) CreateEscrow(w http.ResponseWriter, r *http.Request) {
	var req NewEscrowRequest
	if !decodeBody(w, r, &req) {
		return
	}

	esc, err := h.Escrows.CreateEscrowTransaction(r.Context(), req.JobId, req.PayerId, req.PayeeId, req.AmountCents)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, esc)
}

// GetEscrow handles the logic for retrieving an escrow transaction by its ID.
func (h *ApiHandler) GetEscrow(w http.ResponseWriter, r *http.Request) {
	esc, err := h.Escrows.GetEscrowTransaction(r.Context(), chi.URLParam(r, "escrowId"))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, esc)
}

// HoldPayment records a captured charge against a pending escrow.
func (h *ApiHandler) HoldPayment(w http.ResponseWriter, r *http.Request) {
	var req HoldRequest
	if !decodeBody(w, r, &req) {
		return
	}

	esc, err := h.Escrows.HoldPaymentInEscrow(r.Context(), chi.URLParam(r, "escrowId"), req.PaymentIntentId)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, esc)
}

// ReleasePayment pays the contractor out of platform custody.
func (h *ApiHandler) ReleasePayment(w http.ResponseWriter, r *http.Request) {
	esc, err := h.Escrows.ReleaseEscrowPayment(r.Context(), chi.URLParam(r, "escrowId"))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, esc)
}

// RefundPayment returns the captured charge to the homeowner.
func (h *ApiHandler) RefundPayment(w http.ResponseWriter, r *http.Request) {
	var req RefundRequest
	if !decodeBody(w, r, &req) {
		return
	}

	esc, err := h.Escrows.RefundEscrowPayment(r.Context(), chi.URLParam(r, "escrowId"), req.Reason)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, esc)
}

// ListJobEscrows handles the logic for listing a job's escrow history.
func (h *ApiHandler) ListJobEscrows(w http.ResponseWriter, r *http.Request) {
	escrows, err := h.Escrows.GetJobEscrowTransactions(r.Context(), chi.URLParam(r, "jobId"))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, escrows)
}

// GetUserPaymentHistory lists every escrow a user funded or is owed.
func (h *ApiHandler) GetUserPaymentHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.Escrows.GetUserPaymentHistory(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, history)
}
