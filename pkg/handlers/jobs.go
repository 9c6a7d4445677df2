package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// PaymentMethodRequest annotates a job with how it was actually paid.
type PaymentMethodRequest struct {
	Method string `json:"method"`
	Notes  string `json:"notes,omitempty"`
}

// VerifyJobPayment reports whether the job is backed by a platform payment.
func (h *ApiHandler) VerifyJobPayment(w http.ResponseWriter, r *http.Request) {
	result, err := h.Enforcement.VerifyJobPayment(r.Context(), chi.URLParam(r, "jobId"))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// GetCompletionGate reports whether the job may be marked completed.
func (h *ApiHandler) GetCompletionGate(w http.ResponseWriter, r *http.Request) {
	gate, err := h.Enforcement.CanCompleteJob(r.Context(), chi.URLParam(r, "jobId"))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, gate)
}

// RecordPaymentMethod annotates the job's payment-method metadata.
func (h *ApiHandler) RecordPaymentMethod(w http.ResponseWriter, r *http.Request) {
	var req PaymentMethodRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Method == "" {
		http.Error(w, "method is required", http.StatusBadRequest)
		return
	}

	if !h.Enforcement.RecordPaymentMethod(r.Context(), chi.URLParam(r, "jobId"), req.Method, req.Notes) {
		http.Error(w, "Failed to record payment method", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
