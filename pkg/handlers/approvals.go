package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RequestApprovalRequest opens the homeowner review window with the
// contractor's completion photos.
type RequestApprovalRequest struct {
	PhotoUrls []string `json:"photo_urls"`
}

// ApproveRequest records the homeowner's approval of the completed work.
type ApproveRequest struct {
	HomeownerId string `json:"homeowner_id"`
	Comments    string `json:"comments,omitempty"`
}

// RejectRequest records the homeowner's rejection and its reason.
type RejectRequest struct {
	HomeownerId string `json:"homeowner_id"`
	Reason      string `json:"reason"`
}

// RequestApproval asks the homeowner to review completed work.
func (h *ApiHandler) RequestApproval(w http.ResponseWriter, r *http.Request) {
	var req RequestApprovalRequest
	if !decodeBody(w, r, &req) {
		return
	}

	esc, err := h.Approvals.RequestHomeownerApproval(r.Context(), chi.URLParam(r, "escrowId"), req.PhotoUrls)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, esc)
}

// ApproveCompletion handles the homeowner approving the completed work.
func (h *ApiHandler) ApproveCompletion(w http.ResponseWriter, r *http.Request) {
	var req ApproveRequest
	if !decodeBody(w, r, &req) {
		return
	}

	esc, err := h.Approvals.ApproveCompletion(r.Context(), chi.URLParam(r, "escrowId"), req.HomeownerId, req.Comments)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, esc)
}

// RejectCompletion handles the homeowner rejecting the completed work.
func (h *ApiHandler) RejectCompletion(w http.ResponseWriter, r *http.Request) {
	var req RejectRequest
	if !decodeBody(w, r, &req) {
		return
	}

	esc, err := h.Approvals.RejectCompletion(r.Context(), chi.URLParam(r, "escrowId"), req.HomeownerId, req.Reason)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, esc)
}

// GetApprovalHistory lists the homeowner decision trail for an escrow.
func (h *ApiHandler) GetApprovalHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.Approvals.GetApprovalHistory(r.Context(), chi.URLParam(r, "escrowId"))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, history)
}
