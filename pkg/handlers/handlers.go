// Package handlers exposes the escrow payment core over HTTP.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	appmiddleware "github.com/tradecrews/escrow-payments/pkg/middleware"
	"github.com/tradecrews/escrow-payments/pkg/storage"
	"github.com/tradecrews/escrow-payments/pkg/transfer"
)

// ApiHandler holds the application services the HTTP layer delegates to.
type ApiHandler struct {
	Escrows     EscrowService
	Approvals   ApprovalService
	Enforcement EnforcementService
	Trust       TrustService
	Payouts     PayoutService
}

// NewApiHandler creates a new ApiHandler with its service dependencies.
func NewApiHandler(escrows EscrowService, approvals ApprovalService, enforcement EnforcementService, trust TrustService, payouts PayoutService) *ApiHandler {
	return &ApiHandler{
		Escrows:     escrows,
		Approvals:   approvals,
		Enforcement: enforcement,
		Trust:       trust,
		Payouts:     payouts,
	}
}

// NewRouter mounts every route on a chi router with request logging.
func NewRouter(h *ApiHandler, logger *slog.Logger) *chi.Mux {
	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(appmiddleware.NewStructuredLogger(logger))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.Route("/escrows", func(r chi.Router) {
		r.Post("/", h.CreateEscrow)
		r.Get("/{escrowId}", h.GetEscrow)
		r.Post("/{escrowId}/hold", h.HoldPayment)
		r.Post("/{escrowId}/release", h.ReleasePayment)
		r.Post("/{escrowId}/refund", h.RefundPayment)
		r.Post("/{escrowId}/request-approval", h.RequestApproval)
		r.Post("/{escrowId}/approve", h.ApproveCompletion)
		r.Post("/{escrowId}/reject", h.RejectCompletion)
		r.Get("/{escrowId}/approval-history", h.GetApprovalHistory)
	})

	router.Route("/jobs/{jobId}", func(r chi.Router) {
		r.Get("/escrows", h.ListJobEscrows)
		r.Get("/payment-verification", h.VerifyJobPayment)
		r.Get("/completion-gate", h.GetCompletionGate)
		r.Post("/payment-method", h.RecordPaymentMethod)
	})

	router.Get("/users/{userId}/payments", h.GetUserPaymentHistory)

	router.Route("/contractors/{contractorId}", func(r chi.Router) {
		r.Get("/trust-score", h.GetTrustScore)
		r.Get("/hold-period", h.GetHoldPeriod)
		r.Post("/payout-account", h.SetupPayoutAccount)
		r.Get("/payout-account", h.GetPayoutAccountStatus)
	})

	router.Get("/fees/quote", h.QuoteFees)

	return router
}

// respondJSON writes a JSON response body with the given status.
func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		http.Error(w, "Failed to write response", http.StatusInternalServerError)
	}
}

// respondError maps domain errors onto HTTP statuses. Not-found and
// unauthorized answers are deliberately generic; conflict and validation
// answers carry the specific problem so callers can act on it.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, storage.ErrUnauthorized):
		http.Error(w, "Not authorized for this action", http.StatusForbidden)
	case errors.Is(err, storage.ErrNotFound):
		http.Error(w, "Not found", http.StatusNotFound)
	case errors.Is(err, storage.ErrNotReleasable),
		errors.Is(err, storage.ErrNotRefundable),
		errors.Is(err, storage.ErrStatusConflict),
		errors.Is(err, storage.ErrAlreadyDecided),
		errors.Is(err, storage.ErrPaymentIntentMismatch),
		errors.Is(err, storage.ErrMissingPaymentIntent):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, transfer.ErrTransferFailed):
		http.Error(w, "Payment transfer failed, please try again or contact support", http.StatusBadGateway)
	default:
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// decodeBody parses a JSON request body into dst.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}
