package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/tradecrews/escrow-payments/pkg/payout"
)

// TrustScoreResponse summarizes a contractor's standing for API consumers.
type TrustScoreResponse struct {
	ContractorId string  `json:"contractor_id"`
	TrustScore   float64 `json:"trust_score"`
	Trusted      bool    `json:"trusted"`
}

// HoldPeriodResponse reports how long this contractor's funds are held.
type HoldPeriodResponse struct {
	ContractorId   string `json:"contractor_id"`
	HoldPeriodDays int    `json:"hold_period_days"`
}

// GetTrustScore recomputes and returns a contractor's trust score.
func (h *ApiHandler) GetTrustScore(w http.ResponseWriter, r *http.Request) {
	contractorID := chi.URLParam(r, "contractorId")

	score, err := h.Trust.CalculateTrustScore(r.Context(), contractorID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, TrustScoreResponse{
		ContractorId: contractorID,
		TrustScore:   score,
		Trusted:      h.Trust.IsTrustedContractor(r.Context(), contractorID),
	})
}

// GetHoldPeriod returns the contractor's trust-tier hold period.
func (h *ApiHandler) GetHoldPeriod(w http.ResponseWriter, r *http.Request) {
	contractorID := chi.URLParam(r, "contractorId")

	respondJSON(w, http.StatusOK, HoldPeriodResponse{
		ContractorId:   contractorID,
		HoldPeriodDays: h.Trust.HoldPeriodDays(r.Context(), contractorID),
	})
}

// SetupPayoutAccount starts (or resumes) payout onboarding for a contractor.
func (h *ApiHandler) SetupPayoutAccount(w http.ResponseWriter, r *http.Request) {
	link, err := h.Payouts.SetupContractorPayout(r.Context(), chi.URLParam(r, "contractorId"))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, link)
}

// GetPayoutAccountStatus reports the contractor's payout-account state along
// with their payout schedule.
func (h *ApiHandler) GetPayoutAccountStatus(w http.ResponseWriter, r *http.Request) {
	contractorID := chi.URLParam(r, "contractorId")

	status, err := h.Payouts.GetContractorPayoutStatus(r.Context(), contractorID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, struct {
		Account  any             `json:"account"`
		Schedule payout.Schedule `json:"schedule"`
	}{
		Account:  status,
		Schedule: h.Payouts.PayoutSchedule(r.Context(), contractorID),
	})
}

// QuoteFees returns the deterministic fee split for an amount.
func (h *ApiHandler) QuoteFees(w http.ResponseWriter, r *http.Request) {
	amountCents, err := strconv.ParseInt(r.URL.Query().Get("amount_cents"), 10, 64)
	if err != nil {
		http.Error(w, "amount_cents must be an integer", http.StatusBadRequest)
		return
	}

	breakdown, err := payout.CalculateFees(amountCents)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, breakdown)
}
