package trust

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/tradecrews/escrow-payments/pkg/models"
	"github.com/tradecrews/escrow-payments/pkg/storage"
)

// Tier thresholds. A contractor clears into the expedited tier only when both
// the volume and the score bars are met; job count dominates.
const (
	TrustedMinJobs  = 5
	TrustedMinScore = 0.7

	TrustedHoldDays  = 3
	StandardHoldDays = 14

	// NeutralScore stands in whenever the inputs cannot be read. It sits
	// below TrustedMinScore so an unknown contractor is never expedited.
	NeutralScore = 0.5
)

// Component weights of the score. They sum to 1.0 so the clamp only matters
// against floating-point drift.
const (
	completionWeight = 0.4
	disputeWeight    = 0.3
	ratingWeight     = 0.2
	tenureWeight     = 0.1

	neutralRatingComponent = 0.1
	tenureFullDays         = 365.0
)

// scoreMaxAge bounds how stale a persisted score may be before a read
// recomputes it. The score is a materialized view, never a source of truth.
const scoreMaxAge = 24 * time.Hour

// Store is the data this service reads and the score rows it writes.
type Store interface {
	storage.JobReader
	storage.ReviewReader
	storage.DisputeReader
	storage.UserReader
	storage.TrustScoreStore
	storage.EscrowReader
}

// Service derives contractor trust scores and the escrow hold periods that
// hang off them. Scoring is advisory: every public method degrades to the
// conservative default instead of failing the payment flow.
type Service struct {
	Store  Store
	Logger *slog.Logger
}

func NewService(store Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{Store: store, Logger: logger}
}

// CalculateTrustScore recomputes a contractor's score from their job history
// and upserts the result. Unreadable inputs yield the neutral default with a
// nil error; only a failed upsert of a computed score is surfaced.
func (s *Service) CalculateTrustScore(ctx context.Context, contractorID string) (float64, error) {
	record, err := s.computeRecord(ctx, contractorID)
	if err != nil {
		s.Logger.Warn("trust score inputs unavailable, using neutral default",
			"contractor_id", contractorID, "error", err)
		return NeutralScore, nil
	}

	if err := s.Store.PutTrustScore(ctx, record); err != nil {
		return 0, fmt.Errorf("failed to persist trust score: %w", err)
	}

	return record.TrustScore, nil
}

// HoldPeriodDays returns how long this contractor's released funds are held:
// 3 days for trusted contractors, 14 otherwise. Any failure falls back to the
// standard period so an error can never under-protect the homeowner.
func (s *Service) HoldPeriodDays(ctx context.Context, contractorID string) int {
	record, err := s.loadOrCalculate(ctx, contractorID)
	if err != nil {
		s.Logger.Warn("trust score unavailable, using standard hold period",
			"contractor_id", contractorID, "error", err)
		return StandardHoldDays
	}

	if record.SuccessfulJobsCount >= TrustedMinJobs && record.TrustScore >= TrustedMinScore {
		return TrustedHoldDays
	}
	return StandardHoldDays
}

// IsTrustedContractor reports whether the contractor qualifies for the
// expedited tier. False on any error.
func (s *Service) IsTrustedContractor(ctx context.Context, contractorID string) bool {
	return s.HoldPeriodDays(ctx, contractorID) == TrustedHoldDays
}

// GraduatedReleaseDate returns base plus the hold period of the escrow's
// payee. If the escrow cannot be read, the standard period applies.
func (s *Service) GraduatedReleaseDate(ctx context.Context, escrowID string, base time.Time) time.Time {
	esc, err := s.Store.GetEscrowTransaction(ctx, escrowID)
	if err != nil {
		s.Logger.Warn("escrow lookup failed, using standard hold period",
			"escrow_transaction_id", escrowID, "error", err)
		return base.AddDate(0, 0, StandardHoldDays)
	}
	return base.AddDate(0, 0, s.HoldPeriodDays(ctx, esc.PayeeId))
}

// loadOrCalculate serves the stored score, recomputing when it is missing or
// stale. A stale row beats a neutral default, so recompute failures fall back
// to whatever was stored.
func (s *Service) loadOrCalculate(ctx context.Context, contractorID string) (*models.TrustScoreRecord, error) {
	stored, err := s.Store.GetTrustScore(ctx, contractorID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	if stored != nil && time.Since(stored.LastUpdated) <= scoreMaxAge {
		return stored, nil
	}

	fresh, cerr := s.computeRecord(ctx, contractorID)
	if cerr != nil {
		if stored != nil {
			s.Logger.Warn("trust score recompute failed, serving stale score",
				"contractor_id", contractorID, "error", cerr)
			return stored, nil
		}
		return nil, cerr
	}

	if perr := s.Store.PutTrustScore(ctx, fresh); perr != nil {
		s.Logger.Warn("failed to persist recomputed trust score",
			"contractor_id", contractorID, "error", perr)
	}
	return fresh, nil
}

// computeRecord gathers the contractor's history and derives the weighted
// score. Same inputs always yield the same score.
func (s *Service) computeRecord(ctx context.Context, contractorID string) (*models.TrustScoreRecord, error) {
	user, err := s.Store.GetUser(ctx, contractorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load contractor: %w", err)
	}

	jobs, err := s.Store.ListContractorJobs(ctx, contractorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load contractor jobs: %w", err)
	}

	reviews, err := s.Store.ListContractorReviews(ctx, contractorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load contractor reviews: %w", err)
	}

	disputeCount, err := s.Store.CountContractorDisputes(ctx, contractorID)
	if err != nil {
		return nil, fmt.Errorf("failed to count contractor disputes: %w", err)
	}

	totalJobs := len(jobs)
	completedJobs := 0
	for _, job := range jobs {
		if job.Status == models.JobCompleted {
			completedJobs++
		}
	}

	completion := 0.0
	disputeRate := 0.0
	if totalJobs > 0 {
		completion = float64(completedJobs) / float64(totalJobs)
		disputeRate = float64(disputeCount) / float64(totalJobs)
	}

	ratingComponent := neutralRatingComponent
	var averageRating *float64
	if len(reviews) > 0 {
		sum := 0.0
		for _, review := range reviews {
			sum += review.Rating
		}
		avg := sum / float64(len(reviews))
		averageRating = &avg
		ratingComponent = (avg / 5.0) * ratingWeight
	}

	onPlatformDays := int(time.Since(user.CreatedAt).Hours() / 24)
	if onPlatformDays < 0 {
		onPlatformDays = 0
	}

	score := completion*completionWeight +
		(disputeWeight - math.Min(disputeRate*disputeWeight, disputeWeight)) +
		ratingComponent +
		math.Min(float64(onPlatformDays)/tenureFullDays, 1.0)*tenureWeight

	score = math.Max(0, math.Min(1, score))

	return &models.TrustScoreRecord{
		ContractorId:        contractorID,
		TrustScore:          score,
		SuccessfulJobsCount: completedJobs,
		TotalJobsCount:      totalJobs,
		DisputeCount:        disputeCount,
		AverageRating:       averageRating,
		OnPlatformDays:      onPlatformDays,
		LastUpdated:         time.Now(),
	}, nil
}
