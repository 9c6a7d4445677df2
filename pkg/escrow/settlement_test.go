package escrow

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tradecrews/escrow-payments/pkg/models"
	"github.com/tradecrews/escrow-payments/pkg/notify"
	notifymocks "github.com/tradecrews/escrow-payments/pkg/notify/mocks"
	"github.com/tradecrews/escrow-payments/pkg/storage"
	"github.com/tradecrews/escrow-payments/pkg/storage/mocks"
	"github.com/tradecrews/escrow-payments/pkg/transfer"
	transfermocks "github.com/tradecrews/escrow-payments/pkg/transfer/mocks"
)

func heldEscrow(id string) *models.EscrowTransaction {
	intent := "pi_123"
	return &models.EscrowTransaction{
		Id:              id,
		JobId:           "job-1",
		PayerId:         "homeowner-1",
		PayeeId:         "contractor-1",
		AmountCents:     10000,
		Status:          models.EscrowHeld,
		PaymentIntentId: &intent,
		CreatedAt:       time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestReleaseEscrowPayment(t *testing.T) {
	escrowID := "escrow-1"

	t.Run("Success", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		mockProvider := new(transfermocks.Provider)
		mockNotifier := new(notifymocks.Dispatcher)
		service := NewService(mockStore, mockProvider, stubTiers{days: 14}, mockNotifier, nil)

		prior := heldEscrow(escrowID)
		prior.Status = models.EscrowCoolingOff

		mockStore.On("BeginRelease", mock.Anything, escrowID).Return(prior, nil).Once()

		var sentReq transfer.ReleaseRequest
		mockProvider.On("Release", mock.Anything, mock.AnythingOfType("transfer.ReleaseRequest")).
			Run(func(args mock.Arguments) {
				sentReq = args.Get(1).(transfer.ReleaseRequest)
			}).
			Return(&transfer.Result{TransferId: "tr_1", Status: "paid"}, nil).Once()

		mockStore.On("CompleteRelease", mock.Anything, escrowID, mock.AnythingOfType("time.Time")).Return(nil).Once()

		released := heldEscrow(escrowID)
		released.Status = models.EscrowReleased
		mockStore.On("GetEscrowTransaction", mock.Anything, escrowID).Return(released, nil).Once()

		var sentNote notify.Notification
		mockNotifier.On("Enqueue", mock.Anything, mock.AnythingOfType("notify.Notification")).
			Run(func(args mock.Arguments) {
				sentNote = args.Get(1).(notify.Notification)
			}).
			Return(nil).Once()

		esc, err := service.ReleaseEscrowPayment(context.Background(), escrowID)

		assert.NoError(t, err)
		assert.Equal(t, models.EscrowReleased, esc.Status)
		assert.Equal(t, escrowID, sentReq.EscrowTransactionId)
		assert.Equal(t, "pi_123", sentReq.PaymentIntentId)
		assert.Equal(t, "contractor-1", sentReq.ContractorId)
		assert.Equal(t, int64(10000), sentReq.AmountCents)
		assert.Equal(t, notify.TypePaymentReleased, sentNote.Type)
		assert.Equal(t, "contractor-1", sentNote.UserId)
		mockStore.AssertExpectations(t)
		mockProvider.AssertExpectations(t)
	})

	t.Run("Provider Failure Reverts To Prior Status", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		mockProvider := new(transfermocks.Provider)
		service := NewService(mockStore, mockProvider, stubTiers{days: 14}, nil, nil)

		prior := heldEscrow(escrowID)
		prior.Status = models.EscrowCoolingOff

		mockStore.On("BeginRelease", mock.Anything, escrowID).Return(prior, nil).Once()
		mockProvider.On("Release", mock.Anything, mock.Anything).
			Return(nil, &transfer.APIError{StatusCode: http.StatusPaymentRequired, Message: "account not ready"}).Once()
		mockStore.On("AbortRelease", mock.Anything, escrowID, models.EscrowCoolingOff, mock.AnythingOfType("string")).
			Return(nil).Once()

		_, err := service.ReleaseEscrowPayment(context.Background(), escrowID)

		assert.ErrorIs(t, err, transfer.ErrTransferFailed)
		mockStore.AssertNotCalled(t, "CompleteRelease", mock.Anything, mock.Anything, mock.Anything)
		mockStore.AssertExpectations(t)
	})

	t.Run("Second Caller Loses The Lock", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		mockProvider := new(transfermocks.Provider)
		service := NewService(mockStore, mockProvider, stubTiers{days: 14}, nil, nil)

		mockStore.On("BeginRelease", mock.Anything, escrowID).Return(nil, storage.ErrNotReleasable).Once()
		released := heldEscrow(escrowID)
		released.Status = models.EscrowReleased
		mockStore.On("GetEscrowTransaction", mock.Anything, escrowID).Return(released, nil).Once()

		_, err := service.ReleaseEscrowPayment(context.Background(), escrowID)

		assert.ErrorIs(t, err, storage.ErrNotReleasable)
		mockProvider.AssertNotCalled(t, "Release", mock.Anything, mock.Anything)
	})

	t.Run("Unknown Escrow", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		mockProvider := new(transfermocks.Provider)
		service := NewService(mockStore, mockProvider, stubTiers{days: 14}, nil, nil)

		mockStore.On("BeginRelease", mock.Anything, escrowID).Return(nil, storage.ErrNotReleasable).Once()
		mockStore.On("GetEscrowTransaction", mock.Anything, escrowID).Return(nil, storage.ErrNotFound).Once()

		_, err := service.ReleaseEscrowPayment(context.Background(), escrowID)

		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("Missing Payment Intent", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		mockProvider := new(transfermocks.Provider)
		service := NewService(mockStore, mockProvider, stubTiers{days: 14}, nil, nil)

		prior := heldEscrow(escrowID)
		prior.PaymentIntentId = nil

		mockStore.On("BeginRelease", mock.Anything, escrowID).Return(prior, nil).Once()
		mockStore.On("AbortRelease", mock.Anything, escrowID, models.EscrowHeld, mock.AnythingOfType("string")).
			Return(nil).Once()

		_, err := service.ReleaseEscrowPayment(context.Background(), escrowID)

		assert.ErrorIs(t, err, storage.ErrMissingPaymentIntent)
		mockProvider.AssertNotCalled(t, "Release", mock.Anything, mock.Anything)
		mockStore.AssertExpectations(t)
	})

	t.Run("Commit Failure Does Not Revert", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		mockProvider := new(transfermocks.Provider)
		service := NewService(mockStore, mockProvider, stubTiers{days: 14}, nil, nil)

		prior := heldEscrow(escrowID)
		mockStore.On("BeginRelease", mock.Anything, escrowID).Return(prior, nil).Once()
		mockProvider.On("Release", mock.Anything, mock.Anything).
			Return(&transfer.Result{TransferId: "tr_1"}, nil).Once()
		mockStore.On("CompleteRelease", mock.Anything, escrowID, mock.AnythingOfType("time.Time")).
			Return(errors.New("dynamo down")).Once()

		_, err := service.ReleaseEscrowPayment(context.Background(), escrowID)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "was not marked released")
		mockStore.AssertNotCalled(t, "AbortRelease", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestRefundEscrowPayment(t *testing.T) {
	escrowID := "escrow-1"

	t.Run("Success From Admin Review Resolves The Hold", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		mockProvider := new(transfermocks.Provider)
		mockNotifier := new(notifymocks.Dispatcher)
		service := NewService(mockStore, mockProvider, stubTiers{days: 14}, mockNotifier, nil)

		prior := heldEscrow(escrowID)
		prior.Status = models.EscrowAdminReview
		hold := models.AdminHoldPendingReview
		prior.AdminHoldStatus = &hold

		mockStore.On("BeginRefund", mock.Anything, escrowID).Return(prior, nil).Once()

		var sentReq transfer.RefundRequest
		mockProvider.On("Refund", mock.Anything, mock.AnythingOfType("transfer.RefundRequest")).
			Run(func(args mock.Arguments) {
				sentReq = args.Get(1).(transfer.RefundRequest)
			}).
			Return(&transfer.Result{TransferId: "re_1", Status: "refunded"}, nil).Once()

		mockStore.On("CompleteRefund", mock.Anything, escrowID, "work rejected", mock.AnythingOfType("time.Time")).
			Return(nil).Once()
		mockStore.On("ResolveAdminHold", mock.Anything, escrowID).Return(nil).Once()

		refunded := heldEscrow(escrowID)
		refunded.Status = models.EscrowRefunded
		mockStore.On("GetEscrowTransaction", mock.Anything, escrowID).Return(refunded, nil).Once()

		var sentNote notify.Notification
		mockNotifier.On("Enqueue", mock.Anything, mock.AnythingOfType("notify.Notification")).
			Run(func(args mock.Arguments) {
				sentNote = args.Get(1).(notify.Notification)
			}).
			Return(nil).Once()

		esc, err := service.RefundEscrowPayment(context.Background(), escrowID, "work rejected")

		assert.NoError(t, err)
		assert.Equal(t, models.EscrowRefunded, esc.Status)
		assert.Equal(t, "pi_123", sentReq.PaymentIntentId)
		assert.Equal(t, "work rejected", sentReq.Reason)
		assert.Equal(t, notify.TypePaymentRefunded, sentNote.Type)
		assert.Equal(t, "homeowner-1", sentNote.UserId)
		mockStore.AssertExpectations(t)
	})

	t.Run("Held Refund Skips Admin Hold Resolution", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		mockProvider := new(transfermocks.Provider)
		service := NewService(mockStore, mockProvider, stubTiers{days: 14}, nil, nil)

		prior := heldEscrow(escrowID)
		mockStore.On("BeginRefund", mock.Anything, escrowID).Return(prior, nil).Once()
		mockProvider.On("Refund", mock.Anything, mock.Anything).
			Return(&transfer.Result{TransferId: "re_1"}, nil).Once()
		mockStore.On("CompleteRefund", mock.Anything, escrowID, "refund requested", mock.AnythingOfType("time.Time")).
			Return(nil).Once()
		mockStore.On("GetEscrowTransaction", mock.Anything, escrowID).Return(prior, nil).Once()

		_, err := service.RefundEscrowPayment(context.Background(), escrowID, "")

		assert.NoError(t, err)
		mockStore.AssertNotCalled(t, "ResolveAdminHold", mock.Anything, mock.Anything)
	})

	t.Run("Provider Failure Reverts To Prior Status", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		mockProvider := new(transfermocks.Provider)
		service := NewService(mockStore, mockProvider, stubTiers{days: 14}, nil, nil)

		prior := heldEscrow(escrowID)
		prior.Status = models.EscrowAwaitingApproval

		mockStore.On("BeginRefund", mock.Anything, escrowID).Return(prior, nil).Once()
		mockProvider.On("Refund", mock.Anything, mock.Anything).
			Return(nil, &transfer.APIError{StatusCode: http.StatusBadGateway, Message: "upstream down"}).Once()
		mockStore.On("AbortRefund", mock.Anything, escrowID, models.EscrowAwaitingApproval, mock.AnythingOfType("string")).
			Return(nil).Once()

		_, err := service.RefundEscrowPayment(context.Background(), escrowID, "homeowner dispute")

		assert.ErrorIs(t, err, transfer.ErrTransferFailed)
		mockStore.AssertNotCalled(t, "CompleteRefund", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		mockStore.AssertExpectations(t)
	})

	t.Run("Not Refundable", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		mockProvider := new(transfermocks.Provider)
		service := NewService(mockStore, mockProvider, stubTiers{days: 14}, nil, nil)

		mockStore.On("BeginRefund", mock.Anything, escrowID).Return(nil, storage.ErrNotRefundable).Once()
		released := heldEscrow(escrowID)
		released.Status = models.EscrowReleased
		mockStore.On("GetEscrowTransaction", mock.Anything, escrowID).Return(released, nil).Once()

		_, err := service.RefundEscrowPayment(context.Background(), escrowID, "too late")

		assert.ErrorIs(t, err, storage.ErrNotRefundable)
		mockProvider.AssertNotCalled(t, "Refund", mock.Anything, mock.Anything)
	})
}

func TestAutoReleaseByTier(t *testing.T) {
	jobID := "job-1"

	completedJob := &models.Job{Id: jobID, HomeownerId: "homeowner-1", ContractorId: "contractor-1", Status: models.JobCompleted}

	t.Run("Releases After Tier Deadline", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		mockProvider := new(transfermocks.Provider)
		service := NewService(mockStore, mockProvider, stubTiers{days: 14}, nil, nil)

		esc := heldEscrow("escrow-1")
		esc.CreatedAt = time.Now().AddDate(0, 0, -20)

		mockStore.On("LatestJobEscrowTransaction", mock.Anything, jobID).Return(esc, nil).Once()
		mockStore.On("GetJob", mock.Anything, jobID).Return(completedJob, nil).Once()
		mockStore.On("CountOpenJobDisputes", mock.Anything, jobID).Return(0, nil).Once()

		mockStore.On("BeginRelease", mock.Anything, "escrow-1").Return(esc, nil).Once()
		mockProvider.On("Release", mock.Anything, mock.Anything).
			Return(&transfer.Result{TransferId: "tr_1"}, nil).Once()
		mockStore.On("CompleteRelease", mock.Anything, "escrow-1", mock.AnythingOfType("time.Time")).Return(nil).Once()
		released := heldEscrow("escrow-1")
		released.Status = models.EscrowReleased
		mockStore.On("GetEscrowTransaction", mock.Anything, "escrow-1").Return(released, nil).Once()

		ok, err := service.AutoReleaseByTier(context.Background(), jobID)

		assert.NoError(t, err)
		assert.True(t, ok)
		mockStore.AssertExpectations(t)
		mockProvider.AssertExpectations(t)
	})

	t.Run("Deadline Not Reached", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		mockProvider := new(transfermocks.Provider)
		service := NewService(mockStore, mockProvider, stubTiers{days: 14}, nil, nil)

		esc := heldEscrow("escrow-1")
		esc.CreatedAt = time.Now().AddDate(0, 0, -2)

		mockStore.On("LatestJobEscrowTransaction", mock.Anything, jobID).Return(esc, nil).Once()
		mockStore.On("GetJob", mock.Anything, jobID).Return(completedJob, nil).Once()

		ok, err := service.AutoReleaseByTier(context.Background(), jobID)

		assert.NoError(t, err)
		assert.False(t, ok)
		mockStore.AssertNotCalled(t, "BeginRelease", mock.Anything, mock.Anything)
	})

	t.Run("Trusted Tier Releases Sooner", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		mockProvider := new(transfermocks.Provider)
		service := NewService(mockStore, mockProvider, stubTiers{days: 3}, nil, nil)

		esc := heldEscrow("escrow-1")
		esc.CreatedAt = time.Now().AddDate(0, 0, -5)

		mockStore.On("LatestJobEscrowTransaction", mock.Anything, jobID).Return(esc, nil).Once()
		mockStore.On("GetJob", mock.Anything, jobID).Return(completedJob, nil).Once()
		mockStore.On("CountOpenJobDisputes", mock.Anything, jobID).Return(0, nil).Once()
		mockStore.On("BeginRelease", mock.Anything, "escrow-1").Return(esc, nil).Once()
		mockProvider.On("Release", mock.Anything, mock.Anything).
			Return(&transfer.Result{TransferId: "tr_1"}, nil).Once()
		mockStore.On("CompleteRelease", mock.Anything, "escrow-1", mock.AnythingOfType("time.Time")).Return(nil).Once()
		mockStore.On("GetEscrowTransaction", mock.Anything, "escrow-1").Return(esc, nil).Once()

		ok, err := service.AutoReleaseByTier(context.Background(), jobID)

		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Job Not Completed", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		service := NewService(mockStore, nil, stubTiers{days: 14}, nil, nil)

		esc := heldEscrow("escrow-1")
		esc.CreatedAt = time.Now().AddDate(0, 0, -20)

		mockStore.On("LatestJobEscrowTransaction", mock.Anything, jobID).Return(esc, nil).Once()
		mockStore.On("GetJob", mock.Anything, jobID).
			Return(&models.Job{Id: jobID, Status: models.JobInProgress}, nil).Once()

		ok, err := service.AutoReleaseByTier(context.Background(), jobID)

		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Open Dispute Blocks Release", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		service := NewService(mockStore, nil, stubTiers{days: 14}, nil, nil)

		esc := heldEscrow("escrow-1")
		esc.CreatedAt = time.Now().AddDate(0, 0, -20)

		mockStore.On("LatestJobEscrowTransaction", mock.Anything, jobID).Return(esc, nil).Once()
		mockStore.On("GetJob", mock.Anything, jobID).Return(completedJob, nil).Once()
		mockStore.On("CountOpenJobDisputes", mock.Anything, jobID).Return(1, nil).Once()

		ok, err := service.AutoReleaseByTier(context.Background(), jobID)

		assert.NoError(t, err)
		assert.False(t, ok)
		mockStore.AssertNotCalled(t, "BeginRelease", mock.Anything, mock.Anything)
	})

	t.Run("No Escrow For Job", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		service := NewService(mockStore, nil, stubTiers{days: 14}, nil, nil)

		mockStore.On("LatestJobEscrowTransaction", mock.Anything, jobID).
			Return(nil, storage.ErrNotFound).Once()

		ok, err := service.AutoReleaseByTier(context.Background(), jobID)

		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Escrow Not Held", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		service := NewService(mockStore, nil, stubTiers{days: 14}, nil, nil)

		esc := heldEscrow("escrow-1")
		esc.Status = models.EscrowAwaitingApproval

		mockStore.On("LatestJobEscrowTransaction", mock.Anything, jobID).Return(esc, nil).Once()

		ok, err := service.AutoReleaseByTier(context.Background(), jobID)

		assert.NoError(t, err)
		assert.False(t, ok)
		mockStore.AssertNotCalled(t, "GetJob", mock.Anything, mock.Anything)
	})

	t.Run("Lost Race Is Not An Error", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		mockProvider := new(transfermocks.Provider)
		service := NewService(mockStore, mockProvider, stubTiers{days: 14}, nil, nil)

		esc := heldEscrow("escrow-1")
		esc.CreatedAt = time.Now().AddDate(0, 0, -20)

		mockStore.On("LatestJobEscrowTransaction", mock.Anything, jobID).Return(esc, nil).Once()
		mockStore.On("GetJob", mock.Anything, jobID).Return(completedJob, nil).Once()
		mockStore.On("CountOpenJobDisputes", mock.Anything, jobID).Return(0, nil).Once()
		mockStore.On("BeginRelease", mock.Anything, "escrow-1").Return(nil, storage.ErrNotReleasable).Once()
		released := heldEscrow("escrow-1")
		released.Status = models.EscrowReleased
		mockStore.On("GetEscrowTransaction", mock.Anything, "escrow-1").Return(released, nil).Once()

		ok, err := service.AutoReleaseByTier(context.Background(), jobID)

		assert.NoError(t, err)
		assert.False(t, ok)
		mockProvider.AssertNotCalled(t, "Release", mock.Anything, mock.Anything)
	})
}
