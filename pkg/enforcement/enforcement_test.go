package enforcement

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tradecrews/escrow-payments/pkg/models"
	"github.com/tradecrews/escrow-payments/pkg/notify"
	notifymocks "github.com/tradecrews/escrow-payments/pkg/notify/mocks"
	"github.com/tradecrews/escrow-payments/pkg/storage"
	"github.com/tradecrews/escrow-payments/pkg/storage/mocks"
)

func TestVerifyJobPayment(t *testing.T) {
	jobID := "job-1"

	t.Run("Held Payment", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		service := NewService(mockStore, nil, nil)

		mockStore.On("LatestJobEscrowTransaction", mock.Anything, jobID).
			Return(&models.EscrowTransaction{Id: "escrow-1", AmountCents: 25000, Status: models.EscrowHeld}, nil).Once()

		result, err := service.VerifyJobPayment(context.Background(), jobID)

		assert.NoError(t, err)
		assert.True(t, result.HasPlatformPayment)
		assert.Equal(t, "escrow-1", result.EscrowTransactionId)
		assert.Equal(t, int64(25000), result.AmountCents)
		assert.Equal(t, models.EscrowHeld, result.Status)
		mockStore.AssertExpectations(t)
	})

	t.Run("Released Payment", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		service := NewService(mockStore, nil, nil)

		mockStore.On("LatestJobEscrowTransaction", mock.Anything, jobID).
			Return(&models.EscrowTransaction{Id: "escrow-1", AmountCents: 25000, Status: models.EscrowReleased}, nil).Once()

		result, err := service.VerifyJobPayment(context.Background(), jobID)

		assert.NoError(t, err)
		assert.True(t, result.HasPlatformPayment)
	})

	t.Run("No Payment", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		service := NewService(mockStore, nil, nil)

		mockStore.On("LatestJobEscrowTransaction", mock.Anything, jobID).
			Return(nil, storage.ErrNotFound).Once()

		result, err := service.VerifyJobPayment(context.Background(), jobID)

		assert.NoError(t, err)
		assert.False(t, result.HasPlatformPayment)
		assert.Contains(t, result.Message, "no platform payment")
	})

	t.Run("Lookup Failure Is Not Fatal", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		service := NewService(mockStore, nil, nil)

		mockStore.On("LatestJobEscrowTransaction", mock.Anything, jobID).
			Return(nil, errors.New("dynamo down")).Once()

		result, err := service.VerifyJobPayment(context.Background(), jobID)

		assert.NoError(t, err)
		assert.False(t, result.HasPlatformPayment)
		assert.Contains(t, result.Message, "contact support")
	})

	t.Run("Refunded Payment Does Not Count", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		service := NewService(mockStore, nil, nil)

		mockStore.On("LatestJobEscrowTransaction", mock.Anything, jobID).
			Return(&models.EscrowTransaction{Id: "escrow-1", Status: models.EscrowRefunded}, nil).Once()

		result, err := service.VerifyJobPayment(context.Background(), jobID)

		assert.NoError(t, err)
		assert.False(t, result.HasPlatformPayment)
		assert.Contains(t, result.Message, "refunded")
	})

	t.Run("Pending Payment Does Not Count", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		service := NewService(mockStore, nil, nil)

		mockStore.On("LatestJobEscrowTransaction", mock.Anything, jobID).
			Return(&models.EscrowTransaction{Id: "escrow-1", Status: models.EscrowPending}, nil).Once()

		result, err := service.VerifyJobPayment(context.Background(), jobID)

		assert.NoError(t, err)
		assert.False(t, result.HasPlatformPayment)
		assert.Contains(t, result.Message, "not been captured")
	})
}

func TestCanCompleteJob(t *testing.T) {
	jobID := "job-1"

	t.Run("Held Payment Allows Completion", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		service := NewService(mockStore, nil, nil)

		mockStore.On("LatestJobEscrowTransaction", mock.Anything, jobID).
			Return(&models.EscrowTransaction{Id: "escrow-1", Status: models.EscrowHeld}, nil).Once()

		gate, err := service.CanCompleteJob(context.Background(), jobID)

		assert.NoError(t, err)
		assert.True(t, gate.Allowed)
		assert.Empty(t, gate.Reason)
	})

	t.Run("No Payment Disallows", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		service := NewService(mockStore, nil, nil)

		mockStore.On("LatestJobEscrowTransaction", mock.Anything, jobID).
			Return(nil, storage.ErrNotFound).Once()

		gate, err := service.CanCompleteJob(context.Background(), jobID)

		assert.NoError(t, err)
		assert.False(t, gate.Allowed)
		assert.NotEmpty(t, gate.Reason)
	})

	t.Run("Lookup Failure Disallows", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		service := NewService(mockStore, nil, nil)

		mockStore.On("LatestJobEscrowTransaction", mock.Anything, jobID).
			Return(nil, errors.New("dynamo down")).Once()

		gate, err := service.CanCompleteJob(context.Background(), jobID)

		assert.NoError(t, err)
		assert.False(t, gate.Allowed)
	})
}

func TestRecordPaymentMethod(t *testing.T) {
	jobID := "job-1"

	t.Run("Card Payment", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		mockNotifier := new(notifymocks.Dispatcher)
		service := NewService(mockStore, mockNotifier, nil)

		mockStore.On("RecordJobPaymentMethod", mock.Anything, jobID, "card", "").Return(nil).Once()

		ok := service.RecordPaymentMethod(context.Background(), jobID, "card", "")

		assert.True(t, ok)
		mockNotifier.AssertNotCalled(t, "Enqueue", mock.Anything, mock.Anything)
		mockStore.AssertExpectations(t)
	})

	t.Run("Cash Payment Raises Compliance Signal", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		mockNotifier := new(notifymocks.Dispatcher)
		service := NewService(mockStore, mockNotifier, nil)

		mockStore.On("RecordJobPaymentMethod", mock.Anything, jobID, models.PaymentMethodCash, "paid on site").Return(nil).Once()

		var sent notify.Notification
		mockNotifier.On("Enqueue", mock.Anything, mock.AnythingOfType("notify.Notification")).
			Run(func(args mock.Arguments) {
				sent = args.Get(1).(notify.Notification)
			}).
			Return(nil).Once()

		ok := service.RecordPaymentMethod(context.Background(), jobID, models.PaymentMethodCash, "paid on site")

		assert.True(t, ok)
		assert.Equal(t, notify.TypeCashPaymentRecorded, sent.Type)
		assert.Equal(t, jobID, sent.Metadata["job_id"])
		mockStore.AssertExpectations(t)
		mockNotifier.AssertExpectations(t)
	})

	t.Run("Write Failure", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		service := NewService(mockStore, nil, nil)

		mockStore.On("RecordJobPaymentMethod", mock.Anything, jobID, "card", "").
			Return(errors.New("dynamo down")).Once()

		ok := service.RecordPaymentMethod(context.Background(), jobID, "card", "")

		assert.False(t, ok)
		mockStore.AssertExpectations(t)
	})
}
