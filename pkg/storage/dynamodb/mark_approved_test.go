package dynamodb

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tradecrews/escrow-payments/pkg/models"
	"github.com/tradecrews/escrow-payments/pkg/storage"
	"github.com/tradecrews/escrow-payments/pkg/storage/dynamodb/mocks"
)

func TestMarkApproved(t *testing.T) {
	escrowID := uuid.New().String()
	approvedAt := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	coolingOffEndsAt := approvedAt.Add(48 * time.Hour)

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: Tables{Escrows: "escrow_transactions", StatusLog: "escrow_status_log"}}

		var captured *dynamodb.TransactWriteItemsInput
		mockClient.On("TransactWriteItems", mock.Anything, mock.AnythingOfType("*dynamodb.TransactWriteItemsInput")).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).(*dynamodb.TransactWriteItemsInput)
			}).
			Return(&dynamodb.TransactWriteItemsOutput{}, nil).Once()

		updated := &models.EscrowTransaction{
			Id:                  escrowID,
			Status:              models.EscrowCoolingOff,
			HomeownerApproval:   true,
			HomeownerApprovalAt: &approvedAt,
			CoolingOffEndsAt:    &coolingOffEndsAt,
		}
		updatedAV, _ := attributevalue.MarshalMap(updated)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: updatedAV}, nil).Once()

		result, err := store.MarkApproved(context.Background(), escrowID, "homeowner1", approvedAt, coolingOffEndsAt)

		assert.NoError(t, err)
		assert.Equal(t, models.EscrowCoolingOff, result.Status)
		assert.True(t, result.HomeownerApproval)

		update := captured.TransactItems[0].Update
		assert.Equal(t, "#status = :awaiting", *update.ConditionExpression)
		assert.Contains(t, *update.UpdateExpression, "cooling_off_ends_at")
		mockClient.AssertExpectations(t)
	})

	t.Run("Already Decided", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: Tables{Escrows: "escrow_transactions", StatusLog: "escrow_status_log"}}

		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, &types.TransactionCanceledException{}).Once()

		_, err := store.MarkApproved(context.Background(), escrowID, "homeowner1", approvedAt, coolingOffEndsAt)

		assert.ErrorIs(t, err, storage.ErrStatusConflict)
		mockClient.AssertExpectations(t)
	})
}

func TestMarkRejected(t *testing.T) {
	escrowID := uuid.New().String()

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: Tables{Escrows: "escrow_transactions", StatusLog: "escrow_status_log"}}

		var captured *dynamodb.TransactWriteItemsInput
		mockClient.On("TransactWriteItems", mock.Anything, mock.AnythingOfType("*dynamodb.TransactWriteItemsInput")).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).(*dynamodb.TransactWriteItemsInput)
			}).
			Return(&dynamodb.TransactWriteItemsOutput{}, nil).Once()

		reason := "tiles cracked within a day"
		hold := models.AdminHoldPendingReview
		updated := &models.EscrowTransaction{
			Id:                   escrowID,
			Status:               models.EscrowAdminReview,
			ReleaseBlockedReason: aws.String(reason),
			AdminHoldStatus:      &hold,
		}
		updatedAV, _ := attributevalue.MarshalMap(updated)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: updatedAV}, nil).Once()

		result, err := store.MarkRejected(context.Background(), escrowID, "homeowner1", reason)

		assert.NoError(t, err)
		assert.Equal(t, models.EscrowAdminReview, result.Status)
		assert.Equal(t, reason, *result.ReleaseBlockedReason)

		update := captured.TransactItems[0].Update
		assert.Contains(t, *update.UpdateExpression, "admin_hold_status")
		mockClient.AssertExpectations(t)
	})

	t.Run("Already Decided", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: Tables{Escrows: "escrow_transactions", StatusLog: "escrow_status_log"}}

		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, &types.TransactionCanceledException{}).Once()

		_, err := store.MarkRejected(context.Background(), escrowID, "homeowner1", "late")

		assert.ErrorIs(t, err, storage.ErrStatusConflict)
		mockClient.AssertExpectations(t)
	})
}
