package dynamodb

import (
	"context"
	"testing"
	"time"

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

func TestBeginRefund(t *testing.T) {
	escrowID := uuid.New().String()

	t.Run("Success From Admin Review", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: Tables{Escrows: "escrow_transactions", StatusLog: "escrow_status_log"}}

		adminReviewEscrow := &models.EscrowTransaction{Id: escrowID, JobId: "job1", PayerId: "homeowner1", PayeeId: "contractor1", AmountCents: 10000, Status: models.EscrowAdminReview}
		priorAV, _ := attributevalue.MarshalMap(adminReviewEscrow)

		mockClient.On("UpdateItem", mock.Anything, mock.AnythingOfType("*dynamodb.UpdateItemInput")).
			Return(&dynamodb.UpdateItemOutput{Attributes: priorAV}, nil).Once()
		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(&dynamodb.PutItemOutput{}, nil).Once()

		prior, err := store.BeginRefund(context.Background(), escrowID)

		assert.NoError(t, err)
		assert.Equal(t, models.EscrowAdminReview, prior.Status)
		mockClient.AssertExpectations(t)
	})

	t.Run("Lock Conflict", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: Tables{Escrows: "escrow_transactions", StatusLog: "escrow_status_log"}}

		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{}).Once()

		_, err := store.BeginRefund(context.Background(), escrowID)

		assert.ErrorIs(t, err, storage.ErrNotRefundable)
		mockClient.AssertExpectations(t)
	})
}

func TestCompleteRefund(t *testing.T) {
	escrowID := uuid.New().String()
	refundedAt := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: Tables{Escrows: "escrow_transactions", StatusLog: "escrow_status_log"}}

		var captured *dynamodb.TransactWriteItemsInput
		mockClient.On("TransactWriteItems", mock.Anything, mock.AnythingOfType("*dynamodb.TransactWriteItemsInput")).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).(*dynamodb.TransactWriteItemsInput)
			}).
			Return(&dynamodb.TransactWriteItemsOutput{}, nil).Once()

		err := store.CompleteRefund(context.Background(), escrowID, "work rejected after review", refundedAt)

		assert.NoError(t, err)
		assert.Len(t, captured.TransactItems, 2)
		update := captured.TransactItems[0].Update
		assert.Equal(t, "#status = :refunding", *update.ConditionExpression)
		assert.Contains(t, *update.UpdateExpression, "refund_reason")
		mockClient.AssertExpectations(t)
	})

	t.Run("Already Committed", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: Tables{Escrows: "escrow_transactions", StatusLog: "escrow_status_log"}}

		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, &types.TransactionCanceledException{}).Once()

		err := store.CompleteRefund(context.Background(), escrowID, "duplicate", refundedAt)

		assert.ErrorIs(t, err, storage.ErrStatusConflict)
		mockClient.AssertExpectations(t)
	})
}

func TestAbortRefund(t *testing.T) {
	escrowID := uuid.New().String()

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: Tables{Escrows: "escrow_transactions", StatusLog: "escrow_status_log"}}

		mockClient.On("TransactWriteItems", mock.Anything, mock.AnythingOfType("*dynamodb.TransactWriteItemsInput")).
			Return(&dynamodb.TransactWriteItemsOutput{}, nil).Once()

		err := store.AbortRefund(context.Background(), escrowID, models.EscrowHeld, "refund declined")

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})
}

func TestResolveAdminHold(t *testing.T) {
	escrowID := uuid.New().String()

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: Tables{Escrows: "escrow_transactions"}}

		mockClient.On("UpdateItem", mock.Anything, mock.AnythingOfType("*dynamodb.UpdateItemInput")).
			Return(&dynamodb.UpdateItemOutput{}, nil).Once()

		err := store.ResolveAdminHold(context.Background(), escrowID)

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Already Resolved", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: Tables{Escrows: "escrow_transactions"}}

		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{}).Once()

		err := store.ResolveAdminHold(context.Background(), escrowID)

		assert.ErrorIs(t, err, storage.ErrStatusConflict)
		mockClient.AssertExpectations(t)
	})
}
