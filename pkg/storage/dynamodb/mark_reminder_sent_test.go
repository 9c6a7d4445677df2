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

func TestMarkReminderSent(t *testing.T) {
	escrowID := uuid.New().String()
	sentAt := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: Tables{Escrows: "escrow_transactions"}}

		var captured *dynamodb.UpdateItemInput
		mockClient.On("UpdateItem", mock.Anything, mock.AnythingOfType("*dynamodb.UpdateItemInput")).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).(*dynamodb.UpdateItemInput)
			}).
			Return(&dynamodb.UpdateItemOutput{}, nil).Once()

		err := store.MarkReminderSent(context.Background(), escrowID, false, sentAt)

		assert.NoError(t, err)
		assert.Contains(t, *captured.ConditionExpression, "attribute_not_exists(reminder_sent_at)")
		mockClient.AssertExpectations(t)
	})

	t.Run("Final Reminder Uses Its Own Marker", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: Tables{Escrows: "escrow_transactions"}}

		var captured *dynamodb.UpdateItemInput
		mockClient.On("UpdateItem", mock.Anything, mock.AnythingOfType("*dynamodb.UpdateItemInput")).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).(*dynamodb.UpdateItemInput)
			}).
			Return(&dynamodb.UpdateItemOutput{}, nil).Once()

		err := store.MarkReminderSent(context.Background(), escrowID, true, sentAt)

		assert.NoError(t, err)
		assert.Contains(t, *captured.ConditionExpression, "attribute_not_exists(final_reminder_sent_at)")
		mockClient.AssertExpectations(t)
	})

	t.Run("Already Sent", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: Tables{Escrows: "escrow_transactions"}}

		esc := &models.EscrowTransaction{Id: escrowID, Status: models.EscrowAwaitingApproval, ReminderSentAt: &sentAt}
		escAV, _ := attributevalue.MarshalMap(esc)

		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{}).Once()
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: escAV}, nil).Once()

		err := store.MarkReminderSent(context.Background(), escrowID, false, sentAt)

		assert.ErrorIs(t, err, storage.ErrReminderAlreadySent)
		mockClient.AssertExpectations(t)
	})

	t.Run("Escrow Moved On", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: Tables{Escrows: "escrow_transactions"}}

		esc := &models.EscrowTransaction{Id: escrowID, Status: models.EscrowCoolingOff}
		escAV, _ := attributevalue.MarshalMap(esc)

		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{}).Once()
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: escAV}, nil).Once()

		err := store.MarkReminderSent(context.Background(), escrowID, false, sentAt)

		assert.ErrorIs(t, err, storage.ErrStatusConflict)
		mockClient.AssertExpectations(t)
	})
}
