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

func TestMarkAwaitingApproval(t *testing.T) {
	escrowID := uuid.New().String()
	deadline := time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)
	photos := []string{"https://cdn.example.com/p/1.jpg", "https://cdn.example.com/p/2.jpg"}

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
			Status:              models.EscrowAwaitingApproval,
			CompletionPhotoUrls: photos,
			AutoApprovalDate:    &deadline,
		}
		updatedAV, _ := attributevalue.MarshalMap(updated)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: updatedAV}, nil).Once()

		result, err := store.MarkAwaitingApproval(context.Background(), escrowID, "contractor1", photos, deadline)

		assert.NoError(t, err)
		assert.Equal(t, models.EscrowAwaitingApproval, result.Status)
		assert.Equal(t, photos, result.CompletionPhotoUrls)

		update := captured.TransactItems[0].Update
		assert.Equal(t, "#status = :held", *update.ConditionExpression)
		assert.Contains(t, *update.UpdateExpression, "auto_approval_date")
		mockClient.AssertExpectations(t)
	})

	t.Run("Not Held", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: Tables{Escrows: "escrow_transactions", StatusLog: "escrow_status_log"}}

		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, &types.TransactionCanceledException{}).Once()

		_, err := store.MarkAwaitingApproval(context.Background(), escrowID, "contractor1", photos, deadline)

		assert.ErrorIs(t, err, storage.ErrStatusConflict)
		mockClient.AssertExpectations(t)
	})
}
