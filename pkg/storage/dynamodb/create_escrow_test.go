package dynamodb

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tradecrews/escrow-payments/pkg/models"
	"github.com/tradecrews/escrow-payments/pkg/storage/dynamodb/mocks"
)

func TestCreateEscrowTransaction(t *testing.T) {
	newEscrow := func() *models.EscrowTransaction {
		return &models.EscrowTransaction{JobId: "job1", PayerId: "homeowner1", PayeeId: "contractor1", AmountCents: 25000}
	}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: Tables{Escrows: "escrow_transactions", StatusLog: "escrow_status_log"}}

		var captured *dynamodb.TransactWriteItemsInput
		mockClient.On("TransactWriteItems", mock.Anything, mock.AnythingOfType("*dynamodb.TransactWriteItemsInput")).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).(*dynamodb.TransactWriteItemsInput)
			}).
			Return(&dynamodb.TransactWriteItemsOutput{}, nil).Once()

		esc := newEscrow()
		created, err := store.CreateEscrowTransaction(context.Background(), esc)

		assert.NoError(t, err)
		assert.NotEmpty(t, created.Id)
		assert.Equal(t, models.EscrowPending, created.Status)
		assert.False(t, created.CreatedAt.IsZero())

		// One put for the escrow row, one for the audit trail entry.
		assert.Len(t, captured.TransactItems, 2)
		assert.Equal(t, "escrow_transactions", *captured.TransactItems[0].Put.TableName)
		assert.Equal(t, "attribute_not_exists(id)", *captured.TransactItems[0].Put.ConditionExpression)
		assert.Equal(t, "escrow_status_log", *captured.TransactItems[1].Put.TableName)
		mockClient.AssertExpectations(t)
	})

	t.Run("Transaction Fails", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: Tables{Escrows: "escrow_transactions", StatusLog: "escrow_status_log"}}

		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, errors.New("transaction failed"))

		_, err := store.CreateEscrowTransaction(context.Background(), newEscrow())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to execute escrow creation")
		mockClient.AssertExpectations(t)
	})
}
