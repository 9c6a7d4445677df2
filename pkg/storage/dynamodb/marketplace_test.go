package dynamodb

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tradecrews/escrow-payments/pkg/models"
	"github.com/tradecrews/escrow-payments/pkg/storage/dynamodb/mocks"
)

func TestCountOpenJobDisputes(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: Tables{Disputes: "disputes"}}

		var captured *dynamodb.QueryInput
		mockClient.On("Query", mock.Anything, mock.AnythingOfType("*dynamodb.QueryInput")).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).(*dynamodb.QueryInput)
			}).
			Return(&dynamodb.QueryOutput{Count: 2}, nil).Once()

		count, err := store.CountOpenJobDisputes(context.Background(), "job1")

		assert.NoError(t, err)
		assert.Equal(t, 2, count)
		assert.Equal(t, types.SelectCount, captured.Select)
		assert.Equal(t, string(models.DisputeOpen), captured.ExpressionAttributeValues[":open"].(*types.AttributeValueMemberS).Value)
		mockClient.AssertExpectations(t)
	})
}

func TestCountContractorDisputes(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: Tables{Disputes: "disputes"}}

		mockClient.On("Query", mock.Anything, mock.Anything).Return(&dynamodb.QueryOutput{Count: 3}, nil).Once()

		count, err := store.CountContractorDisputes(context.Background(), "contractor1")

		assert.NoError(t, err)
		assert.Equal(t, 3, count)
		mockClient.AssertExpectations(t)
	})
}
