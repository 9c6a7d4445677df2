package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/tradecrews/escrow-payments/pkg/models"
	"github.com/tradecrews/escrow-payments/pkg/storage"
)

// GetEscrowTransaction retrieves an escrow transaction from DynamoDB by its ID.
func (s *Store) GetEscrowTransaction(ctx context.Context, escrowID string) (*models.EscrowTransaction, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": escrowID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal escrow ID: %w", err)
	}

	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.Tables.Escrows),
		Key:       key,
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get escrow transaction from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("escrow transaction %s: %w", escrowID, storage.ErrNotFound)
	}

	var esc models.EscrowTransaction
	if err := attributevalue.UnmarshalMap(result.Item, &esc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal escrow transaction: %w", err)
	}

	return &esc, nil
}
