package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/tradecrews/escrow-payments/pkg/models"
)

// CreateEscrowTransaction creates a new escrow transaction in the PENDING state
// and its first audit trail entry in a single atomic write.
func (s *Store) CreateEscrowTransaction(ctx context.Context, esc *models.EscrowTransaction) (*models.EscrowTransaction, error) {
	// 1. Complete the escrow object with server-side details.
	now := time.Now()
	esc.Id = uuid.New().String()
	esc.Status = models.EscrowPending
	esc.CreatedAt = now
	esc.UpdatedAt = now

	escAV, err := attributevalue.MarshalMap(esc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal escrow transaction: %w", err)
	}

	logItem, err := s.statusLogPut(esc.Id, "", models.EscrowPending, "api", "escrow created", now)
	if err != nil {
		return nil, err
	}

	// 2. Construct the TransactWriteItems input.
	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(s.Tables.Escrows),
					Item:                escAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
			logItem,
		},
	}

	// 3. Execute the transaction.
	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		return nil, fmt.Errorf("failed to execute escrow creation: %w", err)
	}

	return esc, nil
}
