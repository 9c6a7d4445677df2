package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/tradecrews/escrow-payments/pkg/models"
	"github.com/tradecrews/escrow-payments/pkg/storage"
)

const (
	jobEscrowsGSI   = "job_id-created_at-index"
	payerEscrowsGSI = "payer_id-created_at-index"
	payeeEscrowsGSI = "payee_id-created_at-index"
)

// queryEscrows runs a single-attribute key condition against one of the escrow
// table's GSIs, newest first.
func (s *Store) queryEscrows(ctx context.Context, indexName, keyAttr, keyValue string, limit *int32) ([]models.EscrowTransaction, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Escrows),
		IndexName:              aws.String(indexName),
		KeyConditionExpression: aws.String(fmt.Sprintf("%s = :v", keyAttr)),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: keyValue},
		},
		ScanIndexForward: aws.Bool(false), // Sort by created_at in descending order
		Limit:            limit,
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query escrow transactions by %s: %w", keyAttr, err)
	}

	var escrows []models.EscrowTransaction
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &escrows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal escrow transactions: %w", err)
	}

	return escrows, nil
}

// ListJobEscrowTransactions retrieves all escrow transactions for a job, newest first.
func (s *Store) ListJobEscrowTransactions(ctx context.Context, jobID string) ([]models.EscrowTransaction, error) {
	return s.queryEscrows(ctx, jobEscrowsGSI, "job_id", jobID, nil)
}

// LatestJobEscrowTransaction retrieves the most recently created escrow transaction for a job.
func (s *Store) LatestJobEscrowTransaction(ctx context.Context, jobID string) (*models.EscrowTransaction, error) {
	escrows, err := s.queryEscrows(ctx, jobEscrowsGSI, "job_id", jobID, aws.Int32(1))
	if err != nil {
		return nil, err
	}
	if len(escrows) == 0 {
		return nil, fmt.Errorf("no escrow transaction for job %s: %w", jobID, storage.ErrNotFound)
	}
	return &escrows[0], nil
}

// ListPayerEscrowTransactions retrieves all escrow transactions funded by a homeowner.
func (s *Store) ListPayerEscrowTransactions(ctx context.Context, payerID string) ([]models.EscrowTransaction, error) {
	return s.queryEscrows(ctx, payerEscrowsGSI, "payer_id", payerID, nil)
}

// ListPayeeEscrowTransactions retrieves all escrow transactions owed to a contractor.
func (s *Store) ListPayeeEscrowTransactions(ctx context.Context, payeeID string) ([]models.EscrowTransaction, error) {
	return s.queryEscrows(ctx, payeeEscrowsGSI, "payee_id", payeeID, nil)
}
