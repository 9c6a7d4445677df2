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

// AppendApprovalRecord appends a homeowner (or system) decision to the
// append-only history. Records are never updated or deleted.
func (s *Store) AppendApprovalRecord(ctx context.Context, rec *models.ApprovalRecord) error {
	if rec.EntryId == "" {
		rec.EntryId = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	recAV, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal approval record: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(s.Tables.Approvals),
		Item:      recAV,
	}

	if _, err := s.Client.PutItem(ctx, input); err != nil {
		return fmt.Errorf("failed to put approval record: %w", err)
	}

	return nil
}

const approvalHistoryGSI = "escrow_transaction_id-created_at-index"

// ListApprovalRecords retrieves the decision history for an escrow, oldest
// first by the index's created_at sort key.
func (s *Store) ListApprovalRecords(ctx context.Context, escrowID string) ([]models.ApprovalRecord, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Approvals),
		IndexName:              aws.String(approvalHistoryGSI),
		KeyConditionExpression: aws.String("escrow_transaction_id = :escrowID"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":escrowID": &types.AttributeValueMemberS{Value: escrowID},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query approval records: %w", err)
	}

	var records []models.ApprovalRecord
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal approval records: %w", err)
	}

	return records, nil
}
