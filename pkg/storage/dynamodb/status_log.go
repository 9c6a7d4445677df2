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

// AppendStatusLog appends a status transition to the audit trail.
func (s *Store) AppendStatusLog(ctx context.Context, entry *models.StatusLogEntry) error {
	if entry.EntryId == "" {
		entry.EntryId = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	entryAV, err := attributevalue.MarshalMap(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal status log entry: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(s.Tables.StatusLog),
		Item:      entryAV,
	}

	if _, err := s.Client.PutItem(ctx, input); err != nil {
		return fmt.Errorf("failed to put status log entry: %w", err)
	}

	return nil
}

const statusLogGSI = "escrow_transaction_id-created_at-index"

// ListStatusLog retrieves the audit trail for an escrow, oldest first by the
// index's created_at sort key.
func (s *Store) ListStatusLog(ctx context.Context, escrowID string) ([]models.StatusLogEntry, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.StatusLog),
		IndexName:              aws.String(statusLogGSI),
		KeyConditionExpression: aws.String("escrow_transaction_id = :escrowID"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":escrowID": &types.AttributeValueMemberS{Value: escrowID},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query status log: %w", err)
	}

	var entries []models.StatusLogEntry
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal status log entries: %w", err)
	}

	return entries, nil
}

// statusLogPut builds the transact item that records a status transition.
// Transition writes bundle one of these with the escrow update so the audit
// trail can never disagree with the row.
func (s *Store) statusLogPut(escrowID string, from, to models.EscrowStatus, actor, note string, at time.Time) (types.TransactWriteItem, error) {
	entry := models.StatusLogEntry{
		EntryId:             uuid.New().String(),
		EscrowTransactionId: escrowID,
		FromStatus:          from,
		ToStatus:            to,
		Actor:               actor,
		Note:                note,
		CreatedAt:           at,
	}

	entryAV, err := attributevalue.MarshalMap(entry)
	if err != nil {
		return types.TransactWriteItem{}, fmt.Errorf("failed to marshal status log entry: %w", err)
	}

	return types.TransactWriteItem{
		Put: &types.Put{
			TableName: aws.String(s.Tables.StatusLog),
			Item:      entryAV,
		},
	}, nil
}
