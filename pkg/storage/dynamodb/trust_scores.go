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

// GetTrustScore retrieves the most recently computed score for a contractor.
func (s *Store) GetTrustScore(ctx context.Context, contractorID string) (*models.TrustScoreRecord, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"contractor_id": contractorID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal contractor ID: %w", err)
	}

	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.Tables.TrustScores),
		Key:       key,
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get trust score from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("trust score for contractor %s: %w", contractorID, storage.ErrNotFound)
	}

	var rec models.TrustScoreRecord
	if err := attributevalue.UnmarshalMap(result.Item, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal trust score: %w", err)
	}

	return &rec, nil
}

// PutTrustScore stores a freshly computed score, replacing any previous one.
func (s *Store) PutTrustScore(ctx context.Context, rec *models.TrustScoreRecord) error {
	recAV, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal trust score: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(s.Tables.TrustScores),
		Item:      recAV,
	}

	if _, err := s.Client.PutItem(ctx, input); err != nil {
		return fmt.Errorf("failed to put trust score: %w", err)
	}

	return nil
}
