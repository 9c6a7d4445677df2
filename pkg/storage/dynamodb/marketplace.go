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

// The reviews and disputes tables share the same contractor index shape.
const (
	contractorGSI  = "contractor_id-created_at-index"
	jobDisputesGSI = "job_id-created_at-index"
)

// GetUser retrieves a user by their ID.
func (s *Store) GetUser(ctx context.Context, userID string) (*models.User, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal user ID: %w", err)
	}

	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.Tables.Users),
		Key:       key,
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get user from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("user %s: %w", userID, storage.ErrNotFound)
	}

	var user models.User
	if err := attributevalue.UnmarshalMap(result.Item, &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	return &user, nil
}

// ListContractorReviews retrieves all reviews left for a contractor.
func (s *Store) ListContractorReviews(ctx context.Context, contractorID string) ([]models.Review, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Reviews),
		IndexName:              aws.String(contractorGSI),
		KeyConditionExpression: aws.String("contractor_id = :contractorID"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":contractorID": &types.AttributeValueMemberS{Value: contractorID},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews by contractor: %w", err)
	}

	var reviews []models.Review
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &reviews); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reviews: %w", err)
	}

	return reviews, nil
}

// CountContractorDisputes counts all disputes ever filed against a contractor.
func (s *Store) CountContractorDisputes(ctx context.Context, contractorID string) (int, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Disputes),
		IndexName:              aws.String(contractorGSI),
		KeyConditionExpression: aws.String("contractor_id = :contractorID"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":contractorID": &types.AttributeValueMemberS{Value: contractorID},
		},
		Select: types.SelectCount,
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return 0, fmt.Errorf("failed to count disputes by contractor: %w", err)
	}

	return int(result.Count), nil
}

// CountOpenJobDisputes counts the unresolved disputes attached to a job.
func (s *Store) CountOpenJobDisputes(ctx context.Context, jobID string) (int, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Disputes),
		IndexName:              aws.String(jobDisputesGSI),
		KeyConditionExpression: aws.String("job_id = :jobID"),
		FilterExpression:       aws.String("#status = :open"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":jobID": &types.AttributeValueMemberS{Value: jobID},
			":open":  &types.AttributeValueMemberS{Value: string(models.DisputeOpen)},
		},
		Select: types.SelectCount,
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return 0, fmt.Errorf("failed to count open disputes for job: %w", err)
	}

	return int(result.Count), nil
}
