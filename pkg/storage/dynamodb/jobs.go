package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/tradecrews/escrow-payments/pkg/models"
	"github.com/tradecrews/escrow-payments/pkg/storage"
)

const contractorJobsGSI = "contractor_id-created_at-index"

// GetJob retrieves a job by its ID.
func (s *Store) GetJob(ctx context.Context, jobID string) (*models.Job, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": jobID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal job ID: %w", err)
	}

	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.Tables.Jobs),
		Key:       key,
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get job from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("job %s: %w", jobID, storage.ErrNotFound)
	}

	var job models.Job
	if err := attributevalue.UnmarshalMap(result.Item, &job); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job: %w", err)
	}

	return &job, nil
}

// ListContractorJobs retrieves all jobs assigned to a contractor.
func (s *Store) ListContractorJobs(ctx context.Context, contractorID string) ([]models.Job, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Jobs),
		IndexName:              aws.String(contractorJobsGSI),
		KeyConditionExpression: aws.String("contractor_id = :contractorID"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":contractorID": &types.AttributeValueMemberS{Value: contractorID},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs by contractor: %w", err)
	}

	var jobs []models.Job
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &jobs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal jobs: %w", err)
	}

	return jobs, nil
}

// RecordJobPaymentMethod stamps the payment method a job was arranged with.
// The job row must already exist; this never creates one.
func (s *Store) RecordJobPaymentMethod(ctx context.Context, jobID, paymentMethod, notes string) error {
	now := time.Now()
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp for payment method: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName:           aws.String(s.Tables.Jobs),
		Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: jobID}},
		UpdateExpression:    aws.String("SET payment_method = :method, payment_method_notes = :notes, payment_method_recorded_at = :now"),
		ConditionExpression: aws.String("attribute_exists(id)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":method": &types.AttributeValueMemberS{Value: paymentMethod},
			":notes":  &types.AttributeValueMemberS{Value: notes},
			":now":    nowAV,
		},
	}

	if _, err := s.Client.UpdateItem(ctx, input); err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return fmt.Errorf("job %s: %w", jobID, storage.ErrNotFound)
		}
		return fmt.Errorf("failed to record job payment method: %w", err)
	}

	return nil
}
