package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/tradecrews/escrow-payments/pkg/models"
)

const escrowStatusGSI = "status-created_at-index"

// queryEscrowsInStatus queries the status GSI with an optional filter expression.
func (s *Store) queryEscrowsInStatus(ctx context.Context, status models.EscrowStatus, filter *string, filterValues map[string]types.AttributeValue) ([]models.EscrowTransaction, error) {
	values := map[string]types.AttributeValue{
		":status": &types.AttributeValueMemberS{Value: string(status)},
	}
	for k, v := range filterValues {
		values[k] = v
	}

	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Escrows),
		IndexName:              aws.String(escrowStatusGSI),
		KeyConditionExpression: aws.String("#status = :status"),
		FilterExpression:       filter,
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: values,
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query escrows in status %s: %w", status, err)
	}

	var escrows []models.EscrowTransaction
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &escrows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal escrows in status %s: %w", status, err)
	}

	return escrows, nil
}

// ListAwaitingApproval retrieves every escrow transaction currently waiting on
// a homeowner decision.
func (s *Store) ListAwaitingApproval(ctx context.Context) ([]models.EscrowTransaction, error) {
	return s.queryEscrowsInStatus(ctx, models.EscrowAwaitingApproval, nil, nil)
}

// ListHeldEscrows retrieves every escrow transaction sitting in HELD. The
// release sweep checks these against their contractor's hold period.
func (s *Store) ListHeldEscrows(ctx context.Context) ([]models.EscrowTransaction, error) {
	return s.queryEscrowsInStatus(ctx, models.EscrowHeld, nil, nil)
}

// GetReleasableEscrows retrieves escrow transactions whose cooling-off window
// has ended as of 'now'.
func (s *Store) GetReleasableEscrows(ctx context.Context, now time.Time) ([]models.EscrowTransaction, error) {
	nowStr, err := now.MarshalText()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cutoff time: %w", err)
	}

	return s.queryEscrowsInStatus(ctx, models.EscrowCoolingOff,
		aws.String("cooling_off_ends_at <= :now"),
		map[string]types.AttributeValue{
			":now": &types.AttributeValueMemberS{Value: string(nowStr)},
		})
}

// GetStuckSettlements retrieves escrow transactions that have sat in a
// transient RELEASING or REFUNDING state for longer than the specified
// duration. These are settlements whose process died between locking the row
// and committing the outcome.
func (s *Store) GetStuckSettlements(ctx context.Context, maxAge time.Duration) ([]models.EscrowTransaction, error) {
	cutoffTime := time.Now().Add(-maxAge)
	cutoffTimeStr, err := cutoffTime.MarshalText()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cutoff time: %w", err)
	}

	filter := aws.String("updated_at < :cutoff")
	values := map[string]types.AttributeValue{
		":cutoff": &types.AttributeValueMemberS{Value: string(cutoffTimeStr)},
	}

	releasing, err := s.queryEscrowsInStatus(ctx, models.EscrowReleasing, filter, values)
	if err != nil {
		return nil, err
	}
	refunding, err := s.queryEscrowsInStatus(ctx, models.EscrowRefunding, filter, values)
	if err != nil {
		return nil, err
	}

	return append(releasing, refunding...), nil
}
