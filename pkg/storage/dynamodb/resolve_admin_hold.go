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

// ResolveAdminHold flips a PENDING_REVIEW admin hold to RESOLVED. Called after
// a settlement decides an admin case; a no-op conflict just means the hold was
// already resolved.
func (s *Store) ResolveAdminHold(ctx context.Context, escrowID string) error {
	now := time.Now()
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp for hold resolution: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName:           aws.String(s.Tables.Escrows),
		Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: escrowID}},
		UpdateExpression:    aws.String("SET admin_hold_status = :resolved, updated_at = :now"),
		ConditionExpression: aws.String("admin_hold_status = :pendingReview"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":resolved":      &types.AttributeValueMemberS{Value: string(models.AdminHoldResolved)},
			":pendingReview": &types.AttributeValueMemberS{Value: string(models.AdminHoldPendingReview)},
			":now":           nowAV,
		},
	}

	if _, err := s.Client.UpdateItem(ctx, input); err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return storage.ErrStatusConflict
		}
		return fmt.Errorf("failed to resolve admin hold: %w", err)
	}

	return nil
}
