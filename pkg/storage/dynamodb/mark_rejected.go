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

// MarkRejected records a rejection, moving the escrow from
// AWAITING_HOMEOWNER_APPROVAL into ADMIN_REVIEW. Funds stay in custody until
// an admin resolves the case; nothing auto-releases out of this state.
func (s *Store) MarkRejected(ctx context.Context, escrowID, actor, reason string) (*models.EscrowTransaction, error) {
	now := time.Now()
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	logItem, err := s.statusLogPut(escrowID, models.EscrowAwaitingApproval, models.EscrowAdminReview, actor, reason, now)
	if err != nil {
		return nil, err
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName:           aws.String(s.Tables.Escrows),
					Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: escrowID}},
					UpdateExpression:    aws.String("SET #status = :adminReview, release_blocked_reason = :reason, admin_hold_status = :pendingReview, updated_at = :now"),
					ConditionExpression: aws.String("#status = :awaiting"),
					ExpressionAttributeNames: map[string]string{
						"#status": "status",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":adminReview":   &types.AttributeValueMemberS{Value: string(models.EscrowAdminReview)},
						":awaiting":      &types.AttributeValueMemberS{Value: string(models.EscrowAwaitingApproval)},
						":reason":        &types.AttributeValueMemberS{Value: reason},
						":pendingReview": &types.AttributeValueMemberS{Value: string(models.AdminHoldPendingReview)},
						":now":           nowAV,
					},
				},
			},
			logItem,
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		var txc *types.TransactionCanceledException
		if errors.As(err, &txc) {
			return nil, storage.ErrStatusConflict
		}
		return nil, fmt.Errorf("failed to execute rejection transaction: %w", err)
	}

	return s.GetEscrowTransaction(ctx, escrowID)
}
