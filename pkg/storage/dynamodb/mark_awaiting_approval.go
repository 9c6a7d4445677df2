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

// MarkAwaitingApproval moves a HELD escrow into AWAITING_HOMEOWNER_APPROVAL,
// recording the completion photos and the auto-approval deadline.
func (s *Store) MarkAwaitingApproval(ctx context.Context, escrowID, actor string, photoUrls []string, autoApprovalDate time.Time) (*models.EscrowTransaction, error) {
	now := time.Now()
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal timestamp: %w", err)
	}
	deadlineAV, err := attributevalue.Marshal(autoApprovalDate)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal auto-approval date: %w", err)
	}
	photosAV, err := attributevalue.Marshal(photoUrls)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal completion photos: %w", err)
	}

	logItem, err := s.statusLogPut(escrowID, models.EscrowHeld, models.EscrowAwaitingApproval, actor, "job completed, review requested", now)
	if err != nil {
		return nil, err
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName:           aws.String(s.Tables.Escrows),
					Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: escrowID}},
					UpdateExpression:    aws.String("SET #status = :awaiting, completion_photo_urls = :photos, auto_approval_date = :deadline, updated_at = :now REMOVE release_blocked_reason, reminder_sent_at, final_reminder_sent_at"),
					ConditionExpression: aws.String("#status = :held"),
					ExpressionAttributeNames: map[string]string{
						"#status": "status",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":awaiting": &types.AttributeValueMemberS{Value: string(models.EscrowAwaitingApproval)},
						":held":     &types.AttributeValueMemberS{Value: string(models.EscrowHeld)},
						":photos":   photosAV,
						":deadline": deadlineAV,
						":now":      nowAV,
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
		return nil, fmt.Errorf("failed to execute review request transaction: %w", err)
	}

	return s.GetEscrowTransaction(ctx, escrowID)
}
