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

// MarkReminderSent sets the reminder marker for an escrow awaiting approval.
// The marker write is conditional on the marker being absent, so overlapping
// sweep runs agree on a single sender. ErrReminderAlreadySent tells the loser
// to skip the notification.
func (s *Store) MarkReminderSent(ctx context.Context, escrowID string, final bool, sentAt time.Time) error {
	field := "reminder_sent_at"
	if final {
		field = "final_reminder_sent_at"
	}

	sentAtAV, err := attributevalue.Marshal(sentAt)
	if err != nil {
		return fmt.Errorf("failed to marshal reminder time: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName:           aws.String(s.Tables.Escrows),
		Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: escrowID}},
		UpdateExpression:    aws.String(fmt.Sprintf("SET %s = :sentAt", field)),
		ConditionExpression: aws.String(fmt.Sprintf("#status = :awaiting AND attribute_not_exists(%s)", field)),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":awaiting": &types.AttributeValueMemberS{Value: string(models.EscrowAwaitingApproval)},
			":sentAt":   sentAtAV,
		},
	}

	if _, err := s.Client.UpdateItem(ctx, input); err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			// Distinguish a duplicate send from a row that moved on.
			esc, getErr := s.GetEscrowTransaction(ctx, escrowID)
			if getErr != nil {
				return fmt.Errorf("failed to re-read escrow after reminder conflict: %w", getErr)
			}
			if (!final && esc.ReminderSentAt != nil) || (final && esc.FinalReminderSentAt != nil) {
				return storage.ErrReminderAlreadySent
			}
			return storage.ErrStatusConflict
		}
		return fmt.Errorf("failed to mark reminder sent: %w", err)
	}

	return nil
}
