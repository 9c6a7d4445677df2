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

// MarkHeld records a successful charge against the escrow, moving it from
// PENDING to HELD. Payment webhooks redeliver, so the same intent must be
// accepted any number of times without a second transition.
func (s *Store) MarkHeld(ctx context.Context, escrowID, paymentIntentID string) (*models.EscrowTransaction, error) {
	// 1. Read the current row to detect redelivery before attempting the write.
	esc, err := s.GetEscrowTransaction(ctx, escrowID)
	if err != nil {
		return nil, fmt.Errorf("failed to get escrow for hold: %w", err)
	}

	if esc.Status == models.EscrowHeld {
		if esc.PaymentIntentId != nil && *esc.PaymentIntentId == paymentIntentID {
			return esc, nil
		}
		return nil, storage.ErrPaymentIntentMismatch
	}
	if esc.Status != models.EscrowPending {
		return nil, storage.ErrStatusConflict
	}

	// 2. Transition PENDING -> HELD, guarded so only one writer wins.
	now := time.Now()
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal timestamp for hold: %w", err)
	}

	logItem, err := s.statusLogPut(escrowID, models.EscrowPending, models.EscrowHeld, "payments", "funds captured", now)
	if err != nil {
		return nil, err
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName:           aws.String(s.Tables.Escrows),
					Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: escrowID}},
					UpdateExpression:    aws.String("SET #status = :held, payment_intent_id = :intent, updated_at = :now"),
					ConditionExpression: aws.String("#status = :pending"),
					ExpressionAttributeNames: map[string]string{
						"#status": "status",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":held":    &types.AttributeValueMemberS{Value: string(models.EscrowHeld)},
						":pending": &types.AttributeValueMemberS{Value: string(models.EscrowPending)},
						":intent":  &types.AttributeValueMemberS{Value: paymentIntentID},
						":now":     nowAV,
					},
				},
			},
			logItem,
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		// A lost race against a concurrent redelivery of the same intent still
		// counts as success; anything else is a genuine conflict.
		var txc *types.TransactionCanceledException
		if errors.As(err, &txc) {
			current, getErr := s.GetEscrowTransaction(ctx, escrowID)
			if getErr == nil && current.Status == models.EscrowHeld &&
				current.PaymentIntentId != nil && *current.PaymentIntentId == paymentIntentID {
				return current, nil
			}
			return nil, storage.ErrStatusConflict
		}
		return nil, fmt.Errorf("failed to execute hold transaction: %w", err)
	}

	esc.Status = models.EscrowHeld
	esc.PaymentIntentId = &paymentIntentID
	esc.UpdatedAt = now
	return esc, nil
}
