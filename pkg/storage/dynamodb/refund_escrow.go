package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/tradecrews/escrow-payments/pkg/models"
	"github.com/tradecrews/escrow-payments/pkg/storage"
)

// BeginRefund atomically moves an escrow into the transient REFUNDING state.
// Any in-custody status qualifies; the condition rejects everything else so
// a refund can never race a release past each other.
func (s *Store) BeginRefund(ctx context.Context, escrowID string) (*models.EscrowTransaction, error) {
	now := time.Now()
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal timestamp for refund lock: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName:           aws.String(s.Tables.Escrows),
		Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: escrowID}},
		UpdateExpression:    aws.String("SET #status = :refunding, updated_at = :now"),
		ConditionExpression: aws.String("#status IN (:held, :awaiting, :coolingOff, :adminReview)"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":refunding":   &types.AttributeValueMemberS{Value: string(models.EscrowRefunding)},
			":held":        &types.AttributeValueMemberS{Value: string(models.EscrowHeld)},
			":awaiting":    &types.AttributeValueMemberS{Value: string(models.EscrowAwaitingApproval)},
			":coolingOff":  &types.AttributeValueMemberS{Value: string(models.EscrowCoolingOff)},
			":adminReview": &types.AttributeValueMemberS{Value: string(models.EscrowAdminReview)},
			":now":         nowAV,
		},
		ReturnValues: types.ReturnValueAllOld,
	}

	result, err := s.Client.UpdateItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, storage.ErrNotRefundable
		}
		return nil, fmt.Errorf("failed to acquire refund lock: %w", err)
	}

	var prior models.EscrowTransaction
	if err := attributevalue.UnmarshalMap(result.Attributes, &prior); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pre-lock escrow: %w", err)
	}

	if err := s.AppendStatusLog(ctx, &models.StatusLogEntry{
		EscrowTransactionId: escrowID,
		FromStatus:          prior.Status,
		ToStatus:            models.EscrowRefunding,
		Actor:               "settlement",
		CreatedAt:           now,
	}); err != nil {
		log.Printf("CRITICAL: escrow %s locked for refund but trail entry failed: %v", escrowID, err)
	}

	return &prior, nil
}

// CompleteRefund commits a refund after the payment provider confirmed it,
// moving the escrow from REFUNDING to REFUNDED.
func (s *Store) CompleteRefund(ctx context.Context, escrowID, reason string, refundedAt time.Time) error {
	now := time.Now()
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp for refund commit: %w", err)
	}
	refundedAtAV, err := attributevalue.Marshal(refundedAt)
	if err != nil {
		return fmt.Errorf("failed to marshal refund time: %w", err)
	}

	logItem, err := s.statusLogPut(escrowID, models.EscrowRefunding, models.EscrowRefunded, "settlement", reason, now)
	if err != nil {
		return err
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName:           aws.String(s.Tables.Escrows),
					Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: escrowID}},
					UpdateExpression:    aws.String("SET #status = :refunded, refund_reason = :reason, refunded_at = :refundedAt, updated_at = :now REMOVE release_blocked_reason"),
					ConditionExpression: aws.String("#status = :refunding"),
					ExpressionAttributeNames: map[string]string{
						"#status": "status",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":refunded":   &types.AttributeValueMemberS{Value: string(models.EscrowRefunded)},
						":refunding":  &types.AttributeValueMemberS{Value: string(models.EscrowRefunding)},
						":reason":     &types.AttributeValueMemberS{Value: reason},
						":refundedAt": refundedAtAV,
						":now":        nowAV,
					},
				},
			},
			logItem,
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		var txc *types.TransactionCanceledException
		if errors.As(err, &txc) {
			return storage.ErrStatusConflict
		}
		return fmt.Errorf("failed to commit refund: %w", err)
	}

	return nil
}

// AbortRefund reverts a failed refund, moving the escrow from REFUNDING back
// to the status it held before the lock was taken.
func (s *Store) AbortRefund(ctx context.Context, escrowID string, revertTo models.EscrowStatus, reason string) error {
	now := time.Now()
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp for refund revert: %w", err)
	}

	logItem, err := s.statusLogPut(escrowID, models.EscrowRefunding, revertTo, "settlement", reason, now)
	if err != nil {
		return err
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName:           aws.String(s.Tables.Escrows),
					Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: escrowID}},
					UpdateExpression:    aws.String("SET #status = :revertTo, release_blocked_reason = :reason, updated_at = :now"),
					ConditionExpression: aws.String("#status = :refunding"),
					ExpressionAttributeNames: map[string]string{
						"#status": "status",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":revertTo":  &types.AttributeValueMemberS{Value: string(revertTo)},
						":refunding": &types.AttributeValueMemberS{Value: string(models.EscrowRefunding)},
						":reason":    &types.AttributeValueMemberS{Value: reason},
						":now":       nowAV,
					},
				},
			},
			logItem,
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		var txc *types.TransactionCanceledException
		if errors.As(err, &txc) {
			return storage.ErrStatusConflict
		}
		return fmt.Errorf("failed to revert refund: %w", err)
	}

	return nil
}
