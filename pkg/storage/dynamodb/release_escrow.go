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

// BeginRelease atomically moves an escrow into the transient RELEASING state.
// The condition only passes while the row is in a release-eligible status, so
// exactly one caller wins no matter how many sweeps and retries overlap.
// The returned snapshot is the row as it was before the lock, which tells the
// caller where to revert to if the transfer fails.
func (s *Store) BeginRelease(ctx context.Context, escrowID string) (*models.EscrowTransaction, error) {
	now := time.Now()
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal timestamp for release lock: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName:           aws.String(s.Tables.Escrows),
		Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: escrowID}},
		UpdateExpression:    aws.String("SET #status = :releasing, updated_at = :now"),
		ConditionExpression: aws.String("#status IN (:held, :coolingOff)"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":releasing":  &types.AttributeValueMemberS{Value: string(models.EscrowReleasing)},
			":held":       &types.AttributeValueMemberS{Value: string(models.EscrowHeld)},
			":coolingOff": &types.AttributeValueMemberS{Value: string(models.EscrowCoolingOff)},
			":now":        nowAV,
		},
		ReturnValues: types.ReturnValueAllOld,
	}

	result, err := s.Client.UpdateItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, storage.ErrNotReleasable
		}
		return nil, fmt.Errorf("failed to acquire release lock: %w", err)
	}

	var prior models.EscrowTransaction
	if err := attributevalue.UnmarshalMap(result.Attributes, &prior); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pre-lock escrow: %w", err)
	}

	// Best-effort trail entry for the lock itself. The durable outcome is
	// logged atomically by CompleteRelease or AbortRelease.
	if err := s.AppendStatusLog(ctx, &models.StatusLogEntry{
		EscrowTransactionId: escrowID,
		FromStatus:          prior.Status,
		ToStatus:            models.EscrowReleasing,
		Actor:               "settlement",
		CreatedAt:           now,
	}); err != nil {
		log.Printf("CRITICAL: escrow %s locked for release but trail entry failed: %v", escrowID, err)
	}

	return &prior, nil
}

// CompleteRelease commits a release after the payment provider confirmed the
// transfer, moving the escrow from RELEASING to RELEASED.
func (s *Store) CompleteRelease(ctx context.Context, escrowID string, releasedAt time.Time) error {
	now := time.Now()
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp for release commit: %w", err)
	}
	releasedAtAV, err := attributevalue.Marshal(releasedAt)
	if err != nil {
		return fmt.Errorf("failed to marshal release time: %w", err)
	}

	logItem, err := s.statusLogPut(escrowID, models.EscrowReleasing, models.EscrowReleased, "settlement", "funds released to contractor", now)
	if err != nil {
		return err
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName:           aws.String(s.Tables.Escrows),
					Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: escrowID}},
					UpdateExpression:    aws.String("SET #status = :released, released_at = :releasedAt, updated_at = :now REMOVE release_blocked_reason"),
					ConditionExpression: aws.String("#status = :releasing"),
					ExpressionAttributeNames: map[string]string{
						"#status": "status",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":released":   &types.AttributeValueMemberS{Value: string(models.EscrowReleased)},
						":releasing":  &types.AttributeValueMemberS{Value: string(models.EscrowReleasing)},
						":releasedAt": releasedAtAV,
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
		return fmt.Errorf("failed to commit release: %w", err)
	}

	return nil
}

// AbortRelease reverts a failed release, moving the escrow from RELEASING back
// to the status it held before the lock was taken.
func (s *Store) AbortRelease(ctx context.Context, escrowID string, revertTo models.EscrowStatus, reason string) error {
	now := time.Now()
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp for release revert: %w", err)
	}

	logItem, err := s.statusLogPut(escrowID, models.EscrowReleasing, revertTo, "settlement", reason, now)
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
					ConditionExpression: aws.String("#status = :releasing"),
					ExpressionAttributeNames: map[string]string{
						"#status": "status",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":revertTo":  &types.AttributeValueMemberS{Value: string(revertTo)},
						":releasing": &types.AttributeValueMemberS{Value: string(models.EscrowReleasing)},
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
		return fmt.Errorf("failed to revert release: %w", err)
	}

	return nil
}
