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

// MarkApproved records an approval decision, moving the escrow from
// AWAITING_HOMEOWNER_APPROVAL into COOLING_OFF. The cooling-off deadline is
// fixed here and is never moved by later calls.
func (s *Store) MarkApproved(ctx context.Context, escrowID, actor string, approvedAt, coolingOffEndsAt time.Time) (*models.EscrowTransaction, error) {
	now := time.Now()
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal timestamp: %w", err)
	}
	approvedAtAV, err := attributevalue.Marshal(approvedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal approval time: %w", err)
	}
	coolingOffAV, err := attributevalue.Marshal(coolingOffEndsAt)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cooling-off deadline: %w", err)
	}

	logItem, err := s.statusLogPut(escrowID, models.EscrowAwaitingApproval, models.EscrowCoolingOff, actor, "work approved", now)
	if err != nil {
		return nil, err
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName:           aws.String(s.Tables.Escrows),
					Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: escrowID}},
					UpdateExpression:    aws.String("SET #status = :coolingOff, homeowner_approval = :approved, homeowner_approval_at = :approvedAt, cooling_off_ends_at = :endsAt, updated_at = :now REMOVE auto_approval_date"),
					ConditionExpression: aws.String("#status = :awaiting"),
					ExpressionAttributeNames: map[string]string{
						"#status": "status",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":coolingOff": &types.AttributeValueMemberS{Value: string(models.EscrowCoolingOff)},
						":awaiting":   &types.AttributeValueMemberS{Value: string(models.EscrowAwaitingApproval)},
						":approved":   &types.AttributeValueMemberBOOL{Value: true},
						":approvedAt": approvedAtAV,
						":endsAt":     coolingOffAV,
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
			return nil, storage.ErrStatusConflict
		}
		return nil, fmt.Errorf("failed to execute approval transaction: %w", err)
	}

	return s.GetEscrowTransaction(ctx, escrowID)
}
