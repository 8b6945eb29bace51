package repository

import (
	"context"
	"log"
	"time"

	"freelance_marketplace/internal/domain/entities"
	"freelance_marketplace/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// LedgerDynamoStore implements the aggregate transactions with DynamoDB
// TransactWriteItems: every method is one all-or-nothing write across the
// project, bids, contracts, work_submissions and payment_transactions tables,
// guarded by per-item condition expressions. A failed condition cancels the
// whole transaction with nothing written, which is what serializes concurrent
// accept/submit/settle races.

type LedgerDynamoStore struct {
	ddb               *dynamodb.Client
	projectsTable     string
	bidsTable         string
	contractsTable    string
	submissionsTable  string
	transactionsTable string
}

var _ interfaces.ILedgerStore = (*LedgerDynamoStore)(nil)

func NewLedgerDynamoStore(ddb *dynamodb.Client) *LedgerDynamoStore {
	return &LedgerDynamoStore{
		ddb:               ddb,
		projectsTable:     getenvDefault("PROJECTS_TABLE", defaultProjectsTableName),
		bidsTable:         getenvDefault("BIDS_TABLE", defaultBidsTableName),
		contractsTable:    getenvDefault("CONTRACTS_TABLE", defaultContractsTableName),
		submissionsTable:  getenvDefault("SUBMISSIONS_TABLE", defaultSubmissionsTableName),
		transactionsTable: getenvDefault("TRANSACTIONS_TABLE", defaultTransactionsTableName),
	}
}

func (s *LedgerDynamoStore) transact(ctx context.Context, op string, items []types.TransactWriteItem) error {
	_, err := s.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	if err != nil {
		mapped := mapConditionErr(err)
		if mapped == interfaces.ErrLedgerConflict {
			log.Printf("[ledger][store] %s transaction cancelled by condition check", op)
		} else {
			log.Printf("[ledger][store] %s transaction failed err=%v", op, err)
		}
		return mapped
	}
	return nil
}

func (s *LedgerDynamoStore) SubmitBid(ctx context.Context, bid entities.Bid) error {
	av, err := attributevalue.MarshalMap(toBidItem(bid))
	if err != nil {
		return err
	}

	return s.transact(ctx, "submit-bid", []types.TransactWriteItem{
		{
			Put: &types.Put{
				TableName:           aws.String(s.bidsTable),
				Item:                av,
				ConditionExpression: aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id": "id",
				},
			},
		},
		s.projectStatusCheck(bid.ProjectID, entities.ProjectStatusOpen),
	})
}

func (s *LedgerDynamoStore) WithdrawBid(ctx context.Context, bidID, projectID string) error {
	return s.transact(ctx, "withdraw-bid", []types.TransactWriteItem{
		s.bidStatusUpdate(bidID, entities.BidStatusSubmitted, entities.BidStatusWithdrawn),
		s.projectStatusCheck(projectID, entities.ProjectStatusOpen),
	})
}

// AcceptBid is the four-step acceptance: accepted bid flips to accepted, the
// other submitted bids flip to rejected, the contract is created, the project
// moves to in_progress with the hired freelancer. The project condition
// (status=open) is what guarantees exactly one winner among racing accepts.
func (s *LedgerDynamoStore) AcceptBid(ctx context.Context, contract entities.Contract, acceptedBidID string, rejectedBidIDs []string) error {
	contractAV, err := attributevalue.MarshalMap(toContractItem(contract))
	if err != nil {
		return err
	}

	items := make([]types.TransactWriteItem, 0, len(rejectedBidIDs)+3)
	items = append(items, s.bidStatusUpdate(acceptedBidID, entities.BidStatusSubmitted, entities.BidStatusAccepted))
	for _, id := range rejectedBidIDs {
		items = append(items, s.bidStatusUpdate(id, entities.BidStatusSubmitted, entities.BidStatusRejected))
	}
	items = append(items, types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(s.contractsTable),
			Item:                contractAV,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		},
	})
	items = append(items, types.TransactWriteItem{
		Update: &types.Update{
			TableName: aws.String(s.projectsTable),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: contract.ProjectID},
			},
			UpdateExpression:    aws.String("SET #status = :in_progress, freelancer_id = :fid, updated_at = :now"),
			ConditionExpression: aws.String("attribute_exists(#id) AND #status = :open"),
			ExpressionAttributeNames: map[string]string{
				"#id":     "id",
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":in_progress": &types.AttributeValueMemberS{Value: string(entities.ProjectStatusInProgress)},
				":open":        &types.AttributeValueMemberS{Value: string(entities.ProjectStatusOpen)},
				":fid":         &types.AttributeValueMemberS{Value: contract.FreelancerID},
				":now":         &types.AttributeValueMemberS{Value: nowNano()},
			},
		},
	})

	return s.transact(ctx, "accept-bid", items)
}

func (s *LedgerDynamoStore) RecordSubmission(ctx context.Context, sub entities.WorkSubmission) error {
	av, err := attributevalue.MarshalMap(toSubmissionItem(sub))
	if err != nil {
		return err
	}

	return s.transact(ctx, "record-submission", []types.TransactWriteItem{
		{
			Put: &types.Put{
				TableName: aws.String(s.submissionsTable),
				Item:      av,
				// The composite (project_id, version) key makes the version claim
				// exactly-once; a racing submit loses here and retries.
				ConditionExpression: aws.String("attribute_not_exists(project_id) AND attribute_not_exists(version)"),
			},
		},
		{
			Update: &types.Update{
				TableName: aws.String(s.projectsTable),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: sub.ProjectID},
				},
				UpdateExpression:    aws.String("SET #status = :awaiting, updated_at = :now REMOVE approved_submission_id"),
				ConditionExpression: aws.String("attribute_exists(#id) AND #status IN (:in_progress, :awaiting)"),
				ExpressionAttributeNames: map[string]string{
					"#id":     "id",
					"#status": "status",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":awaiting":    &types.AttributeValueMemberS{Value: string(entities.ProjectStatusAwaitingReview)},
					":in_progress": &types.AttributeValueMemberS{Value: string(entities.ProjectStatusInProgress)},
					":now":         &types.AttributeValueMemberS{Value: nowNano()},
				},
			},
		},
	})
}

// FinalizeSettlement writes the fee and payout legs and completes project and
// contract atomically. Re-running after a prior success cancels on the
// project condition, which callers treat as already-settled.
func (s *LedgerDynamoStore) FinalizeSettlement(ctx context.Context, fee, payout entities.PaymentTransaction, projectID, contractID string) error {
	feeAV, err := attributevalue.MarshalMap(toTransactionItem(fee))
	if err != nil {
		return err
	}
	payoutAV, err := attributevalue.MarshalMap(toTransactionItem(payout))
	if err != nil {
		return err
	}

	return s.transact(ctx, "finalize-settlement", []types.TransactWriteItem{
		{
			Put: &types.Put{
				TableName:           aws.String(s.transactionsTable),
				Item:                feeAV,
				ConditionExpression: aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id": "id",
				},
			},
		},
		{
			Put: &types.Put{
				TableName:           aws.String(s.transactionsTable),
				Item:                payoutAV,
				ConditionExpression: aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id": "id",
				},
			},
		},
		{
			Update: &types.Update{
				TableName: aws.String(s.projectsTable),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: projectID},
				},
				UpdateExpression:    aws.String("SET #status = :completed, updated_at = :now"),
				ConditionExpression: aws.String("attribute_exists(#id) AND #status = :awaiting"),
				ExpressionAttributeNames: map[string]string{
					"#id":     "id",
					"#status": "status",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":completed": &types.AttributeValueMemberS{Value: string(entities.ProjectStatusCompleted)},
					":awaiting":  &types.AttributeValueMemberS{Value: string(entities.ProjectStatusAwaitingReview)},
					":now":       &types.AttributeValueMemberS{Value: nowNano()},
				},
			},
		},
		{
			Update: &types.Update{
				TableName: aws.String(s.contractsTable),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: contractID},
				},
				UpdateExpression:    aws.String("SET #status = :completed, end_date = :now"),
				ConditionExpression: aws.String("attribute_exists(#id) AND #status = :active"),
				ExpressionAttributeNames: map[string]string{
					"#id":     "id",
					"#status": "status",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":completed": &types.AttributeValueMemberS{Value: string(entities.ContractStatusCompleted)},
					":active":    &types.AttributeValueMemberS{Value: string(entities.ContractStatusActive)},
					":now":       &types.AttributeValueMemberS{Value: nowNano()},
				},
			},
		},
	})
}

// Terminate force-moves the project to a terminal status, optionally closing
// the contract and writing the refund leg (flipping the captured payment to
// refunded) in the same transaction. A cancelled project has no assigned
// freelancer, so the cancel path also removes freelancer_id; a disputed
// project keeps it.
func (s *LedgerDynamoStore) Terminate(ctx context.Context, projectID string, projectTo entities.ProjectStatus, contractID string, contractTo entities.ContractStatus, refund *entities.PaymentTransaction) error {
	projectUpdate := "SET #status = :to, updated_at = :now"
	if projectTo == entities.ProjectStatusCancelled {
		projectUpdate += " REMOVE freelancer_id"
	}

	items := []types.TransactWriteItem{
		{
			Update: &types.Update{
				TableName: aws.String(s.projectsTable),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: projectID},
				},
				UpdateExpression:    aws.String(projectUpdate),
				ConditionExpression: aws.String("attribute_exists(#id) AND #status IN (:open, :in_progress, :awaiting)"),
				ExpressionAttributeNames: map[string]string{
					"#id":     "id",
					"#status": "status",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":to":          &types.AttributeValueMemberS{Value: string(projectTo)},
					":open":        &types.AttributeValueMemberS{Value: string(entities.ProjectStatusOpen)},
					":in_progress": &types.AttributeValueMemberS{Value: string(entities.ProjectStatusInProgress)},
					":awaiting":    &types.AttributeValueMemberS{Value: string(entities.ProjectStatusAwaitingReview)},
					":now":         &types.AttributeValueMemberS{Value: nowNano()},
				},
			},
		},
	}

	if contractID != "" {
		items = append(items, types.TransactWriteItem{
			Update: &types.Update{
				TableName: aws.String(s.contractsTable),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: contractID},
				},
				UpdateExpression:    aws.String("SET #status = :to, end_date = :now"),
				ConditionExpression: aws.String("attribute_exists(#id) AND #status = :active"),
				ExpressionAttributeNames: map[string]string{
					"#id":     "id",
					"#status": "status",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":to":     &types.AttributeValueMemberS{Value: string(contractTo)},
					":active": &types.AttributeValueMemberS{Value: string(entities.ContractStatusActive)},
					":now":    &types.AttributeValueMemberS{Value: nowNano()},
				},
			},
		})
	}

	if refund != nil {
		refundAV, err := attributevalue.MarshalMap(toTransactionItem(*refund))
		if err != nil {
			return err
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{
				TableName:           aws.String(s.transactionsTable),
				Item:                refundAV,
				ConditionExpression: aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id": "id",
				},
			},
		})
		items = append(items, types.TransactWriteItem{
			Update: &types.Update{
				TableName: aws.String(s.transactionsTable),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: entities.PaymentLegID(refund.ContractID)},
				},
				UpdateExpression:    aws.String("SET #status = :refunded, updated_at = :now"),
				ConditionExpression: aws.String("attribute_exists(#id) AND #status = :successful"),
				ExpressionAttributeNames: map[string]string{
					"#id":     "id",
					"#status": "status",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":refunded":   &types.AttributeValueMemberS{Value: string(entities.TransactionStatusRefunded)},
					":successful": &types.AttributeValueMemberS{Value: string(entities.TransactionStatusSuccessful)},
					":now":        &types.AttributeValueMemberS{Value: nowNano()},
				},
			},
		})
	}

	return s.transact(ctx, "terminate", items)
}

func (s *LedgerDynamoStore) projectStatusCheck(projectID string, status entities.ProjectStatus) types.TransactWriteItem {
	return types.TransactWriteItem{
		ConditionCheck: &types.ConditionCheck{
			TableName: aws.String(s.projectsTable),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: projectID},
			},
			ConditionExpression: aws.String("attribute_exists(#id) AND #status = :status"),
			ExpressionAttributeNames: map[string]string{
				"#id":     "id",
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":status": &types.AttributeValueMemberS{Value: string(status)},
			},
		},
	}
}

func (s *LedgerDynamoStore) bidStatusUpdate(bidID string, from, to entities.BidStatus) types.TransactWriteItem {
	return types.TransactWriteItem{
		Update: &types.Update{
			TableName: aws.String(s.bidsTable),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: bidID},
			},
			UpdateExpression:    aws.String("SET #status = :to"),
			ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
			ExpressionAttributeNames: map[string]string{
				"#id":     "id",
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":to":   &types.AttributeValueMemberS{Value: string(to)},
				":from": &types.AttributeValueMemberS{Value: string(from)},
			},
		},
	}
}

func nowNano() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
