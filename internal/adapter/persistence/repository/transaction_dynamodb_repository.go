package repository

import (
	"context"
	"fmt"
	"time"

	"freelance_marketplace/internal/domain/entities"
	"freelance_marketplace/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultTransactionsTableName = "payment_transactions"
	transactionsProjectIDIndex   = "project_id-index"
)

type transactionItem struct {
	ID               string  `dynamodbav:"id"`
	ProjectID        string  `dynamodbav:"project_id,omitempty"`
	ContractID       string  `dynamodbav:"contract_id,omitempty"`
	PayerID          string  `dynamodbav:"payer_id"`
	PayeeID          string  `dynamodbav:"payee_id"`
	Amount           float64 `dynamodbav:"amount"`
	Currency         string  `dynamodbav:"currency"`
	Type             string  `dynamodbav:"type"`
	Status           string  `dynamodbav:"status"`
	GatewayReference string  `dynamodbav:"gateway_reference,omitempty"`
	CreatedAt        string  `dynamodbav:"created_at"`
	UpdatedAt        string  `dynamodbav:"updated_at"`
}

// TransactionDynamoRepository persists PaymentTransaction entities.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index (PK: project_id)
//
// Create is conditional on the id, which (with the deterministic settlement
// leg ids) is what makes each leg exactly-once.

type TransactionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITransactionRepository = (*TransactionDynamoRepository)(nil)

func NewTransactionDynamoRepository(ddb *dynamodb.Client) *TransactionDynamoRepository {
	return &TransactionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TRANSACTIONS_TABLE", defaultTransactionsTableName),
	}
}

func (r *TransactionDynamoRepository) Create(ctx context.Context, t entities.PaymentTransaction) (entities.PaymentTransaction, error) {
	it := toTransactionItem(t)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PaymentTransaction{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.PaymentTransaction{}, mapConditionErr(err)
	}
	return t, nil
}

func (r *TransactionDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentTransaction, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentTransaction{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentTransaction{}, nil
	}

	var it transactionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentTransaction{}, err
	}
	return fromTransactionItem(it), nil
}

func (r *TransactionDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.PaymentTransaction, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(transactionsProjectIDIndex),
		KeyConditionExpression: aws.String("project_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.PaymentTransaction, 0, len(out.Items))
	for _, raw := range out.Items {
		var it transactionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromTransactionItem(it))
	}
	return items, nil
}

// MarkStatus enforces the leg transition table at the write. Pending and
// failed flip back and forth between each other only; successful is reachable
// from either. A mark that arrives after the leg already moved on (a delayed
// gateway failure racing a finished capture) cancels on the condition and
// surfaces as interfaces.ErrLedgerConflict, so a successful leg can never be
// flipped back by a stale writer. Refunded is written only by the ledger
// store transaction.
func (r *TransactionDynamoRepository) MarkStatus(ctx context.Context, id string, status entities.TransactionStatus, gatewayRef string) (entities.PaymentTransaction, error) {
	update := "SET #status = :status, updated_at = :now"
	values := map[string]types.AttributeValue{
		":status": &types.AttributeValueMemberS{Value: string(status)},
		":now":    &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
	}
	if gatewayRef != "" {
		update += ", gateway_reference = :ref"
		values[":ref"] = &types.AttributeValueMemberS{Value: gatewayRef}
	}

	var condition string
	switch status {
	case entities.TransactionStatusPending:
		condition = "attribute_exists(#id) AND #status = :failed"
		values[":failed"] = &types.AttributeValueMemberS{Value: string(entities.TransactionStatusFailed)}
	case entities.TransactionStatusFailed:
		condition = "attribute_exists(#id) AND #status = :pending"
		values[":pending"] = &types.AttributeValueMemberS{Value: string(entities.TransactionStatusPending)}
	case entities.TransactionStatusSuccessful:
		condition = "attribute_exists(#id) AND #status IN (:pending, :failed)"
		values[":pending"] = &types.AttributeValueMemberS{Value: string(entities.TransactionStatusPending)}
		values[":failed"] = &types.AttributeValueMemberS{Value: string(entities.TransactionStatusFailed)}
	default:
		return entities.PaymentTransaction{}, fmt.Errorf("transaction status %q is not reachable through MarkStatus", status)
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String(update),
		ConditionExpression: aws.String(condition),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.PaymentTransaction{}, mapConditionErr(err)
	}

	var it transactionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PaymentTransaction{}, err
	}
	return fromTransactionItem(it), nil
}

func toTransactionItem(t entities.PaymentTransaction) transactionItem {
	return transactionItem{
		ID:               t.ID,
		ProjectID:        t.ProjectID,
		ContractID:       t.ContractID,
		PayerID:          t.PayerID,
		PayeeID:          t.PayeeID,
		Amount:           t.Amount,
		Currency:         t.Currency,
		Type:             string(t.Type),
		Status:           string(t.Status),
		GatewayReference: t.GatewayReference,
		CreatedAt:        t.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        t.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromTransactionItem(it transactionItem) entities.PaymentTransaction {
	created, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updated, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.PaymentTransaction{
		ID:               it.ID,
		ProjectID:        it.ProjectID,
		ContractID:       it.ContractID,
		PayerID:          it.PayerID,
		PayeeID:          it.PayeeID,
		Amount:           it.Amount,
		Currency:         it.Currency,
		Type:             entities.TransactionType(it.Type),
		Status:           entities.TransactionStatus(it.Status),
		GatewayReference: it.GatewayReference,
		CreatedAt:        created,
		UpdatedAt:        updated,
	}
}
