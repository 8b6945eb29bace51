package repository

import (
	"context"
	"time"

	"freelance_marketplace/internal/domain/entities"
	"freelance_marketplace/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultContractsTableName = "contracts"
	contractsProjectIDIndex   = "project_id-index"
	contractsClientIDIndex    = "client_id-index"
	contractsFreelancerIndex  = "freelancer_id-index"
)

type contractItem struct {
	ID           string  `dynamodbav:"id"`
	ProjectID    string  `dynamodbav:"project_id"`
	ClientID     string  `dynamodbav:"client_id"`
	FreelancerID string  `dynamodbav:"freelancer_id"`
	Terms        string  `dynamodbav:"terms,omitempty"`
	AgreedAmount float64 `dynamodbav:"agreed_amount"`
	Status       string  `dynamodbav:"status"`
	StartDate    string  `dynamodbav:"start_date"`
	EndDate      string  `dynamodbav:"end_date,omitempty"`
	CreatedAt    string  `dynamodbav:"created_at"`
}

// ContractDynamoRepository reads Contract entities from DynamoDB. Creation
// and status changes happen inside ledger-store transactions.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index (PK: project_id)
//   - GSI: client_id-index (PK: client_id)
//   - GSI: freelancer_id-index (PK: freelancer_id)

type ContractDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IContractRepository = (*ContractDynamoRepository)(nil)

func NewContractDynamoRepository(ddb *dynamodb.Client) *ContractDynamoRepository {
	return &ContractDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONTRACTS_TABLE", defaultContractsTableName),
	}
}

func (r *ContractDynamoRepository) GetByID(ctx context.Context, id string) (entities.Contract, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Contract{}, err
	}
	if len(out.Item) == 0 {
		return entities.Contract{}, nil
	}

	var it contractItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Contract{}, err
	}
	return fromContractItem(it), nil
}

// GetByProjectID returns the most recent contract of the project. At most one
// non-terminated contract exists per project; when only terminated history
// remains the latest record is still returned so callers can see its status.
func (r *ContractDynamoRepository) GetByProjectID(ctx context.Context, projectID string) (entities.Contract, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(contractsProjectIDIndex),
		KeyConditionExpression: aws.String("project_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
	})
	if err != nil {
		return entities.Contract{}, err
	}
	if len(out.Items) == 0 {
		return entities.Contract{}, nil
	}

	var latest entities.Contract
	for _, raw := range out.Items {
		var it contractItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return entities.Contract{}, err
		}
		c := fromContractItem(it)
		if latest.ID == "" || c.CreatedAt.After(latest.CreatedAt) {
			latest = c
		}
	}
	return latest, nil
}

func (r *ContractDynamoRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.Contract, error) {
	return r.listByIndex(ctx, contractsClientIDIndex, "client_id", clientID)
}

func (r *ContractDynamoRepository) ListByFreelancerID(ctx context.Context, freelancerID string) ([]entities.Contract, error) {
	return r.listByIndex(ctx, contractsFreelancerIndex, "freelancer_id", freelancerID)
}

func (r *ContractDynamoRepository) listByIndex(ctx context.Context, index, key, value string) ([]entities.Contract, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(key + " = :v"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Contract, 0, len(out.Items))
	for _, raw := range out.Items {
		var it contractItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromContractItem(it))
	}
	return items, nil
}

func toContractItem(c entities.Contract) contractItem {
	it := contractItem{
		ID:           c.ID,
		ProjectID:    c.ProjectID,
		ClientID:     c.ClientID,
		FreelancerID: c.FreelancerID,
		Terms:        c.Terms,
		AgreedAmount: c.AgreedAmount,
		Status:       string(c.Status),
		StartDate:    c.StartDate.UTC().Format(time.RFC3339Nano),
		CreatedAt:    c.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if c.EndDate != nil {
		it.EndDate = c.EndDate.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromContractItem(it contractItem) entities.Contract {
	start, _ := time.Parse(time.RFC3339Nano, it.StartDate)
	created, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	c := entities.Contract{
		ID:           it.ID,
		ProjectID:    it.ProjectID,
		ClientID:     it.ClientID,
		FreelancerID: it.FreelancerID,
		Terms:        it.Terms,
		AgreedAmount: it.AgreedAmount,
		Status:       entities.ContractStatus(it.Status),
		StartDate:    start,
		CreatedAt:    created,
	}
	if it.EndDate != "" {
		if end, err := time.Parse(time.RFC3339Nano, it.EndDate); err == nil {
			c.EndDate = &end
		}
	}
	return c
}
