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
	defaultBidsTableName = "bids"
	bidsProjectIDIndex   = "project_id-index"
)

type bidItem struct {
	ID                      string  `dynamodbav:"id"`
	ProjectID               string  `dynamodbav:"project_id"`
	FreelancerID            string  `dynamodbav:"freelancer_id"`
	Amount                  float64 `dynamodbav:"amount"`
	Proposal                string  `dynamodbav:"proposal,omitempty"`
	EstimatedCompletionTime string  `dynamodbav:"estimated_completion_time,omitempty"`
	Status                  string  `dynamodbav:"status"`
	BidDate                 string  `dynamodbav:"bid_date"`
}

// BidDynamoRepository reads Bid entities from DynamoDB. Writes run through
// the ledger store so they stay conditioned on the project's state.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index (PK: project_id)

type BidDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBidRepository = (*BidDynamoRepository)(nil)

func NewBidDynamoRepository(ddb *dynamodb.Client) *BidDynamoRepository {
	return &BidDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BIDS_TABLE", defaultBidsTableName),
	}
}

func (r *BidDynamoRepository) GetByID(ctx context.Context, id string) (entities.Bid, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Bid{}, err
	}
	if len(out.Item) == 0 {
		return entities.Bid{}, nil
	}

	var it bidItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Bid{}, err
	}
	return fromBidItem(it), nil
}

func (r *BidDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.Bid, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(bidsProjectIDIndex),
		KeyConditionExpression: aws.String("project_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Bid, 0, len(out.Items))
	for _, raw := range out.Items {
		var it bidItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromBidItem(it))
	}
	return items, nil
}

func toBidItem(b entities.Bid) bidItem {
	return bidItem{
		ID:                      b.ID,
		ProjectID:               b.ProjectID,
		FreelancerID:            b.FreelancerID,
		Amount:                  b.Amount,
		Proposal:                b.Proposal,
		EstimatedCompletionTime: b.EstimatedCompletionTime,
		Status:                  string(b.Status),
		BidDate:                 b.BidDate.UTC().Format(time.RFC3339Nano),
	}
}

func fromBidItem(it bidItem) entities.Bid {
	bidDate, _ := time.Parse(time.RFC3339Nano, it.BidDate)
	return entities.Bid{
		ID:                      it.ID,
		ProjectID:               it.ProjectID,
		FreelancerID:            it.FreelancerID,
		Amount:                  it.Amount,
		Proposal:                it.Proposal,
		EstimatedCompletionTime: it.EstimatedCompletionTime,
		Status:                  entities.BidStatus(it.Status),
		BidDate:                 bidDate,
	}
}
