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
	defaultProjectsTableName = "projects"
	projectsStatusIndex      = "status-index"
)

type projectItem struct {
	ID                   string   `dynamodbav:"id"`
	ClientID             string   `dynamodbav:"client_id"`
	FreelancerID         string   `dynamodbav:"freelancer_id,omitempty"`
	Title                string   `dynamodbav:"title"`
	Description          string   `dynamodbav:"description,omitempty"`
	Budget               float64  `dynamodbav:"budget,omitempty"`
	Deadline             string   `dynamodbav:"deadline,omitempty"`
	Tags                 []string `dynamodbav:"tags,omitempty"`
	Status               string   `dynamodbav:"status"`
	ApprovedSubmissionID string   `dynamodbav:"approved_submission_id,omitempty"`
	CreatedAt            string   `dynamodbav:"created_at"`
	UpdatedAt            string   `dynamodbav:"updated_at"`
}

// ProjectDynamoRepository persists Project entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: status-index (PK: status)

type ProjectDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb *dynamodb.Client) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROJECTS_TABLE", defaultProjectsTableName),
	}
}

func (r *ProjectDynamoRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	it := toProjectItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Project{}, err
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
		return entities.Project{}, mapConditionErr(err)
	}
	return p, nil
}

func (r *ProjectDynamoRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Project{}, err
	}
	if len(out.Item) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func (r *ProjectDynamoRepository) ListOpen(ctx context.Context) ([]entities.Project, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(projectsStatusIndex),
		KeyConditionExpression: aws.String("#status = :open"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":open": &types.AttributeValueMemberS{Value: string(entities.ProjectStatusOpen)},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Project, 0, len(out.Items))
	for _, raw := range out.Items {
		var it projectItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromProjectItem(it))
	}
	return items, nil
}

func (r *ProjectDynamoRepository) RequestRevision(ctx context.Context, id string) (entities.Project, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET #status = :in_progress, updated_at = :now REMOVE approved_submission_id"),
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :awaiting"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":in_progress": &types.AttributeValueMemberS{Value: string(entities.ProjectStatusInProgress)},
			":awaiting":    &types.AttributeValueMemberS{Value: string(entities.ProjectStatusAwaitingReview)},
			":now":         &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Project{}, mapConditionErr(err)
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func (r *ProjectDynamoRepository) SetApprovedSubmission(ctx context.Context, id, submissionID string) (entities.Project, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET approved_submission_id = :sid, updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :awaiting"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid":      &types.AttributeValueMemberS{Value: submissionID},
			":awaiting": &types.AttributeValueMemberS{Value: string(entities.ProjectStatusAwaitingReview)},
			":now":      &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Project{}, mapConditionErr(err)
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func toProjectItem(p entities.Project) projectItem {
	it := projectItem{
		ID:                   p.ID,
		ClientID:             p.ClientID,
		FreelancerID:         p.FreelancerID,
		Title:                p.Title,
		Description:          p.Description,
		Budget:               p.Budget,
		Tags:                 p.Tags,
		Status:               string(p.Status),
		ApprovedSubmissionID: p.ApprovedSubmissionID,
		CreatedAt:            p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:            p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if p.Deadline != nil {
		it.Deadline = p.Deadline.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromProjectItem(it projectItem) entities.Project {
	created, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updated, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	p := entities.Project{
		ID:                   it.ID,
		ClientID:             it.ClientID,
		FreelancerID:         it.FreelancerID,
		Title:                it.Title,
		Description:          it.Description,
		Budget:               it.Budget,
		Tags:                 it.Tags,
		Status:               entities.ProjectStatus(it.Status),
		ApprovedSubmissionID: it.ApprovedSubmissionID,
		CreatedAt:            created,
		UpdatedAt:            updated,
	}
	if it.Deadline != "" {
		if dl, err := time.Parse(time.RFC3339Nano, it.Deadline); err == nil {
			p.Deadline = &dl
		}
	}
	return p
}
