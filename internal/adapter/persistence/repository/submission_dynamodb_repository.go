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
	defaultSubmissionsTableName = "work_submissions"
	submissionsIDIndex          = "id-index"
)

type submissionFileItem struct {
	Filename string `dynamodbav:"filename"`
	URL      string `dynamodbav:"url"`
	Size     int64  `dynamodbav:"size,omitempty"`
}

type submissionItem struct {
	ProjectID    string               `dynamodbav:"project_id"`
	Version      int                  `dynamodbav:"version"`
	ID           string               `dynamodbav:"id"`
	FreelancerID string               `dynamodbav:"freelancer_id"`
	Files        []submissionFileItem `dynamodbav:"files,omitempty"`
	Notes        string               `dynamodbav:"notes,omitempty"`
	SubmittedAt  string               `dynamodbav:"submitted_at"`
}

// SubmissionDynamoRepository reads WorkSubmission entities from DynamoDB.
// Creation runs through the ledger store so versions stay contiguous.
//
// Table requirements:
//   - PK: project_id (string), SK: version (number)
//   - GSI: id-index (PK: id)
//
// The composite key makes each (project, version) pair unique, which is what
// keeps version numbers gap-free under concurrent submits.

type SubmissionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISubmissionRepository = (*SubmissionDynamoRepository)(nil)

func NewSubmissionDynamoRepository(ddb *dynamodb.Client) *SubmissionDynamoRepository {
	return &SubmissionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SUBMISSIONS_TABLE", defaultSubmissionsTableName),
	}
}

func (r *SubmissionDynamoRepository) GetByID(ctx context.Context, id string) (entities.WorkSubmission, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(submissionsIDIndex),
		KeyConditionExpression: aws.String("id = :id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id": &types.AttributeValueMemberS{Value: id},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.WorkSubmission{}, err
	}
	if len(out.Items) == 0 {
		return entities.WorkSubmission{}, nil
	}

	var it submissionItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.WorkSubmission{}, err
	}
	return fromSubmissionItem(it), nil
}

func (r *SubmissionDynamoRepository) GetLatestByProjectID(ctx context.Context, projectID string) (entities.WorkSubmission, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("project_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(1),
		ConsistentRead:   aws.Bool(true),
	})
	if err != nil {
		return entities.WorkSubmission{}, err
	}
	if len(out.Items) == 0 {
		return entities.WorkSubmission{}, nil
	}

	var it submissionItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.WorkSubmission{}, err
	}
	return fromSubmissionItem(it), nil
}

func (r *SubmissionDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.WorkSubmission, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("project_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
		ScanIndexForward: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.WorkSubmission, 0, len(out.Items))
	for _, raw := range out.Items {
		var it submissionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromSubmissionItem(it))
	}
	return items, nil
}

func toSubmissionItem(s entities.WorkSubmission) submissionItem {
	files := make([]submissionFileItem, 0, len(s.Files))
	for _, f := range s.Files {
		files = append(files, submissionFileItem{Filename: f.Filename, URL: f.URL, Size: f.Size})
	}
	return submissionItem{
		ProjectID:    s.ProjectID,
		Version:      s.Version,
		ID:           s.ID,
		FreelancerID: s.FreelancerID,
		Files:        files,
		Notes:        s.Notes,
		SubmittedAt:  s.SubmittedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromSubmissionItem(it submissionItem) entities.WorkSubmission {
	submitted, _ := time.Parse(time.RFC3339Nano, it.SubmittedAt)
	files := make([]entities.SubmissionFile, 0, len(it.Files))
	for _, f := range it.Files {
		files = append(files, entities.SubmissionFile{Filename: f.Filename, URL: f.URL, Size: f.Size})
	}
	return entities.WorkSubmission{
		ID:           it.ID,
		ProjectID:    it.ProjectID,
		FreelancerID: it.FreelancerID,
		Version:      it.Version,
		Files:        files,
		Notes:        it.Notes,
		SubmittedAt:  submitted,
	}
}
