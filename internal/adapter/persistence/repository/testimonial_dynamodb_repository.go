package repository

import (
	"context"
	"errors"
	"time"

	"homefix_api/internal/domain/entities"
	"homefix_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultTestimonialsTableName = "testimonials"

type testimonialItem struct {
	JobID      string `dynamodbav:"job_id"`
	ClientName string `dynamodbav:"client_name"`
	Rating     int    `dynamodbav:"rating"`
	Message    string `dynamodbav:"message"`
	Status     string `dynamodbav:"status"`
	IsRead     bool   `dynamodbav:"is_read"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// TestimonialDynamoRepository persists Testimonial entities in DynamoDB.
//
// Table requirements:
//   - PK: job_id (string)
//
// We purposely use the job-order id as PK to guarantee 1 testimonial per
// job order: a second submit fails the conditional put.

type TestimonialDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITestimonialRepository = (*TestimonialDynamoRepository)(nil)

func NewTestimonialDynamoRepository(ddb *dynamodb.Client) *TestimonialDynamoRepository {
	return &TestimonialDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TESTIMONIALS_TABLE", defaultTestimonialsTableName),
	}
}

func (r *TestimonialDynamoRepository) Create(ctx context.Context, t entities.Testimonial) (entities.Testimonial, error) {
	av, err := attributevalue.MarshalMap(toTestimonialItem(t))
	if err != nil {
		return entities.Testimonial{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#job_id)"),
		ExpressionAttributeNames: map[string]string{
			"#job_id": "job_id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Testimonial{}, nil
		}
		return entities.Testimonial{}, err
	}
	return t, nil
}

func (r *TestimonialDynamoRepository) GetByJobID(ctx context.Context, jobID string) (entities.Testimonial, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"job_id": &types.AttributeValueMemberS{Value: jobID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Testimonial{}, err
	}
	if len(out.Item) == 0 {
		return entities.Testimonial{}, nil
	}

	var it testimonialItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Testimonial{}, err
	}
	return fromTestimonialItem(it), nil
}

func (r *TestimonialDynamoRepository) List(ctx context.Context) ([]entities.Testimonial, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}

	testimonials := []entities.Testimonial{}
	for {
		out, err := r.ddb.Scan(ctx, in)
		if err != nil {
			return nil, err
		}
		var items []testimonialItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			testimonials = append(testimonials, fromTestimonialItem(it))
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return testimonials, nil
}

func (r *TestimonialDynamoRepository) UpdateStatus(ctx context.Context, jobID string, status entities.TestimonialStatus) (entities.Testimonial, error) {
	return r.update(ctx, jobID, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *TestimonialDynamoRepository) MarkRead(ctx context.Context, jobID string) (entities.Testimonial, error) {
	return r.update(ctx, jobID, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #is_read = :is_read, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":is_read":    &types.AttributeValueMemberBOOL{Value: true},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#is_read":    "is_read",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *TestimonialDynamoRepository) update(
	ctx context.Context,
	jobID string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Testimonial, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"job_id": &types.AttributeValueMemberS{Value: jobID},
		},
		ConditionExpression:       aws.String("attribute_exists(#job_id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#job_id": "job_id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Testimonial{}, nil
		}
		return entities.Testimonial{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Testimonial{}, nil
	}
	var it testimonialItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Testimonial{}, err
	}
	return fromTestimonialItem(it), nil
}

func toTestimonialItem(t entities.Testimonial) testimonialItem {
	return testimonialItem{
		JobID:      t.JobID,
		ClientName: t.ClientName,
		Rating:     t.Rating,
		Message:    t.Message,
		Status:     string(t.Status),
		IsRead:     t.IsRead,
		CreatedAt:  formatTime(t.CreatedAt),
		UpdatedAt:  formatTime(t.UpdatedAt),
	}
}

func fromTestimonialItem(it testimonialItem) entities.Testimonial {
	return entities.Testimonial{
		JobID:      it.JobID,
		ClientName: it.ClientName,
		Rating:     it.Rating,
		Message:    it.Message,
		Status:     entities.TestimonialStatus(it.Status),
		IsRead:     it.IsRead,
		CreatedAt:  parseTime(it.CreatedAt),
		UpdatedAt:  parseTime(it.UpdatedAt),
	}
}
