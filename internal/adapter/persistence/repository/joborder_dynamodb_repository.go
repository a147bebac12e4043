package repository

import (
	"context"
	"time"

	"homefix_api/internal/domain/entities"
	"homefix_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultJobOrdersTableName = "job_orders"

type jobOrderItem struct {
	ID        string `dynamodbav:"id"`
	ProjectID string `dynamodbav:"project_id"`

	ClientFirstName string `dynamodbav:"client_first_name"`
	ClientLastName  string `dynamodbav:"client_last_name"`
	ClientAddress   string `dynamodbav:"client_address"`
	ClientEmail     string `dynamodbav:"client_email,omitempty"`
	ClientPhone     string `dynamodbav:"client_phone,omitempty"`
	ClientMessage   string `dynamodbav:"client_message,omitempty"`

	InquiryDate string `dynamodbav:"inquiry_date"`

	JobType     string   `dynamodbav:"job_type"`
	JobServices []string `dynamodbav:"job_services"`

	JobStatus            string `dynamodbav:"job_status"`
	InquiryStatus        string `dynamodbav:"inquiry_status,omitempty"`
	JobNotificationAlert string `dynamodbav:"job_notification_alert,omitempty"`
	JobNotificationRead  bool   `dynamodbav:"job_notification_read"`

	JobInspectionDate string `dynamodbav:"job_inspection_date,omitempty"`
	JobStartDate      string `dynamodbav:"job_start_date,omitempty"`
	JobEndDate        string `dynamodbav:"job_end_date,omitempty"`
	JobExtendedDate   string `dynamodbav:"job_extended_date,omitempty"`

	JobCompletedDate      string `dynamodbav:"job_completed_date,omitempty"`
	JobCancelledDate      string `dynamodbav:"job_cancelled_date,omitempty"`
	JobCancellationReason string `dynamodbav:"job_cancellation_reason,omitempty"`
	JobPreviousStatus     string `dynamodbav:"job_previous_status,omitempty"`

	JobQuotation          string `dynamodbav:"job_quotation,omitempty"`
	JobQuotationPublicKey string `dynamodbav:"job_quotation_public_key,omitempty"`

	JobNote     string `dynamodbav:"job_note,omitempty"`
	CreatedNote string `dynamodbav:"created_note,omitempty"`
	UpdatedNote string `dynamodbav:"updated_note,omitempty"`

	CreatedBy string `dynamodbav:"created_by,omitempty"`
	UpdatedBy string `dynamodbav:"updated_by,omitempty"`

	IsArchived bool   `dynamodbav:"is_archived"`
	ArchivedAt string `dynamodbav:"archived_at,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// JobOrderDynamoRepository persists JobOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Save is a whole-item replace guarded only by attribute_exists: concurrent
// writers resolve last-write-wins, which is the accepted conflict policy.

type JobOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IJobOrderRepository = (*JobOrderDynamoRepository)(nil)

func NewJobOrderDynamoRepository(ddb *dynamodb.Client) *JobOrderDynamoRepository {
	return &JobOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("JOB_ORDERS_TABLE", defaultJobOrdersTableName),
	}
}

func (r *JobOrderDynamoRepository) Create(ctx context.Context, j entities.JobOrder) (entities.JobOrder, error) {
	av, err := attributevalue.MarshalMap(toJobOrderItem(j))
	if err != nil {
		return entities.JobOrder{}, err
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
		return entities.JobOrder{}, err
	}
	return j, nil
}

func (r *JobOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.JobOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.JobOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.JobOrder{}, nil
	}

	var it jobOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.JobOrder{}, err
	}
	return fromJobOrderItem(it), nil
}

func (r *JobOrderDynamoRepository) List(ctx context.Context, filter interfaces.JobOrderFilter) ([]entities.JobOrder, error) {
	in := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}

	expr := ""
	names := map[string]string{}
	values := map[string]types.AttributeValue{}
	if filter.Status != "" {
		expr = "#job_status = :job_status"
		names["#job_status"] = "job_status"
		values[":job_status"] = &types.AttributeValueMemberS{Value: filter.Status}
	}
	if filter.Archived != nil {
		if expr != "" {
			expr += " AND "
		}
		expr += "#is_archived = :is_archived"
		names["#is_archived"] = "is_archived"
		values[":is_archived"] = &types.AttributeValueMemberBOOL{Value: *filter.Archived}
	}
	if expr != "" {
		in.FilterExpression = aws.String(expr)
		in.ExpressionAttributeNames = names
		in.ExpressionAttributeValues = values
	}

	orders := []entities.JobOrder{}
	for {
		out, err := r.ddb.Scan(ctx, in)
		if err != nil {
			return nil, err
		}
		var items []jobOrderItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			orders = append(orders, fromJobOrderItem(it))
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return orders, nil
}

func (r *JobOrderDynamoRepository) Save(ctx context.Context, j entities.JobOrder) (entities.JobOrder, error) {
	av, err := attributevalue.MarshalMap(toJobOrderItem(j))
	if err != nil {
		return entities.JobOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.JobOrder{}, err
	}
	return j, nil
}

func (r *JobOrderDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toJobOrderItem(j entities.JobOrder) jobOrderItem {
	return jobOrderItem{
		ID:                    j.ID,
		ProjectID:             j.ProjectID,
		ClientFirstName:       j.ClientFirstName,
		ClientLastName:        j.ClientLastName,
		ClientAddress:         j.ClientAddress,
		ClientEmail:           j.ClientEmail,
		ClientPhone:           j.ClientPhone,
		ClientMessage:         j.ClientMessage,
		InquiryDate:           formatTime(j.InquiryDate),
		JobType:               j.JobType,
		JobServices:           j.JobServices,
		JobStatus:             j.JobStatus,
		InquiryStatus:         j.InquiryStatus,
		JobNotificationAlert:  j.JobNotificationAlert,
		JobNotificationRead:   j.JobNotificationRead,
		JobInspectionDate:     formatTimePtr(j.JobInspectionDate),
		JobStartDate:          formatTimePtr(j.JobStartDate),
		JobEndDate:            formatTimePtr(j.JobEndDate),
		JobExtendedDate:       formatTimePtr(j.JobExtendedDate),
		JobCompletedDate:      formatTimePtr(j.JobCompletedDate),
		JobCancelledDate:      formatTimePtr(j.JobCancelledDate),
		JobCancellationReason: j.JobCancellationReason,
		JobPreviousStatus:     j.JobPreviousStatus,
		JobQuotation:          j.JobQuotation,
		JobQuotationPublicKey: j.JobQuotationPublicKey,
		JobNote:               j.JobNote,
		CreatedNote:           strDeref(j.CreatedNote),
		UpdatedNote:           strDeref(j.UpdatedNote),
		CreatedBy:             strDeref(j.CreatedBy),
		UpdatedBy:             strDeref(j.UpdatedBy),
		IsArchived:            j.IsArchived,
		ArchivedAt:            formatTimePtr(j.ArchivedAt),
		CreatedAt:             formatTime(j.CreatedAt),
		UpdatedAt:             formatTime(j.UpdatedAt),
	}
}

func fromJobOrderItem(it jobOrderItem) entities.JobOrder {
	return entities.JobOrder{
		ID:                    it.ID,
		ProjectID:             it.ProjectID,
		ClientFirstName:       it.ClientFirstName,
		ClientLastName:        it.ClientLastName,
		ClientAddress:         it.ClientAddress,
		ClientEmail:           it.ClientEmail,
		ClientPhone:           it.ClientPhone,
		ClientMessage:         it.ClientMessage,
		InquiryDate:           parseTime(it.InquiryDate),
		JobType:               it.JobType,
		JobServices:           it.JobServices,
		JobStatus:             it.JobStatus,
		InquiryStatus:         it.InquiryStatus,
		JobNotificationAlert:  it.JobNotificationAlert,
		JobNotificationRead:   it.JobNotificationRead,
		JobInspectionDate:     parseTimePtr(it.JobInspectionDate),
		JobStartDate:          parseTimePtr(it.JobStartDate),
		JobEndDate:            parseTimePtr(it.JobEndDate),
		JobExtendedDate:       parseTimePtr(it.JobExtendedDate),
		JobCompletedDate:      parseTimePtr(it.JobCompletedDate),
		JobCancelledDate:      parseTimePtr(it.JobCancelledDate),
		JobCancellationReason: it.JobCancellationReason,
		JobPreviousStatus:     it.JobPreviousStatus,
		JobQuotation:          it.JobQuotation,
		JobQuotationPublicKey: it.JobQuotationPublicKey,
		JobNote:               it.JobNote,
		CreatedNote:           strRef(it.CreatedNote),
		UpdatedNote:           strRef(it.UpdatedNote),
		CreatedBy:             strRef(it.CreatedBy),
		UpdatedBy:             strRef(it.UpdatedBy),
		IsArchived:            it.IsArchived,
		ArchivedAt:            parseTimePtr(it.ArchivedAt),
		CreatedAt:             parseTime(it.CreatedAt),
		UpdatedAt:             parseTime(it.UpdatedAt),
	}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func parseTimePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t := parseTime(s)
	return &t
}

func strDeref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func strRef(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
