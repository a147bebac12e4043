package repository

import (
	"context"
	"fmt"
	"strconv"

	"homefix_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCountersTableName = "counters"

	// counterRecordID is the key of the single shared counter record.
	// Job-order, service and portfolio sequences are separate number
	// attributes on this one item.
	counterRecordID = "sequence_counters"
)

// CounterDynamoRepository issues sequence numbers via DynamoDB's ADD
// update action: a server-side atomic increment, never read-then-write, so
// concurrent callers can never observe the same value. ADD also creates the
// item (and the field) on first use, which gives us lazy initialization
// for free.

type CounterDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICounterRepository = (*CounterDynamoRepository)(nil)

func NewCounterDynamoRepository(ddb *dynamodb.Client) *CounterDynamoRepository {
	return &CounterDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COUNTERS_TABLE", defaultCountersTableName),
	}
}

func (r *CounterDynamoRepository) NextSequence(ctx context.Context, field string) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: counterRecordID},
		},
		UpdateExpression: aws.String("ADD #field :one"),
		ExpressionAttributeNames: map[string]string{
			"#field": field,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}

	attr, ok := out.Attributes[field]
	if !ok {
		return 0, fmt.Errorf("counter field %q missing from update response", field)
	}
	n, ok := attr.(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("counter field %q is not a number", field)
	}
	return strconv.ParseInt(n.Value, 10, 64)
}

// Peek returns the last issued value for a counter field without advancing
// it. Used by the portfolio repository's conditional allocation.
func (r *CounterDynamoRepository) Peek(ctx context.Context, field string) (int64, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: counterRecordID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return 0, err
	}
	if len(out.Item) == 0 {
		return 0, nil
	}
	attr, ok := out.Item[field]
	if !ok {
		return 0, nil
	}
	n, ok := attr.(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("counter field %q is not a number", field)
	}
	return strconv.ParseInt(n.Value, 10, 64)
}
