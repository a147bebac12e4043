package repository

import (
	"context"
	"strings"

	"homefix_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultAdminsTableName = "admins"

type adminItem struct {
	ID        string `dynamodbav:"id"`
	FirstName string `dynamodbav:"first_name"`
	LastName  string `dynamodbav:"last_name"`
}

// AdminOperatorDirectory resolves operator references to display names by
// reading the admin service's accounts table. The admin service owns
// writes; this is a read-only lookup for the job-order list view.

type AdminOperatorDirectory struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOperatorDirectory = (*AdminOperatorDirectory)(nil)

func NewAdminOperatorDirectory(ddb *dynamodb.Client) *AdminOperatorDirectory {
	return &AdminOperatorDirectory{
		ddb:       ddb,
		tableName: getenvDefault("ADMINS_TABLE", defaultAdminsTableName),
	}
}

func (d *AdminOperatorDirectory) DisplayName(ctx context.Context, operatorID string) (string, error) {
	out, err := d.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(d.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: operatorID},
		},
	})
	if err != nil {
		return "", err
	}
	if len(out.Item) == 0 {
		return "", nil
	}

	var it adminItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return "", err
	}
	return strings.TrimSpace(it.FirstName + " " + it.LastName), nil
}
