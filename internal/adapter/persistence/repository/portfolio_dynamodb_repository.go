package repository

import (
	"context"
	"errors"
	"fmt"
	"log"

	"homefix_api/internal/domain/entities"
	"homefix_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPortfolioTableName = "portfolio"

	// maxAllocationAttempts bounds retries when concurrent creates race on
	// the portfolio sequence.
	maxAllocationAttempts = 5
)

type portfolioItem struct {
	ID             string `dynamodbav:"id"`
	PortfolioID    string `dynamodbav:"portfolio_id"`
	Title          string `dynamodbav:"title"`
	Description    string `dynamodbav:"description,omitempty"`
	ImageURL       string `dynamodbav:"image_url"`
	ImagePublicKey string `dynamodbav:"image_public_key"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// PortfolioDynamoRepository persists Portfolio entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// CreateWithSequence couples the counter bump and the insert in one
// TransactWriteItems call, conditioned on the counter still holding the
// value read beforehand: either both writes land or neither does, so a
// failed insert never burns a sequence number.

type PortfolioDynamoRepository struct {
	ddb           *dynamodb.Client
	tableName     string
	countersTable string
	counters      *CounterDynamoRepository
}

var _ interfaces.IPortfolioRepository = (*PortfolioDynamoRepository)(nil)

func NewPortfolioDynamoRepository(ddb *dynamodb.Client, counters *CounterDynamoRepository) *PortfolioDynamoRepository {
	return &PortfolioDynamoRepository{
		ddb:           ddb,
		tableName:     getenvDefault("PORTFOLIO_TABLE", defaultPortfolioTableName),
		countersTable: getenvDefault("COUNTERS_TABLE", defaultCountersTableName),
		counters:      counters,
	}
}

func (r *PortfolioDynamoRepository) CreateWithSequence(ctx context.Context, p entities.Portfolio) (entities.Portfolio, error) {
	for attempt := 0; attempt < maxAllocationAttempts; attempt++ {
		last, err := r.counters.Peek(ctx, entities.CounterFieldPortfolio)
		if err != nil {
			return entities.Portfolio{}, err
		}
		next := last + 1
		p.PortfolioID = entities.FormatPortfolioID(next)

		av, err := attributevalue.MarshalMap(toPortfolioItem(p))
		if err != nil {
			return entities.Portfolio{}, err
		}

		_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
			TransactItems: []types.TransactWriteItem{
				{
					Update: &types.Update{
						TableName: aws.String(r.countersTable),
						Key: map[string]types.AttributeValue{
							"id": &types.AttributeValueMemberS{Value: counterRecordID},
						},
						UpdateExpression:    aws.String("SET #field = :next"),
						ConditionExpression: aws.String("attribute_not_exists(#field) OR #field = :last"),
						ExpressionAttributeNames: map[string]string{
							"#field": entities.CounterFieldPortfolio,
						},
						ExpressionAttributeValues: map[string]types.AttributeValue{
							":next": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", next)},
							":last": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", last)},
						},
					},
				},
				{
					Put: &types.Put{
						TableName:           aws.String(r.tableName),
						Item:                av,
						ConditionExpression: aws.String("attribute_not_exists(#id)"),
						ExpressionAttributeNames: map[string]string{
							"#id": "id",
						},
					},
				},
			},
		})
		if err != nil {
			var tce *types.TransactionCanceledException
			if errors.As(err, &tce) && attempt < maxAllocationAttempts-1 {
				// Lost the allocation race; re-read and retry.
				log.Printf("[portfolio][repository] sequence race detected attempt=%d", attempt+1)
				continue
			}
			return entities.Portfolio{}, err
		}
		return p, nil
	}
	return entities.Portfolio{}, errors.New("portfolio sequence allocation exhausted retries")
}

func (r *PortfolioDynamoRepository) GetByID(ctx context.Context, id string) (entities.Portfolio, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Portfolio{}, err
	}
	if len(out.Item) == 0 {
		return entities.Portfolio{}, nil
	}

	var it portfolioItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Portfolio{}, err
	}
	return fromPortfolioItem(it), nil
}

func (r *PortfolioDynamoRepository) List(ctx context.Context) ([]entities.Portfolio, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}

	portfolios := []entities.Portfolio{}
	for {
		out, err := r.ddb.Scan(ctx, in)
		if err != nil {
			return nil, err
		}
		var items []portfolioItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			portfolios = append(portfolios, fromPortfolioItem(it))
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return portfolios, nil
}

func (r *PortfolioDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toPortfolioItem(p entities.Portfolio) portfolioItem {
	return portfolioItem{
		ID:             p.ID,
		PortfolioID:    p.PortfolioID,
		Title:          p.Title,
		Description:    p.Description,
		ImageURL:       p.ImageURL,
		ImagePublicKey: p.ImagePublicKey,
		CreatedAt:      formatTime(p.CreatedAt),
		UpdatedAt:      formatTime(p.UpdatedAt),
	}
}

func fromPortfolioItem(it portfolioItem) entities.Portfolio {
	return entities.Portfolio{
		ID:             it.ID,
		PortfolioID:    it.PortfolioID,
		Title:          it.Title,
		Description:    it.Description,
		ImageURL:       it.ImageURL,
		ImagePublicKey: it.ImagePublicKey,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}
