package db

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"shorten-api/internal/domain/apperrors"
	"shorten-api/internal/domain/entity"
	"shorten-api/pkg/msg"
)

// DynamoDBAPI is the subset of the DynamoDB client the gateways use.
type DynamoDBAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

type DynamoMappingGateway struct {
	client     DynamoDBAPI
	tableName  string
	ownerIndex string
}

var _ MappingGateway = (*DynamoMappingGateway)(nil)

func NewDynamoMappingGateway(client DynamoDBAPI, tableName, ownerIndex string) *DynamoMappingGateway {
	return &DynamoMappingGateway{
		client:     client,
		tableName:  tableName,
		ownerIndex: ownerIndex,
	}
}

// Create writes the mapping with a write-if-absent condition on the short id,
// so an identifier collision fails loudly instead of replacing the earlier
// record.
func (gateway *DynamoMappingGateway) Create(ctx context.Context, mapping entity.ShortMapping) error {
	item, err := attributevalue.MarshalMap(mapping)
	if err != nil {
		return apperrors.Storage(msg.GetMessage("shortcode.error.storage"), err)
	}

	_, err = gateway.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(gateway.tableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(short_id)"),
	})
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return apperrors.Conflict(msg.GetMessage("shortcode.error.conflict", mapping.ShortID))
		}
		return apperrors.Storage(msg.GetMessage("shortcode.error.storage"), err)
	}
	return nil
}

func (gateway *DynamoMappingGateway) FindByShortID(ctx context.Context, shortID string) (*entity.ShortMapping, error) {
	out, err := gateway.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(gateway.tableName),
		Key: map[string]types.AttributeValue{
			"short_id": &types.AttributeValueMemberS{Value: shortID},
		},
	})
	if err != nil {
		return nil, apperrors.Storage(msg.GetMessage("shortcode.error.storage"), err)
	}
	if out.Item == nil {
		return nil, nil
	}

	var mapping entity.ShortMapping
	if err := attributevalue.UnmarshalMap(out.Item, &mapping); err != nil {
		return nil, apperrors.Storage(msg.GetMessage("shortcode.error.storage"), err)
	}
	return &mapping, nil
}

// FindAllByOwner queries the owner secondary index. The index range key is the
// short id, so results come back ordered by short id ascending.
func (gateway *DynamoMappingGateway) FindAllByOwner(ctx context.Context, owner string) ([]entity.ShortMapping, error) {
	mappings := make([]entity.ShortMapping, 0)

	var startKey map[string]types.AttributeValue
	for {
		out, err := gateway.client.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(gateway.tableName),
			IndexName:              aws.String(gateway.ownerIndex),
			KeyConditionExpression: aws.String("username = :username"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":username": &types.AttributeValueMemberS{Value: owner},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, apperrors.Storage(msg.GetMessage("shortcode.error.storage"), err)
		}

		var page []entity.ShortMapping
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, apperrors.Storage(msg.GetMessage("shortcode.error.storage"), err)
		}
		mappings = append(mappings, page...)

		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return mappings, nil
}
