package db

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"shorten-api/internal/domain/model"
)

type DynamoHealthGateway struct {
	client    DynamoDBAPI
	tableName string
}

var _ HealthDBGateway = (*DynamoHealthGateway)(nil)

func NewDynamoHealthGateway(client DynamoDBAPI, tableName string) *DynamoHealthGateway {
	return &DynamoHealthGateway{client: client, tableName: tableName}
}

func (gateway *DynamoHealthGateway) Health() model.ComponentHealthStatus {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	out, err := gateway.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(gateway.tableName),
	})
	if err != nil {
		return model.ComponentHealthStatus{
			Status: model.StatusDown,
			Details: map[string]string{
				"message": err.Error(),
			},
		}
	}

	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"table":  gateway.tableName,
			"status": string(out.Table.TableStatus),
		},
	}
}
