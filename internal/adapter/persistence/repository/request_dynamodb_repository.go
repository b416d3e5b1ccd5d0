package repository

import (
	"context"
	"time"

	"elektrosmeta/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultRequestsTableName = "requests"

// RequestDynamoRepository updates client request records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type RequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRequestRepository = (*RequestDynamoRepository)(nil)

func NewRequestDynamoRepository(ddb *dynamodb.Client) *RequestDynamoRepository {
	return &RequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REQUESTS_TABLE", defaultRequestsTableName),
	}
}

func (r *RequestDynamoRepository) MarkEstimateGenerated(ctx context.Context, requestID string) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: requestID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: "estimate_generated"},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
	})
	return err
}
