package repository

import (
	"context"
	"time"

	"elektrosmeta/internal/domain/entities"
	"elektrosmeta/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "estimate_payments"
	paymentsEstimateIDIndex  = "estimate_id-index"
)

type estimatePaymentRecord struct {
	ID                 string                 `dynamodbav:"id"`
	EstimateID         string                 `dynamodbav:"estimate_id"`
	Date               string                 `dynamodbav:"date"`
	Status             string                 `dynamodbav:"status"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// EstimatePaymentDynamoRepository persists EstimatePayment entities in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: estimate_id-index (PK: estimate_id)

type EstimatePaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimatePaymentRepository = (*EstimatePaymentDynamoRepository)(nil)

func NewEstimatePaymentDynamoRepository(ddb *dynamodb.Client) *EstimatePaymentDynamoRepository {
	return &EstimatePaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATE_PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *EstimatePaymentDynamoRepository) Create(ctx context.Context, p entities.EstimatePayment) (entities.EstimatePayment, error) {
	rec := toEstimatePaymentRecord(p)
	av, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return entities.EstimatePayment{}, err
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
		return entities.EstimatePayment{}, err
	}
	return p, nil
}

func (r *EstimatePaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.EstimatePayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.EstimatePayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.EstimatePayment{}, nil
	}

	var rec estimatePaymentRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.EstimatePayment{}, err
	}
	return fromEstimatePaymentRecord(rec), nil
}

func (r *EstimatePaymentDynamoRepository) ListByEstimateID(ctx context.Context, estimateID string) ([]entities.EstimatePayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsEstimateIDIndex),
		KeyConditionExpression: aws.String("estimate_id = :eid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":eid": &types.AttributeValueMemberS{Value: estimateID},
		},
	})
	if err != nil {
		return nil, err
	}

	payments := make([]entities.EstimatePayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var rec estimatePaymentRecord
		if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
			return nil, err
		}
		payments = append(payments, fromEstimatePaymentRecord(rec))
	}
	return payments, nil
}

func toEstimatePaymentRecord(p entities.EstimatePayment) estimatePaymentRecord {
	return estimatePaymentRecord{
		ID:                 p.ID,
		EstimateID:         p.EstimateID,
		Date:               p.Date.UTC().Format(time.RFC3339Nano),
		Status:             string(p.Status),
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromEstimatePaymentRecord(rec estimatePaymentRecord) entities.EstimatePayment {
	dt, _ := time.Parse(time.RFC3339Nano, rec.Date)
	return entities.EstimatePayment{
		ID:                 rec.ID,
		EstimateID:         rec.EstimateID,
		Date:               dt,
		Status:             entities.PaymentStatus(rec.Status),
		ProviderPayload:    rec.ProviderPayload,
		ProviderPayloadRaw: []byte(rec.ProviderPayloadRaw),
	}
}
