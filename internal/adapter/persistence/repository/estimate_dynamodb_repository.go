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

const defaultEstimatesTableName = "estimates"

type estimateRecord struct {
	ID          string `dynamodbav:"id"`
	RequestID   string `dynamodbav:"request_id"`
	FormID      string `dynamodbav:"form_id"`
	CompanyID   string `dynamodbav:"company_id"`
	PriceListID string `dynamodbav:"price_list_id,omitempty"`
	CreatedByID string `dynamodbav:"created_by_id,omitempty"`
	Status      string `dynamodbav:"status"`
	Version     int    `dynamodbav:"version"`

	WorkTotal       float64 `dynamodbav:"work_total"`
	MaterialTotal   float64 `dynamodbav:"material_total"`
	EquipmentTotal  float64 `dynamodbav:"equipment_total"`
	LaborHoursTotal float64 `dynamodbav:"labor_hours_total"`
	GrandTotal      float64 `dynamodbav:"grand_total"`
	MarginPercent   float64 `dynamodbav:"margin_percent"`
	DiscountPercent float64 `dynamodbav:"discount_percent"`
	FinalTotal      float64 `dynamodbav:"final_total"`

	Items     []estimateItemRecord      `dynamodbav:"items,omitempty"`
	Materials []estimateMaterialRecord  `dynamodbav:"materials,omitempty"`
	Equipment []estimateEquipmentRecord `dynamodbav:"equipment,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

type estimateItemRecord struct {
	PositionNumber int     `dynamodbav:"position_number"`
	WorkTypeID     string  `dynamodbav:"work_type_id,omitempty"`
	WorkCode       string  `dynamodbav:"work_code"`
	WorkName       string  `dynamodbav:"work_name"`
	RoomCode       string  `dynamodbav:"room_code"`
	RoomName       string  `dynamodbav:"room_name"`
	Unit           string  `dynamodbav:"unit"`
	Quantity       float64 `dynamodbav:"quantity"`
	UnitPrice      float64 `dynamodbav:"unit_price"`
	TotalPrice     float64 `dynamodbav:"total_price"`
	LaborHours     float64 `dynamodbav:"labor_hours"`
	MaterialCost   float64 `dynamodbav:"material_cost"`
	EquipmentCost  float64 `dynamodbav:"equipment_cost"`

	SourceTemplateID string `dynamodbav:"source_template_id,omitempty"`
	SourceAnswerID   string `dynamodbav:"source_answer_id,omitempty"`
}

type estimateMaterialRecord struct {
	PositionNumber int     `dynamodbav:"position_number"`
	MaterialID     string  `dynamodbav:"material_id"`
	MaterialCode   string  `dynamodbav:"material_code"`
	MaterialName   string  `dynamodbav:"material_name"`
	Unit           string  `dynamodbav:"unit"`
	Quantity       float64 `dynamodbav:"quantity"`
	UnitPrice      float64 `dynamodbav:"unit_price"`
	TotalPrice     float64 `dynamodbav:"total_price"`
}

type estimateEquipmentRecord struct {
	PositionNumber int     `dynamodbav:"position_number"`
	EquipmentID    string  `dynamodbav:"equipment_id"`
	EquipmentCode  string  `dynamodbav:"equipment_code"`
	EquipmentName  string  `dynamodbav:"equipment_name"`
	Unit           string  `dynamodbav:"unit"`
	Quantity       float64 `dynamodbav:"quantity"`
	UnitPrice      float64 `dynamodbav:"unit_price"`
	TotalPrice     float64 `dynamodbav:"total_price"`
}

// EstimateDynamoRepository persists Estimate entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The header and all item/material/equipment lines live in one item so
// a generated estimate is saved atomically.

type EstimateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
	}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	rec := toEstimateRecord(e)
	av, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return entities.Estimate{}, err
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
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var rec estimateRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateRecord(rec), nil
}

func toEstimateRecord(e entities.Estimate) estimateRecord {
	rec := estimateRecord{
		ID:          e.ID,
		RequestID:   e.RequestID,
		FormID:      e.FormID,
		CompanyID:   e.CompanyID,
		PriceListID: e.PriceListID,
		CreatedByID: e.CreatedByID,
		Status:      string(e.Status),
		Version:     e.Version,

		WorkTotal:       e.WorkTotal,
		MaterialTotal:   e.MaterialTotal,
		EquipmentTotal:  e.EquipmentTotal,
		LaborHoursTotal: e.LaborHoursTotal,
		GrandTotal:      e.GrandTotal,
		MarginPercent:   e.MarginPercent,
		DiscountPercent: e.DiscountPercent,
		FinalTotal:      e.FinalTotal,

		CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	for _, it := range e.Items {
		rec.Items = append(rec.Items, estimateItemRecord(it))
	}
	for _, m := range e.Materials {
		rec.Materials = append(rec.Materials, estimateMaterialRecord(m))
	}
	for _, eq := range e.Equipment {
		rec.Equipment = append(rec.Equipment, estimateEquipmentRecord(eq))
	}
	return rec
}

func fromEstimateRecord(rec estimateRecord) entities.Estimate {
	createdAt, _ := time.Parse(time.RFC3339Nano, rec.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, rec.UpdatedAt)
	e := entities.Estimate{
		ID:          rec.ID,
		RequestID:   rec.RequestID,
		FormID:      rec.FormID,
		CompanyID:   rec.CompanyID,
		PriceListID: rec.PriceListID,
		CreatedByID: rec.CreatedByID,
		Status:      entities.EstimateStatus(rec.Status),
		Version:     rec.Version,

		WorkTotal:       rec.WorkTotal,
		MaterialTotal:   rec.MaterialTotal,
		EquipmentTotal:  rec.EquipmentTotal,
		LaborHoursTotal: rec.LaborHoursTotal,
		GrandTotal:      rec.GrandTotal,
		MarginPercent:   rec.MarginPercent,
		DiscountPercent: rec.DiscountPercent,
		FinalTotal:      rec.FinalTotal,

		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
	for _, it := range rec.Items {
		e.Items = append(e.Items, entities.EstimateItem(it))
	}
	for _, m := range rec.Materials {
		e.Materials = append(e.Materials, entities.EstimateMaterial(m))
	}
	for _, eq := range rec.Equipment {
		e.Equipment = append(e.Equipment, entities.EstimateEquipment(eq))
	}
	return e
}
