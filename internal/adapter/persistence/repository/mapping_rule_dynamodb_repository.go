package repository

import (
	"context"

	"elektrosmeta/internal/domain/entities"
	"elektrosmeta/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultMappingRulesTableName = "mapping_rules"

type mappingRuleItem struct {
	ID           string            `dynamodbav:"id"`
	FormType     string            `dynamodbav:"form_type"`
	RoomCode     string            `dynamodbav:"room_code"`
	WorkTypeCode string            `dynamodbav:"work_type_code,omitempty"`
	WorkCode     string            `dynamodbav:"work_code,omitempty"`
	Multiplier   float64           `dynamodbav:"multiplier"`
	Priority     int               `dynamodbav:"priority"`
	IsActive     bool              `dynamodbav:"is_active"`
	Template     *templateTaskItem `dynamodbav:"template_task,omitempty"`
}

type templateTaskItem struct {
	ID           string                  `dynamodbav:"id"`
	Code         string                  `dynamodbav:"code"`
	Name         string                  `dynamodbav:"name"`
	BaseQuantity float64                 `dynamodbav:"base_quantity"`
	LaborHours   float64                 `dynamodbav:"labor_hours"`
	WorkTypeID   string                  `dynamodbav:"work_type_id,omitempty"`
	WorkType     *workTypeItem           `dynamodbav:"work_type,omitempty"`
	Materials    []templateMaterialItem  `dynamodbav:"materials,omitempty"`
	Equipment    []templateEquipmentItem `dynamodbav:"equipment,omitempty"`
}

type workTypeItem struct {
	ID         string  `dynamodbav:"id"`
	Code       string  `dynamodbav:"code"`
	Name       string  `dynamodbav:"name"`
	Unit       string  `dynamodbav:"unit"`
	LaborHours float64 `dynamodbav:"labor_hours"`
}

type templateMaterialItem struct {
	Quantity float64          `dynamodbav:"quantity"`
	Material *catalogItemAttr `dynamodbav:"material,omitempty"`
}

type templateEquipmentItem struct {
	Quantity  float64          `dynamodbav:"quantity"`
	Equipment *catalogItemAttr `dynamodbav:"equipment,omitempty"`
}

type catalogItemAttr struct {
	ID           string  `dynamodbav:"id"`
	Code         string  `dynamodbav:"code"`
	Name         string  `dynamodbav:"name"`
	Unit         string  `dynamodbav:"unit"`
	DefaultPrice float64 `dynamodbav:"default_price"`
}

// MappingRuleDynamoRepository reads mapping rules from DynamoDB.
//
// Table requirements:
//   - PK: form_type (string)
//   - SK: id (string)
//
// The template task graph (work type, materials, equipment) is embedded
// in the rule item so one query hydrates everything the engine needs.

type MappingRuleDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMappingRuleRepository = (*MappingRuleDynamoRepository)(nil)

func NewMappingRuleDynamoRepository(ddb *dynamodb.Client) *MappingRuleDynamoRepository {
	return &MappingRuleDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MAPPING_RULES_TABLE", defaultMappingRulesTableName),
	}
}

func (r *MappingRuleDynamoRepository) ListActiveByFormType(ctx context.Context, formType string) ([]entities.MappingRule, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("form_type = :ft"),
		FilterExpression:       aws.String("is_active = :active"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ft":     &types.AttributeValueMemberS{Value: formType},
			":active": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if err != nil {
		return nil, err
	}

	rules := make([]entities.MappingRule, 0, len(out.Items))
	for _, raw := range out.Items {
		var it mappingRuleItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		rules = append(rules, fromMappingRuleItem(it))
	}
	return rules, nil
}

func fromMappingRuleItem(it mappingRuleItem) entities.MappingRule {
	return entities.MappingRule{
		ID:           it.ID,
		FormType:     it.FormType,
		RoomCode:     it.RoomCode,
		WorkTypeCode: it.WorkTypeCode,
		WorkCode:     it.WorkCode,
		Multiplier:   it.Multiplier,
		Priority:     it.Priority,
		IsActive:     it.IsActive,
		Template:     fromTemplateTaskItem(it.Template),
	}
}

func fromTemplateTaskItem(it *templateTaskItem) *entities.TemplateTask {
	if it == nil {
		return nil
	}
	tpl := &entities.TemplateTask{
		ID:           it.ID,
		Code:         it.Code,
		Name:         it.Name,
		BaseQuantity: it.BaseQuantity,
		LaborHours:   it.LaborHours,
		WorkTypeID:   it.WorkTypeID,
	}
	if it.WorkType != nil {
		tpl.WorkType = &entities.WorkType{
			ID:         it.WorkType.ID,
			Code:       it.WorkType.Code,
			Name:       it.WorkType.Name,
			Unit:       it.WorkType.Unit,
			LaborHours: it.WorkType.LaborHours,
		}
	}
	for _, m := range it.Materials {
		tpl.Materials = append(tpl.Materials, entities.TemplateMaterial{
			Quantity: m.Quantity,
			Material: fromCatalogMaterialAttr(m.Material),
		})
	}
	for _, e := range it.Equipment {
		tpl.Equipment = append(tpl.Equipment, entities.TemplateEquipment{
			Quantity:  e.Quantity,
			Equipment: fromCatalogEquipmentAttr(e.Equipment),
		})
	}
	return tpl
}

func fromCatalogMaterialAttr(it *catalogItemAttr) *entities.Material {
	if it == nil {
		return nil
	}
	return &entities.Material{
		ID:           it.ID,
		Code:         it.Code,
		Name:         it.Name,
		Unit:         it.Unit,
		DefaultPrice: it.DefaultPrice,
	}
}

func fromCatalogEquipmentAttr(it *catalogItemAttr) *entities.Equipment {
	if it == nil {
		return nil
	}
	return &entities.Equipment{
		ID:           it.ID,
		Code:         it.Code,
		Name:         it.Name,
		Unit:         it.Unit,
		DefaultPrice: it.DefaultPrice,
	}
}
