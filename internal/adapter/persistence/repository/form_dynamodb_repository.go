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
	defaultFormsTableName       = "forms"
	defaultFormAnswersTableName = "form_answers"
)

type formItem struct {
	ID        string `dynamodbav:"id"`
	RequestID string `dynamodbav:"request_id"`
	CompanyID string `dynamodbav:"company_id"`
	FormType  string `dynamodbav:"form_type"`
	Name      string `dynamodbav:"name"`
	CreatedAt string `dynamodbav:"created_at"`
}

type formAnswerItem struct {
	ID           string  `dynamodbav:"id"`
	FormID       string  `dynamodbav:"form_id"`
	RoomCode     string  `dynamodbav:"room_code"`
	RoomName     string  `dynamodbav:"room_name,omitempty"`
	RoomGroup    string  `dynamodbav:"room_group,omitempty"`
	WorkCode     string  `dynamodbav:"work_code,omitempty"`
	WorkTypeCode string  `dynamodbav:"work_type_code,omitempty"`
	Value        float64 `dynamodbav:"value"`
	IsMarked     bool    `dynamodbav:"is_marked"`
}

// FormDynamoRepository reads forms and their answers from DynamoDB.
//
// Table requirements:
//   - forms: PK id (string)
//   - form_answers: PK form_id (string), SK id (string)

type FormDynamoRepository struct {
	ddb          *dynamodb.Client
	tableName    string
	answersTable string
}

var _ interfaces.IFormRepository = (*FormDynamoRepository)(nil)

func NewFormDynamoRepository(ddb *dynamodb.Client) *FormDynamoRepository {
	return &FormDynamoRepository{
		ddb:          ddb,
		tableName:    getenvDefault("FORMS_TABLE", defaultFormsTableName),
		answersTable: getenvDefault("FORM_ANSWERS_TABLE", defaultFormAnswersTableName),
	}
}

func (r *FormDynamoRepository) GetByID(ctx context.Context, id string) (entities.Form, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Form{}, err
	}
	if len(out.Item) == 0 {
		return entities.Form{}, nil
	}

	var it formItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Form{}, err
	}
	return fromFormItem(it), nil
}

func (r *FormDynamoRepository) ListMarkedAnswers(ctx context.Context, formID string) ([]entities.FormAnswer, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.answersTable),
		KeyConditionExpression: aws.String("form_id = :fid"),
		FilterExpression:       aws.String("is_marked = :marked"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":fid":    &types.AttributeValueMemberS{Value: formID},
			":marked": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if err != nil {
		return nil, err
	}

	answers := make([]entities.FormAnswer, 0, len(out.Items))
	for _, raw := range out.Items {
		var it formAnswerItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		answers = append(answers, fromFormAnswerItem(it))
	}
	return answers, nil
}

func fromFormItem(it formItem) entities.Form {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Form{
		ID:        it.ID,
		RequestID: it.RequestID,
		CompanyID: it.CompanyID,
		FormType:  it.FormType,
		Name:      it.Name,
		CreatedAt: createdAt,
	}
}

func fromFormAnswerItem(it formAnswerItem) entities.FormAnswer {
	return entities.FormAnswer{
		ID:           it.ID,
		FormID:       it.FormID,
		RoomCode:     it.RoomCode,
		RoomName:     it.RoomName,
		RoomGroup:    it.RoomGroup,
		WorkCode:     it.WorkCode,
		WorkTypeCode: it.WorkTypeCode,
		Value:        it.Value,
		IsMarked:     it.IsMarked,
	}
}
