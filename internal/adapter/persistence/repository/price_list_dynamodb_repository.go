package repository

import (
	"context"
	"fmt"
	"time"

	"elektrosmeta/internal/domain/entities"
	"elektrosmeta/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPriceListsTableName     = "price_lists"
	defaultPriceListItemsTableName = "price_list_items"
	priceListsCompanyIDIndex       = "company_id-index"
)

type priceListRecord struct {
	ID        string `dynamodbav:"id"`
	CompanyID string `dynamodbav:"company_id"`
	Name      string `dynamodbav:"name"`
	IsActive  bool   `dynamodbav:"is_active"`
	ValidFrom string `dynamodbav:"valid_from"`
	ValidTo   string `dynamodbav:"valid_to,omitempty"`
}

type priceListItemRecord struct {
	PriceListID string  `dynamodbav:"price_list_id"`
	SK          string  `dynamodbav:"sk"`
	ItemType    string  `dynamodbav:"item_type"`
	ItemID      string  `dynamodbav:"item_id"`
	UnitPrice   float64 `dynamodbav:"unit_price"`
}

// PriceListDynamoRepository reads price lists and their items from
// DynamoDB.
//
// Table requirements:
//   - price_lists: PK id (string), GSI company_id-index (PK: company_id)
//   - price_list_items: PK price_list_id (string), SK sk (string,
//     "item_type#item_id")

type PriceListDynamoRepository struct {
	ddb        *dynamodb.Client
	tableName  string
	itemsTable string
}

var _ interfaces.IPriceListRepository = (*PriceListDynamoRepository)(nil)

func NewPriceListDynamoRepository(ddb *dynamodb.Client) *PriceListDynamoRepository {
	return &PriceListDynamoRepository{
		ddb:        ddb,
		tableName:  getenvDefault("PRICE_LISTS_TABLE", defaultPriceListsTableName),
		itemsTable: getenvDefault("PRICE_LIST_ITEMS_TABLE", defaultPriceListItemsTableName),
	}
}

func (r *PriceListDynamoRepository) GetByID(ctx context.Context, id string) (entities.PriceList, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PriceList{}, err
	}
	if len(out.Item) == 0 {
		return entities.PriceList{}, nil
	}

	var rec priceListRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.PriceList{}, err
	}
	return fromPriceListRecord(rec)
}

// FindActive returns the company's active price list covering day.
// When several validity windows overlap the most recent valid_from
// wins. A zero-value list means none is active.
func (r *PriceListDynamoRepository) FindActive(ctx context.Context, companyID string, day time.Time) (entities.PriceList, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(priceListsCompanyIDIndex),
		KeyConditionExpression: aws.String("company_id = :cid"),
		FilterExpression:       aws.String("is_active = :active"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid":    &types.AttributeValueMemberS{Value: companyID},
			":active": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if err != nil {
		return entities.PriceList{}, err
	}

	var best entities.PriceList
	for _, raw := range out.Items {
		var rec priceListRecord
		if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
			return entities.PriceList{}, err
		}
		pl, err := fromPriceListRecord(rec)
		if err != nil {
			return entities.PriceList{}, err
		}
		if !pl.CoversDate(day) {
			continue
		}
		if best.ID == "" || pl.ValidFrom.After(best.ValidFrom) {
			best = pl
		}
	}
	return best, nil
}

func (r *PriceListDynamoRepository) ListItems(ctx context.Context, priceListID string) ([]entities.PriceListItem, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.itemsTable),
		KeyConditionExpression: aws.String("price_list_id = :plid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":plid": &types.AttributeValueMemberS{Value: priceListID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.PriceListItem, 0, len(out.Items))
	for _, raw := range out.Items {
		var rec priceListItemRecord
		if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
			return nil, err
		}
		items = append(items, entities.PriceListItem{
			PriceListID: rec.PriceListID,
			ItemType:    entities.PriceItemType(rec.ItemType),
			ItemID:      rec.ItemID,
			UnitPrice:   rec.UnitPrice,
		})
	}
	return items, nil
}

// fromPriceListRecord rejects malformed validity timestamps: a zero
// ValidFrom would make CoversDate accept every date.
func fromPriceListRecord(rec priceListRecord) (entities.PriceList, error) {
	validFrom, err := time.Parse(time.RFC3339Nano, rec.ValidFrom)
	if err != nil {
		return entities.PriceList{}, fmt.Errorf("price list %s: invalid valid_from: %w", rec.ID, err)
	}
	pl := entities.PriceList{
		ID:        rec.ID,
		CompanyID: rec.CompanyID,
		Name:      rec.Name,
		IsActive:  rec.IsActive,
		ValidFrom: validFrom,
	}
	if rec.ValidTo != "" {
		validTo, err := time.Parse(time.RFC3339Nano, rec.ValidTo)
		if err != nil {
			return entities.PriceList{}, fmt.Errorf("price list %s: invalid valid_to: %w", rec.ID, err)
		}
		pl.ValidTo = &validTo
	}
	return pl, nil
}
