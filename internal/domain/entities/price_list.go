package entities

import "time"

// PriceItemType discriminates price list entries.
type PriceItemType string

const (
	PriceItemWork      PriceItemType = "work"
	PriceItemMaterial  PriceItemType = "material"
	PriceItemEquipment PriceItemType = "equipment"
)

// PriceList is a company-scoped, time-bounded set of unit prices.
// At most one list is considered active for a company on a given date;
// when several windows overlap the most recent valid_from wins.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (company_id-index): company_id
type PriceList struct {
	ID        string     `json:"id"`
	CompanyID string     `json:"company_id"`
	Name      string     `json:"name"`
	IsActive  bool       `json:"is_active"`
	ValidFrom time.Time  `json:"valid_from"`
	ValidTo   *time.Time `json:"valid_to,omitempty"`
}

// CoversDate reports whether the list's validity window contains day.
// An open-ended list (nil ValidTo) covers everything from ValidFrom on.
func (pl PriceList) CoversDate(day time.Time) bool {
	if day.Before(pl.ValidFrom) {
		return false
	}
	if pl.ValidTo != nil && day.After(*pl.ValidTo) {
		return false
	}
	return true
}

// PriceListItem maps (item_type, item_id) to a unit price within one
// price list.
//
// Storage model (DynamoDB):
//   - PK: price_list_id
//   - SK: item_type#item_id
type PriceListItem struct {
	PriceListID string        `json:"price_list_id"`
	ItemType    PriceItemType `json:"item_type"`
	ItemID      string        `json:"item_id"`
	UnitPrice   float64       `json:"unit_price"`
}
