package usecase

import "elektrosmeta/internal/domain/entities"

type priceKey struct {
	itemType entities.PriceItemType
	itemID   string
}

// priceResolver answers unit-price lookups against one price list's
// items, held in memory for the duration of a single generation run.
// The same resolver instance serves every answer in the run so a given
// (type, id) always resolves consistently.
type priceResolver struct {
	prices map[priceKey]float64
}

func newPriceResolver(items []entities.PriceListItem) *priceResolver {
	prices := make(map[priceKey]float64, len(items))
	for _, it := range items {
		prices[priceKey{itemType: it.ItemType, itemID: it.ItemID}] = it.UnitPrice
	}
	return &priceResolver{prices: prices}
}

// Resolve returns the list price for an exact (item_type, item_id)
// match, or defaultPrice when the list has no entry. An empty list
// (no active price list) resolves everything to defaults.
func (r *priceResolver) Resolve(itemType entities.PriceItemType, itemID string, defaultPrice float64) float64 {
	if price, ok := r.prices[priceKey{itemType: itemType, itemID: itemID}]; ok {
		return price
	}
	return defaultPrice
}
