package interfaces

import (
	"context"
	"time"

	"elektrosmeta/internal/domain/entities"
)

// IPriceListRepository abstracts read access to price lists.
//
// Not-found is reported as a zero-value PriceList with a nil error so
// the engine can degrade to default prices instead of failing the run.
type IPriceListRepository interface {
	GetByID(ctx context.Context, id string) (entities.PriceList, error)
	// FindActive returns the company's active list whose validity window
	// contains day; when several match, the most recent valid_from wins.
	FindActive(ctx context.Context, companyID string, day time.Time) (entities.PriceList, error)
	ListItems(ctx context.Context, priceListID string) ([]entities.PriceListItem, error)
}
