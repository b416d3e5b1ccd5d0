package interfaces

import (
	"context"

	"elektrosmeta/internal/domain/entities"
)

// IEstimateRepository abstracts DynamoDB persistence for Estimate.
//
// Create persists the header together with all item/material/equipment
// lines in one write; there is no partial-save contract.
type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
}

// IRequestRepository marks the originating client request once an
// estimate has been generated and saved for it.
type IRequestRepository interface {
	MarkEstimateGenerated(ctx context.Context, requestID string) error
}
