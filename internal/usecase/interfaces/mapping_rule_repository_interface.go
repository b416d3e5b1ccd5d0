package interfaces

import (
	"context"

	"elektrosmeta/internal/domain/entities"
)

// IMappingRuleRepository abstracts read access to mapping rules.
//
// ListActiveByFormType returns only active rules, each hydrated with
// its embedded template task graph (work type, materials, equipment).
// Ordering is storage order; the engine applies its own deterministic
// priority sort.
type IMappingRuleRepository interface {
	ListActiveByFormType(ctx context.Context, formType string) ([]entities.MappingRule, error)
}
