package interfaces

import (
	"context"

	"elektrosmeta/internal/domain/entities"
)

// IFormRepository abstracts read access to forms and their answers.
//
// The generation engine needs:
//   - the form header (to learn form_type and company scope)
//   - the marked answers only; unmarked rows never reach the engine
type IFormRepository interface {
	GetByID(ctx context.Context, formID string) (entities.Form, error)
	ListMarkedAnswers(ctx context.Context, formID string) ([]entities.FormAnswer, error)
}
