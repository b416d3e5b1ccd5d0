package usecase

import (
	"context"
	"errors"
	"strings"

	"elektrosmeta/internal/domain/entities"
	"elektrosmeta/internal/usecase/interfaces"
)

var (
	ErrEstimateNotFound  = errors.New("estimate not found")
	ErrInvalidEstimateID = errors.New("invalid estimate id")
)

// IEstimateUseCase exposes read access to stored estimates for the
// HTTP and export adapters. Writing goes exclusively through the
// generation engine.
type IEstimateUseCase interface {
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
}

type EstimateUseCase struct {
	repo interfaces.IEstimateRepository
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.IEstimateRepository) *EstimateUseCase {
	return &EstimateUseCase{repo: repo}
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}
