package usecase

import (
	"context"
	"errors"
	"testing"

	"elektrosmeta/internal/domain/entities"
	mock_interfaces "elektrosmeta/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestEstimateUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewEstimateUseCase(nil)
		_, err := uc.GetByID(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidEstimateID) {
			t.Fatalf("expected ErrInvalidEstimateID, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "e1").Return(entities.Estimate{}, errors.New("db"))

		_, err := uc.GetByID(context.Background(), "e1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "e1").Return(entities.Estimate{}, nil)

		_, err := uc.GetByID(context.Background(), "e1")
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "e1").Return(entities.Estimate{ID: "e1", GrandTotal: 260}, nil)

		got, err := uc.GetByID(context.Background(), " e1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "e1" || got.GrandTotal != 260 {
			t.Fatalf("unexpected estimate: %+v", got)
		}
	})
}
