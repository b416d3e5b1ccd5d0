package usecase

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"elektrosmeta/internal/domain/entities"
	mock_interfaces "elektrosmeta/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type generationMocks struct {
	forms      *mock_interfaces.MockIFormRepository
	rules      *mock_interfaces.MockIMappingRuleRepository
	priceLists *mock_interfaces.MockIPriceListRepository
	estimates  *mock_interfaces.MockIEstimateRepository
	requests   *mock_interfaces.MockIRequestRepository
}

func newGenerationUseCaseForTest(t *testing.T) (*EstimateGenerationUseCase, generationMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := generationMocks{
		forms:      mock_interfaces.NewMockIFormRepository(ctrl),
		rules:      mock_interfaces.NewMockIMappingRuleRepository(ctrl),
		priceLists: mock_interfaces.NewMockIPriceListRepository(ctrl),
		estimates:  mock_interfaces.NewMockIEstimateRepository(ctrl),
		requests:   mock_interfaces.NewMockIRequestRepository(ctrl),
	}
	uc := NewEstimateGenerationUseCase(m.forms, m.rules, m.priceLists, m.estimates, m.requests, DefaultGenerationDefaults())
	return uc, m
}

func socketKitRules() []entities.MappingRule {
	return []entities.MappingRule{
		{
			ID:         "r1",
			FormType:   "electric",
			RoomCode:   "KITCHEN",
			WorkCode:   "KIT",
			Multiplier: 2,
			Priority:   10,
			IsActive:   true,
			Template: &entities.TemplateTask{
				ID:         "tpl-1",
				Code:       "KIT",
				Name:       "Socket kit",
				LaborHours: 0.5,
				WorkTypeID: "wt-1",
				WorkType:   &entities.WorkType{ID: "wt-1", Unit: "kpl", LaborHours: 1},
				Materials: []entities.TemplateMaterial{
					{Quantity: 2, Material: &entities.Material{ID: "mat-1", Code: "CABLE", Name: "Kabel", Unit: "m", DefaultPrice: 9}},
				},
			},
		},
	}
}

func TestEstimateGenerationUseCase_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("empty form id", func(t *testing.T) {
		uc, _ := newGenerationUseCaseForTest(t)

		res := uc.Generate(ctx, GenerateCommand{FormID: "   "})
		if res.Success {
			t.Fatalf("expected failure")
		}
		if len(res.Errors) != 1 || res.Errors[0] != "invalid form id" {
			t.Fatalf("unexpected errors: %v", res.Errors)
		}
	})

	t.Run("form load error", func(t *testing.T) {
		uc, m := newGenerationUseCaseForTest(t)
		m.forms.EXPECT().GetByID(gomock.Any(), "f1").Return(entities.Form{}, errors.New("db"))

		res := uc.Generate(ctx, GenerateCommand{FormID: "f1"})
		if res.Success || len(res.Errors) != 1 || res.Errors[0] != "cannot load form" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("form not found", func(t *testing.T) {
		uc, m := newGenerationUseCaseForTest(t)
		m.forms.EXPECT().GetByID(gomock.Any(), "f1").Return(entities.Form{}, nil)

		res := uc.Generate(ctx, GenerateCommand{FormID: "f1"})
		if res.Success || len(res.Errors) != 1 || res.Errors[0] != "cannot load form" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("answers load error", func(t *testing.T) {
		uc, m := newGenerationUseCaseForTest(t)
		m.forms.EXPECT().GetByID(gomock.Any(), "f1").Return(entities.Form{ID: "f1", FormType: "electric"}, nil)
		m.forms.EXPECT().ListMarkedAnswers(gomock.Any(), "f1").Return(nil, errors.New("db"))

		res := uc.Generate(ctx, GenerateCommand{FormID: "f1"})
		if res.Success || len(res.Errors) != 1 || res.Errors[0] != "cannot load form answers" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("no marked answers succeeds with warning", func(t *testing.T) {
		uc, m := newGenerationUseCaseForTest(t)
		m.forms.EXPECT().GetByID(gomock.Any(), "f1").Return(entities.Form{ID: "f1", FormType: "electric"}, nil)
		m.forms.EXPECT().ListMarkedAnswers(gomock.Any(), "f1").Return([]entities.FormAnswer{}, nil)

		res := uc.Generate(ctx, GenerateCommand{FormID: "f1"})
		if !res.Success {
			t.Fatalf("expected success: %+v", res)
		}
		if len(res.Warnings) != 1 || res.Warnings[0] != "form has no marked answers" {
			t.Fatalf("unexpected warnings: %v", res.Warnings)
		}
		if len(res.Items) != 0 {
			t.Fatalf("expected no items")
		}
	})

	t.Run("rules load error", func(t *testing.T) {
		uc, m := newGenerationUseCaseForTest(t)
		m.forms.EXPECT().GetByID(gomock.Any(), "f1").Return(entities.Form{ID: "f1", FormType: "electric"}, nil)
		m.forms.EXPECT().ListMarkedAnswers(gomock.Any(), "f1").Return([]entities.FormAnswer{{ID: "a1", RoomCode: "KITCHEN"}}, nil)
		m.rules.EXPECT().ListActiveByFormType(gomock.Any(), "electric").Return(nil, errors.New("db"))

		res := uc.Generate(ctx, GenerateCommand{FormID: "f1"})
		if res.Success || len(res.Errors) != 1 || res.Errors[0] != "cannot load mapping rules" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("full pipeline with explicit price list", func(t *testing.T) {
		uc, m := newGenerationUseCaseForTest(t)
		m.forms.EXPECT().GetByID(gomock.Any(), "f1").Return(entities.Form{ID: "f1", FormType: "electric", CompanyID: "c1"}, nil)
		m.forms.EXPECT().ListMarkedAnswers(gomock.Any(), "f1").Return([]entities.FormAnswer{
			{ID: "a1", RoomCode: "KITCHEN", RoomName: "Kuchnia", WorkCode: "KIT", Value: 5, IsMarked: true},
		}, nil)
		m.rules.EXPECT().ListActiveByFormType(gomock.Any(), "electric").Return(socketKitRules(), nil)
		m.priceLists.EXPECT().GetByID(gomock.Any(), "pl1").Return(entities.PriceList{ID: "pl1", CompanyID: "c1"}, nil)
		m.priceLists.EXPECT().ListItems(gomock.Any(), "pl1").Return([]entities.PriceListItem{
			{ItemType: entities.PriceItemWork, ItemID: "tpl-1", UnitPrice: 20},
			{ItemType: entities.PriceItemMaterial, ItemID: "mat-1", UnitPrice: 3},
		}, nil)

		res := uc.Generate(ctx, GenerateCommand{FormID: "f1", CompanyID: "c1", PriceListID: "pl1"})
		if !res.Success {
			t.Fatalf("expected success: %+v", res)
		}
		if len(res.Warnings) != 0 {
			t.Fatalf("unexpected warnings: %v", res.Warnings)
		}
		if len(res.Items) != 1 {
			t.Fatalf("expected 1 item, got %d", len(res.Items))
		}
		item := res.Items[0]
		if item.Quantity != 10 || item.UnitPrice != 20 || item.TotalPrice != 200 || item.LaborHours != 5 {
			t.Fatalf("unexpected item: %+v", item)
		}
		if len(res.Materials) != 1 {
			t.Fatalf("expected 1 material, got %d", len(res.Materials))
		}
		mat := res.Materials[0]
		if mat.Quantity != 20 || mat.UnitPrice != 3 || mat.TotalPrice != 60 {
			t.Fatalf("unexpected material: %+v", mat)
		}
		if res.Totals.WorkTotal != 200 || res.Totals.MaterialTotal != 60 || res.Totals.GrandTotal != 260 {
			t.Fatalf("unexpected totals: %+v", res.Totals)
		}
		if res.Totals.LaborHoursTotal != 5 {
			t.Fatalf("unexpected labor hours: %v", res.Totals.LaborHoursTotal)
		}
	})

	t.Run("no active price list degrades to defaults with warning", func(t *testing.T) {
		uc, m := newGenerationUseCaseForTest(t)
		m.forms.EXPECT().GetByID(gomock.Any(), "f1").Return(entities.Form{ID: "f1", FormType: "electric", CompanyID: "c1"}, nil)
		m.forms.EXPECT().ListMarkedAnswers(gomock.Any(), "f1").Return([]entities.FormAnswer{
			{ID: "a1", RoomCode: "KITCHEN", WorkCode: "KIT", Value: 5, IsMarked: true},
		}, nil)
		m.rules.EXPECT().ListActiveByFormType(gomock.Any(), "electric").Return(socketKitRules(), nil)
		m.priceLists.EXPECT().FindActive(gomock.Any(), "c1", gomock.Any()).Return(entities.PriceList{}, nil)

		res := uc.Generate(ctx, GenerateCommand{FormID: "f1", CompanyID: "c1"})
		if !res.Success {
			t.Fatalf("expected success: %+v", res)
		}
		if len(res.Warnings) != 1 || res.Warnings[0] != "no active price list - default prices used" {
			t.Fatalf("unexpected warnings: %v", res.Warnings)
		}
		// Work falls back to 1 labor hour * rate 50, material to its
		// catalog default price.
		if res.Items[0].UnitPrice != 50 {
			t.Fatalf("expected labor-rate fallback 50, got %v", res.Items[0].UnitPrice)
		}
		if res.Materials[0].UnitPrice != 9 {
			t.Fatalf("expected catalog default 9, got %v", res.Materials[0].UnitPrice)
		}
	})

	t.Run("identical inputs generate identical results", func(t *testing.T) {
		uc, m := newGenerationUseCaseForTest(t)

		rules := append(socketKitRules(), entities.MappingRule{
			ID:       "r2",
			FormType: "electric",
			RoomCode: entities.WildcardCode,
			WorkCode: "LIGHT",
			Priority: 1,
			IsActive: true,
			Template: &entities.TemplateTask{
				ID:         "tpl-2",
				Code:       "LIGHT",
				Name:       "Oprawa",
				LaborHours: 1,
				Equipment: []entities.TemplateEquipment{
					{Quantity: 1, Equipment: &entities.Equipment{ID: "eq-1", Code: "DRILL", Unit: "szt", DefaultPrice: 15}},
				},
			},
		})
		answers := []entities.FormAnswer{
			{ID: "a1", RoomCode: "KITCHEN", WorkCode: "KIT", Value: 5, IsMarked: true},
			{ID: "a2", RoomCode: "GARAGE", WorkCode: "LIGHT", Value: 2, IsMarked: true},
		}

		m.forms.EXPECT().GetByID(gomock.Any(), "f1").Return(entities.Form{ID: "f1", FormType: "electric", CompanyID: "c1"}, nil).Times(2)
		m.forms.EXPECT().ListMarkedAnswers(gomock.Any(), "f1").Return(answers, nil).Times(2)
		m.rules.EXPECT().ListActiveByFormType(gomock.Any(), "electric").Return(rules, nil).Times(2)
		m.priceLists.EXPECT().GetByID(gomock.Any(), "pl1").Return(entities.PriceList{ID: "pl1"}, nil).Times(2)
		m.priceLists.EXPECT().ListItems(gomock.Any(), "pl1").Return([]entities.PriceListItem{
			{ItemType: entities.PriceItemWork, ItemID: "tpl-1", UnitPrice: 20},
			{ItemType: entities.PriceItemMaterial, ItemID: "mat-1", UnitPrice: 3},
			{ItemType: entities.PriceItemEquipment, ItemID: "eq-1", UnitPrice: 12},
		}, nil).Times(2)

		cmd := GenerateCommand{FormID: "f1", CompanyID: "c1", PriceListID: "pl1"}
		first := uc.Generate(ctx, cmd)
		second := uc.Generate(ctx, cmd)

		if !first.Success || !second.Success {
			t.Fatalf("expected both runs to succeed: %+v / %+v", first, second)
		}
		if len(first.Items) != 2 || len(first.Materials) != 1 || len(first.Equipment) != 1 {
			t.Fatalf("unexpected first run shape: %+v", first)
		}
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("expected identical results:\nfirst:  %+v\nsecond: %+v", first, second)
		}
	})

	t.Run("unmatched answers warn and are skipped", func(t *testing.T) {
		uc, m := newGenerationUseCaseForTest(t)
		m.forms.EXPECT().GetByID(gomock.Any(), "f1").Return(entities.Form{ID: "f1", FormType: "electric"}, nil)
		m.forms.EXPECT().ListMarkedAnswers(gomock.Any(), "f1").Return([]entities.FormAnswer{
			{ID: "a1", RoomCode: "GARAGE", WorkCode: "UNKNOWN", IsMarked: true},
		}, nil)
		m.rules.EXPECT().ListActiveByFormType(gomock.Any(), "electric").Return(socketKitRules(), nil)
		m.priceLists.EXPECT().FindActive(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.PriceList{}, nil)

		res := uc.Generate(ctx, GenerateCommand{FormID: "f1"})
		if !res.Success {
			t.Fatalf("expected success: %+v", res)
		}
		if len(res.Items) != 0 {
			t.Fatalf("expected no items")
		}
		found := false
		for _, w := range res.Warnings {
			if w == "no mapping rule for GARAGE+UNKNOWN" {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected unmatched warning, got %v", res.Warnings)
		}
	})

	t.Run("rule without template warns", func(t *testing.T) {
		uc, m := newGenerationUseCaseForTest(t)
		m.forms.EXPECT().GetByID(gomock.Any(), "f1").Return(entities.Form{ID: "f1", FormType: "electric"}, nil)
		m.forms.EXPECT().ListMarkedAnswers(gomock.Any(), "f1").Return([]entities.FormAnswer{
			{ID: "a1", RoomCode: "KITCHEN", WorkCode: "KIT", IsMarked: true},
		}, nil)
		m.rules.EXPECT().ListActiveByFormType(gomock.Any(), "electric").Return([]entities.MappingRule{
			{ID: "r1", RoomCode: "KITCHEN", WorkCode: "KIT", Priority: 1, IsActive: true},
		}, nil)
		m.priceLists.EXPECT().FindActive(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.PriceList{}, nil)

		res := uc.Generate(ctx, GenerateCommand{FormID: "f1"})
		if !res.Success || len(res.Items) != 0 {
			t.Fatalf("unexpected result: %+v", res)
		}
		found := false
		for _, w := range res.Warnings {
			if w == "no template task for rule KITCHEN+KIT" {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected template warning, got %v", res.Warnings)
		}
	})
}

func TestEstimateGenerationUseCase_GenerateAndSave(t *testing.T) {
	ctx := context.Background()

	expectHappyPipeline := func(m generationMocks) {
		m.forms.EXPECT().GetByID(gomock.Any(), "f1").Return(entities.Form{ID: "f1", FormType: "electric", CompanyID: "c1"}, nil)
		m.forms.EXPECT().ListMarkedAnswers(gomock.Any(), "f1").Return([]entities.FormAnswer{
			{ID: "a1", RoomCode: "KITCHEN", WorkCode: "KIT", Value: 5, IsMarked: true},
		}, nil)
		m.rules.EXPECT().ListActiveByFormType(gomock.Any(), "electric").Return(socketKitRules(), nil)
		m.priceLists.EXPECT().GetByID(gomock.Any(), "pl1").Return(entities.PriceList{ID: "pl1"}, nil)
		m.priceLists.EXPECT().ListItems(gomock.Any(), "pl1").Return([]entities.PriceListItem{
			{ItemType: entities.PriceItemWork, ItemID: "tpl-1", UnitPrice: 20},
			{ItemType: entities.PriceItemMaterial, ItemID: "mat-1", UnitPrice: 3},
		}, nil)
	}

	cmd := GenerateAndSaveCommand{
		GenerateCommand: GenerateCommand{FormID: "f1", RequestID: "req-1", CompanyID: "c1", PriceListID: "pl1"},
		CreatedByID:     "user-1",
	}

	t.Run("saves draft estimate and marks request", func(t *testing.T) {
		uc, m := newGenerationUseCaseForTest(t)
		expectHappyPipeline(m)
		m.estimates.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimate{})).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if e.ID == "" || e.Status != entities.EstimateStatusDraft || e.Version != 1 {
					t.Fatalf("unexpected estimate header: %+v", e)
				}
				if e.RequestID != "req-1" || e.FormID != "f1" || e.CreatedByID != "user-1" {
					t.Fatalf("unexpected provenance: %+v", e)
				}
				if e.GrandTotal != 260 || e.FinalTotal != 260 {
					t.Fatalf("unexpected totals: %+v", e)
				}
				if len(e.Items) != 1 || e.Items[0].PositionNumber != 1 {
					t.Fatalf("unexpected items: %+v", e.Items)
				}
				if len(e.Materials) != 1 || e.Materials[0].PositionNumber != 1 {
					t.Fatalf("unexpected materials: %+v", e.Materials)
				}
				if e.CreatedAt.IsZero() || e.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return e, nil
			},
		)
		m.requests.EXPECT().MarkEstimateGenerated(gomock.Any(), "req-1").Return(nil)

		res := uc.GenerateAndSave(ctx, cmd)
		if !res.Success {
			t.Fatalf("expected success: %+v", res)
		}
		if res.EstimateID == "" {
			t.Fatalf("expected estimate id")
		}
	})

	t.Run("stores trimmed form and request ids", func(t *testing.T) {
		uc, m := newGenerationUseCaseForTest(t)
		expectHappyPipeline(m)
		m.estimates.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if e.FormID != "f1" || e.RequestID != "req-1" {
					t.Fatalf("expected trimmed provenance, got form %q request %q", e.FormID, e.RequestID)
				}
				return e, nil
			},
		)
		m.requests.EXPECT().MarkEstimateGenerated(gomock.Any(), "req-1").Return(nil)

		res := uc.GenerateAndSave(ctx, GenerateAndSaveCommand{
			GenerateCommand: GenerateCommand{FormID: " f1 ", RequestID: " req-1 ", CompanyID: "c1", PriceListID: "pl1"},
			CreatedByID:     "user-1",
		})
		if !res.Success {
			t.Fatalf("expected success: %+v", res)
		}
	})

	t.Run("persist failure downgrades success but keeps payload", func(t *testing.T) {
		uc, m := newGenerationUseCaseForTest(t)
		expectHappyPipeline(m)
		m.estimates.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Estimate{}, errors.New("db down"))

		res := uc.GenerateAndSave(ctx, cmd)
		if res.Success {
			t.Fatalf("expected failure")
		}
		if len(res.Items) != 1 || res.Totals.GrandTotal != 260 {
			t.Fatalf("expected computed payload kept: %+v", res)
		}
		if len(res.Errors) != 1 || !strings.HasPrefix(res.Errors[0], "cannot save estimate:") {
			t.Fatalf("unexpected errors: %v", res.Errors)
		}
		if res.EstimateID != "" {
			t.Fatalf("expected no estimate id")
		}
	})

	t.Run("request marking failure is only a warning", func(t *testing.T) {
		uc, m := newGenerationUseCaseForTest(t)
		expectHappyPipeline(m)
		m.estimates.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) { return e, nil },
		)
		m.requests.EXPECT().MarkEstimateGenerated(gomock.Any(), "req-1").Return(errors.New("db"))

		res := uc.GenerateAndSave(ctx, cmd)
		if !res.Success {
			t.Fatalf("expected success: %+v", res)
		}
		found := false
		for _, w := range res.Warnings {
			if w == "estimate saved but request status not updated" {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected marking warning, got %v", res.Warnings)
		}
	})

	t.Run("generation failure skips persistence", func(t *testing.T) {
		uc, m := newGenerationUseCaseForTest(t)
		m.forms.EXPECT().GetByID(gomock.Any(), "f1").Return(entities.Form{}, errors.New("db"))

		res := uc.GenerateAndSave(ctx, cmd)
		if res.Success {
			t.Fatalf("expected failure")
		}
	})
}
