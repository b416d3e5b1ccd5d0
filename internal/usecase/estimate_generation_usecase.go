package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"elektrosmeta/internal/domain/entities"
	"elektrosmeta/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GenerateCommand identifies the form to expand and the scope the
// price list is resolved in. PriceListID is optional; when empty the
// company's active list for today is used.
type GenerateCommand struct {
	FormID      string
	RequestID   string
	CompanyID   string
	PriceListID string
}

// GenerateAndSaveCommand additionally carries the author for the
// persisted estimate.
type GenerateAndSaveCommand struct {
	GenerateCommand
	CreatedByID string
}

// IEstimateGenerationUseCase is the estimate generation engine.
//
// Both operations always return a structured result, never a Go error:
// run-level failures set Success=false with entries in Errors, while
// per-answer problems only append Warnings.
type IEstimateGenerationUseCase interface {
	Generate(ctx context.Context, cmd GenerateCommand) *GenerationResult
	GenerateAndSave(ctx context.Context, cmd GenerateAndSaveCommand) *GenerationResult
}

type EstimateGenerationUseCase struct {
	forms      interfaces.IFormRepository
	rules      interfaces.IMappingRuleRepository
	priceLists interfaces.IPriceListRepository
	estimates  interfaces.IEstimateRepository
	requests   interfaces.IRequestRepository
	defaults   GenerationDefaults
}

var _ IEstimateGenerationUseCase = (*EstimateGenerationUseCase)(nil)

func NewEstimateGenerationUseCase(
	forms interfaces.IFormRepository,
	rules interfaces.IMappingRuleRepository,
	priceLists interfaces.IPriceListRepository,
	estimates interfaces.IEstimateRepository,
	requests interfaces.IRequestRepository,
	defaults GenerationDefaults,
) *EstimateGenerationUseCase {
	return &EstimateGenerationUseCase{
		forms:      forms,
		rules:      rules,
		priceLists: priceLists,
		estimates:  estimates,
		requests:   requests,
		defaults:   defaults,
	}
}

// Generate runs the full pipeline for one form: load form, marked
// answers, active mapping rules and price list, expand each answer,
// consolidate materials/equipment and recompute totals.
func (u *EstimateGenerationUseCase) Generate(ctx context.Context, cmd GenerateCommand) (result *GenerationResult) {
	result = newGenerationResult()

	// Any panic below becomes a single run-level error; the caller must
	// always get a structured result back.
	defer func() {
		if r := recover(); r != nil {
			zap.L().Error("generation: panic recovered", zap.String("form_id", cmd.FormID), zap.Any("panic", r))
			result.Success = false
			result.Errors = append(result.Errors, fmt.Sprintf("generation failed: %v", r))
		}
	}()

	formID := strings.TrimSpace(cmd.FormID)
	if formID == "" {
		result.Errors = append(result.Errors, "invalid form id")
		return result
	}

	form, err := u.forms.GetByID(ctx, formID)
	if err != nil || form.ID == "" {
		zap.L().Error("generation: cannot load form", zap.String("form_id", formID), zap.Error(err))
		result.Errors = append(result.Errors, "cannot load form")
		return result
	}

	answers, err := u.forms.ListMarkedAnswers(ctx, formID)
	if err != nil {
		zap.L().Error("generation: cannot load form answers", zap.String("form_id", formID), zap.Error(err))
		result.Errors = append(result.Errors, "cannot load form answers")
		return result
	}
	if len(answers) == 0 {
		result.Warnings = append(result.Warnings, "form has no marked answers")
		result.Success = true
		return result
	}

	ruleSet, err := u.rules.ListActiveByFormType(ctx, form.FormType)
	if err != nil {
		zap.L().Error("generation: cannot load mapping rules", zap.String("form_type", form.FormType), zap.Error(err))
		result.Errors = append(result.Errors, "cannot load mapping rules")
		return result
	}
	sorted := sortRulesForResolution(ruleSet)

	prices := newPriceResolver(u.loadPriceItems(ctx, cmd, result))
	expander := newTemplateExpander(u.defaults, prices)

	materialAgg := newConsumptionAggregator()
	equipmentAgg := newConsumptionAggregator()

	for _, answer := range answers {
		rule, ok := resolveRule(sorted, answer)
		if !ok {
			warning := fmt.Sprintf("no mapping rule for %s+%s", answer.RoomCode, answer.EffectiveWorkCode())
			zap.L().Warn("generation: unmatched answer",
				zap.String("room_code", answer.RoomCode),
				zap.String("work_code", answer.EffectiveWorkCode()))
			result.Warnings = append(result.Warnings, warning)
			continue
		}
		if rule.Template == nil {
			warning := fmt.Sprintf("no template task for rule %s+%s", answer.RoomCode, answer.EffectiveWorkCode())
			zap.L().Warn("generation: rule without template", zap.String("rule_id", rule.ID))
			result.Warnings = append(result.Warnings, warning)
			continue
		}

		item, materials, equipment, warnings := expander.Expand(answer, rule)
		result.Warnings = append(result.Warnings, warnings...)
		for _, line := range materials {
			materialAgg.Add(line)
		}
		for _, line := range equipment {
			equipmentAgg.Add(line)
		}
		result.Items = append(result.Items, item)
	}

	result.Materials = toGeneratedMaterials(materialAgg.Lines())
	result.Equipment = toGeneratedEquipment(equipmentAgg.Lines())
	result.Totals = calculateTotals(result.Items, result.Materials, result.Equipment)
	result.Success = true

	zap.L().Info("generation: done",
		zap.String("form_id", formID),
		zap.Int("items", len(result.Items)),
		zap.Int("warnings", len(result.Warnings)),
		zap.Float64("grand_total", result.Totals.GrandTotal))
	return result
}

// loadPriceItems resolves the price list (explicit id first, otherwise
// the company's active list for today) and returns its items. A
// missing list or unreadable items degrade to default prices with a
// warning; they never fail the run.
func (u *EstimateGenerationUseCase) loadPriceItems(ctx context.Context, cmd GenerateCommand, result *GenerationResult) []entities.PriceListItem {
	var (
		priceList entities.PriceList
		err       error
	)
	if id := strings.TrimSpace(cmd.PriceListID); id != "" {
		priceList, err = u.priceLists.GetByID(ctx, id)
	} else {
		priceList, err = u.priceLists.FindActive(ctx, cmd.CompanyID, time.Now().UTC())
	}
	if err != nil {
		zap.L().Warn("generation: cannot resolve price list", zap.String("company_id", cmd.CompanyID), zap.Error(err))
	}
	if priceList.ID == "" {
		result.Warnings = append(result.Warnings, "no active price list - default prices used")
		return nil
	}

	items, err := u.priceLists.ListItems(ctx, priceList.ID)
	if err != nil {
		zap.L().Warn("generation: cannot load price list items", zap.String("price_list_id", priceList.ID), zap.Error(err))
		result.Warnings = append(result.Warnings, "cannot load price list items - default prices used")
		return nil
	}
	return items
}

// GenerateAndSave runs Generate and persists the result when it
// succeeded. A persistence failure downgrades the already-successful
// result to Success=false but keeps the computed payload for
// diagnostics and retry.
func (u *EstimateGenerationUseCase) GenerateAndSave(ctx context.Context, cmd GenerateAndSaveCommand) *GenerationResult {
	// Persisted provenance must reference the form and request as
	// loaded, not as typed.
	cmd.FormID = strings.TrimSpace(cmd.FormID)
	cmd.RequestID = strings.TrimSpace(cmd.RequestID)

	result := u.Generate(ctx, cmd.GenerateCommand)
	if !result.Success {
		return result
	}

	// An empty generation still produces an (empty) draft estimate.
	estimate := buildEstimate(cmd, result)
	created, err := u.estimates.Create(ctx, estimate)
	if err != nil {
		zap.L().Error("generation: cannot save estimate", zap.String("form_id", cmd.FormID), zap.Error(err))
		result.Errors = append(result.Errors, fmt.Sprintf("cannot save estimate: %v", err))
		result.Success = false
		return result
	}
	result.EstimateID = created.ID

	if err := u.requests.MarkEstimateGenerated(ctx, cmd.RequestID); err != nil {
		zap.L().Warn("generation: cannot mark request", zap.String("request_id", cmd.RequestID), zap.Error(err))
		result.Warnings = append(result.Warnings, "estimate saved but request status not updated")
	}
	return result
}

func buildEstimate(cmd GenerateAndSaveCommand, result *GenerationResult) entities.Estimate {
	now := time.Now().UTC()
	e := entities.Estimate{
		ID:          uuid.NewString(),
		RequestID:   cmd.RequestID,
		FormID:      cmd.FormID,
		CompanyID:   cmd.CompanyID,
		PriceListID: cmd.PriceListID,
		CreatedByID: cmd.CreatedByID,
		Status:      entities.EstimateStatusDraft,
		Version:     1,

		WorkTotal:       result.Totals.WorkTotal,
		MaterialTotal:   result.Totals.MaterialTotal,
		EquipmentTotal:  result.Totals.EquipmentTotal,
		LaborHoursTotal: result.Totals.LaborHoursTotal,
		GrandTotal:      result.Totals.GrandTotal,
		MarginPercent:   0,
		DiscountPercent: 0,

		CreatedAt: now,
		UpdatedAt: now,
	}
	e.FinalTotal = e.ComputeFinalTotal()

	for i, item := range result.Items {
		e.Items = append(e.Items, entities.EstimateItem{
			PositionNumber:   i + 1,
			WorkTypeID:       item.WorkTypeID,
			WorkCode:         item.WorkCode,
			WorkName:         item.WorkName,
			RoomCode:         item.RoomCode,
			RoomName:         item.RoomName,
			Unit:             item.Unit,
			Quantity:         item.Quantity,
			UnitPrice:        item.UnitPrice,
			TotalPrice:       item.TotalPrice,
			LaborHours:       item.LaborHours,
			MaterialCost:     item.MaterialCost,
			EquipmentCost:    item.EquipmentCost,
			SourceTemplateID: item.SourceTemplateID,
			SourceAnswerID:   item.SourceAnswerID,
		})
	}
	for i, m := range result.Materials {
		e.Materials = append(e.Materials, entities.EstimateMaterial{
			PositionNumber: i + 1,
			MaterialID:     m.MaterialID,
			MaterialCode:   m.MaterialCode,
			MaterialName:   m.MaterialName,
			Unit:           m.Unit,
			Quantity:       m.Quantity,
			UnitPrice:      m.UnitPrice,
			TotalPrice:     m.TotalPrice,
		})
	}
	for i, eq := range result.Equipment {
		e.Equipment = append(e.Equipment, entities.EstimateEquipment{
			PositionNumber: i + 1,
			EquipmentID:    eq.EquipmentID,
			EquipmentCode:  eq.EquipmentCode,
			EquipmentName:  eq.EquipmentName,
			Unit:           eq.Unit,
			Quantity:       eq.Quantity,
			UnitPrice:      eq.UnitPrice,
			TotalPrice:     eq.TotalPrice,
		})
	}
	return e
}
