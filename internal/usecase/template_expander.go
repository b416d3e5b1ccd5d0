package usecase

import (
	"fmt"

	"elektrosmeta/internal/domain/entities"
)

// templateExpander turns a resolved (answer, rule, template) triple
// into one priced work line plus the material/equipment consumption it
// implies. One expander instance serves a whole run; it carries the
// run's defaulting policy and price resolver.
type templateExpander struct {
	defaults GenerationDefaults
	prices   *priceResolver
}

func newTemplateExpander(defaults GenerationDefaults, prices *priceResolver) *templateExpander {
	return &templateExpander{defaults: defaults, prices: prices}
}

// Expand computes the work line for one answer.
//
// quantity = answerValue × ruleMultiplier × baseQuantity, each factor
// falling back to its configured default when unset. Labor hours scale
// with quantity. Template lines whose material/equipment reference is
// missing contribute nothing and are reported as warnings.
func (x *templateExpander) Expand(answer entities.FormAnswer, rule entities.MappingRule) (GeneratedItem, []consumptionLine, []consumptionLine, []string) {
	tpl := rule.Template

	quantity := orDefault(answer.Value, x.defaults.AnswerValue) *
		orDefault(rule.Multiplier, x.defaults.Multiplier) *
		orDefault(tpl.BaseQuantity, x.defaults.BaseQuantity)

	workDefault := 0.0
	unit := x.defaults.Unit
	if tpl.WorkType != nil {
		workDefault = tpl.WorkType.LaborHours * x.defaults.LaborRate
		if tpl.WorkType.Unit != "" {
			unit = tpl.WorkType.Unit
		}
	}
	// Work prices are listed under the template task id.
	workPrice := x.prices.Resolve(entities.PriceItemWork, tpl.ID, workDefault)

	var warnings []string
	var materialCost, equipmentCost float64
	var materials, equipment []consumptionLine

	for _, tm := range tpl.Materials {
		if tm.Material == nil {
			warnings = append(warnings, fmt.Sprintf("template %s references a missing material", tpl.Code))
			continue
		}
		line := consumptionLine{
			ID:        tm.Material.ID,
			Code:      tm.Material.Code,
			Name:      tm.Material.Name,
			Unit:      tm.Material.Unit,
			Quantity:  quantity * orDefault(tm.Quantity, 1),
			UnitPrice: x.prices.Resolve(entities.PriceItemMaterial, tm.Material.ID, tm.Material.DefaultPrice),
		}
		materialCost += line.total()
		materials = append(materials, line)
	}

	for _, te := range tpl.Equipment {
		if te.Equipment == nil {
			warnings = append(warnings, fmt.Sprintf("template %s references a missing equipment entry", tpl.Code))
			continue
		}
		line := consumptionLine{
			ID:        te.Equipment.ID,
			Code:      te.Equipment.Code,
			Name:      te.Equipment.Name,
			Unit:      te.Equipment.Unit,
			Quantity:  quantity * orDefault(te.Quantity, 1),
			UnitPrice: x.prices.Resolve(entities.PriceItemEquipment, te.Equipment.ID, te.Equipment.DefaultPrice),
		}
		equipmentCost += line.total()
		equipment = append(equipment, line)
	}

	item := GeneratedItem{
		WorkTypeID:       tpl.WorkTypeID,
		WorkCode:         tpl.Code,
		WorkName:         tpl.Name,
		RoomCode:         answer.RoomCode,
		RoomName:         answer.DisplayRoomName(),
		Unit:             unit,
		Quantity:         quantity,
		UnitPrice:        workPrice,
		TotalPrice:       quantity * workPrice,
		LaborHours:       tpl.LaborHours * quantity,
		MaterialCost:     materialCost,
		EquipmentCost:    equipmentCost,
		SourceTemplateID: tpl.ID,
		SourceAnswerID:   answer.ID,
	}
	return item, materials, equipment, warnings
}
