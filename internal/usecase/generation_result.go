package usecase

// GenerationTotals carries the recomputed sums of one generation run.
// GrandTotal is always WorkTotal + MaterialTotal + EquipmentTotal; the
// engine recomputes every total from the final line lists instead of
// patching them incrementally.
type GenerationTotals struct {
	WorkTotal       float64 `json:"workTotal"`
	MaterialTotal   float64 `json:"materialTotal"`
	EquipmentTotal  float64 `json:"equipmentTotal"`
	LaborHoursTotal float64 `json:"laborHoursTotal"`
	GrandTotal      float64 `json:"grandTotal"`
}

// GeneratedItem is one priced work line produced from a single form
// answer, with provenance back to the template task and answer.
type GeneratedItem struct {
	WorkTypeID    string  `json:"work_type_id,omitempty"`
	WorkCode      string  `json:"work_code"`
	WorkName      string  `json:"work_name"`
	RoomCode      string  `json:"room_code"`
	RoomName      string  `json:"room_name"`
	Unit          string  `json:"unit"`
	Quantity      float64 `json:"quantity"`
	UnitPrice     float64 `json:"unit_price"`
	TotalPrice    float64 `json:"total_price"`
	LaborHours    float64 `json:"labor_hours"`
	MaterialCost  float64 `json:"material_cost"`
	EquipmentCost float64 `json:"equipment_cost"`

	SourceTemplateID string `json:"source_template_id,omitempty"`
	SourceAnswerID   string `json:"source_answer_id,omitempty"`
}

// GeneratedMaterial is one material consolidated across the whole run.
// Quantity and TotalPrice accumulate over every contributing line;
// UnitPrice is fixed at first resolution of the material id.
type GeneratedMaterial struct {
	MaterialID   string  `json:"material_id"`
	MaterialCode string  `json:"material_code"`
	MaterialName string  `json:"material_name"`
	Unit         string  `json:"unit"`
	Quantity     float64 `json:"quantity"`
	UnitPrice    float64 `json:"unit_price"`
	TotalPrice   float64 `json:"total_price"`
}

// GeneratedEquipment is one equipment entry consolidated across the
// whole run, accumulated the same way as GeneratedMaterial.
type GeneratedEquipment struct {
	EquipmentID   string  `json:"equipment_id"`
	EquipmentCode string  `json:"equipment_code"`
	EquipmentName string  `json:"equipment_name"`
	Unit          string  `json:"unit"`
	Quantity      float64 `json:"quantity"`
	UnitPrice     float64 `json:"unit_price"`
	TotalPrice    float64 `json:"total_price"`
}

// GenerationResult is the sole output of a generation run. The caller
// always receives a populated result object: per-answer problems land
// in Warnings, run-level failures in Errors with Success=false.
type GenerationResult struct {
	Success    bool                 `json:"success"`
	EstimateID string               `json:"estimate_id,omitempty"`
	Items      []GeneratedItem      `json:"items"`
	Materials  []GeneratedMaterial  `json:"materials"`
	Equipment  []GeneratedEquipment `json:"equipment"`
	Totals     GenerationTotals     `json:"totals"`
	Warnings   []string             `json:"warnings"`
	Errors     []string             `json:"errors"`
}

func newGenerationResult() *GenerationResult {
	return &GenerationResult{
		Items:     []GeneratedItem{},
		Materials: []GeneratedMaterial{},
		Equipment: []GeneratedEquipment{},
		Warnings:  []string{},
		Errors:    []string{},
	}
}
