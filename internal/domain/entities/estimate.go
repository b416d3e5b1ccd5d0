package entities

import "time"

// EstimateStatus represents the lifecycle of an estimate (kosztorys).
//
// Domain notes:
//   - Generation always produces a draft; sending it to the client is a
//     separate action outside the engine.
type EstimateStatus string

const (
	EstimateStatusDraft EstimateStatus = "draft"
	EstimateStatusSent  EstimateStatus = "sent"
)

// Estimate is the priced output of a generation run persisted as one
// document: header totals plus its item/material/equipment lines.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (request_id-index): request_id
//   - lines are embedded lists on the estimate item
//
// Monetary representation:
//   - totals are recomputed by the engine, never patched incrementally;
//     GrandTotal is always WorkTotal + MaterialTotal + EquipmentTotal.
type Estimate struct {
	ID          string         `json:"id"`
	RequestID   string         `json:"request_id"`
	FormID      string         `json:"form_id"`
	CompanyID   string         `json:"company_id"`
	PriceListID string         `json:"price_list_id,omitempty"`
	CreatedByID string         `json:"created_by_id"`
	Status      EstimateStatus `json:"status"`
	Version     int            `json:"version"`

	WorkTotal       float64 `json:"work_total"`
	MaterialTotal   float64 `json:"material_total"`
	EquipmentTotal  float64 `json:"equipment_total"`
	LaborHoursTotal float64 `json:"labor_hours_total"`
	GrandTotal      float64 `json:"grand_total"`
	MarginPercent   float64 `json:"margin_percent"`
	DiscountPercent float64 `json:"discount_percent"`
	FinalTotal      float64 `json:"final_total"`

	Items     []EstimateItem      `json:"items,omitempty"`
	Materials []EstimateMaterial  `json:"materials,omitempty"`
	Equipment []EstimateEquipment `json:"equipment,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ComputeFinalTotal applies margin and discount percentages to the
// grand total. Generation stores zero for both, so the stored final
// total equals the grand total until either is edited.
func (e Estimate) ComputeFinalTotal() float64 {
	return e.GrandTotal * (1 + e.MarginPercent/100) * (1 - e.DiscountPercent/100)
}

// EstimateItem is one priced work line of an estimate, traceable back
// to the template task and form answer it was expanded from.
type EstimateItem struct {
	PositionNumber int     `json:"position_number"`
	WorkTypeID     string  `json:"work_type_id,omitempty"`
	WorkCode       string  `json:"work_code"`
	WorkName       string  `json:"work_name"`
	RoomCode       string  `json:"room_code"`
	RoomName       string  `json:"room_name"`
	Unit           string  `json:"unit"`
	Quantity       float64 `json:"quantity"`
	UnitPrice      float64 `json:"unit_price"`
	TotalPrice     float64 `json:"total_price"`
	LaborHours     float64 `json:"labor_hours"`
	MaterialCost   float64 `json:"material_cost"`
	EquipmentCost  float64 `json:"equipment_cost"`

	SourceTemplateID string `json:"source_template_id,omitempty"`
	SourceAnswerID   string `json:"source_answer_id,omitempty"`
}

// EstimateMaterial is one consolidated material line of an estimate.
type EstimateMaterial struct {
	PositionNumber int     `json:"position_number"`
	MaterialID     string  `json:"material_id"`
	MaterialCode   string  `json:"material_code"`
	MaterialName   string  `json:"material_name"`
	Unit           string  `json:"unit"`
	Quantity       float64 `json:"quantity"`
	UnitPrice      float64 `json:"unit_price"`
	TotalPrice     float64 `json:"total_price"`
}

// EstimateEquipment is one consolidated equipment line of an estimate.
type EstimateEquipment struct {
	PositionNumber int     `json:"position_number"`
	EquipmentID    string  `json:"equipment_id"`
	EquipmentCode  string  `json:"equipment_code"`
	EquipmentName  string  `json:"equipment_name"`
	Unit           string  `json:"unit"`
	Quantity       float64 `json:"quantity"`
	UnitPrice      float64 `json:"unit_price"`
	TotalPrice     float64 `json:"total_price"`
}
