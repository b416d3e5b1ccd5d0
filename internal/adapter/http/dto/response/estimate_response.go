package response

import (
	"time"

	"elektrosmeta/internal/domain/entities"
)

type EstimateResponse struct {
	EstimateID  string `json:"estimate_id"`
	ID          string `json:"id"`
	RequestID   string `json:"request_id"`
	FormID      string `json:"form_id"`
	CompanyID   string `json:"company_id"`
	PriceListID string `json:"price_list_id,omitempty"`
	CreatedByID string `json:"created_by_id,omitempty"`
	Status      string `json:"status"`
	Version     int    `json:"version"`

	WorkTotal       float64 `json:"work_total"`
	MaterialTotal   float64 `json:"material_total"`
	EquipmentTotal  float64 `json:"equipment_total"`
	LaborHoursTotal float64 `json:"labor_hours_total"`
	GrandTotal      float64 `json:"grand_total"`
	MarginPercent   float64 `json:"margin_percent"`
	DiscountPercent float64 `json:"discount_percent"`
	FinalTotal      float64 `json:"final_total"`

	Items     []entities.EstimateItem      `json:"items"`
	Materials []entities.EstimateMaterial  `json:"materials"`
	Equipment []entities.EstimateEquipment `json:"equipment"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	items := e.Items
	if items == nil {
		items = []entities.EstimateItem{}
	}
	materials := e.Materials
	if materials == nil {
		materials = []entities.EstimateMaterial{}
	}
	equipment := e.Equipment
	if equipment == nil {
		equipment = []entities.EstimateEquipment{}
	}
	return EstimateResponse{
		EstimateID:  e.ID,
		ID:          e.ID,
		RequestID:   e.RequestID,
		FormID:      e.FormID,
		CompanyID:   e.CompanyID,
		PriceListID: e.PriceListID,
		CreatedByID: e.CreatedByID,
		Status:      string(e.Status),
		Version:     e.Version,

		WorkTotal:       e.WorkTotal,
		MaterialTotal:   e.MaterialTotal,
		EquipmentTotal:  e.EquipmentTotal,
		LaborHoursTotal: e.LaborHoursTotal,
		GrandTotal:      e.GrandTotal,
		MarginPercent:   e.MarginPercent,
		DiscountPercent: e.DiscountPercent,
		FinalTotal:      e.FinalTotal,

		Items:     items,
		Materials: materials,
		Equipment: equipment,

		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
