package request

import "strings"

// GenerateEstimateRequest is the payload accepted by the generation
// endpoints. Only form_id is mandatory; company_id scopes the active
// price list lookup and price_list_id forces a specific list.
type GenerateEstimateRequest struct {
	FormID      string `json:"form_id" binding:"required"`
	RequestID   string `json:"request_id"`
	CompanyID   string `json:"company_id"`
	PriceListID string `json:"price_list_id"`
	CreatedByID string `json:"created_by_id"`
}

func (r GenerateEstimateRequest) ResolveFormID() string {
	return strings.TrimSpace(r.FormID)
}
