package response

import "elektrosmeta/internal/usecase"

// GenerationResponse mirrors the engine's GenerationResult. The result
// object already carries its wire shape, so the response type exists
// only to keep the HTTP contract owned by this package.
type GenerationResponse struct {
	Success    bool                         `json:"success"`
	EstimateID string                       `json:"estimate_id,omitempty"`
	Items      []usecase.GeneratedItem      `json:"items"`
	Materials  []usecase.GeneratedMaterial  `json:"materials"`
	Equipment  []usecase.GeneratedEquipment `json:"equipment"`
	Totals     usecase.GenerationTotals     `json:"totals"`
	Warnings   []string                     `json:"warnings"`
	Errors     []string                     `json:"errors"`
}

func FromGenerationResult(r *usecase.GenerationResult) GenerationResponse {
	return GenerationResponse{
		Success:    r.Success,
		EstimateID: r.EstimateID,
		Items:      r.Items,
		Materials:  r.Materials,
		Equipment:  r.Equipment,
		Totals:     r.Totals,
		Warnings:   r.Warnings,
		Errors:     r.Errors,
	}
}
