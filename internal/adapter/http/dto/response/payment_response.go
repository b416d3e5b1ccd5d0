package response

import (
	"time"

	"elektrosmeta/internal/domain/entities"
)

type PaymentResponse struct {
	PaymentID   string    `json:"payment_id"`
	ID          string    `json:"id"`
	EstimateID  string    `json:"estimate_id"`
	PaymentDate time.Time `json:"payment_date"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromEstimatePayment(p entities.EstimatePayment) PaymentResponse {
	return PaymentResponse{
		PaymentID:          p.ID,
		ID:                 p.ID,
		EstimateID:         p.EstimateID,
		PaymentDate:        p.Date,
		Date:               p.Date,
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}
