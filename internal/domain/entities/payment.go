package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the outcome of a deposit payment attempt.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// EstimatePayment is a deposit payment collected for a saved estimate
// through the external payment provider.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (estimate_id-index): estimate_id
//
// Provider payload:
//   - ProviderPayloadRaw keeps the original response body (JSON) for
//     traceability/audit.
//   - ProviderPayload is an optional parsed representation, useful for
//     querying/debugging. Schemas vary between provider integrations,
//     so both are persisted.
type EstimatePayment struct {
	ID         string        `json:"id"`
	EstimateID string        `json:"estimate_id"`
	Date       time.Time     `json:"date"`
	Status     PaymentStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
