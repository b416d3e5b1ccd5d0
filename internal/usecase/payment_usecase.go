package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"elektrosmeta/internal/domain/entities"
	"elektrosmeta/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrPaymentNotFound                = errors.New("payment not found")
	ErrInvalidPaymentEstimateID       = errors.New("invalid estimate_id")
	ErrInvalidPaymentPayload          = errors.New("invalid payment payload")
	ErrEstimateNotPayable             = errors.New("estimate has no payable total")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IEstimatePaymentUseCase encapsulates deposit-payment processing for
// saved estimates: create a provider payment for the estimate's final
// total and persist the approved result.
type IEstimatePaymentUseCase interface {
	CreateAndApprove(ctx context.Context, estimateID string, providerPayload json.RawMessage) (entities.EstimatePayment, error)
	GetByID(ctx context.Context, id string) (entities.EstimatePayment, error)
	ListByEstimateID(ctx context.Context, estimateID string) ([]entities.EstimatePayment, error)
}

type EstimatePaymentUseCase struct {
	repo         interfaces.IEstimatePaymentRepository
	estimateRepo interfaces.IEstimateRepository
	gateway      interfaces.IPaymentGateway
}

var _ IEstimatePaymentUseCase = (*EstimatePaymentUseCase)(nil)

func NewEstimatePaymentUseCase(repo interfaces.IEstimatePaymentRepository, estimateRepo interfaces.IEstimateRepository, gateway interfaces.IPaymentGateway) *EstimatePaymentUseCase {
	return &EstimatePaymentUseCase{repo: repo, estimateRepo: estimateRepo, gateway: gateway}
}

func (u *EstimatePaymentUseCase) CreateAndApprove(ctx context.Context, estimateID string, providerPayload json.RawMessage) (entities.EstimatePayment, error) {
	log := zap.L().With(zap.String("estimate_id", estimateID))
	mockMode := isPaymentGatewayMockEnabled()

	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return entities.EstimatePayment{}, ErrInvalidPaymentEstimateID
	}
	if len(providerPayload) == 0 || !json.Valid(providerPayload) {
		if !mockMode {
			return entities.EstimatePayment{}, ErrInvalidPaymentPayload
		}
		providerPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.EstimatePayment{}, errors.New("payment gateway not configured")
	}

	est, err := u.estimateRepo.GetByID(ctx, estimateID)
	if err != nil {
		log.Error("payment: failed loading estimate", zap.Error(err))
		return entities.EstimatePayment{}, err
	}
	if est.ID == "" {
		return entities.EstimatePayment{}, ErrEstimateNotFound
	}
	if !mockMode && est.FinalTotal <= 0 {
		return entities.EstimatePayment{}, ErrEstimateNotPayable
	}

	// The provider payload is client-supplied; link it to the estimate
	// and force the amount from the stored estimate, which is the source
	// of truth.
	var reqMap map[string]any
	if err := json.Unmarshal(providerPayload, &reqMap); err == nil {
		if !mockMode && !hasNonEmptyString(reqMap, "payment_method_id") {
			return entities.EstimatePayment{}, ErrInvalidPaymentPayload
		}
		if !mockMode {
			ensurePayerDefaults(reqMap)
			if !hasPayer(reqMap) {
				return entities.EstimatePayment{}, ErrInvalidPaymentPayload
			}
		}
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = estimateID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Kosztorys %s", estimateID)
		}
		reqMap["transaction_amount"] = est.FinalTotal
		if b, err := json.Marshal(reqMap); err == nil {
			providerPayload = b
		}
	}

	var (
		providerPaymentID string
		providerResp      json.RawMessage
	)
	if mockMode {
		log.Info("payment: mock mode enabled; skipping external payment gateway")
		providerPaymentID, providerResp, err = mockProviderResponse(providerPayload, estimateID, est.FinalTotal)
		if err != nil {
			return entities.EstimatePayment{}, err
		}
	} else {
		providerPaymentID, _, providerResp, err = u.gateway.CreatePayment(ctx, providerPayload)
		if err != nil {
			log.Error("payment: gateway failed", zap.Error(err))
			switch {
			case isGatewayCustomerNotFound(err):
				return entities.EstimatePayment{}, ErrPaymentGatewayCustomerNotFound
			case isGatewayUnauthorized(err):
				return entities.EstimatePayment{}, ErrPaymentGatewayUnauthorized
			case isGatewayBadRequest(err):
				return entities.EstimatePayment{}, ErrPaymentGatewayBadRequest
			default:
				return entities.EstimatePayment{}, err
			}
		}
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Warn("payment: provider response unmarshal failed", zap.Error(err))
	}

	p := entities.EstimatePayment{
		ID:                 providerPaymentID,
		EstimateID:         estimateID,
		Date:               time.Now().UTC(),
		Status:             entities.PaymentStatusApproved,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Error("payment: repository create failed", zap.String("payment_id", p.ID), zap.Error(err))
		return entities.EstimatePayment{}, err
	}
	log.Info("payment: create-and-approve success", zap.String("payment_id", created.ID))
	return created, nil
}

func (u *EstimatePaymentUseCase) GetByID(ctx context.Context, id string) (entities.EstimatePayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.EstimatePayment{}, errors.New("invalid payment id")
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.EstimatePayment{}, err
	}
	if p.ID == "" {
		return entities.EstimatePayment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *EstimatePaymentUseCase) ListByEstimateID(ctx context.Context, estimateID string) ([]entities.EstimatePayment, error) {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return nil, ErrInvalidPaymentEstimateID
	}
	return u.repo.ListByEstimateID(ctx, estimateID)
}

func mockProviderResponse(payload json.RawMessage, estimateID string, amount float64) (string, json.RawMessage, error) {
	resp := map[string]any{}
	if len(payload) > 0 && json.Valid(payload) {
		_ = json.Unmarshal(payload, &resp)
	}

	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now
	resp["date_approved"] = now
	if _, ok := resp["external_reference"]; !ok {
		resp["external_reference"] = estimateID
	}
	if _, ok := resp["transaction_amount"]; !ok {
		resp["transaction_amount"] = amount
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", nil, err
	}
	return id, b, nil
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	v, ok := m["payer"]
	if !ok {
		return false
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email")
}

func ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if !hasNonEmptyString(payer, "email") {
		if email := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")); email != "" {
			payer["email"] = email
		}
	}
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayCustomerNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
