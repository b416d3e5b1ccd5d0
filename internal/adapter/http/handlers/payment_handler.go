package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strings"

	response "elektrosmeta/internal/adapter/http/dto/response"
	"elektrosmeta/internal/usecase"
	"elektrosmeta/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler handles HTTP requests for estimate deposit payments.

type PaymentHandler struct {
	usecase usecase.IEstimatePaymentUseCase
}

func NewPaymentHandler(uc usecase.IEstimatePaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreatePaymentByEstimateID creates/approves a payment using estimate_id in path.
func (h *PaymentHandler) CreatePaymentByEstimateID(c *gin.Context) {
	estimateID := c.Param("estimate_id")
	log := zap.L().With(zap.String("estimate_id", estimateID))
	mockMode := isPaymentGatewayMockEnabled()
	payload, err := readProviderPayload(c)
	if err != nil {
		if mockMode {
			log.Warn("payment: payload invalid in mock mode, falling back to empty payload", zap.Error(err))
			payload = json.RawMessage("{}")
		} else {
			log.Warn("payment: invalid payload", zap.Error(err))
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), estimateID, payload)
	if err != nil {
		log.Warn("payment: create failed", zap.Error(err))
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Info("payment: created", zap.String("payment_id", created.ID), zap.String("status", string(created.Status)))

	c.JSON(http.StatusOK, response.FromEstimatePayment(created))
}

// GetPaymentByEstimateID returns the latest payment for an estimate.
func (h *PaymentHandler) GetPaymentByEstimateID(c *gin.Context) {
	estimateID := c.Param("estimate_id")

	payments, err := h.usecase.ListByEstimateID(c.Request.Context(), estimateID)
	if err != nil {
		zap.L().Warn("payment: list failed", zap.String("estimate_id", estimateID), zap.Error(err))
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if len(payments) == 0 {
		appErr := pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}

	c.JSON(http.StatusOK, response.FromEstimatePayment(latest))
}

func readProviderPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["provider_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("provider_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentEstimateID), errors.Is(err, usecase.ErrInvalidPaymentPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this payment provider context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateNotPayable):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_PAYABLE", "Estimate has no payable total", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	v = strings.ToLower(strings.TrimSpace(os.Getenv("MERCADOPAGO_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	return false
}
