package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"elektrosmeta/internal/adapter/http/handlers/mocks"
	"elektrosmeta/internal/domain/entities"
	"elektrosmeta/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func TestPaymentHandler_CreatePaymentByEstimateID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimatePaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/kosztorys/payments/:estimate_id", h.CreatePaymentByEstimateID)

		req := httptest.NewRequest(http.MethodPost, "/kosztorys/payments/e1", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid payload tolerated in mock mode", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "1")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimatePaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/kosztorys/payments/:estimate_id", h.CreatePaymentByEstimateID)

		uc.EXPECT().CreateAndApprove(gomock.Any(), "e1", json.RawMessage("{}")).Return(entities.EstimatePayment{ID: "p1", EstimateID: "e1", Status: entities.PaymentStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodPost, "/kosztorys/payments/e1", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("usecase mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimatePaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/kosztorys/payments/:estimate_id", h.CreatePaymentByEstimateID)

		uc.EXPECT().CreateAndApprove(gomock.Any(), "e1", gomock.Any()).Return(entities.EstimatePayment{}, usecase.ErrEstimateNotPayable)

		req := httptest.NewRequest(http.MethodPost, "/kosztorys/payments/e1", bytes.NewBufferString(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimatePaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/kosztorys/payments/:estimate_id", h.CreatePaymentByEstimateID)

		now := time.Now().UTC()
		uc.EXPECT().CreateAndApprove(gomock.Any(), "e1", gomock.Any()).Return(entities.EstimatePayment{ID: "p1", EstimateID: "e1", Date: now, Status: entities.PaymentStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodPost, "/kosztorys/payments/e1", bytes.NewBufferString(`{"provider_payload":{"payment_method_id":"pix","payer":{"email":"x@test.com"}}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["payment_id"] != "p1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_GetPaymentByEstimateID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")

	t.Run("list error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimatePaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/kosztorys/payments/:estimate_id", h.GetPaymentByEstimateID)

		uc.EXPECT().ListByEstimateID(gomock.Any(), "e1").Return(nil, usecase.ErrInvalidPaymentEstimateID)

		req := httptest.NewRequest(http.MethodGet, "/kosztorys/payments/e1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimatePaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/kosztorys/payments/:estimate_id", h.GetPaymentByEstimateID)

		uc.EXPECT().ListByEstimateID(gomock.Any(), "e1").Return([]entities.EstimatePayment{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/kosztorys/payments/e1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success returns latest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimatePaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/kosztorys/payments/:estimate_id", h.GetPaymentByEstimateID)

		old := entities.EstimatePayment{ID: "old", EstimateID: "e1", Date: time.Now().Add(-time.Hour), Status: entities.PaymentStatusPending}
		latest := entities.EstimatePayment{ID: "latest", EstimateID: "e1", Date: time.Now(), Status: entities.PaymentStatusApproved}
		uc.EXPECT().ListByEstimateID(gomock.Any(), "e1").Return([]entities.EstimatePayment{old, latest}, nil)

		req := httptest.NewRequest(http.MethodGet, "/kosztorys/payments/e1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["payment_id"] != "latest" {
			t.Fatalf("expected latest payment, got body: %s", w.Body.String())
		}
	})
}

func TestReadProviderPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	makeCtx := func(raw string) *gin.Context {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(raw))
		c.Request.Header.Set("Content-Type", "application/json")
		return c
	}

	ctxReadErr := makeCtx("{}")
	ctxReadErr.Request.Body = failingReadCloser{}
	if _, err := readProviderPayload(ctxReadErr); err == nil {
		t.Fatalf("expected read body error")
	}

	if _, err := readProviderPayload(makeCtx("{invalid")); err == nil {
		t.Fatalf("expected invalid json error")
	}

	payload, err := readProviderPayload(makeCtx("   "))
	if err != nil || string(payload) != "{}" {
		t.Fatalf("expected {}, got payload=%s err=%v", string(payload), err)
	}

	if _, err := readProviderPayload(makeCtx(`{"provider_payload":null}`)); err == nil {
		t.Fatalf("expected empty provider_payload error")
	}

	payload, err = readProviderPayload(makeCtx(`{"provider_payload":{"a":1}}`))
	if err != nil || string(payload) != `{"a":1}` {
		t.Fatalf("expected wrapped payload, got %s err=%v", payload, err)
	}

	payload, err = readProviderPayload(makeCtx(`{"payment_method_id":"pix"}`))
	if err != nil || string(payload) != `{"payment_method_id":"pix"}` {
		t.Fatalf("expected raw body payload, got %s err=%v", payload, err)
	}
}

func TestMapPaymentError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidPaymentEstimateID, http.StatusBadRequest},
		{usecase.ErrInvalidPaymentPayload, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayBadRequest, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayCustomerNotFound, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayUnauthorized, http.StatusUnauthorized},
		{usecase.ErrEstimateNotFound, http.StatusNotFound},
		{usecase.ErrEstimateNotPayable, http.StatusConflict},
		{usecase.ErrPaymentNotFound, http.StatusNotFound},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapPaymentError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
