package routes

import (
	"elektrosmeta/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates = "/kosztorys/estimates"
	PathPayments  = "/kosztorys/payments"
)

func addKosztorysRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler, paymentHandler *handlers.PaymentHandler) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("/generate", estimateHandler.GenerateEstimate)
		estimates.POST("", estimateHandler.CreateEstimate)
		estimates.GET("/:id", estimateHandler.GetEstimate)
		estimates.GET("/:id/export", estimateHandler.ExportEstimate)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:estimate_id", paymentHandler.CreatePaymentByEstimateID)
		payments.GET("/:estimate_id", paymentHandler.GetPaymentByEstimateID)
	}
}
