package routes

import (
	"os"
	"strconv"

	_ "elektrosmeta/docs" // swag generated documentation
	"elektrosmeta/internal/adapter/export"
	"elektrosmeta/internal/adapter/http/handlers"
	"elektrosmeta/internal/adapter/persistence/repository"
	"elektrosmeta/internal/infrastructure/database"
	"elektrosmeta/internal/infrastructure/payments"
	"elektrosmeta/internal/usecase"
	"elektrosmeta/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		zap.L().Fatal("failed to start the application", zap.Error(err))
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	formRepo := repository.NewFormDynamoRepository(ddb)
	ruleRepo := repository.NewMappingRuleDynamoRepository(ddb)
	priceListRepo := repository.NewPriceListDynamoRepository(ddb)
	estimateRepo := repository.NewEstimateDynamoRepository(ddb)
	requestRepo := repository.NewRequestDynamoRepository(ddb)
	paymentRepo := repository.NewEstimatePaymentDynamoRepository(ddb)

	generationUseCase := usecase.NewEstimateGenerationUseCase(
		formRepo, ruleRepo, priceListRepo, estimateRepo, requestRepo, generationDefaultsFromEnv(),
	)
	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		zap.L().Warn("mercado pago gateway not configured", zap.Error(err))
	} else {
		paymentGateway = mpGateway
	}

	paymentUseCase := usecase.NewEstimatePaymentUseCase(paymentRepo, estimateRepo, paymentGateway)

	estimateHandler := handlers.NewEstimateHandler(generationUseCase, estimateUseCase, export.NewXLSXExporter())
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addKosztorysRoutes(v1, estimateHandler, paymentHandler)
}

func generationDefaultsFromEnv() usecase.GenerationDefaults {
	defaults := usecase.DefaultGenerationDefaults()
	if raw := os.Getenv("DEFAULT_LABOR_RATE"); raw != "" {
		if rate, err := strconv.ParseFloat(raw, 64); err == nil && rate > 0 {
			defaults.LaborRate = rate
		} else {
			zap.L().Warn("invalid DEFAULT_LABOR_RATE, using default", zap.String("value", raw))
		}
	}
	return defaults
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		zap.L().Error("recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
}
