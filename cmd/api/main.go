package main

import (
	"log"

	_ "elektrosmeta/docs"
	"elektrosmeta/internal/adapter/http/routes"
	"elektrosmeta/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Kosztorys Service API
// @version         1.0
// @description     Estimate generation service (forms + mapping rules + price lists) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	if err := logger.Init(); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	routes.Run()
}
