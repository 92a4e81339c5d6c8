package routes

import (
	"log"
	"net/http"
	"os"

	_ "github.com/MBARUDI/menthorhub-backend/docs" // This will be auto-generated
	"github.com/MBARUDI/menthorhub-backend/internal/adapter/http/handlers"
	"github.com/MBARUDI/menthorhub-backend/internal/adapter/persistence/repository"
	"github.com/MBARUDI/menthorhub-backend/internal/infrastructure/config"
	"github.com/MBARUDI/menthorhub-backend/internal/infrastructure/database"
	"github.com/MBARUDI/menthorhub-backend/internal/infrastructure/payments"
	"github.com/MBARUDI/menthorhub-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	ddb := database.ConnectDynamoDB()
	usersRepo := repository.NewUserAccessDynamoRepository(ddb)

	gateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken)
	if err != nil {
		// The service is useless without a provider; refuse to start.
		log.Fatalf("Mercado Pago gateway not configured: %v", err)
	}

	intentUseCase := usecase.NewPaymentIntentUseCase(gateway, usecase.PaymentIntentConfig{
		PixAmount:       cfg.PixAmount,
		PixDescription:  cfg.PixDescription,
		NotificationURL: cfg.NotificationURL,
	})
	webhookUseCase := usecase.NewWebhookUseCase(gateway, usersRepo)

	intentHandler := handlers.NewPaymentIntentHandler(intentUseCase)
	webhookHandler := handlers.NewWebhookHandler(webhookUseCase)

	// Rotas publicas
	root := router.Group("/")
	addPingRoutes(root)
	addPaymentRoutes(root, intentHandler, webhookHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(corsMiddleware())
}

// corsMiddleware opens the API to the site's checkout pages.
func corsMiddleware() gin.HandlerFunc {
	allowOrigin := os.Getenv("CORS_ALLOW_ORIGIN")
	if allowOrigin == "" {
		allowOrigin = "*"
	}
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", allowOrigin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
