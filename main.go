package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/navarrastar/form-autofill/pkg/api"
	"github.com/navarrastar/form-autofill/pkg/clients/brasilapi"
	"github.com/navarrastar/form-autofill/pkg/clients/viacep"
	"github.com/navarrastar/form-autofill/pkg/config"
	"github.com/navarrastar/form-autofill/pkg/logger"
	"github.com/navarrastar/form-autofill/pkg/middleware"
	"github.com/navarrastar/form-autofill/pkg/services"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file")
	}

	// Initialize configuration
	cfg := config.LoadConfig()

	if err := logger.InitLogger(cfg.GinMode); err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// Initialize API clients. No client timeout: lookups run until the transport gives up.
	viaCEPClient := viacep.NewClient(cfg.ViaCEPBaseURL, nil)
	brasilAPIClient := brasilapi.NewClient(cfg.BrasilAPIBaseURL, nil)

	// Initialize services
	formService := services.NewFormService(viaCEPClient, brasilAPIClient, cfg.FormTTL, logger.Named("autofill"))
	lookupService := services.NewLookupService(viaCEPClient, brasilAPIClient)

	gin.SetMode(cfg.GinMode)

	// Create a new Gin router with default middleware
	router := gin.Default()

	router.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	// Initialize handlers and register routes
	handlers := api.NewHandlers(formService, lookupService)
	handlers.RegisterRoutes(router)

	logger.Info("Server starting",
		zap.String("port", cfg.Port),
		zap.String("viacep", cfg.ViaCEPBaseURL),
		zap.String("brasilapi", cfg.BrasilAPIBaseURL),
		zap.Duration("form_ttl", cfg.FormTTL))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Error starting server", zap.Error(err))
	}
}
