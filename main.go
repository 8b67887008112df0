// File: classboard/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"classboard/config"
	"classboard/database"
	ledgerRepo "classboard/database/repository/ledger"
	settingsRepo "classboard/database/repository/settings"
	"classboard/handlers"
	"classboard/middleware"
	"classboard/routes"
	"classboard/services/board"
	"classboard/services/broadcast"
	"classboard/services/grades"
	ai "classboard/services/intelligence"
	"classboard/services/schedule"
	"classboard/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := utils.RegisterValidators(); err != nil {
		logger.Sugar().Fatalf("main: failed to register validators: %v", err)
	}

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	// settings store: slots and timetable.
	var store settingsRepo.Store = settingsRepo.NewMemoryStore()
	if config.AppConfig.SettingsBackend == "redis" {
		if err := utils.InitSettingsCache(); err != nil {
			logger.Warn("main: redis unavailable, settings kept in memory", zap.Error(err))
		} else {
			store = settingsRepo.NewRedisStore(utils.GetSettingsClient())
		}
	}

	// grade ledger.
	var repo ledgerRepo.LedgerRepository = ledgerRepo.NewMemoryRepository()
	var mongoClient *mongo.Client
	if config.AppConfig.LedgerBackend == "mongo" {
		if err := database.InitDB(rootCtx); err != nil {
			logger.Warn("main: MongoDB unavailable, ledger kept in memory", zap.Error(err))
		} else {
			mongoClient = database.MongoClient
			mongoRepo := ledgerRepo.NewMongoLedgerRepo(mongoClient, config.AppConfig.DatabaseName)
			if err := mongoRepo.EnsureIndexes(rootCtx); err != nil {
				logger.Warn("main: failed to ensure ledger indexes", zap.Error(err))
			}
			repo = mongoRepo
		}
	}

	// text generation.
	var gen ai.Generator = ai.UnconfiguredGenerator{}
	if config.AppConfig.GeminiAPIKey != "" {
		gemini, err := ai.NewGeminiClient(rootCtx, config.AppConfig.GeminiAPIKey)
		if err != nil {
			logger.Warn("main: Gemini client unavailable, advisor will answer with fallbacks", zap.Error(err))
		} else {
			defer gemini.Close()
			gen = gemini
		}
	} else {
		logger.Info("main: GEMINI_API_KEY not set, advisor will answer with fallbacks")
	}

	// services.
	scheduleService := schedule.NewService(store, logger.Named("schedule"))
	scheduleService.Load(rootCtx)

	ledger := grades.NewLedger(repo, logger.Named("grades"))
	ledger.Load(rootCtx)

	advisor := ai.NewAdvisor(gen, config.AppConfig.GeminiModel, config.AppConfig.AdvisorTimeout, logger.Named("advisor"))

	classBoard := board.New(
		scheduleService,
		broadcast.NewController(),
		ledger,
		advisor,
		config.AppConfig.Location(),
		logger.Named("board"),
	)
	go classBoard.Run(rootCtx, config.AppConfig.TickInterval)

	utils.StartHealthMonitor(rootCtx, utils.GetSettingsClient(), mongoClient, 30*time.Second)

	// Create the Gin router.
	router := gin.New()
	if err := middleware.TrustProxies(router, config.AppConfig.TrustedProxies); err != nil {
		logger.Sugar().Fatalf("main: invalid TRUSTED_PROXIES: %v", err)
	}
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	routes.RegisterRoutes(router, handlers.NewHandlerBundle(classBoard))

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	if err := database.CloseDB(ctx); err != nil {
		logger.Sugar().Warnf("main: closing MongoDB: %v", err)
	}
	if client := utils.GetSettingsClient(); client != nil {
		_ = client.Close()
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
