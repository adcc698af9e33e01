package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"receipt-desk/internal/api"
	"receipt-desk/internal/api/handlers"
	"receipt-desk/internal/jobs"
	"receipt-desk/internal/repository"
	"receipt-desk/internal/service"
	"receipt-desk/pkg/auth"
	"receipt-desk/pkg/cache"
	"receipt-desk/pkg/config"
	"receipt-desk/pkg/logger"
	"receipt-desk/pkg/postgres"
	"receipt-desk/pkg/storage"

	"go.uber.org/zap"
)

// @title receipt-desk API
// @version 1.0
// @description Daily deposit receipts: partner uploads, admin review and payout totals

// @contact.name API Support

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting receipt-desk service")

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	location := cfg.Business.Location()
	appLogger.Info("Business time zone", zap.String("timezone", location.String()))

	// Repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	companyRepo := repository.NewCompanyRepository(db, appLogger)
	txRepo := repository.NewTransactionRepository(db, appLogger)
	trackingRepo := repository.NewDailyTrackingRepository(db, appLogger)
	settingRepo := repository.NewSettingRepository(db, appLogger)
	credentialRepo := repository.NewCredentialRepository(db, appLogger)

	// Optional settings cache
	var settingsCache service.SettingsCache
	rdb, err := cache.NewRedisClient(ctx, &cfg.Redis, appLogger)
	if err != nil {
		appLogger.Warn("Redis unavailable, settings cache disabled", zap.Error(err))
	} else if rdb != nil {
		defer rdb.Close()
		settingsCache = cache.NewRedisCache(rdb, "receipt-desk:settings:")
	}

	blobs, uploadsDir, closeBlobs := newBlobStore(ctx, &cfg.Storage, appLogger)
	defer closeBlobs()

	var extractor service.Extractor
	if cfg.Extraction.Enabled && cfg.GigaChat.APIKey != "" {
		gigaChat, err := service.NewGigaChatExtractor(ctx, &cfg.GigaChat, appLogger)
		if err != nil {
			appLogger.Warn("GigaChat unavailable, receipt scan suggestions disabled", zap.Error(err))
		} else {
			defer gigaChat.Close()
			extractor = gigaChat
		}
	} else {
		appLogger.Info("Receipt extraction disabled")
	}

	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Services
	authService := service.NewAuthService(userRepo, jwtManager, appLogger)
	settingsService := service.NewSettingsService(settingRepo, settingsCache, cfg.Redis.SettingsTTL, appLogger)
	scanner := service.NewReceiptScanner(companyRepo, extractor, cfg.Extraction.Timeout, cfg.Extraction.MaxImageDimension, appLogger)
	ingestionService := service.NewIngestionService(companyRepo, txRepo, trackingRepo, blobs, location, appLogger)
	workflowService := service.NewWorkflowService(txRepo, appLogger)
	checklistService := service.NewChecklistService(companyRepo, txRepo, trackingRepo, settingsService, location, appLogger)
	exportService := service.NewExportService(workflowService, appLogger)
	vaultService := service.NewVaultService(credentialRepo, appLogger)

	h := api.Handlers{
		Auth:         handlers.NewAuthHandler(authService, appLogger),
		Receipts:     handlers.NewReceiptHandler(scanner, ingestionService, cfg.Storage.MaxUploadBytes, appLogger),
		Transactions: handlers.NewTransactionHandler(workflowService, checklistService, exportService, appLogger),
		Checklist:    handlers.NewChecklistHandler(checklistService, appLogger),
		Settings:     handlers.NewSettingsHandler(settingsService, appLogger),
		Vault:        handlers.NewVaultHandler(vaultService, appLogger),
	}

	app := api.SetupRouter(h, api.RouterConfig{
		UploadsDir:   uploadsDir,
		BodyLimit:    int(cfg.Storage.MaxUploadBytes) + 1<<20,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}, jwtManager, appLogger)

	var reporter *jobs.ChecklistReporter
	if cfg.Jobs.ChecklistEnabled {
		reporter = jobs.NewChecklistReporter(checklistService, cfg.Jobs.ChecklistSchedule, location, logger.Named("checklist-job"))
		if err := reporter.Start(); err != nil {
			appLogger.Error("Failed to start checklist reporter", zap.Error(err))
			reporter = nil
		}
	}

	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if reporter != nil {
		reporter.Stop()
	}
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}

// newBlobStore returns the configured store, the local directory to serve at
// /uploads (empty for GCS) and a close func.
func newBlobStore(ctx context.Context, cfg *config.StorageConfig, appLogger *zap.Logger) (service.BlobStore, string, func()) {
	switch cfg.Provider {
	case storage.ProviderGCS:
		gcs, err := storage.NewGCSStore(ctx, cfg.GCSBucket, cfg.GCSCredentialsJSON, cfg.GCSPublicHost, cfg.MaxUploadBytes, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to initialize GCS storage", zap.Error(err))
		}
		return gcs, "", func() {
			if err := gcs.Close(); err != nil {
				appLogger.Warn("Failed to close GCS client", zap.Error(err))
			}
		}
	default:
		local, err := storage.NewLocalStore(cfg.LocalDir, cfg.PublicBaseURL, cfg.MaxUploadBytes, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to initialize local storage", zap.Error(err))
		}
		return local, local.Root(), func() {}
	}
}
