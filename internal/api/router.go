package api

import (
	"os"
	"time"

	"receipt-desk/docs"
	"receipt-desk/internal/api/handlers"
	"receipt-desk/internal/models"
	"receipt-desk/pkg/auth"
	"receipt-desk/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

type Handlers struct {
	Auth         *handlers.AuthHandler
	Receipts     *handlers.ReceiptHandler
	Transactions *handlers.TransactionHandler
	Checklist    *handlers.ChecklistHandler
	Settings     *handlers.SettingsHandler
	Vault        *handlers.VaultHandler
}

type RouterConfig struct {
	// UploadsDir is served at /uploads when set (local blob store only).
	UploadsDir string
	// BodyLimit caps request bodies; receipts are the largest payload.
	BodyLimit    int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func SetupRouter(h Handlers, cfg RouterConfig, jwtManager *auth.JWTManager, appLogger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit:    cfg.BodyLimit,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	// importing docs registers the swagger document
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	if cfg.UploadsDir != "" {
		if _, err := os.Stat(cfg.UploadsDir); err == nil {
			appLogger.Info("Serving uploads", zap.String("path", cfg.UploadsDir))
			app.Static("/uploads", cfg.UploadsDir)
		}
	}

	authGroup := app.Group("/user/auth")
	authGroup.Post("/login", h.Auth.Login)
	authGroup.Post("/refresh", h.Auth.RefreshToken)

	protected := app.Group("/api/v1", middleware.AuthMiddleware(jwtManager, appLogger))
	protected.Get("/companies", h.Checklist.Companies)
	protected.Post("/receipts/scan", h.Receipts.Scan)
	protected.Post("/receipts", h.Receipts.Ingest)
	protected.Get("/checklist/today", h.Checklist.Today)
	protected.Get("/transactions/mine", h.Transactions.Mine)
	protected.Get("/settings/platform-fee", h.Settings.PlatformFee)
	protected.Get("/vault/stripe", h.Vault.ListStripe)

	admin := protected.Group("/admin", middleware.RequireRole(string(models.RoleAdmin), appLogger))
	admin.Get("/transactions", h.Transactions.ListAll)
	admin.Get("/transactions/export", h.Transactions.Export)
	admin.Post("/transactions/:id/approve", h.Transactions.Approve)
	admin.Post("/transactions/:id/reject", h.Transactions.Reject)
	admin.Put("/transactions/:id/profit-percentage", h.Transactions.SetProfitPercentage)
	admin.Delete("/transactions/:id", h.Transactions.Delete)
	admin.Get("/overview", h.Checklist.Overview)
	admin.Put("/settings/platform-fee", h.Settings.UpdatePlatformFee)
	admin.Get("/vault", h.Vault.List)
	admin.Post("/vault", h.Vault.Create)
	admin.Delete("/vault/:id", h.Vault.Delete)
	admin.Post("/users", h.Auth.CreateUser)

	return app
}
