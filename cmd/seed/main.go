package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"receipt-desk/internal/models"
	"receipt-desk/internal/repository"
	"receipt-desk/internal/service"
	"receipt-desk/pkg/auth"
	"receipt-desk/pkg/config"
	"receipt-desk/pkg/logger"
	"receipt-desk/pkg/postgres"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SeedData is the shape of the seed file.
type SeedData struct {
	Companies   []string   `json:"companies"`
	Users       []SeedUser `json:"users"`
	PlatformFee *float64   `json:"platform_fee_percentage"`
}

type SeedUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func main() {
	seedFile := flag.String("file", "cmd/seed/seed.json", "path to the seed file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	data, err := loadSeed(*seedFile)
	if err != nil {
		appLogger.Fatal("Failed to read seed file", zap.String("path", *seedFile), zap.Error(err))
	}

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	appLogger.Info("Starting database seeding...")

	companyRepo := repository.NewCompanyRepository(db, appLogger)
	if err := seedCompanies(ctx, data.Companies, companyRepo, appLogger); err != nil {
		appLogger.Fatal("Failed to seed companies", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(db, appLogger)
	if err := seedUsers(ctx, data.Users, userRepo, appLogger); err != nil {
		appLogger.Fatal("Failed to seed users", zap.Error(err))
	}

	if data.PlatformFee != nil {
		settings := service.NewSettingsService(repository.NewSettingRepository(db, appLogger), nil, 0, appLogger)
		system := service.Actor{Role: models.RoleAdmin}
		if _, err := settings.UpdatePlatformFee(ctx, system, *data.PlatformFee); err != nil {
			appLogger.Fatal("Failed to seed platform fee", zap.Error(err))
		}
		appLogger.Info("Platform fee set", zap.Float64("value", *data.PlatformFee))
	}

	appLogger.Info("Database seeding completed successfully!")
}

func loadSeed(path string) (*SeedData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data SeedData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return &data, nil
}

func seedCompanies(ctx context.Context, names []string, repo *repository.CompanyRepository, logger *zap.Logger) error {
	now := time.Now()
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		created, err := repo.CreateIfMissing(ctx, &models.Company{ID: uuid.New(), Name: name, CreatedAt: now})
		if err != nil {
			return fmt.Errorf("company %q: %w", name, err)
		}
		if created {
			logger.Info("Created company", zap.String("name", name))
		} else {
			logger.Info("Company already exists, skipping", zap.String("name", name))
		}
	}
	return nil
}

func seedUsers(ctx context.Context, users []SeedUser, repo *repository.UserRepository, logger *zap.Logger) error {
	now := time.Now()
	for _, u := range users {
		email := strings.ToLower(strings.TrimSpace(u.Email))
		role := models.Role(u.Role)
		if !role.Valid() {
			return fmt.Errorf("user %q: unknown role %q", email, u.Role)
		}

		_, err := repo.GetByEmail(ctx, email)
		if err == nil {
			logger.Info("User already exists, skipping", zap.String("email", email))
			continue
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("user %q: %w", email, err)
		}

		hash, err := auth.HashPassword(u.Password)
		if err != nil {
			return fmt.Errorf("user %q: %w", email, err)
		}

		if err := repo.Create(ctx, &models.User{
			ID:        uuid.New(),
			Username:  u.Username,
			Email:     email,
			Password:  hash,
			Role:      role,
			CreatedAt: now,
			UpdatedAt: now,
		}); err != nil {
			return fmt.Errorf("user %q: %w", email, err)
		}
		logger.Info("Created user", zap.String("email", email), zap.String("role", string(role)))
	}
	return nil
}
