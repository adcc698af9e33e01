package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"receipt-desk/internal/api/handlers"
	"receipt-desk/internal/models"
	"receipt-desk/internal/repository"
	"receipt-desk/internal/service"
	"receipt-desk/pkg/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type missingSettings struct{}

func (missingSettings) Get(ctx context.Context, key string) (*models.GlobalSetting, error) {
	return nil, repository.ErrNotFound
}

func (missingSettings) Upsert(ctx context.Context, s *models.GlobalSetting) error {
	return nil
}

func newTestApp(t *testing.T) (*fiber.App, *auth.JWTManager) {
	t.Helper()
	logger := zap.NewNop()
	jwtManager := auth.NewJWTManager("router-test", time.Hour, 24*time.Hour)
	return SetupRouter(testHandlers(logger), RouterConfig{}, jwtManager, logger), jwtManager
}

// testHandlers wires handlers whose services are only reached past
// validation; individual tests swap in real ones.
func testHandlers(logger *zap.Logger) Handlers {
	settings := service.NewSettingsService(missingSettings{}, nil, 0, logger)
	return Handlers{
		Auth:         handlers.NewAuthHandler(nil, logger),
		Receipts:     handlers.NewReceiptHandler(nil, nil, 1024, logger),
		Transactions: handlers.NewTransactionHandler(nil, nil, nil, logger),
		Checklist:    handlers.NewChecklistHandler(nil, logger),
		Settings:     handlers.NewSettingsHandler(settings, logger),
		Vault:        handlers.NewVaultHandler(nil, logger),
	}
}

func bearer(t *testing.T, m *auth.JWTManager, role models.Role) string {
	t.Helper()
	token, err := m.GenerateToken(uuid.NewString(), "tester", "tester@example.com", string(role))
	if err != nil {
		t.Fatal(err)
	}
	return "Bearer " + token
}

func TestRouterAccessControl(t *testing.T) {
	app, jwtManager := newTestApp(t)
	adminID := uuid.NewString()

	cases := []struct {
		name   string
		method string
		path   string
		body   string
		auth   string
		status int
	}{
		{"no token", http.MethodGet, "/api/v1/companies", "", "", fiber.StatusUnauthorized},
		{"garbage token", http.MethodGet, "/api/v1/companies", "", "Bearer nope", fiber.StatusUnauthorized},
		{"partner on admin route", http.MethodGet, "/api/v1/admin/transactions", "", bearer(t, jwtManager, models.RolePartner), fiber.StatusForbidden},
		{"bad transaction id", http.MethodPut, "/api/v1/admin/transactions/not-a-uuid/profit-percentage", `{"value": 5}`, bearer(t, jwtManager, models.RoleAdmin), fiber.StatusBadRequest},
		{"profit out of range", http.MethodPut, "/api/v1/admin/transactions/" + adminID + "/profit-percentage", `{"value": 150}`, bearer(t, jwtManager, models.RoleAdmin), fiber.StatusBadRequest},
		{"profit missing", http.MethodPut, "/api/v1/admin/transactions/" + adminID + "/profit-percentage", `{}`, bearer(t, jwtManager, models.RoleAdmin), fiber.StatusBadRequest},
		{"fee out of range", http.MethodPut, "/api/v1/admin/settings/platform-fee", `{"value": -1}`, bearer(t, jwtManager, models.RoleAdmin), fiber.StatusBadRequest},
		{"login bad email", http.MethodPost, "/user/auth/login", `{"email": "nope", "password": "x"}`, "", fiber.StatusBadRequest},
		{"receipt without file", http.MethodPost, "/api/v1/receipts/scan", "", bearer(t, jwtManager, models.RolePartner), fiber.StatusBadRequest},
		{"platform fee default", http.MethodGet, "/api/v1/settings/platform-fee", "", bearer(t, jwtManager, models.RolePartner), fiber.StatusOK},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest(c.method, c.path, strings.NewReader(c.body))
			if c.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			if c.auth != "" {
				req.Header.Set("Authorization", c.auth)
			}

			resp, err := app.Test(req)
			if err != nil {
				t.Fatal(err)
			}
			if resp.StatusCode != c.status {
				t.Fatalf("want %d, got %d", c.status, resp.StatusCode)
			}
		})
	}
}

func TestPlatformFeeDefault(t *testing.T) {
	app, jwtManager := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/settings/platform-fee", nil)
	req.Header.Set("Authorization", bearer(t, jwtManager, models.RolePartner))

	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var body struct {
		Value float64 `json:"value"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Value != service.DefaultPlatformFee {
		t.Fatalf("want %v, got %v", service.DefaultPlatformFee, body.Value)
	}
}
