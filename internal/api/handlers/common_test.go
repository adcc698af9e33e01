package handlers

import (
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"receipt-desk/internal/service"
	"receipt-desk/pkg/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func TestWriteServiceError(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("%w: amount", service.ErrInvalidArgument), fiber.StatusBadRequest},
		{fmt.Errorf("%w: %w", service.ErrStorage, storage.ErrRejected), fiber.StatusBadRequest},
		{service.ErrForbidden, fiber.StatusForbidden},
		{fmt.Errorf("%w: transaction", service.ErrNotFound), fiber.StatusNotFound},
		{fmt.Errorf("%w: approved -> rejected", service.ErrInvalidStateTransition), fiber.StatusConflict},
		{fmt.Errorf("%w: bucket down", service.ErrStorage), fiber.StatusServiceUnavailable},
		{fmt.Errorf("%w: deadlock", service.ErrTrackingIncomplete), fiber.StatusServiceUnavailable},
		{service.ErrInvalidCredentials, fiber.StatusUnauthorized},
		{errors.New("boom"), fiber.StatusInternalServerError},
	}

	for _, c := range cases {
		app := fiber.New()
		err := c.err
		app.Get("/", func(ctx *fiber.Ctx) error {
			return writeServiceError(ctx, zap.NewNop(), err, "Test")
		})

		resp, testErr := app.Test(httptest.NewRequest("GET", "/", nil))
		if testErr != nil {
			t.Fatal(testErr)
		}
		if resp.StatusCode != c.status {
			t.Errorf("%v: want %d, got %d", c.err, c.status, resp.StatusCode)
		}
	}
}
