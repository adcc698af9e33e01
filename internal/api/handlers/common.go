package handlers

import (
	"errors"
	"time"

	"receipt-desk/internal/dto"
	"receipt-desk/internal/models"
	"receipt-desk/internal/service"
	"receipt-desk/pkg/middleware"
	"receipt-desk/pkg/storage"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

var validate = validator.New()

// validationErrors maps each failing field to the rule it broke.
func validationErrors(err error) map[string]string {
	out := make(map[string]string)
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		out["request"] = err.Error()
		return out
	}
	for _, ve := range ves {
		out[ve.Field()] = ve.Tag()
	}
	return out
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": message,
	})
}

// bindRequest parses a JSON or form body into req and runs its validate
// tags. A non-nil result is the 400 body to send back.
func bindRequest(c *fiber.Ctx, req interface{}) fiber.Map {
	if err := c.BodyParser(req); err != nil {
		return fiber.Map{"error": "Invalid request body"}
	}
	if err := validate.Struct(req); err != nil {
		return fiber.Map{
			"error":  "Validation failed",
			"fields": validationErrors(err),
		}
	}
	return nil
}

// writeServiceError answers with the status matching the error class. Storage
// and persistence failures are reported as retryable.
func writeServiceError(c *fiber.Ctx, logger *zap.Logger, err error, action string) error {
	status := fiber.StatusInternalServerError
	message := action + " failed"

	switch {
	case errors.Is(err, storage.ErrRejected):
		status, message = fiber.StatusBadRequest, err.Error()
	case errors.Is(err, service.ErrValidation):
		status, message = fiber.StatusBadRequest, err.Error()
	case errors.Is(err, service.ErrForbidden):
		status, message = fiber.StatusForbidden, "Insufficient permissions"
	case errors.Is(err, service.ErrNotFound):
		status, message = fiber.StatusNotFound, err.Error()
	case errors.Is(err, service.ErrInvalidStateTransition):
		status, message = fiber.StatusConflict, err.Error()
	case errors.Is(err, service.ErrUserExists):
		status, message = fiber.StatusConflict, "User already exists"
	case errors.Is(err, service.ErrInvalidCredentials):
		status, message = fiber.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, service.ErrStorage), errors.Is(err, service.ErrPersistence):
		status, message = fiber.StatusServiceUnavailable, action+" failed, please retry"
	}

	if status >= fiber.StatusInternalServerError {
		logger.Error(action+" failed", zap.Error(err))
	} else {
		logger.Debug(action+" rejected", zap.Error(err))
	}

	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

func getUserID(c *fiber.Ctx) (uuid.UUID, error) {
	userIDStr, ok := c.Locals(middleware.LocalUserID).(string)
	if !ok {
		return uuid.Nil, fiber.ErrUnauthorized
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, err
	}

	return userID, nil
}

func getActor(c *fiber.Ctx) (service.Actor, error) {
	userID, err := getUserID(c)
	if err != nil {
		return service.Actor{}, err
	}
	role, _ := c.Locals(middleware.LocalRole).(string)
	return service.Actor{UserID: userID, Role: models.Role(role)}, nil
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "Unauthorized",
	})
}

func parseIDParam(c *fiber.Ctx) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params("id"))
	return id, err == nil
}

// parseDateQuery reads ?date=YYYY-MM-DD, defaulting to fallback.
func parseDateQuery(c *fiber.Ctx, fallback time.Time) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		return fallback, true
	}
	d, err := time.Parse(dateLayout, raw)
	return d, err == nil
}

func toTransactionResponse(tx *models.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:               tx.ID.String(),
		CompanyID:        tx.CompanyID.String(),
		CompanyName:      tx.CompanyName,
		UserID:           tx.UserID.String(),
		Amount:           tx.Amount,
		ReceiptURL:       tx.ReceiptURL,
		DateExpected:     tx.DateExpected.Format(dateLayout),
		Status:           string(tx.Status),
		ProfitPercentage: tx.ProfitPercentage,
		Notes:            tx.Notes,
		CreatedAt:        tx.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        tx.UpdatedAt.Format(time.RFC3339),
	}
}

func toPayoutResponse(p service.Payout) dto.PayoutResponse {
	return dto.PayoutResponse{
		Gross: p.Gross.InexactFloat64(),
		Fee:   p.Fee.InexactFloat64(),
		Net:   p.Net.InexactFloat64(),
	}
}

func toCompanyResponse(c *models.Company) dto.CompanyResponse {
	return dto.CompanyResponse{ID: c.ID.String(), Name: c.Name}
}
