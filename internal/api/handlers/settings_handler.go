package handlers

import (
	"receipt-desk/internal/dto"
	"receipt-desk/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type SettingsHandler struct {
	settings *service.SettingsService
	logger   *zap.Logger
}

func NewSettingsHandler(settings *service.SettingsService, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{
		settings: settings,
		logger:   logger,
	}
}

// PlatformFee godoc
// @Summary Current platform fee percentage
// @Tags settings
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.PlatformFeeResponse
// @Router /api/v1/settings/platform-fee [get]
func (h *SettingsHandler) PlatformFee(c *fiber.Ctx) error {
	return c.JSON(dto.PlatformFeeResponse{Value: h.settings.PlatformFee(c.Context())})
}

// UpdatePlatformFee godoc
// @Summary Change the platform fee percentage
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.UpdatePlatformFeeRequest true "New value in [0, 100]"
// @Security Bearer
// @Success 200 {object} dto.PlatformFeeResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/admin/settings/platform-fee [put]
func (h *SettingsHandler) UpdatePlatformFee(c *fiber.Ctx) error {
	actor, err := getActor(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.UpdatePlatformFeeRequest
	if problem := bindRequest(c, &req); problem != nil {
		return c.Status(fiber.StatusBadRequest).JSON(problem)
	}

	value, err := h.settings.UpdatePlatformFee(c.Context(), actor, *req.Value)
	if err != nil {
		return writeServiceError(c, h.logger, err, "Settings update")
	}
	return c.JSON(dto.PlatformFeeResponse{Value: value})
}
