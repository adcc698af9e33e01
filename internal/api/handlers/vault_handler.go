package handlers

import (
	"time"

	"receipt-desk/internal/dto"
	"receipt-desk/internal/models"
	"receipt-desk/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type VaultHandler struct {
	vault  *service.VaultService
	logger *zap.Logger
}

func NewVaultHandler(vault *service.VaultService, logger *zap.Logger) *VaultHandler {
	return &VaultHandler{
		vault:  vault,
		logger: logger,
	}
}

// List godoc
// @Summary List vault credentials
// @Tags admin
// @Produce json
// @Param service query string false "Filter by service name"
// @Security Bearer
// @Success 200 {array} dto.CredentialResponse
// @Router /api/v1/admin/vault [get]
func (h *VaultHandler) List(c *fiber.Ctx) error {
	actor, err := getActor(c)
	if err != nil {
		return unauthorized(c)
	}

	creds, err := h.vault.List(c.Context(), actor, c.Query("service"))
	if err != nil {
		return writeServiceError(c, h.logger, err, "Listing credentials")
	}
	return c.JSON(toCredentialResponses(creds))
}

// ListStripe godoc
// @Summary Stripe credentials
// @Tags vault
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.CredentialResponse
// @Router /api/v1/vault/stripe [get]
func (h *VaultHandler) ListStripe(c *fiber.Ctx) error {
	creds, err := h.vault.ListStripe(c.Context())
	if err != nil {
		return writeServiceError(c, h.logger, err, "Listing credentials")
	}
	return c.JSON(toCredentialResponses(creds))
}

// Create godoc
// @Summary Add a vault credential
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.CreateCredentialRequest true "Credential"
// @Security Bearer
// @Success 201 {object} dto.CredentialResponse
// @Router /api/v1/admin/vault [post]
func (h *VaultHandler) Create(c *fiber.Ctx) error {
	actor, err := getActor(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateCredentialRequest
	if problem := bindRequest(c, &req); problem != nil {
		return c.Status(fiber.StatusBadRequest).JSON(problem)
	}

	cred, err := h.vault.Create(c.Context(), actor, service.NewCredentialInput{
		ServiceName: req.ServiceName,
		Username:    req.Username,
		Secret:      req.Secret,
		Notes:       req.Notes,
	})
	if err != nil {
		return writeServiceError(c, h.logger, err, "Saving credential")
	}
	return c.Status(fiber.StatusCreated).JSON(toCredentialResponse(cred))
}

// Delete godoc
// @Summary Remove a vault credential
// @Tags admin
// @Param id path string true "Credential ID"
// @Security Bearer
// @Success 204
// @Router /api/v1/admin/vault/{id} [delete]
func (h *VaultHandler) Delete(c *fiber.Ctx) error {
	actor, err := getActor(c)
	if err != nil {
		return unauthorized(c)
	}
	id, ok := parseIDParam(c)
	if !ok {
		return badRequest(c, "Invalid credential id")
	}

	if err := h.vault.Delete(c.Context(), actor, id); err != nil {
		return writeServiceError(c, h.logger, err, "Deleting credential")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func toCredentialResponse(cred *models.Credential) dto.CredentialResponse {
	return dto.CredentialResponse{
		ID:          cred.ID.String(),
		ServiceName: cred.ServiceName,
		Username:    cred.Username,
		Secret:      cred.Secret,
		Notes:       cred.Notes,
		CreatedAt:   cred.CreatedAt.Format(time.RFC3339),
	}
}

func toCredentialResponses(creds []*models.Credential) []dto.CredentialResponse {
	out := make([]dto.CredentialResponse, len(creds))
	for i, cred := range creds {
		out[i] = toCredentialResponse(cred)
	}
	return out
}
