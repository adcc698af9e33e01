package handlers

import (
	"receipt-desk/internal/dto"
	"receipt-desk/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *service.AuthService
	logger      *zap.Logger
}

func NewAuthHandler(authService *service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Login godoc
// @Summary Login user
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login request"
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} map[string]string
// @Router /user/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if problem := bindRequest(c, &req); problem != nil {
		return c.Status(fiber.StatusBadRequest).JSON(problem)
	}

	resp, err := h.authService.Login(c.Context(), &req)
	if err != nil {
		return writeServiceError(c, h.logger, err, "Login")
	}

	return c.JSON(resp)
}

// RefreshToken godoc
// @Summary Refresh access token
// @Description Refresh access token using refresh token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token request"
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} map[string]string
// @Router /user/auth/refresh [post]
func (h *AuthHandler) RefreshToken(c *fiber.Ctx) error {
	var req dto.RefreshTokenRequest
	if problem := bindRequest(c, &req); problem != nil {
		return c.Status(fiber.StatusBadRequest).JSON(problem)
	}

	resp, err := h.authService.RefreshToken(c.Context(), req.RefreshToken)
	if err != nil {
		return writeServiceError(c, h.logger, err, "Token refresh")
	}

	return c.JSON(resp)
}

// CreateUser godoc
// @Summary Create a user
// @Description Admins add partners and other admins
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "New user"
// @Security Bearer
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/v1/admin/users [post]
func (h *AuthHandler) CreateUser(c *fiber.Ctx) error {
	actor, err := getActor(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateUserRequest
	if problem := bindRequest(c, &req); problem != nil {
		return c.Status(fiber.StatusBadRequest).JSON(problem)
	}

	user, err := h.authService.CreateUser(c.Context(), actor, &req)
	if err != nil {
		return writeServiceError(c, h.logger, err, "User creation")
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}
