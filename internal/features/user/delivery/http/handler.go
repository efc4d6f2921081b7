package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "lyra-coin-backend/internal/common/errors"
	"lyra-coin-backend/internal/common/middleware"
	"lyra-coin-backend/internal/common/validation"
	appstore "lyra-coin-backend/internal/features/appstore/service"
	"lyra-coin-backend/internal/features/user/models"
	"lyra-coin-backend/internal/features/user/service"
)

type UserHandler struct {
	service *service.Service
}

func NewUserHandler(svc *service.Service) *UserHandler {
	return &UserHandler{
		service: svc,
	}
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup, root gin.IRoutes, wrap func(gin.HandlerFunc) gin.HandlerFunc) {
	users := router.Group("/users")
	{
		users.GET("/me", wrap(h.getMe))
		users.PUT("/me/name", wrap(h.updateName))
	}
	root.GET("/get-balance", wrap(h.getBalance))
}

// @Summary Get current user
// @Description Profile of the current Telegram user with balance and level. auth_error is set when the profile sync failed.
// @Tags users
// @Produce json
// @Security TelegramInitData
// @Success 200 {object} models.ProfileResponse
// @Failure 401 {object} middleware.ErrorResponse "Missing init data"
// @Router /users/me [get]
func (h *UserHandler) getMe(c *gin.Context) {
	tgUser, _ := middleware.TelegramUser(c)

	profile, err := h.service.Profile(c.Request.Context(), tgUser, middleware.AuthError(c))
	if err != nil {
		_ = c.Error(appstore.ToAppError(err))
		return
	}
	c.JSON(http.StatusOK, profile)
}

// @Summary Update full name
// @Tags users
// @Accept json
// @Produce json
// @Security TelegramInitData
// @Param request body models.UpdateNameRequest true "New name"
// @Success 200 {object} models.ProfileResponse
// @Failure 400 {object} middleware.ErrorResponse "Empty name"
// @Router /users/me/name [put]
func (h *UserHandler) updateName(c *gin.Context) {
	var req models.UpdateNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.NewValidationError("full_name", "must not be empty"))
		return
	}
	if err := validation.ValidateFullName(req.FullName); err != nil {
		_ = c.Error(apperrors.NewValidationError("full_name", err.Error()))
		return
	}

	tgUser, _ := middleware.TelegramUser(c)
	profile, err := h.service.UpdateFullName(c.Request.Context(), tgUser, req.FullName)
	if err != nil {
		_ = c.Error(appstore.ToAppError(err))
		return
	}
	c.JSON(http.StatusOK, profile)
}

// @Summary Get balance
// @Description Balance in minutes of the current user
// @Tags users
// @Produce json
// @Security TelegramInitData
// @Success 200 {object} models.BalanceResponse
// @Router /get-balance [get]
func (h *UserHandler) getBalance(c *gin.Context) {
	balance, err := h.service.Balance(c.Request.Context(), middleware.InstallationID(c))
	if err != nil {
		_ = c.Error(appstore.ToAppError(err))
		return
	}
	c.JSON(http.StatusOK, models.BalanceResponse{Balance: balance})
}
