package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "lyra-coin-backend/internal/common/errors"
	"lyra-coin-backend/internal/common/middleware"
	"lyra-coin-backend/internal/features/wallet/models"
	"lyra-coin-backend/internal/features/wallet/repository"
	"lyra-coin-backend/internal/features/wallet/service"
)

type WalletHandler struct {
	service *service.Service
}

func NewWalletHandler(svc *service.Service) *WalletHandler {
	return &WalletHandler{service: svc}
}

// RegisterRoutes mounts the authenticated wallet routes: status under the
// API group, connect and disconnect on the root.
func (h *WalletHandler) RegisterRoutes(api *gin.RouterGroup, root gin.IRoutes, wrap func(gin.HandlerFunc) gin.HandlerFunc) {
	wallet := api.Group("/wallet")
	{
		wallet.GET("", wrap(h.status))
		wallet.GET("/balance", wrap(h.balance))
	}
	root.POST("/connect-wallet", wrap(h.connect))
	root.DELETE("/connect-wallet", wrap(h.disconnect))
}

func (h *WalletHandler) RegisterPublicRoutes(root gin.IRoutes) {
	root.GET("/tonconnect-manifest.json", h.manifest)
}

func toAppError(err error) *apperrors.AppError {
	switch {
	case errors.Is(err, service.ErrInvalidAddress):
		return apperrors.Wrap(err, apperrors.ErrCodeInvalidAddress, "Invalid TON address")
	case errors.Is(err, service.ErrInvalidNetwork):
		return apperrors.NewValidationError("network", err.Error())
	case errors.Is(err, repository.ErrNotConnected):
		return apperrors.Wrap(err, apperrors.ErrCodeWalletNotConnected, "Wallet not connected")
	default:
		return apperrors.NewStorageError("wallet", err)
	}
}

// @Summary Report a connected wallet
// @Description Records the wallet the client connected through TON Connect
// @Tags wallet
// @Accept json
// @Produce json
// @Security TelegramInitData
// @Param request body models.ConnectRequest true "Wallet address and network"
// @Success 200 {object} models.Status
// @Failure 400 {object} middleware.ErrorResponse "Invalid address"
// @Router /connect-wallet [post]
func (h *WalletHandler) connect(c *gin.Context) {
	var req models.ConnectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.NewValidationError("address", "is required"))
		return
	}

	st, err := h.service.Connect(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		_ = c.Error(toAppError(err))
		return
	}
	c.JSON(http.StatusOK, st)
}

// @Summary Report a disconnected wallet
// @Tags wallet
// @Produce json
// @Security TelegramInitData
// @Success 200 {object} models.Status
// @Router /connect-wallet [delete]
func (h *WalletHandler) disconnect(c *gin.Context) {
	if err := h.service.Disconnect(c.Request.Context(), middleware.UserID(c)); err != nil {
		_ = c.Error(toAppError(err))
		return
	}
	c.JSON(http.StatusOK, models.Status{Connected: false})
}

// @Summary Wallet status
// @Tags wallet
// @Produce json
// @Security TelegramInitData
// @Success 200 {object} models.Status
// @Router /wallet [get]
func (h *WalletHandler) status(c *gin.Context) {
	st, err := h.service.Status(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		_ = c.Error(toAppError(err))
		return
	}
	c.JSON(http.StatusOK, st)
}

// @Summary On-chain TON balance
// @Description Native balance of the connected wallet, read through TonAPI
// @Tags wallet
// @Produce json
// @Security TelegramInitData
// @Success 200 {object} models.BalanceResponse
// @Failure 404 {object} middleware.ErrorResponse "Wallet not connected"
// @Failure 502 {object} middleware.ErrorResponse "TonAPI unavailable"
// @Router /wallet/balance [get]
func (h *WalletHandler) balance(c *gin.Context) {
	bal, err := h.service.Balance(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		if errors.Is(err, repository.ErrNotConnected) {
			_ = c.Error(toAppError(err))
			return
		}
		_ = c.Error(apperrors.Wrap(err, apperrors.ErrCodeExternalAPI, "Failed to read wallet balance"))
		return
	}
	c.JSON(http.StatusOK, bal)
}

// @Summary TON Connect manifest
// @Tags wallet
// @Produce json
// @Success 200 {object} models.Manifest
// @Router /tonconnect-manifest.json [get]
func (h *WalletHandler) manifest(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Manifest())
}
