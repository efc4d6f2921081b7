package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "lyra-coin-backend/internal/common/errors"
	"lyra-coin-backend/internal/common/middleware"
	"lyra-coin-backend/internal/common/validation"
	appstore "lyra-coin-backend/internal/features/appstore/service"
	"lyra-coin-backend/internal/features/referral/models"
	"lyra-coin-backend/internal/features/referral/service"
)

type ReferralHandler struct {
	service   *service.Service
	publicURL string
}

func NewReferralHandler(svc *service.Service, publicURL string) *ReferralHandler {
	return &ReferralHandler{service: svc, publicURL: publicURL}
}

// RegisterRoutes mounts the authenticated referral routes.
func (h *ReferralHandler) RegisterRoutes(router *gin.RouterGroup, wrap func(gin.HandlerFunc) gin.HandlerFunc) {
	referrals := router.Group("/referrals")
	{
		referrals.GET("", wrap(h.get))
		referrals.POST("/submit", wrap(h.submit))
	}
}

// RegisterPublicRoutes mounts routes that need no init data.
func (h *ReferralHandler) RegisterPublicRoutes(router *gin.RouterGroup) {
	router.GET("/share", h.share)
}

// @Summary Get referral data
// @Description Returns the installation's referral code and deep link, generating the code on first access
// @Tags referrals
// @Produce json
// @Security TelegramInitData
// @Success 200 {object} models.ReferralView
// @Failure 401 {object} middleware.ErrorResponse
// @Router /referrals [get]
func (h *ReferralHandler) get(c *gin.Context) {
	view, err := h.service.Get(c.Request.Context(), middleware.InstallationID(c))
	if err != nil {
		_ = c.Error(appstore.ToAppError(err))
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Submit a referrer code
// @Description Records the code of the user who referred this one. Only the first submission is kept.
// @Tags referrals
// @Accept json
// @Produce json
// @Security TelegramInitData
// @Param request body models.SubmitRequest true "Referrer code"
// @Success 200 {object} models.ReferralView
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse "Code already submitted"
// @Router /referrals/submit [post]
func (h *ReferralHandler) submit(c *gin.Context) {
	var req models.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.NewValidationError("code", "must not be empty"))
		return
	}
	if err := validation.ValidateReferralInput(req.Code); err != nil {
		_ = c.Error(apperrors.NewValidationError("code", err.Error()))
		return
	}

	view, err := h.service.Submit(c.Request.Context(), middleware.InstallationID(c), req.Code)
	if err != nil {
		_ = c.Error(appstore.ToAppError(err))
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Social share links
// @Description Facebook, X and Telegram share URLs for the app's public origin
// @Tags referrals
// @Produce json
// @Success 200 {object} models.ShareLinks
// @Router /share [get]
func (h *ReferralHandler) share(c *gin.Context) {
	c.JSON(http.StatusOK, service.ShareLinks(h.publicURL))
}
