package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lyra-coin-backend/internal/features/prices/service"
)

type PriceHandler struct {
	service *service.Service
}

func NewPriceHandler(svc *service.Service) *PriceHandler {
	return &PriceHandler{service: svc}
}

// RegisterRoutes mounts the price routes. Prices are shared by every user and
// need no init data.
func (h *PriceHandler) RegisterRoutes(api *gin.RouterGroup, root gin.IRoutes) {
	prices := api.Group("/prices")
	{
		prices.GET("", h.view)
		prices.POST("/refresh", h.refresh)
	}
	root.GET("/get-price", h.getPrice)
}

// @Summary Price view
// @Description Top coins by market cap with formatted price, market cap and 24h change
// @Tags prices
// @Produce json
// @Success 200 {object} models.View
// @Router /prices [get]
func (h *PriceHandler) view(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.View())
}

// @Summary Refresh prices
// @Description Fetches market data now. A failed fetch still returns 200 with the error indicator set and previous or cached data.
// @Tags prices
// @Produce json
// @Success 200 {object} models.View
// @Router /prices/refresh [post]
func (h *PriceHandler) refresh(c *gin.Context) {
	_ = h.service.Refresh(c.Request.Context())
	c.JSON(http.StatusOK, h.service.View())
}

// @Summary Raw market data
// @Description Coins as returned by the market data endpoint
// @Tags prices
// @Produce json
// @Success 200 {array} models.Coin
// @Router /get-price [get]
func (h *PriceHandler) getPrice(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Coins())
}
