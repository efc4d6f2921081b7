package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lyra-coin-backend/internal/features/i18n"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/i18n", h.languages)
	router.GET("/i18n/:lang", h.bundle)
}

// @Summary Supported languages
// @Tags i18n
// @Produce json
// @Success 200 {array} string
// @Router /i18n [get]
func (h *Handler) languages(c *gin.Context) {
	c.JSON(http.StatusOK, i18n.Languages())
}

// @Summary String table
// @Description Strings for a language; unknown languages fall back to en
// @Tags i18n
// @Produce json
// @Param lang path string true "Language code" example(ar)
// @Success 200 {object} i18n.Bundle
// @Router /i18n/{lang} [get]
func (h *Handler) bundle(c *gin.Context) {
	c.JSON(http.StatusOK, i18n.Load(c.Param("lang")))
}
