package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "lyra-coin-backend/internal/common/errors"
	"lyra-coin-backend/internal/common/middleware"
)

type Page string

const (
	PageLanding   Page = "landing"
	PageHome      Page = "home"
	PageTasks     Page = "tasks"
	PagePrices    Page = "prices"
	PageReferrals Page = "referrals"
	PageProfile   Page = "profile"
	PageNotFound  Page = "not_found"
)

var pages = map[string]Page{
	"/tasks":     PageTasks,
	"/prices":    PagePrices,
	"/referrals": PageReferrals,
	"/profile":   PageProfile,
}

// ResolvePage maps a client path to the page it renders. The root shows the
// landing page until a wallet is connected.
func ResolvePage(path string, walletConnected bool) Page {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	path = "/" + strings.Trim(path, "/")
	if path == "/" {
		if walletConnected {
			return PageHome
		}
		return PageLanding
	}
	if p, ok := pages[strings.ToLower(path)]; ok {
		return p
	}
	return PageNotFound
}

// WalletStatus reports whether a user has a connected wallet.
type WalletStatus interface {
	Connected(ctx context.Context, userID int64) (bool, error)
}

type PageResponse struct {
	Path            string `json:"path"`
	Page            Page   `json:"page"`
	WalletConnected bool   `json:"wallet_connected"`
}

type pageHandler struct {
	wallets WalletStatus
}

// @Summary Resolve a page
// @Description Maps a client path to the page to render; / is gated on the wallet connection
// @Tags pages
// @Produce json
// @Security TelegramInitData
// @Param path path string true "Client path" example(/tasks)
// @Success 200 {object} PageResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /pages/{path} [get]
func (h *pageHandler) resolve(c *gin.Context) {
	connected, err := h.wallets.Connected(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		_ = c.Error(apperrors.NewStorageError("wallet", err))
		return
	}

	path := c.Param("path")
	c.JSON(http.StatusOK, PageResponse{
		Path:            path,
		Page:            ResolvePage(path, connected),
		WalletConnected: connected,
	})
}
