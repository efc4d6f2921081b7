package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	initdata "github.com/telegram-mini-apps/init-data-golang"

	"lyra-coin-backend/internal/common/errors"
)

const (
	ContextKeyUser      = "user"
	ContextKeyUserID    = "user_id"
	ContextKeyAuthError = "auth_error"
)

// RequireAuth rejects requests that reached it without a validated user.
func RequireAuth(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := TelegramUser(c); !ok {
			sendErrorResponse(c, errors.NewUnauthorizedError("Telegram init data required"), logger)
			c.Abort()
			return
		}
		c.Next()
	}
}

func TelegramUser(c *gin.Context) (initdata.User, bool) {
	v, exists := c.Get(ContextKeyUser)
	if !exists {
		return initdata.User{}, false
	}
	u, ok := v.(initdata.User)
	return u, ok
}

func UserID(c *gin.Context) int64 {
	if userID, exists := c.Get(ContextKeyUserID); exists {
		if id, ok := userID.(int64); ok {
			return id
		}
	}
	return 0
}

// InstallationID is the per-user store identifier: the Telegram user id.
func InstallationID(c *gin.Context) string {
	return strconv.FormatInt(UserID(c), 10)
}

// AuthError returns the profile sync error recorded for this request, if any.
func AuthError(c *gin.Context) error {
	if v, exists := c.Get(ContextKeyAuthError); exists {
		if err, ok := v.(error); ok {
			return err
		}
	}
	return nil
}
