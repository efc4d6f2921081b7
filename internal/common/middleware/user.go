package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	initdata "github.com/telegram-mini-apps/init-data-golang"

	"lyra-coin-backend/internal/metrics"
)

// UserBootstrapper syncs the Telegram user into the profile store and the
// installation's state.
type UserBootstrapper interface {
	Bootstrap(ctx context.Context, tgUser initdata.User) error
}

// AutoCreateUser runs the user sync on every authenticated request. A failed
// sync does not abort the request: it continues in degraded mode and the
// error is kept in the context for the profile endpoint to report.
func AutoCreateUser(users UserBootstrapper, m *metrics.Metrics, logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tgUser, ok := TelegramUser(c)
		if !ok {
			c.Next()
			return
		}

		if err := users.Bootstrap(c.Request.Context(), tgUser); err != nil {
			m.RecordAuthFailure()
			logger.Warn().
				Err(err).
				Int64("user_id", tgUser.ID).
				Msg("User sync failed, continuing in degraded mode")
			c.Set(ContextKeyAuthError, err)
		}

		c.Next()
	}
}
