package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	initdata "github.com/telegram-mini-apps/init-data-golang"

	"lyra-coin-backend/internal/common/errors"
)

// rawInitData reads the init data from the init_data header or from
// "Authorization: tma <init data>".
func rawInitData(c *gin.Context) string {
	if raw := c.GetHeader("init_data"); raw != "" {
		return raw
	}
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "tma ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "tma "))
	}
	return ""
}

// TelegramInitData validates the signed Mini App init data and stores the
// Telegram user in the context. A zero expIn disables the expiration check.
func TelegramInitData(botToken string, expIn time.Duration, logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := rawInitData(c)
		if raw == "" {
			sendErrorResponse(c, errors.NewUnauthorizedError("Telegram init data required"), logger)
			c.Abort()
			return
		}

		if err := initdata.Validate(raw, botToken, expIn); err != nil {
			logger.Debug().Err(err).Msg("Init data validation failed")
			sendErrorResponse(c, errors.NewUnauthorizedError("invalid init data").WithDetail("cause", err.Error()), logger)
			c.Abort()
			return
		}

		parsed, err := initdata.Parse(raw)
		if err != nil {
			sendErrorResponse(c, errors.Wrap(err, errors.ErrCodeBadRequest, "Failed to parse init data"), logger)
			c.Abort()
			return
		}
		if parsed.User.ID == 0 {
			sendErrorResponse(c, errors.NewUnauthorizedError("init data carries no user"), logger)
			c.Abort()
			return
		}

		logger.Debug().
			Int64("user_id", parsed.User.ID).
			Str("username", parsed.User.Username).
			Msg("Init data validated")

		c.Set(ContextKeyUser, parsed.User)
		c.Set(ContextKeyUserID, parsed.User.ID)
		c.Next()
	}
}
