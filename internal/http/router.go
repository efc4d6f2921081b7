package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"lyra-coin-backend/internal/common/config"
	"lyra-coin-backend/internal/common/middleware"
	i18nHandler "lyra-coin-backend/internal/features/i18n/delivery/http"
	priceHandler "lyra-coin-backend/internal/features/prices/delivery/http"
	priceService "lyra-coin-backend/internal/features/prices/service"
	referralHandler "lyra-coin-backend/internal/features/referral/delivery/http"
	referralService "lyra-coin-backend/internal/features/referral/service"
	taskHandler "lyra-coin-backend/internal/features/tasks/delivery/http"
	taskService "lyra-coin-backend/internal/features/tasks/service"
	userHandler "lyra-coin-backend/internal/features/user/delivery/http"
	userService "lyra-coin-backend/internal/features/user/service"
	walletHandler "lyra-coin-backend/internal/features/wallet/delivery/http"
	walletService "lyra-coin-backend/internal/features/wallet/service"
	"lyra-coin-backend/internal/metrics"
)

const serviceName = "lyra-coin-backend"

// HealthChecker is pinged by the readiness probe.
type HealthChecker interface {
	Check(ctx context.Context) error
}

type Deps struct {
	Config  *config.Config
	Logger  zerolog.Logger
	Metrics *metrics.Metrics
	Health  HealthChecker

	Users     *userService.Service
	Tasks     *taskService.Controller
	Prices    *priceService.Service
	Referrals *referralService.Service
	Wallets   *walletService.Service
}

// NewRouter builds the gin engine. Prices, share links, the TON Connect
// manifest and the operational endpoints are public; everything else needs
// valid Telegram init data.
func NewRouter(d Deps) *gin.Engine {
	if !d.Config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(d.Logger))
	router.Use(middleware.Logger(d.Logger, d.Metrics))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{d.Config.Server.Origin}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization", "Accept", "init_data"}
	router.Use(cors.New(corsConfig))

	wrap := middleware.HandleErrorWrapper(d.Logger)

	prices := priceHandler.NewPriceHandler(d.Prices)
	referrals := referralHandler.NewReferralHandler(d.Referrals, d.Config.Server.PublicURL)
	wallets := walletHandler.NewWalletHandler(d.Wallets)
	users := userHandler.NewUserHandler(d.Users)
	tasks := taskHandler.NewTaskHandler(d.Tasks)
	pagesH := &pageHandler{wallets: d.Wallets}

	registerProbes(router, d.Health)
	router.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	prices.RegisterRoutes(v1, router)
	referrals.RegisterPublicRoutes(v1)
	wallets.RegisterPublicRoutes(router)
	i18nHandler.NewHandler().RegisterRoutes(v1)

	auth := []gin.HandlerFunc{
		middleware.TelegramInitData(d.Config.Telegram.BotToken, d.Config.Telegram.InitDataTTL, d.Logger),
		middleware.AutoCreateUser(d.Users, d.Metrics, d.Logger),
		middleware.RequireAuth(d.Logger),
	}
	api := v1.Group("", auth...)
	root := router.Group("", auth...)

	tasks.RegisterRoutes(api, wrap)
	referrals.RegisterRoutes(api, wrap)
	users.RegisterRoutes(api, root, wrap)
	wallets.RegisterRoutes(api, root, wrap)
	api.GET("/pages/*path", wrap(pagesH.resolve))

	return router
}

func registerProbes(router *gin.Engine, health HealthChecker) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC(),
			"service":   serviceName,
		})
	})

	router.GET("/live", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	router.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := health.Check(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unready",
				"error":   "redis unavailable",
				"details": err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "ready",
			"timestamp": time.Now().UTC(),
			"service":   serviceName,
		})
	})
}
