package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Server struct {
		Port   int    `env:"PORT" envDefault:"8080"`
		Origin string `env:"ORIGIN" envDefault:"http://localhost:3000"`
		// Public URL of the web app, used in social share links
		PublicURL string `env:"PUBLIC_URL" envDefault:"https://www.lyracoine.com"`
	}

	Redis struct {
		Host     string `env:"REDIS_HOST" envDefault:"localhost"`
		Port     int    `env:"REDIS_PORT" envDefault:"6379"`
		Password string `env:"REDIS_PASSWORD" envDefault:""`
		DB       int    `env:"REDIS_DB" envDefault:"0"`
	}

	Telegram struct {
		BotToken string `env:"BOT_TOKEN,required"`
		// 0 disables the init-data expiration check
		InitDataTTL time.Duration `env:"INIT_DATA_TTL" envDefault:"24h"`
		// Deep link base used for referral links, e.g. https://t.me/LyraCoinBot
		BotDeepLinkBase string `env:"BOT_DEEP_LINK_BASE" envDefault:"https://t.me/LyraCoinBot"`
	}

	Store struct {
		Backend   string `env:"STORE_BACKEND" envDefault:"redis"` // redis, memory
		Namespace string `env:"STORE_NAMESPACE" envDefault:"lyra-coin-storage"`
	}

	Tasks struct {
		CountdownSeconds int           `env:"TASK_COUNTDOWN_SECONDS" envDefault:"30"`
		Tick             time.Duration `env:"TASK_COUNTDOWN_TICK" envDefault:"1s"`
	}

	Prices struct {
		BaseURL         string        `env:"PRICES_BASE_URL" envDefault:"https://api.coingecko.com/api/v3"`
		RefreshInterval time.Duration `env:"PRICES_REFRESH_INTERVAL" envDefault:"30s"`
		Timeout         time.Duration `env:"PRICES_TIMEOUT" envDefault:"10s"`
	}

	Wallet struct {
		ManifestAppURL string `env:"TONCONNECT_APP_URL" envDefault:"https://lira-rise-web3-page.lovable.app"`
		ManifestName   string `env:"TONCONNECT_APP_NAME" envDefault:"Lira Coin WebApp"`
		ManifestIcon   string `env:"TONCONNECT_APP_ICON" envDefault:"https://i.postimg.cc/5yNL8pnT/liracoin-logo.png"`
		TonAPIBaseURL  string `env:"TONAPI_BASE_URL" envDefault:"https://tonapi.io"`
		TonAPIToken    string `env:"TONAPI_TOKEN" envDefault:""`
	}
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	// A missing .env is fine; production sets variables directly.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MustLoad is Load that panics on error.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func (c *Config) Validate() error {
	switch c.Store.Backend {
	case "redis", "memory":
	default:
		return fmt.Errorf("invalid STORE_BACKEND %q: want redis or memory", c.Store.Backend)
	}
	if c.Store.Namespace == "" {
		return fmt.Errorf("STORE_NAMESPACE must not be empty")
	}
	if c.Tasks.CountdownSeconds <= 0 {
		return fmt.Errorf("TASK_COUNTDOWN_SECONDS must be positive, got %d", c.Tasks.CountdownSeconds)
	}
	if c.Tasks.Tick <= 0 {
		return fmt.Errorf("TASK_COUNTDOWN_TICK must be positive")
	}
	if c.Prices.RefreshInterval <= 0 {
		return fmt.Errorf("PRICES_REFRESH_INTERVAL must be positive")
	}
	return nil
}

func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
