package main

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// appConfig holds every runtime setting of the application, loaded from the
// environment with an optional .env file on top.
type appConfig struct {
	WalletAddress    string `envconfig:"WALLET_ADDRESS" validate:"required"`
	TelegramBotToken string `envconfig:"TELEGRAM_BOT_TOKEN" validate:"required"`
	TelegramChatID   string `envconfig:"TELEGRAM_CHAT_ID" validate:"required"`

	TronScanAPIURL string `envconfig:"TRONSCAN_API_URL"`
	TronScanAPIKey string `envconfig:"TRONSCAN_API_KEY"`

	PollInterval time.Duration `envconfig:"POLL_INTERVAL" default:"30s"`
	GracePeriod  time.Duration `envconfig:"GRACE_PERIOD" default:"10m"`
	HTTPTimeout  time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`

	LogLevel         string `envconfig:"LOG_LEVEL" default:"info"`
	TelemetryEnabled bool   `envconfig:"TELEMETRY_ENABLED" default:"false"`

	RedisAddress  string `envconfig:"REDIS_ADDRESS"`
	RedisUsername string `envconfig:"REDIS_USERNAME"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	PostgresDSN string `envconfig:"POSTGRES_DSN"`
}

// loadConfig reads the application configuration from the environment. A
// .env file in the working directory is loaded first when present.
func loadConfig() (appConfig, error) {
	_ = godotenv.Load()

	var cfg appConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return appConfig{}, err
	}

	return cfg, nil
}
