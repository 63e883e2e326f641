package main

import (
	"context"
	"log"
	"time"

	"github.com/gabapcia/tronwatch/internal/handlers/cli"
	"github.com/gabapcia/tronwatch/internal/infra/explorer/tronscan"
	"github.com/gabapcia/tronwatch/internal/infra/messaging/telegram"
	"github.com/gabapcia/tronwatch/internal/infra/storage/postgres"
	"github.com/gabapcia/tronwatch/internal/infra/storage/redis"
	"github.com/gabapcia/tronwatch/internal/monitor"
	"github.com/gabapcia/tronwatch/internal/pkg/logger"
	"github.com/gabapcia/tronwatch/internal/pkg/resilience/retry"
	"github.com/gabapcia/tronwatch/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/tronwatch/internal/pkg/transport/http"
	"github.com/gabapcia/tronwatch/internal/pkg/types"
	"github.com/gabapcia/tronwatch/internal/pkg/validator"
	"github.com/gabapcia/tronwatch/internal/tokenregistry"
)

const serviceName = "tronwatch"

func main() {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("loading configuration: %v", err)
	}

	if cfg.TelemetryEnabled {
		telemetryShutdown, err := telemetry.Init(ctx, serviceName)
		if err != nil {
			log.Fatalf("initializing telemetry: %v", err)
		}
		defer telemetryShutdown(ctx)
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	if err := validator.Validate(cfg); err != nil {
		logger.Fatal(ctx, "invalid configuration", "error", err)
	}

	httpClient := transporthttp.NewClient(transporthttp.WithTimeout(cfg.HTTPTimeout)).StandardClient()

	tokenStorage, closeTokenStorage, err := newTokenStorage(ctx, cfg)
	if err != nil {
		logger.Fatal(ctx, "connecting to token storage", "error", err)
	}
	defer closeTokenStorage()

	registry := tokenregistry.New(tokenStorage)

	tokens, err := registry.TrackedTokens(ctx, cfg.WalletAddress)
	if err != nil {
		logger.Fatal(ctx, "loading tracked tokens", "error", err)
	}

	explorerOpts := []tronscan.Option{
		tronscan.WithAPIKey(cfg.TronScanAPIKey),
	}
	if cfg.TronScanAPIURL != "" {
		explorerOpts = append(explorerOpts, tronscan.WithBaseURL(cfg.TronScanAPIURL))
	}
	explorer := tronscan.NewClient(httpClient, explorerOpts...)

	sources := []monitor.Source{
		tronscan.NewNativeSource(explorer, cfg.WalletAddress),
	}
	seenContracts := types.NewSet[string]()
	for _, token := range tokens {
		if _, ok := seenContracts[token.ContractAddress]; ok {
			continue
		}
		seenContracts.Add(token.ContractAddress)

		sources = append(sources, tronscan.NewTokenSource(explorer, cfg.WalletAddress, token.ContractAddress, token.Symbol))
	}

	notifier := telegram.NewNotifier(httpClient, cfg.TelegramBotToken, cfg.TelegramChatID)

	monitorOpts := []monitor.Option{
		monitor.WithPollInterval(cfg.PollInterval),
		monitor.WithGracePeriod(cfg.GracePeriod),
		monitor.WithRetry(retry.New(retry.WithAttempts(2), retry.WithDelay(time.Second))),
	}

	if cfg.PostgresDSN != "" {
		journal, err := postgres.NewClient(ctx, cfg.PostgresDSN, cfg.WalletAddress)
		if err != nil {
			logger.Fatal(ctx, "connecting to postgres", "error", err)
		}
		defer journal.Close()

		monitorOpts = append(monitorOpts, monitor.WithEventJournal(journal))
	}

	mon := monitor.New(cfg.WalletAddress, sources, notifier, monitorOpts...)

	if err := cli.Run(ctx, registry, mon, cfg.WalletAddress); err != nil {
		logger.Fatal(ctx, "running application", "error", err)
	}
}

// newTokenStorage selects the tracked token storage backend. Redis is used
// when an address is configured, otherwise tracking state lives in memory for
// the lifetime of the process.
func newTokenStorage(ctx context.Context, cfg appConfig) (tokenregistry.TokenStorage, func(), error) {
	if cfg.RedisAddress == "" {
		return tokenregistry.NewInMemoryStorage(), func() {}, nil
	}

	client, err := redis.NewClient(ctx, cfg.RedisAddress, cfg.RedisUsername, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return nil, nil, err
	}

	return client, func() { client.Close() }, nil
}
