package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"chartwhisperer/internal/analysis"
	"chartwhisperer/internal/config"
	"chartwhisperer/internal/gateway/database"
	"chartwhisperer/internal/gateway/notifier"
	"chartwhisperer/internal/gateway/provider"
	"chartwhisperer/internal/journal"
	apihttp "chartwhisperer/internal/transport/http/api"
)

// NewApp builds the application from config. Every client is
// constructed here and handed down explicitly; nothing is process-wide.
func NewApp(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil config")
	}

	visionProvider := provideVisionProvider(cfg, logger)

	store, err := provideJournalStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	prompts, err := providePromptLoader(cfg, logger)
	if err != nil {
		return nil, err
	}

	analysisSvc, err := analysis.NewService(&analysis.Config{
		Provider: visionProvider,
		Prompts:  prompts,
		Logger:   logger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating analysis service: %w", err)
	}

	journalSvc, err := journal.NewService(&journal.Config{
		Store:    store,
		Notifier: provideNotifier(cfg, logger),
		Logger:   logger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating journal service: %w", err)
	}

	httpSrv, err := apihttp.NewServer(apihttp.ServerConfig{
		Addr:     cfg.HTTP.Addr,
		Analysis: analysisSvc,
		Journal:  journalSvc,
		Logger:   logger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating http server: %w", err)
	}

	return &App{cfg: cfg, http: httpSrv}, nil
}

func provideVisionProvider(cfg *config.Config, logger *zerolog.Logger) provider.VisionProvider {
	return provider.NewOpenAIChatClient(
		cfg.Model.BaseURL,
		cfg.Model.APIKey,
		cfg.Model.Name,
		0.1,
		time.Duration(cfg.Model.TimeoutSeconds)*time.Second,
		logger,
	)
}

// provideJournalStore returns nil when no store is configured: the
// journal endpoint stays up in degraded deployments. A configured but
// unreachable store is an operator error and fails the build.
func provideJournalStore(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (database.JournalStorer, error) {
	if !cfg.Journal.Enabled() {
		logger.Warn().Msg("journal store not configured, persistence disabled")
		return nil, nil
	}
	store, err := database.NewStore(ctx, &database.StoreConfig{
		Endpoint: cfg.Journal.DBURL,
		User:     cfg.Journal.DBUser,
		Pass:     cfg.Journal.DBPass,
		Logger:   logger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating journal store: %w", err)
	}
	return store, nil
}

func provideNotifier(cfg *config.Config, logger *zerolog.Logger) notifier.TextNotifier {
	if !cfg.Telegram.Enabled() {
		logger.Warn().Msg("telegram not configured, journal alerts disabled")
		return nil
	}
	return notifier.NewTelegram(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
}

func providePromptLoader(cfg *config.Config, logger *zerolog.Logger) (*config.PromptLoader, error) {
	if cfg.Model.PromptProfile == "" {
		return nil, nil
	}
	loader, err := config.NewPromptLoader(cfg.Model.PromptProfile, logger)
	if err != nil {
		return nil, fmt.Errorf("loading prompt profile: %w", err)
	}
	return loader, nil
}
