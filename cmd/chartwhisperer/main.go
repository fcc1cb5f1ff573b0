package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"chartwhisperer/internal/app"
	"chartwhisperer/internal/config"
)

// handleTermination processes context cancellation signals or interrupt
// signals from the OS.
func handleTermination(ctx context.Context, cancel context.CancelFunc) {
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	select {
	case <-ctx.Done():
	case <-interrupt:
		cancel()
	}
}

func newLogger(level string) *zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout).Level(lvl).With().Timestamp().Logger()
	return &logger
}

func main() {
	// A missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Printf("loading config: %v", err)
		return
	}
	logger := newLogger(cfg.Log.Level)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	application, err := app.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error().Err(err).Msg("creating application")
		return
	}

	go handleTermination(ctx, cancel)

	logger.Info().Str("addr", cfg.HTTP.Addr).Msg("starting chart analysis service")
	if err := application.Run(ctx); err != nil {
		logger.Error().Err(err).Msg("running application")
	}
}
