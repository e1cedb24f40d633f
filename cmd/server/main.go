package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/brandpulse/brandpulse/internal/api"
	"github.com/brandpulse/brandpulse/internal/config"
	"github.com/brandpulse/brandpulse/internal/ingest"
	"github.com/brandpulse/brandpulse/internal/interpret"
	"github.com/brandpulse/brandpulse/internal/jobs"
	"github.com/brandpulse/brandpulse/internal/observability"
	"github.com/brandpulse/brandpulse/internal/scrape"
	db "github.com/brandpulse/brandpulse/internal/storage"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	setLogLevel(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	database, err := db.New(ctx, cfg.PostgresDSN, &logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer database.Close()

	if err := database.Migrate(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	keywords, err := cfg.BrandKeywords()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to parse brand keywords")
	}

	pipeline := ingest.New(ingest.NewContextFilter(keywords), &logger)

	derivers := interpret.DefaultDerivers()
	derivers.Summary = interpret.NewSummaryDeriver(cfg.LLMAPIKey, cfg.LLMModel, &logger)

	interpreter := interpret.New(interpret.NewVADERClassifier(), derivers, &logger)

	registry := scrape.NewRegistry(
		scrape.NewReddit(cfg.RedditClientID, cfg.RedditClientSecret, cfg.RedditUserAgent, cfg.ScrapeTimeout, &logger),
		scrape.NewTwitter(cfg.TwitterBearerToken, cfg.ScrapeTimeout, &logger),
	)

	jobStore := jobs.NewStore(cfg.JobQueueSize)
	runner := jobs.NewRunner(registry, pipeline, interpreter, database, jobStore, &logger)

	healthServer := observability.NewServer(database, cfg.HealthPort, &logger)

	go func() {
		if err := healthServer.Start(ctx); err != nil {
			logger.Error().Err(err).Msg("Health server error")
		}
	}()

	apiServer := api.NewServer(jobStore, database, cfg.DefaultLimit, &logger)

	go func() {
		if err := apiServer.Start(ctx, cfg.APIPort); err != nil {
			logger.Error().Err(err).Msg("API server error")
		}
	}()

	logger.Info().Msg("Starting analysis worker")

	if err := runner.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Fatal().Err(err).Msg("Worker error")
	}

	logger.Info().Msg("Server stopped")
}

// setLogLevel sets the global log level based on the configuration.
func setLogLevel(level string) {
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
