package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/brandpulse/brandpulse/internal/config"
	"github.com/brandpulse/brandpulse/internal/core/domain"
	"github.com/brandpulse/brandpulse/internal/ingest"
	"github.com/brandpulse/brandpulse/internal/interpret"
	"github.com/brandpulse/brandpulse/internal/jobs"
	"github.com/brandpulse/brandpulse/internal/scrape"
	db "github.com/brandpulse/brandpulse/internal/storage"
)

// analyze runs a single brand analysis pass and prints the result, without
// starting the API or the worker loop.
func main() {
	brand := flag.String("brand", "", "brand to analyze")
	limit := flag.Int("limit", 0, "max posts per source (0 uses the configured default)")
	twitter := flag.Bool("twitter", true, "include twitter")
	reddit := flag.Bool("reddit", true, "include reddit")
	flag.Parse()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	if *brand == "" {
		logger.Fatal().Msg("missing required -brand flag")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if *limit <= 0 {
		*limit = cfg.DefaultLimit
	}

	var sources []domain.Platform
	if *twitter {
		sources = append(sources, domain.PlatformTwitter)
	}

	if *reddit {
		sources = append(sources, domain.PlatformReddit)
	}

	if len(sources) == 0 {
		logger.Fatal().Msg("at least one source must be enabled")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
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

	runner := jobs.NewRunner(registry, pipeline, interpreter, database, jobs.NewStore(1), &logger)

	res, err := runner.Execute(ctx, *brand, *limit, sources)
	if err != nil {
		logger.Fatal().Err(err).Str("brand", *brand).Msg("Analysis failed")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	if err := enc.Encode(res); err != nil {
		logger.Fatal().Err(err).Msg("Failed to encode result")
	}
}
