// README: Entry point; loads config, wires the trip pipeline, starts the HTTP server.
package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"tripsmith/internal/ai"
	"tripsmith/internal/config"
	httptransport "tripsmith/internal/http"
	"tripsmith/internal/maps"
	"tripsmith/internal/places"
	"tripsmith/internal/service"
)

func main() {
	// A local .env is optional; deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("load config")
	}

	logger := newLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var provider ai.Provider
	switch cfg.AI.Provider {
	case "openai":
		provider = ai.NewOpenAIProvider(cfg.AI.OpenAIKey)
	default:
		gp, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
		if err != nil {
			logger.Fatal().Err(err).Msg("init gemini provider")
		}
		defer gp.Close()
		provider = gp
	}

	extractor := ai.NewExtractor(provider, logger)
	searcher := places.NewClient(cfg.Places.APIKey, cfg.Places.BaseURL, logger)

	var routes service.LegEstimator
	if cfg.Maps.APIKey != "" {
		rs, err := maps.NewRouteService(cfg.Maps.APIKey)
		if err != nil {
			logger.Fatal().Err(err).Msg("init route service")
		}
		routes = rs
	}

	planner := service.NewTripPlanner(extractor, searcher, routes, logger)

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Planner: planner,
		Log:     logger,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler.Routes()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("shutdown")
		}
	}()

	logger.Info().
		Str("addr", cfg.HTTP.Addr).
		Str("provider", cfg.AI.Provider).
		Bool("travel_enrichment", routes != nil).
		Msg("listening")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal().Err(err).Msg("server")
	}
}

func newLogger(cfg config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	var out io.Writer = os.Stderr
	if cfg.Log.Pretty {
		out = zerolog.ConsoleWriter{Out: os.Stderr}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
