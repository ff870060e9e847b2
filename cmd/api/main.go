package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/moodtune-labs/moodtune/internal/adapters/memory"
	"github.com/moodtune-labs/moodtune/internal/adapters/openai"
	"github.com/moodtune-labs/moodtune/internal/adapters/postgres"
	"github.com/moodtune-labs/moodtune/internal/adapters/rest"
	"github.com/moodtune-labs/moodtune/internal/adapters/spotify"
	"github.com/moodtune-labs/moodtune/internal/adapters/sqlite"
	"github.com/moodtune-labs/moodtune/internal/config"
	"github.com/moodtune-labs/moodtune/internal/core/ports"
	"github.com/moodtune-labs/moodtune/internal/core/services"
	"github.com/moodtune-labs/moodtune/internal/observability/logging"
	"github.com/moodtune-labs/moodtune/internal/observability/metrics"
)

const serviceName = "moodtune-api"

func main() {
	cfg := config.Load()
	logger := logging.NewJSONLogger(serviceName, cfg.LogLevel)
	slog.SetDefault(logger)

	// Result store. The driver is swappable; everything behind it sees the
	// same repository port.
	var repo ports.AnalysisRepository
	var repoCloser func() error

	switch cfg.StorageDriver {
	case "memory":
		repo = memory.NewStore()
	case "sqlite":
		store, err := sqlite.NewStore(cfg.SQLitePath)
		if err != nil {
			logger.Error("failed to initialize sqlite store", "path", cfg.SQLitePath, "error", err)
			os.Exit(1)
		}
		repo = store
		repoCloser = store.Close
	case "postgres":
		store, err := postgres.NewStore(context.Background(), cfg.PostgresDSN)
		if err != nil {
			logger.Error("failed to initialize postgres store", "error", err)
			os.Exit(1)
		}
		repo = store
		repoCloser = store.Close
	default:
		logger.Error("unknown storage driver", "driver", cfg.StorageDriver)
		os.Exit(1)
	}
	if repoCloser != nil {
		defer repoCloser()
	}

	// Providers are optional. Missing or malformed credentials degrade to
	// the built-in fallbacks instead of refusing to start.
	var model ports.EmotionModel
	if openai.ValidKey(cfg.OpenAIAPIKey) {
		model = openai.NewClient(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.ProviderTimeout)
	} else {
		logger.Warn("no usable OpenAI key, classification uses keyword fallback")
	}

	var catalog ports.TrackCatalog
	if cfg.SpotifyClientID != "" && cfg.SpotifyClientSecret != "" {
		catalog = spotify.NewClient(spotify.Config{
			ClientID:     cfg.SpotifyClientID,
			ClientSecret: cfg.SpotifyClientSecret,
			BaseURL:      cfg.SpotifyBaseURL,
			AuthURL:      cfg.SpotifyAuthURL,
			Timeout:      cfg.ProviderTimeout,
		}, logger)
	} else {
		logger.Warn("no Spotify credentials, recommendations use static catalog")
	}

	classifier := services.NewClassifier(model, logger)
	recommender := services.NewRecommender(catalog, logger)
	svc := services.NewOrchestrator(classifier, recommender, repo, logger)

	httpMetrics := metrics.NewHTTPMetrics(serviceName)
	handler := rest.NewHandler(svc, httpMetrics, logger)

	srv := &http.Server{
		Addr:              ":" + cfg.APIPort,
		Handler:           handler,
		ReadHeaderTimeout: 15 * time.Second,
	}

	logger.Info("moodtune API listening", "port", cfg.APIPort, "storage", cfg.StorageDriver)

	serverErr := make(chan error, 1)
	go func() {
		err := srv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErr:
		if err != nil {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown error", "error", err)
		}
	}
}
