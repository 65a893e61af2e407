package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"

	"charview/internal/app/browse"
	"charview/internal/infra/external/rickmorty"
	"charview/internal/infra/handler"
	"charview/internal/infra/view"
	"charview/internal/platform/config"
	"charview/internal/platform/logger"
	"charview/internal/platform/metrics"
	"charview/internal/platform/server"
)

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(logger.Config{
		Level:  logger.Level(cfg.App.LogLevel),
		Format: logger.Format(cfg.App.LogFormat),
	})
	logger.SetDefault(log)

	client := rickmorty.NewClient(rickmorty.ClientConfig{
		HTTPClient: &http.Client{Timeout: cfg.Upstream.Timeout},
		BaseURL:    cfg.Upstream.BaseURL,
		UserAgent:  cfg.Upstream.UserAgent,
	})

	browseService := browse.NewService(client, cfg.Upstream.PageSize, log)

	renderer, err := view.NewRenderer()
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}
	staticAssets, err := view.StaticFS()
	if err != nil {
		return fmt.Errorf("load static assets: %w", err)
	}

	pageHandler := handler.NewPageHandler(browseService, client, client, renderer, log)
	healthHandler := &handler.HealthHandler{Upstream: client}

	middlewares := []func(http.Handler) http.Handler{
		server.RequestID(),
		server.RequestLogger(log),
		server.Recoverer(log),
		server.SecurityHeaders(imageHost(cfg.Upstream.BaseURL)),
	}

	var prometheusHandler http.Handler
	if cfg.App.EnableMetrics {
		httpMetrics := metrics.NewHTTPMetrics()
		middlewares = append(middlewares, httpMetrics.Middleware)
		prometheusHandler = httpMetrics.Handler()
	}

	router := handler.NewRouter(handler.RouterConfig{
		PageHandler:       pageHandler,
		HealthHandler:     healthHandler,
		StaticAssets:      staticAssets,
		Middlewares:       middlewares,
		PrometheusHandler: prometheusHandler,
	})

	srv := server.New(server.Config{
		Address:      cfg.Server.Address(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}, router, log)

	return srv.ListenAndServeWithGracefulShutdown()
}

// imageHost derives the host allowed to serve character images from the
// upstream base URL.
func imageHost(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" {
		return "https://rickandmortyapi.com"
	}
	return u.Scheme + "://" + u.Host
}
