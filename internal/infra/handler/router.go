package handler

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// RouterConfig bundles handler dependencies.
type RouterConfig struct {
	PageHandler   *PageHandler
	HealthHandler *HealthHandler

	StaticAssets      fs.FS
	Middlewares       []func(http.Handler) http.Handler
	PrometheusHandler http.Handler
}

// NewRouter wires handlers and middlewares.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Compress(5))

	for _, mw := range cfg.Middlewares {
		if mw == nil {
			continue
		}
		r.Use(mw)
	}

	if cfg.PageHandler != nil {
		cfg.PageHandler.RegisterRoutes(r)
	}
	if cfg.HealthHandler != nil {
		r.Get("/healthz", cfg.HealthHandler.ServeHTTP)
	}
	if cfg.PrometheusHandler != nil {
		r.Handle("/metrics", cfg.PrometheusHandler)
	}
	if cfg.StaticAssets != nil {
		fileServer := http.FileServer(http.FS(cfg.StaticAssets))
		r.Handle("/static/*", http.StripPrefix("/static/", fileServer))
	}

	return r
}
