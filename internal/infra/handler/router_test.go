package handler

import (
	"net/http"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouterHealthEndpoint(t *testing.T) {
	router := NewRouter(RouterConfig{
		HealthHandler: &HealthHandler{Upstream: &fakeHealthChecker{}},
	})

	rec := get(t, router, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouterStaticAssets(t *testing.T) {
	assets := fstest.MapFS{
		"app.js": &fstest.MapFile{Data: []byte("console.log('hi');")},
	}
	router := NewRouter(RouterConfig{StaticAssets: assets})

	rec := get(t, router, "/static/app.js")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "console.log")

	rec = get(t, router, "/static/missing.js")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouterMetricsEndpoint(t *testing.T) {
	router := NewRouter(RouterConfig{
		PrometheusHandler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	})

	rec := get(t, router, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouterAppliesMiddlewares(t *testing.T) {
	marker := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Test-Marker", "1")
			next.ServeHTTP(w, r)
		})
	}
	router := NewRouter(RouterConfig{
		HealthHandler: &HealthHandler{},
		Middlewares:   []func(http.Handler) http.Handler{marker, nil},
	})

	rec := get(t, router, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("X-Test-Marker"))
}
