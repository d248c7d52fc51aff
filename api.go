package main

import (
	"net/http"
	"net/url"

	"github.com/bluele/gcache"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/prometheus/client_golang/api/prometheus/v1"

	"github.com/jorzel/booking-dashboards/grafana"
)

// API exposes all the entry points of this service.
type API struct {
	cfg        *config
	prometheus v1.API
	grafana    *grafana.Client
	cache      gcache.Cache
	handler    http.Handler
}

func newAPI(cfg *config) (*API, error) {
	api := &API{
		cfg: cfg,
	}

	r := mux.NewRouter()
	api.registerRoutes(r)
	api.handler = r

	promURI, err := url.ParseRequestURI(cfg.prometheus.uri)
	if err != nil {
		return nil, errors.Wrap(err, "prometheus URI")
	}

	if promURI.Scheme == "mock" {
		api.prometheus = newPrometheusMock(promURI.Path)
	} else {
		client, err := newPrometheusClient(cfg.prometheus.uri)
		if err != nil {
			return nil, err
		}

		api.prometheus = v1.NewAPI(client)
	}

	if cfg.grafana.url != "" {
		api.grafana = grafana.NewClient(grafana.Config{
			URL:     cfg.grafana.url,
			APIKey:  cfg.grafana.apiKey,
			Timeout: cfg.grafana.timeout,
		})
	}

	if cfg.cache.size > 0 {
		api.cache = gcache.New(cfg.cache.size).LRU().Expiration(cfg.cache.expiration).Build()
	}

	return api, nil
}

// healthcheck handles a very simple health check
func (api *API) healthcheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (api *API) registerRoutes(r *mux.Router) {
	for _, route := range []struct {
		name, method, path string
		handler            http.HandlerFunc
	}{
		// Healthcheck
		{"healthcheck", "GET", "/healthcheck", api.healthcheck},

		// Dashboard entry points
		{"api_dashboards", "GET", "/api/dashboards", api.ListDashboards},
		{"api_dashboards_id", "GET", "/api/dashboards/{id}", api.GetDashboard},
		{"api_dashboards_id_metrics", "GET", "/api/dashboards/{id}/metrics", api.GetDashboardMetrics},
		{"api_dashboards_id_push", "POST", "/api/dashboards/{id}/push", api.PushDashboard},
	} {
		r.Handle(route.path, route.handler).Methods(route.method).Name(route.name)
	}
}
