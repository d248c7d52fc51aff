package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/weaveworks/common/user"

	"github.com/jorzel/booking-dashboards/common/render"
	"github.com/jorzel/booking-dashboards/dashboard"
	"github.com/jorzel/booking-dashboards/grafana"
)

type getDashboardsResponse struct {
	Dashboards []grafana.Board `json:"dashboards"`
}

type getMetricsResponse struct {
	// Metrics is a sorted array of metric names
	Metrics []string `json:"metrics"`
}

// requestContext ties the org ID header, if any, and the Prometheus
// timeout to the request context.
func (api *API) requestContext(r *http.Request) (string, context.Context, context.CancelFunc) {
	orgID, ctx, err := user.ExtractOrgIDFromHTTPRequest(r)
	if err != nil {
		// Not multitenant; talk to Prometheus as-is.
		ctx = r.Context()
	}
	ctx, cancel := context.WithTimeout(ctx, api.cfg.prometheus.timeout)
	return orgID, ctx, cancel
}

func dashboardConfig(r *http.Request) *dashboard.Config {
	return &dashboard.Config{
		Range: r.FormValue("window"),
	}
}

// ListDashboards returns the dashboards whose metrics the booking
// service currently exposes.
func (api *API) ListDashboards(w http.ResponseWriter, r *http.Request) {
	orgID, ctx, cancel := api.requestContext(r)
	defer cancel()

	startTime, endTime, err := parseRequestStartEnd(r)
	if err != nil {
		renderError(w, r, errInvalidParameter)
		return
	}
	log.WithFields(log.Fields{"orgID": orgID, "from": startTime, "to": endTime}).Debug("list dashboards")

	metrics, err := api.getMetricNames(ctx, orgID, startTime, endTime)
	if err != nil {
		renderError(w, r, err)
		return
	}

	boards, err := dashboard.GetDashboards(metrics, dashboardConfig(r))
	if err != nil {
		renderError(w, r, err)
		return
	}
	if len(boards) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	render.JSON(w, http.StatusOK, &getDashboardsResponse{
		Dashboards: boards,
	})
}

// GetDashboard returns one dashboard by uid, queries resolved and
// panel ids assigned.
func (api *API) GetDashboard(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	log.WithField("id", id).Debug("get dashboard")

	board, err := dashboard.GetDashboardByID(id, dashboardConfig(r))
	if err != nil {
		renderError(w, r, err)
		return
	}
	if board == nil {
		renderError(w, r, errNotFound)
		return
	}

	render.JSON(w, http.StatusOK, board)
}

// GetDashboardMetrics returns the metric names a dashboard needs.
func (api *API) GetDashboardMetrics(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	log.WithField("id", id).Debug("get dashboard metrics")

	metrics := dashboard.GetDashboardMetrics(id)
	if metrics == nil {
		renderError(w, r, errNotFound)
		return
	}

	render.JSON(w, http.StatusOK, &getMetricsResponse{
		Metrics: metrics,
	})
}

// PushDashboard imports a dashboard into the configured Grafana
// instance.
func (api *API) PushDashboard(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	log.WithField("id", id).Info("push dashboard")

	if api.grafana == nil {
		renderError(w, r, errGrafanaNotConfigured)
		return
	}

	board, err := dashboard.GetDashboardByID(id, dashboardConfig(r))
	if err != nil {
		renderError(w, r, err)
		return
	}
	if board == nil {
		renderError(w, r, errNotFound)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), api.cfg.grafana.timeout+time.Second)
	defer cancel()

	resp, err := api.grafana.ImportDashboard(ctx, grafana.NewUploadRequest(board))
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, resp)
}
