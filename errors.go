package main

import (
	"errors"
	"net/http"

	"github.com/jorzel/booking-dashboards/common/render"
)

var (
	// A generic not found error.
	errNotFound = errors.New("not found")

	// A generic invalid GET parameter error
	errInvalidParameter = errors.New("invalid parameter")

	// Returned by the push endpoint when no Grafana instance is
	// configured.
	errGrafanaNotConfigured = errors.New("no Grafana instance configured")
)

func renderError(w http.ResponseWriter, r *http.Request, err error) {
	render.Error(w, r, err, errorStatusCode)
}

func errorStatusCode(err error) int {
	switch err {
	case errNotFound:
		return http.StatusNotFound
	case errInvalidParameter:
		return http.StatusBadRequest
	case errGrafanaNotConfigured:
		return http.StatusNotImplemented
	}

	return http.StatusInternalServerError
}
