// Package render has helpers to write API responses.
package render

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/weaveworks/common/logging"
	"github.com/weaveworks/common/user"
)

// JSON renders a response into the api as json.
func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error(err)
	}
}

// Error renders a specific error to the API
func Error(w http.ResponseWriter, r *http.Request, err error, errorStatusCode func(error) int) {
	user.LogWith(r.Context(), logging.Global()).Errorf("%s %s: %v", r.Method, r.URL.Path, err)

	code := errorStatusCode(err)
	errstr := err.Error()
	if code == http.StatusInternalServerError {
		errstr = "An internal server error occurred"
	}

	JSON(w, code, map[string][]map[string]interface{}{
		"errors": {{"message": errstr}},
	})
}
