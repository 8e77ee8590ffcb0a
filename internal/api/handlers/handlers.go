// Package handlers exposes the driver-facing screens as JSON endpoints.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gigpulse/gigpulse-backend/internal/api/httpx"
	"github.com/gigpulse/gigpulse-backend/internal/api/validate"
	"github.com/gigpulse/gigpulse-backend/internal/models"
)

func badJSON(w http.ResponseWriter) {
	httpx.WriteError(w, http.StatusBadRequest, "bad_request", "malformed JSON body", nil)
}

func serverError(w http.ResponseWriter, r *http.Request, what string, err error) {
	slog.ErrorContext(r.Context(), what, "err", err, "path", r.URL.Path)
	httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "internal error", nil)
}

// window reads ?from=&to= and writes a 400 on bad input.
func window(w http.ResponseWriter, r *http.Request, def models.Window) (models.Window, bool) {
	q := r.URL.Query()
	win, errs := validate.Window(q.Get("from"), q.Get("to"), def)
	if errs != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid time window", errs)
		return models.Window{}, false
	}
	return win, true
}
