package handlers

import (
	"net/http"

	"github.com/gigpulse/gigpulse-backend/internal/api/httpx"
	"github.com/gigpulse/gigpulse-backend/internal/api/validate"
	"github.com/gigpulse/gigpulse-backend/internal/services"
)

type TripHandler struct {
	Trips *services.TripService
}

type addTripReq struct {
	Platform  string         `json:"platform"`
	Payout    validate.Loose `json:"payout"` // dollars, e.g. "12.50"
	Miles     validate.Loose `json:"miles"`
	StartedAt string         `json:"started_at,omitempty"`
	EndedAt   string         `json:"ended_at,omitempty"`
}

func (h *TripHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addTripReq
	if err := httpx.DecodeLenient(r, &req); err != nil {
		badJSON(w)
		return
	}
	t, err := h.Trips.Add(r.Context(), services.NewTrip{
		Platform:  req.Platform,
		Payout:    req.Payout.String(),
		Miles:     req.Miles.String(),
		StartedAt: validate.OptionalTime(req.StartedAt),
		EndedAt:   validate.OptionalTime(req.EndedAt),
	})
	if err != nil {
		serverError(w, r, "add trip", err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, t)
}

func (h *TripHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Trips.List(r.Context())
	if err != nil {
		serverError(w, r, "list trips", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}
