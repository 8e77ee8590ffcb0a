package handlers

import (
	"errors"
	"math"
	"net/http"

	"github.com/gigpulse/gigpulse-backend/internal/api/httpx"
	"github.com/gigpulse/gigpulse-backend/internal/api/validate"
	"github.com/gigpulse/gigpulse-backend/internal/mileage"
	repo "github.com/gigpulse/gigpulse-backend/internal/repository"
)

type MileageHandler struct {
	Tracker *mileage.Tracker
	Events  repo.Mileage
}

func (h *MileageHandler) Start(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, h.Tracker.Start(r.Context()))
}

type fixReq struct {
	Lat validate.Loose `json:"lat"`
	Lng validate.Loose `json:"lng"`
}

func (h *MileageHandler) Fix(w http.ResponseWriter, r *http.Request) {
	var req fixReq
	if err := httpx.DecodeLenient(r, &req); err != nil {
		badJSON(w)
		return
	}
	// a missing coordinate must not read as 0,0 and jump the total
	fix := mileage.Fix{Lat: req.Lat.Float(math.NaN()), Lng: req.Lng.Float(math.NaN())}
	st, err := h.Tracker.Fix(r.Context(), fix)
	if errors.Is(err, mileage.ErrNotTracking) {
		httpx.WriteError(w, http.StatusConflict, "not_tracking", err.Error(), nil)
		return
	}
	if errors.Is(err, mileage.ErrInvalidFix) {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", err.Error(), nil)
		return
	}
	if err != nil {
		serverError(w, r, "mileage fix", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, st)
}

func (h *MileageHandler) Stop(w http.ResponseWriter, r *http.Request) {
	ev, err := h.Tracker.Stop(r.Context())
	if errors.Is(err, mileage.ErrNotTracking) {
		httpx.WriteError(w, http.StatusConflict, "not_tracking", err.Error(), nil)
		return
	}
	if err != nil {
		serverError(w, r, "mileage stop", err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, ev)
}

func (h *MileageHandler) Status(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, h.Tracker.Status())
}

func (h *MileageHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Events.All(r.Context())
	if err != nil {
		serverError(w, r, "list mileage", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}
