package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gigpulse/gigpulse-backend/internal/api/httpx"
	"github.com/gigpulse/gigpulse-backend/internal/api/validate"
	"github.com/gigpulse/gigpulse-backend/internal/hotspot"
	"github.com/gigpulse/gigpulse-backend/internal/models"
	"github.com/gigpulse/gigpulse-backend/internal/repository"
	"github.com/gigpulse/gigpulse-backend/internal/services"
)

type HotspotHandler struct {
	Hotspots *services.HotspotService
	Scanner  *hotspot.Scanner
}

type saveHotspotReq struct {
	Name      string         `json:"name"`
	Platform  string         `json:"platform"`
	Lat       validate.Loose `json:"lat"`
	Lng       validate.Loose `json:"lng"`
	Intensity validate.Loose `json:"intensity"`
}

// Defaults of the hotspot form.
const (
	defaultLat       = 36.2077
	defaultLng       = -119.3473
	defaultIntensity = 50
)

func (h *HotspotHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req saveHotspotReq
	if err := httpx.DecodeLenient(r, &req); err != nil {
		badJSON(w)
		return
	}
	hs, err := h.Hotspots.Save(r.Context(), services.NewHotspot{
		Name:      req.Name,
		Platform:  req.Platform,
		Lat:       req.Lat.Float(defaultLat),
		Lng:       req.Lng.Float(defaultLng),
		Intensity: req.Intensity.Int(defaultIntensity),
	})
	if err != nil {
		serverError(w, r, "save hotspot", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, hs)
}

func (h *HotspotHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		list []models.Hotspot
		err  error
	)
	if r.URL.Query().Get("red") == "true" {
		list, err = h.Hotspots.Red(r.Context())
	} else {
		list, err = h.Hotspots.List(r.Context())
	}
	if err != nil {
		serverError(w, r, "list hotspots", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}

func (h *HotspotHandler) Get(w http.ResponseWriter, r *http.Request) {
	hs, err := h.Hotspots.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, repository.ErrNotFound) {
		httpx.WriteError(w, http.StatusNotFound, "not_found", "hotspot not found", nil)
		return
	}
	if err != nil {
		serverError(w, r, "get hotspot", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, hs)
}

type scanResp struct {
	Matched bool            `json:"matched"`
	Hotspot *models.Hotspot `json:"hotspot,omitempty"`
}

// Ingest takes a notification posted by another app on the device.
func (h *HotspotHandler) Ingest(w http.ResponseWriter, r *http.Request) {
	var in hotspot.Incoming
	if err := httpx.DecodeLenient(r, &in); err != nil {
		badJSON(w)
		return
	}
	hs, ok, err := h.Scanner.Scan(r.Context(), in)
	if err != nil {
		serverError(w, r, "scan notification", err)
		return
	}
	resp := scanResp{Matched: ok}
	if ok {
		resp.Hotspot = &hs
	}
	httpx.WriteJSON(w, http.StatusAccepted, resp)
}
