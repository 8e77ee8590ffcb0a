package handlers

import (
	"net/http"
	"time"

	"github.com/gigpulse/gigpulse-backend/internal/api/httpx"
	"github.com/gigpulse/gigpulse-backend/internal/services"
)

type DashboardHandler struct {
	Earnings *services.EarningsService
	Settings Settings
}

func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	win, ok := window(w, r, h.Earnings.DefaultWindow())
	if !ok {
		return
	}
	d, err := h.Earnings.Dashboard(r.Context(), win)
	if err != nil {
		serverError(w, r, "dashboard", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, d)
}

// Settings is what the settings screen shows.
type Settings struct {
	Store               string        `json:"store"`
	HotspotInterval     time.Duration `json:"-"`
	HotspotRedThreshold int           `json:"hotspot_red_threshold"`
	TelegramAlerts      bool          `json:"telegram_alerts"`
}

type settingsResp struct {
	Settings
	HotspotInterval string   `json:"hotspot_interval"`
	Tips            []string `json:"tips"`
}

var settingsTips = []string{
	"Forward DoorDash/UberEats notifications to POST /api/v1/notifications to auto-mark hotspots when they send 'busy' alerts.",
	"Import CSV payouts (Profile → Import) to sync historical earnings.",
	"Start and stop mileage tracking from the Trips screen to record miles automatically.",
}

func (h *DashboardHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, settingsResp{
		Settings:        h.Settings,
		HotspotInterval: h.Settings.HotspotInterval.String(),
		Tips:            settingsTips,
	})
}
