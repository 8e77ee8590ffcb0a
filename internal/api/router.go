package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/gigpulse/gigpulse-backend/internal/api/handlers"
	"github.com/gigpulse/gigpulse-backend/internal/hotspot"
	"github.com/gigpulse/gigpulse-backend/internal/metrics"
	"github.com/gigpulse/gigpulse-backend/internal/middleware"
	"github.com/gigpulse/gigpulse-backend/internal/mileage"
	repo "github.com/gigpulse/gigpulse-backend/internal/repository"
	"github.com/gigpulse/gigpulse-backend/internal/services"
)

type RouterDeps struct {
	RateRPS  int
	FixRPS   int
	Settings handlers.Settings

	Trips    *services.TripService
	Expenses *services.ExpenseService
	Earnings *services.EarningsService
	Hotspots *services.HotspotService
	Scanner  *hotspot.Scanner
	Tracker  *mileage.Tracker
	Mileage  repo.Mileage
}

func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.HTTPMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	// health & metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	dash := &handlers.DashboardHandler{Earnings: d.Earnings, Settings: d.Settings}
	trips := &handlers.TripHandler{Trips: d.Trips}
	exp := &handlers.ExpenseHandler{Expenses: d.Expenses, Earnings: d.Earnings}
	hs := &handlers.HotspotHandler{Hotspots: d.Hotspots, Scanner: d.Scanner}
	mil := &handlers.MileageHandler{Tracker: d.Tracker, Events: d.Mileage}

	r.Route("/api/v1", func(r chi.Router) {
		// fixes stream from the phone and get their own bucket
		r.With(middleware.RateLimit(d.FixRPS)).Post("/mileage/fixes", mil.Fix)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(d.RateRPS))

			r.Get("/dashboard", dash.Get)
			r.Get("/settings", dash.GetSettings)

			r.Get("/hotspots", hs.List)
			r.Post("/hotspots", hs.Save)
			r.Get("/hotspots/{id}", hs.Get)
			r.Post("/notifications", hs.Ingest)

			r.Get("/trips", trips.List)
			r.Post("/trips", trips.Add)

			r.Get("/mileage", mil.List)
			r.Get("/mileage/status", mil.Status)
			r.Post("/mileage/start", mil.Start)
			r.Post("/mileage/stop", mil.Stop)

			r.Get("/earnings", exp.Summary)
			r.Get("/expenses", exp.List)
			r.Post("/expenses", exp.Add)
		})
	})

	return r
}
