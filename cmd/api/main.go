package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gigpulse/gigpulse-backend/internal/api"
	"github.com/gigpulse/gigpulse-backend/internal/api/handlers"
	"github.com/gigpulse/gigpulse-backend/internal/config"
	"github.com/gigpulse/gigpulse-backend/internal/db"
	"github.com/gigpulse/gigpulse-backend/internal/hotspot"
	"github.com/gigpulse/gigpulse-backend/internal/logger"
	"github.com/gigpulse/gigpulse-backend/internal/metrics"
	"github.com/gigpulse/gigpulse-backend/internal/mileage"
	"github.com/gigpulse/gigpulse-backend/internal/notify"
	repo "github.com/gigpulse/gigpulse-backend/internal/repository"
	"github.com/gigpulse/gigpulse-backend/internal/repository/postgres"
	"github.com/gigpulse/gigpulse-backend/internal/repository/sqlite"
	"github.com/gigpulse/gigpulse-backend/internal/services"
	"github.com/gigpulse/gigpulse-backend/internal/worker"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env, cfg.LogLevel)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		log.Error("store", "driver", cfg.StoreDriver, "err", err)
		os.Exit(1)
	}
	defer closeStore()

	metrics.Init()

	wp := worker.NewPool(cfg.Workers)
	defer wp.Stop()

	notifier := notify.NewAsync(wp, buildNotifier(cfg, log))

	tracker := mileage.NewTracker(repos.Mileage, notifier)
	refresher := hotspot.NewRefresher(repos.Hotspots, notifier, cfg.HotspotRedThreshold)
	schedDone := make(chan struct{})
	go func() {
		defer close(schedDone)
		hotspot.Schedule(ctx, cfg.HotspotInterval, "hotspots", refresher.Job())
	}()

	r := api.NewRouter(api.RouterDeps{
		RateRPS: cfg.RateRPS,
		FixRPS:  cfg.FixRateRPS,
		Settings: handlers.Settings{
			Store:               cfg.StoreDriver,
			HotspotInterval:     cfg.HotspotInterval,
			HotspotRedThreshold: cfg.HotspotRedThreshold,
			TelegramAlerts:      cfg.TelegramToken != "" && cfg.TelegramChatID != 0,
		},
		Trips:    services.NewTripService(repos.Trips),
		Expenses: services.NewExpenseService(repos.Expenses),
		Earnings: services.NewEarningsService(repos, cfg.HotspotRedThreshold),
		Hotspots: services.NewHotspotService(repos.Hotspots, cfg.HotspotRedThreshold),
		Scanner:  hotspot.NewScanner(repos.Hotspots),
		Tracker:  tracker,
		Mileage:  repos.Mileage,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort, "store", cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)

	// an open run is still written when the process goes down
	if tracker.Status().Tracking {
		if _, err := tracker.Stop(shutdownCtx); err != nil {
			log.Error("stop mileage on shutdown", "err", err)
		}
	}
	// the refresher submits alerts to the pool; let it finish before wp.Stop
	<-schedDone
}

func openStore(ctx context.Context, cfg config.Config) (repo.Repositories, func(), error) {
	if cfg.StoreDriver == "postgres" {
		pool, err := db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return repo.Repositories{}, nil, err
		}
		if cfg.Migrate {
			if err := db.RunMigrations(ctx, pool); err != nil {
				pool.Close()
				return repo.Repositories{}, nil, err
			}
		}
		return postgres.NewRepositories(pool), pool.Close, nil
	}

	repos, gdb, err := sqlite.Open(cfg.SQLitePath)
	if err != nil {
		return repo.Repositories{}, nil, err
	}
	return repos, func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}, nil
}

// buildNotifier always logs; Telegram is added when both credentials are set.
func buildNotifier(cfg config.Config, log *slog.Logger) notify.Notifier {
	out := notify.Multi{notify.LogNotifier{Log: log}}
	if cfg.TelegramToken == "" || cfg.TelegramChatID == 0 {
		return out
	}
	tg, err := notify.NewTelegram(cfg.TelegramToken, cfg.TelegramChatID, notify.ChannelHotspots)
	if err != nil {
		log.Warn("telegram disabled", "err", err)
		return out
	}
	return append(out, tg)
}
