// Package hotspot runs the simulated demand model: a periodic bounded random
// walk over stored hotspot intensities, and keyword matching on delivery app
// notifications.
package hotspot

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/gigpulse/gigpulse-backend/internal/metrics"
	"github.com/gigpulse/gigpulse-backend/internal/models"
	"github.com/gigpulse/gigpulse-backend/internal/notify"
	repo "github.com/gigpulse/gigpulse-backend/internal/repository"
)

const (
	DefaultRedThreshold = 80
	alertBaseID         = 2000

	// intensity + [stepMin, stepMax)
	stepMin = -15
	stepMax = 25

	// seed intensity in [seedMin, seedMax)
	seedMin = 20
	seedMax = 60
)

type seed struct {
	id, name, platform string
	lat, lng           float64
}

var defaultSeeds = []seed{
	{"dd-downtown", "Downtown", models.PlatformDoorDash, 36.206, -119.34},
	{"ue-mall", "Mall", models.PlatformUberEats, 36.21, -119.36},
	{"dd-campus", "Campus", models.PlatformDoorDash, 36.19, -119.33},
}

// Refresher perturbs every stored hotspot once per Run.
type Refresher struct {
	repo      repo.Hotspots
	notify    notify.Notifier
	threshold int

	mu  sync.Mutex // guards rnd
	rnd *rand.Rand
	now func() time.Time
}

type Option func(*Refresher)

// WithRand fixes the random source, for deterministic runs.
func WithRand(r *rand.Rand) Option { return func(f *Refresher) { f.rnd = r } }

func WithClock(now func() time.Time) Option { return func(f *Refresher) { f.now = now } }

func NewRefresher(r repo.Hotspots, n notify.Notifier, threshold int, opts ...Option) *Refresher {
	if n == nil {
		n = notify.Discard{}
	}
	if threshold <= 0 {
		threshold = DefaultRedThreshold
	}
	f := &Refresher{
		repo:      r,
		notify:    n,
		threshold: threshold,
		rnd:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, o := range opts {
		o(f)
	}
	return f
}

func (f *Refresher) Threshold() int { return f.threshold }

// Run seeds the defaults when the table is empty, applies one random step to
// each hotspot, stores the results and alerts on every red one. It returns
// the updated hotspots.
func (f *Refresher) Run(ctx context.Context) ([]models.Hotspot, error) {
	list, err := f.repo.All(ctx)
	if err != nil {
		metrics.HotspotRuns.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("list hotspots: %w", err)
	}
	if len(list) == 0 {
		list, err = f.seed(ctx)
		if err != nil {
			metrics.HotspotRuns.WithLabelValues("error").Inc()
			return nil, err
		}
	}

	now := f.now()
	updated := make([]models.Hotspot, 0, len(list))
	for _, h := range list {
		h.Intensity = models.ClampIntensity(h.Intensity + f.intn(stepMin, stepMax))
		h.UpdatedAt = now
		if err := f.repo.Upsert(ctx, h); err != nil {
			metrics.HotspotRuns.WithLabelValues("error").Inc()
			return nil, fmt.Errorf("upsert hotspot %s: %w", h.ID, err)
		}
		updated = append(updated, h)
	}

	i := 0
	for _, h := range updated {
		if !h.IsRed(f.threshold) {
			continue
		}
		n := notify.Notification{
			ID:      alertBaseID + i,
			Channel: notify.ChannelHotspots,
			Title:   "🔥 Hotspot is red: " + h.Name,
			Text:    fmt.Sprintf("%s • intensity %d", h.Platform, h.Intensity),
		}
		if err := f.notify.Notify(ctx, n); err != nil {
			slog.Warn("hotspot alert", "hotspot", h.ID, "err", err)
		}
		metrics.HotspotRedAlerts.Inc()
		i++
	}

	metrics.HotspotRuns.WithLabelValues("ok").Inc()
	slog.Debug("hotspots refreshed", "count", len(updated), "red", i)
	return updated, nil
}

func (f *Refresher) seed(ctx context.Context) ([]models.Hotspot, error) {
	now := f.now()
	out := make([]models.Hotspot, 0, len(defaultSeeds))
	for _, s := range defaultSeeds {
		h := models.Hotspot{
			ID:        s.id,
			Name:      s.name,
			Lat:       s.lat,
			Lng:       s.lng,
			Intensity: f.intn(seedMin, seedMax),
			Platform:  s.platform,
			UpdatedAt: now,
		}
		if err := f.repo.Upsert(ctx, h); err != nil {
			return nil, fmt.Errorf("seed hotspot %s: %w", h.ID, err)
		}
		out = append(out, h)
	}
	slog.Info("hotspots seeded", "count", len(out))
	return out, nil
}

// intn returns a value in [lo, hi).
func (f *Refresher) intn(lo, hi int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return lo + f.rnd.IntN(hi-lo)
}
