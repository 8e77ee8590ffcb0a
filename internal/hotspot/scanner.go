package hotspot

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/gigpulse/gigpulse-backend/internal/metrics"
	"github.com/gigpulse/gigpulse-backend/internal/models"
	repo "github.com/gigpulse/gigpulse-backend/internal/repository"
)

const deviceAlertIntensity = 95

// HotWords are matched against the lowercased notification title and body.
var HotWords = []string{"busy", "very busy", "dash now", "surge", "quest", "peak pay"}

// Incoming is a notification posted by another app on the driver's device.
type Incoming struct {
	Package string `json:"package"`
	Title   string `json:"title"`
	Text    string `json:"text"`
}

// Scanner marks a platform hotspot busy when a delivery app announces demand.
type Scanner struct {
	repo repo.Hotspots
	now  func() time.Time
}

func NewScanner(r repo.Hotspots) *Scanner {
	return &Scanner{repo: r, now: func() time.Time { return time.Now().UTC() }}
}

// PlatformForPackage maps an app package to a platform, or "" when the
// package belongs to neither supported app.
func PlatformForPackage(pkg string) models.Platform {
	p := strings.ToLower(pkg)
	switch {
	case strings.Contains(p, "dash"):
		return models.PlatformDoorDash
	case strings.Contains(p, "uber"):
		return models.PlatformUberEats
	}
	return ""
}

func hasHotWord(body string) bool {
	for _, w := range HotWords {
		if strings.Contains(body, w) {
			return true
		}
	}
	return false
}

// Scan upserts the platform's device-alert hotspot when n carries a hot word
// and comes from a supported app. It reports whether a row was written.
func (s *Scanner) Scan(ctx context.Context, n Incoming) (models.Hotspot, bool, error) {
	if n.Package == "" {
		return models.Hotspot{}, false, nil
	}
	body := strings.ToLower(n.Title + " " + n.Text)
	if !hasHotWord(body) {
		return models.Hotspot{}, false, nil
	}
	platform := PlatformForPackage(n.Package)
	if platform == "" {
		return models.Hotspot{}, false, nil
	}

	h := models.Hotspot{
		ID:        platform + "-device",
		Name:      platform + " (Device alert)",
		Intensity: deviceAlertIntensity,
		Platform:  platform,
		UpdatedAt: s.now(),
	}
	if err := s.repo.Upsert(ctx, h); err != nil {
		return models.Hotspot{}, false, err
	}
	metrics.ScannerMatches.WithLabelValues(platform).Inc()
	slog.Info("device alert marked hotspot", "platform", platform, "package", n.Package)
	return h, true, nil
}
