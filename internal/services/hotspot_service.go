package services

import (
	"context"
	"strings"
	"time"

	"github.com/gigpulse/gigpulse-backend/internal/models"
	repo "github.com/gigpulse/gigpulse-backend/internal/repository"
)

type HotspotService struct {
	r         repo.Hotspots
	threshold int
	now       func() time.Time
}

func NewHotspotService(r repo.Hotspots, redThreshold int) *HotspotService {
	return &HotspotService{r: r, threshold: redThreshold, now: func() time.Time { return time.Now().UTC() }}
}

type NewHotspot struct {
	Name      string
	Platform  string
	Lat       float64
	Lng       float64
	Intensity int
}

// Save stores a manually entered hotspot under its name/coordinate key,
// replacing an earlier entry with the same key.
func (s *HotspotService) Save(ctx context.Context, in NewHotspot) (models.Hotspot, error) {
	name := strings.TrimSpace(in.Name)
	h := models.Hotspot{
		ID:        models.HotspotKey(name, in.Lat, in.Lng),
		Name:      name,
		Lat:       in.Lat,
		Lng:       in.Lng,
		Intensity: models.ClampIntensity(in.Intensity),
		Platform:  models.NormalizePlatform(in.Platform),
		UpdatedAt: s.now(),
	}
	if err := s.r.Upsert(ctx, h); err != nil {
		return models.Hotspot{}, err
	}
	return h, nil
}

// Get returns repository.ErrNotFound for an unknown id.
func (s *HotspotService) Get(ctx context.Context, id string) (models.Hotspot, error) {
	return s.r.Get(ctx, id)
}

func (s *HotspotService) List(ctx context.Context) ([]models.Hotspot, error) { return s.r.All(ctx) }

func (s *HotspotService) Red(ctx context.Context) ([]models.Hotspot, error) {
	return s.r.Red(ctx, s.threshold)
}

func (s *HotspotService) Threshold() int { return s.threshold }
