package services

import (
	"context"
	"time"

	"github.com/gigpulse/gigpulse-backend/internal/metrics"
	"github.com/gigpulse/gigpulse-backend/internal/models"
	repo "github.com/gigpulse/gigpulse-backend/internal/repository"
)

type TripService struct {
	r   repo.Trips
	now func() time.Time
}

func NewTripService(r repo.Trips) *TripService {
	return &TripService{r: r, now: func() time.Time { return time.Now().UTC() }}
}

type NewTrip struct {
	Platform  string
	Payout    string // dollars
	Miles     string
	StartedAt *time.Time
	EndedAt   *time.Time
}

func (s *TripService) Add(ctx context.Context, in NewTrip) (models.Trip, error) {
	now := s.now()
	t := models.Trip{
		Platform:      models.NormalizePlatform(in.Platform),
		PayoutCents:   ParseCents(in.Payout),
		DistanceMiles: ParseMiles(in.Miles),
		StartedAt:     now,
		EndedAt:       now,
	}
	if in.StartedAt != nil {
		t.StartedAt = in.StartedAt.UTC()
	}
	switch {
	case in.EndedAt != nil:
		t.EndedAt = in.EndedAt.UTC()
	case in.StartedAt != nil:
		t.EndedAt = t.StartedAt
	}
	t, err := s.r.Insert(ctx, t)
	if err != nil {
		return models.Trip{}, err
	}
	metrics.RecordsCreated.WithLabelValues("trip").Inc()
	return t, nil
}

func (s *TripService) List(ctx context.Context) ([]models.Trip, error) { return s.r.All(ctx) }
