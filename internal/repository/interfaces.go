package repository

import (
	"context"
	"errors"
	"time"

	"github.com/gigpulse/gigpulse-backend/internal/models"
)

var ErrNotFound = errors.New("not found")

// Range sums treat from and to as inclusive bounds and return zero when no
// rows match.

type Trips interface {
	Insert(ctx context.Context, t models.Trip) (models.Trip, error)
	All(ctx context.Context) ([]models.Trip, error)
	SumCents(ctx context.Context, from, to time.Time) (int64, error)
}

type Expenses interface {
	Insert(ctx context.Context, e models.Expense) (models.Expense, error)
	All(ctx context.Context) ([]models.Expense, error)
	SumCents(ctx context.Context, from, to time.Time) (int64, error)
}

type Mileage interface {
	Insert(ctx context.Context, m models.MileageEvent) (models.MileageEvent, error)
	All(ctx context.Context) ([]models.MileageEvent, error)
	SumMiles(ctx context.Context, from, to time.Time) (float64, error)
}

type Hotspots interface {
	// Upsert replaces any row with the same ID.
	Upsert(ctx context.Context, h models.Hotspot) error
	Get(ctx context.Context, id string) (models.Hotspot, error)
	All(ctx context.Context) ([]models.Hotspot, error)
	Red(ctx context.Context, threshold int) ([]models.Hotspot, error)
}

// Repositories bundles the four accessors over one store handle.
type Repositories struct {
	Trips    Trips
	Expenses Expenses
	Mileage  Mileage
	Hotspots Hotspots
}
