package sqlite

import (
	"time"

	"github.com/gigpulse/gigpulse-backend/internal/models"
)

// Timestamps are stored as epoch milliseconds so range filters compare
// integers rather than driver-formatted strings.

type tripRow struct {
	ID            int64   `gorm:"column:id;primaryKey;autoIncrement"`
	Platform      string  `gorm:"column:platform;not null"`
	PayoutCents   int64   `gorm:"column:payout_cents;not null"`
	DistanceMiles float64 `gorm:"column:distance_miles;not null"`
	StartedAt     int64   `gorm:"column:started_at;index;not null"`
	EndedAt       int64   `gorm:"column:ended_at;not null"`
}

func (tripRow) TableName() string { return "trips" }

type expenseRow struct {
	ID          int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Category    string `gorm:"column:category;not null"`
	AmountCents int64  `gorm:"column:amount_cents;not null"`
	At          int64  `gorm:"column:at;index;not null"`
	Note        string `gorm:"column:note;not null;default:''"`
}

func (expenseRow) TableName() string { return "expenses" }

type mileageRow struct {
	ID        int64   `gorm:"column:id;primaryKey;autoIncrement"`
	StartedAt int64   `gorm:"column:started_at;index;not null"`
	EndedAt   int64   `gorm:"column:ended_at;not null"`
	Miles     float64 `gorm:"column:miles;not null"`
}

func (mileageRow) TableName() string { return "mileage_events" }

type hotspotRow struct {
	ID        string  `gorm:"column:id;primaryKey"`
	Name      string  `gorm:"column:name;not null"`
	Lat       float64 `gorm:"column:lat;not null"`
	Lng       float64 `gorm:"column:lng;not null"`
	Intensity int     `gorm:"column:intensity;index;not null"`
	Platform  string  `gorm:"column:platform;not null;default:'DoorDash'"`
	UpdatedAt int64   `gorm:"column:updated_at;not null;autoUpdateTime:false"`
}

func (hotspotRow) TableName() string { return "hotspots" }

func toMillis(t time.Time) int64 { return t.UnixMilli() }

func fromMillis(ms int64) time.Time { return time.UnixMilli(ms).UTC() }

func tripFromModel(t models.Trip) tripRow {
	return tripRow{
		ID:            t.ID,
		Platform:      t.Platform,
		PayoutCents:   t.PayoutCents,
		DistanceMiles: t.DistanceMiles,
		StartedAt:     toMillis(t.StartedAt),
		EndedAt:       toMillis(t.EndedAt),
	}
}

func (r tripRow) model() models.Trip {
	return models.Trip{
		ID:            r.ID,
		Platform:      r.Platform,
		PayoutCents:   r.PayoutCents,
		DistanceMiles: r.DistanceMiles,
		StartedAt:     fromMillis(r.StartedAt),
		EndedAt:       fromMillis(r.EndedAt),
	}
}

func expenseFromModel(e models.Expense) expenseRow {
	return expenseRow{ID: e.ID, Category: e.Category, AmountCents: e.AmountCents, At: toMillis(e.At), Note: e.Note}
}

func (r expenseRow) model() models.Expense {
	return models.Expense{ID: r.ID, Category: r.Category, AmountCents: r.AmountCents, At: fromMillis(r.At), Note: r.Note}
}

func mileageFromModel(m models.MileageEvent) mileageRow {
	return mileageRow{ID: m.ID, StartedAt: toMillis(m.StartedAt), EndedAt: toMillis(m.EndedAt), Miles: m.Miles}
}

func (r mileageRow) model() models.MileageEvent {
	return models.MileageEvent{ID: r.ID, StartedAt: fromMillis(r.StartedAt), EndedAt: fromMillis(r.EndedAt), Miles: r.Miles}
}

func hotspotFromModel(h models.Hotspot) hotspotRow {
	return hotspotRow{
		ID:        h.ID,
		Name:      h.Name,
		Lat:       h.Lat,
		Lng:       h.Lng,
		Intensity: h.Intensity,
		Platform:  h.Platform,
		UpdatedAt: toMillis(h.UpdatedAt),
	}
}

func (r hotspotRow) model() models.Hotspot {
	return models.Hotspot{
		ID:        r.ID,
		Name:      r.Name,
		Lat:       r.Lat,
		Lng:       r.Lng,
		Intensity: r.Intensity,
		Platform:  r.Platform,
		UpdatedAt: fromMillis(r.UpdatedAt),
	}
}
