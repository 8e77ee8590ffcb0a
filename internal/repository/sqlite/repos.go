package sqlite

import (
	"context"
	"errors"
	"time"

	"github.com/gigpulse/gigpulse-backend/internal/models"
	"github.com/gigpulse/gigpulse-backend/internal/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type tripsRepo struct{ db *gorm.DB }

func (r *tripsRepo) Insert(ctx context.Context, t models.Trip) (models.Trip, error) {
	row := tripFromModel(t)
	row.ID = 0
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return models.Trip{}, err
	}
	return row.model(), nil
}

func (r *tripsRepo) All(ctx context.Context) ([]models.Trip, error) {
	var rows []tripRow
	if err := r.db.WithContext(ctx).Order("started_at DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]models.Trip, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.model())
	}
	return out, nil
}

func (r *tripsRepo) SumCents(ctx context.Context, from, to time.Time) (int64, error) {
	return sumInt(ctx, r.db, &tripRow{}, "payout_cents", "started_at", from, to)
}

type expensesRepo struct{ db *gorm.DB }

func (r *expensesRepo) Insert(ctx context.Context, e models.Expense) (models.Expense, error) {
	row := expenseFromModel(e)
	row.ID = 0
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return models.Expense{}, err
	}
	return row.model(), nil
}

func (r *expensesRepo) All(ctx context.Context) ([]models.Expense, error) {
	var rows []expenseRow
	if err := r.db.WithContext(ctx).Order("at DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]models.Expense, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.model())
	}
	return out, nil
}

func (r *expensesRepo) SumCents(ctx context.Context, from, to time.Time) (int64, error) {
	return sumInt(ctx, r.db, &expenseRow{}, "amount_cents", "at", from, to)
}

type mileageRepo struct{ db *gorm.DB }

func (r *mileageRepo) Insert(ctx context.Context, m models.MileageEvent) (models.MileageEvent, error) {
	row := mileageFromModel(m)
	row.ID = 0
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return models.MileageEvent{}, err
	}
	return row.model(), nil
}

func (r *mileageRepo) All(ctx context.Context) ([]models.MileageEvent, error) {
	var rows []mileageRow
	if err := r.db.WithContext(ctx).Order("started_at DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]models.MileageEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.model())
	}
	return out, nil
}

func (r *mileageRepo) SumMiles(ctx context.Context, from, to time.Time) (float64, error) {
	var sum float64
	err := r.db.WithContext(ctx).Model(&mileageRow{}).
		Select("COALESCE(SUM(miles), 0)").
		Where("started_at BETWEEN ? AND ?", toMillis(from), toMillis(to)).
		Scan(&sum).Error
	return sum, err
}

type hotspotsRepo struct{ db *gorm.DB }

func (r *hotspotsRepo) Upsert(ctx context.Context, h models.Hotspot) error {
	row := hotspotFromModel(h)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "lat", "lng", "intensity", "platform", "updated_at"}),
	}).Create(&row).Error
}

func (r *hotspotsRepo) Get(ctx context.Context, id string) (models.Hotspot, error) {
	var row hotspotRow
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Hotspot{}, repository.ErrNotFound
	}
	if err != nil {
		return models.Hotspot{}, err
	}
	return row.model(), nil
}

func (r *hotspotsRepo) All(ctx context.Context) ([]models.Hotspot, error) {
	return r.list(r.db.WithContext(ctx))
}

func (r *hotspotsRepo) Red(ctx context.Context, threshold int) ([]models.Hotspot, error) {
	return r.list(r.db.WithContext(ctx).Where("intensity >= ?", threshold))
}

func (r *hotspotsRepo) list(q *gorm.DB) ([]models.Hotspot, error) {
	var rows []hotspotRow
	if err := q.Order("intensity DESC, id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]models.Hotspot, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.model())
	}
	return out, nil
}

func sumInt(ctx context.Context, db *gorm.DB, model any, col, tsCol string, from, to time.Time) (int64, error) {
	var sum int64
	err := db.WithContext(ctx).Model(model).
		Select("COALESCE(SUM("+col+"), 0)").
		Where(tsCol+" BETWEEN ? AND ?", toMillis(from), toMillis(to)).
		Scan(&sum).Error
	return sum, err
}
