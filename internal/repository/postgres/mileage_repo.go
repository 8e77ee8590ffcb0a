package postgres

import (
	"context"
	"time"

	"github.com/gigpulse/gigpulse-backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type mileageRepo struct{ pool *pgxpool.Pool }

func (r *mileageRepo) Insert(ctx context.Context, m models.MileageEvent) (models.MileageEvent, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO mileage_events(started_at, ended_at, miles)
		 VALUES($1,$2,$3)
		 RETURNING id`,
		m.StartedAt, m.EndedAt, m.Miles,
	).Scan(&m.ID)
	return m, err
}

func (r *mileageRepo) All(ctx context.Context) ([]models.MileageEvent, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, started_at, ended_at, miles
		   FROM mileage_events
		  ORDER BY started_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.MileageEvent{}
	for rows.Next() {
		var m models.MileageEvent
		if err := rows.Scan(&m.ID, &m.StartedAt, &m.EndedAt, &m.Miles); err != nil {
			return nil, err
		}
		m.StartedAt, m.EndedAt = m.StartedAt.UTC(), m.EndedAt.UTC()
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *mileageRepo) SumMiles(ctx context.Context, from, to time.Time) (float64, error) {
	var sum float64
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(miles), 0)::double precision
		   FROM mileage_events
		  WHERE started_at BETWEEN $1 AND $2`,
		from, to,
	).Scan(&sum)
	return sum, err
}
