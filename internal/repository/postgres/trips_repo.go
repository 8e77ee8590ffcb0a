package postgres

import (
	"context"
	"time"

	"github.com/gigpulse/gigpulse-backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type tripsRepo struct{ pool *pgxpool.Pool }

func (r *tripsRepo) Insert(ctx context.Context, t models.Trip) (models.Trip, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO trips(platform, payout_cents, distance_miles, started_at, ended_at)
		 VALUES($1,$2,$3,$4,$5)
		 RETURNING id`,
		t.Platform, t.PayoutCents, t.DistanceMiles, t.StartedAt, t.EndedAt,
	).Scan(&t.ID)
	return t, err
}

func (r *tripsRepo) All(ctx context.Context) ([]models.Trip, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, platform, payout_cents, distance_miles, started_at, ended_at
		   FROM trips
		  ORDER BY started_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Trip{}
	for rows.Next() {
		var t models.Trip
		if err := rows.Scan(&t.ID, &t.Platform, &t.PayoutCents, &t.DistanceMiles, &t.StartedAt, &t.EndedAt); err != nil {
			return nil, err
		}
		t.StartedAt, t.EndedAt = t.StartedAt.UTC(), t.EndedAt.UTC()
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *tripsRepo) SumCents(ctx context.Context, from, to time.Time) (int64, error) {
	var sum int64
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(payout_cents), 0)::bigint
		   FROM trips
		  WHERE started_at BETWEEN $1 AND $2`,
		from, to,
	).Scan(&sum)
	return sum, err
}
