package postgres

import (
	"context"
	"errors"

	"github.com/gigpulse/gigpulse-backend/internal/models"
	"github.com/gigpulse/gigpulse-backend/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type hotspotsRepo struct{ pool *pgxpool.Pool }

const hotspotCols = `id, name, lat, lng, intensity, platform, updated_at`

func (r *hotspotsRepo) Upsert(ctx context.Context, h models.Hotspot) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO hotspots(`+hotspotCols+`)
		 VALUES($1,$2,$3,$4,$5,$6,$7)
		 ON CONFLICT (id) DO UPDATE
		 SET name = EXCLUDED.name,
		     lat = EXCLUDED.lat,
		     lng = EXCLUDED.lng,
		     intensity = EXCLUDED.intensity,
		     platform = EXCLUDED.platform,
		     updated_at = EXCLUDED.updated_at`,
		h.ID, h.Name, h.Lat, h.Lng, h.Intensity, h.Platform, h.UpdatedAt,
	)
	return err
}

func (r *hotspotsRepo) Get(ctx context.Context, id string) (models.Hotspot, error) {
	var h models.Hotspot
	err := r.pool.QueryRow(ctx,
		`SELECT `+hotspotCols+` FROM hotspots WHERE id=$1`, id,
	).Scan(&h.ID, &h.Name, &h.Lat, &h.Lng, &h.Intensity, &h.Platform, &h.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Hotspot{}, repository.ErrNotFound
	}
	h.UpdatedAt = h.UpdatedAt.UTC()
	return h, err
}

func (r *hotspotsRepo) All(ctx context.Context) ([]models.Hotspot, error) {
	return r.list(ctx,
		`SELECT `+hotspotCols+` FROM hotspots ORDER BY intensity DESC, id`)
}

func (r *hotspotsRepo) Red(ctx context.Context, threshold int) ([]models.Hotspot, error) {
	return r.list(ctx,
		`SELECT `+hotspotCols+` FROM hotspots WHERE intensity >= $1 ORDER BY intensity DESC, id`,
		threshold)
}

func (r *hotspotsRepo) list(ctx context.Context, q string, args ...any) ([]models.Hotspot, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Hotspot{}
	for rows.Next() {
		var h models.Hotspot
		if err := rows.Scan(&h.ID, &h.Name, &h.Lat, &h.Lng, &h.Intensity, &h.Platform, &h.UpdatedAt); err != nil {
			return nil, err
		}
		h.UpdatedAt = h.UpdatedAt.UTC()
		out = append(out, h)
	}
	return out, rows.Err()
}
