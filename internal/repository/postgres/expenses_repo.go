package postgres

import (
	"context"
	"time"

	"github.com/gigpulse/gigpulse-backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type expensesRepo struct{ pool *pgxpool.Pool }

func (r *expensesRepo) Insert(ctx context.Context, e models.Expense) (models.Expense, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO expenses(category, amount_cents, at, note)
		 VALUES($1,$2,$3,$4)
		 RETURNING id`,
		e.Category, e.AmountCents, e.At, e.Note,
	).Scan(&e.ID)
	return e, err
}

func (r *expensesRepo) All(ctx context.Context) ([]models.Expense, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, category, amount_cents, at, note
		   FROM expenses
		  ORDER BY at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Expense{}
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(&e.ID, &e.Category, &e.AmountCents, &e.At, &e.Note); err != nil {
			return nil, err
		}
		e.At = e.At.UTC()
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *expensesRepo) SumCents(ctx context.Context, from, to time.Time) (int64, error) {
	var sum int64
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount_cents), 0)::bigint
		   FROM expenses
		  WHERE at BETWEEN $1 AND $2`,
		from, to,
	).Scan(&sum)
	return sum, err
}
