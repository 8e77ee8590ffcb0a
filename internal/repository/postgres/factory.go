package postgres

import (
	repo "github.com/gigpulse/gigpulse-backend/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositories(pool *pgxpool.Pool) repo.Repositories {
	return repo.Repositories{
		Trips:    &tripsRepo{pool},
		Expenses: &expensesRepo{pool},
		Mileage:  &mileageRepo{pool},
		Hotspots: &hotspotsRepo{pool},
	}
}
