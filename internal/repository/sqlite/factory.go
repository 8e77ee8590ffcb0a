// Package sqlite implements the repository interfaces on a local SQLite file
// through gorm. Schema is created with AutoMigrate at version 1.
package sqlite

import (
	repo "github.com/gigpulse/gigpulse-backend/internal/repository"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&tripRow{}, &expenseRow{}, &mileageRow{}, &hotspotRow{})
}

func NewRepositories(db *gorm.DB) repo.Repositories {
	return repo.Repositories{
		Trips:    &tripsRepo{db},
		Expenses: &expensesRepo{db},
		Mileage:  &mileageRepo{db},
		Hotspots: &hotspotsRepo{db},
	}
}
