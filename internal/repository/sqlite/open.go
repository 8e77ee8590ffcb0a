package sqlite

import (
	"github.com/gigpulse/gigpulse-backend/internal/db"
	repo "github.com/gigpulse/gigpulse-backend/internal/repository"
	"gorm.io/gorm"
)

// Open opens the database at path, migrates it and returns the accessors.
// ":memory:" gives a private throwaway store.
func Open(path string) (repo.Repositories, *gorm.DB, error) {
	gdb, err := db.OpenSQLite(path)
	if err != nil {
		return repo.Repositories{}, nil, err
	}
	if err := Migrate(gdb); err != nil {
		return repo.Repositories{}, nil, err
	}
	return NewRepositories(gdb), gdb, nil
}
