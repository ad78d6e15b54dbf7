package postgres

import (
	"database/sql"

	"skyledger-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.AircraftRepository
	repository.ShareRepository
	repository.MaintenanceRepository
	repository.ExpenseRepository
	repository.RentalRepository
	repository.BenchmarkRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		UserRepository:        NewUserRepository(db),
		AircraftRepository:    NewAircraftRepository(db),
		ShareRepository:       NewShareRepository(db),
		MaintenanceRepository: NewMaintenanceRepository(db),
		ExpenseRepository:     NewExpenseRepository(db),
		RentalRepository:      NewRentalRepository(db),
		BenchmarkRepository:   NewBenchmarkRepository(db),
	}
}
