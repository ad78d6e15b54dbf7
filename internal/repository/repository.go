package repository

import (
	"context"

	"skyledger-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type AircraftRepository interface {
	Create(ctx context.Context, aircraft *domain.Aircraft) error
	GetByID(ctx context.Context, id int32) (*domain.Aircraft, error)
	Update(ctx context.Context, aircraft *domain.Aircraft) error
	Delete(ctx context.Context, id int32) error
	ListByUser(ctx context.Context, userID int32) ([]domain.Aircraft, error)
	ListAll(ctx context.Context) ([]domain.Aircraft, error)
}

type ShareRepository interface {
	Create(ctx context.Context, share *domain.AircraftShare) error
	Get(ctx context.Context, aircraftID, userID int32) (*domain.AircraftShare, error)
	ListByAircraft(ctx context.Context, aircraftID int32) ([]domain.AircraftShare, error)
	Delete(ctx context.Context, id int32) error

	CreateInvitation(ctx context.Context, invite *domain.Invitation) error
	GetInvitationByToken(ctx context.Context, token string) (*domain.Invitation, error)
	UpdateInvitation(ctx context.Context, invite *domain.Invitation) error
	DeleteExpiredInvitations(ctx context.Context) (int64, error)
}

type MaintenanceRepository interface {
	Create(ctx context.Context, entry *domain.MaintenanceEntry) error
	GetByID(ctx context.Context, id int32) (*domain.MaintenanceEntry, error)
	Update(ctx context.Context, entry *domain.MaintenanceEntry) error
	Delete(ctx context.Context, id int32) error
	ListByAircraft(ctx context.Context, aircraftID int32) ([]domain.MaintenanceEntry, error)
	ListAttachmentKeys(ctx context.Context) ([]string, error)
}

type ExpenseRepository interface {
	Create(ctx context.Context, expense *domain.OperatingExpense) error
	GetByID(ctx context.Context, id int32) (*domain.OperatingExpense, error)
	Update(ctx context.Context, expense *domain.OperatingExpense) error
	Delete(ctx context.Context, id int32) error
	ListByAircraft(ctx context.Context, aircraftID int32) ([]domain.OperatingExpense, error)
}

type RentalRepository interface {
	CreateRate(ctx context.Context, rate *domain.RentalRate) error
	ListRates(ctx context.Context, aircraftID int32) ([]domain.RentalRate, error)

	CreateLog(ctx context.Context, log *domain.RentalLog) error
	GetLogByID(ctx context.Context, id int32) (*domain.RentalLog, error)
	UpdateLog(ctx context.Context, log *domain.RentalLog) error
	DeleteLog(ctx context.Context, id int32) error
	ListLogs(ctx context.Context, aircraftID int32) ([]domain.RentalLog, error)
}

type BenchmarkRepository interface {
	List(ctx context.Context) ([]domain.Benchmark, error)
	ListByTypeTag(ctx context.Context, typeTag string) ([]domain.Benchmark, error)
}
