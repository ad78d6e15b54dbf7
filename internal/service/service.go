package service

import (
	"context"
	"errors"

	"skyledger-backend/internal/domain"
	"skyledger-backend/internal/metrics"
)

// Errors shared across services. Handlers map these onto HTTP statuses.
var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("not allowed for this aircraft")
	ErrInvalidInput = errors.New("invalid input")
)

type AuthService interface {
	Signup(ctx context.Context, name, email, phone, password string) (*domain.User, string, string, error) // user, access, refresh
	Login(ctx context.Context, email, password string) (*domain.User, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
	GetProfile(ctx context.Context, userID int32) (*domain.User, error)
}

type AircraftService interface {
	CreateAircraft(ctx context.Context, userID int32, aircraft *domain.Aircraft) error
	GetAircraft(ctx context.Context, userID, id int32) (*domain.Aircraft, error)
	UpdateAircraft(ctx context.Context, userID int32, aircraft *domain.Aircraft) error
	DeleteAircraft(ctx context.Context, userID, id int32) error
	ListMyAircraft(ctx context.Context, userID int32) ([]domain.Aircraft, error)
}

type ShareService interface {
	InviteCoOwner(ctx context.Context, inviterID, aircraftID int32, email string, role domain.ShareRole) (*domain.Invitation, error)
	AcceptInvite(ctx context.Context, userID int32, token string) (*domain.AircraftShare, error)
	ListShares(ctx context.Context, userID, aircraftID int32) ([]domain.AircraftShare, error)
	RevokeShare(ctx context.Context, userID, aircraftID, shareID int32) error
}

type MaintenanceService interface {
	AddEntry(ctx context.Context, userID int32, entry *domain.MaintenanceEntry) error
	GetEntry(ctx context.Context, userID, id int32) (*domain.MaintenanceEntry, error)
	UpdateEntry(ctx context.Context, userID int32, entry *domain.MaintenanceEntry) error
	DeleteEntry(ctx context.Context, userID, id int32) error
	ListEntries(ctx context.Context, userID, aircraftID int32) ([]domain.MaintenanceEntry, error)

	// Receipt attachments
	AttachReceipt(ctx context.Context, userID, entryID int32, filename, contentType string) (string, string, error) // key, uploadURL
	ReceiptURL(ctx context.Context, userID, entryID int32) (string, error)
}

type ExpenseService interface {
	AddExpense(ctx context.Context, userID int32, expense *domain.OperatingExpense) error
	GetExpense(ctx context.Context, userID, id int32) (*domain.OperatingExpense, error)
	UpdateExpense(ctx context.Context, userID int32, expense *domain.OperatingExpense) error
	DeleteExpense(ctx context.Context, userID, id int32) error
	ListExpenses(ctx context.Context, userID, aircraftID int32) ([]domain.OperatingExpense, error)
}

type RentalService interface {
	SetRate(ctx context.Context, userID int32, rate *domain.RentalRate) error
	ListRates(ctx context.Context, userID, aircraftID int32) ([]domain.RentalRate, error)
	CurrentRate(ctx context.Context, userID, aircraftID int32, asOf string) (*domain.RentalRate, error)

	LogRental(ctx context.Context, userID int32, log *domain.RentalLog) error
	GetLog(ctx context.Context, userID, id int32) (*domain.RentalLog, error)
	UpdateLog(ctx context.Context, userID int32, log *domain.RentalLog) error
	DeleteLog(ctx context.Context, userID, id int32) error
	ListLogs(ctx context.Context, userID, aircraftID int32) ([]domain.RentalLog, error)
}

type BenchmarkService interface {
	ListBenchmarks(ctx context.Context) ([]domain.Benchmark, error)
	CurrentBenchmark(ctx context.Context, typeTag, asOf string) (*domain.Benchmark, error)
}

// CostReport is the dashboard headline view for one aircraft and range.
type CostReport struct {
	Maintenance metrics.Summary     `json:"maintenance"`
	Expenses    metrics.Summary     `json:"expenses"`
	Total       float64             `json:"total"`
	HoursFlown  float64             `json:"hours_flown"`
	CostPerHour *float64            `json:"cost_per_hour"`
	Benchmark   *domain.Benchmark   `json:"benchmark,omitempty"`
	Comparison  *metrics.Comparison `json:"comparison,omitempty"`
}

// YearReport carries the twelve-bucket chart series for one calendar year.
type YearReport struct {
	Year   int                         `json:"year"`
	Costs  []metrics.MonthBucket       `json:"costs"`
	Rental []metrics.RentalMonthBucket `json:"rental"`
}

type ReportService interface {
	CostSummary(ctx context.Context, userID, aircraftID int32, r metrics.Range) (*CostReport, error)
	RentalSummary(ctx context.Context, userID, aircraftID int32, r metrics.Range) (*metrics.RentalSummary, error)
	MonthlySeries(ctx context.Context, userID, aircraftID int32, year int) (*YearReport, error)
}

type EmailService interface {
	SendInvitation(ctx context.Context, email, inviterName, tailNumber, token string) error
	SendMonthlyReport(ctx context.Context, email, name, tailNumber, body string) error
}
