package service

import (
	"context"
	"io"
	"time"

	"skyledger-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockAircraftRepo
type MockAircraftRepo struct {
	mock.Mock
}

func (m *MockAircraftRepo) Create(ctx context.Context, aircraft *domain.Aircraft) error {
	args := m.Called(ctx, aircraft)
	return args.Error(0)
}
func (m *MockAircraftRepo) GetByID(ctx context.Context, id int32) (*domain.Aircraft, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Aircraft), args.Error(1)
}
func (m *MockAircraftRepo) Update(ctx context.Context, aircraft *domain.Aircraft) error {
	args := m.Called(ctx, aircraft)
	return args.Error(0)
}
func (m *MockAircraftRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockAircraftRepo) ListByUser(ctx context.Context, userID int32) ([]domain.Aircraft, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Aircraft), args.Error(1)
}
func (m *MockAircraftRepo) ListAll(ctx context.Context) ([]domain.Aircraft, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Aircraft), args.Error(1)
}

// MockShareRepo
type MockShareRepo struct {
	mock.Mock
}

func (m *MockShareRepo) Create(ctx context.Context, share *domain.AircraftShare) error {
	args := m.Called(ctx, share)
	return args.Error(0)
}
func (m *MockShareRepo) Get(ctx context.Context, aircraftID, userID int32) (*domain.AircraftShare, error) {
	args := m.Called(ctx, aircraftID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AircraftShare), args.Error(1)
}
func (m *MockShareRepo) ListByAircraft(ctx context.Context, aircraftID int32) ([]domain.AircraftShare, error) {
	args := m.Called(ctx, aircraftID)
	return args.Get(0).([]domain.AircraftShare), args.Error(1)
}
func (m *MockShareRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockShareRepo) CreateInvitation(ctx context.Context, invite *domain.Invitation) error {
	args := m.Called(ctx, invite)
	return args.Error(0)
}
func (m *MockShareRepo) GetInvitationByToken(ctx context.Context, token string) (*domain.Invitation, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invitation), args.Error(1)
}
func (m *MockShareRepo) UpdateInvitation(ctx context.Context, invite *domain.Invitation) error {
	args := m.Called(ctx, invite)
	return args.Error(0)
}
func (m *MockShareRepo) DeleteExpiredInvitations(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockMaintenanceRepo
type MockMaintenanceRepo struct {
	mock.Mock
}

func (m *MockMaintenanceRepo) Create(ctx context.Context, entry *domain.MaintenanceEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
func (m *MockMaintenanceRepo) GetByID(ctx context.Context, id int32) (*domain.MaintenanceEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MaintenanceEntry), args.Error(1)
}
func (m *MockMaintenanceRepo) Update(ctx context.Context, entry *domain.MaintenanceEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
func (m *MockMaintenanceRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockMaintenanceRepo) ListByAircraft(ctx context.Context, aircraftID int32) ([]domain.MaintenanceEntry, error) {
	args := m.Called(ctx, aircraftID)
	return args.Get(0).([]domain.MaintenanceEntry), args.Error(1)
}
func (m *MockMaintenanceRepo) ListAttachmentKeys(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

// MockExpenseRepo
type MockExpenseRepo struct {
	mock.Mock
}

func (m *MockExpenseRepo) Create(ctx context.Context, expense *domain.OperatingExpense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}
func (m *MockExpenseRepo) GetByID(ctx context.Context, id int32) (*domain.OperatingExpense, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OperatingExpense), args.Error(1)
}
func (m *MockExpenseRepo) Update(ctx context.Context, expense *domain.OperatingExpense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}
func (m *MockExpenseRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockExpenseRepo) ListByAircraft(ctx context.Context, aircraftID int32) ([]domain.OperatingExpense, error) {
	args := m.Called(ctx, aircraftID)
	return args.Get(0).([]domain.OperatingExpense), args.Error(1)
}

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) CreateRate(ctx context.Context, rate *domain.RentalRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}
func (m *MockRentalRepo) ListRates(ctx context.Context, aircraftID int32) ([]domain.RentalRate, error) {
	args := m.Called(ctx, aircraftID)
	return args.Get(0).([]domain.RentalRate), args.Error(1)
}
func (m *MockRentalRepo) CreateLog(ctx context.Context, log *domain.RentalLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}
func (m *MockRentalRepo) GetLogByID(ctx context.Context, id int32) (*domain.RentalLog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalLog), args.Error(1)
}
func (m *MockRentalRepo) UpdateLog(ctx context.Context, log *domain.RentalLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}
func (m *MockRentalRepo) DeleteLog(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockRentalRepo) ListLogs(ctx context.Context, aircraftID int32) ([]domain.RentalLog, error) {
	args := m.Called(ctx, aircraftID)
	return args.Get(0).([]domain.RentalLog), args.Error(1)
}

// MockBenchmarkRepo
type MockBenchmarkRepo struct {
	mock.Mock
}

func (m *MockBenchmarkRepo) List(ctx context.Context) ([]domain.Benchmark, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Benchmark), args.Error(1)
}
func (m *MockBenchmarkRepo) ListByTypeTag(ctx context.Context, typeTag string) ([]domain.Benchmark, error) {
	args := m.Called(ctx, typeTag)
	return args.Get(0).([]domain.Benchmark), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendInvitation(ctx context.Context, email, inviterName, tailNumber, token string) error {
	args := m.Called(ctx, email, inviterName, tailNumber, token)
	return args.Error(0)
}
func (m *MockEmailService) SendMonthlyReport(ctx context.Context, email, name, tailNumber, body string) error {
	args := m.Called(ctx, email, name, tailNumber, body)
	return args.Error(0)
}

// MockStorage
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) GenerateUploadURL(ctx context.Context, key string, contentType string, expiresIn time.Duration) (string, error) {
	args := m.Called(ctx, key, contentType, expiresIn)
	return args.String(0), args.Error(1)
}
func (m *MockStorage) GenerateDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error) {
	args := m.Called(ctx, key, expiresIn)
	return args.String(0), args.Error(1)
}
func (m *MockStorage) FileExists(ctx context.Context, key string) (bool, int64, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Get(1).(int64), args.Error(2)
}
func (m *MockStorage) DeleteFile(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
func (m *MockStorage) ListKeys(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}
func (m *MockStorage) SaveFile(key string, reader io.Reader) error {
	args := m.Called(key, reader)
	return args.Error(0)
}
func (m *MockStorage) ReadFile(key string) (io.ReadCloser, error) {
	args := m.Called(key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}
