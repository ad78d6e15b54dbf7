package service

import (
	"context"
	"testing"

	"skyledger-backend/internal/domain"
	"skyledger-backend/internal/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func reportFixture(t *testing.T) (ReportService, *MockMaintenanceRepo, *MockExpenseRepo, *MockRentalRepo, *MockBenchmarkRepo) {
	t.Helper()
	aircraftRepo := new(MockAircraftRepo)
	shareRepo := new(MockShareRepo)
	maintRepo := new(MockMaintenanceRepo)
	expenseRepo := new(MockExpenseRepo)
	rentalRepo := new(MockRentalRepo)
	benchmarkRepo := new(MockBenchmarkRepo)

	aircraftRepo.On("GetByID", context.Background(), int32(1)).Return(ownedAircraft(1, 10), nil)

	svc := NewReportService(aircraftRepo, shareRepo, maintRepo, expenseRepo, rentalRepo, NewBenchmarkService(benchmarkRepo))
	return svc, maintRepo, expenseRepo, rentalRepo, benchmarkRepo
}

func day(s string) *string { return &s }

func TestReportService_CostSummary(t *testing.T) {
	svc, maintRepo, expenseRepo, _, benchmarkRepo := reportFixture(t)
	ctx := context.Background()

	maintRepo.On("ListByAircraft", ctx, int32(1)).Return([]domain.MaintenanceEntry{
		{AircraftID: 1, Date: day("2025-03-02"), Category: domain.MaintenanceCategoryOilChange, Amount: f(180), TachHours: f(1500)},
		{AircraftID: 1, Date: day("2025-03-20"), Category: domain.MaintenanceCategoryAnnual, Amount: f(1200), TachHours: f(1510)},
	}, nil)
	expenseRepo.On("ListByAircraft", ctx, int32(1)).Return([]domain.OperatingExpense{
		{AircraftID: 1, Date: "2025-03-10", Category: domain.ExpenseCategoryFuel, Amount: 300},
	}, nil)
	benchmarkRepo.On("ListByTypeTag", ctx, "C172").Return([]domain.Benchmark{
		{TypeTag: "C172", HourlyCost: 160, EffectiveFrom: "2024-01-01"},
	}, nil)

	report, err := svc.CostSummary(ctx, 10, 1, metrics.Month(2025, 3))
	require.NoError(t, err)

	assert.Equal(t, 2, report.Maintenance.Count)
	assert.InDelta(t, 1380, report.Maintenance.Total, 1e-9)
	assert.InDelta(t, 300, report.Expenses.Total, 1e-9)
	assert.InDelta(t, 1680, report.Total, 1e-9)
	assert.InDelta(t, 10, report.HoursFlown, 1e-9)

	require.NotNil(t, report.CostPerHour)
	assert.InDelta(t, 168, *report.CostPerHour, 1e-9)

	require.NotNil(t, report.Comparison)
	assert.InDelta(t, 5, report.Comparison.Pct, 1e-9)
	assert.Equal(t, metrics.BandOnTrack, report.Comparison.Band)
}

func TestReportService_CostSummary_NoTachData(t *testing.T) {
	svc, maintRepo, expenseRepo, _, benchmarkRepo := reportFixture(t)
	ctx := context.Background()

	maintRepo.On("ListByAircraft", ctx, int32(1)).Return([]domain.MaintenanceEntry{}, nil)
	expenseRepo.On("ListByAircraft", ctx, int32(1)).Return([]domain.OperatingExpense{
		{AircraftID: 1, Date: "2025-03-10", Category: domain.ExpenseCategoryInsurance, Amount: 900},
	}, nil)
	benchmarkRepo.On("ListByTypeTag", ctx, "C172").Return([]domain.Benchmark{
		{TypeTag: "C172", HourlyCost: 160, EffectiveFrom: "2024-01-01"},
	}, nil)

	report, err := svc.CostSummary(ctx, 10, 1, metrics.Year(2025))
	require.NoError(t, err)

	// Costs exist but hours are unknown: per-hour and the comparison both
	// come back absent rather than zero or fabricated.
	assert.InDelta(t, 900, report.Total, 1e-9)
	assert.Zero(t, report.HoursFlown)
	assert.Nil(t, report.CostPerHour)
	assert.Nil(t, report.Comparison)
}

func TestReportService_RentalSummary_PeriodLocal(t *testing.T) {
	svc, maintRepo, expenseRepo, rentalRepo, _ := reportFixture(t)
	ctx := context.Background()

	maintRepo.On("ListByAircraft", ctx, int32(1)).Return([]domain.MaintenanceEntry{
		{AircraftID: 1, Date: day("2025-02-10"), Category: domain.MaintenanceCategoryEngine, Amount: f(5000), TachHours: f(1490)},
	}, nil)
	expenseRepo.On("ListByAircraft", ctx, int32(1)).Return([]domain.OperatingExpense{
		{AircraftID: 1, Date: "2025-03-05", Category: domain.ExpenseCategoryFuel, Amount: 250},
	}, nil)
	rentalRepo.On("ListLogs", ctx, int32(1)).Return([]domain.RentalLog{
		{AircraftID: 1, Date: "2025-03-12", Hours: 3, HourlyRate: 150},
	}, nil)

	summary, err := svc.RentalSummary(ctx, 10, 1, metrics.Month(2025, 3))
	require.NoError(t, err)

	// February's engine overhaul must not drag March's profit down.
	assert.InDelta(t, 450, summary.Revenue, 1e-9)
	assert.InDelta(t, 250, summary.Spend, 1e-9)
	require.NotNil(t, summary.ProfitPerHour)
	assert.InDelta(t, 200.0/3.0, *summary.ProfitPerHour, 1e-9)
}

func TestReportService_MonthlySeries(t *testing.T) {
	svc, maintRepo, expenseRepo, rentalRepo, _ := reportFixture(t)
	ctx := context.Background()

	maintRepo.On("ListByAircraft", ctx, int32(1)).Return([]domain.MaintenanceEntry{
		{AircraftID: 1, Date: day("2025-03-05"), Category: domain.MaintenanceCategoryOther, Amount: f(100), TachHours: f(1500)},
	}, nil)
	expenseRepo.On("ListByAircraft", ctx, int32(1)).Return([]domain.OperatingExpense{
		{AircraftID: 1, Date: "2025-07-10", Category: domain.ExpenseCategoryFuel, Amount: 50},
	}, nil)
	rentalRepo.On("ListLogs", ctx, int32(1)).Return([]domain.RentalLog{}, nil)

	report, err := svc.MonthlySeries(ctx, 10, 1, 2025)
	require.NoError(t, err)

	require.Len(t, report.Costs, 12)
	require.Len(t, report.Rental, 12)
	assert.InDelta(t, 100, report.Costs[2].Total, 1e-9) // March
	assert.InDelta(t, 50, report.Costs[6].Total, 1e-9)  // July
	for i, b := range report.Costs {
		if i != 2 && i != 6 {
			assert.Zero(t, b.Total, "month %d", i+1)
		}
	}
}
