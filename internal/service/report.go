package service

import (
	"context"
	"time"

	"skyledger-backend/internal/domain"
	"skyledger-backend/internal/metrics"
	"skyledger-backend/internal/repository"
)

// reportService computes dashboard figures. It owns no math: it fetches
// snapshots and hands them to the metrics package, so every number a report
// shows is reproducible from the same rows.
type reportService struct {
	accessChecker
	maintRepo    repository.MaintenanceRepository
	expenseRepo  repository.ExpenseRepository
	rentalRepo   repository.RentalRepository
	benchmarkSvc BenchmarkService
}

func NewReportService(
	aircraftRepo repository.AircraftRepository,
	shareRepo repository.ShareRepository,
	maintRepo repository.MaintenanceRepository,
	expenseRepo repository.ExpenseRepository,
	rentalRepo repository.RentalRepository,
	benchmarkSvc BenchmarkService,
) ReportService {
	return &reportService{
		accessChecker: accessChecker{aircraftRepo: aircraftRepo, shareRepo: shareRepo},
		maintRepo:     maintRepo,
		expenseRepo:   expenseRepo,
		rentalRepo:    rentalRepo,
		benchmarkSvc:  benchmarkSvc,
	}
}

// maintenanceEntries converts maintenance rows to the aggregation shape.
// Dateless entries keep an empty date string and so drop out of ranged math.
func maintenanceEntries(rows []domain.MaintenanceEntry) []metrics.Entry {
	entries := make([]metrics.Entry, len(rows))
	for i, m := range rows {
		date := ""
		if m.Date != nil {
			date = *m.Date
		}
		entries[i] = metrics.Entry{
			Date:     date,
			Amount:   m.Amount,
			Category: string(m.Category),
			Tach:     m.TachHours,
		}
	}
	return entries
}

func expenseEntries(rows []domain.OperatingExpense) []metrics.Entry {
	entries := make([]metrics.Entry, len(rows))
	for i, e := range rows {
		amount := e.Amount
		entries[i] = metrics.Entry{
			Date:     e.Date,
			Amount:   &amount,
			Category: string(e.Category),
		}
	}
	return entries
}

func rentalEntries(rows []domain.RentalLog) []metrics.RentalEntry {
	logs := make([]metrics.RentalEntry, len(rows))
	for i, l := range rows {
		logs[i] = metrics.RentalEntry{Date: l.Date, Hours: l.Hours, HourlyRate: l.HourlyRate}
	}
	return logs
}

func (s *reportService) fetchCostEntries(ctx context.Context, aircraftID int32) ([]metrics.Entry, []metrics.Entry, error) {
	maint, err := s.maintRepo.ListByAircraft(ctx, aircraftID)
	if err != nil {
		return nil, nil, err
	}
	expenses, err := s.expenseRepo.ListByAircraft(ctx, aircraftID)
	if err != nil {
		return nil, nil, err
	}
	return maintenanceEntries(maint), expenseEntries(expenses), nil
}

func (s *reportService) CostSummary(ctx context.Context, userID, aircraftID int32, r metrics.Range) (*CostReport, error) {
	aircraft, err := s.authorize(ctx, aircraftID, userID, false)
	if err != nil {
		return nil, err
	}

	maintEntries, expEntries, err := s.fetchCostEntries(ctx, aircraftID)
	if err != nil {
		return nil, err
	}

	report := &CostReport{
		Maintenance: metrics.Aggregate(maintEntries, r),
		Expenses:    metrics.Aggregate(expEntries, r),
	}
	report.Total = report.Maintenance.Total + report.Expenses.Total
	report.HoursFlown = metrics.HoursFlown(metrics.TachSamples(maintEntries, r))
	report.CostPerHour = metrics.PerHour(report.Total, report.HoursFlown)

	today := metrics.FormatDate(time.Now().UTC())
	benchmark, err := s.benchmarkSvc.CurrentBenchmark(ctx, aircraft.TypeTag, today)
	if err != nil {
		return nil, err
	}
	if benchmark != nil {
		report.Benchmark = benchmark
		report.Comparison = metrics.Compare(report.CostPerHour, benchmark.HourlyCost)
	}

	return report, nil
}

func (s *reportService) RentalSummary(ctx context.Context, userID, aircraftID int32, r metrics.Range) (*metrics.RentalSummary, error) {
	if _, err := s.authorize(ctx, aircraftID, userID, false); err != nil {
		return nil, err
	}

	logs, err := s.rentalRepo.ListLogs(ctx, aircraftID)
	if err != nil {
		return nil, err
	}
	maintEntries, expEntries, err := s.fetchCostEntries(ctx, aircraftID)
	if err != nil {
		return nil, err
	}

	costs := append(maintEntries, expEntries...)
	summary := metrics.AggregateRentals(rentalEntries(logs), costs, r)
	return &summary, nil
}

func (s *reportService) MonthlySeries(ctx context.Context, userID, aircraftID int32, year int) (*YearReport, error) {
	if _, err := s.authorize(ctx, aircraftID, userID, false); err != nil {
		return nil, err
	}

	maintEntries, expEntries, err := s.fetchCostEntries(ctx, aircraftID)
	if err != nil {
		return nil, err
	}
	logs, err := s.rentalRepo.ListLogs(ctx, aircraftID)
	if err != nil {
		return nil, err
	}

	costs := append(maintEntries, expEntries...)
	return &YearReport{
		Year:   year,
		Costs:  metrics.MonthlySeries(costs, year),
		Rental: metrics.RentalMonthlySeries(rentalEntries(logs), costs, year),
	}, nil
}
