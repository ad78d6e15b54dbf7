package service

import (
	"context"

	"skyledger-backend/internal/domain"
	"skyledger-backend/internal/metrics"
	"skyledger-backend/internal/repository"
)

type benchmarkService struct {
	benchmarkRepo repository.BenchmarkRepository
}

func NewBenchmarkService(benchmarkRepo repository.BenchmarkRepository) BenchmarkService {
	return &benchmarkService{benchmarkRepo: benchmarkRepo}
}

func (s *benchmarkService) ListBenchmarks(ctx context.Context) ([]domain.Benchmark, error) {
	return s.benchmarkRepo.List(ctx)
}

// CurrentBenchmark resolves the benchmark in effect on asOf for a type tag,
// using the same latest-effective-date rule as rental rates. Returns nil when
// the type has no benchmark rows; comparison simply isn't offered then.
func (s *benchmarkService) CurrentBenchmark(ctx context.Context, typeTag, asOf string) (*domain.Benchmark, error) {
	if typeTag == "" {
		return nil, nil
	}
	rows, err := s.benchmarkRepo.ListByTypeTag(ctx, typeTag)
	if err != nil {
		return nil, err
	}

	records := make([]metrics.RateRecord, len(rows))
	for i, b := range rows {
		records[i] = metrics.RateRecord{HourlyRate: b.HourlyCost, EffectiveFrom: b.EffectiveFrom}
	}
	i := metrics.ResolveRateIndex(records, asOf)
	if i < 0 {
		return nil, nil
	}
	b := rows[i]
	return &b, nil
}
