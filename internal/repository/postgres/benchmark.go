package postgres

import (
	"context"
	"database/sql"
	"time"

	"skyledger-backend/internal/domain"
	"skyledger-backend/internal/repository"
)

type benchmarkRepository struct {
	db *sql.DB
}

func NewBenchmarkRepository(db *sql.DB) repository.BenchmarkRepository {
	return &benchmarkRepository{db: db}
}

func (r *benchmarkRepository) List(ctx context.Context) ([]domain.Benchmark, error) {
	query := `SELECT id, type_tag, hourly_cost, annual_cost, effective_from
	          FROM benchmarks ORDER BY type_tag, effective_from`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanList(rows)
}

func (r *benchmarkRepository) ListByTypeTag(ctx context.Context, typeTag string) ([]domain.Benchmark, error) {
	query := `SELECT id, type_tag, hourly_cost, annual_cost, effective_from
	          FROM benchmarks WHERE type_tag = $1 ORDER BY effective_from`
	rows, err := r.db.QueryContext(ctx, query, typeTag)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanList(rows)
}

func (r *benchmarkRepository) scanList(rows *sql.Rows) ([]domain.Benchmark, error) {
	var benchmarks []domain.Benchmark
	for rows.Next() {
		var b domain.Benchmark
		var effectiveFrom time.Time
		if err := rows.Scan(&b.ID, &b.TypeTag, &b.HourlyCost, &b.AnnualCost, &effectiveFrom); err != nil {
			return nil, err
		}
		b.EffectiveFrom = effectiveFrom.Format("2006-01-02")
		benchmarks = append(benchmarks, b)
	}
	return benchmarks, rows.Err()
}
