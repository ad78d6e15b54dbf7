package postgres_test

import (
	"context"
	"testing"
	"time"

	"skyledger-backend/internal/domain"
	"skyledger-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestRentalRepository_CreateLog(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		log := &domain.RentalLog{
			AircraftID: 1,
			Date:       "2025-03-12",
			Hours:      2.5,
			HourlyRate: 150,
			Note:       "weekend rental",
		}

		mock.ExpectQuery("INSERT INTO rental_logs").
			WithArgs(log.AircraftID, log.Date, log.Hours, log.HourlyRate, log.Note, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

		err := repo.CreateLog(ctx, log)
		assert.NoError(t, err)
		assert.Equal(t, int32(7), log.ID)
	})
}

func TestRentalRepository_ListRates(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "aircraft_id", "hourly_rate", "effective_from", "created_on"}).
			AddRow(1, 1, 120.0, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)).
			AddRow(2, 1, 150.0, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC))

		mock.ExpectQuery("SELECT id, aircraft_id, hourly_rate, effective_from, created_on").
			WithArgs(int32(1)).
			WillReturnRows(rows)

		rates, err := repo.ListRates(ctx, 1)
		assert.NoError(t, err)
		assert.Len(t, rates, 2)
		assert.Equal(t, "2024-01-01", rates[0].EffectiveFrom)
		assert.Equal(t, 150.0, rates[1].HourlyRate)
	})

	t.Run("Empty", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, aircraft_id, hourly_rate, effective_from, created_on").
			WithArgs(int32(99)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "aircraft_id", "hourly_rate", "effective_from", "created_on"}))

		rates, err := repo.ListRates(ctx, 99)
		assert.NoError(t, err)
		assert.Empty(t, rates)
	})
}

func TestRentalRepository_UpdateLog(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		log := &domain.RentalLog{
			ID:         7,
			AircraftID: 1,
			Date:       "2025-03-13",
			Hours:      3,
			HourlyRate: 150,
			Note:       "extended",
		}

		mock.ExpectExec("UPDATE rental_logs SET").
			WithArgs(log.Date, log.Hours, log.HourlyRate, log.Note, log.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateLog(ctx, log)
		assert.NoError(t, err)
	})
}

func TestRentalRepository_ListLogs(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "aircraft_id", "date", "hours", "hourly_rate", "note", "created_on"}).
			AddRow(1, 1, time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), 2.5, 150.0, "", time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC))

		mock.ExpectQuery("SELECT id, aircraft_id, date, hours, hourly_rate").
			WithArgs(int32(1)).
			WillReturnRows(rows)

		logs, err := repo.ListLogs(ctx, 1)
		assert.NoError(t, err)
		assert.Len(t, logs, 1)
		assert.Equal(t, "2025-03-12", logs[0].Date)
		assert.Equal(t, 375.0, logs[0].Income())
	})
}
