package postgres

import (
	"context"
	"database/sql"
	"time"

	"skyledger-backend/internal/domain"
	"skyledger-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

func (r *rentalRepository) CreateRate(ctx context.Context, rate *domain.RentalRate) error {
	query := `INSERT INTO rental_rates (aircraft_id, hourly_rate, effective_from, created_on)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	now := time.Now().Format("2006-01-02")
	return r.db.QueryRowContext(ctx, query, rate.AircraftID, rate.HourlyRate, rate.EffectiveFrom, now).Scan(&rate.ID)
}

func (r *rentalRepository) ListRates(ctx context.Context, aircraftID int32) ([]domain.RentalRate, error) {
	query := `SELECT id, aircraft_id, hourly_rate, effective_from, created_on
	          FROM rental_rates WHERE aircraft_id = $1 ORDER BY effective_from, id`
	rows, err := r.db.QueryContext(ctx, query, aircraftID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rates []domain.RentalRate
	for rows.Next() {
		var rt domain.RentalRate
		var effectiveFrom, createdOn time.Time
		if err := rows.Scan(&rt.ID, &rt.AircraftID, &rt.HourlyRate, &effectiveFrom, &createdOn); err != nil {
			return nil, err
		}
		rt.EffectiveFrom = effectiveFrom.Format("2006-01-02")
		rt.CreatedOn = createdOn.Format("2006-01-02")
		rates = append(rates, rt)
	}
	return rates, rows.Err()
}

func (r *rentalRepository) CreateLog(ctx context.Context, log *domain.RentalLog) error {
	query := `INSERT INTO rental_logs (aircraft_id, date, hours, hourly_rate, note, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	now := time.Now().Format("2006-01-02")
	return r.db.QueryRowContext(ctx, query,
		log.AircraftID, log.Date, log.Hours, log.HourlyRate, log.Note, now).Scan(&log.ID)
}

func (r *rentalRepository) GetLogByID(ctx context.Context, id int32) (*domain.RentalLog, error) {
	query := `SELECT id, aircraft_id, date, hours, hourly_rate, COALESCE(note, ''), created_on
	          FROM rental_logs WHERE id = $1`
	var l domain.RentalLog
	var date, createdOn time.Time
	err := r.db.QueryRowContext(ctx, query, id).Scan(&l.ID, &l.AircraftID, &date, &l.Hours, &l.HourlyRate, &l.Note, &createdOn)
	if err != nil {
		return nil, err
	}
	l.Date = date.Format("2006-01-02")
	l.CreatedOn = createdOn.Format("2006-01-02")
	return &l, nil
}

func (r *rentalRepository) UpdateLog(ctx context.Context, log *domain.RentalLog) error {
	// hourly_rate is written through deliberately: the service layer decides
	// whether the stored snapshot is kept or replaced.
	query := `UPDATE rental_logs SET date = $1, hours = $2, hourly_rate = $3, note = $4 WHERE id = $5`
	_, err := r.db.ExecContext(ctx, query, log.Date, log.Hours, log.HourlyRate, log.Note, log.ID)
	return err
}

func (r *rentalRepository) DeleteLog(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM rental_logs WHERE id = $1`, id)
	return err
}

func (r *rentalRepository) ListLogs(ctx context.Context, aircraftID int32) ([]domain.RentalLog, error) {
	query := `SELECT id, aircraft_id, date, hours, hourly_rate, COALESCE(note, ''), created_on
	          FROM rental_logs WHERE aircraft_id = $1 ORDER BY date, id`
	rows, err := r.db.QueryContext(ctx, query, aircraftID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []domain.RentalLog
	for rows.Next() {
		var l domain.RentalLog
		var date, createdOn time.Time
		if err := rows.Scan(&l.ID, &l.AircraftID, &date, &l.Hours, &l.HourlyRate, &l.Note, &createdOn); err != nil {
			return nil, err
		}
		l.Date = date.Format("2006-01-02")
		l.CreatedOn = createdOn.Format("2006-01-02")
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
