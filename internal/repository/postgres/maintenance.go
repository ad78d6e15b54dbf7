package postgres

import (
	"context"
	"database/sql"
	"time"

	"skyledger-backend/internal/domain"
	"skyledger-backend/internal/repository"
)

type maintenanceRepository struct {
	db *sql.DB
}

func NewMaintenanceRepository(db *sql.DB) repository.MaintenanceRepository {
	return &maintenanceRepository{db: db}
}

func (r *maintenanceRepository) Create(ctx context.Context, entry *domain.MaintenanceEntry) error {
	query := `INSERT INTO maintenance_entries (aircraft_id, date, category, amount, tach_hours, note, attachment_key, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	now := time.Now().Format("2006-01-02")
	return r.db.QueryRowContext(ctx, query,
		entry.AircraftID, entry.Date, entry.Category, entry.Amount,
		entry.TachHours, entry.Note, entry.AttachmentKey, now).Scan(&entry.ID)
}

func (r *maintenanceRepository) GetByID(ctx context.Context, id int32) (*domain.MaintenanceEntry, error) {
	query := `SELECT id, aircraft_id, date, category, amount, tach_hours, COALESCE(note, ''), COALESCE(attachment_key, ''), created_on
	          FROM maintenance_entries WHERE id = $1`
	var e domain.MaintenanceEntry
	var date sql.NullTime
	var createdOn time.Time
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&e.ID, &e.AircraftID, &date, &e.Category, &e.Amount, &e.TachHours, &e.Note, &e.AttachmentKey, &createdOn)
	if err != nil {
		return nil, err
	}
	if date.Valid {
		d := date.Time.Format("2006-01-02")
		e.Date = &d
	}
	e.CreatedOn = createdOn.Format("2006-01-02")
	return &e, nil
}

func (r *maintenanceRepository) Update(ctx context.Context, entry *domain.MaintenanceEntry) error {
	query := `UPDATE maintenance_entries
	          SET date = $1, category = $2, amount = $3, tach_hours = $4, note = $5, attachment_key = $6
	          WHERE id = $7`
	_, err := r.db.ExecContext(ctx, query,
		entry.Date, entry.Category, entry.Amount, entry.TachHours, entry.Note, entry.AttachmentKey, entry.ID)
	return err
}

func (r *maintenanceRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM maintenance_entries WHERE id = $1`, id)
	return err
}

func (r *maintenanceRepository) ListByAircraft(ctx context.Context, aircraftID int32) ([]domain.MaintenanceEntry, error) {
	query := `SELECT id, aircraft_id, date, category, amount, tach_hours, COALESCE(note, ''), COALESCE(attachment_key, ''), created_on
	          FROM maintenance_entries WHERE aircraft_id = $1 ORDER BY date NULLS LAST, id`
	rows, err := r.db.QueryContext(ctx, query, aircraftID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.MaintenanceEntry
	for rows.Next() {
		var e domain.MaintenanceEntry
		var date sql.NullTime
		var createdOn time.Time
		if err := rows.Scan(&e.ID, &e.AircraftID, &date, &e.Category, &e.Amount, &e.TachHours, &e.Note, &e.AttachmentKey, &createdOn); err != nil {
			return nil, err
		}
		if date.Valid {
			d := date.Time.Format("2006-01-02")
			e.Date = &d
		}
		e.CreatedOn = createdOn.Format("2006-01-02")
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *maintenanceRepository) ListAttachmentKeys(ctx context.Context) ([]string, error) {
	query := `SELECT attachment_key FROM maintenance_entries WHERE attachment_key IS NOT NULL AND attachment_key <> ''`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}
