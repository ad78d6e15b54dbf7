package postgres

import (
	"context"
	"database/sql"
	"time"

	"skyledger-backend/internal/domain"
	"skyledger-backend/internal/repository"
)

type aircraftRepository struct {
	db *sql.DB
}

func NewAircraftRepository(db *sql.DB) repository.AircraftRepository {
	return &aircraftRepository{db: db}
}

func (r *aircraftRepository) Create(ctx context.Context, aircraft *domain.Aircraft) error {
	query := `INSERT INTO aircraft (owner_id, tail_number, make, model, year, type_tag, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	now := time.Now().Format("2006-01-02")
	return r.db.QueryRowContext(ctx, query,
		aircraft.OwnerID, aircraft.TailNumber, aircraft.Make, aircraft.Model,
		aircraft.Year, aircraft.TypeTag, now).Scan(&aircraft.ID)
}

func (r *aircraftRepository) GetByID(ctx context.Context, id int32) (*domain.Aircraft, error) {
	query := `SELECT id, owner_id, tail_number, make, model, year, COALESCE(type_tag, ''), created_on
	          FROM aircraft WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *aircraftRepository) Update(ctx context.Context, aircraft *domain.Aircraft) error {
	query := `UPDATE aircraft SET tail_number = $1, make = $2, model = $3, year = $4, type_tag = $5 WHERE id = $6`
	_, err := r.db.ExecContext(ctx, query,
		aircraft.TailNumber, aircraft.Make, aircraft.Model, aircraft.Year, aircraft.TypeTag, aircraft.ID)
	return err
}

func (r *aircraftRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM aircraft WHERE id = $1`, id)
	return err
}

func (r *aircraftRepository) ListByUser(ctx context.Context, userID int32) ([]domain.Aircraft, error) {
	// Owned aircraft plus aircraft shared with the user.
	query := `SELECT DISTINCT a.id, a.owner_id, a.tail_number, a.make, a.model, a.year, COALESCE(a.type_tag, ''), a.created_on
	          FROM aircraft a
	          LEFT JOIN aircraft_shares s ON s.aircraft_id = a.id
	          WHERE a.owner_id = $1 OR s.user_id = $1
	          ORDER BY a.id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanList(rows)
}

func (r *aircraftRepository) ListAll(ctx context.Context) ([]domain.Aircraft, error) {
	query := `SELECT id, owner_id, tail_number, make, model, year, COALESCE(type_tag, ''), created_on
	          FROM aircraft ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanList(rows)
}

func (r *aircraftRepository) scanOne(row *sql.Row) (*domain.Aircraft, error) {
	var a domain.Aircraft
	var createdOn time.Time
	err := row.Scan(&a.ID, &a.OwnerID, &a.TailNumber, &a.Make, &a.Model, &a.Year, &a.TypeTag, &createdOn)
	if err != nil {
		return nil, err
	}
	a.CreatedOn = createdOn.Format("2006-01-02")
	return &a, nil
}

func (r *aircraftRepository) scanList(rows *sql.Rows) ([]domain.Aircraft, error) {
	var list []domain.Aircraft
	for rows.Next() {
		var a domain.Aircraft
		var createdOn time.Time
		if err := rows.Scan(&a.ID, &a.OwnerID, &a.TailNumber, &a.Make, &a.Model, &a.Year, &a.TypeTag, &createdOn); err != nil {
			return nil, err
		}
		a.CreatedOn = createdOn.Format("2006-01-02")
		list = append(list, a)
	}
	return list, rows.Err()
}
