package postgres

import (
	"context"
	"database/sql"
	"time"

	"skyledger-backend/internal/domain"
	"skyledger-backend/internal/repository"
)

type expenseRepository struct {
	db *sql.DB
}

func NewExpenseRepository(db *sql.DB) repository.ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(ctx context.Context, expense *domain.OperatingExpense) error {
	query := `INSERT INTO operating_expenses (aircraft_id, date, category, amount, note, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	now := time.Now().Format("2006-01-02")
	return r.db.QueryRowContext(ctx, query,
		expense.AircraftID, expense.Date, expense.Category, expense.Amount, expense.Note, now).Scan(&expense.ID)
}

func (r *expenseRepository) GetByID(ctx context.Context, id int32) (*domain.OperatingExpense, error) {
	query := `SELECT id, aircraft_id, date, category, amount, COALESCE(note, ''), created_on
	          FROM operating_expenses WHERE id = $1`
	var e domain.OperatingExpense
	var date, createdOn time.Time
	err := r.db.QueryRowContext(ctx, query, id).Scan(&e.ID, &e.AircraftID, &date, &e.Category, &e.Amount, &e.Note, &createdOn)
	if err != nil {
		return nil, err
	}
	e.Date = date.Format("2006-01-02")
	e.CreatedOn = createdOn.Format("2006-01-02")
	return &e, nil
}

func (r *expenseRepository) Update(ctx context.Context, expense *domain.OperatingExpense) error {
	query := `UPDATE operating_expenses SET date = $1, category = $2, amount = $3, note = $4 WHERE id = $5`
	_, err := r.db.ExecContext(ctx, query, expense.Date, expense.Category, expense.Amount, expense.Note, expense.ID)
	return err
}

func (r *expenseRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM operating_expenses WHERE id = $1`, id)
	return err
}

func (r *expenseRepository) ListByAircraft(ctx context.Context, aircraftID int32) ([]domain.OperatingExpense, error) {
	query := `SELECT id, aircraft_id, date, category, amount, COALESCE(note, ''), created_on
	          FROM operating_expenses WHERE aircraft_id = $1 ORDER BY date, id`
	rows, err := r.db.QueryContext(ctx, query, aircraftID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []domain.OperatingExpense
	for rows.Next() {
		var e domain.OperatingExpense
		var date, createdOn time.Time
		if err := rows.Scan(&e.ID, &e.AircraftID, &date, &e.Category, &e.Amount, &e.Note, &createdOn); err != nil {
			return nil, err
		}
		e.Date = date.Format("2006-01-02")
		e.CreatedOn = createdOn.Format("2006-01-02")
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}
