package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"skyledger-backend/internal/domain"
	"skyledger-backend/internal/metrics"
	"skyledger-backend/internal/repository"
)

type expenseService struct {
	accessChecker
	expenseRepo repository.ExpenseRepository
}

func NewExpenseService(aircraftRepo repository.AircraftRepository, shareRepo repository.ShareRepository, expenseRepo repository.ExpenseRepository) ExpenseService {
	return &expenseService{
		accessChecker: accessChecker{aircraftRepo: aircraftRepo, shareRepo: shareRepo},
		expenseRepo:   expenseRepo,
	}
}

func validateExpense(expense *domain.OperatingExpense) error {
	if !expense.Category.Valid() {
		return fmt.Errorf("%w: unknown expense category %q", ErrInvalidInput, expense.Category)
	}
	if _, err := metrics.ParseDate(expense.Date); err != nil {
		return fmt.Errorf("%w: date must be yyyy-mm-dd", ErrInvalidInput)
	}
	if expense.Amount < 0 {
		return fmt.Errorf("%w: amount must not be negative", ErrInvalidInput)
	}
	return nil
}

func (s *expenseService) AddExpense(ctx context.Context, userID int32, expense *domain.OperatingExpense) error {
	if _, err := s.authorize(ctx, expense.AircraftID, userID, true); err != nil {
		return err
	}
	if err := validateExpense(expense); err != nil {
		return err
	}
	return s.expenseRepo.Create(ctx, expense)
}

func (s *expenseService) GetExpense(ctx context.Context, userID, id int32) (*domain.OperatingExpense, error) {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if _, err := s.authorize(ctx, expense.AircraftID, userID, false); err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *expenseService) UpdateExpense(ctx context.Context, userID int32, expense *domain.OperatingExpense) error {
	existing, err := s.GetExpense(ctx, userID, expense.ID)
	if err != nil {
		return err
	}
	if _, err := s.authorize(ctx, existing.AircraftID, userID, true); err != nil {
		return err
	}
	if err := validateExpense(expense); err != nil {
		return err
	}
	expense.AircraftID = existing.AircraftID
	return s.expenseRepo.Update(ctx, expense)
}

func (s *expenseService) DeleteExpense(ctx context.Context, userID, id int32) error {
	expense, err := s.GetExpense(ctx, userID, id)
	if err != nil {
		return err
	}
	if _, err := s.authorize(ctx, expense.AircraftID, userID, true); err != nil {
		return err
	}
	return s.expenseRepo.Delete(ctx, id)
}

func (s *expenseService) ListExpenses(ctx context.Context, userID, aircraftID int32) ([]domain.OperatingExpense, error) {
	if _, err := s.authorize(ctx, aircraftID, userID, false); err != nil {
		return nil, err
	}
	return s.expenseRepo.ListByAircraft(ctx, aircraftID)
}
