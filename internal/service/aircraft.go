package service

import (
	"context"
	"fmt"

	"skyledger-backend/internal/domain"
	"skyledger-backend/internal/repository"
)

type aircraftService struct {
	accessChecker
}

func NewAircraftService(aircraftRepo repository.AircraftRepository, shareRepo repository.ShareRepository) AircraftService {
	return &aircraftService{accessChecker{aircraftRepo: aircraftRepo, shareRepo: shareRepo}}
}

func (s *aircraftService) CreateAircraft(ctx context.Context, userID int32, aircraft *domain.Aircraft) error {
	if aircraft.TailNumber == "" {
		return fmt.Errorf("%w: tail number is required", ErrInvalidInput)
	}
	aircraft.OwnerID = userID
	return s.aircraftRepo.Create(ctx, aircraft)
}

func (s *aircraftService) GetAircraft(ctx context.Context, userID, id int32) (*domain.Aircraft, error) {
	return s.authorize(ctx, id, userID, false)
}

func (s *aircraftService) UpdateAircraft(ctx context.Context, userID int32, aircraft *domain.Aircraft) error {
	existing, err := s.authorize(ctx, aircraft.ID, userID, true)
	if err != nil {
		return err
	}
	if aircraft.TailNumber == "" {
		return fmt.Errorf("%w: tail number is required", ErrInvalidInput)
	}
	aircraft.OwnerID = existing.OwnerID
	return s.aircraftRepo.Update(ctx, aircraft)
}

func (s *aircraftService) DeleteAircraft(ctx context.Context, userID, id int32) error {
	aircraft, err := s.authorize(ctx, id, userID, true)
	if err != nil {
		return err
	}
	// Only the owner can delete the aircraft itself.
	if aircraft.OwnerID != userID {
		return ErrForbidden
	}
	return s.aircraftRepo.Delete(ctx, id)
}

func (s *aircraftService) ListMyAircraft(ctx context.Context, userID int32) ([]domain.Aircraft, error) {
	return s.aircraftRepo.ListByUser(ctx, userID)
}
