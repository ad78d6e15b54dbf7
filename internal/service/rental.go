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

// ErrNoRateSet is returned when a rental log is created without an explicit
// rate and the aircraft has no rate history to snapshot from.
var ErrNoRateSet = errors.New("no rental rate set for this aircraft")

type rentalService struct {
	accessChecker
	rentalRepo repository.RentalRepository
}

func NewRentalService(aircraftRepo repository.AircraftRepository, shareRepo repository.ShareRepository, rentalRepo repository.RentalRepository) RentalService {
	return &rentalService{
		accessChecker: accessChecker{aircraftRepo: aircraftRepo, shareRepo: shareRepo},
		rentalRepo:    rentalRepo,
	}
}

func (s *rentalService) SetRate(ctx context.Context, userID int32, rate *domain.RentalRate) error {
	if _, err := s.authorize(ctx, rate.AircraftID, userID, true); err != nil {
		return err
	}
	if rate.HourlyRate <= 0 {
		return fmt.Errorf("%w: hourly rate must be positive", ErrInvalidInput)
	}
	if _, err := metrics.ParseDate(rate.EffectiveFrom); err != nil {
		return fmt.Errorf("%w: effective_from must be yyyy-mm-dd", ErrInvalidInput)
	}
	return s.rentalRepo.CreateRate(ctx, rate)
}

func (s *rentalService) ListRates(ctx context.Context, userID, aircraftID int32) ([]domain.RentalRate, error) {
	if _, err := s.authorize(ctx, aircraftID, userID, false); err != nil {
		return nil, err
	}
	return s.rentalRepo.ListRates(ctx, aircraftID)
}

// CurrentRate resolves the rate in effect on asOf. Returns nil (not an
// error) when the aircraft has no rate history: "no rate set" is a normal
// dashboard state.
func (s *rentalService) CurrentRate(ctx context.Context, userID, aircraftID int32, asOf string) (*domain.RentalRate, error) {
	rates, err := s.ListRates(ctx, userID, aircraftID)
	if err != nil {
		return nil, err
	}
	i := metrics.ResolveRateIndex(toRateRecords(rates), asOf)
	if i < 0 {
		return nil, nil
	}
	rate := rates[i]
	return &rate, nil
}

// LogRental records rented hours. When the caller does not supply an hourly
// rate, the rate in effect on the log's date is resolved and written into the
// row as a permanent snapshot. Later rate-table edits never touch it.
func (s *rentalService) LogRental(ctx context.Context, userID int32, log *domain.RentalLog) error {
	if _, err := s.authorize(ctx, log.AircraftID, userID, true); err != nil {
		return err
	}
	if err := validateLog(log); err != nil {
		return err
	}

	if log.HourlyRate <= 0 {
		rates, err := s.rentalRepo.ListRates(ctx, log.AircraftID)
		if err != nil {
			return err
		}
		resolved := metrics.ResolveRate(toRateRecords(rates), log.Date)
		if resolved == nil {
			return ErrNoRateSet
		}
		log.HourlyRate = resolved.HourlyRate
	}

	return s.rentalRepo.CreateLog(ctx, log)
}

func (s *rentalService) GetLog(ctx context.Context, userID, id int32) (*domain.RentalLog, error) {
	log, err := s.rentalRepo.GetLogByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if _, err := s.authorize(ctx, log.AircraftID, userID, false); err != nil {
		return nil, err
	}
	return log, nil
}

// UpdateLog edits a rental log. The stored rate snapshot is kept unless the
// caller explicitly provides a new positive rate.
func (s *rentalService) UpdateLog(ctx context.Context, userID int32, log *domain.RentalLog) error {
	existing, err := s.GetLog(ctx, userID, log.ID)
	if err != nil {
		return err
	}
	if _, err := s.authorize(ctx, existing.AircraftID, userID, true); err != nil {
		return err
	}
	if err := validateLog(log); err != nil {
		return err
	}
	log.AircraftID = existing.AircraftID
	if log.HourlyRate <= 0 {
		log.HourlyRate = existing.HourlyRate
	}
	return s.rentalRepo.UpdateLog(ctx, log)
}

func (s *rentalService) DeleteLog(ctx context.Context, userID, id int32) error {
	log, err := s.GetLog(ctx, userID, id)
	if err != nil {
		return err
	}
	if _, err := s.authorize(ctx, log.AircraftID, userID, true); err != nil {
		return err
	}
	return s.rentalRepo.DeleteLog(ctx, id)
}

func (s *rentalService) ListLogs(ctx context.Context, userID, aircraftID int32) ([]domain.RentalLog, error) {
	if _, err := s.authorize(ctx, aircraftID, userID, false); err != nil {
		return nil, err
	}
	return s.rentalRepo.ListLogs(ctx, aircraftID)
}

func validateLog(log *domain.RentalLog) error {
	if _, err := metrics.ParseDate(log.Date); err != nil {
		return fmt.Errorf("%w: date must be yyyy-mm-dd", ErrInvalidInput)
	}
	if log.Hours <= 0 {
		return fmt.Errorf("%w: hours must be positive", ErrInvalidInput)
	}
	return nil
}

func toRateRecords(rates []domain.RentalRate) []metrics.RateRecord {
	records := make([]metrics.RateRecord, len(rates))
	for i, r := range rates {
		records[i] = metrics.RateRecord{HourlyRate: r.HourlyRate, EffectiveFrom: r.EffectiveFrom}
	}
	return records
}
