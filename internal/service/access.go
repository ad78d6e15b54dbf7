package service

import (
	"context"
	"database/sql"
	"errors"

	"skyledger-backend/internal/domain"
	"skyledger-backend/internal/repository"
)

// accessChecker resolves whether a user may read or write an aircraft's data.
// The aircraft's owner always has full access; everyone else goes through the
// share table. Embedded by the services that guard per-aircraft resources.
type accessChecker struct {
	aircraftRepo repository.AircraftRepository
	shareRepo    repository.ShareRepository
}

// authorize loads the aircraft and verifies the caller's role. write demands
// a role with write permission (owner or co-owner); read accepts any share.
func (c accessChecker) authorize(ctx context.Context, aircraftID, userID int32, write bool) (*domain.Aircraft, error) {
	aircraft, err := c.aircraftRepo.GetByID(ctx, aircraftID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if aircraft.OwnerID == userID {
		return aircraft, nil
	}

	share, err := c.shareRepo.Get(ctx, aircraftID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrForbidden
	}
	if err != nil {
		return nil, err
	}
	if write && !share.Role.CanWrite() {
		return nil, ErrForbidden
	}
	return aircraft, nil
}
