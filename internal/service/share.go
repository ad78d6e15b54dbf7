package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"skyledger-backend/internal/domain"
	"skyledger-backend/internal/logger"
	"skyledger-backend/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrInviteExpired = errors.New("invitation has expired")
	ErrInviteUsed    = errors.New("invitation already used")
	ErrAlreadyShared = errors.New("user already has access to this aircraft")
)

const inviteValidity = 14 * 24 * time.Hour

type shareService struct {
	accessChecker
	userRepo repository.UserRepository
	emailSvc EmailService
}

func NewShareService(aircraftRepo repository.AircraftRepository, shareRepo repository.ShareRepository, userRepo repository.UserRepository, emailSvc EmailService) ShareService {
	return &shareService{
		accessChecker: accessChecker{aircraftRepo: aircraftRepo, shareRepo: shareRepo},
		userRepo:      userRepo,
		emailSvc:      emailSvc,
	}
}

func (s *shareService) InviteCoOwner(ctx context.Context, inviterID, aircraftID int32, email string, role domain.ShareRole) (*domain.Invitation, error) {
	aircraft, err := s.authorize(ctx, aircraftID, inviterID, true)
	if err != nil {
		return nil, err
	}
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if role != domain.ShareRoleCoOwner && role != domain.ShareRoleViewer {
		return nil, fmt.Errorf("%w: invitations may grant CO_OWNER or VIEWER only", ErrInvalidInput)
	}

	invite := &domain.Invitation{
		AircraftID: aircraftID,
		InviterID:  inviterID,
		Email:      email,
		Role:       role,
		Token:      uuid.New().String(),
		ExpiresOn:  time.Now().Add(inviteValidity),
	}
	if err := s.shareRepo.CreateInvitation(ctx, invite); err != nil {
		return nil, err
	}

	inviter, err := s.userRepo.GetByID(ctx, inviterID)
	if err != nil {
		return nil, err
	}
	if err := s.emailSvc.SendInvitation(ctx, email, inviter.Name, aircraft.TailNumber, invite.Token); err != nil {
		// The invite is persisted; the token can be re-sent by hand.
		logger.Error("Failed to send invitation email", "email", email, "error", err)
	}

	return invite, nil
}

func (s *shareService) AcceptInvite(ctx context.Context, userID int32, token string) (*domain.AircraftShare, error) {
	invite, err := s.shareRepo.GetInvitationByToken(ctx, token)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if invite.UsedOn != nil {
		return nil, ErrInviteUsed
	}
	if invite.ExpiresOn.Before(time.Now()) {
		return nil, ErrInviteExpired
	}

	if _, err := s.shareRepo.Get(ctx, invite.AircraftID, userID); err == nil {
		return nil, ErrAlreadyShared
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	share := &domain.AircraftShare{
		AircraftID: invite.AircraftID,
		UserID:     userID,
		Role:       invite.Role,
	}
	if err := s.shareRepo.Create(ctx, share); err != nil {
		return nil, err
	}

	now := time.Now()
	invite.UsedOn = &now
	if err := s.shareRepo.UpdateInvitation(ctx, invite); err != nil {
		return nil, err
	}

	return share, nil
}

func (s *shareService) ListShares(ctx context.Context, userID, aircraftID int32) ([]domain.AircraftShare, error) {
	if _, err := s.authorize(ctx, aircraftID, userID, false); err != nil {
		return nil, err
	}
	return s.shareRepo.ListByAircraft(ctx, aircraftID)
}

func (s *shareService) RevokeShare(ctx context.Context, userID, aircraftID, shareID int32) error {
	aircraft, err := s.authorize(ctx, aircraftID, userID, true)
	if err != nil {
		return err
	}
	// Only the owner can revoke access.
	if aircraft.OwnerID != userID {
		return ErrForbidden
	}
	return s.shareRepo.Delete(ctx, shareID)
}
