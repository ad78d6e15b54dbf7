package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"skyledger-backend/internal/domain"
	"skyledger-backend/internal/repository"
	"skyledger-backend/internal/storage"

	"github.com/google/uuid"
)

const receiptURLValidity = 15 * time.Minute

type maintenanceService struct {
	accessChecker
	maintRepo repository.MaintenanceRepository
	store     storage.Interface
}

func NewMaintenanceService(aircraftRepo repository.AircraftRepository, shareRepo repository.ShareRepository, maintRepo repository.MaintenanceRepository, store storage.Interface) MaintenanceService {
	return &maintenanceService{
		accessChecker: accessChecker{aircraftRepo: aircraftRepo, shareRepo: shareRepo},
		maintRepo:     maintRepo,
		store:         store,
	}
}

// validateEntry enforces the entry-level invariants the cost derivation
// relies on: a valid category, and tach hours whenever an amount is present
// so cost-per-hour stays computable from the entry history.
func validateEntry(entry *domain.MaintenanceEntry) error {
	if entry.Category == "" {
		entry.Category = domain.MaintenanceCategoryOther
	}
	if !entry.Category.Valid() {
		return fmt.Errorf("%w: unknown maintenance category %q", ErrInvalidInput, entry.Category)
	}
	if entry.Amount != nil && entry.TachHours == nil {
		return fmt.Errorf("%w: entries with an amount must include tach hours", ErrInvalidInput)
	}
	if entry.Amount != nil && *entry.Amount < 0 {
		return fmt.Errorf("%w: amount must not be negative", ErrInvalidInput)
	}
	return nil
}

func (s *maintenanceService) AddEntry(ctx context.Context, userID int32, entry *domain.MaintenanceEntry) error {
	if _, err := s.authorize(ctx, entry.AircraftID, userID, true); err != nil {
		return err
	}
	if err := validateEntry(entry); err != nil {
		return err
	}
	return s.maintRepo.Create(ctx, entry)
}

func (s *maintenanceService) GetEntry(ctx context.Context, userID, id int32) (*domain.MaintenanceEntry, error) {
	entry, err := s.maintRepo.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if _, err := s.authorize(ctx, entry.AircraftID, userID, false); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *maintenanceService) UpdateEntry(ctx context.Context, userID int32, entry *domain.MaintenanceEntry) error {
	existing, err := s.GetEntry(ctx, userID, entry.ID)
	if err != nil {
		return err
	}
	if _, err := s.authorize(ctx, existing.AircraftID, userID, true); err != nil {
		return err
	}
	if err := validateEntry(entry); err != nil {
		return err
	}
	entry.AircraftID = existing.AircraftID
	if entry.AttachmentKey == "" {
		entry.AttachmentKey = existing.AttachmentKey
	}
	return s.maintRepo.Update(ctx, entry)
}

func (s *maintenanceService) DeleteEntry(ctx context.Context, userID, id int32) error {
	entry, err := s.GetEntry(ctx, userID, id)
	if err != nil {
		return err
	}
	if _, err := s.authorize(ctx, entry.AircraftID, userID, true); err != nil {
		return err
	}
	if err := s.maintRepo.Delete(ctx, id); err != nil {
		return err
	}
	if entry.AttachmentKey != "" {
		// Best effort; the cleanup job sweeps orphans.
		_ = s.store.DeleteFile(ctx, entry.AttachmentKey)
	}
	return nil
}

func (s *maintenanceService) ListEntries(ctx context.Context, userID, aircraftID int32) ([]domain.MaintenanceEntry, error) {
	if _, err := s.authorize(ctx, aircraftID, userID, false); err != nil {
		return nil, err
	}
	return s.maintRepo.ListByAircraft(ctx, aircraftID)
}

func (s *maintenanceService) AttachReceipt(ctx context.Context, userID, entryID int32, filename, contentType string) (string, string, error) {
	entry, err := s.GetEntry(ctx, userID, entryID)
	if err != nil {
		return "", "", err
	}
	if _, err := s.authorize(ctx, entry.AircraftID, userID, true); err != nil {
		return "", "", err
	}

	switch contentType {
	case "image/jpeg", "image/png", "application/pdf":
	default:
		return "", "", fmt.Errorf("%w: unsupported receipt content type %q", ErrInvalidInput, contentType)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	key := uuid.New().String() + ext
	uploadURL, err := s.store.GenerateUploadURL(ctx, key, contentType, receiptURLValidity)
	if err != nil {
		return "", "", err
	}

	if entry.AttachmentKey != "" {
		_ = s.store.DeleteFile(ctx, entry.AttachmentKey)
	}
	entry.AttachmentKey = key
	if err := s.maintRepo.Update(ctx, entry); err != nil {
		return "", "", err
	}

	return key, uploadURL, nil
}

func (s *maintenanceService) ReceiptURL(ctx context.Context, userID, entryID int32) (string, error) {
	entry, err := s.GetEntry(ctx, userID, entryID)
	if err != nil {
		return "", err
	}
	if entry.AttachmentKey == "" {
		return "", ErrNotFound
	}
	return s.store.GenerateDownloadURL(ctx, entry.AttachmentKey, receiptURLValidity)
}
