package postgres

import (
	"context"
	"database/sql"
	"time"

	"skyledger-backend/internal/domain"
	"skyledger-backend/internal/repository"
)

type shareRepository struct {
	db *sql.DB
}

func NewShareRepository(db *sql.DB) repository.ShareRepository {
	return &shareRepository{db: db}
}

func (r *shareRepository) Create(ctx context.Context, share *domain.AircraftShare) error {
	query := `INSERT INTO aircraft_shares (aircraft_id, user_id, role, created_on)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	now := time.Now().Format("2006-01-02")
	return r.db.QueryRowContext(ctx, query, share.AircraftID, share.UserID, share.Role, now).Scan(&share.ID)
}

func (r *shareRepository) Get(ctx context.Context, aircraftID, userID int32) (*domain.AircraftShare, error) {
	query := `SELECT id, aircraft_id, user_id, role, created_on
	          FROM aircraft_shares WHERE aircraft_id = $1 AND user_id = $2`
	var s domain.AircraftShare
	var createdOn time.Time
	err := r.db.QueryRowContext(ctx, query, aircraftID, userID).Scan(&s.ID, &s.AircraftID, &s.UserID, &s.Role, &createdOn)
	if err != nil {
		return nil, err
	}
	s.CreatedOn = createdOn.Format("2006-01-02")
	return &s, nil
}

func (r *shareRepository) ListByAircraft(ctx context.Context, aircraftID int32) ([]domain.AircraftShare, error) {
	query := `SELECT id, aircraft_id, user_id, role, created_on
	          FROM aircraft_shares WHERE aircraft_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, aircraftID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shares []domain.AircraftShare
	for rows.Next() {
		var s domain.AircraftShare
		var createdOn time.Time
		if err := rows.Scan(&s.ID, &s.AircraftID, &s.UserID, &s.Role, &createdOn); err != nil {
			return nil, err
		}
		s.CreatedOn = createdOn.Format("2006-01-02")
		shares = append(shares, s)
	}
	return shares, rows.Err()
}

func (r *shareRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM aircraft_shares WHERE id = $1`, id)
	return err
}

func (r *shareRepository) CreateInvitation(ctx context.Context, invite *domain.Invitation) error {
	query := `INSERT INTO invitations (aircraft_id, inviter_id, email, role, token, expires_on, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	now := time.Now().Format("2006-01-02")
	return r.db.QueryRowContext(ctx, query,
		invite.AircraftID, invite.InviterID, invite.Email, invite.Role,
		invite.Token, invite.ExpiresOn, now).Scan(&invite.ID)
}

func (r *shareRepository) GetInvitationByToken(ctx context.Context, token string) (*domain.Invitation, error) {
	query := `SELECT id, aircraft_id, inviter_id, email, role, token, expires_on, used_on, created_on
	          FROM invitations WHERE token = $1`
	var inv domain.Invitation
	var createdOn time.Time
	err := r.db.QueryRowContext(ctx, query, token).Scan(
		&inv.ID, &inv.AircraftID, &inv.InviterID, &inv.Email, &inv.Role,
		&inv.Token, &inv.ExpiresOn, &inv.UsedOn, &createdOn)
	if err != nil {
		return nil, err
	}
	inv.CreatedOn = createdOn.Format("2006-01-02")
	return &inv, nil
}

func (r *shareRepository) UpdateInvitation(ctx context.Context, invite *domain.Invitation) error {
	query := `UPDATE invitations SET used_on = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, invite.UsedOn, invite.ID)
	return err
}

func (r *shareRepository) DeleteExpiredInvitations(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM invitations WHERE used_on IS NULL AND expires_on < NOW()`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
