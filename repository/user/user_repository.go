package user

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/foodhive/model"
)

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	Upsert(ctx context.Context, profile *model.UserProfile) error
	Get(ctx context.Context, uid string) (*model.UserProfile, error)
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	upsertProfileQuery = `INSERT INTO user_profile (uid, phone, address, created_at, updated_at) VALUES (?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE phone = VALUES(phone), address = VALUES(address), updated_at = VALUES(updated_at)`
	getProfileQuery = `SELECT uid, phone, address, created_at, updated_at FROM user_profile WHERE uid = ?`
)

func (s *SQL) Upsert(ctx context.Context, p *model.UserProfile) error {
	_, err := s.conn.ExecContext(ctx, upsertProfileQuery, p.UID, p.Phone, p.Address, p.CreatedAt, p.UpdatedAt)
	return err
}

// Get returns nil, nil when the uid has no stored profile.
func (s *SQL) Get(ctx context.Context, uid string) (*model.UserProfile, error) {
	var p model.UserProfile
	if err := s.conn.QueryRowxContext(ctx, getProfileQuery, uid).StructScan(&p); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}
