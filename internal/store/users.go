// Package store wraps SQL access to the users and dashboards tables. Lookups
// return ErrNotFound instead of sql.ErrNoRows so handlers can translate it
// at the boundary without leaking storage detail.
package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/yourorg/dashapi/internal/models"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

type UserStore struct {
	db *sql.DB
}

func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

// FindByUsername looks up a user by exact, case-sensitive username.
func (s *UserStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := s.db.QueryRowContext(ctx, `
		SELECT id, username, password_hash, role, sector, created_at, updated_at
		FROM users
		WHERE BINARY username = ?
	`, username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.Sector, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}
