package models

import (
	"database/sql"
	"time"
)

// Role is the permission tier of a user. The set is closed: anything outside
// it must be rejected by the authorization layer, never defaulted.
type Role string

const (
	// RoleSecretaria sees every dashboard regardless of sector.
	RoleSecretaria Role = "secretaria"
	// RoleGestor sees only the dashboards of their own sector.
	RoleGestor Role = "gestor"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleSecretaria, RoleGestor:
		return true
	}
	return false
}

// User represents a user record in DB (internal use only).
type User struct {
	ID           int64          `json:"id"`
	Username     string         `json:"username"`
	PasswordHash string         `json:"-"`
	Role         Role           `json:"role"`
	Sector       sql.NullString `json:"-"` // set for gestor, meaningless for secretaria
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    sql.NullTime   `json:"-"`
}

// UserDTO is the sanitized user representation for responses. The password
// hash never leaves the backend.
type UserDTO struct {
	ID       int64   `json:"id"`
	Username string  `json:"username"`
	Role     Role    `json:"role"`
	Sector   *string `json:"sector"`
}

// DTO projects the user into its response shape.
func (u *User) DTO() UserDTO {
	dto := UserDTO{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
	}
	if u.Sector.Valid {
		s := u.Sector.String
		dto.Sector = &s
	}
	return dto
}
