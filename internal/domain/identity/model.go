package identity

import (
	"time"

	"github.com/google/uuid"
)

// Doctor maps to the doctors table.
type Doctor struct {
	ID             uuid.UUID `db:"id" json:"id"`
	Email          string    `db:"email" json:"email"`
	Username       string    `db:"username" json:"username"`
	FullName       string    `db:"full_name" json:"full_name"`
	Specialization string    `db:"specialization" json:"specialization"`
	LicenseNumber  *string   `db:"license_number" json:"license_number,omitempty"`
	HashedPassword string    `db:"hashed_password" json:"-"`
	IsActive       bool      `db:"is_active" json:"is_active"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// RegisterRequest is the payload for doctor registration.
type RegisterRequest struct {
	Email          string `json:"email"`
	Username       string `json:"username"`
	Password       string `json:"password"`
	FullName       string `json:"full_name"`
	Specialization string `json:"specialization"`
	LicenseNumber  string `json:"license_number"`
}

// LoginRequest is the payload for login. Identifier may be a username
// or an email address.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse is returned on a successful login.
type TokenResponse struct {
	AccessToken string  `json:"access_token"`
	TokenType   string  `json:"token_type"`
	ExpiresIn   int     `json:"expires_in"`
	Doctor      *Doctor `json:"doctor"`
}
