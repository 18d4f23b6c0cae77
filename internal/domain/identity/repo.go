package identity

import (
	"context"

	"github.com/google/uuid"
)

// DoctorRepository defines persistence operations for doctor accounts.
type DoctorRepository interface {
	Create(ctx context.Context, d *Doctor) error
	GetByID(ctx context.Context, id uuid.UUID) (*Doctor, error)
	GetByEmail(ctx context.Context, email string) (*Doctor, error)
	GetByUsername(ctx context.Context, username string) (*Doctor, error)
	Update(ctx context.Context, d *Doctor) error
}
