package prescriptions

import (
	"context"

	"github.com/google/uuid"
)

// PrescriptionRepository defines persistence operations for prescriptions.
type PrescriptionRepository interface {
	Create(ctx context.Context, p *Prescription) error
	GetByID(ctx context.Context, doctorID, id uuid.UUID) (*Prescription, error)
	List(ctx context.Context, doctorID uuid.UUID, patientID *uuid.UUID, status string, limit, offset int) ([]*Prescription, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
}
