package patients

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PatientRepository defines persistence operations for patients and visits.
type PatientRepository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, doctorID, id uuid.UUID) (*Patient, error)
	GetByCode(ctx context.Context, doctorID uuid.UUID, code string) (*Patient, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	Update(ctx context.Context, p *Patient) error
	ListByDoctor(ctx context.Context, doctorID uuid.UUID, limit, offset int) ([]*Patient, int, error)
	SearchByName(ctx context.Context, doctorID uuid.UUID, query string, limit, offset int) ([]*Patient, int, error)

	CreateVisit(ctx context.Context, v *Visit) error
	GetVisit(ctx context.Context, doctorID, id uuid.UUID) (*Visit, error)
	ListVisitsByPatient(ctx context.Context, patientID uuid.UUID) ([]*Visit, error)
	SearchVisits(ctx context.Context, doctorID uuid.UUID, query string, from, to *time.Time, limit, offset int) ([]*Visit, int, error)

	Stats(ctx context.Context, doctorID uuid.UUID, since time.Time) (*Stats, error)
}
