package templates

import (
	"context"

	"github.com/google/uuid"
)

// TemplateRepository defines persistence operations for medication templates.
type TemplateRepository interface {
	Create(ctx context.Context, t *MedicationTemplate) error
	GetByID(ctx context.Context, id uuid.UUID) (*MedicationTemplate, error)
	// Search returns the doctor's own templates plus public ones, ordered by
	// usage count descending then name.
	Search(ctx context.Context, doctorID uuid.UUID, query, category string, limit, offset int) ([]*MedicationTemplate, int, error)
	Popular(ctx context.Context, limit int) ([]*MedicationTemplate, error)
	IncrementUsage(ctx context.Context, id uuid.UUID) (int, error)
}
