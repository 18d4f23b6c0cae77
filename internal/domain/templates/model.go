package templates

import (
	"time"

	"github.com/google/uuid"

	"github.com/smartdoc/smartdoc/internal/domain/patients"
)

// MedicationTemplate is a reusable bundle of medication entries. Public
// templates are visible to every doctor; private ones only to their owner.
type MedicationTemplate struct {
	ID          uuid.UUID             `db:"id" json:"id"`
	DoctorID    uuid.UUID             `db:"doctor_id" json:"doctor_id"`
	Name        string                `db:"name" json:"name"`
	Description *string               `db:"description" json:"description,omitempty"`
	Category    *string               `db:"category" json:"category,omitempty"`
	Medications []patients.Medication `db:"medications" json:"medications"`
	IsPublic    bool                  `db:"is_public" json:"is_public"`
	UsageCount  int                   `db:"usage_count" json:"usage_count"`
	CreatedAt   time.Time             `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time             `db:"updated_at" json:"updated_at"`
}

// UseResult is returned when a template is applied to a prescription.
type UseResult struct {
	TemplateID  uuid.UUID             `json:"template_id"`
	Name        string                `json:"name"`
	Medications []patients.Medication `json:"medications"`
	UsageCount  int                   `json:"usage_count"`
}
