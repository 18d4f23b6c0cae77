package prescriptions

import (
	"time"

	"github.com/google/uuid"

	"github.com/smartdoc/smartdoc/internal/domain/drugref"
	"github.com/smartdoc/smartdoc/internal/domain/patients"
)

// Prescription statuses.
const (
	StatusDraft     = "draft"
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// statusTransitions defines the allowed lifecycle moves.
var statusTransitions = map[string][]string{
	StatusDraft:     {StatusActive, StatusCancelled},
	StatusActive:    {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

var validUnits = map[string]bool{
	"mg": true, "g": true, "mcg": true, "ml": true, "units": true,
}

var validFrequencies = map[string]bool{
	"daily": true, "bid": true, "tid": true, "qid": true, "prn": true,
	"q4h": true, "q6h": true, "q8h": true, "q12h": true, "weekly": true,
}

var validRoutes = map[string]bool{
	"oral": true, "iv": true, "im": true, "topical": true, "sublingual": true,
	"inhalation": true, "rectal": true, "subcutaneous": true,
	"ophthalmic": true, "otic": true,
}

// Prescription maps to the prescriptions table. Medications and the
// interaction findings recorded at save time are stored as JSONB.
type Prescription struct {
	ID           uuid.UUID                    `db:"id" json:"id"`
	DoctorID     uuid.UUID                    `db:"doctor_id" json:"doctor_id"`
	PatientID    uuid.UUID                    `db:"patient_id" json:"patient_id"`
	Status       string                       `db:"status" json:"status"`
	Medications  []patients.Medication        `db:"medications" json:"medications"`
	Interactions []drugref.InteractionFinding `db:"interactions" json:"interactions,omitempty"`
	Notes        *string                      `db:"notes" json:"notes,omitempty"`
	CreatedAt    time.Time                    `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time                    `db:"updated_at" json:"updated_at"`
}

// CreateRequest is the create-prescription payload.
type CreateRequest struct {
	PatientID   uuid.UUID             `json:"patient_id"`
	Medications []patients.Medication `json:"medications"`
	Conditions  []string              `json:"conditions,omitempty"`
	Notes       *string               `json:"notes,omitempty"`
}

// StatusRequest is the status-update payload.
type StatusRequest struct {
	Status string `json:"status"`
}
