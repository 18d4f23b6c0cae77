package patients

import (
	"time"

	"github.com/google/uuid"
)

// Patient maps to the patients table. Each patient belongs to exactly one
// doctor and is addressable by a short human-facing patient code.
type Patient struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	DoctorID    uuid.UUID  `db:"doctor_id" json:"doctor_id"`
	PatientCode string     `db:"patient_code" json:"patient_code"`
	MRN         *string    `db:"mrn" json:"mrn,omitempty"`
	FirstName   string     `db:"first_name" json:"first_name"`
	LastName    string     `db:"last_name" json:"last_name"`
	DateOfBirth *time.Time `db:"date_of_birth" json:"date_of_birth,omitempty"`
	Gender      *string    `db:"gender" json:"gender,omitempty"`
	Phone       *string    `db:"phone" json:"phone,omitempty"`
	Email       *string    `db:"email" json:"email,omitempty"`
	Address     *string    `db:"address" json:"address,omitempty"`
	Allergies   []string   `db:"allergies" json:"allergies,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

// Medication is a structured medication entry stored on a visit.
type Medication struct {
	Name            string `json:"name"`
	Dose            string `json:"dose"`
	Unit            string `json:"unit"`
	Frequency       string `json:"frequency"`
	Route           string `json:"route,omitempty"`
	Duration        string `json:"duration,omitempty"`
	FoodInstruction string `json:"food_instruction,omitempty"`
	Instructions    string `json:"instructions,omitempty"`
}

// Visit maps to the visits table. Vitals and medications are stored as
// JSONB documents.
type Visit struct {
	ID                  uuid.UUID          `db:"id" json:"id"`
	PatientID           uuid.UUID          `db:"patient_id" json:"patient_id"`
	DoctorID            uuid.UUID          `db:"doctor_id" json:"doctor_id"`
	VisitDate           time.Time          `db:"visit_date" json:"visit_date"`
	ChiefComplaint      *string            `db:"chief_complaint" json:"chief_complaint,omitempty"`
	Symptoms            []string           `db:"symptoms" json:"symptoms,omitempty"`
	Diagnosis           *string            `db:"diagnosis" json:"diagnosis,omitempty"`
	Notes               *string            `db:"notes" json:"notes,omitempty"`
	Vitals              map[string]float64 `db:"vitals" json:"vitals,omitempty"`
	Medications         []Medication       `db:"medications" json:"medications,omitempty"`
	TranscriptRaw       *string            `db:"transcript_raw" json:"transcript_raw,omitempty"`
	TranscriptCorrected *string            `db:"transcript_corrected" json:"transcript_corrected,omitempty"`
	CreatedAt           time.Time          `db:"created_at" json:"created_at"`
}

// PatientDetails bundles a patient with their visit history.
type PatientDetails struct {
	Patient *Patient `json:"patient"`
	Visits  []*Visit `json:"visits"`
}

// Stats summarizes a doctor's panel.
type Stats struct {
	TotalPatients int `json:"total_patients"`
	TotalVisits   int `json:"total_visits"`
	RecentVisits  int `json:"recent_visits"`
}
