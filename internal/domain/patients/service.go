package patients

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/smartdoc/smartdoc/internal/textproc"
)

// ErrPatientNotFound reports a lookup for a patient outside the doctor's
// panel.
var ErrPatientNotFound = errors.New("patient not found")

// maxCodeAttempts bounds the retry loop for patient code collisions.
const maxCodeAttempts = 10

// recentVisitWindow is the lookback used by the stats endpoint.
const recentVisitWindow = 30 * 24 * time.Hour

// Service provides business logic for patients and visits.
type Service struct {
	patients PatientRepository
	proc     *textproc.Processor
}

func NewService(patients PatientRepository, proc *textproc.Processor) *Service {
	return &Service{patients: patients, proc: proc}
}

// CreatePatient validates the patient and assigns a fresh patient code.
func (s *Service) CreatePatient(ctx context.Context, p *Patient) error {
	if p.DoctorID == uuid.Nil {
		return fmt.Errorf("doctor_id is required")
	}
	if p.FirstName == "" {
		return fmt.Errorf("first_name is required")
	}
	if p.LastName == "" {
		return fmt.Errorf("last_name is required")
	}

	code, err := s.newPatientCode(ctx)
	if err != nil {
		return err
	}
	p.PatientCode = code

	return s.patients.Create(ctx, p)
}

// SavePatient upserts a patient by code. Without a code it behaves like
// CreatePatient; with one it updates the existing record.
func (s *Service) SavePatient(ctx context.Context, p *Patient) error {
	if p.PatientCode == "" {
		return s.CreatePatient(ctx, p)
	}
	if !ValidPatientCode(p.PatientCode) {
		return fmt.Errorf("invalid patient code: %s", p.PatientCode)
	}

	existing, err := s.patients.GetByCode(ctx, p.DoctorID, p.PatientCode)
	if err != nil {
		if p.FirstName == "" || p.LastName == "" {
			return fmt.Errorf("first_name and last_name are required")
		}
		return s.patients.Create(ctx, p)
	}

	p.ID = existing.ID
	if p.FirstName == "" {
		p.FirstName = existing.FirstName
	}
	if p.LastName == "" {
		p.LastName = existing.LastName
	}
	return s.patients.Update(ctx, p)
}

func (s *Service) newPatientCode(ctx context.Context) (string, error) {
	for i := 0; i < maxCodeAttempts; i++ {
		code := generatePatientCode()
		exists, err := s.patients.CodeExists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("check patient code: %w", err)
		}
		if !exists {
			return code, nil
		}
	}
	return "", fmt.Errorf("could not generate a unique patient code after %d attempts", maxCodeAttempts)
}

func (s *Service) GetByCode(ctx context.Context, doctorID uuid.UUID, code string) (*Patient, error) {
	return s.patients.GetByCode(ctx, doctorID, code)
}

func (s *Service) ListByDoctor(ctx context.Context, doctorID uuid.UUID, limit, offset int) ([]*Patient, int, error) {
	return s.patients.ListByDoctor(ctx, doctorID, limit, offset)
}

func (s *Service) SearchByName(ctx context.Context, doctorID uuid.UUID, query string, limit, offset int) ([]*Patient, int, error) {
	if query == "" {
		return nil, 0, fmt.Errorf("search query is required")
	}
	return s.patients.SearchByName(ctx, doctorID, query, limit, offset)
}

// GetDetails returns a patient with their full visit history, newest first.
func (s *Service) GetDetails(ctx context.Context, doctorID, patientID uuid.UUID) (*PatientDetails, error) {
	p, err := s.patients.GetByID(ctx, doctorID, patientID)
	if err != nil {
		return nil, err
	}
	visits, err := s.patients.ListVisitsByPatient(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	return &PatientDetails{Patient: p, Visits: visits}, nil
}

// AddVisit records a visit. When the visit carries a raw transcript, the
// correction pipeline runs and its extracted fields fill in anything the
// caller did not supply explicitly.
func (s *Service) AddVisit(ctx context.Context, doctorID, patientID uuid.UUID, v *Visit) (*Visit, error) {
	p, err := s.patients.GetByID(ctx, doctorID, patientID)
	if err != nil {
		return nil, ErrPatientNotFound
	}
	v.PatientID = p.ID
	v.DoctorID = doctorID

	if v.TranscriptRaw != nil && *v.TranscriptRaw != "" {
		result := s.proc.Process(*v.TranscriptRaw)
		v.TranscriptCorrected = &result.CorrectedText

		if v.ChiefComplaint == nil && result.ChiefComplaint != "" {
			cc := result.ChiefComplaint
			v.ChiefComplaint = &cc
		}
		if len(v.Symptoms) == 0 {
			v.Symptoms = result.Symptoms
		}
		if v.Diagnosis == nil && result.Diagnosis != "" {
			d := result.Diagnosis
			v.Diagnosis = &d
		}
		if len(v.Vitals) == 0 && len(result.Vitals) > 0 {
			v.Vitals = result.Vitals
		}
		if len(v.Medications) == 0 {
			for _, m := range result.Medications {
				v.Medications = append(v.Medications, Medication{
					Name:      m.Name,
					Dose:      m.Dose,
					Unit:      m.Unit,
					Frequency: m.Frequency,
				})
			}
		}
	}

	if err := s.patients.CreateVisit(ctx, v); err != nil {
		return nil, fmt.Errorf("create visit: %w", err)
	}
	return v, nil
}

// SearchVisits finds visits across the doctor's patients by diagnosis or
// complaint substring, optionally bounded by a date range.
func (s *Service) SearchVisits(ctx context.Context, doctorID uuid.UUID, query string, from, to *time.Time, limit, offset int) ([]*Visit, int, error) {
	if query == "" {
		return nil, 0, fmt.Errorf("search query is required")
	}
	return s.patients.SearchVisits(ctx, doctorID, query, from, to, limit, offset)
}

func (s *Service) GetStats(ctx context.Context, doctorID uuid.UUID) (*Stats, error) {
	return s.patients.Stats(ctx, doctorID, time.Now().Add(-recentVisitWindow))
}
