package prescriptions

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/smartdoc/smartdoc/internal/domain/drugref"
	"github.com/smartdoc/smartdoc/internal/domain/patients"
)

var ErrInvalidTransition = errors.New("invalid status transition")

// InteractionChecker flags interactions for a set of medications.
type InteractionChecker interface {
	CheckInteractions(ctx context.Context, req *drugref.CheckRequest) (*drugref.CheckResult, error)
}

// Service provides business logic for prescriptions.
type Service struct {
	prescriptions PrescriptionRepository
	interactions  InteractionChecker
}

func NewService(prescriptions PrescriptionRepository, interactions InteractionChecker) *Service {
	return &Service{prescriptions: prescriptions, interactions: interactions}
}

// Create validates the medication list, runs the interaction check and
// stores its findings on the new prescription. Status starts as draft.
func (s *Service) Create(ctx context.Context, doctorID uuid.UUID, req *CreateRequest) (*Prescription, error) {
	if req.PatientID == uuid.Nil {
		return nil, fmt.Errorf("patient_id is required")
	}
	if len(req.Medications) == 0 {
		return nil, fmt.Errorf("at least one medication is required")
	}
	for i, m := range req.Medications {
		if err := validateMedication(m); err != nil {
			return nil, fmt.Errorf("medication %d: %w", i+1, err)
		}
	}

	p := &Prescription{
		DoctorID:    doctorID,
		PatientID:   req.PatientID,
		Status:      StatusDraft,
		Medications: req.Medications,
		Notes:       req.Notes,
	}

	names := make([]string, 0, len(req.Medications))
	for _, m := range req.Medications {
		names = append(names, m.Name)
	}
	check, err := s.interactions.CheckInteractions(ctx, &drugref.CheckRequest{
		Medications: names,
		Conditions:  req.Conditions,
	})
	if err != nil {
		return nil, fmt.Errorf("interaction check: %w", err)
	}
	p.Interactions = check.Findings

	if err := s.prescriptions.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create prescription: %w", err)
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, doctorID, id uuid.UUID) (*Prescription, error) {
	return s.prescriptions.GetByID(ctx, doctorID, id)
}

func (s *Service) List(ctx context.Context, doctorID uuid.UUID, patientID *uuid.UUID, status string, limit, offset int) ([]*Prescription, int, error) {
	if status != "" {
		if _, ok := statusTransitions[status]; !ok {
			return nil, 0, fmt.Errorf("unknown status: %s", status)
		}
	}
	return s.prescriptions.List(ctx, doctorID, patientID, status, limit, offset)
}

// UpdateStatus moves a prescription through its lifecycle. Completed and
// cancelled are terminal.
func (s *Service) UpdateStatus(ctx context.Context, doctorID, id uuid.UUID, status string) (*Prescription, error) {
	if _, ok := statusTransitions[status]; !ok {
		return nil, fmt.Errorf("unknown status: %s", status)
	}

	p, err := s.prescriptions.GetByID(ctx, doctorID, id)
	if err != nil {
		return nil, err
	}

	if !transitionAllowed(p.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, p.Status, status)
	}

	if err := s.prescriptions.UpdateStatus(ctx, p.ID, status); err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}
	p.Status = status
	return p, nil
}

func transitionAllowed(from, to string) bool {
	for _, t := range statusTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

func validateMedication(m patients.Medication) error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(m.Dose) == "" {
		return fmt.Errorf("dose is required")
	}
	if !validUnits[m.Unit] {
		return fmt.Errorf("invalid unit: %s", m.Unit)
	}
	if !validFrequencies[m.Frequency] {
		return fmt.Errorf("invalid frequency: %s", m.Frequency)
	}
	if m.Route != "" && !validRoutes[m.Route] {
		return fmt.Errorf("invalid route: %s", m.Route)
	}
	return nil
}
