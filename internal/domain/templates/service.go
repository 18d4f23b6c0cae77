package templates

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const popularLimit = 10

var ErrForbidden = errors.New("template is private")

// Service provides business logic for medication templates.
type Service struct {
	templates TemplateRepository
}

func NewService(templates TemplateRepository) *Service {
	return &Service{templates: templates}
}

func (s *Service) Create(ctx context.Context, doctorID uuid.UUID, t *MedicationTemplate) error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if len(t.Medications) == 0 {
		return fmt.Errorf("at least one medication is required")
	}
	for i, m := range t.Medications {
		if strings.TrimSpace(m.Name) == "" {
			return fmt.Errorf("medication %d: name is required", i+1)
		}
	}
	t.DoctorID = doctorID
	return s.templates.Create(ctx, t)
}

// Use returns the template's medications and bumps its usage count.
// Private templates can only be used by their owner.
func (s *Service) Use(ctx context.Context, doctorID, id uuid.UUID) (*UseResult, error) {
	t, err := s.templates.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !t.IsPublic && t.DoctorID != doctorID {
		return nil, ErrForbidden
	}

	count, err := s.templates.IncrementUsage(ctx, t.ID)
	if err != nil {
		return nil, fmt.Errorf("increment usage: %w", err)
	}

	return &UseResult{
		TemplateID:  t.ID,
		Name:        t.Name,
		Medications: t.Medications,
		UsageCount:  count,
	}, nil
}

func (s *Service) Search(ctx context.Context, doctorID uuid.UUID, query, category string, limit, offset int) ([]*MedicationTemplate, int, error) {
	return s.templates.Search(ctx, doctorID, strings.TrimSpace(query), strings.TrimSpace(category), limit, offset)
}

func (s *Service) Popular(ctx context.Context) ([]*MedicationTemplate, error) {
	return s.templates.Popular(ctx, popularLimit)
}
