package templates

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/smartdoc/smartdoc/internal/domain/patients"
)

// =========== Mock Repository ===========

type mockTemplateRepo struct {
	store map[uuid.UUID]*MedicationTemplate
}

func newMockTemplateRepo() *mockTemplateRepo {
	return &mockTemplateRepo{store: make(map[uuid.UUID]*MedicationTemplate)}
}

func (m *mockTemplateRepo) Create(_ context.Context, t *MedicationTemplate) error {
	t.ID = uuid.New()
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	m.store[t.ID] = t
	return nil
}

func (m *mockTemplateRepo) GetByID(_ context.Context, id uuid.UUID) (*MedicationTemplate, error) {
	t, ok := m.store[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return t, nil
}

func (m *mockTemplateRepo) Search(_ context.Context, doctorID uuid.UUID, query, category string, limit, offset int) ([]*MedicationTemplate, int, error) {
	var items []*MedicationTemplate
	for _, t := range m.store {
		if t.DoctorID != doctorID && !t.IsPublic {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(t.Name), strings.ToLower(query)) {
			continue
		}
		if category != "" && (t.Category == nil || *t.Category != category) {
			continue
		}
		items = append(items, t)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].UsageCount != items[j].UsageCount {
			return items[i].UsageCount > items[j].UsageCount
		}
		return items[i].Name < items[j].Name
	})
	return items, len(items), nil
}

func (m *mockTemplateRepo) Popular(_ context.Context, limit int) ([]*MedicationTemplate, error) {
	var items []*MedicationTemplate
	for _, t := range m.store {
		if t.IsPublic {
			items = append(items, t)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].UsageCount > items[j].UsageCount
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (m *mockTemplateRepo) IncrementUsage(_ context.Context, id uuid.UUID) (int, error) {
	t, ok := m.store[id]
	if !ok {
		return 0, fmt.Errorf("not found")
	}
	t.UsageCount++
	return t.UsageCount, nil
}

// =========== Helpers ===========

func newTestService() *Service {
	return NewService(newMockTemplateRepo())
}

func validTemplate() *MedicationTemplate {
	return &MedicationTemplate{
		Name: "Hypertension Starter",
		Medications: []patients.Medication{
			{Name: "lisinopril", Dose: "10", Unit: "mg", Frequency: "daily"},
		},
	}
}

// =========== Tests ===========

func TestCreate_Success(t *testing.T) {
	svc := newTestService()
	doctorID := uuid.New()

	tmpl := validTemplate()
	if err := svc.Create(context.Background(), doctorID, tmpl); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tmpl.DoctorID != doctorID {
		t.Error("expected template bound to doctor")
	}
}

func TestCreate_MissingName(t *testing.T) {
	svc := newTestService()
	tmpl := validTemplate()
	tmpl.Name = " "
	if err := svc.Create(context.Background(), uuid.New(), tmpl); err == nil {
		t.Fatal("expected error for empty name")
	}
}

func TestCreate_NoMedications(t *testing.T) {
	svc := newTestService()
	tmpl := validTemplate()
	tmpl.Medications = nil
	if err := svc.Create(context.Background(), uuid.New(), tmpl); err == nil {
		t.Fatal("expected error for empty medication list")
	}
}

func TestUse_IncrementsUsageCount(t *testing.T) {
	svc := newTestService()
	doctorID := uuid.New()

	tmpl := validTemplate()
	svc.Create(context.Background(), doctorID, tmpl)

	result, err := svc.Use(context.Background(), doctorID, tmpl.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.UsageCount != 1 {
		t.Errorf("expected usage count 1, got %d", result.UsageCount)
	}
	if len(result.Medications) != 1 || result.Medications[0].Name != "lisinopril" {
		t.Errorf("expected template medications, got %v", result.Medications)
	}

	result, _ = svc.Use(context.Background(), doctorID, tmpl.ID)
	if result.UsageCount != 2 {
		t.Errorf("expected usage count 2, got %d", result.UsageCount)
	}
}

func TestUse_PrivateTemplateForbidden(t *testing.T) {
	svc := newTestService()
	owner := uuid.New()

	tmpl := validTemplate()
	svc.Create(context.Background(), owner, tmpl)

	_, err := svc.Use(context.Background(), uuid.New(), tmpl.ID)
	if err != ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestUse_PublicTemplateByAnyDoctor(t *testing.T) {
	svc := newTestService()
	owner := uuid.New()

	tmpl := validTemplate()
	tmpl.IsPublic = true
	svc.Create(context.Background(), owner, tmpl)

	if _, err := svc.Use(context.Background(), uuid.New(), tmpl.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSearch_OwnAndPublic(t *testing.T) {
	svc := newTestService()
	doctorID := uuid.New()

	mine := validTemplate()
	svc.Create(context.Background(), doctorID, mine)

	public := validTemplate()
	public.Name = "Diabetes Starter"
	public.IsPublic = true
	svc.Create(context.Background(), uuid.New(), public)

	private := validTemplate()
	private.Name = "Someone Elses"
	svc.Create(context.Background(), uuid.New(), private)

	_, total, err := svc.Search(context.Background(), doctorID, "", "", 20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 2 {
		t.Errorf("expected own + public = 2, got %d", total)
	}
}

func TestSearch_OrderedByUsage(t *testing.T) {
	svc := newTestService()
	doctorID := uuid.New()

	a := validTemplate()
	a.Name = "Rarely Used"
	svc.Create(context.Background(), doctorID, a)

	b := validTemplate()
	b.Name = "Often Used"
	svc.Create(context.Background(), doctorID, b)
	svc.Use(context.Background(), doctorID, b.ID)
	svc.Use(context.Background(), doctorID, b.ID)

	items, _, err := svc.Search(context.Background(), doctorID, "", "", 20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 || items[0].Name != "Often Used" {
		t.Errorf("expected most used first, got %v", items)
	}
}

func TestPopular_PublicOnly(t *testing.T) {
	svc := newTestService()

	public := validTemplate()
	public.IsPublic = true
	svc.Create(context.Background(), uuid.New(), public)

	private := validTemplate()
	private.Name = "Private"
	svc.Create(context.Background(), uuid.New(), private)

	items, err := svc.Popular(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("expected only public templates, got %d", len(items))
	}
}
