package ehr

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/smartdoc/smartdoc/internal/domain/patients"
)

// =========== Mock Repository ===========

type mockEHRRepo struct {
	configs     map[uuid.UUID]*ProviderConfig
	tests       map[uuid.UUID]*ConnectionTest
	submissions map[uuid.UUID]*Submission
}

func newMockEHRRepo() *mockEHRRepo {
	return &mockEHRRepo{
		configs:     make(map[uuid.UUID]*ProviderConfig),
		tests:       make(map[uuid.UUID]*ConnectionTest),
		submissions: make(map[uuid.UUID]*Submission),
	}
}

func (m *mockEHRRepo) UpsertConfig(_ context.Context, c *ProviderConfig) error {
	for _, existing := range m.configs {
		if existing.DoctorID == c.DoctorID && existing.Provider == c.Provider {
			c.ID = existing.ID
			m.configs[c.ID] = c
			return nil
		}
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	m.configs[c.ID] = c
	return nil
}

func (m *mockEHRRepo) GetConfig(_ context.Context, doctorID, id uuid.UUID) (*ProviderConfig, error) {
	c, ok := m.configs[id]
	if !ok || c.DoctorID != doctorID || !c.IsActive {
		return nil, fmt.Errorf("not found")
	}
	return c, nil
}

func (m *mockEHRRepo) ListConfigs(_ context.Context, doctorID uuid.UUID) ([]*ProviderConfig, error) {
	var items []*ProviderConfig
	for _, c := range m.configs {
		if c.DoctorID == doctorID && c.IsActive {
			items = append(items, c)
		}
	}
	return items, nil
}

func (m *mockEHRRepo) DeactivateConfig(_ context.Context, doctorID, id uuid.UUID) error {
	c, ok := m.configs[id]
	if !ok || c.DoctorID != doctorID || !c.IsActive {
		return fmt.Errorf("not found")
	}
	c.IsActive = false
	return nil
}

func (m *mockEHRRepo) CreateConnectionTest(_ context.Context, t *ConnectionTest) error {
	t.ID = uuid.New()
	m.tests[t.ID] = t
	return nil
}

func (m *mockEHRRepo) TrimConnectionTests(_ context.Context, configID uuid.UUID, keep int) error {
	var forConfig []*ConnectionTest
	for _, t := range m.tests {
		if t.ConfigID == configID {
			forConfig = append(forConfig, t)
		}
	}
	sort.Slice(forConfig, func(i, j int) bool {
		return forConfig[i].TestedAt.After(forConfig[j].TestedAt)
	})
	for i := keep; i < len(forConfig); i++ {
		delete(m.tests, forConfig[i].ID)
	}
	return nil
}

func (m *mockEHRRepo) ListConnectionTests(_ context.Context, configID uuid.UUID) ([]*ConnectionTest, error) {
	var items []*ConnectionTest
	for _, t := range m.tests {
		if t.ConfigID == configID {
			items = append(items, t)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].TestedAt.After(items[j].TestedAt)
	})
	return items, nil
}

func (m *mockEHRRepo) CreateSubmission(_ context.Context, s *Submission) error {
	s.ID = uuid.New()
	m.submissions[s.ID] = s
	return nil
}

func (m *mockEHRRepo) GetSubmission(_ context.Context, doctorID, id uuid.UUID) (*Submission, error) {
	s, ok := m.submissions[id]
	if !ok || s.DoctorID != doctorID {
		return nil, fmt.Errorf("not found")
	}
	return s, nil
}

func (m *mockEHRRepo) UpdateSubmission(_ context.Context, s *Submission) error {
	if _, ok := m.submissions[s.ID]; !ok {
		return fmt.Errorf("not found")
	}
	m.submissions[s.ID] = s
	return nil
}

func (m *mockEHRRepo) ListSubmissions(_ context.Context, doctorID uuid.UUID, status string, limit, offset int) ([]*Submission, int, error) {
	var items []*Submission
	for _, s := range m.submissions {
		if s.DoctorID != doctorID {
			continue
		}
		if status != "" && s.Status != status {
			continue
		}
		items = append(items, s)
	}
	return items, len(items), nil
}

// =========== Mock Patient Directory ===========

type mockDirectory struct {
	patients map[uuid.UUID]*patients.Patient
	visits   map[uuid.UUID]*patients.Visit
}

func newMockDirectory() *mockDirectory {
	return &mockDirectory{
		patients: make(map[uuid.UUID]*patients.Patient),
		visits:   make(map[uuid.UUID]*patients.Visit),
	}
}

func (m *mockDirectory) GetByID(_ context.Context, doctorID, id uuid.UUID) (*patients.Patient, error) {
	p, ok := m.patients[id]
	if !ok || p.DoctorID != doctorID {
		return nil, fmt.Errorf("not found")
	}
	return p, nil
}

func (m *mockDirectory) GetVisit(_ context.Context, doctorID, id uuid.UUID) (*patients.Visit, error) {
	v, ok := m.visits[id]
	if !ok || v.DoctorID != doctorID {
		return nil, fmt.Errorf("not found")
	}
	return v, nil
}

// =========== Helpers ===========

func newTestService() (*Service, *mockEHRRepo, *mockDirectory) {
	repo := newMockEHRRepo()
	dir := newMockDirectory()
	svc := NewService(repo, NewClient(2*time.Second), dir, zerolog.Nop())
	return svc, repo, dir
}

func validConfigure(baseURL string) *ConfigureRequest {
	return &ConfigureRequest{
		Provider: ProviderGenericFHIR,
		BaseURL:  baseURL,
		AuthType: AuthAPIKey,
		APIKey:   "test-key",
	}
}

func seedPatientAndVisit(dir *mockDirectory, doctorID uuid.UUID) (*patients.Patient, *patients.Visit) {
	p := &patients.Patient{
		ID:          uuid.New(),
		DoctorID:    doctorID,
		PatientCode: "AB1234",
		FirstName:   "Alice",
		LastName:    "Nguyen",
	}
	dir.patients[p.ID] = p

	v := &patients.Visit{
		ID:        uuid.New(),
		PatientID: p.ID,
		DoctorID:  doctorID,
		VisitDate: time.Now(),
		Vitals:    map[string]float64{"bp_systolic": 140, "bp_diastolic": 90},
		Medications: []patients.Medication{
			{Name: "lisinopril", Dose: "10", Unit: "mg", Frequency: "daily"},
		},
	}
	dir.visits[v.ID] = v
	return p, v
}

// =========== Configure Tests ===========

func TestConfigure_Success(t *testing.T) {
	svc, _, _ := newTestService()

	cfg, err := svc.Configure(context.Background(), uuid.New(), validConfigure("https://fhir.example.com"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.IsActive {
		t.Error("expected new config to be active")
	}
}

func TestConfigure_UpsertsExisting(t *testing.T) {
	svc, _, _ := newTestService()
	doctorID := uuid.New()

	first, _ := svc.Configure(context.Background(), doctorID, validConfigure("https://old.example.com"))
	second, err := svc.Configure(context.Background(), doctorID, validConfigure("https://new.example.com"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.ID != second.ID {
		t.Error("expected upsert to reuse the existing config")
	}

	configs, _ := svc.ListConfigs(context.Background(), doctorID)
	if len(configs) != 1 {
		t.Fatalf("expected 1 config, got %d", len(configs))
	}
	if configs[0].BaseURL != "https://new.example.com" {
		t.Errorf("expected updated base URL, got %s", configs[0].BaseURL)
	}
}

func TestConfigure_UnknownProvider(t *testing.T) {
	svc, _, _ := newTestService()
	req := validConfigure("https://fhir.example.com")
	req.Provider = "papyrus"
	if _, err := svc.Configure(context.Background(), uuid.New(), req); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestConfigure_BadURL(t *testing.T) {
	svc, _, _ := newTestService()
	req := validConfigure("not a url")
	if _, err := svc.Configure(context.Background(), uuid.New(), req); err == nil {
		t.Fatal("expected error for invalid base URL")
	}
}

func TestConfigure_MissingAuthFields(t *testing.T) {
	svc, _, _ := newTestService()
	req := validConfigure("https://fhir.example.com")
	req.AuthType = AuthOAuth2
	if _, err := svc.Configure(context.Background(), uuid.New(), req); err == nil {
		t.Fatal("expected error for oauth2 without credentials")
	}
}

func TestDeleteConfig_SoftDelete(t *testing.T) {
	svc, _, _ := newTestService()
	doctorID := uuid.New()

	cfg, _ := svc.Configure(context.Background(), doctorID, validConfigure("https://fhir.example.com"))
	if err := svc.DeleteConfig(context.Background(), doctorID, cfg.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	configs, _ := svc.ListConfigs(context.Background(), doctorID)
	if len(configs) != 0 {
		t.Errorf("expected no active configs, got %d", len(configs))
	}
}

// =========== Connection Test Tests ===========

func TestTestConnection_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/metadata" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/fhir+json")
		fmt.Fprint(w, `{"resourceType":"CapabilityStatement","fhirVersion":"4.0.1"}`)
	}))
	defer srv.Close()

	svc, _, _ := newTestService()
	doctorID := uuid.New()
	cfg, _ := svc.Configure(context.Background(), doctorID, validConfigure(srv.URL))

	test, err := svc.TestConnection(context.Background(), doctorID, cfg.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !test.Success {
		t.Errorf("expected success, got message %q", test.Message)
	}
	if test.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", test.StatusCode)
	}
}

func TestTestConnection_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc, _, _ := newTestService()
	doctorID := uuid.New()
	cfg, _ := svc.Configure(context.Background(), doctorID, validConfigure(srv.URL))

	test, err := svc.TestConnection(context.Background(), doctorID, cfg.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if test.Success {
		t.Error("expected failed test")
	}
}

func TestTestConnection_KeepsLatestTen(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"fhirVersion":"4.0.1"}`)
	}))
	defer srv.Close()

	svc, _, _ := newTestService()
	doctorID := uuid.New()
	cfg, _ := svc.Configure(context.Background(), doctorID, validConfigure(srv.URL))

	for i := 0; i < 15; i++ {
		if _, err := svc.TestConnection(context.Background(), doctorID, cfg.ID); err != nil {
			t.Fatalf("test %d failed: %v", i, err)
		}
	}

	history, err := svc.ConnectionHistory(context.Background(), doctorID, cfg.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(history) != connectionTestHistory {
		t.Errorf("expected %d retained tests, got %d", connectionTestHistory, len(history))
	}
}

// =========== Submission Tests ===========

func TestSubmit_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"resourceType":"Bundle","type":"transaction-response"}`)
	}))
	defer srv.Close()

	svc, _, dir := newTestService()
	doctorID := uuid.New()
	cfg, _ := svc.Configure(context.Background(), doctorID, validConfigure(srv.URL))
	p, v := seedPatientAndVisit(dir, doctorID)

	sub, err := svc.Submit(context.Background(), doctorID, &SubmitRequest{
		ConfigID:  cfg.ID,
		PatientID: p.ID,
		VisitID:   &v.ID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub.Status != SubmissionSuccess {
		t.Errorf("expected success, got %s", sub.Status)
	}
	if sub.CompletedAt == nil {
		t.Error("expected completed_at set")
	}
	if sub.ProviderResponse["resourceType"] != "Bundle" {
		t.Errorf("expected provider response recorded, got %v", sub.ProviderResponse)
	}

	entries := sub.ResourceBundle["entry"].([]fhirResource)
	// Patient + Encounter + BP panel + MedicationRequest.
	if len(entries) != 4 {
		t.Errorf("expected 4 bundle entries, got %d", len(entries))
	}
}

func TestSubmit_ProviderFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	svc, _, dir := newTestService()
	doctorID := uuid.New()
	cfg, _ := svc.Configure(context.Background(), doctorID, validConfigure(srv.URL))
	p, _ := seedPatientAndVisit(dir, doctorID)

	sub, err := svc.Submit(context.Background(), doctorID, &SubmitRequest{
		ConfigID:  cfg.ID,
		PatientID: p.ID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub.Status != SubmissionFailed {
		t.Errorf("expected failed, got %s", sub.Status)
	}
	if sub.ErrorMessage == nil {
		t.Error("expected error message recorded")
	}
	if sub.ResourceBundle == nil {
		t.Error("expected bundle kept for retry")
	}
}

func TestSubmit_UnknownPatient(t *testing.T) {
	svc, _, _ := newTestService()
	doctorID := uuid.New()
	cfg, _ := svc.Configure(context.Background(), doctorID, validConfigure("https://fhir.example.com"))

	_, err := svc.Submit(context.Background(), doctorID, &SubmitRequest{
		ConfigID:  cfg.ID,
		PatientID: uuid.New(),
	})
	if err == nil {
		t.Fatal("expected error for unknown patient")
	}
}

func TestRetry_FailedSubmission(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, `{"resourceType":"Bundle"}`)
	}))
	defer srv.Close()

	svc, _, dir := newTestService()
	doctorID := uuid.New()
	cfg, _ := svc.Configure(context.Background(), doctorID, validConfigure(srv.URL))
	p, _ := seedPatientAndVisit(dir, doctorID)

	sub, _ := svc.Submit(context.Background(), doctorID, &SubmitRequest{ConfigID: cfg.ID, PatientID: p.ID})
	if sub.Status != SubmissionFailed {
		t.Fatalf("expected first attempt to fail, got %s", sub.Status)
	}

	retried, err := svc.Retry(context.Background(), doctorID, sub.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if retried.Status != SubmissionSuccess {
		t.Errorf("expected success after retry, got %s", retried.Status)
	}
	if retried.RetryCount != 1 {
		t.Errorf("expected retry count 1, got %d", retried.RetryCount)
	}
}

func TestRetry_OnlyFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"resourceType":"Bundle"}`)
	}))
	defer srv.Close()

	svc, _, dir := newTestService()
	doctorID := uuid.New()
	cfg, _ := svc.Configure(context.Background(), doctorID, validConfigure(srv.URL))
	p, _ := seedPatientAndVisit(dir, doctorID)

	sub, _ := svc.Submit(context.Background(), doctorID, &SubmitRequest{ConfigID: cfg.ID, PatientID: p.ID})
	if sub.Status != SubmissionSuccess {
		t.Fatalf("expected success, got %s", sub.Status)
	}

	if _, err := svc.Retry(context.Background(), doctorID, sub.ID); err != ErrNotRetryable {
		t.Fatalf("expected ErrNotRetryable, got %v", err)
	}
}

func TestListSubmissions_StatusFilter(t *testing.T) {
	svc, repo, _ := newTestService()
	doctorID := uuid.New()

	repo.CreateSubmission(context.Background(), &Submission{DoctorID: doctorID, Status: SubmissionSuccess})
	repo.CreateSubmission(context.Background(), &Submission{DoctorID: doctorID, Status: SubmissionFailed})

	_, total, err := svc.ListSubmissions(context.Background(), doctorID, SubmissionFailed, 20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 1 {
		t.Errorf("expected 1 failed submission, got %d", total)
	}

	if _, _, err := svc.ListSubmissions(context.Background(), doctorID, "bogus", 20, 0); err == nil {
		t.Fatal("expected error for unknown status filter")
	}
}

func TestProviders_Catalog(t *testing.T) {
	svc, _, _ := newTestService()
	providers := svc.Providers()
	if len(providers) != 5 {
		t.Fatalf("expected 5 providers, got %d", len(providers))
	}
	for _, p := range providers {
		if p.FHIRVersion != "R4" {
			t.Errorf("expected R4 for %s, got %s", p.Value, p.FHIRVersion)
		}
	}
}
