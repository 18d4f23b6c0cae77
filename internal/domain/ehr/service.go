package ehr

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/smartdoc/smartdoc/internal/domain/patients"
)

var ErrNotRetryable = errors.New("only failed submissions can be retried")

// PatientDirectory is the slice of the patient repository the submission
// builder needs.
type PatientDirectory interface {
	GetByID(ctx context.Context, doctorID, id uuid.UUID) (*patients.Patient, error)
	GetVisit(ctx context.Context, doctorID, id uuid.UUID) (*patients.Visit, error)
}

// Service provides provider configuration, connection testing and FHIR
// submission.
type Service struct {
	repo   EHRRepository
	client *Client
	dir    PatientDirectory
	log    zerolog.Logger
}

func NewService(repo EHRRepository, client *Client, dir PatientDirectory, log zerolog.Logger) *Service {
	return &Service{repo: repo, client: client, dir: dir, log: log}
}

// Providers returns the static provider catalog.
func (s *Service) Providers() []ProviderInfo {
	return ProviderCatalog
}

// Configure upserts a provider config for the doctor. One active config
// per (doctor, provider).
func (s *Service) Configure(ctx context.Context, doctorID uuid.UUID, req *ConfigureRequest) (*ProviderConfig, error) {
	if !validProviders[req.Provider] {
		return nil, fmt.Errorf("unknown provider: %s", req.Provider)
	}
	u, err := url.Parse(req.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("base_url must be a valid http(s) URL")
	}
	if !validAuthTypes[req.AuthType] {
		return nil, fmt.Errorf("unknown auth_type: %s", req.AuthType)
	}
	switch req.AuthType {
	case AuthOAuth2:
		if req.ClientID == "" || req.ClientSecret == "" {
			return nil, fmt.Errorf("oauth2 requires client_id and client_secret")
		}
	case AuthAPIKey:
		if req.APIKey == "" {
			return nil, fmt.Errorf("api_key auth requires api_key")
		}
	case AuthBasic:
		if req.ClientID == "" || req.ClientSecret == "" {
			return nil, fmt.Errorf("basic auth requires client_id and client_secret")
		}
	}

	cfg := &ProviderConfig{
		DoctorID:     doctorID,
		Provider:     req.Provider,
		BaseURL:      req.BaseURL,
		AuthType:     req.AuthType,
		ClientID:     req.ClientID,
		ClientSecret: req.ClientSecret,
		APIKey:       req.APIKey,
		IsActive:     true,
	}
	if err := s.repo.UpsertConfig(ctx, cfg); err != nil {
		return nil, fmt.Errorf("save config: %w", err)
	}
	return cfg, nil
}

func (s *Service) ListConfigs(ctx context.Context, doctorID uuid.UUID) ([]*ProviderConfig, error) {
	return s.repo.ListConfigs(ctx, doctorID)
}

func (s *Service) DeleteConfig(ctx context.Context, doctorID, id uuid.UUID) error {
	return s.repo.DeactivateConfig(ctx, doctorID, id)
}

// TestConnection probes the provider's metadata endpoint and records the
// result, keeping only the latest history entries.
func (s *Service) TestConnection(ctx context.Context, doctorID, configID uuid.UUID) (*ConnectionTest, error) {
	cfg, err := s.repo.GetConfig(ctx, doctorID, configID)
	if err != nil {
		return nil, err
	}

	probe := s.client.Probe(ctx, cfg)
	test := &ConnectionTest{
		ConfigID:   cfg.ID,
		Success:    probe.Success,
		StatusCode: probe.StatusCode,
		Message:    probe.Message,
		LatencyMS:  probe.Latency.Milliseconds(),
		TestedAt:   time.Now(),
	}
	if err := s.repo.CreateConnectionTest(ctx, test); err != nil {
		return nil, fmt.Errorf("record connection test: %w", err)
	}
	if err := s.repo.TrimConnectionTests(ctx, cfg.ID, connectionTestHistory); err != nil {
		s.log.Warn().Err(err).Str("config_id", cfg.ID.String()).Msg("trim connection test history")
	}
	return test, nil
}

func (s *Service) ConnectionHistory(ctx context.Context, doctorID, configID uuid.UUID) ([]*ConnectionTest, error) {
	if _, err := s.repo.GetConfig(ctx, doctorID, configID); err != nil {
		return nil, err
	}
	return s.repo.ListConnectionTests(ctx, configID)
}

// Submit builds a transaction bundle for the patient (and visit, when
// given), records a pending submission, sends it, and marks the outcome.
// Failed submissions keep the bundle for retry.
func (s *Service) Submit(ctx context.Context, doctorID uuid.UUID, req *SubmitRequest) (*Submission, error) {
	cfg, err := s.repo.GetConfig(ctx, doctorID, req.ConfigID)
	if err != nil {
		return nil, fmt.Errorf("config not found")
	}
	patient, err := s.dir.GetByID(ctx, doctorID, req.PatientID)
	if err != nil {
		return nil, fmt.Errorf("patient not found")
	}

	var visit *patients.Visit
	if req.VisitID != nil {
		visit, err = s.dir.GetVisit(ctx, doctorID, *req.VisitID)
		if err != nil {
			return nil, fmt.Errorf("visit not found")
		}
	}

	bundle := s.buildBundle(patient, visit)
	sub := &Submission{
		DoctorID:       doctorID,
		ConfigID:       cfg.ID,
		PatientID:      patient.ID,
		VisitID:        req.VisitID,
		Status:         SubmissionPending,
		ResourceBundle: bundle,
		SubmittedAt:    time.Now(),
	}
	if err := s.repo.CreateSubmission(ctx, sub); err != nil {
		return nil, fmt.Errorf("create submission: %w", err)
	}

	s.deliver(ctx, cfg, sub)
	if err := s.repo.UpdateSubmission(ctx, sub); err != nil {
		return nil, fmt.Errorf("update submission: %w", err)
	}
	return sub, nil
}

// Retry re-sends a failed submission's stored bundle.
func (s *Service) Retry(ctx context.Context, doctorID, id uuid.UUID) (*Submission, error) {
	sub, err := s.repo.GetSubmission(ctx, doctorID, id)
	if err != nil {
		return nil, err
	}
	if sub.Status != SubmissionFailed {
		return nil, ErrNotRetryable
	}
	cfg, err := s.repo.GetConfig(ctx, doctorID, sub.ConfigID)
	if err != nil {
		return nil, fmt.Errorf("config not found")
	}

	sub.RetryCount++
	sub.Status = SubmissionPending
	sub.ErrorMessage = nil
	sub.CompletedAt = nil

	s.deliver(ctx, cfg, sub)
	if err := s.repo.UpdateSubmission(ctx, sub); err != nil {
		return nil, fmt.Errorf("update submission: %w", err)
	}
	return sub, nil
}

func (s *Service) ListSubmissions(ctx context.Context, doctorID uuid.UUID, status string, limit, offset int) ([]*Submission, int, error) {
	if status != "" && status != SubmissionPending && status != SubmissionSuccess && status != SubmissionFailed {
		return nil, 0, fmt.Errorf("unknown status: %s", status)
	}
	return s.repo.ListSubmissions(ctx, doctorID, status, limit, offset)
}

func (s *Service) deliver(ctx context.Context, cfg *ProviderConfig, sub *Submission) {
	result := s.client.Submit(ctx, cfg, sub.ResourceBundle)
	now := time.Now()
	sub.CompletedAt = &now
	sub.ProviderResponse = result.Response

	if result.Success {
		sub.Status = SubmissionSuccess
		return
	}
	sub.Status = SubmissionFailed
	if result.Err != nil {
		msg := result.Err.Error()
		sub.ErrorMessage = &msg
	}
	s.log.Warn().
		Str("submission_id", sub.ID.String()).
		Str("provider", cfg.Provider).
		Int("status_code", result.StatusCode).
		Msg("ehr submission failed")
}

func (s *Service) buildBundle(patient *patients.Patient, visit *patients.Visit) map[string]interface{} {
	patientFHIRID := uuid.NewString()
	patientRef := "Patient/" + patientFHIRID

	resources := []fhirResource{buildPatientResource(patient, patientFHIRID)}

	if visit != nil {
		encounterID := uuid.NewString()
		resources = append(resources, buildEncounterResource(visit, encounterID, patientRef))
		resources = append(resources,
			buildVitalsObservations(visit.Vitals, patientRef, "Encounter/"+encounterID, visit.VisitDate)...)
		for _, m := range visit.Medications {
			resources = append(resources, buildMedicationRequest(m, patientRef, visit.VisitDate))
		}
	}

	return buildTransactionBundle(resources)
}
