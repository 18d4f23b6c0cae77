package ehr

import (
	"time"

	"github.com/google/uuid"
)

// Supported providers.
const (
	ProviderEpic        = "epic"
	ProviderCerner      = "cerner"
	ProviderAthena      = "athenahealth"
	ProviderAllscripts  = "allscripts"
	ProviderGenericFHIR = "generic_fhir"
)

// Auth types.
const (
	AuthOAuth2 = "oauth2"
	AuthAPIKey = "api_key"
	AuthBasic  = "basic"
)

// Submission statuses.
const (
	SubmissionPending = "pending"
	SubmissionSuccess = "success"
	SubmissionFailed  = "failed"
)

// connectionTestHistory is how many test results are kept per config.
const connectionTestHistory = 10

// ProviderConfig is a doctor's connection settings for one EHR provider.
// Secrets are accepted on write but never serialized back out.
type ProviderConfig struct {
	ID           uuid.UUID `db:"id" json:"id"`
	DoctorID     uuid.UUID `db:"doctor_id" json:"doctor_id"`
	Provider     string    `db:"provider" json:"provider"`
	BaseURL      string    `db:"base_url" json:"base_url"`
	AuthType     string    `db:"auth_type" json:"auth_type"`
	ClientID     string    `db:"client_id" json:"client_id,omitempty"`
	ClientSecret string    `db:"client_secret" json:"-"`
	APIKey       string    `db:"api_key" json:"-"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// ConfigureRequest is the configure payload; unlike ProviderConfig it
// carries the secrets.
type ConfigureRequest struct {
	Provider     string `json:"provider"`
	BaseURL      string `json:"base_url"`
	AuthType     string `json:"auth_type"`
	ClientID     string `json:"client_id,omitempty"`
	ClientSecret string `json:"client_secret,omitempty"`
	APIKey       string `json:"api_key,omitempty"`
}

// ConnectionTest records one metadata probe against a configured provider.
type ConnectionTest struct {
	ID         uuid.UUID `db:"id" json:"id"`
	ConfigID   uuid.UUID `db:"config_id" json:"config_id"`
	Success    bool      `db:"success" json:"success"`
	StatusCode int       `db:"status_code" json:"status_code,omitempty"`
	Message    string    `db:"message" json:"message"`
	LatencyMS  int64     `db:"latency_ms" json:"latency_ms"`
	TestedAt   time.Time `db:"tested_at" json:"tested_at"`
}

// Submission tracks one FHIR bundle sent to a provider. Failed submissions
// keep the bundle so they can be retried.
type Submission struct {
	ID               uuid.UUID              `db:"id" json:"id"`
	DoctorID         uuid.UUID              `db:"doctor_id" json:"doctor_id"`
	ConfigID         uuid.UUID              `db:"config_id" json:"config_id"`
	PatientID        uuid.UUID              `db:"patient_id" json:"patient_id"`
	VisitID          *uuid.UUID             `db:"visit_id" json:"visit_id,omitempty"`
	Status           string                 `db:"status" json:"status"`
	ResourceBundle   map[string]interface{} `db:"resource_bundle" json:"resource_bundle,omitempty"`
	ProviderResponse map[string]interface{} `db:"provider_response" json:"provider_response,omitempty"`
	ErrorMessage     *string                `db:"error_message" json:"error_message,omitempty"`
	RetryCount       int                    `db:"retry_count" json:"retry_count"`
	SubmittedAt      time.Time              `db:"submitted_at" json:"submitted_at"`
	CompletedAt      *time.Time             `db:"completed_at" json:"completed_at,omitempty"`
}

// SubmitRequest is the submit payload.
type SubmitRequest struct {
	ConfigID  uuid.UUID  `json:"config_id"`
	PatientID uuid.UUID  `json:"patient_id"`
	VisitID   *uuid.UUID `json:"visit_id,omitempty"`
}

// ProviderInfo describes one entry in the provider catalog.
type ProviderInfo struct {
	Value       string   `json:"value"`
	Label       string   `json:"label"`
	Description string   `json:"description"`
	AuthTypes   []string `json:"auth_types"`
	FHIRVersion string   `json:"fhir_version"`
}

// ProviderCatalog is the static list served by the providers endpoint.
var ProviderCatalog = []ProviderInfo{
	{Value: ProviderEpic, Label: "Epic MyChart", Description: "Epic Systems EHR platform", AuthTypes: []string{AuthOAuth2}, FHIRVersion: "R4"},
	{Value: ProviderCerner, Label: "Cerner PowerChart", Description: "Oracle Cerner EHR platform", AuthTypes: []string{AuthOAuth2}, FHIRVersion: "R4"},
	{Value: ProviderAthena, Label: "athenahealth", Description: "athenahealth EHR platform", AuthTypes: []string{AuthOAuth2, AuthAPIKey}, FHIRVersion: "R4"},
	{Value: ProviderAllscripts, Label: "Allscripts", Description: "Allscripts EHR platform", AuthTypes: []string{AuthOAuth2, AuthBasic}, FHIRVersion: "R4"},
	{Value: ProviderGenericFHIR, Label: "Generic FHIR", Description: "Any FHIR R4 compliant endpoint", AuthTypes: []string{AuthOAuth2, AuthAPIKey, AuthBasic}, FHIRVersion: "R4"},
}

var validProviders = map[string]bool{
	ProviderEpic: true, ProviderCerner: true, ProviderAthena: true,
	ProviderAllscripts: true, ProviderGenericFHIR: true,
}

var validAuthTypes = map[string]bool{
	AuthOAuth2: true, AuthAPIKey: true, AuthBasic: true,
}
