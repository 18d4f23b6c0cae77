package ehr

import (
	"context"

	"github.com/google/uuid"
)

// EHRRepository defines persistence operations for provider configs,
// connection test history and submissions.
type EHRRepository interface {
	UpsertConfig(ctx context.Context, c *ProviderConfig) error
	GetConfig(ctx context.Context, doctorID, id uuid.UUID) (*ProviderConfig, error)
	ListConfigs(ctx context.Context, doctorID uuid.UUID) ([]*ProviderConfig, error)
	DeactivateConfig(ctx context.Context, doctorID, id uuid.UUID) error

	CreateConnectionTest(ctx context.Context, t *ConnectionTest) error
	// TrimConnectionTests drops all but the newest keep results for a config.
	TrimConnectionTests(ctx context.Context, configID uuid.UUID, keep int) error
	ListConnectionTests(ctx context.Context, configID uuid.UUID) ([]*ConnectionTest, error)

	CreateSubmission(ctx context.Context, s *Submission) error
	GetSubmission(ctx context.Context, doctorID, id uuid.UUID) (*Submission, error)
	UpdateSubmission(ctx context.Context, s *Submission) error
	ListSubmissions(ctx context.Context, doctorID uuid.UUID, status string, limit, offset int) ([]*Submission, int, error)
}
