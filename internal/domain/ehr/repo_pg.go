package ehr

import (
	"context"
	"strconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smartdoc/smartdoc/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type ehrRepoPG struct{ pool *pgxpool.Pool }

func NewEHRRepoPG(pool *pgxpool.Pool) EHRRepository {
	return &ehrRepoPG{pool: pool}
}

func (r *ehrRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

const configCols = `id, doctor_id, provider, base_url, auth_type, client_id,
	client_secret, api_key, is_active, created_at, updated_at`

func (r *ehrRepoPG) scanConfig(row pgx.Row) (*ProviderConfig, error) {
	var c ProviderConfig
	err := row.Scan(&c.ID, &c.DoctorID, &c.Provider, &c.BaseURL, &c.AuthType,
		&c.ClientID, &c.ClientSecret, &c.APIKey, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	return &c, err
}

func (r *ehrRepoPG) UpsertConfig(ctx context.Context, c *ProviderConfig) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO ehr_configs (id, doctor_id, provider, base_url, auth_type,
			client_id, client_secret, api_key, is_active)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,TRUE)
		ON CONFLICT (doctor_id, provider) DO UPDATE SET
			base_url = EXCLUDED.base_url,
			auth_type = EXCLUDED.auth_type,
			client_id = EXCLUDED.client_id,
			client_secret = EXCLUDED.client_secret,
			api_key = EXCLUDED.api_key,
			is_active = TRUE,
			updated_at = NOW()
		RETURNING id`,
		c.ID, c.DoctorID, c.Provider, c.BaseURL, c.AuthType,
		c.ClientID, c.ClientSecret, c.APIKey).Scan(&c.ID)
}

func (r *ehrRepoPG) GetConfig(ctx context.Context, doctorID, id uuid.UUID) (*ProviderConfig, error) {
	return r.scanConfig(r.conn(ctx).QueryRow(ctx,
		`SELECT `+configCols+` FROM ehr_configs WHERE id = $1 AND doctor_id = $2 AND is_active`, id, doctorID))
}

func (r *ehrRepoPG) ListConfigs(ctx context.Context, doctorID uuid.UUID) ([]*ProviderConfig, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+configCols+` FROM ehr_configs WHERE doctor_id = $1 AND is_active ORDER BY provider`, doctorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*ProviderConfig
	for rows.Next() {
		c, err := r.scanConfig(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, nil
}

func (r *ehrRepoPG) DeactivateConfig(ctx context.Context, doctorID, id uuid.UUID) error {
	tag, err := r.conn(ctx).Exec(ctx,
		`UPDATE ehr_configs SET is_active = FALSE, updated_at = NOW()
		 WHERE id = $1 AND doctor_id = $2 AND is_active`, id, doctorID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ehrRepoPG) CreateConnectionTest(ctx context.Context, t *ConnectionTest) error {
	t.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO ehr_connection_tests (id, config_id, success, status_code, message, latency_ms, tested_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		t.ID, t.ConfigID, t.Success, t.StatusCode, t.Message, t.LatencyMS, t.TestedAt)
	return err
}

func (r *ehrRepoPG) TrimConnectionTests(ctx context.Context, configID uuid.UUID, keep int) error {
	_, err := r.conn(ctx).Exec(ctx, `
		DELETE FROM ehr_connection_tests
		WHERE config_id = $1 AND id NOT IN (
			SELECT id FROM ehr_connection_tests
			WHERE config_id = $1 ORDER BY tested_at DESC LIMIT $2)`,
		configID, keep)
	return err
}

func (r *ehrRepoPG) ListConnectionTests(ctx context.Context, configID uuid.UUID) ([]*ConnectionTest, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, config_id, success, status_code, message, latency_ms, tested_at
		FROM ehr_connection_tests WHERE config_id = $1 ORDER BY tested_at DESC`, configID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*ConnectionTest
	for rows.Next() {
		var t ConnectionTest
		if err := rows.Scan(&t.ID, &t.ConfigID, &t.Success, &t.StatusCode,
			&t.Message, &t.LatencyMS, &t.TestedAt); err != nil {
			return nil, err
		}
		items = append(items, &t)
	}
	return items, nil
}

const submissionCols = `id, doctor_id, config_id, patient_id, visit_id, status,
	resource_bundle, provider_response, error_message, retry_count, submitted_at, completed_at`

func (r *ehrRepoPG) scanSubmission(row pgx.Row) (*Submission, error) {
	var s Submission
	err := row.Scan(&s.ID, &s.DoctorID, &s.ConfigID, &s.PatientID, &s.VisitID,
		&s.Status, &s.ResourceBundle, &s.ProviderResponse, &s.ErrorMessage,
		&s.RetryCount, &s.SubmittedAt, &s.CompletedAt)
	return &s, err
}

func (r *ehrRepoPG) CreateSubmission(ctx context.Context, s *Submission) error {
	s.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO ehr_submissions (id, doctor_id, config_id, patient_id, visit_id,
			status, resource_bundle, provider_response, error_message, retry_count, submitted_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		s.ID, s.DoctorID, s.ConfigID, s.PatientID, s.VisitID,
		s.Status, s.ResourceBundle, s.ProviderResponse, s.ErrorMessage, s.RetryCount, s.SubmittedAt)
	return err
}

func (r *ehrRepoPG) GetSubmission(ctx context.Context, doctorID, id uuid.UUID) (*Submission, error) {
	return r.scanSubmission(r.conn(ctx).QueryRow(ctx,
		`SELECT `+submissionCols+` FROM ehr_submissions WHERE id = $1 AND doctor_id = $2`, id, doctorID))
}

func (r *ehrRepoPG) UpdateSubmission(ctx context.Context, s *Submission) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE ehr_submissions SET status=$2, provider_response=$3, error_message=$4,
			retry_count=$5, completed_at=$6
		WHERE id = $1`,
		s.ID, s.Status, s.ProviderResponse, s.ErrorMessage, s.RetryCount, s.CompletedAt)
	return err
}

func (r *ehrRepoPG) ListSubmissions(ctx context.Context, doctorID uuid.UUID, status string, limit, offset int) ([]*Submission, int, error) {
	where := `WHERE doctor_id = $1`
	args := []interface{}{doctorID}
	if status != "" {
		args = append(args, status)
		where += ` AND status = $` + strconv.Itoa(len(args))
	}

	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM ehr_submissions `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	n := len(args)
	dataArgs := append(args, limit, offset)
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+submissionCols+` FROM ehr_submissions `+where+
			` ORDER BY submitted_at DESC LIMIT $`+strconv.Itoa(n+1)+` OFFSET $`+strconv.Itoa(n+2), dataArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Submission
	for rows.Next() {
		s, err := r.scanSubmission(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, s)
	}
	return items, total, nil
}
