package templates

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

type templateRepoPG struct{ pool *pgxpool.Pool }

func NewTemplateRepoPG(pool *pgxpool.Pool) TemplateRepository {
	return &templateRepoPG{pool: pool}
}

func (r *templateRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

const templateCols = `id, doctor_id, name, description, category, medications,
	is_public, usage_count, created_at, updated_at`

func (r *templateRepoPG) scanTemplate(row pgx.Row) (*MedicationTemplate, error) {
	var t MedicationTemplate
	err := row.Scan(&t.ID, &t.DoctorID, &t.Name, &t.Description, &t.Category,
		&t.Medications, &t.IsPublic, &t.UsageCount, &t.CreatedAt, &t.UpdatedAt)
	return &t, err
}

func (r *templateRepoPG) Create(ctx context.Context, t *MedicationTemplate) error {
	t.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO medication_templates (id, doctor_id, name, description, category, medications, is_public)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		t.ID, t.DoctorID, t.Name, t.Description, t.Category, t.Medications, t.IsPublic)
	return err
}

func (r *templateRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*MedicationTemplate, error) {
	return r.scanTemplate(r.conn(ctx).QueryRow(ctx,
		`SELECT `+templateCols+` FROM medication_templates WHERE id = $1`, id))
}

func (r *templateRepoPG) Search(ctx context.Context, doctorID uuid.UUID, query, category string, limit, offset int) ([]*MedicationTemplate, int, error) {
	where := `WHERE (doctor_id = $1 OR is_public)`
	args := []interface{}{doctorID}

	if query != "" {
		args = append(args, "%"+query+"%")
		where += ` AND name ILIKE $` + strconv.Itoa(len(args))
	}
	if category != "" {
		args = append(args, category)
		where += ` AND category = $` + strconv.Itoa(len(args))
	}

	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM medication_templates `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	n := len(args)
	dataArgs := append(args, limit, offset)
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+templateCols+` FROM medication_templates `+where+
			` ORDER BY usage_count DESC, name LIMIT $`+strconv.Itoa(n+1)+` OFFSET $`+strconv.Itoa(n+2), dataArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*MedicationTemplate
	for rows.Next() {
		t, err := r.scanTemplate(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, t)
	}
	return items, total, nil
}

func (r *templateRepoPG) Popular(ctx context.Context, limit int) ([]*MedicationTemplate, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+templateCols+` FROM medication_templates WHERE is_public
		 ORDER BY usage_count DESC, name LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*MedicationTemplate
	for rows.Next() {
		t, err := r.scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, nil
}

func (r *templateRepoPG) IncrementUsage(ctx context.Context, id uuid.UUID) (int, error) {
	var count int
	err := r.conn(ctx).QueryRow(ctx, `
		UPDATE medication_templates SET usage_count = usage_count + 1, updated_at = NOW()
		WHERE id = $1 RETURNING usage_count`, id).Scan(&count)
	return count, err
}
