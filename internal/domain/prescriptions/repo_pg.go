package prescriptions

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

type prescriptionRepoPG struct{ pool *pgxpool.Pool }

func NewPrescriptionRepoPG(pool *pgxpool.Pool) PrescriptionRepository {
	return &prescriptionRepoPG{pool: pool}
}

func (r *prescriptionRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

const prescriptionCols = `id, doctor_id, patient_id, status, medications,
	interactions, notes, created_at, updated_at`

func (r *prescriptionRepoPG) scanPrescription(row pgx.Row) (*Prescription, error) {
	var p Prescription
	err := row.Scan(&p.ID, &p.DoctorID, &p.PatientID, &p.Status, &p.Medications,
		&p.Interactions, &p.Notes, &p.CreatedAt, &p.UpdatedAt)
	return &p, err
}

func (r *prescriptionRepoPG) Create(ctx context.Context, p *Prescription) error {
	p.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO prescriptions (id, doctor_id, patient_id, status, medications, interactions, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		p.ID, p.DoctorID, p.PatientID, p.Status, p.Medications, p.Interactions, p.Notes)
	return err
}

func (r *prescriptionRepoPG) GetByID(ctx context.Context, doctorID, id uuid.UUID) (*Prescription, error) {
	return r.scanPrescription(r.conn(ctx).QueryRow(ctx,
		`SELECT `+prescriptionCols+` FROM prescriptions WHERE id = $1 AND doctor_id = $2`, id, doctorID))
}

func (r *prescriptionRepoPG) List(ctx context.Context, doctorID uuid.UUID, patientID *uuid.UUID, status string, limit, offset int) ([]*Prescription, int, error) {
	where := `WHERE doctor_id = $1`
	args := []interface{}{doctorID}

	if patientID != nil {
		args = append(args, *patientID)
		where += ` AND patient_id = $` + strconv.Itoa(len(args))
	}
	if status != "" {
		args = append(args, status)
		where += ` AND status = $` + strconv.Itoa(len(args))
	}

	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM prescriptions `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	n := len(args)
	dataArgs := append(args, limit, offset)
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+prescriptionCols+` FROM prescriptions `+where+
			` ORDER BY created_at DESC LIMIT $`+strconv.Itoa(n+1)+` OFFSET $`+strconv.Itoa(n+2), dataArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Prescription
	for rows.Next() {
		p, err := r.scanPrescription(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, p)
	}
	return items, total, nil
}

func (r *prescriptionRepoPG) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	_, err := r.conn(ctx).Exec(ctx,
		`UPDATE prescriptions SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	return err
}
