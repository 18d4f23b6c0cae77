package patients

import (
	"context"
	"strconv"
	"time"

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

type patientRepoPG struct{ pool *pgxpool.Pool }

func NewPatientRepoPG(pool *pgxpool.Pool) PatientRepository {
	return &patientRepoPG{pool: pool}
}

func (r *patientRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

const patientCols = `id, doctor_id, patient_code, mrn, first_name, last_name,
	date_of_birth, gender, phone, email, address, allergies, created_at, updated_at`

func (r *patientRepoPG) scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.DoctorID, &p.PatientCode, &p.MRN, &p.FirstName, &p.LastName,
		&p.DateOfBirth, &p.Gender, &p.Phone, &p.Email, &p.Address, &p.Allergies,
		&p.CreatedAt, &p.UpdatedAt)
	return &p, err
}

func (r *patientRepoPG) Create(ctx context.Context, p *Patient) error {
	p.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO patients (id, doctor_id, patient_code, mrn, first_name, last_name,
			date_of_birth, gender, phone, email, address, allergies)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		p.ID, p.DoctorID, p.PatientCode, p.MRN, p.FirstName, p.LastName,
		p.DateOfBirth, p.Gender, p.Phone, p.Email, p.Address, p.Allergies)
	return err
}

func (r *patientRepoPG) GetByID(ctx context.Context, doctorID, id uuid.UUID) (*Patient, error) {
	return r.scanPatient(r.conn(ctx).QueryRow(ctx,
		`SELECT `+patientCols+` FROM patients WHERE id = $1 AND doctor_id = $2`, id, doctorID))
}

func (r *patientRepoPG) GetByCode(ctx context.Context, doctorID uuid.UUID, code string) (*Patient, error) {
	return r.scanPatient(r.conn(ctx).QueryRow(ctx,
		`SELECT `+patientCols+` FROM patients WHERE patient_code = $1 AND doctor_id = $2`, code, doctorID))
}

func (r *patientRepoPG) CodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM patients WHERE patient_code = $1)`, code).Scan(&exists)
	return exists, err
}

func (r *patientRepoPG) Update(ctx context.Context, p *Patient) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE patients SET mrn=$2, first_name=$3, last_name=$4, date_of_birth=$5,
			gender=$6, phone=$7, email=$8, address=$9, allergies=$10, updated_at=NOW()
		WHERE id = $1`,
		p.ID, p.MRN, p.FirstName, p.LastName, p.DateOfBirth,
		p.Gender, p.Phone, p.Email, p.Address, p.Allergies)
	return err
}

func (r *patientRepoPG) ListByDoctor(ctx context.Context, doctorID uuid.UUID, limit, offset int) ([]*Patient, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM patients WHERE doctor_id = $1`, doctorID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+patientCols+` FROM patients WHERE doctor_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		doctorID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Patient
	for rows.Next() {
		p, err := r.scanPatient(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, p)
	}
	return items, total, nil
}

func (r *patientRepoPG) SearchByName(ctx context.Context, doctorID uuid.UUID, query string, limit, offset int) ([]*Patient, int, error) {
	pattern := "%" + query + "%"
	where := `WHERE doctor_id = $1 AND (first_name ILIKE $2 OR last_name ILIKE $2 OR mrn = $3)`

	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM patients `+where, doctorID, pattern, query).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+patientCols+` FROM patients `+where+` ORDER BY last_name, first_name LIMIT $4 OFFSET $5`,
		doctorID, pattern, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Patient
	for rows.Next() {
		p, err := r.scanPatient(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, p)
	}
	return items, total, nil
}

const visitCols = `id, patient_id, doctor_id, visit_date, chief_complaint, symptoms,
	diagnosis, notes, vitals, medications, transcript_raw, transcript_corrected, created_at`

func (r *patientRepoPG) scanVisit(row pgx.Row) (*Visit, error) {
	var v Visit
	err := row.Scan(&v.ID, &v.PatientID, &v.DoctorID, &v.VisitDate, &v.ChiefComplaint,
		&v.Symptoms, &v.Diagnosis, &v.Notes, &v.Vitals, &v.Medications,
		&v.TranscriptRaw, &v.TranscriptCorrected, &v.CreatedAt)
	return &v, err
}

func (r *patientRepoPG) CreateVisit(ctx context.Context, v *Visit) error {
	v.ID = uuid.New()
	if v.VisitDate.IsZero() {
		v.VisitDate = time.Now()
	}
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO visits (id, patient_id, doctor_id, visit_date, chief_complaint,
			symptoms, diagnosis, notes, vitals, medications, transcript_raw, transcript_corrected)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		v.ID, v.PatientID, v.DoctorID, v.VisitDate, v.ChiefComplaint,
		v.Symptoms, v.Diagnosis, v.Notes, v.Vitals, v.Medications,
		v.TranscriptRaw, v.TranscriptCorrected)
	return err
}

func (r *patientRepoPG) GetVisit(ctx context.Context, doctorID, id uuid.UUID) (*Visit, error) {
	return r.scanVisit(r.conn(ctx).QueryRow(ctx,
		`SELECT `+visitCols+` FROM visits WHERE id = $1 AND doctor_id = $2`, id, doctorID))
}

func (r *patientRepoPG) ListVisitsByPatient(ctx context.Context, patientID uuid.UUID) ([]*Visit, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+visitCols+` FROM visits WHERE patient_id = $1 ORDER BY visit_date DESC`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Visit
	for rows.Next() {
		v, err := r.scanVisit(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, nil
}

func (r *patientRepoPG) SearchVisits(ctx context.Context, doctorID uuid.UUID, query string, from, to *time.Time, limit, offset int) ([]*Visit, int, error) {
	pattern := "%" + query + "%"
	where := `WHERE doctor_id = $1 AND (diagnosis ILIKE $2 OR chief_complaint ILIKE $2)`
	args := []interface{}{doctorID, pattern}

	if from != nil {
		args = append(args, *from)
		where += ` AND visit_date >= $3`
	}
	if to != nil {
		args = append(args, *to)
		if from != nil {
			where += ` AND visit_date <= $4`
		} else {
			where += ` AND visit_date <= $3`
		}
	}

	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM visits `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	n := len(args)
	dataArgs := append(args, limit, offset)
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+visitCols+` FROM visits `+where+
			` ORDER BY visit_date DESC LIMIT $`+strconv.Itoa(n+1)+` OFFSET $`+strconv.Itoa(n+2), dataArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Visit
	for rows.Next() {
		v, err := r.scanVisit(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, v)
	}
	return items, total, nil
}

func (r *patientRepoPG) Stats(ctx context.Context, doctorID uuid.UUID, since time.Time) (*Stats, error) {
	var s Stats
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM patients WHERE doctor_id = $1),
			(SELECT COUNT(*) FROM visits WHERE doctor_id = $1),
			(SELECT COUNT(*) FROM visits WHERE doctor_id = $1 AND visit_date >= $2)`,
		doctorID, since).Scan(&s.TotalPatients, &s.TotalVisits, &s.RecentVisits)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
