package drugref

import (
	"context"

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

type drugRepoPG struct{ pool *pgxpool.Pool }

func NewDrugRepoPG(pool *pgxpool.Pool) DrugRepository {
	return &drugRepoPG{pool: pool}
}

func (r *drugRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

const drugCols = `id, name, generic_name, brand_names, class, interactions,
	food_interactions, contraindications, side_effects, warnings, created_at`

func (r *drugRepoPG) scanDrug(row pgx.Row) (*Drug, error) {
	var d Drug
	err := row.Scan(&d.ID, &d.Name, &d.GenericName, &d.BrandNames, &d.Class,
		&d.Interactions, &d.FoodInteractions, &d.Contraindications,
		&d.SideEffects, &d.Warnings, &d.CreatedAt)
	return &d, err
}

func (r *drugRepoPG) Upsert(ctx context.Context, d *Drug) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO drugs (id, name, generic_name, brand_names, class, interactions,
			food_interactions, contraindications, side_effects, warnings)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		ON CONFLICT (name) DO UPDATE SET
			generic_name = EXCLUDED.generic_name,
			brand_names = EXCLUDED.brand_names,
			class = EXCLUDED.class,
			interactions = EXCLUDED.interactions,
			food_interactions = EXCLUDED.food_interactions,
			contraindications = EXCLUDED.contraindications,
			side_effects = EXCLUDED.side_effects,
			warnings = EXCLUDED.warnings`,
		d.ID, d.Name, d.GenericName, d.BrandNames, d.Class, d.Interactions,
		d.FoodInteractions, d.Contraindications, d.SideEffects, d.Warnings)
	return err
}

func (r *drugRepoPG) GetByName(ctx context.Context, name string) (*Drug, error) {
	return r.scanDrug(r.conn(ctx).QueryRow(ctx,
		`SELECT `+drugCols+` FROM drugs WHERE name = $1`, name))
}

func (r *drugRepoPG) GetByNames(ctx context.Context, names []string) ([]*Drug, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+drugCols+` FROM drugs WHERE name = ANY($1)`, names)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Drug
	for rows.Next() {
		d, err := r.scanDrug(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, nil
}

func (r *drugRepoPG) Search(ctx context.Context, query string, limit, offset int) ([]*Drug, int, error) {
	pattern := "%" + query + "%"
	where := `WHERE name ILIKE $1 OR generic_name ILIKE $1
		OR EXISTS (SELECT 1 FROM unnest(brand_names) b WHERE b ILIKE $1)`

	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM drugs `+where, pattern).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+drugCols+` FROM drugs `+where+` ORDER BY name LIMIT $2 OFFSET $3`,
		pattern, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Drug
	for rows.Next() {
		d, err := r.scanDrug(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, d)
	}
	return items, total, nil
}

func (r *drugRepoPG) Count(ctx context.Context) (int, error) {
	var n int
	err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM drugs`).Scan(&n)
	return n, err
}
