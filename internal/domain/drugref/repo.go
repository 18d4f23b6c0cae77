package drugref

import "context"

// DrugRepository defines persistence operations for the drug reference table.
type DrugRepository interface {
	Upsert(ctx context.Context, d *Drug) error
	GetByName(ctx context.Context, name string) (*Drug, error)
	GetByNames(ctx context.Context, names []string) ([]*Drug, error)
	Search(ctx context.Context, query string, limit, offset int) ([]*Drug, int, error)
	Count(ctx context.Context) (int, error)
}
