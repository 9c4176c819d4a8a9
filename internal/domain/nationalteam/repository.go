package nationalteam

import "context"

// Repository describes national team persistence needs from use cases.
type Repository interface {
	CountriesByIDs(ctx context.Context, ids []int64) (map[int64]string, error)
	DistinctConfederations(ctx context.Context) ([]string, error)
}
