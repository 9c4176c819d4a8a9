package club

import "context"

// Repository describes club persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Club, error)
	NamesByIDs(ctx context.Context, ids []int64) (map[int64]string, error)
	Count(ctx context.Context) (int, error)
}
