package league

import "context"

// Repository describes league persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]League, error)
	NamesByIDs(ctx context.Context, ids []int64) (map[int64]string, error)
	Count(ctx context.Context) (int, error)
}
