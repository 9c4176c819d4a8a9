package championship

import "context"

// Repository describes championship persistence needs from use cases.
type Repository interface {
	NamesByIDs(ctx context.Context, ids []int64) (map[int64]string, error)
}
