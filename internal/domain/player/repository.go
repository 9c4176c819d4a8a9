package player

import "context"

// ListCap bounds every player listing regardless of filters.
const ListCap = 200

// Repository describes player persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Player, error)
	GetByID(ctx context.Context, id int64) (Player, bool, error)
	Create(ctx context.Context, p Player) (int64, error)
	Update(ctx context.Context, p Player) error
	NamesByIDs(ctx context.Context, ids []int64) (map[int64]string, error)
	DistinctCitizenships(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int, error)
}
