package game

import (
	"context"
	"time"
)

// ListCap bounds every game listing regardless of filters.
const ListCap = 50

// Repository describes game persistence needs from use cases. Games are
// always loaded with their participants attached.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Game, error)
	GetByID(ctx context.Context, id int64) (Game, bool, error)
	Upcoming(ctx context.Context, from time.Time, limit int) ([]Game, error)
	DistinctSeasons(ctx context.Context) ([]string, error)
	DistinctTypes(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int, error)
}
