package memory

import (
	"context"
	"sync"

	"github.com/courtdesk/basketref/internal/domain/championship"
)

type ChampionshipRepository struct {
	mu    sync.RWMutex
	items map[int64]championship.Championship
}

func NewChampionshipRepository(championships []championship.Championship) *ChampionshipRepository {
	items := make(map[int64]championship.Championship, len(championships))
	for _, c := range championships {
		items[c.ID] = c
	}
	return &ChampionshipRepository{items: items}
}

func (r *ChampionshipRepository) NamesByIDs(_ context.Context, ids []int64) (map[int64]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[int64]string, len(ids))
	for _, id := range ids {
		if c, ok := r.items[id]; ok {
			out[id] = c.Name
		}
	}
	return out, nil
}
