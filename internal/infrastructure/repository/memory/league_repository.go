package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/courtdesk/basketref/internal/domain/league"
)

type LeagueRepository struct {
	mu    sync.RWMutex
	items map[int64]league.League
}

func NewLeagueRepository(leagues []league.League) *LeagueRepository {
	items := make(map[int64]league.League, len(leagues))
	for _, l := range leagues {
		items[l.ID] = l
	}
	return &LeagueRepository{items: items}
}

func (r *LeagueRepository) List(_ context.Context) ([]league.League, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]league.League, 0, len(r.items))
	for _, l := range r.items {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *LeagueRepository) NamesByIDs(_ context.Context, ids []int64) (map[int64]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[int64]string, len(ids))
	for _, id := range ids {
		if l, ok := r.items[id]; ok {
			out[id] = l.Name
		}
	}
	return out, nil
}

func (r *LeagueRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items), nil
}
