package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/courtdesk/basketref/internal/domain/club"
)

type ClubRepository struct {
	mu    sync.RWMutex
	items map[int64]club.Club
}

func NewClubRepository(clubs []club.Club) *ClubRepository {
	items := make(map[int64]club.Club, len(clubs))
	for _, c := range clubs {
		items[c.ID] = c
	}
	return &ClubRepository{items: items}
}

func (r *ClubRepository) List(_ context.Context) ([]club.Club, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]club.Club, 0, len(r.items))
	for _, c := range r.items {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *ClubRepository) NamesByIDs(_ context.Context, ids []int64) (map[int64]string, error) {
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

func (r *ClubRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items), nil
}
