package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/courtdesk/basketref/internal/domain/nationalteam"
)

type NationalTeamRepository struct {
	mu    sync.RWMutex
	items map[int64]nationalteam.NationalTeam
}

func NewNationalTeamRepository(teams []nationalteam.NationalTeam) *NationalTeamRepository {
	items := make(map[int64]nationalteam.NationalTeam, len(teams))
	for _, t := range teams {
		items[t.ID] = t
	}
	return &NationalTeamRepository{items: items}
}

func (r *NationalTeamRepository) CountriesByIDs(_ context.Context, ids []int64) (map[int64]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[int64]string, len(ids))
	for _, id := range ids {
		if t, ok := r.items[id]; ok {
			out[id] = t.Country
		}
	}
	return out, nil
}

func (r *NationalTeamRepository) DistinctConfederations(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, t := range r.items {
		if t.Confederation == "" {
			continue
		}
		seen[t.Confederation] = struct{}{}
	}

	out := make([]string, 0, len(seen))
	for confederation := range seen {
		out = append(out, confederation)
	}
	sort.Strings(out)
	return out, nil
}

func (r *NationalTeamRepository) countriesOf(confederation string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []string
	for _, t := range r.items {
		if t.Confederation == confederation {
			out = append(out, t.Country)
		}
	}
	return out
}
