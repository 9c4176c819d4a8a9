// Package memory holds in-memory repository implementations used by tests
// and local development seeds.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/courtdesk/basketref/internal/domain/player"
)

type PlayerRepository struct {
	mu     sync.RWMutex
	items  map[int64]player.Player
	nextID int64
	teams  *NationalTeamRepository
}

// NewPlayerRepository seeds the repository. The national team repository is
// optional; without it the confederation filter matches nothing.
func NewPlayerRepository(players []player.Player, teams *NationalTeamRepository) *PlayerRepository {
	items := make(map[int64]player.Player, len(players))
	var nextID int64
	for _, p := range players {
		items[p.ID] = p
		if p.ID > nextID {
			nextID = p.ID
		}
	}

	return &PlayerRepository{items: items, nextID: nextID, teams: teams}
}

func (r *PlayerRepository) List(_ context.Context, filter player.Filter) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var confederationCountries map[string]struct{}
	if filter.Confederation != "" {
		confederationCountries = make(map[string]struct{})
		if r.teams != nil {
			for _, country := range r.teams.countriesOf(filter.Confederation) {
				confederationCountries[country] = struct{}{}
			}
		}
	}

	out := make([]player.Player, 0, len(r.items))
	for _, p := range r.items {
		if filter.NameContains != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter.NameContains)) {
			continue
		}
		if filter.ClubID != nil && (p.ClubID == nil || *p.ClubID != *filter.ClubID) {
			continue
		}
		if filter.Citizenship != "" && p.Citizenship != filter.Citizenship {
			continue
		}
		if confederationCountries != nil {
			if _, ok := confederationCountries[p.Citizenship]; !ok {
				continue
			}
		}
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	if len(out) > player.ListCap {
		out = out[:player.ListCap]
	}

	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, id int64) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[id]
	return p, ok, nil
}

func (r *PlayerRepository) Create(_ context.Context, p player.Player) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	p.ID = r.nextID
	r.items[p.ID] = p
	return p.ID, nil
}

func (r *PlayerRepository) Update(_ context.Context, p player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[p.ID]; !ok {
		return nil
	}
	r.items[p.ID] = p
	return nil
}

func (r *PlayerRepository) NamesByIDs(_ context.Context, ids []int64) (map[int64]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[int64]string, len(ids))
	for _, id := range ids {
		if p, ok := r.items[id]; ok {
			out[id] = p.Name
		}
	}
	return out, nil
}

func (r *PlayerRepository) DistinctCitizenships(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, p := range r.items {
		if p.Citizenship == "" {
			continue
		}
		seen[p.Citizenship] = struct{}{}
	}

	out := make([]string, 0, len(seen))
	for citizenship := range seen {
		out = append(out, citizenship)
	}
	sort.Strings(out)
	return out, nil
}

func (r *PlayerRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items), nil
}
