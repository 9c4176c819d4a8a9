package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/courtdesk/basketref/internal/domain/game"
)

type GameRepository struct {
	mu    sync.RWMutex
	items map[int64]game.Game
}

func NewGameRepository(games []game.Game) *GameRepository {
	items := make(map[int64]game.Game, len(games))
	for _, g := range games {
		items[g.ID] = g
	}
	return &GameRepository{items: items}
}

func (r *GameRepository) List(_ context.Context, filter game.Filter) ([]game.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]game.Game, 0, len(r.items))
	for _, g := range r.items {
		if filter.SeasonContains != "" && !strings.Contains(strings.ToLower(g.Season), strings.ToLower(filter.SeasonContains)) {
			continue
		}
		if filter.TypeContains != "" && !strings.Contains(strings.ToLower(g.Type), strings.ToLower(filter.TypeContains)) {
			continue
		}
		if filter.LeagueID != nil && (g.LeagueID == nil || *g.LeagueID != *filter.LeagueID) {
			continue
		}
		out = append(out, cloneGame(g))
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if len(out) > game.ListCap {
		out = out[:game.ListCap]
	}

	return out, nil
}

func (r *GameRepository) GetByID(_ context.Context, id int64) (game.Game, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.items[id]
	if !ok {
		return game.Game{}, false, nil
	}
	return cloneGame(g), true, nil
}

func (r *GameRepository) Upcoming(_ context.Context, from time.Time, limit int) ([]game.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]game.Game, 0, limit)
	for _, g := range r.items {
		if g.Date.Before(from) {
			continue
		}
		out = append(out, cloneGame(g))
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

func (r *GameRepository) DistinctSeasons(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.distinct(func(g game.Game) string { return g.Season }), nil
}

func (r *GameRepository) DistinctTypes(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.distinct(func(g game.Game) string { return g.Type }), nil
}

func (r *GameRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items), nil
}

func (r *GameRepository) distinct(pick func(game.Game) string) []string {
	seen := make(map[string]struct{})
	for _, g := range r.items {
		value := pick(g)
		if value == "" {
			continue
		}
		seen[value] = struct{}{}
	}

	out := make([]string, 0, len(seen))
	for value := range seen {
		out = append(out, value)
	}
	sort.Strings(out)
	return out
}

// cloneGame copies the participant slice so callers annotating display names
// never mutate the stored game.
func cloneGame(g game.Game) game.Game {
	participants := make([]game.Participant, len(g.Participants))
	copy(participants, g.Participants)
	g.Participants = participants
	return g
}
