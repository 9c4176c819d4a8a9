package web

import (
	"errors"
	"net/http"

	"github.com/courtdesk/basketref/internal/domain/game"
	"github.com/courtdesk/basketref/internal/usecase"
)

type gamesQuery struct {
	Season string
	Type   string
	League string
}

type gamesView struct {
	Listing usecase.GameListing
	Query   gamesQuery
}

func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "web.Handler.ListGames")
	defer span.End()

	query := gamesQuery{
		Season: r.URL.Query().Get("season"),
		Type:   r.URL.Query().Get("type"),
		League: r.URL.Query().Get("league"),
	}

	filter := game.Filter{
		SeasonContains: query.Season,
		TypeContains:   query.Type,
		LeagueID:       parseOptionalInt64(query.League),
	}

	listing, err := h.games.List(ctx, filter)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.renderer.render(w, r, http.StatusOK, "games.html",
		h.page(w, r, "Games", gamesView{Listing: listing, Query: query}))
}

func (h *Handler) GameDetail(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "web.Handler.GameDetail")
	defer span.End()

	id, ok := pathID(r)
	if !ok {
		h.renderNotFound(w, r)
		return
	}

	detail, err := h.games.Get(ctx, id)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			h.renderNotFound(w, r)
			return
		}
		h.renderError(w, r, err)
		return
	}

	h.renderer.render(w, r, http.StatusOK, "game_detail.html",
		h.page(w, r, detail.Game.Code, detail))
}
