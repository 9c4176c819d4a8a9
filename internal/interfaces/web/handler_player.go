package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/courtdesk/basketref/internal/domain/club"
	"github.com/courtdesk/basketref/internal/domain/player"
	"github.com/courtdesk/basketref/internal/usecase"
)

const dateLayout = "2006-01-02"

type playersQuery struct {
	Q           string
	Club        string
	Citizenship string
	Continent   string
}

type playersView struct {
	Listing usecase.PlayerListing
	Query   playersQuery
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "web.Handler.ListPlayers")
	defer span.End()

	query := playersQuery{
		Q:           r.URL.Query().Get("q"),
		Club:        r.URL.Query().Get("club"),
		Citizenship: r.URL.Query().Get("citizenship"),
		Continent:   r.URL.Query().Get("continent"),
	}

	filter := player.Filter{
		NameContains:  query.Q,
		ClubID:        parseOptionalInt64(query.Club),
		Citizenship:   query.Citizenship,
		Confederation: query.Continent,
	}

	listing, err := h.players.List(ctx, filter)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.renderer.render(w, r, http.StatusOK, "players.html",
		h.page(w, r, "Players", playersView{Listing: listing, Query: query}))
}

func (h *Handler) PlayerDetail(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "web.Handler.PlayerDetail")
	defer span.End()

	id, ok := pathID(r)
	if !ok {
		h.renderNotFound(w, r)
		return
	}

	detail, err := h.players.Get(ctx, id)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			h.renderNotFound(w, r)
			return
		}
		h.renderError(w, r, err)
		return
	}

	h.renderer.render(w, r, http.StatusOK, "player_detail.html",
		h.page(w, r, detail.Player.Name, detail))
}

// playerForm carries raw form fields; conversion happens after validation so
// a bad submission re-renders with exactly what was typed.
type playerForm struct {
	Code        string `validate:"required"`
	Name        string `validate:"required"`
	DateOfBirth string `validate:"required,datetime=2006-01-02"`
	Height      string `validate:"omitempty,numeric"`
	Citizenship string
	ClubID      string
}

type playerFormView struct {
	Form    playerForm
	Clubs   []club.Club
	Error   string
	Action  string
	Editing bool
}

func playerFormFromRequest(r *http.Request) playerForm {
	return playerForm{
		Code:        r.PostFormValue("code"),
		Name:        r.PostFormValue("name"),
		DateOfBirth: r.PostFormValue("date_of_birth"),
		Height:      r.PostFormValue("height"),
		Citizenship: r.PostFormValue("citizenship"),
		ClubID:      r.PostFormValue("club_id"),
	}
}

func (f playerForm) toInput() (usecase.PlayerInput, error) {
	dob, err := time.Parse(dateLayout, f.DateOfBirth)
	if err != nil {
		return usecase.PlayerInput{}, fmt.Errorf("date of birth must be YYYY-MM-DD")
	}

	input := usecase.PlayerInput{
		Code:        f.Code,
		Name:        f.Name,
		DateOfBirth: dob,
		Citizenship: f.Citizenship,
		ClubID:      parseOptionalInt64(f.ClubID),
	}

	if f.Height != "" {
		height, err := strconv.ParseFloat(f.Height, 64)
		if err != nil {
			return usecase.PlayerInput{}, fmt.Errorf("height must be a number")
		}
		input.Height = &height
	}

	return input, nil
}

func playerFormFromPlayer(p player.Player) playerForm {
	form := playerForm{
		Code:        p.Code,
		Name:        p.Name,
		DateOfBirth: p.DateOfBirth.Format(dateLayout),
		Citizenship: p.Citizenship,
	}
	if p.Height != nil {
		form.Height = strconv.FormatFloat(*p.Height, 'f', -1, 64)
	}
	if p.ClubID != nil {
		form.ClubID = strconv.FormatInt(*p.ClubID, 10)
	}
	return form
}

func (h *Handler) NewPlayerForm(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "web.Handler.NewPlayerForm")
	defer span.End()

	clubs, err := h.players.Clubs(ctx)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.renderer.render(w, r, http.StatusOK, "player_form.html",
		h.page(w, r, "New player", playerFormView{Clubs: clubs, Action: "/players/new"}))
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "web.Handler.CreatePlayer")
	defer span.End()

	form, input, errMsg := h.parsePlayerForm(r)
	if errMsg != "" {
		h.renderPlayerForm(w, r, playerFormView{Form: form, Error: errMsg, Action: "/players/new"}, http.StatusBadRequest)
		return
	}

	id, err := h.players.Create(ctx, input)
	if err != nil {
		h.renderPlayerForm(w, r, playerFormView{Form: form, Error: mutationError(err), Action: "/players/new"}, mutationStatus(err))
		return
	}

	setFlash(w, flashInfo, fmt.Sprintf("Player %s created.", input.Name))
	http.Redirect(w, r, fmt.Sprintf("/players/%d", id), http.StatusSeeOther)
}

func (h *Handler) EditPlayerForm(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "web.Handler.EditPlayerForm")
	defer span.End()

	id, ok := pathID(r)
	if !ok {
		h.renderNotFound(w, r)
		return
	}

	detail, err := h.players.Get(ctx, id)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			h.renderNotFound(w, r)
			return
		}
		h.renderError(w, r, err)
		return
	}

	clubs, err := h.players.Clubs(ctx)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	view := playerFormView{
		Form:    playerFormFromPlayer(detail.Player),
		Clubs:   clubs,
		Action:  fmt.Sprintf("/players/%d/edit", id),
		Editing: true,
	}
	h.renderer.render(w, r, http.StatusOK, "player_form.html", h.page(w, r, "Edit player", view))
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "web.Handler.UpdatePlayer")
	defer span.End()

	id, ok := pathID(r)
	if !ok {
		h.renderNotFound(w, r)
		return
	}
	action := fmt.Sprintf("/players/%d/edit", id)

	form, input, errMsg := h.parsePlayerForm(r)
	if errMsg != "" {
		h.renderPlayerForm(w, r, playerFormView{Form: form, Error: errMsg, Action: action, Editing: true}, http.StatusBadRequest)
		return
	}

	if err := h.players.Update(ctx, id, input); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			h.renderNotFound(w, r)
			return
		}
		h.renderPlayerForm(w, r, playerFormView{Form: form, Error: mutationError(err), Action: action, Editing: true}, mutationStatus(err))
		return
	}

	setFlash(w, flashInfo, fmt.Sprintf("Player %s updated.", input.Name))
	http.Redirect(w, r, fmt.Sprintf("/players/%d", id), http.StatusSeeOther)
}

// parsePlayerForm validates the submission and converts it into a mutation
// input. A non-empty message means the form must re-render as-is.
func (h *Handler) parsePlayerForm(r *http.Request) (playerForm, usecase.PlayerInput, string) {
	if err := r.ParseForm(); err != nil {
		return playerForm{}, usecase.PlayerInput{}, "Malformed form submission."
	}

	form := playerFormFromRequest(r)
	if err := h.validate.Struct(form); err != nil {
		return form, usecase.PlayerInput{}, "Code, name and a YYYY-MM-DD date of birth are required."
	}

	input, err := form.toInput()
	if err != nil {
		return form, usecase.PlayerInput{}, err.Error()
	}

	return form, input, ""
}

// renderPlayerForm reloads the club dropdown before re-rendering a failed
// submission.
func (h *Handler) renderPlayerForm(w http.ResponseWriter, r *http.Request, view playerFormView, status int) {
	clubs, err := h.players.Clubs(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	view.Clubs = clubs

	title := "New player"
	if view.Editing {
		title = "Edit player"
	}
	h.renderer.render(w, r, status, "player_form.html", h.page(w, r, title, view))
}

func mutationError(err error) string {
	if errors.Is(err, usecase.ErrInvalidInput) {
		return err.Error()
	}
	return fmt.Sprintf("The change was not saved: %v", err)
}

func mutationStatus(err error) int {
	if errors.Is(err, usecase.ErrInvalidInput) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
