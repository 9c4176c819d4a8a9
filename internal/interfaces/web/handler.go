package web

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/courtdesk/basketref/internal/domain/user"
	"github.com/courtdesk/basketref/internal/platform/logging"
	"github.com/courtdesk/basketref/internal/usecase"
)

// Handler carries every page handler's dependencies.
type Handler struct {
	auth      *usecase.AuthService
	players   *usecase.PlayerService
	games     *usecase.GameService
	dashboard *usecase.DashboardService
	console   *usecase.SQLConsoleService
	sessions  *SessionManager
	renderer  *Renderer
	logger    *logging.Logger
	validate  *validator.Validate
}

func NewHandler(
	auth *usecase.AuthService,
	players *usecase.PlayerService,
	games *usecase.GameService,
	dashboard *usecase.DashboardService,
	console *usecase.SQLConsoleService,
	sessions *SessionManager,
	renderer *Renderer,
	logger *logging.Logger,
) *Handler {
	return &Handler{
		auth:      auth,
		players:   players,
		games:     games,
		dashboard: dashboard,
		console:   console,
		sessions:  sessions,
		renderer:  renderer,
		logger:    logger,
		validate:  validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// Home routes by auth state: a valid session lands on the dashboard,
// everyone else on the login page.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.sessions.FromRequest(r); ok {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// page assembles the common template envelope: principal, permissions and
// the pending flash, if any.
func (h *Handler) page(w http.ResponseWriter, r *http.Request, title string, data any) pageData {
	pd := pageData{Title: title, Data: data, Flash: popFlash(w, r)}
	if principal, ok := principalFromContext(r.Context()); ok {
		pd.Principal = &principal
		pd.Permissions = user.PermissionsFor(principal.Role)
	}
	return pd
}

func (h *Handler) renderNotFound(w http.ResponseWriter, r *http.Request) {
	h.renderer.render(w, r, http.StatusNotFound, "notfound.html", h.page(w, r, "Not found", nil))
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	h.renderer.render(w, r, http.StatusInternalServerError, "error.html", h.page(w, r, "Something went wrong", nil))
}

// pathID parses the {id} segment. Non-numeric ids are treated as unknown
// entities, not bad requests.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func parseOptionalInt64(raw string) *int64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}
