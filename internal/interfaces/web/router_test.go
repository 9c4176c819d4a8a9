package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/courtdesk/basketref/internal/domain/championship"
	"github.com/courtdesk/basketref/internal/domain/club"
	"github.com/courtdesk/basketref/internal/domain/game"
	"github.com/courtdesk/basketref/internal/domain/league"
	"github.com/courtdesk/basketref/internal/domain/nationalteam"
	"github.com/courtdesk/basketref/internal/domain/player"
	"github.com/courtdesk/basketref/internal/domain/sqlscript"
	"github.com/courtdesk/basketref/internal/domain/stats"
	"github.com/courtdesk/basketref/internal/domain/user"
	"github.com/courtdesk/basketref/internal/infrastructure/repository/memory"
	"github.com/courtdesk/basketref/internal/platform/logging"
	"github.com/courtdesk/basketref/internal/usecase"
)

type stubRegistry struct{}

func (stubRegistry) List() []sqlscript.Script {
	return []sqlscript.Script{{Key: "season_points", Kind: sqlscript.KindScript, SQL: "SELECT 1"}}
}

func (stubRegistry) Get(key string) (sqlscript.Script, bool) {
	if key != "season_points" {
		return sqlscript.Script{}, false
	}
	return sqlscript.Script{Key: key, Kind: sqlscript.KindScript, SQL: "SELECT 1"}, true
}

type stubExecutor struct{}

func (stubExecutor) RunScript(context.Context, string) (usecase.ScriptResult, error) {
	return usecase.ScriptResult{Columns: []string{"season"}, Rows: [][]string{{"2024-2025"}}, HasRows: true}, nil
}

func (stubExecutor) RunViewDefinition(context.Context, string, string) (usecase.ScriptResult, error) {
	return usecase.ScriptResult{Message: "view updated"}, nil
}

type testServer struct {
	router   http.Handler
	sessions *SessionManager
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	teams := memory.NewNationalTeamRepository([]nationalteam.NationalTeam{
		{ID: 1, Code: "FRA", Country: "France", Confederation: "Europe"},
	})
	players := memory.NewPlayerRepository([]player.Player{
		{ID: 1, Code: "P1", Name: "Ann Walker", DateOfBirth: time.Date(1995, 3, 1, 0, 0, 0, 0, time.UTC), Citizenship: "France"},
	}, teams)
	clubs := memory.NewClubRepository([]club.Club{
		{ID: 1, Code: "C1", Name: "Lyon Basket", City: "Lyon"},
	})
	leagues := memory.NewLeagueRepository([]league.League{
		{ID: 1, Code: "L1", Name: "Pro A", Country: "France", Level: "1"},
	})
	championships := memory.NewChampionshipRepository([]championship.Championship{})
	games := memory.NewGameRepository([]game.Game{
		{
			ID: 1, Code: "G1", Date: time.Date(2024, 11, 2, 0, 0, 0, 0, time.UTC), Season: "2024-2025",
			Participants: []game.Participant{
				{Ref: game.ParticipantRef{Kind: game.KindClub, ID: 1}, Score: 80},
			},
		},
	})
	statsRepo := memory.NewStatsRepository([]stats.Line{
		{GameID: 1, PlayerID: 1, Made2Pt: 4},
	}, players)

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	authSvc := usecase.NewAuthService([]user.Credential{
		{Username: "admin", Role: user.RoleAdmin, PasswordHash: hash},
	})

	playerSvc := usecase.NewPlayerService(players, clubs, teams, statsRepo)
	gameSvc := usecase.NewGameService(games, clubs, teams, leagues, championships, players, statsRepo)
	dashboardSvc := usecase.NewDashboardService(players, clubs, leagues, games, statsRepo, gameSvc)
	consoleSvc := usecase.NewSQLConsoleService(stubRegistry{}, stubExecutor{})

	logger := logging.NewNop()
	sessions := NewSessionManager("test-secret", time.Hour)
	renderer, err := NewRenderer(logger)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	handler := NewHandler(authSvc, playerSvc, gameSvc, dashboardSvc, consoleSvc, sessions, renderer, logger)
	return &testServer{
		router:   NewRouter(handler, sessions, logger),
		sessions: sessions,
	}
}

func (ts *testServer) get(t *testing.T, path string, as *user.Principal) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, path, nil)
	ts.sign(t, r, as)
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, r)
	return w
}

func (ts *testServer) postForm(t *testing.T, path string, form url.Values, as *user.Principal) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	ts.sign(t, r, as)
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, r)
	return w
}

func (ts *testServer) sign(t *testing.T, r *http.Request, as *user.Principal) {
	t.Helper()
	if as == nil {
		return
	}
	token, err := ts.sessions.Issue(*as)
	if err != nil {
		t.Fatalf("issue session: %v", err)
	}
	r.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
}

func principalOf(role user.Role) *user.Principal {
	return &user.Principal{Username: string(role), Role: role}
}

func flashCookieOf(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == flashCookieName && c.MaxAge >= 0 && c.Value != "" {
			return c
		}
	}
	return nil
}

func TestAnonymousRequestsRedirectToLogin(t *testing.T) {
	ts := newTestServer(t)

	for _, path := range []string{"/dashboard", "/players", "/games", "/admin/sql"} {
		w := ts.get(t, path, nil)
		if w.Code != http.StatusSeeOther {
			t.Fatalf("GET %s status = %d, want %d", path, w.Code, http.StatusSeeOther)
		}
		if loc := w.Header().Get("Location"); loc != "/login" {
			t.Fatalf("GET %s redirects to %q, want /login", path, loc)
		}
	}
}

func TestHomeRedirectsByAuthState(t *testing.T) {
	ts := newTestServer(t)

	w := ts.get(t, "/", nil)
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/login" {
		t.Fatalf("anonymous / -> %d %q, want 303 /login", w.Code, w.Header().Get("Location"))
	}

	w = ts.get(t, "/", principalOf(user.RoleViewer))
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/dashboard" {
		t.Fatalf("authenticated / -> %d %q, want 303 /dashboard", w.Code, w.Header().Get("Location"))
	}
}

func TestLoginFlow(t *testing.T) {
	ts := newTestServer(t)

	w := ts.postForm(t, "/login", url.Values{"username": {"admin"}, "password": {"admin123"}}, nil)
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/dashboard" {
		t.Fatalf("login -> %d %q, want 303 /dashboard", w.Code, w.Header().Get("Location"))
	}

	var session *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == sessionCookieName {
			session = c
		}
	}
	if session == nil || session.Value == "" {
		t.Fatal("no session cookie set on login")
	}
	if !session.HttpOnly {
		t.Fatal("session cookie must be HttpOnly")
	}

	principal, err := ts.sessions.Verify(session.Value)
	if err != nil {
		t.Fatalf("verify issued session: %v", err)
	}
	if principal.Role != user.RoleAdmin {
		t.Fatalf("role = %q, want admin", principal.Role)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ts := newTestServer(t)

	w := ts.postForm(t, "/login", url.Values{"username": {"admin"}, "password": {"wrong"}}, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
	for _, c := range w.Result().Cookies() {
		if c.Name == sessionCookieName {
			t.Fatal("session cookie set on failed login")
		}
	}
}

func TestViewerIsSoftDeniedFromPlayerEditing(t *testing.T) {
	ts := newTestServer(t)

	w := ts.postForm(t, "/players/new", url.Values{
		"code": {"P9"}, "name": {"New Player"}, "date_of_birth": {"2000-01-01"},
	}, principalOf(user.RoleViewer))

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusSeeOther)
	}
	if loc := w.Header().Get("Location"); loc != "/dashboard" {
		t.Fatalf("redirects to %q, want /dashboard", loc)
	}
	if flashCookieOf(w) == nil {
		t.Fatal("soft deny must set a flash cookie")
	}
}

func TestStaffCanCreatePlayers(t *testing.T) {
	ts := newTestServer(t)

	w := ts.postForm(t, "/players/new", url.Values{
		"code": {"P9"}, "name": {"New Player"}, "date_of_birth": {"2000-01-01"},
	}, principalOf(user.RoleStaff))

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d, body: %s", w.Code, http.StatusSeeOther, w.Body.String())
	}
	if loc := w.Header().Get("Location"); !strings.HasPrefix(loc, "/players/") {
		t.Fatalf("redirects to %q, want a player detail page", loc)
	}
}

func TestInvalidPlayerFormReRenders(t *testing.T) {
	ts := newTestServer(t)

	w := ts.postForm(t, "/players/new", url.Values{
		"code": {"P9"}, "name": {"New Player"}, "date_of_birth": {"not-a-date"},
	}, principalOf(user.RoleStaff))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if body := w.Body.String(); !strings.Contains(body, "New Player") {
		t.Fatal("re-rendered form must keep submitted values")
	}
}

func TestSQLConsoleIsAdminOnly(t *testing.T) {
	ts := newTestServer(t)

	w := ts.get(t, "/admin/sql", principalOf(user.RoleStaff))
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/dashboard" {
		t.Fatalf("staff /admin/sql -> %d %q, want 303 /dashboard", w.Code, w.Header().Get("Location"))
	}

	w = ts.get(t, "/admin/sql", principalOf(user.RoleAdmin))
	if w.Code != http.StatusOK {
		t.Fatalf("admin /admin/sql status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "season_points") {
		t.Fatal("console must list registered scripts")
	}
}

func TestSQLConsoleRunsScript(t *testing.T) {
	ts := newTestServer(t)

	w := ts.postForm(t, "/admin/sql", url.Values{"query_key": {"season_points"}}, principalOf(user.RoleAdmin))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body := w.Body.String(); !strings.Contains(body, "2024-2025") {
		t.Fatal("result rows must be rendered")
	}

	w = ts.postForm(t, "/admin/sql", url.Values{"query_key": {"unknown"}}, principalOf(user.RoleAdmin))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unknown key status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestPlayerPages(t *testing.T) {
	ts := newTestServer(t)

	w := ts.get(t, "/players", principalOf(user.RoleViewer))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Ann Walker") {
		t.Fatal("listing must include seeded player")
	}
	if strings.Contains(w.Body.String(), "/players/new") {
		t.Fatal("viewer must not see the add-player link")
	}

	w = ts.get(t, "/players/1", principalOf(user.RoleViewer))
	if w.Code != http.StatusOK {
		t.Fatalf("detail status = %d, want 200", w.Code)
	}

	w = ts.get(t, "/players/999", principalOf(user.RoleViewer))
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown player status = %d, want 404", w.Code)
	}

	w = ts.get(t, "/players/abc", principalOf(user.RoleViewer))
	if w.Code != http.StatusNotFound {
		t.Fatalf("bad id status = %d, want 404", w.Code)
	}
}

func TestGamePages(t *testing.T) {
	ts := newTestServer(t)

	w := ts.get(t, "/games", principalOf(user.RoleViewer))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Lyon Basket") {
		t.Fatal("listing must show resolved participant names")
	}

	w = ts.get(t, "/games/1", principalOf(user.RoleViewer))
	if w.Code != http.StatusOK {
		t.Fatalf("detail status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Ann Walker") {
		t.Fatal("box score must show player names")
	}

	w = ts.get(t, "/games/999", principalOf(user.RoleViewer))
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown game status = %d, want 404", w.Code)
	}
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)

	w := ts.get(t, "/healthz", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}
