package web

import (
	"net/http"

	"github.com/courtdesk/basketref/internal/domain/user"
	"github.com/courtdesk/basketref/internal/platform/logging"
)

func NewRouter(handler *Handler, sessions *SessionManager, logger *logging.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("GET /{$}", handler.Home)
	mux.HandleFunc("GET /login", handler.LoginForm)
	mux.HandleFunc("POST /login", handler.Login)
	mux.HandleFunc("GET /logout", handler.Logout)

	authed := func(h http.HandlerFunc) http.Handler {
		return RequireAuth(sessions, h)
	}
	editors := func(h http.HandlerFunc) http.Handler {
		return RequireAuth(sessions, RequireRole([]user.Role{user.RoleAdmin, user.RoleStaff}, h))
	}
	admins := func(h http.HandlerFunc) http.Handler {
		return RequireAuth(sessions, RequireRole([]user.Role{user.RoleAdmin}, h))
	}

	mux.Handle("GET /dashboard", authed(handler.Dashboard))
	mux.Handle("GET /players", authed(handler.ListPlayers))
	mux.Handle("GET /players/{id}", authed(handler.PlayerDetail))
	mux.Handle("GET /players/new", editors(handler.NewPlayerForm))
	mux.Handle("POST /players/new", editors(handler.CreatePlayer))
	mux.Handle("GET /players/{id}/edit", editors(handler.EditPlayerForm))
	mux.Handle("POST /players/{id}/edit", editors(handler.UpdatePlayer))
	mux.Handle("GET /games", authed(handler.ListGames))
	mux.Handle("GET /games/{id}", authed(handler.GameDetail))
	mux.Handle("GET /admin/sql", admins(handler.SQLConsole))
	mux.Handle("POST /admin/sql", admins(handler.RunSQLScript))

	return RequestTracing(RequestLogging(logger, recoverPanic(logger, mux)))
}
