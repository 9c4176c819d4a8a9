package web

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/courtdesk/basketref/internal/usecase"
)

type loginForm struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

type loginView struct {
	Username string
	Error    string
}

func (h *Handler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.sessions.FromRequest(r); ok {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	h.renderer.render(w, r, http.StatusOK, "login.html", h.page(w, r, "Sign in", loginView{}))
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "web.Handler.Login")
	defer span.End()

	if err := r.ParseForm(); err != nil {
		h.renderer.render(w, r, http.StatusBadRequest, "login.html",
			h.page(w, r, "Sign in", loginView{Error: "Malformed form submission."}))
		return
	}

	form := loginForm{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}
	if err := h.validate.Struct(form); err != nil {
		h.renderer.render(w, r, http.StatusBadRequest, "login.html",
			h.page(w, r, "Sign in", loginView{Username: form.Username, Error: "Username and password are required."}))
		return
	}

	principal, err := h.auth.Login(ctx, form.Username, form.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrUnauthorized) {
			h.renderer.render(w, r, http.StatusUnauthorized, "login.html",
				h.page(w, r, "Sign in", loginView{Username: form.Username, Error: "Invalid username or password."}))
			return
		}
		h.renderError(w, r, err)
		return
	}

	token, err := h.sessions.Issue(principal)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.sessions.SetCookie(w, token)
	setFlash(w, flashInfo, fmt.Sprintf("Welcome, %s.", principal.Username))
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.ClearCookie(w)
	setFlash(w, flashInfo, "You have been signed out.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
