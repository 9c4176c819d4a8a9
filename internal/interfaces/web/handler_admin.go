package web

import (
	"errors"
	"net/http"

	"github.com/courtdesk/basketref/internal/domain/sqlscript"
	"github.com/courtdesk/basketref/internal/usecase"
)

type sqlConsoleView struct {
	Scripts  []sqlscript.Script
	Selected string
	Result   *usecase.ScriptResult
	Error    string
}

func (h *Handler) SQLConsole(w http.ResponseWriter, r *http.Request) {
	h.renderer.render(w, r, http.StatusOK, "admin_sql.html",
		h.page(w, r, "SQL console", sqlConsoleView{Scripts: h.console.List()}))
}

// RunSQLScript executes a registered script and renders the outcome on the
// same page. Execution errors show the raw cause: this is an operator tool.
func (h *Handler) RunSQLScript(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "web.Handler.RunSQLScript")
	defer span.End()

	if err := r.ParseForm(); err != nil {
		h.renderer.render(w, r, http.StatusBadRequest, "admin_sql.html",
			h.page(w, r, "SQL console", sqlConsoleView{
				Scripts: h.console.List(),
				Error:   "Malformed form submission.",
			}))
		return
	}

	key := r.PostFormValue("query_key")
	view := sqlConsoleView{Scripts: h.console.List(), Selected: key}

	result, err := h.console.Run(ctx, key)
	if err != nil {
		status := http.StatusOK
		switch {
		case errors.Is(err, usecase.ErrNotFound), errors.Is(err, usecase.ErrInvalidInput):
			status = http.StatusBadRequest
		}
		view.Error = err.Error()
		h.renderer.render(w, r, status, "admin_sql.html", h.page(w, r, "SQL console", view))
		return
	}

	view.Result = &result
	h.renderer.render(w, r, http.StatusOK, "admin_sql.html", h.page(w, r, "SQL console", view))
}
