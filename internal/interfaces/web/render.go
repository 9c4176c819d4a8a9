package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/valyala/bytebufferpool"

	"github.com/courtdesk/basketref/internal/domain/user"
	"github.com/courtdesk/basketref/internal/platform/logging"
)

//go:embed templates/*.html
var templateFS embed.FS

// pageData is the envelope every template receives. Data carries the
// page-specific payload.
type pageData struct {
	Title       string
	Principal   *user.Principal
	Permissions user.Permissions
	Flash       *Flash
	Data        any
}

// Renderer executes embedded templates into a pooled buffer so a template
// error never leaves a half-written response body.
type Renderer struct {
	pages  map[string]*template.Template
	logger *logging.Logger
}

var pageTemplates = []string{
	"login.html",
	"dashboard.html",
	"players.html",
	"player_detail.html",
	"player_form.html",
	"games.html",
	"game_detail.html",
	"admin_sql.html",
	"notfound.html",
	"error.html",
}

func NewRenderer(logger *logging.Logger) (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageTemplates))
	for _, name := range pageTemplates {
		t, err := template.New("layout.html").ParseFS(templateFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = t
	}

	return &Renderer{pages: pages, logger: logger}, nil
}

func (rd *Renderer) render(w http.ResponseWriter, r *http.Request, status int, name string, data pageData) {
	t, ok := rd.pages[name]
	if !ok {
		rd.logger.ErrorContext(r.Context(), "unknown template", "template", name)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := t.ExecuteTemplate(buf, "layout.html", data); err != nil {
		rd.logger.ErrorContext(r.Context(), "render template", "template", name, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
