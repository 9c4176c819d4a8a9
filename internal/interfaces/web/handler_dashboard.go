package web

import (
	"html/template"
	"net/http"

	"github.com/bytedance/sonic"

	"github.com/courtdesk/basketref/internal/usecase"
)

type dashboardView struct {
	usecase.Dashboard
	// DistributionJSON feeds the citizenship chart script.
	DistributionJSON template.JS
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "web.Handler.Dashboard")
	defer span.End()

	dashboard, err := h.dashboard.Get(ctx)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	view := dashboardView{Dashboard: dashboard}
	if payload, err := sonic.Marshal(dashboard.Distribution); err == nil {
		view.DistributionJSON = template.JS(payload)
	} else {
		h.logger.WarnContext(ctx, "marshal distribution chart payload", "error", err)
		view.DistributionJSON = "[]"
	}

	h.renderer.render(w, r, http.StatusOK, "dashboard.html", h.page(w, r, "Dashboard", view))
}
