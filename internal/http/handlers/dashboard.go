package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/just-nibble/git-dashboard/internal/http/middleware"
	"github.com/just-nibble/git-dashboard/internal/usecases"
	"github.com/just-nibble/git-dashboard/internal/view"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type repositoriesBlock struct {
	Message string
	Names   []string
}

type commitsBlock struct {
	Message    string
	Rows       []view.CommitRow
	Page       int
	TotalPages int
	HasPrev    bool
	HasNext    bool
	PrevPage   int
	NextPage   int
	EmptyText  string
}

type contributionsBlock struct {
	Message string
	Grid    [][]view.ContributionCell
}

type dashboardPage struct {
	Repositories  repositoriesBlock
	Commits       commitsBlock
	Contributions contributionsBlock
}

// sectionMessage returns the text shown instead of a section's content, "" when it loaded
func sectionMessage(state usecases.SectionState, unavailable string) string {
	switch state {
	case usecases.StateReconnect:
		return MsgReconnect
	case usecases.StateUnavailable:
		return unavailable
	default:
		return ""
	}
}

func newDashboardPage(d *usecases.Dashboard) dashboardPage {
	var page dashboardPage

	page.Repositories.Message = sectionMessage(d.Repositories.State, MsgReposUnavailable)
	for _, r := range d.Repositories.Repositories {
		page.Repositories.Names = append(page.Repositories.Names, r.Name)
	}

	pager := d.Commits.Pager
	if pager == nil {
		pager = view.NewCommitPager(nil)
	}
	page.Commits = commitsBlock{
		Message:    sectionMessage(d.Commits.State, MsgCommitsUnavailable),
		Rows:       pager.Rows(),
		Page:       pager.Page(),
		TotalPages: pager.TotalPages(),
		HasPrev:    pager.HasPrev(),
		HasNext:    pager.HasNext(),
		PrevPage:   pager.Page() - 1,
		NextPage:   pager.Page() + 1,
		EmptyText:  view.EmptyCommitsText,
	}

	page.Contributions = contributionsBlock{
		Message: sectionMessage(d.Contributions.State, MsgContribUnavailable),
		Grid:    d.Contributions.Grid,
	}
	return page
}

type DashboardHandler struct {
	dashboard usecases.DashboardUsecase
	signInURL string
	log       zerolog.Logger
}

func NewDashboardHandler(dashboard usecases.DashboardUsecase, signInURL string, log zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, signInURL: signInURL, log: log}
}

func (h *DashboardHandler) render(w http.ResponseWriter, code int, name string, data any) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		h.log.Error().Err(err).Str("template", name).Msg("failed to render page")
		http.Error(w, MsgInternal, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	_, _ = buf.WriteTo(w)
}

// SignIn shows the landing page; signed-in users go straight to the dashboard
func (h *DashboardHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	if middleware.UserFromContext(r.Context()) != "" {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}
	h.render(w, http.StatusOK, "signin", struct{ SignInURL string }{h.signInURL})
}

func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserFromContext(r.Context())
	if userID == "" {
		h.render(w, http.StatusUnauthorized, "message", MsgSignedOut)
		return
	}

	d, err := h.dashboard.Load(r.Context(), userID, pageParam(r))
	if err != nil {
		code, msg := statusFor(err, MsgInternal)
		h.log.Error().Err(err).Str("user", userID).Msg("failed to load dashboard")
		h.render(w, code, "message", msg)
		return
	}

	h.render(w, http.StatusOK, "dashboard", newDashboardPage(d))
}
