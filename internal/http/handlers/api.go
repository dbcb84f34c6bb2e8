package handlers

import (
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/just-nibble/git-dashboard/internal/http/dtos"
	"github.com/just-nibble/git-dashboard/internal/http/middleware"
	"github.com/just-nibble/git-dashboard/internal/usecases"
	"github.com/just-nibble/git-dashboard/internal/view"
	"github.com/just-nibble/git-dashboard/pkg/response"
)

type APIHandler struct {
	dashboard usecases.DashboardUsecase
	log       zerolog.Logger
}

func NewAPIHandler(dashboard usecases.DashboardUsecase, log zerolog.Logger) *APIHandler {
	return &APIHandler{dashboard: dashboard, log: log}
}

// pageParam reads ?page=N; anything unparsable means the first page
func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		return view.DEFAULTPAGE
	}
	return page
}

func (h *APIHandler) fail(w http.ResponseWriter, r *http.Request, err error, unavailable string) {
	code, msg := statusFor(err, unavailable)
	if code >= http.StatusInternalServerError {
		h.log.Error().Err(err).
			Str("request_id", middleware.RequestIDFromContext(r.Context())).
			Int("status", code).
			Msg(msg)
	}
	response.ErrorResponse(w, code, msg)
}

// GetCommits godoc
// @Summary      Recent commits
// @Description  One page of the signed-in user's commits from the last 30 days, newest first
// @Tags         commits
// @Produce      json
// @Param        page  query  int  false  "1-based page, clamped into range"
// @Success      200  {object}  dtos.MultiCommitsResponse
// @Failure      401,403,502  {object}  map[string]string
// @Router       /api/commits [get]
func (h *APIHandler) GetCommits(w http.ResponseWriter, r *http.Request) {
	commits, err := h.dashboard.RecentCommits(r.Context(), middleware.UserFromContext(r.Context()))
	if err != nil {
		h.fail(w, r, err, MsgCommitsUnavailable)
		return
	}

	pager := view.NewCommitPager(commits)
	pager.Goto(pageParam(r))

	response.SuccessResponse(w, http.StatusOK, dtos.NewMultiCommitsResponse(pager))
}

// GetLatestRepositories godoc
// @Summary      Latest repositories
// @Description  The n most recently pushed repositories of the signed-in user
// @Tags         repositories
// @Produce      json
// @Param        n  query  int  false  "number of repositories (default 3)"
// @Success      200  {array}  dtos.Repository
// @Failure      401,403,502  {object}  map[string]string
// @Router       /api/repositories/latest [get]
func (h *APIHandler) GetLatestRepositories(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.Atoi(r.URL.Query().Get("n"))
	if err != nil || n <= 0 {
		n = usecases.DefaultLatestRepositories
	}
	if n > usecases.RepositoryListLimit {
		n = usecases.RepositoryListLimit
	}

	repos, err := h.dashboard.LatestRepositories(r.Context(), middleware.UserFromContext(r.Context()), n)
	if err != nil {
		h.fail(w, r, err, MsgReposUnavailable)
		return
	}

	response.SuccessResponse(w, http.StatusOK, dtos.NewRepositories(repos))
}

// GetContributions godoc
// @Summary      Contribution grid
// @Description  The last 30 days of contributions laid out as 6 rows of 5 days
// @Tags         contributions
// @Produce      json
// @Success      200  {object}  dtos.ContributionGrid
// @Failure      401,403,502  {object}  map[string]string
// @Router       /api/contributions [get]
func (h *APIHandler) GetContributions(w http.ResponseWriter, r *http.Request) {
	grid, err := h.dashboard.ContributionGrid(r.Context(), middleware.UserFromContext(r.Context()))
	if err != nil {
		h.fail(w, r, err, MsgContribUnavailable)
		return
	}

	response.SuccessResponse(w, http.StatusOK, dtos.NewContributionGrid(grid))
}

func (h *APIHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	response.SuccessResponse(w, http.StatusOK, "ok")
}
