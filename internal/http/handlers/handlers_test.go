package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/just-nibble/git-dashboard/internal/domain"
	"github.com/just-nibble/git-dashboard/internal/http/dtos"
	"github.com/just-nibble/git-dashboard/internal/http/middleware"
	"github.com/just-nibble/git-dashboard/internal/usecases"
	"github.com/just-nibble/git-dashboard/internal/usecases/mocks"
	"github.com/just-nibble/git-dashboard/internal/view"
	"github.com/just-nibble/git-dashboard/pkg/errcodes"
)

func commits(n int) []domain.Commit {
	base := time.Date(2024, 8, 20, 12, 0, 0, 0, time.UTC)
	out := make([]domain.Commit, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, domain.Commit{
			Hash:       fmt.Sprintf("%040d", i),
			Repository: "octocat/hello",
			AuthorName: "Jane Doe",
			AuthorDate: base.Add(-time.Duration(i) * time.Hour),
			Message:    fmt.Sprintf("commit %d\n\nbody", i),
			URL:        fmt.Sprintf("https://github.com/octocat/hello/commit/%d", i),
		})
	}
	return out
}

func asUser(req *http.Request, userID string) *http.Request {
	return req.WithContext(middleware.WithUser(req.Context(), userID))
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestGetCommitsClampsPage(t *testing.T) {
	uc := new(mocks.DashboardUsecase)
	uc.On("RecentCommits", mock.Anything, "user_1").Return(commits(12), nil)
	h := NewAPIHandler(uc, zerolog.Nop())

	rec := httptest.NewRecorder()
	h.GetCommits(rec, asUser(httptest.NewRequest(http.MethodGet, "/api/commits?page=9", nil), "user_1"))

	require.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "success", env.Status)

	var body dtos.MultiCommitsResponse
	require.NoError(t, json.Unmarshal(env.Data, &body))
	assert.Equal(t, 3, body.PageInfo.Page)
	assert.Equal(t, 3, body.PageInfo.TotalPages)
	assert.Equal(t, 12, body.PageInfo.TotalCount)
	assert.False(t, body.PageInfo.HasNext)
	assert.True(t, body.PageInfo.HasPrevious)
	require.Len(t, body.Commits, 2)
	assert.Equal(t, "commit 10", body.Commits[0].Message)
}

func TestGetCommitsDefaultsToFirstPage(t *testing.T) {
	uc := new(mocks.DashboardUsecase)
	uc.On("RecentCommits", mock.Anything, "user_1").Return(commits(7), nil)
	h := NewAPIHandler(uc, zerolog.Nop())

	rec := httptest.NewRecorder()
	h.GetCommits(rec, asUser(httptest.NewRequest(http.MethodGet, "/api/commits?page=abc", nil), "user_1"))

	var body dtos.MultiCommitsResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &body))
	assert.Equal(t, 1, body.PageInfo.Page)
	assert.Len(t, body.Commits, view.PageSize)
	assert.Equal(t, "0000000", body.Commits[0].ShortSHA)
}

func TestAPIErrorStates(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"unauthenticated", errcodes.ErrUnauthenticated, http.StatusUnauthorized, MsgSignedOut},
		{"no token", errcodes.ErrTokenNotFound, http.StatusForbidden, MsgReconnect},
		{"upstream", fmt.Errorf("%w: status 500", errcodes.ErrUpstreamUnavailable), http.StatusBadGateway, MsgCommitsUnavailable},
		{"store down", errors.New("dial tcp: connection refused"), http.StatusInternalServerError, MsgInternal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := new(mocks.DashboardUsecase)
			uc.On("RecentCommits", mock.Anything, mock.Anything).Return(nil, tc.err)
			h := NewAPIHandler(uc, zerolog.Nop())

			rec := httptest.NewRecorder()
			h.GetCommits(rec, httptest.NewRequest(http.MethodGet, "/api/commits", nil))

			assert.Equal(t, tc.code, rec.Code)
			env := decode(t, rec)
			assert.Equal(t, "error", env.Status)
			assert.Equal(t, tc.message, env.Message)
		})
	}
}

func TestGetLatestRepositories(t *testing.T) {
	uc := new(mocks.DashboardUsecase)
	uc.On("LatestRepositories", mock.Anything, "user_1", 3).Return([]domain.RepositoryRef{
		{FullName: "octocat/a", Name: "a"},
		{FullName: "octocat/b", Name: "b"},
	}, nil).Once()
	h := NewAPIHandler(uc, zerolog.Nop())

	rec := httptest.NewRecorder()
	h.GetLatestRepositories(rec, asUser(httptest.NewRequest(http.MethodGet, "/api/repositories/latest?n=-2", nil), "user_1"))

	require.Equal(t, http.StatusOK, rec.Code)
	var repos []dtos.Repository
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &repos))
	require.Len(t, repos, 2)
	assert.Equal(t, "octocat/a", repos[0].FullName)
	uc.AssertExpectations(t)
}

func TestGetContributions(t *testing.T) {
	day := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)
	grid := [][]view.ContributionCell{{{Count: 2, Date: day, Color: "#40c463", Title: "2 contributions on August 01, 2024"}}}

	uc := new(mocks.DashboardUsecase)
	uc.On("ContributionGrid", mock.Anything, "user_1").Return(grid, nil)
	h := NewAPIHandler(uc, zerolog.Nop())

	rec := httptest.NewRecorder()
	h.GetContributions(rec, asUser(httptest.NewRequest(http.MethodGet, "/api/contributions", nil), "user_1"))

	require.Equal(t, http.StatusOK, rec.Code)
	var body dtos.ContributionGrid
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &body))
	assert.Equal(t, 6, body.Rows)
	assert.Equal(t, 5, body.Columns)
	assert.Equal(t, "2024-08-01", body.Cells[0][0].Date)
}

func TestGetContributionsUnavailable(t *testing.T) {
	uc := new(mocks.DashboardUsecase)
	uc.On("ContributionGrid", mock.Anything, "user_1").Return(nil, errcodes.ErrUpstreamUnavailable)
	h := NewAPIHandler(uc, zerolog.Nop())

	rec := httptest.NewRecorder()
	h.GetContributions(rec, asUser(httptest.NewRequest(http.MethodGet, "/api/contributions", nil), "user_1"))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, MsgContribUnavailable, decode(t, rec).Message)
}

func TestSignInRedirectsSignedInUser(t *testing.T) {
	h := NewDashboardHandler(new(mocks.DashboardUsecase), "/sign-in", zerolog.Nop())

	rec := httptest.NewRecorder()
	h.SignIn(rec, asUser(httptest.NewRequest(http.MethodGet, "/", nil), "user_1"))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))

	rec = httptest.NewRecorder()
	h.SignIn(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sign in with GitHub")
	assert.Contains(t, rec.Body.String(), `href="/sign-in"`)
}

func TestDashboardRequiresSignIn(t *testing.T) {
	uc := new(mocks.DashboardUsecase)
	h := NewDashboardHandler(uc, "/sign-in", zerolog.Nop())

	rec := httptest.NewRecorder()
	h.Dashboard(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), MsgSignedOut)
	uc.AssertNotCalled(t, "Load", mock.Anything, mock.Anything, mock.Anything)
}

func TestDashboardReconnect(t *testing.T) {
	uc := new(mocks.DashboardUsecase)
	uc.On("Load", mock.Anything, "user_1", 1).Return(&usecases.Dashboard{
		UserID:        "user_1",
		Repositories:  usecases.RepositoriesSection{State: usecases.StateReconnect},
		Commits:       usecases.CommitsSection{State: usecases.StateReconnect, Pager: view.NewCommitPager(nil)},
		Contributions: usecases.ContributionsSection{State: usecases.StateReconnect},
	}, nil)
	h := NewDashboardHandler(uc, "/sign-in", zerolog.Nop())

	rec := httptest.NewRecorder()
	h.Dashboard(rec, asUser(httptest.NewRequest(http.MethodGet, "/dashboard", nil), "user_1"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "GitHub token not found. Please reconnect your GitHub account.")
	assert.NotContains(t, rec.Body.String(), "View Commit")
}

func TestDashboardRendersSections(t *testing.T) {
	pager := view.NewCommitPager(commits(12))
	pager.Goto(2)

	uc := new(mocks.DashboardUsecase)
	uc.On("Load", mock.Anything, "user_1", 2).Return(&usecases.Dashboard{
		UserID: "user_1",
		Repositories: usecases.RepositoriesSection{
			State:        usecases.StateOK,
			Repositories: []domain.RepositoryRef{{FullName: "octocat/hello", Name: "hello"}},
		},
		Commits:       usecases.CommitsSection{State: usecases.StateOK, Pager: pager},
		Contributions: usecases.ContributionsSection{State: usecases.StateUnavailable},
	}, nil)
	h := NewDashboardHandler(uc, "/sign-in", zerolog.Nop())

	rec := httptest.NewRecorder()
	h.Dashboard(rec, asUser(httptest.NewRequest(http.MethodGet, "/dashboard?page=2", nil), "user_1"))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "hello")
	assert.Contains(t, body, "Page 2 of 3")
	assert.Contains(t, body, `href="?page=1"`)
	assert.Contains(t, body, `href="?page=3"`)
	assert.Contains(t, body, "commit 5")
	assert.NotContains(t, body, "commit 4<")
	assert.Contains(t, body, MsgContribUnavailable)
}

func TestDashboardEmptyCommits(t *testing.T) {
	uc := new(mocks.DashboardUsecase)
	uc.On("Load", mock.Anything, "user_1", 1).Return(&usecases.Dashboard{
		UserID:        "user_1",
		Commits:       usecases.CommitsSection{State: usecases.StateOK, Pager: view.NewCommitPager([]domain.Commit{})},
		Contributions: usecases.ContributionsSection{State: usecases.StateOK},
	}, nil)
	h := NewDashboardHandler(uc, "/sign-in", zerolog.Nop())

	rec := httptest.NewRecorder()
	h.Dashboard(rec, asUser(httptest.NewRequest(http.MethodGet, "/dashboard", nil), "user_1"))

	body := rec.Body.String()
	assert.Contains(t, body, view.EmptyCommitsText)
	assert.Contains(t, body, MsgNoRepositories)
	assert.NotContains(t, body, "Page 1 of 1")
}

func TestDashboardLoadFailure(t *testing.T) {
	uc := new(mocks.DashboardUsecase)
	uc.On("Load", mock.Anything, "user_1", 1).Return(nil, errors.New("connection refused"))
	h := NewDashboardHandler(uc, "/sign-in", zerolog.Nop())

	rec := httptest.NewRecorder()
	h.Dashboard(rec, asUser(httptest.NewRequest(http.MethodGet, "/dashboard", nil), "user_1"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
