package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v74/github"

	"github.com/just-nibble/git-dashboard/internal/domain"
	"github.com/just-nibble/git-dashboard/internal/metrics"
	"github.com/just-nibble/git-dashboard/pkg/git"
	"github.com/just-nibble/git-dashboard/pkg/validator"
)

const (
	DefaultBaseURL   = "https://api.github.com/"
	DefaultUserAgent = "git-dashboard"
	DefaultTimeout   = 10 * time.Second
)

// Config carries everything a GitHubClient needs besides the token
type Config struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	Transport http.RoundTripper
}

// GitHubClient talks to GitHub's REST and GraphQL APIs on behalf of one user
type GitHubClient struct {
	gh         *github.Client
	graphQLURL string
}

// withDefaults fills the zero fields of cfg
func (cfg Config) withDefaults() Config {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	return cfg
}

// parseBaseURL parses the REST base URL, forcing the trailing slash go-github requires
func parseBaseURL(raw string) (*url.URL, error) {
	baseURL, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid github base url %q: %w", raw, err)
	}
	if !strings.HasSuffix(baseURL.Path, "/") {
		baseURL.Path += "/"
	}
	return baseURL, nil
}

// graphQLEndpoint derives the GraphQL endpoint from the REST base URL.
// GitHub Enterprise serves REST under /api/v3/ and GraphQL at /api/graphql;
// api.github.com-shaped hosts serve GraphQL at <base>/graphql.
func graphQLEndpoint(baseURL *url.URL) string {
	u := *baseURL
	if strings.HasSuffix(u.Path, "/api/v3/") {
		u.Path = strings.TrimSuffix(u.Path, "v3/") + "graphql"
	} else {
		u.Path += "graphql"
	}
	return u.String()
}

func newGitHubClient(cfg Config, baseURL *url.URL, token string) *GitHubClient {
	gh := github.NewClient(&http.Client{Timeout: cfg.Timeout, Transport: cfg.Transport}).WithAuthToken(token)
	base := *baseURL
	gh.BaseURL = &base
	gh.UserAgent = cfg.UserAgent

	return &GitHubClient{gh: gh, graphQLURL: graphQLEndpoint(baseURL)}
}

// NewGitHubClient creates a GitHubClient authenticated with the given bearer token
func NewGitHubClient(cfg Config, token string) (*GitHubClient, error) {
	cfg = cfg.withDefaults()
	baseURL, err := parseBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}
	return newGitHubClient(cfg, baseURL, token), nil
}

// NewClientFactory returns a factory binding cfg to per-user tokens.
// The base URL is parsed once here rather than for every request.
func NewClientFactory(cfg Config) (git.ClientFactory, error) {
	cfg = cfg.withDefaults()
	baseURL, err := parseBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	return func(token string) git.GitClient {
		return newGitHubClient(cfg, baseURL, token)
	}, nil
}

// ListRepositories fetches a single page of the authenticated user's repositories,
// most recently pushed first
func (c *GitHubClient) ListRepositories(ctx context.Context, perPage int) ([]domain.RepositoryRef, error) {
	repos, _, err := c.gh.Repositories.ListByAuthenticatedUser(ctx, &github.RepositoryListByAuthenticatedUserOptions{
		Sort:        "pushed",
		ListOptions: github.ListOptions{PerPage: perPage},
	})
	metrics.RecordUpstream("list_repositories", err)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch repositories: %w", err)
	}

	refs := make([]domain.RepositoryRef, 0, len(repos))
	for _, r := range repos {
		refs = append(refs, domain.RepositoryRef{
			FullName: r.GetFullName(),
			Name:     r.GetName(),
			PushedAt: r.GetPushedAt().Time,
		})
	}

	return refs, nil
}

// ListCommitsSince fetches the commits of fullName authored at or after since
func (c *GitHubClient) ListCommitsSince(ctx context.Context, fullName string, since time.Time) ([]domain.Commit, error) {
	owner, name, err := validator.SplitRepository(fullName)
	if err != nil {
		return nil, err
	}

	commits, _, err := c.gh.Repositories.ListCommits(ctx, owner, name, &github.CommitsListOptions{
		Since: since,
	})
	metrics.RecordUpstream("list_commits", err)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch commits for %s: %w", fullName, err)
	}

	result := make([]domain.Commit, 0, len(commits))
	for _, rc := range commits {
		author := rc.GetCommit().GetAuthor()
		result = append(result, domain.Commit{
			Hash:       rc.GetSHA(),
			Repository: fullName,
			AuthorName: author.GetName(),
			AuthorDate: author.GetDate().Time,
			Message:    rc.GetCommit().GetMessage(),
			URL:        rc.GetHTMLURL(),
		})
	}

	return result, nil
}
