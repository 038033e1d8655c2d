package github

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	gh "github.com/google/go-github/v68/github"
	"github.com/tracker-tv/github-branch-compliance/models"
)

// Client is the surface of the GitHub API this tool consumes.
type Client interface {
	ListPublicRepos(ctx context.Context) ([]*gh.Repository, error)
	BranchRules(ctx context.Context, repo, branch string) ([]models.BranchRule, error)
	BranchProtection(ctx context.Context, repo, branch string) (*gh.Protection, error)
}

// RepositoriesAdapter covers the go-github repository calls we make, so
// tests can substitute them.
type RepositoriesAdapter interface {
	ListByUser(ctx context.Context, user string, opts *gh.RepositoryListByUserOptions) ([]*gh.Repository, *gh.Response, error)
	GetBranchProtection(ctx context.Context, owner, repo, branch string) (*gh.Protection, *gh.Response, error)
}

type client struct {
	github       *gh.Client
	repositories RepositoriesAdapter
	org          string
	log          *slog.Logger
}

type authTransport struct {
	token string
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("Authorization", "Bearer "+t.token)
	return http.DefaultTransport.RoundTrip(req)
}

// New builds a Client for the given account. An empty token is allowed:
// public repository data is readable unauthenticated, at lower rate limits.
func New(token, org string, log *slog.Logger) Client {
	httpClient := &http.Client{Timeout: 30 * time.Second}
	if token != "" {
		httpClient.Transport = &authTransport{token: token}
	}
	ghClient := gh.NewClient(httpClient)
	return &client{
		github:       ghClient,
		repositories: ghClient.Repositories,
		org:          org,
		log:          log,
	}
}
