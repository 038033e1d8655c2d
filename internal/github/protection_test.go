package github

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	gh "github.com/google/go-github/v68/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tracker-tv/github-branch-compliance/internal/github/mocks"
)

func rulesClient(t *testing.T, handler http.HandlerFunc) *client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	ghClient := gh.NewClient(nil)
	base, err := url.Parse(srv.URL + "/")
	assert.NoError(t, err)
	ghClient.BaseURL = base

	return &client{github: ghClient, org: "tracker-tv", log: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func TestBranchRules(t *testing.T) {
	c := rulesClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/tracker-tv/repo-1/rules/branches/main", r.URL.Path)
		fmt.Fprint(w, `[
			{"type":"pull_request","parameters":{"required_approving_review_count":2}},
			{"type":"non_fast_forward"}
		]`)
	})

	rules, err := c.BranchRules(context.Background(), "repo-1", "main")

	assert.NoError(t, err)
	assert.Len(t, rules, 2)
	assert.Equal(t, "pull_request", rules[0].Type)
	assert.JSONEq(t, `{"required_approving_review_count":2}`, string(rules[0].Parameters))
	assert.Equal(t, "non_fast_forward", rules[1].Type)
	assert.Empty(t, rules[1].Parameters)
}

func TestBranchRules_NotFound(t *testing.T) {
	c := rulesClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message":"Not Found"}`)
	})

	rules, err := c.BranchRules(context.Background(), "repo-1", "main")

	assert.NoError(t, err)
	assert.Nil(t, rules)
}

func TestBranchRules_Malformed(t *testing.T) {
	c := rulesClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"not":"an array"}`)
	})

	rules, err := c.BranchRules(context.Background(), "repo-1", "main")

	assert.Error(t, err)
	assert.Nil(t, rules)
}

func TestBranchRules_ServerError(t *testing.T) {
	c := rulesClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	rules, err := c.BranchRules(context.Background(), "repo-1", "main")

	assert.Error(t, err)
	assert.Nil(t, rules)
}

func TestBranchProtection(t *testing.T) {
	ctx := context.Background()
	reposSvc := mocks.NewMockRepositoriesAdapter(t)

	protection := &gh.Protection{
		RequiredPullRequestReviews: &gh.PullRequestReviewsEnforcement{
			RequiredApprovingReviewCount: 2,
		},
	}

	reposSvc.
		EXPECT().
		GetBranchProtection(mock.Anything, "tracker-tv", "repo-1", "main").
		Once().
		Return(protection, &gh.Response{}, nil)

	c := &client{repositories: reposSvc, org: "tracker-tv", log: slog.New(slog.NewTextHandler(io.Discard, nil))}

	got, err := c.BranchProtection(ctx, "repo-1", "main")

	assert.NoError(t, err)
	assert.Equal(t, protection, got)
}

func TestBranchProtection_NotProtected(t *testing.T) {
	ctx := context.Background()
	reposSvc := mocks.NewMockRepositoriesAdapter(t)

	reposSvc.
		EXPECT().
		GetBranchProtection(mock.Anything, "tracker-tv", "repo-1", "main").
		Once().
		Return(nil, nil, gh.ErrBranchNotProtected)

	c := &client{repositories: reposSvc, org: "tracker-tv", log: slog.New(slog.NewTextHandler(io.Discard, nil))}

	got, err := c.BranchProtection(ctx, "repo-1", "main")

	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestBranchProtection_NotFound(t *testing.T) {
	ctx := context.Background()
	reposSvc := mocks.NewMockRepositoriesAdapter(t)

	notFound := &gh.ErrorResponse{Response: &http.Response{StatusCode: http.StatusNotFound}}

	reposSvc.
		EXPECT().
		GetBranchProtection(mock.Anything, "tracker-tv", "repo-1", "main").
		Once().
		Return(nil, nil, notFound)

	c := &client{repositories: reposSvc, org: "tracker-tv", log: slog.New(slog.NewTextHandler(io.Discard, nil))}

	got, err := c.BranchProtection(ctx, "repo-1", "main")

	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestBranchProtection_Error(t *testing.T) {
	ctx := context.Background()
	reposSvc := mocks.NewMockRepositoriesAdapter(t)

	reposSvc.
		EXPECT().
		GetBranchProtection(mock.Anything, "tracker-tv", "repo-1", "main").
		Once().
		Return(nil, nil, errors.New("boom"))

	c := &client{repositories: reposSvc, org: "tracker-tv", log: slog.New(slog.NewTextHandler(io.Discard, nil))}

	got, err := c.BranchProtection(ctx, "repo-1", "main")

	assert.Error(t, err)
	assert.Nil(t, got)
}
