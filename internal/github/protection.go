package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	gh "github.com/google/go-github/v68/github"
	"github.com/tracker-tv/github-branch-compliance/models"
)

// BranchRules fetches the ruleset rules in effect on a branch. The typed
// go-github surface regroups rules by category, which loses the rule-type
// strings the audit keys on, so this goes through the raw request path.
// A 404 means no rules and is not an error.
func (c *client) BranchRules(ctx context.Context, repo, branch string) ([]models.BranchRule, error) {
	u := fmt.Sprintf("repos/%s/%s/rules/branches/%s", c.org, repo, branch)

	req, err := c.github.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	c.log.Debug("fetching branch rules", "repo", repo, "branch", branch)

	var rules []models.BranchRule
	if _, err := c.github.Do(ctx, req, &rules); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return rules, nil
}

// BranchProtection fetches the classic protection object for a branch.
// An unprotected branch yields (nil, nil).
func (c *client) BranchProtection(ctx context.Context, repo, branch string) (*gh.Protection, error) {
	c.log.Debug("fetching classic protection", "repo", repo, "branch", branch)

	protection, _, err := c.repositories.GetBranchProtection(ctx, c.org, repo, branch)
	if err != nil {
		if errors.Is(err, gh.ErrBranchNotProtected) || isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return protection, nil
}

func isNotFound(err error) bool {
	var ghErr *gh.ErrorResponse
	return errors.As(err, &ghErr) && ghErr.Response != nil && ghErr.Response.StatusCode == http.StatusNotFound
}
