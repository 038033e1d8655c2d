package github

import (
	"context"

	gh "github.com/google/go-github/v68/github"
)

const reposPerPage = 100

// ListPublicRepos pages through the account's public repositories in
// listing order. A failed page fetch stops pagination; the pages fetched
// so far are returned alongside the error so the audit can proceed on
// partial data.
func (c *client) ListPublicRepos(ctx context.Context) ([]*gh.Repository, error) {
	var allRepos []*gh.Repository
	opts := &gh.RepositoryListByUserOptions{
		Type: "public",
		ListOptions: gh.ListOptions{
			PerPage: reposPerPage,
		},
	}

	for {
		c.log.Debug("listing repositories", "org", c.org, "page", opts.Page)

		repos, resp, err := c.repositories.ListByUser(ctx, c.org, opts)
		if err != nil {
			return allRepos, err
		}

		allRepos = append(allRepos, repos...)

		if resp == nil || resp.NextPage == 0 || len(repos) < reposPerPage {
			break
		}
		opts.Page = resp.NextPage
	}

	return allRepos, nil
}
