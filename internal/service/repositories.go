package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tracker-tv/github-branch-compliance/internal/github"
	"github.com/tracker-tv/github-branch-compliance/models"
)

type RepositoryService interface {
	ListAll(ctx context.Context) ([]models.Repository, error)
}

type repositoriesService struct {
	gh     github.Client
	filter string
	log    *slog.Logger
}

// NewRepositoriesService returns a service listing the repositories to
// audit. filter is an optional doublestar glob over repository names; an
// empty filter audits everything.
func NewRepositoriesService(gh github.Client, filter string, log *slog.Logger) (RepositoryService, error) {
	if filter != "" && !doublestar.ValidatePattern(filter) {
		return nil, fmt.Errorf("invalid repository filter pattern %q", filter)
	}
	return &repositoriesService{gh: gh, filter: filter, log: log}, nil
}

// ListAll returns the public, non-archived repositories in listing order.
// A listing failure mid-pagination is demoted to a warning and the pages
// fetched so far are audited; the run never aborts on it.
func (s *repositoriesService) ListAll(ctx context.Context) ([]models.Repository, error) {
	repos, err := s.gh.ListPublicRepos(ctx)
	if err != nil {
		s.log.Warn("repository listing stopped early", "error", err)
	}

	result := make([]models.Repository, 0, len(repos))

	for _, repo := range repos {
		if repo == nil || repo.GetArchived() {
			continue
		}
		if s.filter != "" && !doublestar.MatchUnvalidated(s.filter, repo.GetName()) {
			continue
		}

		result = append(result, models.Repository{
			Name:          repo.GetName(),
			FullName:      repo.GetFullName(),
			DefaultBranch: repo.GetDefaultBranch(),
			Private:       repo.GetPrivate(),
			Archived:      repo.GetArchived(),
		})
	}

	return result, nil
}
