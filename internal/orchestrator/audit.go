package orchestrator

import (
	"context"
	"log/slog"

	"github.com/tracker-tv/github-branch-compliance/internal/notify"
	"github.com/tracker-tv/github-branch-compliance/internal/report"
	"github.com/tracker-tv/github-branch-compliance/internal/service"
	"github.com/tracker-tv/github-branch-compliance/models"
)

// Auditor drives one audit run: list, check each repository in order,
// write the artifact, notify.
type Auditor struct {
	repos      service.RepositoryService
	checker    service.ComplianceService
	writer     report.Writer
	notifier   notify.Notifier
	reportPath string
	log        *slog.Logger
}

func NewAuditor(repos service.RepositoryService, checker service.ComplianceService, writer report.Writer, notifier notify.Notifier, reportPath string, log *slog.Logger) *Auditor {
	return &Auditor{
		repos:      repos,
		checker:    checker,
		writer:     writer,
		notifier:   notifier,
		reportPath: reportPath,
		log:        log,
	}
}

// Run never fails: per-repository fetch problems, a report write failure,
// and a notification failure all degrade to warnings. The result still
// covers every repository that was listed.
func (a *Auditor) Run(ctx context.Context) models.AuditResult {
	var result models.AuditResult

	repos, err := a.repos.ListAll(ctx)
	if err != nil {
		a.log.Warn("listing repositories", "error", err)
	}

	for _, repo := range repos {
		a.log.Debug("checking repository", "repo", repo.Name, "branch", repo.DefaultBranch)

		rec := a.checker.Check(ctx, repo)
		result.Records = append(result.Records, rec)

		if rec.Compliant() {
			result.Compliant = append(result.Compliant, rec.Repository)
		} else {
			result.NonCompliant = append(result.NonCompliant, models.NonCompliant{
				Repository: rec.Repository,
				Issues:     rec.Issues,
			})
		}
	}

	if err := a.writer.Write(result.Records); err != nil {
		a.log.Warn("writing report", "path", a.reportPath, "error", err)
	}

	if err := a.notifier.Notify(ctx, a.reportPath); err != nil {
		a.log.Warn("sending notification", "error", err)
	}

	a.log.Info("audit complete",
		"repositories", len(result.Records),
		"compliant", len(result.Compliant),
		"non_compliant", len(result.NonCompliant),
	)

	return result
}
