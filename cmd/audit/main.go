package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/tracker-tv/github-branch-compliance/internal/config"
	"github.com/tracker-tv/github-branch-compliance/internal/github"
	"github.com/tracker-tv/github-branch-compliance/internal/notify"
	"github.com/tracker-tv/github-branch-compliance/internal/orchestrator"
	"github.com/tracker-tv/github-branch-compliance/internal/report"
	"github.com/tracker-tv/github-branch-compliance/internal/service"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		output string
		debug  bool
	)

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Audit branch protection across the organization's public repositories",
		Long: `Audits every public, non-archived repository of the configured
organization: branch rulesets first, the classic protection object as a
fallback. Results land in a CSV report and, when Slack credentials are
configured, in a channel notification. The audit itself never fails the
process; only an invalid configuration does.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if debug {
				cfg.Debug = true
			}
			return run(cmd.Context(), cfg, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "results.csv", "path of the CSV report")
	cmd.Flags().BoolVar(&debug, "debug", false, "verbose per-request logging")

	return cmd
}

func run(ctx context.Context, cfg *config.Config, output string) error {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ghClient := github.New(cfg.GithubPAT, cfg.Org, logger)

	repoSvc, err := service.NewRepositoriesService(ghClient, cfg.RepoFilter, logger)
	if err != nil {
		return err
	}
	checker := service.NewComplianceService(ghClient, logger)

	writer := report.NewCSVWriter(output)
	notifier := notify.New(cfg.SlackBotToken, cfg.SlackChannel, cfg.SlackWebhookURL, logger)

	auditor := orchestrator.NewAuditor(repoSvc, checker, writer, notifier, output, logger)
	result := auditor.Run(ctx)

	for _, nc := range result.NonCompliant {
		fmt.Printf("%s:\n", nc.Repository)
		for _, issue := range nc.Issues {
			fmt.Printf("  - %s\n", issue)
		}
	}
	fmt.Printf("%d repositories audited, %d compliant, %d non-compliant\n",
		len(result.Records), len(result.Compliant), len(result.NonCompliant))

	return nil
}
