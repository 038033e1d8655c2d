package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	gh "github.com/google/go-github/v68/github"
	"github.com/tracker-tv/github-branch-compliance/internal/github"
	"github.com/tracker-tv/github-branch-compliance/models"
)

// expectedApprovals is the approval count the audit holds every default
// branch to.
const expectedApprovals = 2

const (
	issuePullRequestNotRequired = "Require pull request before merging not enabled"
	issueApprovalsRuleMissing   = "Required approving reviews rule missing"
	issueApprovalCountMissing   = "Approvals rule present but count missing"
	issueRestrictDeletions      = "Restrict deletions rule not enabled"
	issueBlockForcePushes       = "Block force pushes rule not enabled"
)

// Ruleset rule types the audit keys on.
const (
	rulePullRequest    = "pull_request"
	ruleApprovalCount  = "required_approving_review_count"
	ruleRestrictDelete = "restrict_deletions"
	ruleNonFastForward = "non_fast_forward"
)

type ComplianceService interface {
	Check(ctx context.Context, repo models.Repository) models.ComplianceRecord
}

type complianceService struct {
	gh  github.Client
	log *slog.Logger
}

func NewComplianceService(gh github.Client, log *slog.Logger) ComplianceService {
	return &complianceService{gh: gh, log: log}
}

// Check resolves one repository's default-branch protection into a single
// normalized record. Resolution has three branches: a non-empty ruleset
// wins, then the classic protection object, then nothing. Fetch failures
// are warnings and count as "source absent".
func (s *complianceService) Check(ctx context.Context, repo models.Repository) models.ComplianceRecord {
	rec := models.ComplianceRecord{
		Repository:    repo.Name,
		DefaultBranch: repo.DefaultBranch,
		Source:        models.SourceNone,
	}

	rules, err := s.gh.BranchRules(ctx, repo.Name, repo.DefaultBranch)
	if err != nil {
		if isMalformed(err) {
			s.log.Warn("malformed rules response", "repo", repo.Name, "branch", repo.DefaultBranch, "error", err)
		} else {
			s.log.Warn("fetching branch rules", "repo", repo.Name, "branch", repo.DefaultBranch, "error", err)
		}
		rules = nil
	}
	if len(rules) > 0 {
		s.applyRules(&rec, rules)
		return rec
	}

	protection, err := s.gh.BranchProtection(ctx, repo.Name, repo.DefaultBranch)
	if err != nil {
		s.log.Warn("fetching classic protection", "repo", repo.Name, "branch", repo.DefaultBranch, "error", err)
		protection = nil
	}
	if protection != nil {
		s.applyClassic(&rec, protection)
		return rec
	}

	rec.Issues = append(rec.Issues, fmt.Sprintf("No branch protection found on '%s'", repo.DefaultBranch))
	return rec
}

func (s *complianceService) applyRules(rec *models.ComplianceRecord, rules []models.BranchRule) {
	rec.ProtectionEnabled = true
	rec.Source = models.SourceRuleset

	byType := make(map[string]models.BranchRule, len(rules))
	for _, rule := range rules {
		byType[rule.Type] = rule
	}

	if _, ok := byType[rulePullRequest]; ok {
		rec.PullRequestRequired = true
	} else {
		rec.Issues = append(rec.Issues, issuePullRequestNotRequired)
	}

	if rule, ok := byType[ruleApprovalCount]; ok {
		if count, ok := approvalCount(rule.Parameters); ok {
			rec.RequiredApprovals = &count
			if count != expectedApprovals {
				rec.Issues = append(rec.Issues, approvalMismatch(count))
			}
		} else {
			rec.Issues = append(rec.Issues, issueApprovalCountMissing)
		}
	} else {
		rec.Issues = append(rec.Issues, issueApprovalsRuleMissing)
	}

	if _, ok := byType[ruleRestrictDelete]; ok {
		rec.RestrictDeletions = true
	} else {
		rec.Issues = append(rec.Issues, issueRestrictDeletions)
	}

	if _, ok := byType[ruleNonFastForward]; ok {
		rec.BlockForcePushes = true
	} else {
		rec.Issues = append(rec.Issues, issueBlockForcePushes)
	}
}

func (s *complianceService) applyClassic(rec *models.ComplianceRecord, protection *gh.Protection) {
	rec.ProtectionEnabled = true
	rec.Source = models.SourceClassic

	if reviews := protection.GetRequiredPullRequestReviews(); reviews != nil {
		rec.PullRequestRequired = true
		count := reviews.RequiredApprovingReviewCount
		rec.RequiredApprovals = &count
		if count != expectedApprovals {
			rec.Issues = append(rec.Issues, approvalMismatch(count))
		}
	} else {
		rec.Issues = append(rec.Issues, issuePullRequestNotRequired)
	}

	// TODO: "restrictions" describes who may push, not whether deletion is
	// blocked. Kept as the deletion signal pending product-owner review.
	if protection.GetRestrictions() != nil {
		rec.RestrictDeletions = true
	}

	if allow := protection.GetAllowForcePushes(); allow != nil && !allow.Enabled {
		rec.BlockForcePushes = true
	}
}

// approvalCount extracts the approval count from rule parameters, trying
// both key names the API has used for it. A zero value does not count as
// extracted: the lookup falls through to the next key, and a rule whose
// keys are all absent or zero reports no count at all.
func approvalCount(params json.RawMessage) (int, bool) {
	if len(params) == 0 {
		return 0, false
	}

	var p struct {
		RequiredApprovingReviewCount *int `json:"required_approving_review_count"`
		Count                        *int `json:"count"`
	}
	if err := json.Unmarshal(params, &p); err != nil {
		return 0, false
	}

	switch {
	case p.RequiredApprovingReviewCount != nil && *p.RequiredApprovingReviewCount != 0:
		return *p.RequiredApprovingReviewCount, true
	case p.Count != nil && *p.Count != 0:
		return *p.Count, true
	}
	return 0, false
}

func approvalMismatch(count int) string {
	return fmt.Sprintf("Required approvals = %d, expected %d", count, expectedApprovals)
}

func isMalformed(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) || errors.As(err, &typeErr)
}
