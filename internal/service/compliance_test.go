package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	gh "github.com/google/go-github/v68/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	githubMocks "github.com/tracker-tv/github-branch-compliance/internal/github/mocks"
	"github.com/tracker-tv/github-branch-compliance/models"
)

var testRepo = models.Repository{Name: "repo-1", FullName: "tracker-tv/repo-1", DefaultBranch: "main"}

func fullyCompliantRules() []models.BranchRule {
	return []models.BranchRule{
		{Type: "pull_request"},
		{Type: "required_approving_review_count", Parameters: json.RawMessage(`{"required_approving_review_count":2}`)},
		{Type: "restrict_deletions"},
		{Type: "non_fast_forward"},
	}
}

func TestCheck_RulesetCompliant(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)

	mockClient.
		EXPECT().
		BranchRules(mock.Anything, "repo-1", "main").
		Once().
		Return(fullyCompliantRules(), nil)

	svc := NewComplianceService(mockClient, discardLogger())
	rec := svc.Check(ctx, testRepo)

	assert.Equal(t, "repo-1", rec.Repository)
	assert.Equal(t, "main", rec.DefaultBranch)
	assert.Equal(t, models.SourceRuleset, rec.Source)
	assert.True(t, rec.ProtectionEnabled)
	assert.True(t, rec.PullRequestRequired)
	assert.True(t, rec.RestrictDeletions)
	assert.True(t, rec.BlockForcePushes)
	if assert.NotNil(t, rec.RequiredApprovals) {
		assert.Equal(t, 2, *rec.RequiredApprovals)
	}
	assert.Empty(t, rec.Issues)
	assert.True(t, rec.Compliant())
}

func TestCheck_RulesetApprovalMismatch(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)

	rules := []models.BranchRule{
		{Type: "pull_request"},
		{Type: "required_approving_review_count", Parameters: json.RawMessage(`{"required_approving_review_count":1}`)},
		{Type: "restrict_deletions"},
		{Type: "non_fast_forward"},
	}

	mockClient.
		EXPECT().
		BranchRules(mock.Anything, "repo-1", "main").
		Once().
		Return(rules, nil)

	svc := NewComplianceService(mockClient, discardLogger())
	rec := svc.Check(ctx, testRepo)

	if assert.NotNil(t, rec.RequiredApprovals) {
		assert.Equal(t, 1, *rec.RequiredApprovals)
	}
	assert.Equal(t, []string{"Required approvals = 1, expected 2"}, rec.Issues)
	assert.False(t, rec.Compliant())
}

func TestCheck_RulesetApprovalCountKeyVariant(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)

	rules := []models.BranchRule{
		{Type: "pull_request"},
		{Type: "required_approving_review_count", Parameters: json.RawMessage(`{"count":2}`)},
		{Type: "restrict_deletions"},
		{Type: "non_fast_forward"},
	}

	mockClient.
		EXPECT().
		BranchRules(mock.Anything, "repo-1", "main").
		Once().
		Return(rules, nil)

	svc := NewComplianceService(mockClient, discardLogger())
	rec := svc.Check(ctx, testRepo)

	if assert.NotNil(t, rec.RequiredApprovals) {
		assert.Equal(t, 2, *rec.RequiredApprovals)
	}
	assert.Empty(t, rec.Issues)
}

func TestCheck_RulesetZeroApprovalCount(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)

	// A zero count is treated as no count, not as a mismatch against 2.
	rules := []models.BranchRule{
		{Type: "pull_request"},
		{Type: "required_approving_review_count", Parameters: json.RawMessage(`{"required_approving_review_count":0}`)},
		{Type: "restrict_deletions"},
		{Type: "non_fast_forward"},
	}

	mockClient.
		EXPECT().
		BranchRules(mock.Anything, "repo-1", "main").
		Once().
		Return(rules, nil)

	svc := NewComplianceService(mockClient, discardLogger())
	rec := svc.Check(ctx, testRepo)

	assert.Nil(t, rec.RequiredApprovals)
	assert.Equal(t, []string{"Approvals rule present but count missing"}, rec.Issues)
}

func TestCheck_RulesetZeroCountFallsThroughToCountKey(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)

	rules := []models.BranchRule{
		{Type: "pull_request"},
		{Type: "required_approving_review_count", Parameters: json.RawMessage(`{"required_approving_review_count":0,"count":2}`)},
		{Type: "restrict_deletions"},
		{Type: "non_fast_forward"},
	}

	mockClient.
		EXPECT().
		BranchRules(mock.Anything, "repo-1", "main").
		Once().
		Return(rules, nil)

	svc := NewComplianceService(mockClient, discardLogger())
	rec := svc.Check(ctx, testRepo)

	if assert.NotNil(t, rec.RequiredApprovals) {
		assert.Equal(t, 2, *rec.RequiredApprovals)
	}
	assert.Empty(t, rec.Issues)
}

func TestCheck_RulesetApprovalCountMissing(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)

	rules := []models.BranchRule{
		{Type: "pull_request"},
		{Type: "required_approving_review_count", Parameters: json.RawMessage(`{}`)},
		{Type: "restrict_deletions"},
		{Type: "non_fast_forward"},
	}

	mockClient.
		EXPECT().
		BranchRules(mock.Anything, "repo-1", "main").
		Once().
		Return(rules, nil)

	svc := NewComplianceService(mockClient, discardLogger())
	rec := svc.Check(ctx, testRepo)

	assert.Nil(t, rec.RequiredApprovals)
	assert.Equal(t, []string{"Approvals rule present but count missing"}, rec.Issues)
}

func TestCheck_RulesetMissingRules(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)

	// Only a deletion rule: everything else should be flagged.
	rules := []models.BranchRule{
		{Type: "restrict_deletions"},
	}

	mockClient.
		EXPECT().
		BranchRules(mock.Anything, "repo-1", "main").
		Once().
		Return(rules, nil)

	svc := NewComplianceService(mockClient, discardLogger())
	rec := svc.Check(ctx, testRepo)

	assert.True(t, rec.ProtectionEnabled)
	assert.True(t, rec.RestrictDeletions)
	assert.False(t, rec.PullRequestRequired)
	assert.False(t, rec.BlockForcePushes)
	assert.Equal(t, []string{
		"Require pull request before merging not enabled",
		"Required approving reviews rule missing",
		"Block force pushes rule not enabled",
	}, rec.Issues)
}

func TestCheck_RulesetMissingRestrictDeletions(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)

	rules := []models.BranchRule{
		{Type: "pull_request"},
		{Type: "required_approving_review_count", Parameters: json.RawMessage(`{"required_approving_review_count":2}`)},
		{Type: "non_fast_forward"},
	}

	mockClient.
		EXPECT().
		BranchRules(mock.Anything, "repo-1", "main").
		Once().
		Return(rules, nil)

	svc := NewComplianceService(mockClient, discardLogger())
	rec := svc.Check(ctx, testRepo)

	assert.Equal(t, []string{"Restrict deletions rule not enabled"}, rec.Issues)
	assert.False(t, rec.RestrictDeletions)
}

func TestCheck_ClassicFallbackCompliant(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)

	mockClient.
		EXPECT().
		BranchRules(mock.Anything, "repo-1", "main").
		Once().
		Return(nil, nil)

	protection := &gh.Protection{
		RequiredPullRequestReviews: &gh.PullRequestReviewsEnforcement{
			RequiredApprovingReviewCount: 2,
		},
		Restrictions:     &gh.BranchRestrictions{},
		AllowForcePushes: &gh.AllowForcePushes{Enabled: false},
	}

	mockClient.
		EXPECT().
		BranchProtection(mock.Anything, "repo-1", "main").
		Once().
		Return(protection, nil)

	svc := NewComplianceService(mockClient, discardLogger())
	rec := svc.Check(ctx, testRepo)

	assert.Equal(t, models.SourceClassic, rec.Source)
	assert.True(t, rec.ProtectionEnabled)
	assert.True(t, rec.PullRequestRequired)
	assert.True(t, rec.RestrictDeletions)
	assert.True(t, rec.BlockForcePushes)
	if assert.NotNil(t, rec.RequiredApprovals) {
		assert.Equal(t, 2, *rec.RequiredApprovals)
	}
	assert.Empty(t, rec.Issues)
}

func TestCheck_ClassicNoReviews(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)

	mockClient.
		EXPECT().
		BranchRules(mock.Anything, "repo-1", "main").
		Once().
		Return(nil, nil)

	mockClient.
		EXPECT().
		BranchProtection(mock.Anything, "repo-1", "main").
		Once().
		Return(&gh.Protection{}, nil)

	svc := NewComplianceService(mockClient, discardLogger())
	rec := svc.Check(ctx, testRepo)

	assert.True(t, rec.ProtectionEnabled)
	assert.False(t, rec.PullRequestRequired)
	assert.Nil(t, rec.RequiredApprovals)
	assert.False(t, rec.RestrictDeletions)
	assert.False(t, rec.BlockForcePushes)
	assert.Equal(t, []string{"Require pull request before merging not enabled"}, rec.Issues)
}

func TestCheck_ClassicZeroApprovals(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)

	mockClient.
		EXPECT().
		BranchRules(mock.Anything, "repo-1", "main").
		Once().
		Return(nil, nil)

	protection := &gh.Protection{
		RequiredPullRequestReviews: &gh.PullRequestReviewsEnforcement{},
	}

	mockClient.
		EXPECT().
		BranchProtection(mock.Anything, "repo-1", "main").
		Once().
		Return(protection, nil)

	svc := NewComplianceService(mockClient, discardLogger())
	rec := svc.Check(ctx, testRepo)

	assert.True(t, rec.PullRequestRequired)
	if assert.NotNil(t, rec.RequiredApprovals) {
		assert.Equal(t, 0, *rec.RequiredApprovals)
	}
	assert.Contains(t, rec.Issues, "Required approvals = 0, expected 2")
}

func TestCheck_NoProtectionAtAll(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)

	mockClient.
		EXPECT().
		BranchRules(mock.Anything, "repo-1", "main").
		Once().
		Return(nil, nil)

	mockClient.
		EXPECT().
		BranchProtection(mock.Anything, "repo-1", "main").
		Once().
		Return(nil, nil)

	svc := NewComplianceService(mockClient, discardLogger())
	rec := svc.Check(ctx, testRepo)

	assert.Equal(t, models.SourceNone, rec.Source)
	assert.False(t, rec.ProtectionEnabled)
	assert.Equal(t, []string{"No branch protection found on 'main'"}, rec.Issues)
}

func TestCheck_FetchErrorsFallThrough(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)

	mockClient.
		EXPECT().
		BranchRules(mock.Anything, "repo-1", "main").
		Once().
		Return(nil, errors.New("rules fetch failed"))

	mockClient.
		EXPECT().
		BranchProtection(mock.Anything, "repo-1", "main").
		Once().
		Return(nil, errors.New("protection fetch failed"))

	svc := NewComplianceService(mockClient, discardLogger())
	rec := svc.Check(ctx, testRepo)

	assert.False(t, rec.ProtectionEnabled)
	assert.Equal(t, []string{"No branch protection found on 'main'"}, rec.Issues)
}

func TestCheck_Idempotent(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)

	mockClient.
		EXPECT().
		BranchRules(mock.Anything, "repo-1", "main").
		Twice().
		Return(fullyCompliantRules(), nil)

	svc := NewComplianceService(mockClient, discardLogger())

	first := svc.Check(ctx, testRepo)
	second := svc.Check(ctx, testRepo)

	assert.Equal(t, first, second)
}
