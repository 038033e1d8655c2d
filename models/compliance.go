package models

// ProtectionSource identifies which API surface produced a compliance record.
type ProtectionSource string

const (
	SourceRuleset ProtectionSource = "ruleset"
	SourceClassic ProtectionSource = "classic"
	SourceNone    ProtectionSource = "none"
)

// ComplianceRecord is the normalized per-repository audit result. It is
// built once during the check phase and never mutated afterwards.
type ComplianceRecord struct {
	Repository          string
	DefaultBranch       string
	ProtectionEnabled   bool
	PullRequestRequired bool
	RequiredApprovals   *int // nil when no approval count could be determined
	RestrictDeletions   bool
	BlockForcePushes    bool
	Issues              []string
	Source              ProtectionSource
}

func (r ComplianceRecord) Compliant() bool {
	return len(r.Issues) == 0
}

type NonCompliant struct {
	Repository string
	Issues     []string
}

// AuditResult partitions the audited repositories by compliance, in
// listing order.
type AuditResult struct {
	Records      []ComplianceRecord
	Compliant    []string
	NonCompliant []NonCompliant
}
