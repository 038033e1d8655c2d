package report

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/tracker-tv/github-branch-compliance/models"
)

type Writer interface {
	Write(records []models.ComplianceRecord) error
}

var header = []string{
	"Repository",
	"Default Branch",
	"Protection Enabled",
	"Pull Request Required",
	"Required Approvals",
	"Restrict Deletions",
	"Block Force Pushes",
}

type csvWriter struct {
	path string
}

func NewCSVWriter(path string) Writer {
	return &csvWriter{path: path}
}

func (w *csvWriter) Write(records []models.ComplianceRecord) error {
	f, err := os.Create(w.path)
	if err != nil {
		return err
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, rec := range records {
		if err := cw.Write(row(rec)); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	return f.Close()
}

func row(rec models.ComplianceRecord) []string {
	return []string{
		rec.Repository,
		rec.DefaultBranch,
		yesNo(rec.ProtectionEnabled),
		yesNo(rec.PullRequestRequired),
		approvals(rec.RequiredApprovals),
		yesNo(rec.RestrictDeletions),
		yesNo(rec.BlockForcePushes),
	}
}

func yesNo(v bool) string {
	if v {
		return "YES"
	}
	return "NO"
}

// approvals renders an unknown or zero count as an empty cell, not "0".
func approvals(count *int) string {
	if count == nil || *count == 0 {
		return ""
	}
	return strconv.Itoa(*count)
}
