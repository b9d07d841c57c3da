package compliance

import (
	"fmt"

	"github.com/depscope/depscope/pkg/license"
	"github.com/depscope/depscope/pkg/ort"
)

// State is the overall compliance state of one analysis result.
type State string

const (
	StateCompliant State = "compliant"
	StateIssues    State = "issues"
	StateCritical  State = "critical"
	StateUnknown   State = "unknown"
)

// Status is the derived compliance summary for one analysis result.
type Status struct {
	State   State        `json:"state"`
	Message string       `json:"message"`
	Stats   LicenseStats `json:"stats"`

	IssueCount         int `json:"issue_count"`
	VulnerabilityCount int `json:"vulnerability_count"`
}

// Evaluate derives the compliance status. Precedence is fixed, first match
// wins: any strong-copyleft license is critical regardless of every other
// signal; then analyzer issues or vulnerabilities; then unknown licenses;
// otherwise compliant. This makes the state monotonic: adding a
// strong-copyleft package to any result always yields critical.
func Evaluate(result *ort.Result, classifier *license.Classifier) Status {
	if result == nil || result.Analyzer.Result == nil {
		return Status{
			State:   StateUnknown,
			Message: "no analyzer result",
			Stats:   LicenseStats{ByLicense: map[string]int{}},
		}
	}

	status := Status{
		Stats:              Stats(result, classifier),
		IssueCount:         len(result.Issues()),
		VulnerabilityCount: result.VulnerabilityCount(),
	}

	switch {
	case status.Stats.StrongCopyleft > 0:
		status.State = StateCritical
		status.Message = fmt.Sprintf("%d strong copyleft license(s) found", status.Stats.StrongCopyleft)
	case status.IssueCount > 0 || status.VulnerabilityCount > 0:
		status.State = StateIssues
		status.Message = fmt.Sprintf("%d analyzer issue(s) and %d vulnerability(ies) found",
			status.IssueCount, status.VulnerabilityCount)
	case status.Stats.Unknown > 0:
		status.State = StateIssues
		status.Message = fmt.Sprintf("%d dependency(ies) with unknown license", status.Stats.Unknown)
	default:
		status.State = StateCompliant
		status.Message = "all declared licenses are compliant"
	}
	return status
}
