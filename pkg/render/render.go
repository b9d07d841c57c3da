// Package render writes trees, statistics, and status summaries to a
// terminal. It consumes the plain view models from pkg/tree and
// pkg/compliance and owns all presentation concerns.
package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/depscope/depscope/pkg/compliance"
	"github.com/depscope/depscope/pkg/license"
	"github.com/depscope/depscope/pkg/tree"
)

// Tree writes an indented dependency tree.
func Tree(w io.Writer, items []*tree.Item, diagnostics bool) {
	for _, item := range items {
		writeItem(w, item, 0, diagnostics)
	}
}

func writeItem(w io.Writer, item *tree.Item, depth int, diagnostics bool) {
	indent := strings.Repeat("  ", depth)

	label := item.Label
	if item.License != "" {
		label = fmt.Sprintf("%s [%s]", label, item.License)
	}

	fmt.Fprintf(w, "%s%s\n", indent, riskColor(item.Risk)(label))

	if diagnostics {
		for _, vuln := range item.Vulnerabilities {
			fmt.Fprintf(w, "%s  %s\n", indent, color.RedString("! %s (%s %.1f)", vuln.ID, vuln.Severity(), vuln.Score()))
		}
		for _, issue := range item.Issues {
			fmt.Fprintf(w, "%s  %s\n", indent, color.YellowString("~ %s: %s", issue.Source, issue.Message))
		}
	}

	for _, child := range item.Children {
		writeItem(w, child, depth+1, diagnostics)
	}
}

// StatsTable writes the per-risk-category counts as a table.
func StatsTable(w io.Writer, stats compliance.LicenseStats) {
	table := tablewriter.NewTable(w)
	table.Header([]string{"Risk", "Count"})

	table.Append([]string{license.Permissive.String(), fmt.Sprint(stats.Permissive)})
	table.Append([]string{license.WeakCopyleft.String(), fmt.Sprint(stats.WeakCopyleft)})
	table.Append([]string{license.StrongCopyleft.String(), fmt.Sprint(stats.StrongCopyleft)})
	table.Append([]string{license.Unknown.String(), fmt.Sprint(stats.Unknown)})
	table.Append([]string{"total", fmt.Sprint(stats.Total)})

	table.Render()
}

// LicenseTable writes per-license occurrence counts, most frequent first.
func LicenseTable(w io.Writer, stats compliance.LicenseStats) {
	if len(stats.ByLicense) == 0 {
		fmt.Fprintln(w, "no declared licenses found")
		return
	}

	licenses := make([]string, 0, len(stats.ByLicense))
	for lic := range stats.ByLicense {
		licenses = append(licenses, lic)
	}
	sort.Slice(licenses, func(i, j int) bool {
		if stats.ByLicense[licenses[i]] != stats.ByLicense[licenses[j]] {
			return stats.ByLicense[licenses[i]] > stats.ByLicense[licenses[j]]
		}
		return licenses[i] < licenses[j]
	})

	table := tablewriter.NewTable(w)
	table.Header([]string{"License", "Count"})
	for _, lic := range licenses {
		table.Append([]string{lic, fmt.Sprint(stats.ByLicense[lic])})
	}
	table.Render()
}

// StatusLine writes a one-line colored compliance summary.
func StatusLine(w io.Writer, status compliance.Status) {
	fmt.Fprintf(w, "%s %s\n", stateColor(status.State)(strings.ToUpper(string(status.State))), status.Message)
}

func riskColor(risk license.Risk) func(format string, a ...interface{}) string {
	switch risk {
	case license.Permissive:
		return color.GreenString
	case license.WeakCopyleft:
		return color.YellowString
	case license.StrongCopyleft:
		return color.RedString
	case license.Proprietary:
		return color.MagentaString
	default:
		return color.WhiteString
	}
}

func stateColor(state compliance.State) func(format string, a ...interface{}) string {
	switch state {
	case compliance.StateCompliant:
		return color.GreenString
	case compliance.StateIssues:
		return color.YellowString
	case compliance.StateCritical:
		return color.RedString
	default:
		return color.WhiteString
	}
}
