package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/depscope/depscope/pkg/compliance"
)

func scrape(t *testing.T, c *Collector) string {
	t.Helper()
	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	if rec.Code != 200 {
		t.Fatalf("scrape status = %d", rec.Code)
	}
	return rec.Body.String()
}

func TestObserveStatus(t *testing.T) {
	c := NewCollector()
	c.ObserveStatus(compliance.Status{
		State: compliance.StateCritical,
		Stats: compliance.LicenseStats{
			Total:          4,
			Permissive:     2,
			StrongCopyleft: 1,
			Unknown:        1,
		},
		IssueCount:         3,
		VulnerabilityCount: 5,
	})

	body := scrape(t, c)
	for _, want := range []string{
		`depscope_licenses{risk="permissive"} 2`,
		`depscope_licenses{risk="strong-copyleft"} 1`,
		`depscope_compliance_state{state="critical"} 1`,
		`depscope_compliance_state{state="compliant"} 0`,
		"depscope_analyzer_issues 3",
		"depscope_vulnerabilities 5",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("scrape missing %q", want)
		}
	}
}

func TestObserveReloadAndRuns(t *testing.T) {
	c := NewCollector()
	c.ObserveReload(true)
	c.ObserveReload(true)
	c.ObserveReload(false)
	c.ObserveAnalyzerRun(2*time.Second, true)

	body := scrape(t, c)
	for _, want := range []string{
		`depscope_result_reloads_total{status="success"} 2`,
		`depscope_result_reloads_total{status="error"} 1`,
		`depscope_analyzer_runs_total{status="success"} 1`,
		"depscope_analyzer_run_duration_seconds_count 1",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("scrape missing %q", want)
		}
	}
}
