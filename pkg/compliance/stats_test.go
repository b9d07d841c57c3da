package compliance

import (
	"testing"

	"github.com/depscope/depscope/pkg/license"
	"github.com/depscope/depscope/pkg/ort"
)

func pkgWith(name, lic string) ort.Package {
	p := ort.Package{ID: ort.Identifier{Type: "NPM", Name: name, Version: "1.0.0"}}
	if lic != "" {
		p.DeclaredLicenses = []string{lic}
		p.DeclaredLicensesProcessed = &ort.ProcessedLicense{SPDXExpression: lic}
	}
	return p
}

func analyzed(projects []ort.Project, packages []ort.Package) *ort.Result {
	return &ort.Result{
		Analyzer: ort.AnalyzerRun{
			Result: &ort.AnalyzerResult{Projects: projects, Packages: packages},
		},
	}
}

func TestStats_Empty(t *testing.T) {
	stats := Stats(&ort.Result{}, nil)
	if stats.Total != 0 {
		t.Errorf("Total = %d, want 0", stats.Total)
	}
	if len(stats.ByLicense) != 0 {
		t.Errorf("ByLicense = %v, want empty", stats.ByLicense)
	}
}

func TestStats_CountsByRisk(t *testing.T) {
	result := analyzed(
		[]ort.Project{{
			ID:                        ort.Identifier{Type: "NPM", Name: "app", Version: "1.0.0"},
			DeclaredLicenses:          []string{"MIT"},
			DeclaredLicensesProcessed: &ort.ProcessedLicense{SPDXExpression: "MIT"},
		}},
		[]ort.Package{
			pkgWith("a", "Apache-2.0"),
			pkgWith("b", "LGPL-2.1-only"),
			pkgWith("c", "GPL-3.0-only"),
			pkgWith("d", "Beerware"),
			pkgWith("e", ""), // no declared license at all
		},
	)

	stats := Stats(result, nil)
	if stats.Total != 6 {
		t.Errorf("Total = %d, want 6", stats.Total)
	}
	if stats.Permissive != 2 {
		t.Errorf("Permissive = %d, want 2", stats.Permissive)
	}
	if stats.WeakCopyleft != 1 {
		t.Errorf("WeakCopyleft = %d, want 1", stats.WeakCopyleft)
	}
	if stats.StrongCopyleft != 1 {
		t.Errorf("StrongCopyleft = %d, want 1", stats.StrongCopyleft)
	}
	if stats.Unknown != 2 {
		t.Errorf("Unknown = %d, want 2", stats.Unknown)
	}

	sum := stats.Permissive + stats.WeakCopyleft + stats.StrongCopyleft + stats.Unknown
	if sum != stats.Total {
		t.Errorf("bucket sum = %d, Total = %d", sum, stats.Total)
	}

	if stats.ByLicense["MIT"] != 1 || stats.ByLicense["Beerware"] != 1 {
		t.Errorf("ByLicense = %v", stats.ByLicense)
	}
	// The unlicensed package contributes no license string.
	if len(stats.ByLicense) != 5 {
		t.Errorf("ByLicense entries = %d, want 5", len(stats.ByLicense))
	}
}

func TestStats_ProprietaryCountsAsUnknown(t *testing.T) {
	result := analyzed(nil, []ort.Package{pkgWith("a", "Vendor Proprietary License")})

	stats := Stats(result, nil)
	if stats.Unknown != 1 {
		t.Errorf("Unknown = %d, want 1 (proprietary has no dedicated bucket)", stats.Unknown)
	}
	if stats.ByLicense["Vendor Proprietary License"] != 1 {
		t.Errorf("ByLicense = %v", stats.ByLicense)
	}
}

func TestIncrement(t *testing.T) {
	var stats LicenseStats
	for _, risk := range license.AllRisks() {
		stats.Increment(risk)
	}
	if stats.Total != 5 {
		t.Errorf("Total = %d, want 5", stats.Total)
	}
	// Proprietary and Unknown share the unknown bucket.
	if stats.Unknown != 2 {
		t.Errorf("Unknown = %d, want 2", stats.Unknown)
	}
}
