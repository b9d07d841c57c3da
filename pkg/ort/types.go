// Package ort provides typed loading of OSS Review Toolkit result documents.
//
// The document layout mirrors the analyzer result file the ort CLI writes:
// top-level "repository" and "analyzer" sections plus optional "advisor" and
// "scanner" sections, all using lower snake_case field names. Documents are
// immutable once parsed; every load is a full rebuild, there is no
// incremental update path.
package ort

import (
	"encoding/json"
	"time"
)

// Result is the top-level parsed analysis document.
type Result struct {
	Repository Repository  `json:"repository"`
	Analyzer   AnalyzerRun `json:"analyzer"`
	Advisor    *AdvisorRun `json:"advisor,omitempty"`
	Scanner    *ScannerRun `json:"scanner,omitempty"`
}

// Repository describes the version-control origin of the analyzed codebase.
type Repository struct {
	VCS          VCSInfo `json:"vcs"`
	VCSProcessed VCSInfo `json:"vcs_processed"`
}

// VCSInfo holds version-control coordinates.
type VCSInfo struct {
	Type     string `json:"type"`
	URL      string `json:"url"`
	Revision string `json:"revision"`
	Path     string `json:"path"`
}

// AnalyzerRun is one execution of the dependency analyzer.
type AnalyzerRun struct {
	StartTime   time.Time       `json:"start_time"`
	EndTime     time.Time       `json:"end_time"`
	Environment Environment     `json:"environment"`
	Config      AnalyzerConfig  `json:"config"`
	Result      *AnalyzerResult `json:"result"`
}

// Environment describes the toolchain the analyzer ran under.
type Environment struct {
	OrtVersion  string            `json:"ort_version"`
	JavaVersion string            `json:"java_version"`
	OS          string            `json:"os"`
	Variables   map[string]string `json:"variables,omitempty"`
}

// AnalyzerConfig is the analyzer configuration echoed into the result.
type AnalyzerConfig struct {
	AllowDynamicVersions bool `json:"allow_dynamic_versions"`
	SkipExcluded         bool `json:"skip_excluded,omitempty"`
}

// AnalyzerResult holds the projects and packages the analyzer discovered,
// plus any issues encountered during analysis keyed by identifier.
type AnalyzerResult struct {
	Projects []Project          `json:"projects"`
	Packages []Package          `json:"packages"`
	Issues   map[string][]Issue `json:"issues,omitempty"`
}

// Project is a root node: the analyzed codebase itself or a workspace member.
type Project struct {
	ID                        Identifier        `json:"id"`
	DefinitionFilePath        string            `json:"definition_file_path"`
	DeclaredLicenses          []string          `json:"declared_licenses,omitempty"`
	DeclaredLicensesProcessed *ProcessedLicense `json:"declared_licenses_processed,omitempty"`
	VCS                       VCSInfo           `json:"vcs"`
	VCSProcessed              VCSInfo           `json:"vcs_processed"`
	HomepageURL               string            `json:"homepage_url,omitempty"`
	Scopes                    []Scope           `json:"scopes,omitempty"`
}

// Scope is a named dependency grouping (e.g. "dependencies",
// "devDependencies") containing a forest of dependency nodes.
type Scope struct {
	Name         string           `json:"name"`
	Dependencies []DependencyNode `json:"dependencies,omitempty"`
}

// DependencyNode references a package by identifier only; package metadata is
// resolved against the flat package list when building a display tree. The
// same identifier may legitimately appear in multiple branches (diamond
// dependencies); an identifier repeating along a single root-to-leaf path is
// a cycle.
type DependencyNode struct {
	ID           Identifier       `json:"id"`
	Linkage      string           `json:"linkage,omitempty"`
	Dependencies []DependencyNode `json:"dependencies,omitempty"`
	Issues       []Issue          `json:"issues,omitempty"`
}

// Package is a resolved third-party dependency.
type Package struct {
	ID                        Identifier        `json:"id"`
	PURL                      string            `json:"purl,omitempty"`
	DeclaredLicenses          []string          `json:"declared_licenses,omitempty"`
	DeclaredLicensesProcessed *ProcessedLicense `json:"declared_licenses_processed,omitempty"`
	Description               string            `json:"description,omitempty"`
	HomepageURL               string            `json:"homepage_url,omitempty"`
	BinaryArtifact            RemoteArtifact    `json:"binary_artifact"`
	SourceArtifact            RemoteArtifact    `json:"source_artifact"`
	VCS                       VCSInfo           `json:"vcs"`
	VCSProcessed              VCSInfo           `json:"vcs_processed"`
}

// ProcessedLicense is the canonical SPDX form of the declared licenses.
type ProcessedLicense struct {
	SPDXExpression string   `json:"spdx_expression,omitempty"`
	Unmapped       []string `json:"unmapped,omitempty"`
}

// RemoteArtifact records artifact provenance.
type RemoteArtifact struct {
	URL  string `json:"url"`
	Hash Hash   `json:"hash"`
}

// Hash is an artifact checksum.
type Hash struct {
	Value     string `json:"value"`
	Algorithm string `json:"algorithm"`
}

// Issue is a problem the analyzer hit while resolving a project or package.
type Issue struct {
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
	Message   string    `json:"message"`
	Severity  string    `json:"severity,omitempty"`
}

// AdvisorRun holds vulnerability findings keyed by package identifier.
type AdvisorRun struct {
	StartTime time.Time                  `json:"start_time"`
	EndTime   time.Time                  `json:"end_time"`
	Results   map[string][]AdvisorResult `json:"results,omitempty"`
}

// AdvisorResult is one advisor's findings for a single package.
type AdvisorResult struct {
	Advisor         AdvisorDetails  `json:"advisor"`
	Vulnerabilities []Vulnerability `json:"vulnerabilities,omitempty"`
}

// AdvisorDetails names the advisor that produced a result.
type AdvisorDetails struct {
	Name string `json:"name"`
}

// Vulnerability is a security finding attached to a package.
type Vulnerability struct {
	ID          string                   `json:"id"`
	Summary     string                   `json:"summary,omitempty"`
	Description string                   `json:"description,omitempty"`
	References  []VulnerabilityReference `json:"references,omitempty"`
}

// VulnerabilityReference is one scoring source for a vulnerability.
type VulnerabilityReference struct {
	URL           string  `json:"url"`
	ScoringSystem string  `json:"scoring_system,omitempty"`
	Severity      string  `json:"severity,omitempty"`
	Score         float64 `json:"score,omitempty"`
}

// Severity returns the first non-empty severity among the references.
func (v Vulnerability) Severity() string {
	for _, ref := range v.References {
		if ref.Severity != "" {
			return ref.Severity
		}
	}
	return ""
}

// Score returns the highest numeric score among the references.
func (v Vulnerability) Score() float64 {
	var max float64
	for _, ref := range v.References {
		if ref.Score > max {
			max = ref.Score
		}
	}
	return max
}

// ScannerRun is the optional source-scanner section. Its payload is not
// interpreted here; it is retained verbatim so a load does not fail on it.
type ScannerRun struct {
	StartTime time.Time       `json:"start_time"`
	EndTime   time.Time       `json:"end_time"`
	Results   json.RawMessage `json:"results,omitempty"`
}

// Projects returns the analyzed projects, or nil if the analyzer section
// carries no result.
func (r *Result) Projects() []Project {
	if r == nil || r.Analyzer.Result == nil {
		return nil
	}
	return r.Analyzer.Result.Projects
}

// Packages returns the resolved packages, or nil if the analyzer section
// carries no result.
func (r *Result) Packages() []Package {
	if r == nil || r.Analyzer.Result == nil {
		return nil
	}
	return r.Analyzer.Result.Packages
}

// PackageIndex returns the packages keyed by identifier coordinates.
func (r *Result) PackageIndex() map[string]*Package {
	pkgs := r.Packages()
	index := make(map[string]*Package, len(pkgs))
	for i := range pkgs {
		index[pkgs[i].ID.String()] = &pkgs[i]
	}
	return index
}

// Issues returns all analyzer issues flattened from the per-identifier map.
func (r *Result) Issues() []Issue {
	if r == nil || r.Analyzer.Result == nil {
		return nil
	}
	var issues []Issue
	for _, list := range r.Analyzer.Result.Issues {
		issues = append(issues, list...)
	}
	return issues
}

// VulnerabilityIndex returns all advisor vulnerabilities keyed by identifier
// coordinates. Returns an empty map when no advisor data is present.
func (r *Result) VulnerabilityIndex() map[string][]Vulnerability {
	index := make(map[string][]Vulnerability)
	if r == nil || r.Advisor == nil {
		return index
	}
	for key, results := range r.Advisor.Results {
		for _, res := range results {
			index[key] = append(index[key], res.Vulnerabilities...)
		}
	}
	return index
}

// VulnerabilityCount returns the total number of advisor vulnerabilities.
func (r *Result) VulnerabilityCount() int {
	if r == nil || r.Advisor == nil {
		return 0
	}
	count := 0
	for _, results := range r.Advisor.Results {
		for _, res := range results {
			count += len(res.Vulnerabilities)
		}
	}
	return count
}
