// Package tree builds display trees from analysis result documents.
//
// The builder converts the flat project/package/dependency-graph
// representation into a nested view model. It is a pure function of the
// result document and the classifier configuration: items are built fresh on
// every call and never mutated in place.
package tree

import (
	"fmt"

	"github.com/depscope/depscope/pkg/license"
	"github.com/depscope/depscope/pkg/ort"
)

// Item is one rendered node of a dependency tree.
type Item struct {
	ID    ort.Identifier
	Label string

	// License is the resolved declared license; empty when the package
	// could not be resolved or declares no license.
	License string
	Risk    license.Risk

	Children []*Item

	Vulnerabilities []ort.Vulnerability
	Issues          []ort.Issue
}

// Builder builds dependency trees using a fixed classifier.
type Builder struct {
	classifier *license.Classifier
}

// NewBuilder creates a tree builder. A nil classifier uses the default
// classification config.
func NewBuilder(c *license.Classifier) *Builder {
	if c == nil {
		c = license.NewClassifier(nil)
	}
	return &Builder{classifier: c}
}

// Build returns one item per project, in input order. A result with no
// projects yields an empty slice. Ordering follows the source data
// throughout: project order, then scope order, then dependency order; no
// sorting is applied.
func (b *Builder) Build(result *ort.Result) []*Item {
	projects := result.Projects()
	items := make([]*Item, 0, len(projects))
	if len(projects) == 0 {
		return items
	}

	packages := result.PackageIndex()
	vulns := result.VulnerabilityIndex()

	for i := range projects {
		items = append(items, b.project(&projects[i], packages, vulns))
	}
	return items
}

func (b *Builder) project(p *ort.Project, packages map[string]*ort.Package, vulns map[string][]ort.Vulnerability) *Item {
	item := &Item{
		ID:    p.ID,
		Label: p.ID.Label(),
		Risk:  license.Unknown,
	}
	if lic, ok := p.EffectiveLicense(); ok {
		item.License = lic
		item.Risk = b.classifier.Classify(lic)
	}

	for i := range p.Scopes {
		item.Children = append(item.Children, b.scope(&p.Scopes[i], p.ID, packages, vulns))
	}
	return item
}

// scope builds the structural grouping item for one dependency scope. Scopes
// are not license-bearing, so the risk stays unknown. The project identifier
// seeds each branch's ancestor set; scope items carry no identifier of their
// own.
func (b *Builder) scope(s *ort.Scope, project ort.Identifier, packages map[string]*ort.Package, vulns map[string][]ort.Vulnerability) *Item {
	item := &Item{
		Label: fmt.Sprintf("%s (%d)", s.Name, len(s.Dependencies)),
		Risk:  license.Unknown,
	}
	for i := range s.Dependencies {
		ancestors := map[string]struct{}{project.String(): {}}
		if child := b.node(&s.Dependencies[i], packages, vulns, ancestors); child != nil {
			item.Children = append(item.Children, child)
		}
	}
	return item
}

// node builds the item for one dependency node. ancestors carries every
// identifier on the current root-to-node path; a node whose identifier is
// already present is a cycle and is pruned (nil return) rather than raised.
// Each child recursion takes its own copy of the set, so the same package
// appearing under different parents renders independently in both places —
// diamonds are expanded, not collapsed.
func (b *Builder) node(n *ort.DependencyNode, packages map[string]*ort.Package, vulns map[string][]ort.Vulnerability, ancestors map[string]struct{}) *Item {
	key := n.ID.String()
	if _, seen := ancestors[key]; seen {
		return nil
	}

	item := &Item{
		ID:     n.ID,
		Label:  n.ID.Label(),
		Risk:   license.Unknown,
		Issues: n.Issues,
	}

	// Unresolved packages still render with the bare identifier; only the
	// license stays absent.
	if pkg, ok := packages[key]; ok {
		if lic, ok := pkg.EffectiveLicense(); ok {
			item.License = lic
			item.Risk = b.classifier.Classify(lic)
		}
	}

	item.Vulnerabilities = vulns[key]

	for i := range n.Dependencies {
		branch := make(map[string]struct{}, len(ancestors)+1)
		for k := range ancestors {
			branch[k] = struct{}{}
		}
		branch[key] = struct{}{}
		if child := b.node(&n.Dependencies[i], packages, vulns, branch); child != nil {
			item.Children = append(item.Children, child)
		}
	}
	return item
}
