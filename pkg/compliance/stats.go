// Package compliance derives license statistics and an overall compliance
// status from analysis result documents. Both are pure functions of one
// document and the classifier configuration; they are recomputed on each
// load and never persisted by this package.
package compliance

import (
	"github.com/depscope/depscope/pkg/license"
	"github.com/depscope/depscope/pkg/ort"
)

// LicenseStats counts projects and packages per risk category.
type LicenseStats struct {
	Total          int `json:"total"`
	Permissive     int `json:"permissive"`
	WeakCopyleft   int `json:"weak_copyleft"`
	StrongCopyleft int `json:"strong_copyleft"`
	Unknown        int `json:"unknown"`

	// ByLicense counts occurrences of each resolved license string.
	ByLicense map[string]int `json:"by_license"`
}

// Increment counts one entity under the given risk category. Proprietary has
// no dedicated bucket and falls into Unknown along with true unknowns.
func (s *LicenseStats) Increment(risk license.Risk) {
	s.Total++
	switch risk {
	case license.Permissive:
		s.Permissive++
	case license.WeakCopyleft:
		s.WeakCopyleft++
	case license.StrongCopyleft:
		s.StrongCopyleft++
	default:
		s.Unknown++
	}
}

// Stats walks the flat project and package lists once, classifying each
// entity's resolved license. An absent analyzer result yields all-zero stats.
func Stats(result *ort.Result, classifier *license.Classifier) LicenseStats {
	if classifier == nil {
		classifier = license.NewClassifier(nil)
	}
	stats := LicenseStats{ByLicense: map[string]int{}}

	for _, project := range result.Projects() {
		lic, ok := project.EffectiveLicense()
		stats.count(lic, ok, classifier)
	}
	for _, pkg := range result.Packages() {
		lic, ok := pkg.EffectiveLicense()
		stats.count(lic, ok, classifier)
	}
	return stats
}

func (s *LicenseStats) count(lic string, ok bool, classifier *license.Classifier) {
	if !ok {
		s.Increment(license.Unknown)
		return
	}
	s.Increment(classifier.Classify(lic))
	s.ByLicense[lic]++
}
