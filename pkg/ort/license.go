package ort

import "strings"

// effectiveLicense resolves the declared license for display and
// classification. The processed SPDX expression is preferred since it is the
// canonical form; otherwise the raw declared strings are joined with " OR ".
// The precedence must not be reordered.
func effectiveLicense(processed *ProcessedLicense, declared []string) (string, bool) {
	if processed != nil && processed.SPDXExpression != "" {
		return processed.SPDXExpression, true
	}
	if len(declared) > 0 {
		return strings.Join(declared, " OR "), true
	}
	return "", false
}

// EffectiveLicense returns the project's resolved declared license, if any.
func (p *Project) EffectiveLicense() (string, bool) {
	return effectiveLicense(p.DeclaredLicensesProcessed, p.DeclaredLicenses)
}

// EffectiveLicense returns the package's resolved declared license, if any.
func (p *Package) EffectiveLicense() (string, bool) {
	return effectiveLicense(p.DeclaredLicensesProcessed, p.DeclaredLicenses)
}
