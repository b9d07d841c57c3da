// Package license classifies license identifiers into risk categories.
package license

// Risk represents a license risk category. The set is closed; which license
// strings map to which category is reconfigurable, the categories themselves
// are not.
type Risk string

const (
	// Permissive - minimal obligations (e.g. MIT, Apache, BSD).
	Permissive Risk = "permissive"

	// WeakCopyleft - copyleft limited to modifications of the covered
	// component itself (e.g. LGPL, MPL).
	WeakCopyleft Risk = "weak-copyleft"

	// StrongCopyleft - copyleft extending to derivative works broadly
	// (e.g. GPL, AGPL).
	StrongCopyleft Risk = "strong-copyleft"

	// Proprietary - explicitly proprietary terms.
	Proprietary Risk = "proprietary"

	// Unknown - the license could not be categorized.
	Unknown Risk = "unknown"
)

// AllRisks returns all risk categories in order of increasing concern.
func AllRisks() []Risk {
	return []Risk{Permissive, WeakCopyleft, StrongCopyleft, Proprietary, Unknown}
}

// String returns the string representation of the risk category.
func (r Risk) String() string {
	return string(r)
}
