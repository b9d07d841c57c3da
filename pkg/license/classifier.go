package license

import "strings"

// Config holds the ordered match lists the classifier tests against. Lists
// replace the defaults wholesale when set.
type Config struct {
	Permissive     []string `yaml:"permissive" json:"permissive"`
	WeakCopyleft   []string `yaml:"weak_copyleft" json:"weak_copyleft"`
	StrongCopyleft []string `yaml:"strong_copyleft" json:"strong_copyleft"`
}

// DefaultConfig returns the built-in match lists.
func DefaultConfig() Config {
	return Config{
		Permissive: []string{
			"MIT", "Apache", "BSD", "ISC", "Zlib", "X11", "Unlicense",
			"CC0", "WTFPL", "Python-2.0", "PostgreSQL", "BSL-1.0",
		},
		WeakCopyleft: []string{
			"LGPL", "MPL", "EPL", "CDDL", "Artistic", "CPL",
		},
		StrongCopyleft: []string{
			"AGPL", "GPL", "SSPL", "EUPL", "OSL",
		},
	}
}

// Classifier maps license identifier strings to risk categories using
// substring containment against configured lists. Substring (not exact)
// matching is deliberate: real license expressions are often compound
// ("MIT OR Apache-2.0") and a configured token should match inside such an
// expression. The flip side is that a short token can false-positive inside
// an unrelated license name; that is a known limitation, not a bug.
type Classifier struct {
	cfg Config
}

// NewClassifier creates a classifier. A nil config uses the defaults; empty
// lists in a non-nil config fall back to the corresponding default list.
func NewClassifier(cfg *Config) *Classifier {
	merged := DefaultConfig()
	if cfg != nil {
		if len(cfg.Permissive) > 0 {
			merged.Permissive = cfg.Permissive
		}
		if len(cfg.WeakCopyleft) > 0 {
			merged.WeakCopyleft = cfg.WeakCopyleft
		}
		if len(cfg.StrongCopyleft) > 0 {
			merged.StrongCopyleft = cfg.StrongCopyleft
		}
	}
	return &Classifier{cfg: merged}
}

// Classify maps a license identifier to its risk category. The lists are
// tested in fixed precedence permissive, weak-copyleft, strong-copyleft;
// first match wins. An identifier matching no list but containing
// "proprietary" (case-insensitive) is proprietary; anything else is unknown.
func (c *Classifier) Classify(identifier string) Risk {
	if identifier == "" {
		return Unknown
	}
	if matchAny(identifier, c.cfg.Permissive) {
		return Permissive
	}
	if matchAny(identifier, c.cfg.WeakCopyleft) {
		return WeakCopyleft
	}
	if matchAny(identifier, c.cfg.StrongCopyleft) {
		return StrongCopyleft
	}
	if strings.Contains(strings.ToLower(identifier), "proprietary") {
		return Proprietary
	}
	return Unknown
}

func matchAny(identifier string, tokens []string) bool {
	for _, token := range tokens {
		if token != "" && strings.Contains(identifier, token) {
			return true
		}
	}
	return false
}
