package license

import "testing"

func TestClassifier_Classify(t *testing.T) {
	c := NewClassifier(nil)

	tests := []struct {
		name       string
		identifier string
		want       Risk
	}{
		{"empty input", "", Unknown},
		{"permissive exact", "MIT", Permissive},
		{"permissive versioned", "Apache-2.0", Permissive},
		{"compound expression matches by substring", "GPL-2.0-only OR MIT", Permissive},
		{"weak copyleft", "LGPL-2.1-only", WeakCopyleft},
		{"weak copyleft MPL", "MPL-2.0", WeakCopyleft},
		{"strong copyleft", "GPL-3.0-only", StrongCopyleft},
		{"strong copyleft AGPL", "AGPL-3.0-or-later", StrongCopyleft},
		{"proprietary lowercase", "Vendor proprietary license", Proprietary},
		{"proprietary uppercase", "PROPRIETARY", Proprietary},
		{"unclassified", "Beerware", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Classify(tt.identifier); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.identifier, got, tt.want)
			}
		})
	}
}

// LGPL contains GPL, so precedence (weak before strong) is what keeps LGPL
// out of the strong bucket.
func TestClassifier_PrecedenceOrder(t *testing.T) {
	c := NewClassifier(&Config{
		Permissive:     []string{"MIT"},
		WeakCopyleft:   []string{"LGPL"},
		StrongCopyleft: []string{"GPL"},
	})

	if got := c.Classify("LGPL-3.0-only"); got != WeakCopyleft {
		t.Errorf("Classify(LGPL-3.0-only) = %v, want %v", got, WeakCopyleft)
	}
	if got := c.Classify("GPL-3.0-only"); got != StrongCopyleft {
		t.Errorf("Classify(GPL-3.0-only) = %v, want %v", got, StrongCopyleft)
	}
}

func TestClassifier_ConfiguredLists(t *testing.T) {
	c := NewClassifier(&Config{
		Permissive:     []string{"CustomPermissive"},
		WeakCopyleft:   []string{"CustomWeak"},
		StrongCopyleft: []string{"CustomStrong"},
	})

	tests := []struct {
		identifier string
		want       Risk
	}{
		{"CustomPermissive-1.0", Permissive},
		{"CustomWeak-1.0", WeakCopyleft},
		{"CustomStrong-1.0", StrongCopyleft},
		// The defaults are replaced wholesale.
		{"MIT", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.identifier, func(t *testing.T) {
			if got := c.Classify(tt.identifier); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.identifier, got, tt.want)
			}
		})
	}
}

func TestClassifier_DefaultListsCoverConfiguredTokens(t *testing.T) {
	c := NewClassifier(nil)
	cfg := DefaultConfig()

	for _, token := range cfg.Permissive {
		if got := c.Classify(token); got != Permissive {
			t.Errorf("Classify(%q) = %v, want %v", token, got, Permissive)
		}
	}
	for _, token := range cfg.WeakCopyleft {
		if got := c.Classify(token); got != WeakCopyleft {
			t.Errorf("Classify(%q) = %v, want %v", token, got, WeakCopyleft)
		}
	}
	for _, token := range cfg.StrongCopyleft {
		if got := c.Classify(token); got != StrongCopyleft {
			t.Errorf("Classify(%q) = %v, want %v", token, got, StrongCopyleft)
		}
	}
}

func TestAllRisks(t *testing.T) {
	risks := AllRisks()
	if len(risks) != 5 {
		t.Fatalf("AllRisks() = %d entries, want 5", len(risks))
	}
	if risks[0] != Permissive || risks[len(risks)-1] != Unknown {
		t.Errorf("AllRisks() order = %v", risks)
	}
}
