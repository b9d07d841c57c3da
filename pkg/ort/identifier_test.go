package ort

import (
	"encoding/json"
	"testing"
)

func TestParseIdentifier(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Identifier
	}{
		{
			name:  "full coordinates",
			input: "NPM::lodash:4.17.21",
			want:  Identifier{Type: "NPM", Name: "lodash", Version: "4.17.21"},
		},
		{
			name:  "with namespace",
			input: "Maven:org.apache.commons:commons-lang3:3.12.0",
			want:  Identifier{Type: "Maven", Namespace: "org.apache.commons", Name: "commons-lang3", Version: "3.12.0"},
		},
		{
			name:  "missing trailing segments",
			input: "NPM::lodash",
			want:  Identifier{Type: "NPM", Name: "lodash"},
		},
		{
			name:  "empty string",
			input: "",
			want:  Identifier{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseIdentifier(tt.input); got != tt.want {
				t.Errorf("ParseIdentifier(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIdentifier_String(t *testing.T) {
	id := Identifier{Type: "Maven", Namespace: "org.foo", Name: "bar", Version: "1.0"}
	if got := id.String(); got != "Maven:org.foo:bar:1.0" {
		t.Errorf("String() = %q", got)
	}

	// Empty fields keep their separators so the encoding stays deterministic.
	id2 := Identifier{Type: "NPM", Name: "lodash", Version: "4.17.21"}
	if got := id2.String(); got != "NPM::lodash:4.17.21" {
		t.Errorf("String() = %q", got)
	}
}

func TestIdentifier_Label(t *testing.T) {
	tests := []struct {
		name string
		id   Identifier
		want string
	}{
		{"name and version", Identifier{Type: "NPM", Name: "lodash", Version: "4.17.21"}, "lodash@4.17.21"},
		{"with namespace", Identifier{Type: "Maven", Namespace: "org.foo", Name: "bar", Version: "1.0"}, "org.foo/bar@1.0"},
		{"no version", Identifier{Type: "NPM", Name: "lodash"}, "lodash"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.id.Label(); got != tt.want {
				t.Errorf("Label() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIdentifier_JSONRoundTrip(t *testing.T) {
	id := Identifier{Type: "NPM", Name: "lodash", Version: "4.17.21"}

	data, err := json.Marshal(id)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `"NPM::lodash:4.17.21"` {
		t.Errorf("Marshal = %s", data)
	}

	var decoded Identifier
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if decoded != id {
		t.Errorf("round trip = %+v, want %+v", decoded, id)
	}
}

func TestIdentifier_UnmarshalObjectForm(t *testing.T) {
	data := []byte(`{"type": "Maven", "namespace": "org.foo", "name": "bar", "version": "1.0"}`)

	var id Identifier
	if err := json.Unmarshal(data, &id); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	want := Identifier{Type: "Maven", Namespace: "org.foo", Name: "bar", Version: "1.0"}
	if id != want {
		t.Errorf("Unmarshal = %+v, want %+v", id, want)
	}
}
