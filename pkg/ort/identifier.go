package ort

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Identifier uniquely identifies a project or package within one analysis
// result. It is serialized in result documents as the coordinate string
// "type:namespace:name:version". Two identifiers are equal iff all four
// fields match exactly; no semantic version comparison is performed.
type Identifier struct {
	Type      string
	Namespace string
	Name      string
	Version   string
}

// ParseIdentifier parses a coordinate string of the form
// "type:namespace:name:version". Missing trailing segments are left empty.
func ParseIdentifier(s string) Identifier {
	parts := strings.SplitN(s, ":", 4)
	var id Identifier
	if len(parts) > 0 {
		id.Type = parts[0]
	}
	if len(parts) > 1 {
		id.Namespace = parts[1]
	}
	if len(parts) > 2 {
		id.Name = parts[2]
	}
	if len(parts) > 3 {
		id.Version = parts[3]
	}
	return id
}

// String returns the deterministic coordinate encoding used as a map key.
func (id Identifier) String() string {
	return fmt.Sprintf("%s:%s:%s:%s", id.Type, id.Namespace, id.Name, id.Version)
}

// IsEmpty reports whether all four fields are empty.
func (id Identifier) IsEmpty() bool {
	return id.Type == "" && id.Namespace == "" && id.Name == "" && id.Version == ""
}

// Label returns a short human-readable form, e.g. "lodash@4.17.21".
func (id Identifier) Label() string {
	name := id.Name
	if id.Namespace != "" {
		name = id.Namespace + "/" + id.Name
	}
	if id.Version == "" {
		return name
	}
	return name + "@" + id.Version
}

// MarshalJSON encodes the identifier as its coordinate string.
func (id Identifier) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

// UnmarshalJSON accepts either the coordinate string form or an object with
// type/namespace/name/version fields.
func (id *Identifier) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = ParseIdentifier(s)
		return nil
	}

	var obj struct {
		Type      string `json:"type"`
		Namespace string `json:"namespace"`
		Name      string `json:"name"`
		Version   string `json:"version"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("invalid identifier: %w", err)
	}
	*id = Identifier{Type: obj.Type, Namespace: obj.Namespace, Name: obj.Name, Version: obj.Version}
	return nil
}
