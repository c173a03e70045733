package omtypes_test

import (
	"sort"
	"testing"

	"github.com/opencatalog/metacat/internal/omtypes"
)

// Test direct and transitive supertype checks
func TestIsTypeOf(t *testing.T) {
	cases := []struct {
		typeName string
		expected string
		want     bool
	}{
		{"Asset", "Asset", true},
		{"Asset", "Referenceable", true},
		{"Comment", "Referenceable", true},
		{"Comment", "Asset", false},
		{"ValidValuesSet", "ValidValueDefinition", true},
		{"ValidValuesSet", "Referenceable", true},
		{"ValidValueDefinition", "ValidValuesSet", false},
		{"Referenceable", "Referenceable", true},
		{"Asset", "", true},
		{"NoSuchType", "Referenceable", false},
	}

	for _, c := range cases {
		if got := omtypes.IsTypeOf(c.typeName, c.expected); got != c.want {
			t.Errorf("IsTypeOf(%q, %q) = %v, want %v", c.typeName, c.expected, got, c.want)
		}
	}
}

// Test that type-scoped queries include subtypes
func TestTypeAndSubtypes(t *testing.T) {
	names := omtypes.TypeAndSubtypes("ValidValueDefinition")
	sort.Strings(names)
	if len(names) != 2 || names[0] != "ValidValueDefinition" || names[1] != "ValidValuesSet" {
		t.Errorf("Unexpected scope for ValidValueDefinition: %v", names)
	}

	names = omtypes.TypeAndSubtypes("Asset")
	if len(names) != 1 || names[0] != "Asset" {
		t.Errorf("Expected Asset to scope to itself, got %v", names)
	}

	names = omtypes.TypeAndSubtypes("Referenceable")
	if len(names) < 15 {
		t.Errorf("Expected Referenceable to scope to the whole hierarchy, got %d types", len(names))
	}
	found := false
	for _, n := range names {
		if n == "ValidValuesSet" {
			found = true
		}
	}
	if !found {
		t.Error("Expected ValidValuesSet in the Referenceable scope")
	}
}
