package types_test

import (
	"encoding/json"
	"testing"

	"github.com/opencatalog/metacat/internal/types"
)

// Test that a JSON array unmarshals normally
func TestFlexListFromArray(t *testing.T) {
	var zones types.FlexList[string]
	if err := json.Unmarshal([]byte(`["quarantine","production"]`), &zones); err != nil {
		t.Fatalf("Failed to unmarshal array: %v", err)
	}
	if len(zones) != 2 || zones[0] != "quarantine" || zones[1] != "production" {
		t.Errorf("Unexpected zones %v", zones)
	}
}

// Test that a bare value becomes a one-element list
func TestFlexListFromBareValue(t *testing.T) {
	var zones types.FlexList[string]
	if err := json.Unmarshal([]byte(`"quarantine"`), &zones); err != nil {
		t.Fatalf("Failed to unmarshal bare value: %v", err)
	}
	if len(zones) != 1 || zones[0] != "quarantine" {
		t.Errorf("Unexpected zones %v", zones)
	}
}

// Test that null leaves the list empty
func TestFlexListFromNull(t *testing.T) {
	var zones types.FlexList[string]
	if err := json.Unmarshal([]byte(`null`), &zones); err != nil {
		t.Fatalf("Failed to unmarshal null: %v", err)
	}
	if len(zones) != 0 {
		t.Errorf("Expected empty list, got %v", zones)
	}
}

// Test that a struct field accepts both shapes
func TestFlexListInStruct(t *testing.T) {
	type payload struct {
		Zones types.FlexList[string] `json:"zoneMembership"`
	}

	var p payload
	if err := json.Unmarshal([]byte(`{"zoneMembership":"quarantine"}`), &p); err != nil {
		t.Fatalf("Failed to unmarshal struct: %v", err)
	}
	if len(p.Zones) != 1 || p.Zones[0] != "quarantine" {
		t.Errorf("Unexpected zones %v", p.Zones)
	}

	out, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Failed to marshal struct: %v", err)
	}
	if string(out) != `{"zoneMembership":["quarantine"]}` {
		t.Errorf("Unexpected marshaled form %s", out)
	}
}

// Test the Slice conversion
func TestFlexListSlice(t *testing.T) {
	zones := types.FlexList[string]{"a", "b"}
	s := zones.Slice()
	if len(s) != 2 || s[0] != "a" || s[1] != "b" {
		t.Errorf("Unexpected slice %v", s)
	}
}
