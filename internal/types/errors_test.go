package types_test

import (
	"testing"

	"github.com/cockroachdb/errors"

	"github.com/opencatalog/metacat/internal/types"
)

// Test that constructed errors keep their kind through wrapping
func TestErrorKindsSurviveWrapping(t *testing.T) {
	err := types.NewInvalidParameterf("pageSize %d is not positive", 0)
	wrapped := errors.Wrap(err, "listing comments")

	if !types.IsInvalidParameter(wrapped) {
		t.Error("Expected wrapped error to remain invalid-parameter")
	}
	if types.IsNotFound(wrapped) {
		t.Error("Expected wrapped error to not be not-found")
	}
	if types.IsUserNotAuthorized(wrapped) {
		t.Error("Expected wrapped error to not be user-not-authorized")
	}
}

// Test that each constructor produces its own kind and no other
func TestErrorKindsAreDisjoint(t *testing.T) {
	cases := []struct {
		err     error
		invalid bool
		denied  bool
		missing bool
		server  bool
	}{
		{types.NewInvalidParameterf("bad"), true, false, false, false},
		{types.NewUserNotAuthorizedf("no"), false, true, false, false},
		{types.NewNotFoundf("gone"), false, false, true, false},
		{types.NewPropertyServerf("broken"), false, false, false, true},
	}

	for _, c := range cases {
		if types.IsInvalidParameter(c.err) != c.invalid {
			t.Errorf("IsInvalidParameter(%v) = %v, want %v", c.err, !c.invalid, c.invalid)
		}
		if types.IsUserNotAuthorized(c.err) != c.denied {
			t.Errorf("IsUserNotAuthorized(%v) = %v, want %v", c.err, !c.denied, c.denied)
		}
		if types.IsNotFound(c.err) != c.missing {
			t.Errorf("IsNotFound(%v) = %v, want %v", c.err, !c.missing, c.missing)
		}
		if types.IsPropertyServer(c.err) != c.server {
			t.Errorf("IsPropertyServer(%v) = %v, want %v", c.err, !c.server, c.server)
		}
	}
}

// Test that WrapPropertyServer marks an arbitrary cause as a repository fault
func TestWrapPropertyServer(t *testing.T) {
	cause := errors.New("connection reset")
	err := types.WrapPropertyServer(cause, "loading entity")

	if !types.IsPropertyServer(err) {
		t.Error("Expected wrapped error to be property-server")
	}
	if types.IsInvalidParameter(err) {
		t.Error("Expected wrapped error to not be invalid-parameter")
	}
}

// Test that the predicates tolerate nil
func TestPredicatesOnNil(t *testing.T) {
	if types.IsInvalidParameter(nil) || types.IsUserNotAuthorized(nil) ||
		types.IsNotFound(nil) || types.IsPropertyServer(nil) {
		t.Error("Expected all predicates to be false for nil")
	}
}
