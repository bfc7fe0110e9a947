package data

import (
	"errors"
	"testing"

	"github.com/cognicore/bayesnet/pkg/bayesnet/internalerr"
)

func TestNominalAttributeRoundTrip(t *testing.T) {
	a, err := NewNominal("outlook", 0, []string{"sunny", "overcast", "rain"})
	if err != nil {
		t.Fatalf("NewNominal: %v", err)
	}

	if a.Arity() != 3 {
		t.Errorf("Arity = %d, want 3", a.Arity())
	}

	id, ok := a.ValueID("overcast")
	if !ok || id != 1 {
		t.Errorf("ValueID(overcast) = %d, %v; want 1, true", id, ok)
	}

	name, err := a.ValueName(2)
	if err != nil {
		t.Fatalf("ValueName(2): %v", err)
	}
	if name != "rain" {
		t.Errorf("ValueName(2) = %q, want %q", name, "rain")
	}

	if _, err := a.ValueName(3); err == nil {
		t.Error("ValueName(3) should fail for out-of-range id")
	}
}

func TestNominalAttributeDuplicateValue(t *testing.T) {
	_, err := NewNominal("broken", 0, []string{"yes", "no", "yes"})
	if !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("duplicate value should return ErrInvalidInput, got %v", err)
	}
}

func TestContinuousAttributeHasNoDomain(t *testing.T) {
	a, err := NewContinuous("temperature", 0)
	if err != nil {
		t.Fatalf("NewContinuous: %v", err)
	}

	if a.Arity() != 0 {
		t.Errorf("Arity = %d, want 0", a.Arity())
	}
	if a.IsValidValueID(0) {
		t.Error("continuous attribute should have no valid value ids")
	}
	if _, err := a.ValueName(0); !errors.Is(err, internalerr.ErrUnsupportedAttributeType) {
		t.Errorf("ValueName on continuous should return ErrUnsupportedAttributeType, got %v", err)
	}
}
