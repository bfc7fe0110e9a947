package query

import (
	"errors"
	"testing"

	"github.com/cognicore/bayesnet/pkg/bayesnet/data"
	"github.com/cognicore/bayesnet/pkg/bayesnet/internalerr"
)

func binaryAttr(t *testing.T, name string, id int) *data.Attribute {
	t.Helper()
	a, err := data.NewNominal(name, id, []string{"f", "t"})
	if err != nil {
		t.Fatalf("NewNominal: %v", err)
	}
	return a
}

func TestNewJointRejectsDuplicates(t *testing.T) {
	a := binaryAttr(t, "a", 0)

	_, err := NewJoint(Variable{a, 0}, Variable{a, 1})
	if !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("duplicate attribute should return ErrInvalidInput, got %v", err)
	}
}

func TestNewJointRejectsBadValue(t *testing.T) {
	a := binaryAttr(t, "a", 0)

	_, err := NewJoint(Variable{a, 7})
	if !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("out-of-domain value should return ErrInvalidInput, got %v", err)
	}
}

func TestConditionalDisjointness(t *testing.T) {
	a := binaryAttr(t, "a", 0)
	b := binaryAttr(t, "b", 1)

	target, err := NewJoint(Variable{a, 1})
	if err != nil {
		t.Fatalf("NewJoint: %v", err)
	}
	condition, err := NewJoint(Variable{a, 0}, Variable{b, 1})
	if err != nil {
		t.Fatalf("NewJoint: %v", err)
	}

	if _, err := NewConditional(target, condition); !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("overlapping target/condition should return ErrInvalidInput, got %v", err)
	}
}

func TestConditionalAllVariablesOrder(t *testing.T) {
	a := binaryAttr(t, "a", 0)
	b := binaryAttr(t, "b", 1)
	c := binaryAttr(t, "c", 2)

	target, _ := NewJoint(Variable{a, 1})
	condition, _ := NewJoint(Variable{b, 0}, Variable{c, 1})
	q, err := NewConditional(target, condition)
	if err != nil {
		t.Fatalf("NewConditional: %v", err)
	}

	all := q.AllVariables().Variables()
	want := []string{"a", "b", "c"}
	if len(all) != len(want) {
		t.Fatalf("AllVariables has %d variables, want %d", len(all), len(want))
	}
	for i, v := range all {
		if v.Attribute.Name() != want[i] {
			t.Errorf("variable %d is %q, want %q", i, v.Attribute.Name(), want[i])
		}
	}
}

func TestQueryStrings(t *testing.T) {
	a := binaryAttr(t, "a", 0)
	b := binaryAttr(t, "b", 1)

	target, _ := NewJoint(Variable{a, 1})
	condition, _ := NewJoint(Variable{b, 0})
	q, _ := NewConditional(target, condition)

	if got, want := q.String(), "a = t | b = f"; got != want {
		t.Errorf("String = %q, want %q", got, want)
	}
}
