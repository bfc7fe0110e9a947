package data

import (
	"fmt"

	"github.com/cognicore/bayesnet/pkg/bayesnet/internalerr"
)

// AttributeType distinguishes nominal from continuous attributes
type AttributeType int

const (
	// Nominal attributes have a finite, ordered domain of named values
	Nominal AttributeType = iota
	// Continuous attributes have no enumerable domain; the inference
	// engine rejects them
	Continuous
)

// String returns the attribute type name
func (t AttributeType) String() string {
	switch t {
	case Nominal:
		return "nominal"
	case Continuous:
		return "continuous"
	}
	return fmt.Sprintf("attributetype(%d)", int(t))
}

// Attribute describes one random variable: a name, a unique integer id,
// and, for nominal attributes, an ordered bijection between value names
// and integer value codes. Attributes are immutable after construction
// and are identified by id throughout the module.
type Attribute struct {
	name       string
	id         int
	typ        AttributeType
	valueIDs   map[string]int
	valueNames []string
}

// NewNominal creates a nominal attribute. Value codes are assigned in
// the order the value names are given, starting at zero.
func NewNominal(name string, id int, values []string) (*Attribute, error) {
	if name == "" {
		return nil, fmt.Errorf("attribute name is empty: %w", internalerr.ErrInvalidInput)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("nominal attribute %q has no values: %w", name, internalerr.ErrInvalidInput)
	}

	valueIDs := make(map[string]int, len(values))
	valueNames := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := valueIDs[v]; ok {
			return nil, fmt.Errorf("nominal attribute %q: duplicate value %q: %w", name, v, internalerr.ErrInvalidInput)
		}
		valueIDs[v] = len(valueNames)
		valueNames = append(valueNames, v)
	}

	return &Attribute{
		name:       name,
		id:         id,
		typ:        Nominal,
		valueIDs:   valueIDs,
		valueNames: valueNames,
	}, nil
}

// NewContinuous creates a continuous attribute.
func NewContinuous(name string, id int) (*Attribute, error) {
	if name == "" {
		return nil, fmt.Errorf("attribute name is empty: %w", internalerr.ErrInvalidInput)
	}
	return &Attribute{name: name, id: id, typ: Continuous}, nil
}

// Name returns the attribute's name.
func (a *Attribute) Name() string { return a.name }

// ID returns the attribute's unique integer id.
func (a *Attribute) ID() int { return a.id }

// Type returns whether the attribute is nominal or continuous.
func (a *Attribute) Type() AttributeType { return a.typ }

// Arity returns the number of values in a nominal attribute's domain,
// or zero for a continuous attribute.
func (a *Attribute) Arity() int { return len(a.valueNames) }

// Values returns the value names in code order. The slice is a copy.
func (a *Attribute) Values() []string {
	out := make([]string, len(a.valueNames))
	copy(out, a.valueNames)
	return out
}

// ValueID resolves a value name to its integer code.
func (a *Attribute) ValueID(name string) (int, bool) {
	id, ok := a.valueIDs[name]
	return id, ok
}

// ValueName resolves a value code to its name.
func (a *Attribute) ValueName(id int) (string, error) {
	if a.typ != Nominal {
		return "", fmt.Errorf("attribute %q is continuous: %w", a.name, internalerr.ErrUnsupportedAttributeType)
	}
	if id < 0 || id >= len(a.valueNames) {
		return "", fmt.Errorf("attribute %q has no value with id %d: %w", a.name, id, internalerr.ErrInvalidInput)
	}
	return a.valueNames[id], nil
}

// IsValidValueID reports whether id is a valid value code for this
// attribute.
func (a *Attribute) IsValidValueID(id int) bool {
	return a.typ == Nominal && id >= 0 && id < len(a.valueNames)
}
