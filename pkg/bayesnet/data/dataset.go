package data

import (
	"fmt"

	"github.com/cognicore/bayesnet/pkg/bayesnet/internalerr"
)

// Instance is one fully observed row. Values are indexed by attribute
// id; nominal values hold the integer value code, continuous values the
// raw measurement.
type Instance struct {
	Values []float64
}

// Nominal returns the value code of a nominal attribute in this
// instance.
func (in Instance) Nominal(a *Attribute) int {
	return int(in.Values[a.ID()])
}

// DataSet is a fixed set of attributes plus the instances observed over
// them. Attribute ids are their indices into the attribute list.
type DataSet struct {
	attributes []*Attribute
	byName     map[string]*Attribute
	instances  []Instance
}

// NewDataSet creates an empty dataset over the given attributes. Each
// attribute's id must equal its index and names must be unique.
func NewDataSet(attributes []*Attribute) (*DataSet, error) {
	if len(attributes) == 0 {
		return nil, fmt.Errorf("dataset has no attributes: %w", internalerr.ErrInvalidInput)
	}

	byName := make(map[string]*Attribute, len(attributes))
	for i, a := range attributes {
		if a == nil {
			return nil, fmt.Errorf("attribute %d is nil: %w", i, internalerr.ErrInvalidInput)
		}
		if a.ID() != i {
			return nil, fmt.Errorf("attribute %q has id %d at index %d: %w", a.Name(), a.ID(), i, internalerr.ErrInvalidInput)
		}
		if _, ok := byName[a.Name()]; ok {
			return nil, fmt.Errorf("duplicate attribute name %q: %w", a.Name(), internalerr.ErrInvalidInput)
		}
		byName[a.Name()] = a
	}

	return &DataSet{
		attributes: attributes,
		byName:     byName,
	}, nil
}

// Attributes returns the attributes in id order. The slice is shared;
// attributes themselves are immutable.
func (d *DataSet) Attributes() []*Attribute { return d.attributes }

// AttributeByName looks up an attribute by name.
func (d *DataSet) AttributeByName(name string) (*Attribute, bool) {
	a, ok := d.byName[name]
	return a, ok
}

// AttributeByID looks up an attribute by id.
func (d *DataSet) AttributeByID(id int) (*Attribute, bool) {
	if id < 0 || id >= len(d.attributes) {
		return nil, false
	}
	return d.attributes[id], true
}

// AddInstance appends a row after validating its width and nominal
// value codes.
func (d *DataSet) AddInstance(in Instance) error {
	if len(in.Values) != len(d.attributes) {
		return fmt.Errorf("instance has %d values, dataset has %d attributes: %w",
			len(in.Values), len(d.attributes), internalerr.ErrInvalidInput)
	}
	for _, a := range d.attributes {
		if a.Type() != Nominal {
			continue
		}
		code := int(in.Values[a.ID()])
		if !a.IsValidValueID(code) {
			return fmt.Errorf("value %d is out of range for attribute %q: %w",
				code, a.Name(), internalerr.ErrInvalidInput)
		}
	}
	d.instances = append(d.instances, in)
	return nil
}

// Instances returns all rows in insertion order.
func (d *DataSet) Instances() []Instance { return d.instances }

// NumInstances returns the number of rows.
func (d *DataSet) NumInstances() int { return len(d.instances) }
