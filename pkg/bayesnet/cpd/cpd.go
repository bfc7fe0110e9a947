// Package cpd estimates and queries conditional probability tables for
// discrete variables.
//
// A table holds P(target = v | parents = p) for every combination of
// target value and parent values, estimated from instance counts with
// Laplace smoothing:
//
//	P(v | p) = (N_vp + s) / (N_p + s*|domain(target)|)
//
// Where:
//   - N_vp = instances matching both the target value and the parent values
//   - N_p  = instances matching the parent values
//   - s    = the Laplace smoothing pseudo-count
package cpd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cognicore/bayesnet/pkg/bayesnet/data"
	"github.com/cognicore/bayesnet/pkg/bayesnet/internalerr"
)

// Table is a conditional probability table over one target attribute
// and its parent attributes. Tables are immutable once estimated; a
// structural change to the owning node replaces the table wholesale.
type Table struct {
	target    *data.Attribute
	parents   []*data.Attribute // ascending attribute id
	smoothing int

	jointCounts  map[string]int64 // parent key + target value -> count
	parentCounts map[string]int64 // parent key -> count
}

// Estimate builds a table for target given parents by counting over the
// dataset. Parents must be passed in ascending attribute-id order; the
// target and all parents must be nominal.
func Estimate(target *data.Attribute, parents []*data.Attribute, ds *data.DataSet, smoothing int) (*Table, error) {
	if target.Type() != data.Nominal {
		return nil, fmt.Errorf("cpd target %q is continuous: %w", target.Name(), internalerr.ErrUnsupportedAttributeType)
	}
	for _, p := range parents {
		if p.Type() != data.Nominal {
			return nil, fmt.Errorf("cpd parent %q is continuous: %w", p.Name(), internalerr.ErrUnsupportedAttributeType)
		}
	}
	if smoothing < 0 {
		return nil, fmt.Errorf("smoothing count %d is negative: %w", smoothing, internalerr.ErrInvalidInput)
	}

	t := &Table{
		target:       target,
		parents:      parents,
		smoothing:    smoothing,
		jointCounts:  make(map[string]int64),
		parentCounts: make(map[string]int64),
	}

	for _, in := range ds.Instances() {
		pk := t.parentKeyFromInstance(in)
		t.parentCounts[pk]++
		t.jointCounts[jointKey(pk, in.Nominal(target))]++
	}

	return t, nil
}

// Target returns the attribute this table is conditioned on.
func (t *Table) Target() *data.Attribute { return t.target }

// Parents returns the parent attributes in ascending id order.
func (t *Table) Parents() []*data.Attribute { return t.parents }

// Query returns P(target = value | parents per assignment). The
// assignment maps attribute id to value code and must cover every
// parent; entries for other attributes are ignored.
func (t *Table) Query(value int, assignment map[int]int) (float64, error) {
	if !t.target.IsValidValueID(value) {
		return 0, fmt.Errorf("value %d is not in the domain of %q: %w", value, t.target.Name(), internalerr.ErrInvalidInput)
	}

	pk, err := t.parentKey(assignment)
	if err != nil {
		return 0, err
	}

	s := int64(t.smoothing)
	num := t.jointCounts[jointKey(pk, value)] + s
	den := t.parentCounts[pk] + s*int64(t.target.Arity())
	if den == 0 {
		return 0, nil
	}
	return float64(num) / float64(den), nil
}

func (t *Table) parentKey(assignment map[int]int) (string, error) {
	var sb strings.Builder
	for _, p := range t.parents {
		v, ok := assignment[p.ID()]
		if !ok {
			return "", fmt.Errorf("assignment is missing parent %q: %w", p.Name(), internalerr.ErrInvalidInput)
		}
		if !p.IsValidValueID(v) {
			return "", fmt.Errorf("value %d is not in the domain of %q: %w", v, p.Name(), internalerr.ErrInvalidInput)
		}
		sb.WriteString(strconv.Itoa(v))
		sb.WriteByte('|')
	}
	return sb.String(), nil
}

func (t *Table) parentKeyFromInstance(in data.Instance) string {
	var sb strings.Builder
	for _, p := range t.parents {
		sb.WriteString(strconv.Itoa(in.Nominal(p)))
		sb.WriteByte('|')
	}
	return sb.String()
}

func jointKey(parentKey string, value int) string {
	return parentKey + "=" + strconv.Itoa(value)
}
