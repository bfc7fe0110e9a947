// Package query holds the immutable value objects describing
// probability queries against a network.
package query

import (
	"fmt"
	"strings"

	"github.com/cognicore/bayesnet/pkg/bayesnet/data"
	"github.com/cognicore/bayesnet/pkg/bayesnet/internalerr"
)

// Variable pairs an attribute with one value code from its domain.
type Variable struct {
	Attribute *data.Attribute
	Value     int
}

// Joint asks for the probability of a specific combination of variable
// assignments, e.g. P(A = a, D = d).
type Joint struct {
	vars []Variable
}

// NewJoint builds a joint query. Attributes must be distinct and each
// value must belong to its attribute's domain.
func NewJoint(vars ...Variable) (Joint, error) {
	seen := make(map[int]struct{}, len(vars))
	for _, v := range vars {
		if v.Attribute == nil {
			return Joint{}, fmt.Errorf("query variable has nil attribute: %w", internalerr.ErrInvalidInput)
		}
		if _, ok := seen[v.Attribute.ID()]; ok {
			return Joint{}, fmt.Errorf("attribute %q appears twice in query: %w", v.Attribute.Name(), internalerr.ErrInvalidInput)
		}
		seen[v.Attribute.ID()] = struct{}{}
		if !v.Attribute.IsValidValueID(v.Value) {
			return Joint{}, fmt.Errorf("value %d is not in the domain of %q: %w", v.Value, v.Attribute.Name(), internalerr.ErrInvalidInput)
		}
	}
	out := make([]Variable, len(vars))
	copy(out, vars)
	return Joint{vars: out}, nil
}

// Variables returns the queried variables in the order given at
// construction. The slice is a copy.
func (q Joint) Variables() []Variable {
	out := make([]Variable, len(q.vars))
	copy(out, q.vars)
	return out
}

// Len returns the number of queried variables.
func (q Joint) Len() int { return len(q.vars) }

// String renders the query as "A = a, D = d".
func (q Joint) String() string {
	parts := make([]string, len(q.vars))
	for i, v := range q.vars {
		name, err := v.Attribute.ValueName(v.Value)
		if err != nil {
			name = fmt.Sprintf("#%d", v.Value)
		}
		parts[i] = fmt.Sprintf("%s = %s", v.Attribute.Name(), name)
	}
	return strings.Join(parts, ", ")
}

// Conditional asks for P(target | condition), e.g.
// P(A = a | E = e, D = d).
type Conditional struct {
	target    Joint
	condition Joint
}

// NewConditional builds a conditional query. The target and condition
// attribute sets must be disjoint and the condition non-empty.
func NewConditional(target, condition Joint) (Conditional, error) {
	if target.Len() == 0 {
		return Conditional{}, fmt.Errorf("conditional query has empty target: %w", internalerr.ErrInvalidInput)
	}
	if condition.Len() == 0 {
		return Conditional{}, fmt.Errorf("conditional query has empty condition: %w", internalerr.ErrInvalidInput)
	}
	condIDs := make(map[int]struct{}, len(condition.vars))
	for _, v := range condition.vars {
		condIDs[v.Attribute.ID()] = struct{}{}
	}
	for _, v := range target.vars {
		if _, ok := condIDs[v.Attribute.ID()]; ok {
			return Conditional{}, fmt.Errorf("attribute %q is in both target and condition: %w", v.Attribute.Name(), internalerr.ErrInvalidInput)
		}
	}
	return Conditional{target: target, condition: condition}, nil
}

// Target returns the target side of the query.
func (q Conditional) Target() Joint { return q.target }

// Condition returns the conditioning side of the query.
func (q Conditional) Condition() Joint { return q.condition }

// AllVariables returns the union of target and condition as a joint
// query, target variables first.
func (q Conditional) AllVariables() Joint {
	all := make([]Variable, 0, len(q.target.vars)+len(q.condition.vars))
	all = append(all, q.target.vars...)
	all = append(all, q.condition.vars...)
	return Joint{vars: all}
}

// String renders the query as "A = a | E = e, D = d".
func (q Conditional) String() string {
	return q.target.String() + " | " + q.condition.String()
}
