package network

import (
	"fmt"

	"github.com/cognicore/bayesnet/pkg/bayesnet/data"
	"github.com/cognicore/bayesnet/pkg/bayesnet/internalerr"
	"github.com/cognicore/bayesnet/pkg/bayesnet/query"
)

// JointProbability computes P(q) by full enumeration.
//
// Only nodes in the union of the queried nodes' ancestor closures can
// affect the result under the DAG factorization, so the sum runs over
// exactly that set: queried nodes keep their assigned values, every
// other closure node is summed over its whole domain, and each term is
// the product of every closure node's CPD probability under the full
// assignment.
func (nw *Network) JointProbability(q query.Joint) (float64, error) {
	if q.Len() == 0 {
		return 0, fmt.Errorf("empty joint query: %w", internalerr.ErrInvalidInput)
	}

	// Union of ancestor closures, preserving first-reached order.
	var all []*Node
	inClosure := make(map[int]struct{})
	specified := make(map[int]struct{})
	assignment := make(map[int]int, q.Len())

	for _, v := range q.Variables() {
		n, ok := nw.Node(v.Attribute)
		if !ok {
			return 0, fmt.Errorf("attribute %q is not in the network: %w", v.Attribute.Name(), internalerr.ErrUnknownAttribute)
		}
		specified[v.Attribute.ID()] = struct{}{}
		assignment[v.Attribute.ID()] = v.Value
		for _, above := range nw.NodesAbove(n) {
			id := above.attr.ID()
			if _, ok := inClosure[id]; ok {
				continue
			}
			inClosure[id] = struct{}{}
			all = append(all, above)
		}
	}

	// Enumeration needs a finite domain for every node in the closure.
	var unspecified []*Node
	for _, n := range all {
		if n.attr.Type() != data.Nominal {
			return 0, fmt.Errorf("attribute %q cannot be enumerated: %w", n.attr.Name(), internalerr.ErrUnsupportedAttributeType)
		}
		if _, ok := specified[n.attr.ID()]; !ok {
			unspecified = append(unspecified, n)
		}
	}

	return enumerate(all, unspecified, assignment)
}

// enumerate sums over every assignment of the unspecified nodes. Each
// recursion level fixes the next unspecified node to one of its values;
// the base case multiplies out one term of the sum.
func enumerate(all, unspecified []*Node, assignment map[int]int) (float64, error) {
	if len(unspecified) == 0 {
		return term(all, assignment)
	}

	n := unspecified[0]
	id := n.attr.ID()
	sum := 0.0
	for v := 0; v < n.attr.Arity(); v++ {
		assignment[id] = v
		p, err := enumerate(all, unspecified[1:], assignment)
		if err != nil {
			return 0, err
		}
		sum += p
	}
	delete(assignment, id)
	return sum, nil
}

// term computes one term of the enumeration: the product over every
// closure node of P(node = assigned value | parents per assignment).
func term(all []*Node, assignment map[int]int) (float64, error) {
	product := 1.0
	for _, n := range all {
		p, err := n.table.Query(assignment[n.attr.ID()], assignment)
		if err != nil {
			return 0, err
		}
		product *= p
	}
	return product, nil
}

// ConditionalProbability computes P(target | condition) as
// P(target, condition) / P(condition). A zero-probability condition is
// reported as a degenerate-conditioning error rather than a NaN.
func (nw *Network) ConditionalProbability(q query.Conditional) (float64, error) {
	numerator, err := nw.JointProbability(q.AllVariables())
	if err != nil {
		return 0, err
	}
	denominator, err := nw.JointProbability(q.Condition())
	if err != nil {
		return 0, err
	}
	if denominator == 0 {
		return 0, fmt.Errorf("condition %s has zero probability: %w", q.Condition(), internalerr.ErrDegenerateConditioning)
	}
	return numerator / denominator, nil
}
